package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"emergo.xyz/dispatch-service/pkg/common"
	_ "emergo.xyz/dispatch-service/pkg/testing"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+919876543210", NormalizePhone("9876543210"))
	assert.Equal(t, "+919876543210", NormalizePhone("09876543210"))
	assert.Equal(t, "+919876543210", NormalizePhone("+919876543210"))
	assert.Equal(t, "+19876543210", NormalizePhone("19876543210"))
	assert.Equal(t, "", NormalizePhone("  "))
}

func TestGreetingTwiMLGathersSingleDigit(t *testing.T) {
	twiml := GreetingTwiML("alert-42")
	assert.True(t, strings.HasPrefix(twiml, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, twiml, `numDigits="1"`)
	assert.Contains(t, twiml, "/accident-webhook/voice-gather?alert_id=alert-42")
	assert.Contains(t, twiml, "press 1 now")
}

func TestLogCallerProducesCallRef(t *testing.T) {
	common.SetTestLoggerNop()

	ref, err := LogCaller{}.PlaceConfirmationCall("9876543210", "https://api.example.com", "alert-42")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "log-call-"))

	assert.NoError(t, LogNotifier{}.SendTextMessage("9876543210", "hello"))
}

func TestCallbackURLs(t *testing.T) {
	assert.Equal(t,
		"https://api.example.com/accident-webhook/voice-greeting?alert_id=a1",
		GreetingURL("https://api.example.com", "a1"))
	assert.Equal(t,
		"https://api.example.com/accident-webhook/voice-status?alert_id=a1",
		StatusCallbackURL("https://api.example.com", "a1"))
}
