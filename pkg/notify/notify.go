package notify

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"emergo.xyz/dispatch-service/pkg/common"
)

func notifyLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameDispatchCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryNotify),
	)
}

// NormalizePhone coerces a dialable number into E.164, defaulting to the +91
// country code for bare 10-digit numbers.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return phone
	}
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	phone = strings.TrimPrefix(phone, "0")
	if len(phone) == 10 {
		return "+91" + phone
	}
	return "+" + phone
}

// LogNotifier writes outbound text messages to the log instead of a telephony
// provider. It is the default when no provider credentials are configured and
// keeps every notification path exercisable in development.
type LogNotifier struct{}

func (LogNotifier) SendTextMessage(phone, body string) error {
	notifyLogger().Info("SMS (log delivery)",
		zap.String("to", NormalizePhone(phone)),
		zap.String("body", body))
	return nil
}

// LogCaller stands in for the voice provider: it fabricates a call reference
// and logs the greeting URL the provider would fetch. Operators drive the
// webhook endpoints by hand (or via tests) to complete the flow.
type LogCaller struct{}

func (LogCaller) PlaceConfirmationCall(phone, callbackBaseURL, alertID string) (string, error) {
	callRef := "log-call-" + uuid.NewString()
	notifyLogger().Info("Verification call (log delivery)",
		zap.String("to", NormalizePhone(phone)),
		zap.String("call_ref", callRef),
		zap.String("greeting_url", GreetingURL(callbackBaseURL, alertID)),
		zap.String("status_callback_url", StatusCallbackURL(callbackBaseURL, alertID)))
	return callRef, nil
}

func GreetingURL(callbackBaseURL, alertID string) string {
	return fmt.Sprintf("%s/accident-webhook/voice-greeting?alert_id=%s", callbackBaseURL, alertID)
}

func StatusCallbackURL(callbackBaseURL, alertID string) string {
	return fmt.Sprintf("%s/accident-webhook/voice-status?alert_id=%s", callbackBaseURL, alertID)
}

// GreetingTwiML is the voice prompt played on the verification call. A single
// keypress of 1 means the user is safe; anything else, including silence,
// escalates through the gather action.
func GreetingTwiML(alertID string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<Response>
    <Gather numDigits="1" timeout="8" action="/accident-webhook/voice-gather?alert_id=%s" method="POST">
        <Say voice="alice">This is an automated call from Emergency Response. We detected a possible accident at your location. If you are safe and do not need help, please press 1 now.</Say>
    </Gather>
    <Say voice="alice">If you did not press 1, we will assume you need assistance and send help.</Say>
</Response>`, alertID)
}

// SafeTwiML closes the call after the user pressed 1.
func SafeTwiML() string {
	return `<?xml version="1.0" encoding="UTF-8"?><Response><Say>Thank you for confirming you are safe. No emergency services will be dispatched.</Say></Response>`
}

// EmergencyTwiML closes the call when anything other than 1 was pressed.
func EmergencyTwiML() string {
	return `<?xml version="1.0" encoding="UTF-8"?><Response><Say>We are sending help to your location immediately.</Say></Response>`
}

// ErrorTwiML is returned when the webhook cannot tie the call to an alert.
func ErrorTwiML() string {
	return `<?xml version="1.0" encoding="UTF-8"?><Response><Say>Error processing call.</Say></Response>`
}
