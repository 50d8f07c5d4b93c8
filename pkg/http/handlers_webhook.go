package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"emergo.xyz/dispatch-service/pkg/common"
	"emergo.xyz/dispatch-service/pkg/models"
	"emergo.xyz/dispatch-service/pkg/notify"
)

func webhookLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameRestfulServer,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)
}

func alertIDFromCall(c *gin.Context) string {
	if id := c.Query("alert_id"); id != "" {
		return id
	}
	return c.PostForm("alert_id")
}

// VoiceGreeting serves the TwiML prompt the provider plays when the
// verification call connects.
func (rs *RestfulServer) VoiceGreeting(c *gin.Context) {
	alertID := alertIDFromCall(c)
	if alertID == "" {
		c.Data(http.StatusOK, "application/xml", []byte(notify.ErrorTwiML()))
		return
	}
	if _, err := rs.Dispatch.Alert.LookupAlert(alertID); err != nil {
		c.Data(http.StatusOK, "application/xml", []byte(notify.ErrorTwiML()))
		return
	}
	c.Data(http.StatusOK, "application/xml", []byte(notify.GreetingTwiML(alertID)))
}

// VoiceGather handles the keypress from the verification call. Pressing 1
// means the user is safe; any other digit escalates immediately.
func (rs *RestfulServer) VoiceGather(c *gin.Context) {
	alertID := alertIDFromCall(c)
	if alertID == "" {
		c.Data(http.StatusOK, "application/xml", []byte(notify.ErrorTwiML()))
		return
	}

	digits := c.PostForm("Digits")
	outcome := models.CallOutcome{
		CallRef:    c.PostForm("CallSid"),
		Digits:     digits,
		CallStatus: "completed",
		Duration:   1, // the user interacted, the call was answered
	}
	if err := rs.Dispatch.Alert.RecordCallOutcome(alertID, outcome); err != nil {
		webhookLogger().Error("Voice gather processing failed",
			zap.String("alert_id", alertID), zap.Error(err))
		c.Data(http.StatusOK, "application/xml", []byte(notify.ErrorTwiML()))
		return
	}

	if digits == "1" {
		c.Data(http.StatusOK, "application/xml", []byte(notify.SafeTwiML()))
		return
	}
	c.Data(http.StatusOK, "application/xml", []byte(notify.EmergencyTwiML()))
}

// VoiceStatus is the provider's call-completion callback. Always answers 200:
// the engine's idempotency makes replays harmless, and a non-2xx would only
// trigger provider retries.
func (rs *RestfulServer) VoiceStatus(c *gin.Context) {
	alertID := alertIDFromCall(c)
	if alertID == "" {
		c.Status(http.StatusOK)
		return
	}

	duration, _ := strconv.Atoi(c.PostForm("CallDuration"))
	outcome := models.CallOutcome{
		CallRef:    c.PostForm("CallSid"),
		CallStatus: c.PostForm("CallStatus"),
		Duration:   duration,
	}
	if err := rs.Dispatch.Alert.RecordCallOutcome(alertID, outcome); err != nil {
		webhookLogger().Error("Voice status processing failed",
			zap.String("alert_id", alertID), zap.Error(err))
	}
	c.Status(http.StatusOK)
}
