package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"emergo.xyz/dispatch-service/pkg/auth"
	"emergo.xyz/dispatch-service/pkg/dispatch"
)

type RestfulServer struct {
	Server           *gin.Engine
	Dispatch         *dispatch.Dispatch
	Issuer           *auth.TokenIssuer
	OTPStore         *auth.OTPStore
	RateLimiterStore *dispatch.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(callerID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(callerID)
	}
}

func (rs *RestfulServer) CheckCallerLimiter(callerID string) bool {
	limiter := rs.GetLimiter(callerID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	user := rs.Server.Group("/user")
	{
		user.POST("/send-otp", rs.UserSendOTP)
		user.POST("/verify-otp", rs.UserVerifyOTP)

		authed := user.Group("", auth.RequireRole(rs.Issuer, auth.RoleUser))
		{
			authed.GET("/me", rs.UserMe)
			authed.POST("/update-profile", rs.UserUpdateProfile)
			authed.POST("/update-location", rs.UserUpdateLocation)
			authed.POST("/request-emergency", rs.UserRequestEmergency)
			authed.GET("/my-request", rs.UserMyRequest)
		}
	}

	sensor := rs.Server.Group("/sensor", auth.RequireRole(rs.Issuer, auth.RoleUser))
	{
		sensor.POST("/submit", rs.SensorSubmit)
		sensor.POST("/submit-batch", rs.SensorSubmitBatch)
		sensor.GET("/status", rs.SensorStatus)
	}

	ambulance := rs.Server.Group("/ambulance")
	{
		ambulance.POST("/send-otp", rs.AmbulanceSendOTP)
		ambulance.POST("/verify-otp", rs.AmbulanceVerifyOTP)

		authed := ambulance.Group("", auth.RequireRole(rs.Issuer, auth.RoleAmbulance))
		{
			authed.GET("/me", rs.AmbulanceMe)
			authed.POST("/update-profile", rs.AmbulanceUpdateProfile)
			authed.PUT("/status", rs.AmbulanceSetStatus)
			authed.POST("/update-location", rs.AmbulanceUpdateLocation)
			authed.GET("/assigned-details", rs.AmbulanceAssignedDetails)
			authed.POST("/select-hospital", rs.AmbulanceSelectHospital)
			authed.PUT("/complete-request/:request_id", rs.AmbulanceCompleteRequest)
			authed.POST("/report-issue/:request_id", rs.AmbulanceReportIssue)
			authed.POST("/report-fake/:request_id", rs.AmbulanceReportFake)
		}
	}

	// Voice-provider webhooks: no bearer auth, the provider posts form data.
	webhook := rs.Server.Group("/accident-webhook")
	{
		webhook.GET("/voice-greeting", rs.VoiceGreeting)
		webhook.POST("/voice-greeting", rs.VoiceGreeting)
		webhook.POST("/voice-gather", rs.VoiceGather)
		webhook.POST("/voice-status", rs.VoiceStatus)
	}
}
