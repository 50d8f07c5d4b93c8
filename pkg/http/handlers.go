package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"emergo.xyz/dispatch-service/pkg/auth"
	"emergo.xyz/dispatch-service/pkg/common"
	"emergo.xyz/dispatch-service/pkg/dispatch"
	"emergo.xyz/dispatch-service/pkg/models"
	"emergo.xyz/dispatch-service/pkg/notify"
)

// statusFromError maps the engine's error taxonomy onto HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, dispatch.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, dispatch.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, dispatch.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, dispatch.ErrPrecondition):
		return http.StatusForbidden
	case errors.Is(err, dispatch.ErrExternalService):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (rs *RestfulServer) abortWithError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), gin.H{"error": err.Error()})
}

func userView(u *models.User) gin.H {
	return gin.H{
		"id":                u.ID,
		"phone":             u.Phone,
		"name":              u.Name,
		"date_of_birth":     u.DateOfBirth,
		"gender":            u.Gender,
		"email":             u.Email,
		"current_location":  u.Location(),
		"detection_enabled": u.DetectionEnabled,
		"blacklisted":       u.IsBlacklisted(),
	}
}

func ambulanceView(a *models.Ambulance) gin.H {
	return gin.H{
		"id":                a.ID,
		"phone":             a.Phone,
		"name":              a.Name,
		"age":               a.Age,
		"date_of_birth":     a.DateOfBirth,
		"gender":            a.Gender,
		"vehicle_number":    a.VehicleNumber,
		"driving_license":   a.DrivingLicense,
		"type":              a.Type,
		"status":            a.Status,
		"current_location":  a.Location(),
		"profile_completed": a.ProfileCompleted,
	}
}

// requestView hydrates a request with the assigned driver's details and the
// live track, which is what both apps render.
func (rs *RestfulServer) requestView(req *models.Request) gin.H {
	if req == nil {
		return nil
	}
	view := gin.H{
		"id":                req.ID,
		"user_id":           req.UserID,
		"location":          req.Location(),
		"status":            req.Status,
		"source":            req.Source,
		"requested_type":    req.RequestedType,
		"selected_hospital": req.SelectedHospital,
		"created_at":        req.CreatedAt,
		"track":             []gin.H{},
	}
	if req.AssignedAmbulanceID == nil {
		return view
	}
	view["assigned_ambulance_id"] = *req.AssignedAmbulanceID
	if amb, err := rs.Dispatch.Profile.LookupAmbulance(*req.AssignedAmbulanceID); err == nil {
		view["assigned_ambulance"] = ambulanceView(amb)
	}
	if track, err := rs.Dispatch.Request.TrackForRequest(req.ID); err == nil {
		view["track"] = common.Mapper(track, func(t models.LocationTrack) gin.H {
			return gin.H{"lat": t.Lat, "lng": t.Lng}
		})
	}
	return view
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type SendOTPRequest struct {
	Phone string `json:"phone"`
}

var sendOTPRequestSchema = z.Struct(z.Shape{
	"Phone": z.String().Required(),
})

type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

var verifyOTPRequestSchema = z.Struct(z.Shape{
	"Phone": z.String().Required(),
	"OTP":   z.String().Required(),
})

func (rs *RestfulServer) sendOTP(c *gin.Context, role string) {
	var req SendOTPRequest
	if err := sendOTPRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	code, err := rs.OTPStore.Generate(role, req.Phone)
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	body := "Your Emergency App verification code is: " + code + ". Valid for 5 minutes."
	if err := rs.Dispatch.Notifier.SendTextMessage(notify.NormalizePhone(req.Phone), body); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to send otp"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully"})
}

func (rs *RestfulServer) UserSendOTP(c *gin.Context) {
	rs.sendOTP(c, auth.RoleUser)
}

func (rs *RestfulServer) UserVerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := verifyOTPRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}
	if err := rs.OTPStore.Verify(auth.RoleUser, req.Phone, req.OTP); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or expired OTP"})
		return
	}

	user, err := rs.Dispatch.Profile.GetOrCreateUser(req.Phone)
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	token, err := rs.Issuer.Issue(user.ID, auth.RoleUser)
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "OTP verified successfully",
		"token":   token,
		"user_id": user.ID,
		"user":    userView(user),
	})
}

func (rs *RestfulServer) UserMe(c *gin.Context) {
	user, err := rs.Dispatch.Profile.LookupUser(auth.CallerID(c))
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userView(user)})
}

type UserProfileRequest struct {
	Name             *string `json:"name"`
	DateOfBirth      *string `json:"date_of_birth"`
	Gender           *string `json:"gender"`
	Email            *string `json:"email"`
	DetectionEnabled *bool   `json:"accident_detection_enabled"`
}

var userProfileRequestSchema = z.Struct(z.Shape{
	"Name":             z.Ptr(z.String()),
	"DateOfBirth":      z.Ptr(z.String()),
	"Gender":           z.Ptr(z.String()),
	"Email":            z.Ptr(z.String()),
	"DetectionEnabled": z.Ptr(z.Bool()),
})

func (rs *RestfulServer) UserUpdateProfile(c *gin.Context) {
	var req UserProfileRequest
	if err := userProfileRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}
	if req.Name == nil && req.DateOfBirth == nil && req.Gender == nil && req.Email == nil && req.DetectionEnabled == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no data provided for update"})
		return
	}

	user, err := rs.Dispatch.Profile.UpdateUserProfile(auth.CallerID(c), models.UserProfileUpdate{
		Name:             req.Name,
		DateOfBirth:      req.DateOfBirth,
		Gender:           req.Gender,
		Email:            req.Email,
		DetectionEnabled: req.DetectionEnabled,
	})
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": userView(user)})
}

type LocationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

var locationRequestSchema = z.Struct(z.Shape{
	"Lat": z.Float64().Required(),
	"Lng": z.Float64().Required(),
})

func (rs *RestfulServer) UserUpdateLocation(c *gin.Context) {
	var req LocationRequest
	if err := locationRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}
	if err := rs.Dispatch.Profile.UpdateUserLocation(auth.CallerID(c), models.LatLng{Lat: req.Lat, Lng: req.Lng}); err != nil {
		rs.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Location updated successfully"})
}

type EmergencyRequest struct {
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	AmbulanceType string  `json:"ambulance_type"`
}

var emergencyRequestSchema = z.Struct(z.Shape{
	"Lat":           z.Float64().Required(),
	"Lng":           z.Float64().Required(),
	"AmbulanceType": z.String(),
})

func (rs *RestfulServer) UserRequestEmergency(c *gin.Context) {
	var req EmergencyRequest
	if err := emergencyRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	reqType := models.AmbulanceTypeAny
	if req.AmbulanceType != "" {
		parsed, ok := models.ParseAmbulanceType(req.AmbulanceType)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ambulance_type"})
			return
		}
		reqType = parsed
	}

	created, _, err := rs.Dispatch.Request.DispatchRequest(
		auth.CallerID(c),
		models.LatLng{Lat: req.Lat, Lng: req.Lng},
		models.RequestSourceManual,
		reqType,
	)
	if err != nil {
		rs.abortWithError(c, err)
		return
	}

	fresh, err := rs.Dispatch.Request.LookupRequest(created.ID)
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Emergency request created successfully",
		"request_id": fresh.ID,
		"request":    rs.requestView(fresh),
	})
}

func (rs *RestfulServer) UserMyRequest(c *gin.Context) {
	req, err := rs.Dispatch.Request.ActiveForUser(auth.CallerID(c))
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	if req == nil {
		c.JSON(http.StatusOK, gin.H{"request": nil, "message": "No active request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": rs.requestView(req)})
}

type SensorSubmitRequest struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	SpeedKmh  *float64  `json:"speed_kmh"`
	AccelX    float64   `json:"accel_x"`
	AccelY    float64   `json:"accel_y"`
	AccelZ    float64   `json:"accel_z"`
	GyroX     float64   `json:"gyro_x"`
	GyroY     float64   `json:"gyro_y"`
	GyroZ     float64   `json:"gyro_z"`
	Timestamp time.Time `json:"timestamp"`
	ShakeStop bool      `json:"shake_stop"`
}

var sensorSubmitRequestSchema = z.Struct(z.Shape{
	"Lat":       z.Float64().Required(),
	"Lng":       z.Float64().Required(),
	"SpeedKmh":  z.Ptr(z.Float64()),
	"AccelX":    z.Float64(),
	"AccelY":    z.Float64(),
	"AccelZ":    z.Float64(),
	"GyroX":     z.Float64(),
	"GyroY":     z.Float64(),
	"GyroZ":     z.Float64(),
	"Timestamp": z.Time(),
	"ShakeStop": z.Bool(),
})

func (r *SensorSubmitRequest) toModel() *models.SensorReading {
	return &models.SensorReading{
		Lat:       r.Lat,
		Lng:       r.Lng,
		SpeedKmh:  r.SpeedKmh,
		AccelX:    r.AccelX,
		AccelY:    r.AccelY,
		AccelZ:    r.AccelZ,
		GyroX:     r.GyroX,
		GyroY:     r.GyroY,
		GyroZ:     r.GyroZ,
		Timestamp: r.Timestamp,
	}
}

func (rs *RestfulServer) SensorSubmit(c *gin.Context) {
	callerID := auth.CallerID(c)
	if !rs.CheckCallerLimiter(callerID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req SensorSubmitRequest
	if err := sensorSubmitRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	outcome, err := rs.Dispatch.Reading.SubmitReading(callerID, req.toModel(), req.ShakeStop)
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"accident_detected":  outcome.Detected,
		"confidence":         outcome.Confidence,
		"reading_count":      outcome.ReadingCount,
		"cooldown_active":    outcome.CooldownActive,
		"trigger_reasons":    outcome.TriggerReasons,
		"alert_id":           outcome.AlertID,
		"request_id":         outcome.RequestID,
		"ambulance_assigned": outcome.AmbulanceAssigned,
	})
}

type SensorBatchRequest struct {
	Readings []SensorSubmitRequest `json:"readings"`
}

func (rs *RestfulServer) SensorSubmitBatch(c *gin.Context) {
	callerID := auth.CallerID(c)
	if !rs.CheckCallerLimiter(callerID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req SensorBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Readings) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "readings required"})
		return
	}

	readings := common.Mapper(req.Readings, func(r SensorSubmitRequest) models.SensorReading {
		return *r.toModel()
	})
	saved, err := rs.Dispatch.Reading.SubmitBatch(callerID, readings)
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

// SensorStatus reports the caller's current detection window and any open
// alert, which the app polls to drive its countdown UI.
func (rs *RestfulServer) SensorStatus(c *gin.Context) {
	callerID := auth.CallerID(c)

	window, err := rs.Dispatch.Reading.RecentWindow(callerID)
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	pending, err := rs.Dispatch.Alert.PendingForUser(callerID)
	if err != nil {
		rs.abortWithError(c, err)
		return
	}

	resp := gin.H{"reading_count": len(window), "pending_alert": nil}
	if pending != nil {
		resp["pending_alert"] = gin.H{
			"id":              pending.ID,
			"status":          pending.Status,
			"trigger_reasons": pending.TriggerReasons,
			"created_at":      pending.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, resp)
}
