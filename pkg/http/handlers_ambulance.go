package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"emergo.xyz/dispatch-service/pkg/auth"
	"emergo.xyz/dispatch-service/pkg/models"
)

func (rs *RestfulServer) AmbulanceSendOTP(c *gin.Context) {
	rs.sendOTP(c, auth.RoleAmbulance)
}

func (rs *RestfulServer) AmbulanceVerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := verifyOTPRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}
	if err := rs.OTPStore.Verify(auth.RoleAmbulance, req.Phone, req.OTP); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or expired OTP"})
		return
	}

	amb, err := rs.Dispatch.Profile.GetOrCreateAmbulance(req.Phone)
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	token, err := rs.Issuer.Issue(amb.ID, auth.RoleAmbulance)
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "OTP verified successfully",
		"token":        token,
		"ambulance_id": amb.ID,
		"ambulance":    ambulanceView(amb),
	})
}

func (rs *RestfulServer) AmbulanceMe(c *gin.Context) {
	amb, err := rs.Dispatch.Profile.LookupAmbulance(auth.CallerID(c))
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ambulance": ambulanceView(amb)})
}

type AmbulanceProfileRequest struct {
	Name           *string `json:"name"`
	Age            *int    `json:"age"`
	DateOfBirth    *string `json:"date_of_birth"`
	Gender         *string `json:"gender"`
	VehicleNumber  *string `json:"vehicle_number"`
	DrivingLicense *string `json:"driving_license"`
	Type           *string `json:"type"`
}

var ambulanceProfileRequestSchema = z.Struct(z.Shape{
	"Name":           z.Ptr(z.String()),
	"Age":            z.Ptr(z.Int()),
	"DateOfBirth":    z.Ptr(z.String()),
	"Gender":         z.Ptr(z.String()),
	"VehicleNumber":  z.Ptr(z.String()),
	"DrivingLicense": z.Ptr(z.String()),
	"Type":           z.Ptr(z.String()),
})

func (rs *RestfulServer) AmbulanceUpdateProfile(c *gin.Context) {
	var req AmbulanceProfileRequest
	if err := ambulanceProfileRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	upd := models.AmbulanceProfileUpdate{
		Name:           req.Name,
		Age:            req.Age,
		DateOfBirth:    req.DateOfBirth,
		Gender:         req.Gender,
		VehicleNumber:  req.VehicleNumber,
		DrivingLicense: req.DrivingLicense,
	}
	if req.Type != nil {
		parsed, ok := models.ParseAmbulanceType(*req.Type)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ambulance type"})
			return
		}
		upd.Type = &parsed
	}

	amb, err := rs.Dispatch.Profile.UpdateAmbulanceProfile(auth.CallerID(c), upd)
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "ambulance": ambulanceView(amb)})
}

type AmbulanceStatusRequest struct {
	Status string `json:"status"`
}

var ambulanceStatusRequestSchema = z.Struct(z.Shape{
	"Status": z.String().Required(),
})

func (rs *RestfulServer) AmbulanceSetStatus(c *gin.Context) {
	var req AmbulanceStatusRequest
	if err := ambulanceStatusRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	claimed, err := rs.Dispatch.Profile.SetAmbulanceStatus(auth.CallerID(c), models.AmbulanceStatus(req.Status))
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":          "Status updated successfully",
		"assigned_request": rs.requestView(claimed),
	})
}

func (rs *RestfulServer) AmbulanceUpdateLocation(c *gin.Context) {
	var req LocationRequest
	if err := locationRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}
	if err := rs.Dispatch.Profile.UpdateAmbulanceLocation(auth.CallerID(c), models.LatLng{Lat: req.Lat, Lng: req.Lng}); err != nil {
		rs.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Location updated successfully"})
}

// AmbulanceAssignedDetails returns the driver's current assignment with the
// requester's contact and location.
func (rs *RestfulServer) AmbulanceAssignedDetails(c *gin.Context) {
	req, err := rs.Dispatch.Request.AssignedForAmbulance(auth.CallerID(c))
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	if req == nil {
		c.JSON(http.StatusOK, gin.H{"request": nil, "message": "No assigned request"})
		return
	}

	view := rs.requestView(req)
	if user, err := rs.Dispatch.Profile.LookupUser(req.UserID); err == nil {
		view["user"] = gin.H{
			"id":               user.ID,
			"name":             user.Name,
			"phone":            user.Phone,
			"current_location": user.Location(),
		}
	}
	c.JSON(http.StatusOK, gin.H{"request": view})
}

type SelectHospitalRequest struct {
	RequestID string  `json:"request_id"`
	Name      string  `json:"name"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

var selectHospitalRequestSchema = z.Struct(z.Shape{
	"RequestID": z.String().Required(),
	"Name":      z.String().Required(),
	"Lat":       z.Float64().Required(),
	"Lng":       z.Float64().Required(),
})

func (rs *RestfulServer) AmbulanceSelectHospital(c *gin.Context) {
	var req SelectHospitalRequest
	if err := selectHospitalRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	err := rs.Dispatch.Request.SelectHospital(req.RequestID, auth.CallerID(c), models.Hospital{
		Name: req.Name,
		Lat:  req.Lat,
		Lng:  req.Lng,
	})
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hospital selected successfully"})
}

func (rs *RestfulServer) AmbulanceCompleteRequest(c *gin.Context) {
	req, err := rs.Dispatch.Request.Complete(c.Param("request_id"), auth.CallerID(c))
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request completed successfully", "request": rs.requestView(req)})
}

func (rs *RestfulServer) AmbulanceReportIssue(c *gin.Context) {
	replacement, err := rs.Dispatch.Request.ReportIssue(c.Param("request_id"), auth.CallerID(c))
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	resp := gin.H{"message": "Issue reported, request reassigned"}
	if replacement == nil {
		resp["message"] = "Issue reported, waiting for another ambulance"
	}
	c.JSON(http.StatusOK, resp)
}

func (rs *RestfulServer) AmbulanceReportFake(c *gin.Context) {
	user, err := rs.Dispatch.Request.ReportFake(c.Param("request_id"), auth.CallerID(c))
	if err != nil {
		rs.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":          "Fake request reported",
		"demerit_points":   user.DemeritPoints,
		"user_blacklisted": user.IsBlacklisted(),
	})
}
