package dispatch

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"emergo.xyz/dispatch-service/pkg/common"
	"emergo.xyz/dispatch-service/pkg/models"
)

func profileLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameDispatchCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryProfile),
	)
}

func (d *Dispatch) getOrCreateUser(phone string) (*models.User, error) {
	if phone == "" {
		return nil, validationErr("phone required")
	}
	var user models.User
	err := d.Db.Conn.First(&user, "phone = ?", phone).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{
		ID:               uuid.NewString(),
		Phone:            phone,
		DetectionEnabled: true,
		CreatedAt:        time.Now(),
	}
	if err := d.Db.Conn.Create(&user).Error; err != nil {
		return nil, err
	}
	profileLogger().Info("User created", zap.String("user_id", user.ID))
	return &user, nil
}

func (d *Dispatch) lookupUser(userID string) (*models.User, error) {
	if userID == "" {
		return nil, validationErr("user id required")
	}
	var user models.User
	if err := d.Db.Conn.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("user", userID)
		}
		return nil, err
	}
	return &user, nil
}

func (d *Dispatch) updateUserProfile(userID string, upd models.UserProfileUpdate) (*models.User, error) {
	if _, err := d.Profile.LookupUser(userID); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.DateOfBirth != nil {
		fields["date_of_birth"] = *upd.DateOfBirth
	}
	if upd.Gender != nil {
		fields["gender"] = *upd.Gender
	}
	if upd.Email != nil {
		fields["email"] = *upd.Email
	}
	if upd.DetectionEnabled != nil {
		fields["detection_enabled"] = *upd.DetectionEnabled
	}
	if len(fields) > 0 {
		if err := d.Db.Conn.Model(&models.User{}).
			Where("id = ?", userID).
			Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return d.Profile.LookupUser(userID)
}

func (d *Dispatch) updateUserLocation(userID string, loc models.LatLng) error {
	now := time.Now()
	res := d.Db.Conn.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"current_lat":         loc.Lat,
			"current_lng":         loc.Lng,
			"location_updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFoundErr("user", userID)
	}
	return nil
}

func (d *Dispatch) getOrCreateAmbulance(phone string) (*models.Ambulance, error) {
	if phone == "" {
		return nil, validationErr("phone required")
	}
	var amb models.Ambulance
	err := d.Db.Conn.First(&amb, "phone = ?", phone).Error
	if err == nil {
		return &amb, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	amb = models.Ambulance{
		ID:        uuid.NewString(),
		Phone:     phone,
		Type:      models.AmbulanceTypeAny,
		Status:    models.AmbulanceStatusInactive,
		CreatedAt: time.Now(),
	}
	if err := d.Db.Conn.Create(&amb).Error; err != nil {
		return nil, err
	}
	profileLogger().Info("Ambulance created", zap.String("ambulance_id", amb.ID))
	return &amb, nil
}

func (d *Dispatch) lookupAmbulance(ambulanceID string) (*models.Ambulance, error) {
	if ambulanceID == "" {
		return nil, validationErr("ambulance id required")
	}
	var amb models.Ambulance
	if err := d.Db.Conn.First(&amb, "id = ?", ambulanceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("ambulance", ambulanceID)
		}
		return nil, err
	}
	return &amb, nil
}

func (d *Dispatch) updateAmbulanceProfile(ambulanceID string, upd models.AmbulanceProfileUpdate) (*models.Ambulance, error) {
	amb, err := d.Profile.LookupAmbulance(ambulanceID)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Age != nil {
		fields["age"] = *upd.Age
	}
	if upd.DateOfBirth != nil {
		fields["date_of_birth"] = *upd.DateOfBirth
	}
	if upd.Gender != nil {
		fields["gender"] = *upd.Gender
	}
	if upd.VehicleNumber != nil {
		fields["vehicle_number"] = *upd.VehicleNumber
	}
	if upd.DrivingLicense != nil {
		fields["driving_license"] = *upd.DrivingLicense
	}
	if upd.Type != nil {
		fields["type"] = *upd.Type
	}
	if len(fields) == 0 {
		return amb, nil
	}
	if err := d.Db.Conn.Model(&models.Ambulance{}).
		Where("id = ?", ambulanceID).
		Updates(fields).Error; err != nil {
		return nil, err
	}

	// profile completeness is derived, never client-asserted
	fresh, err := d.Profile.LookupAmbulance(ambulanceID)
	if err != nil {
		return nil, err
	}
	if completed := fresh.ProfileComplete(); completed != fresh.ProfileCompleted {
		if err := d.Db.Conn.Model(&models.Ambulance{}).
			Where("id = ?", ambulanceID).
			Update("profile_completed", completed).Error; err != nil {
			return nil, err
		}
		fresh.ProfileCompleted = completed
	}
	return fresh, nil
}

// updateAmbulanceLocation records the new position and, while the unit holds
// an assigned request, appends a track point for playback.
func (d *Dispatch) updateAmbulanceLocation(ambulanceID string, loc models.LatLng) error {
	now := time.Now()
	res := d.Db.Conn.Model(&models.Ambulance{}).
		Where("id = ?", ambulanceID).
		Updates(map[string]any{
			"current_lat":         loc.Lat,
			"current_lng":         loc.Lng,
			"location_updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFoundErr("ambulance", ambulanceID)
	}

	req, err := d.Request.AssignedForAmbulance(ambulanceID)
	if err != nil {
		return err
	}
	if req != nil {
		track := models.LocationTrack{
			RequestID:   req.ID,
			AmbulanceID: ambulanceID,
			Lat:         loc.Lat,
			Lng:         loc.Lng,
			CreatedAt:   now,
		}
		if err := d.Db.Conn.Create(&track).Error; err != nil {
			profileLogger().Warn("Track append failed",
				zap.String("request_id", req.ID), zap.Error(err))
		}
	}
	return nil
}

// setAmbulanceStatus flips availability. Going active requires a complete
// profile and a known location, and immediately claims the nearest pending
// request when one exists. Going inactive is refused while the unit holds an
// assigned request; report an issue instead.
func (d *Dispatch) setAmbulanceStatus(ambulanceID string, status models.AmbulanceStatus) (*models.Request, error) {
	if status != models.AmbulanceStatusActive && status != models.AmbulanceStatusInactive {
		return nil, validationErr("invalid status %q", status)
	}
	amb, err := d.Profile.LookupAmbulance(ambulanceID)
	if err != nil {
		return nil, err
	}

	held, err := d.Request.AssignedForAmbulance(ambulanceID)
	if err != nil {
		return nil, err
	}

	if status == models.AmbulanceStatusActive {
		if !amb.ProfileComplete() {
			return nil, preconditionErr("ambulance %s profile is incomplete", ambulanceID)
		}
		if amb.Location() == nil {
			return nil, preconditionErr("ambulance %s has no known location", ambulanceID)
		}
	} else if held != nil {
		return nil, preconditionErr("ambulance %s holds request %s; report an issue to release it", ambulanceID, held.ID)
	}

	if err := d.Db.Conn.Model(&models.Ambulance{}).
		Where("id = ?", ambulanceID).
		Update("status", status).Error; err != nil {
		return nil, err
	}
	amb.Status = status

	profileLogger().Info("Ambulance status changed",
		zap.String("ambulance_id", ambulanceID), zap.String("status", string(status)))

	if status == models.AmbulanceStatusActive && held == nil {
		return d.Request.ClaimNearestPending(amb)
	}
	return held, nil
}

type IProfileImpl struct {
	dispatch *Dispatch
}

func (ip *IProfileImpl) GetOrCreateUser(phone string) (*models.User, error) {
	return ip.dispatch.getOrCreateUser(phone)
}

func (ip *IProfileImpl) LookupUser(userID string) (*models.User, error) {
	return ip.dispatch.lookupUser(userID)
}

func (ip *IProfileImpl) UpdateUserProfile(userID string, upd models.UserProfileUpdate) (*models.User, error) {
	return ip.dispatch.updateUserProfile(userID, upd)
}

func (ip *IProfileImpl) UpdateUserLocation(userID string, loc models.LatLng) error {
	return ip.dispatch.updateUserLocation(userID, loc)
}

func (ip *IProfileImpl) GetOrCreateAmbulance(phone string) (*models.Ambulance, error) {
	return ip.dispatch.getOrCreateAmbulance(phone)
}

func (ip *IProfileImpl) LookupAmbulance(ambulanceID string) (*models.Ambulance, error) {
	return ip.dispatch.lookupAmbulance(ambulanceID)
}

func (ip *IProfileImpl) UpdateAmbulanceProfile(ambulanceID string, upd models.AmbulanceProfileUpdate) (*models.Ambulance, error) {
	return ip.dispatch.updateAmbulanceProfile(ambulanceID, upd)
}

func (ip *IProfileImpl) UpdateAmbulanceLocation(ambulanceID string, loc models.LatLng) error {
	return ip.dispatch.updateAmbulanceLocation(ambulanceID, loc)
}

func (ip *IProfileImpl) SetAmbulanceStatus(ambulanceID string, status models.AmbulanceStatus) (*models.Request, error) {
	return ip.dispatch.setAmbulanceStatus(ambulanceID, status)
}

func (d *Dispatch) GetIProfile() IProfile {
	return &IProfileImpl{dispatch: d}
}
