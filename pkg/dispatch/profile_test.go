package dispatch

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"emergo.xyz/dispatch-service/pkg/common"
	"emergo.xyz/dispatch-service/pkg/models"
	_ "emergo.xyz/dispatch-service/pkg/testing"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestGetOrCreateUserIdempotent(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, d, _, _, _, _ := GetMockDispatchWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	phone := "+91" + uuid.NewString()[:10]
	first, err := d.Profile.GetOrCreateUser(phone)
	assert.NoError(t, err)
	assert.True(t, first.DetectionEnabled)

	second, err := d.Profile.GetOrCreateUser(phone)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	_, err = d.Profile.GetOrCreateUser("")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateUserProfilePartial(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, d, _, _, _, _ := GetMockDispatchWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	user := seedUser(t, d)

	disabled := false
	updated, err := d.Profile.UpdateUserProfile(user.ID, models.UserProfileUpdate{
		Name:             strPtr("Asha"),
		DetectionEnabled: &disabled,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Asha", updated.Name)
	assert.False(t, updated.DetectionEnabled)
	// untouched fields survive
	assert.Equal(t, user.Phone, updated.Phone)
}

func TestUpdateAmbulanceProfileDerivesCompleteness(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, d, _, _, _, _ := GetMockDispatchWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	amb, err := d.Profile.GetOrCreateAmbulance("+91" + uuid.NewString()[:10])
	assert.NoError(t, err)
	assert.False(t, amb.ProfileCompleted)
	assert.Equal(t, models.AmbulanceStatusInactive, amb.Status)

	partial, err := d.Profile.UpdateAmbulanceProfile(amb.ID, models.AmbulanceProfileUpdate{
		Name: strPtr("Ravi"),
		Age:  intPtr(30),
	})
	assert.NoError(t, err)
	assert.False(t, partial.ProfileCompleted)

	typ := models.AmbulanceTypeBasicLife
	full, err := d.Profile.UpdateAmbulanceProfile(amb.ID, models.AmbulanceProfileUpdate{
		DateOfBirth:    strPtr("1996-03-14"),
		Gender:         strPtr("male"),
		VehicleNumber:  strPtr("KA-01-AB-1234"),
		DrivingLicense: strPtr("DL-998877"),
		Type:           &typ,
	})
	assert.NoError(t, err)
	assert.True(t, full.ProfileCompleted)
	assert.Equal(t, models.AmbulanceTypeBasicLife, full.Type)
}

func TestSetAmbulanceStatusPreconditions(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, d, _, _, _, _ := GetMockDispatchWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()
	clearFleet(t, d)

	amb, err := d.Profile.GetOrCreateAmbulance("+91" + uuid.NewString()[:10])
	assert.NoError(t, err)

	// incomplete profile cannot go on duty
	_, err = d.Profile.SetAmbulanceStatus(amb.ID, models.AmbulanceStatusActive)
	assert.ErrorIs(t, err, ErrPrecondition)

	typ := models.AmbulanceTypeAny
	_, err = d.Profile.UpdateAmbulanceProfile(amb.ID, models.AmbulanceProfileUpdate{
		Name:           strPtr("Ravi"),
		Age:            intPtr(30),
		DateOfBirth:    strPtr("1996-03-14"),
		Gender:         strPtr("male"),
		VehicleNumber:  strPtr("KA-01-AB-1234"),
		DrivingLicense: strPtr("DL-998877"),
		Type:           &typ,
	})
	assert.NoError(t, err)

	// complete profile but no location yet
	_, err = d.Profile.SetAmbulanceStatus(amb.ID, models.AmbulanceStatusActive)
	assert.ErrorIs(t, err, ErrPrecondition)

	assert.NoError(t, d.Profile.UpdateAmbulanceLocation(amb.ID, models.LatLng{Lat: 12.97, Lng: 77.59}))

	claimed, err := d.Profile.SetAmbulanceStatus(amb.ID, models.AmbulanceStatusActive)
	assert.NoError(t, err)
	assert.Nil(t, claimed) // nothing pending to claim

	fresh, err := d.Profile.LookupAmbulance(amb.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.AmbulanceStatusActive, fresh.Status)
}

func TestSetAmbulanceStatusInactiveWhileAssigned(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, d, _, _, _, _ := GetMockDispatchWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()
	clearFleet(t, d)

	user := seedUser(t, d)
	unit := seedAmbulance(t, d, 12.98, 77.59, models.AmbulanceStatusActive, models.AmbulanceTypeAny)

	req, assigned, err := d.Request.DispatchRequest(user.ID, models.LatLng{Lat: 12.97, Lng: 77.59}, models.RequestSourceManual, models.AmbulanceTypeAny)
	assert.NoError(t, err)
	assert.NotNil(t, assigned)

	// going off duty mid-assignment is refused
	_, err = d.Profile.SetAmbulanceStatus(unit.ID, models.AmbulanceStatusInactive)
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = d.Request.Complete(req.ID, unit.ID)
	assert.NoError(t, err)

	_, err = d.Profile.SetAmbulanceStatus(unit.ID, models.AmbulanceStatusInactive)
	assert.NoError(t, err)
}

func TestUpdateAmbulanceLocationTracksAssignedRequest(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, d, _, _, _, _ := GetMockDispatchWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()
	clearFleet(t, d)

	user := seedUser(t, d)
	unit := seedAmbulance(t, d, 12.98, 77.59, models.AmbulanceStatusActive, models.AmbulanceTypeAny)

	// location updates while idle leave no track
	assert.NoError(t, d.Profile.UpdateAmbulanceLocation(unit.ID, models.LatLng{Lat: 12.981, Lng: 77.59}))

	req, _, err := d.Request.DispatchRequest(user.ID, models.LatLng{Lat: 12.97, Lng: 77.59}, models.RequestSourceManual, models.AmbulanceTypeAny)
	assert.NoError(t, err)

	assert.NoError(t, d.Profile.UpdateAmbulanceLocation(unit.ID, models.LatLng{Lat: 12.978, Lng: 77.59}))
	assert.NoError(t, d.Profile.UpdateAmbulanceLocation(unit.ID, models.LatLng{Lat: 12.975, Lng: 77.59}))

	track, err := d.Request.TrackForRequest(req.ID)
	assert.NoError(t, err)
	assert.Len(t, track, 2)
	assert.Equal(t, unit.ID, track[0].AmbulanceID)
	assert.Equal(t, 12.978, track[0].Lat)
}
