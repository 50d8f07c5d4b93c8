package dispatch

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"emergo.xyz/dispatch-service/pkg/common"
	"emergo.xyz/dispatch-service/pkg/dispatch/mocks"
	"emergo.xyz/dispatch-service/pkg/models"
	_ "emergo.xyz/dispatch-service/pkg/testing"
)

func seedUser(t *testing.T, d *Dispatch) *models.User {
	t.Helper()
	user := models.User{
		ID:               uuid.NewString(),
		Phone:            "+91" + uuid.NewString()[:10],
		DetectionEnabled: true,
		CreatedAt:        time.Now(),
	}
	assert.NoError(t, d.Db.Conn.Create(&user).Error)
	return &user
}

func TestCreateAlertPendingInvariant(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, d, _, _, _, _ := GetMockDispatchWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	mockCaller := mocks.NewMockCaller(ctrl)
	d.Caller = mockCaller
	user := seedUser(t, d)

	mockCaller.EXPECT().
		PlaceConfirmationCall(user.Phone, gomock.Any(), gomock.Any()).
		Return("call-ref-1", nil)

	loc := models.LatLng{Lat: 12.9716, Lng: 77.5946}
	alert, err := d.Alert.CreateAlert(user.ID, loc, []string{"accel_spike"})
	assert.NoError(t, err)
	assert.Equal(t, models.AlertStatusPendingVerification, alert.Status)
	assert.Equal(t, []string{"accel_spike"}, alert.TriggerReasons)

	// a second detection while the first is unresolved may not spawn a
	// second alert
	_, err = d.Alert.CreateAlert(user.ID, loc, nil)
	assert.ErrorIs(t, err, ErrConflict)

	pending, err := d.Alert.PendingForUser(user.ID)
	assert.NoError(t, err)
	assert.NotNil(t, pending)
	assert.Equal(t, alert.ID, pending.ID)
}

func TestCreateAlertCooldown(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, d, _, _, _, _ := GetMockDispatchWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	mockCaller := mocks.NewMockCaller(ctrl)
	d.Caller = mockCaller
	user := seedUser(t, d)

	mockCaller.EXPECT().
		PlaceConfirmationCall(user.Phone, gomock.Any(), gomock.Any()).
		Return("call-ref-1", nil)

	loc := models.LatLng{Lat: 12.9716, Lng: 77.5946}
	alert, err := d.Alert.CreateAlert(user.ID, loc, nil)
	assert.NoError(t, err)

	// resolved safe, but the cooldown window still blocks re-triggering
	err = d.Alert.RecordCallOutcome(alert.ID, models.CallOutcome{Digits: "1", CallStatus: "completed", Duration: 12})
	assert.NoError(t, err)

	_, err = d.Alert.CreateAlert(user.ID, loc, nil)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateAlertCallPlacementFailure(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, d, _, _, _, _ := GetMockDispatchWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	mockCaller := mocks.NewMockCaller(ctrl)
	d.Caller = mockCaller
	user := seedUser(t, d)

	mockCaller.EXPECT().
		PlaceConfirmationCall(user.Phone, gomock.Any(), gomock.Any()).
		Return("", errors.New("provider down"))

	alert, err := d.Alert.CreateAlert(user.ID, models.LatLng{Lat: 1, Lng: 2}, nil)
	assert.ErrorIs(t, err, ErrExternalService)

	// an unverifiable alert resolves conservatively instead of dispatching
	fresh, ferr := d.Alert.LookupAlert(alert.ID)
	assert.NoError(t, ferr)
	assert.Equal(t, models.AlertStatusFalsePositive, fresh.Status)
	assert.Nil(t, fresh.RequestID)
}

func TestRecordCallOutcomeSafeDigit(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, d, _, _, _, _ := GetMockDispatchWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	mockCaller := mocks.NewMockCaller(ctrl)
	d.Caller = mockCaller
	user := seedUser(t, d)

	mockCaller.EXPECT().
		PlaceConfirmationCall(user.Phone, gomock.Any(), gomock.Any()).
		Return("call-ref-1", nil)

	alert, err := d.Alert.CreateAlert(user.ID, models.LatLng{Lat: 1, Lng: 2}, nil)
	assert.NoError(t, err)

	err = d.Alert.RecordCallOutcome(alert.ID, models.CallOutcome{
		CallRef: "call-ref-1", Digits: "1", CallStatus: "completed", Duration: 20,
	})
	assert.NoError(t, err)

	fresh, err := d.Alert.LookupAlert(alert.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.AlertStatusFalsePositive, fresh.Status)
	assert.Nil(t, fresh.RequestID)
	assert.Len(t, fresh.VerificationCalls, 1)
	assert.True(t, fresh.VerificationCalls[0].Answered)
	// the callback touches the alert's modification time
	assert.True(t, fresh.UpdatedAt.After(alert.UpdatedAt))
}

func TestRecordCallOutcomeConfirmsAndIsIdempotent(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, d, _, _, _, _ := GetMockDispatchWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()
	clearFleet(t, d)

	mockCaller := mocks.NewMockCaller(ctrl)
	d.Caller = mockCaller
	user := seedUser(t, d)

	mockCaller.EXPECT().
		PlaceConfirmationCall(user.Phone, gomock.Any(), gomock.Any()).
		Return("call-ref-1", nil)

	alert, err := d.Alert.CreateAlert(user.ID, models.LatLng{Lat: 12.9716, Lng: 77.5946}, nil)
	assert.NoError(t, err)

	// no-answer means help goes out
	outcome := models.CallOutcome{CallRef: "call-ref-1", CallStatus: "no-answer", Duration: 0}
	assert.NoError(t, d.Alert.RecordCallOutcome(alert.ID, outcome))

	fresh, err := d.Alert.LookupAlert(alert.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.AlertStatusConfirmed, fresh.Status)
	assert.NotNil(t, fresh.RequestID)

	req, err := d.Request.LookupRequest(*fresh.RequestID)
	assert.NoError(t, err)
	assert.Equal(t, models.RequestSourceAutoDetected, req.Source)
	assert.Equal(t, models.RequestStatusPending, req.Status) // no fleet seeded

	// a replayed provider callback is a no-op
	assert.NoError(t, d.Alert.RecordCallOutcome(alert.ID, outcome))

	var reqCount int64
	d.Db.Conn.Model(&models.Request{}).Where("user_id = ?", user.ID).Count(&reqCount)
	assert.EqualValues(t, 1, reqCount)

	after, err := d.Alert.LookupAlert(alert.ID)
	assert.NoError(t, err)
	assert.Equal(t, *fresh.RequestID, *after.RequestID)
	assert.Len(t, after.VerificationCalls, 1)
}

func TestConfirmBlacklistedUserResolvesFalsePositive(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, d, _, _, _, _ := GetMockDispatchWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	mockCaller := mocks.NewMockCaller(ctrl)
	d.Caller = mockCaller
	user := seedUser(t, d)

	mockCaller.EXPECT().
		PlaceConfirmationCall(user.Phone, gomock.Any(), gomock.Any()).
		Return("call-ref-1", nil)

	alert, err := d.Alert.CreateAlert(user.ID, models.LatLng{Lat: 1, Lng: 2}, nil)
	assert.NoError(t, err)

	// blacklisted between detection and confirmation
	assert.NoError(t, d.Db.Conn.Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("blacklisted", true).Error)

	assert.NoError(t, d.Alert.RecordCallOutcome(alert.ID, models.CallOutcome{CallStatus: "no-answer"}))

	fresh, err := d.Alert.LookupAlert(alert.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.AlertStatusFalsePositive, fresh.Status)
	assert.Nil(t, fresh.RequestID)
}
