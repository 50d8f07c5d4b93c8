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

func alertLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameDispatchCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)
}

// createAlert opens the verification state machine for a suspected accident.
// The pending-alert-per-user invariant and the cooldown window are checked in
// the same transaction that inserts the row, so two near-simultaneous sensor
// submissions cannot spawn two alerts for one incident.
func (d *Dispatch) createAlert(userID string, loc models.LatLng, reasons []string) (*models.AccidentAlert, error) {
	user, err := d.Profile.LookupUser(userID)
	if err != nil {
		return nil, err
	}

	cooldown := d.Cfg.AlertCooldown
	if cooldown == 0 {
		cooldown = DefaultAlertCooldown
	}

	now := time.Now()
	alert := models.AccidentAlert{
		ID:             uuid.NewString(),
		UserID:         userID,
		Lat:            loc.Lat,
		Lng:            loc.Lng,
		Status:         models.AlertStatusPendingVerification,
		TriggerReasons: reasons,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = d.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var pending int64
		if err := tx.Model(&models.AccidentAlert{}).
			Where("user_id = ? AND status = ?", userID, models.AlertStatusPendingVerification).
			Count(&pending).Error; err != nil {
			return err
		}
		if pending > 0 {
			return conflictErr("user %s already has a pending alert", userID)
		}

		var recent int64
		if err := tx.Model(&models.AccidentAlert{}).
			Where("user_id = ? AND created_at >= ?", userID, now.Add(-cooldown)).
			Count(&recent).Error; err != nil {
			return err
		}
		if recent > 0 {
			return conflictErr("alert cooldown active for user %s", userID)
		}

		return tx.Create(&alert).Error
	})
	if err != nil {
		return nil, err
	}

	alertLogger().Info("Alert created", zap.Reflect("alert", alert))

	if err := d.placeVerificationCall(&alert, user.Phone); err != nil {
		// cannot verify, do not escalate: resolve conservatively and
		// surface the delivery failure to the caller's logs
		alertLogger().Error("Verification call placement failed, resolving alert as false positive",
			zap.String("alert_id", alert.ID), zap.Error(err))
		if derr := d.resolveAlert(alert.ID, models.AlertStatusFalsePositive); derr != nil {
			alertLogger().Error("Failed to resolve unverifiable alert", zap.String("alert_id", alert.ID), zap.Error(derr))
		}
		fresh, _ := d.lookupAlert(alert.ID)
		if fresh != nil {
			return fresh, externalErr("place confirmation call", err)
		}
		return &alert, externalErr("place confirmation call", err)
	}

	return &alert, nil
}

func (d *Dispatch) placeVerificationCall(alert *models.AccidentAlert, phone string) error {
	if d.Caller == nil {
		return errors.New("caller service not available")
	}
	callRef, err := d.Caller.PlaceConfirmationCall(phone, d.Cfg.CallbackBaseURL, alert.ID)
	if err != nil {
		return err
	}
	alertLogger().Info("Verification call placed",
		zap.String("alert_id", alert.ID), zap.String("call_ref", callRef))
	return nil
}

// resolveAlert performs the terminal transition with a conditional update, so
// replayed callbacks and concurrent resolutions collapse to one winner.
// Returns ErrConflict if the alert had already left pending_verification.
func (d *Dispatch) resolveAlert(alertID string, next models.AlertStatus) error {
	if !models.AlertStatusPendingVerification.CanTransitionTo(next) {
		return validationErr("alert cannot resolve to %s", next)
	}
	res := d.Db.Conn.Model(&models.AccidentAlert{}).
		Where("id = ? AND status = ?", alertID, models.AlertStatusPendingVerification).
		Updates(map[string]any{"status": next, "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return conflictErr("alert %s already resolved", alertID)
	}
	alertLogger().Info("Alert resolved", zap.String("alert_id", alertID), zap.String("status", string(next)))
	return nil
}

// recordCallOutcome is the webhook entry for verification-call results. It is
// idempotent: once the alert has left pending_verification every further
// callback is a no-op.
func (d *Dispatch) recordCallOutcome(alertID string, outcome models.CallOutcome) error {
	alert, err := d.lookupAlert(alertID)
	if err != nil {
		return err
	}
	if alert.Status != models.AlertStatusPendingVerification {
		alertLogger().Info("Callback for already-resolved alert ignored",
			zap.String("alert_id", alertID), zap.String("status", string(alert.Status)))
		return nil
	}

	answered := outcome.CallStatus == "completed" && outcome.Duration > 0
	call := models.VerificationCall{
		AlertID:  alertID,
		CallRef:  outcome.CallRef,
		Answered: answered,
		At:       time.Now(),
	}
	if err := d.Db.Conn.Create(&call).Error; err != nil {
		return err
	}
	if err := d.Db.Conn.Model(&models.AccidentAlert{}).
		Where("id = ?", alertID).
		Update("updated_at", time.Now()).Error; err != nil {
		return err
	}

	// an explicit "I am safe" keypress is the only way out; everything
	// else (other digit, silence, no answer, busy, failed, canceled) means
	// help is dispatched
	if outcome.Digits == "1" {
		err := d.resolveAlert(alertID, models.AlertStatusFalsePositive)
		if errors.Is(err, ErrConflict) {
			return nil
		}
		return err
	}

	return d.confirmAndDispatch(alert)
}

// confirmAndDispatch commits a pending alert: the terminal transition and the
// request creation happen in one transaction, so a failed dispatch can never
// strand a confirmed alert without its request. Matching and notification run
// after commit; an unmatched request simply stays pending.
func (d *Dispatch) confirmAndDispatch(alert *models.AccidentAlert) error {
	user, err := d.Profile.LookupUser(alert.UserID)
	if err != nil {
		return err
	}
	if user.IsBlacklisted() {
		alertLogger().Warn("Blacklisted user on confirmed alert, no dispatch",
			zap.String("alert_id", alert.ID), zap.String("user_id", user.ID))
		err := d.resolveAlert(alert.ID, models.AlertStatusFalsePositive)
		if errors.Is(err, ErrConflict) {
			return nil
		}
		return err
	}

	loc := models.LatLng{Lat: alert.Lat, Lng: alert.Lng}
	req := models.Request{
		ID:            uuid.NewString(),
		UserID:        alert.UserID,
		Lat:           loc.Lat,
		Lng:           loc.Lng,
		Status:        models.RequestStatusPending,
		RequestedType: models.AmbulanceTypeAny,
		Source:        models.RequestSourceAutoDetected,
		CreatedAt:     time.Now(),
	}

	err = d.Db.Conn.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.AccidentAlert{}).
			Where("id = ? AND status = ?", alert.ID, models.AlertStatusPendingVerification).
			Updates(map[string]any{
				"status":     models.AlertStatusConfirmed,
				"request_id": req.ID,
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return conflictErr("alert %s already resolved", alert.ID)
		}
		return tx.Create(&req).Error
	})
	if errors.Is(err, ErrConflict) {
		return nil // lost the resolution race; the winner dispatched
	}
	if err != nil {
		return err
	}

	alertLogger().Info("Alert confirmed, dispatching",
		zap.String("alert_id", alert.ID), zap.String("request_id", req.ID))

	if err := d.Profile.UpdateUserLocation(alert.UserID, loc); err != nil {
		alertLogger().Warn("User location seed failed", zap.String("user_id", alert.UserID), zap.Error(err))
	}

	// the triggering window has served its purpose
	if _, err := d.purgeUserReadings(alert.UserID); err != nil {
		alertLogger().Warn("Reading purge failed", zap.String("user_id", alert.UserID), zap.Error(err))
	}

	if _, err := d.matchAndAssign(&req, nil); err != nil {
		alertLogger().Error("Matching failed after confirmation, request stays pending",
			zap.String("request_id", req.ID), zap.Error(err))
	}

	if d.Notifier != nil && user.Phone != "" {
		body := "Emergency Response: We detected a possible accident and have dispatched help to your location. Stay calm."
		if err := d.Notifier.SendTextMessage(user.Phone, body); err != nil {
			alertLogger().Warn("User notification failed", zap.String("user_id", user.ID), zap.Error(err))
		}
	}
	return nil
}

func (d *Dispatch) pendingForUser(userID string) (*models.AccidentAlert, error) {
	var alerts []models.AccidentAlert
	err := d.Db.Conn.
		Preload("VerificationCalls").
		Where("user_id = ? AND status = ?", userID, models.AlertStatusPendingVerification).
		Limit(1).
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	if len(alerts) == 0 {
		return nil, nil
	}
	return &alerts[0], nil
}

func (d *Dispatch) lookupAlert(alertID string) (*models.AccidentAlert, error) {
	if alertID == "" {
		return nil, validationErr("alert id required")
	}
	var alert models.AccidentAlert
	err := d.Db.Conn.Preload("VerificationCalls").First(&alert, "id = ?", alertID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("alert", alertID)
		}
		return nil, err
	}
	return &alert, nil
}

type IAlertImpl struct {
	dispatch *Dispatch
}

func (ia *IAlertImpl) CreateAlert(userID string, loc models.LatLng, reasons []string) (*models.AccidentAlert, error) {
	return ia.dispatch.createAlert(userID, loc, reasons)
}

func (ia *IAlertImpl) RecordCallOutcome(alertID string, outcome models.CallOutcome) error {
	return ia.dispatch.recordCallOutcome(alertID, outcome)
}

func (ia *IAlertImpl) PendingForUser(userID string) (*models.AccidentAlert, error) {
	return ia.dispatch.pendingForUser(userID)
}

func (ia *IAlertImpl) LookupAlert(alertID string) (*models.AccidentAlert, error) {
	return ia.dispatch.lookupAlert(alertID)
}

func (d *Dispatch) GetIAlert() IAlert {
	return &IAlertImpl{dispatch: d}
}
