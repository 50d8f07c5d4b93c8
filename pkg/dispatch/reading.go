package dispatch

import (
	"errors"
	"slices"
	"time"

	"go.uber.org/zap"

	"emergo.xyz/dispatch-service/pkg/common"
	"emergo.xyz/dispatch-service/pkg/detect"
	"emergo.xyz/dispatch-service/pkg/models"
)

func readingLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameDispatchCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryReading),
	)
}

// submitReading is the hot path: persist the sample, classify the rolling
// window, and hand a positive verdict to either the verification state
// machine or the direct-dispatch path.
func (d *Dispatch) submitReading(userID string, input *models.SensorReading, shakeStop bool) (*models.SubmitOutcome, error) {
	user, err := d.Profile.LookupUser(userID)
	if err != nil {
		return nil, err
	}
	if !user.DetectionEnabled {
		return nil, preconditionErr("accident detection not enabled for user %s", userID)
	}

	reading := models.SensorReading{
		UserID:    userID,
		Lat:       input.Lat,
		Lng:       input.Lng,
		SpeedKmh:  input.SpeedKmh,
		AccelX:    input.AccelX,
		AccelY:    input.AccelY,
		AccelZ:    input.AccelZ,
		GyroX:     input.GyroX,
		GyroY:     input.GyroY,
		GyroZ:     input.GyroZ,
		Timestamp: input.Timestamp,
	}
	if reading.Timestamp.IsZero() {
		reading.Timestamp = time.Now()
	}
	if err := d.Db.Conn.Create(&reading).Error; err != nil {
		return nil, err
	}

	window, err := d.recentWindow(userID)
	if err != nil {
		return nil, err
	}

	verdict := d.Classifier.Predict(window, shakeStop)
	outcome := &models.SubmitOutcome{
		Detected:     verdict.Accident,
		Confidence:   verdict.Confidence,
		ReadingCount: len(window),
	}
	if !verdict.Accident {
		return outcome, nil
	}

	readingLogger().Info("Accident detected",
		zap.String("user_id", userID),
		zap.Float64("confidence", verdict.Confidence),
		zap.Int("window_size", len(window)))

	if user.IsBlacklisted() {
		return nil, preconditionErr("user %s is blacklisted", userID)
	}

	feat := detect.Extract(window)
	outcome.TriggerReasons = detect.TriggerReasons(feat, shakeStop)
	loc := models.LatLng{Lat: reading.Lat, Lng: reading.Lng}

	if d.Cfg.VerifyCalls {
		alert, err := d.Alert.CreateAlert(userID, loc, outcome.TriggerReasons)
		if errors.Is(err, ErrConflict) {
			outcome.CooldownActive = true
			return outcome, nil
		}
		if err != nil {
			if alert != nil {
				outcome.AlertID = alert.ID
			}
			return outcome, err
		}
		outcome.AlertID = alert.ID
		return outcome, nil
	}

	// no verification gate: dispatch directly, but throttle repeated
	// verdicts from the same incident's readings
	active, err := d.recentAutoRequestExists(userID)
	if err != nil {
		return nil, err
	}
	if active {
		outcome.CooldownActive = true
		return outcome, nil
	}

	req, assigned, err := d.Request.DispatchRequest(userID, loc, models.RequestSourceAutoDetected, models.AmbulanceTypeAny)
	if err != nil {
		return outcome, err
	}
	if _, err := d.purgeUserReadings(userID); err != nil {
		readingLogger().Warn("Reading purge failed", zap.String("user_id", userID), zap.Error(err))
	}
	outcome.RequestID = req.ID
	outcome.AmbulanceAssigned = assigned != nil

	if d.Notifier != nil && user.Phone != "" {
		body := "Emergency Response: We detected a possible accident and have dispatched help to your location. Stay calm."
		if err := d.Notifier.SendTextMessage(user.Phone, body); err != nil {
			readingLogger().Warn("User notification failed", zap.String("user_id", userID), zap.Error(err))
		}
	}
	return outcome, nil
}

// recentAutoRequestExists reports whether the user already has a live or
// cooldown-fresh auto-detected request.
func (d *Dispatch) recentAutoRequestExists(userID string) (bool, error) {
	cooldown := d.Cfg.AlertCooldown
	if cooldown == 0 {
		cooldown = DefaultAlertCooldown
	}
	var count int64
	err := d.Db.Conn.Model(&models.Request{}).
		Where("user_id = ? AND source = ? AND status IN (?) AND created_at >= ?",
			userID, models.RequestSourceAutoDetected,
			[]models.RequestStatus{models.RequestStatusPending, models.RequestStatusAssigned, models.RequestStatusToHospital},
			time.Now().Add(-cooldown)).
		Count(&count).Error
	return count > 0, err
}

func (d *Dispatch) submitBatch(userID string, inputs []models.SensorReading) (int, error) {
	user, err := d.Profile.LookupUser(userID)
	if err != nil {
		return 0, err
	}
	if !user.DetectionEnabled {
		return 0, preconditionErr("accident detection not enabled for user %s", userID)
	}

	saved := 0
	for i := range inputs {
		r := inputs[i]
		r.ID = 0
		r.UserID = userID
		if r.Timestamp.IsZero() {
			r.Timestamp = time.Now()
		}
		if err := d.Db.Conn.Create(&r).Error; err != nil {
			return saved, err
		}
		saved++
	}
	readingLogger().Info("Batch readings saved", zap.String("user_id", userID), zap.Int("count", saved))
	return saved, nil
}

// recentWindow loads the user's detection window, oldest first.
func (d *Dispatch) recentWindow(userID string) ([]models.SensorReading, error) {
	var readings []models.SensorReading
	err := d.Db.Conn.
		Where("user_id = ?", userID).
		Order("timestamp desc").
		Limit(detect.WindowMaxSamples).
		Find(&readings).Error
	if err != nil {
		return nil, err
	}
	slices.Reverse(readings)
	return readings, nil
}

func (d *Dispatch) purgeOlderThan(maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge)
	res := d.Db.Conn.Where("timestamp < ?", cutoff).Delete(&models.SensorReading{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		readingLogger().Info("Stale readings purged", zap.Int64("count", res.RowsAffected))
	}
	return res.RowsAffected, nil
}

func (d *Dispatch) purgeUserReadings(userID string) (int64, error) {
	res := d.Db.Conn.Where("user_id = ?", userID).Delete(&models.SensorReading{})
	return res.RowsAffected, res.Error
}

type IReadingImpl struct {
	dispatch *Dispatch
}

func (ir *IReadingImpl) SubmitReading(userID string, input *models.SensorReading, shakeStop bool) (*models.SubmitOutcome, error) {
	return ir.dispatch.submitReading(userID, input, shakeStop)
}

func (ir *IReadingImpl) SubmitBatch(userID string, inputs []models.SensorReading) (int, error) {
	return ir.dispatch.submitBatch(userID, inputs)
}

func (ir *IReadingImpl) RecentWindow(userID string) ([]models.SensorReading, error) {
	return ir.dispatch.recentWindow(userID)
}

func (ir *IReadingImpl) PurgeOlderThan(maxAge time.Duration) (int64, error) {
	return ir.dispatch.purgeOlderThan(maxAge)
}

func (d *Dispatch) GetIReading() IReading {
	return &IReadingImpl{dispatch: d}
}
