package dispatch

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"emergo.xyz/dispatch-service/pkg/common"
	"emergo.xyz/dispatch-service/pkg/geo"
	"emergo.xyz/dispatch-service/pkg/models"
)

func requestLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameDispatchCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRequest),
	)
}

func (d *Dispatch) createRequest(userID string, loc models.LatLng, source models.RequestSource, reqType models.AmbulanceType) (*models.Request, error) {
	if reqType == "" {
		reqType = models.AmbulanceTypeAny
	}
	req := models.Request{
		ID:            uuid.NewString(),
		UserID:        userID,
		Lat:           loc.Lat,
		Lng:           loc.Lng,
		Status:        models.RequestStatusPending,
		RequestedType: reqType,
		Source:        source,
		CreatedAt:     time.Now(),
	}
	if err := d.Db.Conn.Create(&req).Error; err != nil {
		return nil, err
	}
	requestLogger().Info("Request created", zap.Reflect("request", req))
	return &req, nil
}

// availableSnapshot reads the matching pool: every ambulance with a known
// location that is not holding an assigned request. Location updates landing
// after this read are accepted staleness; assignment itself is guarded by the
// conditional update in assign.
func (d *Dispatch) availableSnapshot() ([]models.Ambulance, error) {
	var ambulances []models.Ambulance
	err := d.Db.Conn.
		Where("current_lat IS NOT NULL AND current_lng IS NOT NULL").
		Where("id NOT IN (?)",
			d.Db.Conn.Model(&models.Request{}).
				Select("assigned_ambulance_id").
				Where("status = ? AND assigned_ambulance_id IS NOT NULL", models.RequestStatusAssigned)).
		Order("created_at asc").
		Find(&ambulances).Error
	return ambulances, err
}

// assign is the atomic conditional assignment: the request must still be
// pending and the ambulance must not already hold an assigned request. A lost
// race surfaces as ErrConflict, never as a double assignment.
func (d *Dispatch) assign(requestID, ambulanceID string) error {
	err := d.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var held int64
		if err := tx.Model(&models.Request{}).
			Where("assigned_ambulance_id = ? AND status = ?", ambulanceID, models.RequestStatusAssigned).
			Count(&held).Error; err != nil {
			return err
		}
		if held > 0 {
			return conflictErr("ambulance %s already holds an assigned request", ambulanceID)
		}

		now := time.Now()
		res := tx.Model(&models.Request{}).
			Where("id = ? AND status = ?", requestID, models.RequestStatusPending).
			Updates(map[string]any{
				"assigned_ambulance_id": ambulanceID,
				"status":                models.RequestStatusAssigned,
				"assigned_at":           now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return conflictErr("request %s is no longer pending", requestID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	requestLogger().Info("Request assigned",
		zap.String("request_id", requestID),
		zap.String("ambulance_id", ambulanceID))

	d.notifyDriver(ambulanceID, requestID)
	return nil
}

func (d *Dispatch) notifyDriver(ambulanceID, requestID string) {
	if d.Notifier == nil {
		return
	}
	var amb models.Ambulance
	if err := d.Db.Conn.First(&amb, "id = ?", ambulanceID).Error; err != nil {
		return
	}
	body := "Emergency Response: a new emergency has been assigned to you. Open the app for directions."
	if err := d.Notifier.SendTextMessage(amb.Phone, body); err != nil {
		// fire and forget: delivery failure never blocks the assignment
		requestLogger().Warn("Driver notification failed",
			zap.String("request_id", requestID), zap.Error(err))
	}
}

// dispatchRequest is the orchestrator entry: create the request, seed the
// user's last known location, run the matcher over a fresh snapshot and
// assign the pick. A lost assignment race re-selects with the loser excluded.
// The request stays pending when no unit is available; nothing here may mark
// it terminal.
func (d *Dispatch) dispatchRequest(userID string, loc models.LatLng, source models.RequestSource, reqType models.AmbulanceType) (*models.Request, *models.Ambulance, error) {
	user, err := d.Profile.LookupUser(userID)
	if err != nil {
		return nil, nil, err
	}
	if user.IsBlacklisted() {
		return nil, nil, preconditionErr("user %s is blacklisted", userID)
	}

	req, err := d.Request.CreateRequest(userID, loc, source, reqType)
	if err != nil {
		return nil, nil, err
	}
	if err := d.Profile.UpdateUserLocation(userID, loc); err != nil {
		requestLogger().Warn("User location seed failed", zap.String("user_id", userID), zap.Error(err))
	}

	assigned, err := d.matchAndAssign(req, nil)
	if err != nil {
		return req, nil, err
	}
	return req, assigned, nil
}

// matchAndAssign snapshots the pool, selects, and assigns; conflicts retry
// with the losing unit excluded until the pool is exhausted.
func (d *Dispatch) matchAndAssign(req *models.Request, exclude []string) (*models.Ambulance, error) {
	snapshot, err := d.availableSnapshot()
	if err != nil {
		return nil, err
	}

	excluded := append([]string{}, exclude...)
	for {
		best := SelectNearest(snapshot, req.Location(), MatchConstraints{
			RequestedType: req.RequestedType,
			ExcludeIDs:    excluded,
		})
		if best == nil {
			matchLogger().Info("No ambulance available", zap.String("request_id", req.ID))
			return nil, nil
		}
		err := d.Request.Assign(req.ID, best.ID)
		if err == nil {
			matchLogger().Info("Ambulance matched",
				zap.String("request_id", req.ID),
				zap.String("ambulance_id", best.ID),
				zap.String("ambulance_status", string(best.Status)))
			return best, nil
		}
		if !errors.Is(err, ErrConflict) {
			return nil, err
		}
		// the unit was grabbed by a concurrent trigger, or the request
		// itself left pending; re-check the request before retrying
		var current models.Request
		if ferr := d.Db.Conn.First(&current, "id = ?", req.ID).Error; ferr != nil || current.Status != models.RequestStatusPending {
			return nil, nil
		}
		excluded = append(excluded, best.ID)
	}
}

func (d *Dispatch) selectHospital(requestID, ambulanceID string, hospital models.Hospital) error {
	if hospital.Lat == 0 && hospital.Lng == 0 {
		return validationErr("hospital coordinates required")
	}
	req, err := d.Request.LookupRequest(requestID)
	if err != nil {
		return err
	}
	if req.AssignedAmbulanceID == nil || *req.AssignedAmbulanceID != ambulanceID {
		return preconditionErr("ambulance %s is not assigned to request %s", ambulanceID, requestID)
	}
	if !req.Status.CanTransitionTo(models.RequestStatusToHospital) {
		return conflictErr("request %s cannot move to to_hospital from %s", requestID, req.Status)
	}

	res := d.Db.Conn.Model(&models.Request{}).
		Where("id = ? AND status = ? AND assigned_ambulance_id = ?", requestID, models.RequestStatusAssigned, ambulanceID).
		Updates(models.Request{
			SelectedHospital: &hospital,
			Status:           models.RequestStatusToHospital,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return conflictErr("request %s left assigned state concurrently", requestID)
	}

	requestLogger().Info("Hospital selected",
		zap.String("request_id", requestID), zap.Reflect("hospital", hospital))
	return nil
}

func (d *Dispatch) complete(requestID, ambulanceID string) (*models.Request, error) {
	req, err := d.Request.LookupRequest(requestID)
	if err != nil {
		return nil, err
	}
	if req.AssignedAmbulanceID == nil || *req.AssignedAmbulanceID != ambulanceID {
		return nil, preconditionErr("ambulance %s is not assigned to request %s", ambulanceID, requestID)
	}
	if !req.Status.CanTransitionTo(models.RequestStatusCompleted) {
		return nil, conflictErr("request %s cannot complete from %s", requestID, req.Status)
	}

	err = d.Db.Conn.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Request{}).
			Where("id = ? AND assigned_ambulance_id = ? AND status IN (?)",
				requestID, ambulanceID,
				[]models.RequestStatus{models.RequestStatusAssigned, models.RequestStatusToHospital}).
			Update("status", models.RequestStatusCompleted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return conflictErr("request %s left a completable state concurrently", requestID)
		}

		// the unit is free again
		return tx.Model(&models.Ambulance{}).
			Where("id = ?", ambulanceID).
			Update("status", models.AmbulanceStatusActive).Error
	})
	if err != nil {
		return nil, err
	}

	requestLogger().Info("Request completed",
		zap.String("request_id", requestID), zap.String("ambulance_id", ambulanceID))

	return d.Request.LookupRequest(requestID)
}

func (d *Dispatch) reportFake(requestID, ambulanceID string) (*models.User, error) {
	req, err := d.Request.LookupRequest(requestID)
	if err != nil {
		return nil, err
	}
	if req.AssignedAmbulanceID == nil || *req.AssignedAmbulanceID != ambulanceID {
		return nil, preconditionErr("ambulance %s is not assigned to request %s", ambulanceID, requestID)
	}
	if req.Status.Terminal() {
		return nil, conflictErr("request %s already in terminal state %s", requestID, req.Status)
	}

	var user models.User
	err = d.Db.Conn.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Request{}).
			Where("id = ? AND assigned_ambulance_id = ? AND status NOT IN (?)",
				requestID, ambulanceID,
				[]models.RequestStatus{models.RequestStatusCompleted, models.RequestStatusFake}).
			Update("status", models.RequestStatusFake)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return conflictErr("request %s already processed", requestID)
		}

		if err := tx.First(&user, "id = ?", req.UserID).Error; err != nil {
			return notFoundErr("user", req.UserID)
		}
		user.DemeritPoints++
		if user.DemeritPoints >= models.BlacklistDemeritLimit {
			user.Blacklisted = true
		}
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).
			Updates(map[string]any{
				"demerit_points": user.DemeritPoints,
				"blacklisted":    user.Blacklisted,
			}).Error; err != nil {
			return err
		}

		return tx.Model(&models.Ambulance{}).
			Where("id = ?", ambulanceID).
			Update("status", models.AmbulanceStatusActive).Error
	})
	if err != nil {
		return nil, err
	}

	requestLogger().Info("Fake request reported",
		zap.String("request_id", requestID),
		zap.String("user_id", user.ID),
		zap.Int("demerit_points", user.DemeritPoints),
		zap.Bool("blacklisted", user.Blacklisted))

	return &user, nil
}

// reportIssue handles a driver-reported breakdown: unassign back to pending,
// park the reporting unit as inactive, then immediately retry matching with
// the reporter excluded.
func (d *Dispatch) reportIssue(requestID, ambulanceID string) (*models.Ambulance, error) {
	req, err := d.Request.LookupRequest(requestID)
	if err != nil {
		return nil, err
	}
	if req.AssignedAmbulanceID == nil || *req.AssignedAmbulanceID != ambulanceID {
		return nil, preconditionErr("ambulance %s is not assigned to request %s", ambulanceID, requestID)
	}
	if req.Status.Terminal() {
		return nil, conflictErr("request %s already processed", requestID)
	}

	err = d.Db.Conn.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Request{}).
			Where("id = ? AND assigned_ambulance_id = ? AND status IN (?)",
				requestID, ambulanceID,
				[]models.RequestStatus{models.RequestStatusAssigned, models.RequestStatusToHospital}).
			Updates(map[string]any{
				"assigned_ambulance_id": nil,
				"status":                models.RequestStatusPending,
				"assigned_at":           nil,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return conflictErr("request %s is not assigned to ambulance %s anymore", requestID, ambulanceID)
		}
		return tx.Model(&models.Ambulance{}).
			Where("id = ?", ambulanceID).
			Update("status", models.AmbulanceStatusInactive).Error
	})
	if err != nil {
		return nil, err
	}

	requestLogger().Info("Issue reported, request unassigned",
		zap.String("request_id", requestID), zap.String("ambulance_id", ambulanceID))

	fresh, err := d.Request.LookupRequest(requestID)
	if err != nil {
		return nil, err
	}
	return d.matchAndAssign(fresh, []string{ambulanceID})
}

// claimNearestPending runs when an ambulance turns active with a known
// location: the nearest compatible pending request is claimed, oldest first
// among distance ties.
func (d *Dispatch) claimNearestPending(ambulance *models.Ambulance) (*models.Request, error) {
	if ambulance == nil {
		return nil, nil
	}
	loc := ambulance.Location()
	if loc == nil {
		return nil, nil
	}

	var pending []models.Request
	if err := d.Db.Conn.
		Where("status = ?", models.RequestStatusPending).
		Order("created_at asc").
		Find(&pending).Error; err != nil {
		return nil, err
	}

	type ranked struct {
		dist float64
		req  *models.Request
	}
	var pool []ranked
	for i := range pending {
		req := &pending[i]
		if !models.TypesCompatible(req.RequestedType, ambulance.Type) {
			continue
		}
		pool = append(pool, ranked{
			dist: geo.HaversineKm(loc.Lat, loc.Lng, req.Lat, req.Lng),
			req:  req,
		})
	}
	// stable over the created_at-asc list, so equal distances keep oldest first
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].dist < pool[j].dist })

	for _, r := range pool {
		err := d.Request.Assign(r.req.ID, ambulance.ID)
		if err == nil {
			return d.Request.LookupRequest(r.req.ID)
		}
		if errors.Is(err, ErrConflict) {
			continue // grabbed by a concurrent trigger; try the next one
		}
		return nil, err
	}
	return nil, nil
}

func (d *Dispatch) lookupRequest(requestID string) (*models.Request, error) {
	if requestID == "" {
		return nil, validationErr("request id required")
	}
	var req models.Request
	if err := d.Db.Conn.First(&req, "id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("request", requestID)
		}
		return nil, err
	}
	return &req, nil
}

func (d *Dispatch) activeForUser(userID string) (*models.Request, error) {
	var reqs []models.Request
	err := d.Db.Conn.
		Where("user_id = ? AND status IN (?)", userID,
			[]models.RequestStatus{models.RequestStatusPending, models.RequestStatusAssigned, models.RequestStatusToHospital}).
		Order("created_at desc").
		Limit(1).
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	if len(reqs) == 0 {
		return nil, nil
	}
	return &reqs[0], nil
}

func (d *Dispatch) assignedForAmbulance(ambulanceID string) (*models.Request, error) {
	var reqs []models.Request
	err := d.Db.Conn.
		Where("assigned_ambulance_id = ? AND status IN (?)", ambulanceID,
			[]models.RequestStatus{models.RequestStatusAssigned, models.RequestStatusToHospital}).
		Order("created_at desc").
		Limit(1).
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	if len(reqs) == 0 {
		return nil, nil
	}
	return &reqs[0], nil
}

func (d *Dispatch) trackForRequest(requestID string) ([]models.LocationTrack, error) {
	var track []models.LocationTrack
	err := d.Db.Conn.
		Where("request_id = ?", requestID).
		Order("created_at asc").
		Find(&track).Error
	return track, err
}

type IRequestImpl struct {
	dispatch *Dispatch
}

func (ir *IRequestImpl) CreateRequest(userID string, loc models.LatLng, source models.RequestSource, reqType models.AmbulanceType) (*models.Request, error) {
	return ir.dispatch.createRequest(userID, loc, source, reqType)
}

func (ir *IRequestImpl) DispatchRequest(userID string, loc models.LatLng, source models.RequestSource, reqType models.AmbulanceType) (*models.Request, *models.Ambulance, error) {
	return ir.dispatch.dispatchRequest(userID, loc, source, reqType)
}

func (ir *IRequestImpl) Assign(requestID, ambulanceID string) error {
	return ir.dispatch.assign(requestID, ambulanceID)
}

func (ir *IRequestImpl) SelectHospital(requestID, ambulanceID string, hospital models.Hospital) error {
	return ir.dispatch.selectHospital(requestID, ambulanceID, hospital)
}

func (ir *IRequestImpl) Complete(requestID, ambulanceID string) (*models.Request, error) {
	return ir.dispatch.complete(requestID, ambulanceID)
}

func (ir *IRequestImpl) ReportFake(requestID, ambulanceID string) (*models.User, error) {
	return ir.dispatch.reportFake(requestID, ambulanceID)
}

func (ir *IRequestImpl) ReportIssue(requestID, ambulanceID string) (*models.Ambulance, error) {
	return ir.dispatch.reportIssue(requestID, ambulanceID)
}

func (ir *IRequestImpl) ClaimNearestPending(ambulance *models.Ambulance) (*models.Request, error) {
	return ir.dispatch.claimNearestPending(ambulance)
}

func (ir *IRequestImpl) LookupRequest(requestID string) (*models.Request, error) {
	return ir.dispatch.lookupRequest(requestID)
}

func (ir *IRequestImpl) ActiveForUser(userID string) (*models.Request, error) {
	return ir.dispatch.activeForUser(userID)
}

func (ir *IRequestImpl) AssignedForAmbulance(ambulanceID string) (*models.Request, error) {
	return ir.dispatch.assignedForAmbulance(ambulanceID)
}

func (ir *IRequestImpl) TrackForRequest(requestID string) ([]models.LocationTrack, error) {
	return ir.dispatch.trackForRequest(requestID)
}

func (d *Dispatch) GetIRequest() IRequest {
	return &IRequestImpl{dispatch: d}
}
