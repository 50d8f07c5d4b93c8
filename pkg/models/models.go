package models

import "time"

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type AmbulanceType string

const (
	AmbulanceTypeAny         AmbulanceType = "any"
	AmbulanceTypeBasicLife   AmbulanceType = "basic_life"
	AmbulanceTypeAdvanceLife AmbulanceType = "advance_life"
	AmbulanceTypeICULife     AmbulanceType = "icu_life"
)

func ParseAmbulanceType(s string) (AmbulanceType, bool) {
	switch AmbulanceType(s) {
	case AmbulanceTypeAny, AmbulanceTypeBasicLife, AmbulanceTypeAdvanceLife, AmbulanceTypeICULife:
		return AmbulanceType(s), true
	}
	return "", false
}

// TypesCompatible is total over the enum: "any" on either side matches
// everything, otherwise the tiers must be equal.
func TypesCompatible(requested, offered AmbulanceType) bool {
	if requested == AmbulanceTypeAny || offered == AmbulanceTypeAny {
		return true
	}
	return requested == offered
}

type AmbulanceStatus string

const (
	AmbulanceStatusActive   AmbulanceStatus = "active"
	AmbulanceStatusInactive AmbulanceStatus = "inactive"
)

type AlertStatus string

const (
	AlertStatusPendingVerification AlertStatus = "pending_verification"
	AlertStatusConfirmed           AlertStatus = "confirmed"
	AlertStatusFalsePositive       AlertStatus = "false_positive"
)

func (s AlertStatus) Terminal() bool {
	return s == AlertStatusConfirmed || s == AlertStatusFalsePositive
}

// CanTransitionTo allows only pending_verification -> {confirmed, false_positive}.
func (s AlertStatus) CanTransitionTo(next AlertStatus) bool {
	return s == AlertStatusPendingVerification && next.Terminal()
}

type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusAssigned   RequestStatus = "assigned"
	RequestStatusToHospital RequestStatus = "to_hospital"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusFake       RequestStatus = "fake"
)

func (s RequestStatus) Terminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusFake
}

// CanTransitionTo encodes the request lifecycle. assigned -> pending is the
// unassign path taken when the assigned ambulance reports a breakdown.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	switch s {
	case RequestStatusPending:
		return next == RequestStatusAssigned || next == RequestStatusFake
	case RequestStatusAssigned:
		return next == RequestStatusToHospital || next == RequestStatusCompleted ||
			next == RequestStatusFake || next == RequestStatusPending
	case RequestStatusToHospital:
		return next == RequestStatusCompleted || next == RequestStatusFake
	default:
		return false
	}
}

type RequestSource string

const (
	RequestSourceManual       RequestSource = "manual"
	RequestSourceAutoDetected RequestSource = "auto_detected"
)

// BlacklistDemeritLimit is the number of demerit points after which a user is
// permanently blacklisted.
const BlacklistDemeritLimit = 2

type User struct {
	ID                string `gorm:"primaryKey"`
	Phone             string `gorm:"uniqueIndex"`
	Name              string
	DateOfBirth       string
	Gender            string
	Email             string
	CurrentLat        *float64
	CurrentLng        *float64
	LocationUpdatedAt *time.Time
	DemeritPoints     int
	Blacklisted       bool
	DetectionEnabled  bool
	CreatedAt         time.Time
}

func (u *User) Location() *LatLng {
	if u.CurrentLat == nil || u.CurrentLng == nil {
		return nil
	}
	return &LatLng{Lat: *u.CurrentLat, Lng: *u.CurrentLng}
}

func (u *User) IsBlacklisted() bool {
	return u.Blacklisted || u.DemeritPoints >= BlacklistDemeritLimit
}

type Ambulance struct {
	ID                string `gorm:"primaryKey"`
	Phone             string `gorm:"uniqueIndex"`
	Name              string
	Age               int
	DateOfBirth       string
	Gender            string
	VehicleNumber     string
	DrivingLicense    string
	Type              AmbulanceType   `gorm:"type:varchar(16)"`
	Status            AmbulanceStatus `gorm:"type:varchar(10);index;check:status IN ('active','inactive')"`
	CurrentLat        *float64
	CurrentLng        *float64
	LocationUpdatedAt *time.Time
	ProfileCompleted  bool
	CreatedAt         time.Time
}

func (a *Ambulance) Location() *LatLng {
	if a.CurrentLat == nil || a.CurrentLng == nil {
		return nil
	}
	return &LatLng{Lat: *a.CurrentLat, Lng: *a.CurrentLng}
}

// ProfileComplete reports whether every field required before the ambulance
// may go active is filled in.
func (a *Ambulance) ProfileComplete() bool {
	return a.Name != "" && a.Age > 0 && a.DateOfBirth != "" &&
		a.Gender != "" && a.VehicleNumber != "" && a.DrivingLicense != ""
}

type SensorReading struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"index"`
	Lat       float64
	Lng       float64
	SpeedKmh  *float64
	AccelX    float64
	AccelY    float64
	AccelZ    float64
	GyroX     float64
	GyroY     float64
	GyroZ     float64
	Timestamp time.Time `gorm:"index"`
}

type VerificationCall struct {
	ID       uint   `gorm:"primaryKey"`
	AlertID  string `gorm:"index"`
	CallRef  string
	Answered bool
	At       time.Time
}

type AccidentAlert struct {
	ID             string `gorm:"primaryKey"`
	UserID         string `gorm:"index"`
	Lat            float64
	Lng            float64
	Status         AlertStatus `gorm:"type:varchar(24);index;check:status IN ('pending_verification','confirmed','false_positive')"`
	TriggerReasons []string    `gorm:"serializer:json"`
	RequestID      *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	VerificationCalls []VerificationCall `gorm:"foreignKey:AlertID"`
}

// SubmitOutcome is the result of one sensor submission.
type SubmitOutcome struct {
	Detected          bool
	Confidence        float64
	ReadingCount      int
	CooldownActive    bool
	TriggerReasons    []string
	AlertID           string
	RequestID         string
	AmbulanceAssigned bool
}

// CallOutcome is the payload of a verification-call status callback.
type CallOutcome struct {
	CallRef    string
	Digits     string
	CallStatus string // completed, busy, no-answer, failed, canceled
	Duration   int    // seconds
}

// UserProfileUpdate carries the user-editable profile fields; nil means
// leave unchanged.
type UserProfileUpdate struct {
	Name             *string
	DateOfBirth      *string
	Gender           *string
	Email            *string
	DetectionEnabled *bool
}

// AmbulanceProfileUpdate carries the driver-editable profile fields.
type AmbulanceProfileUpdate struct {
	Name           *string
	Age            *int
	DateOfBirth    *string
	Gender         *string
	VehicleNumber  *string
	DrivingLicense *string
	Type           *AmbulanceType
}

type Hospital struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type Request struct {
	ID                  string `gorm:"primaryKey"`
	UserID              string `gorm:"index"`
	Lat                 float64
	Lng                 float64
	Status              RequestStatus `gorm:"type:varchar(12);index;check:status IN ('pending','assigned','to_hospital','completed','fake')"`
	AssignedAmbulanceID *string       `gorm:"index"`
	AssignedAt          *time.Time
	SelectedHospital    *Hospital `gorm:"serializer:json"`
	RequestedType       AmbulanceType
	Source              RequestSource
	CreatedAt           time.Time `gorm:"index"`
}

func (r *Request) Location() LatLng {
	return LatLng{Lat: r.Lat, Lng: r.Lng}
}

// LocationTrack is append-only telemetry for assigned requests, used for
// playback on the dashboard map.
type LocationTrack struct {
	ID          uint   `gorm:"primaryKey"`
	RequestID   string `gorm:"index"`
	AmbulanceID string
	Lat         float64
	Lng         float64
	CreatedAt   time.Time
}
