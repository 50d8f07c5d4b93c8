package dispatch

import (
	"time"

	"emergo.xyz/dispatch-service/pkg/db"
	"emergo.xyz/dispatch-service/pkg/detect"
	"emergo.xyz/dispatch-service/pkg/models"
)

//go:generate mockgen -source=dispatch.go -destination=mocks/mocks.go -package=mocks

type IReading interface {
	SubmitReading(userID string, input *models.SensorReading, shakeStop bool) (*models.SubmitOutcome, error)
	SubmitBatch(userID string, inputs []models.SensorReading) (int, error)
	RecentWindow(userID string) ([]models.SensorReading, error)
	PurgeOlderThan(maxAge time.Duration) (int64, error)
}

type IAlert interface {
	CreateAlert(userID string, loc models.LatLng, reasons []string) (*models.AccidentAlert, error)
	RecordCallOutcome(alertID string, outcome models.CallOutcome) error
	PendingForUser(userID string) (*models.AccidentAlert, error)
	LookupAlert(alertID string) (*models.AccidentAlert, error)
}

type IRequest interface {
	CreateRequest(userID string, loc models.LatLng, source models.RequestSource, reqType models.AmbulanceType) (*models.Request, error)
	DispatchRequest(userID string, loc models.LatLng, source models.RequestSource, reqType models.AmbulanceType) (*models.Request, *models.Ambulance, error)
	Assign(requestID, ambulanceID string) error
	SelectHospital(requestID, ambulanceID string, hospital models.Hospital) error
	Complete(requestID, ambulanceID string) (*models.Request, error)
	ReportFake(requestID, ambulanceID string) (*models.User, error)
	ReportIssue(requestID, ambulanceID string) (*models.Ambulance, error)
	ClaimNearestPending(ambulance *models.Ambulance) (*models.Request, error)
	LookupRequest(requestID string) (*models.Request, error)
	ActiveForUser(userID string) (*models.Request, error)
	AssignedForAmbulance(ambulanceID string) (*models.Request, error)
	TrackForRequest(requestID string) ([]models.LocationTrack, error)
}

type IProfile interface {
	GetOrCreateUser(phone string) (*models.User, error)
	LookupUser(userID string) (*models.User, error)
	UpdateUserProfile(userID string, upd models.UserProfileUpdate) (*models.User, error)
	UpdateUserLocation(userID string, loc models.LatLng) error

	GetOrCreateAmbulance(phone string) (*models.Ambulance, error)
	LookupAmbulance(ambulanceID string) (*models.Ambulance, error)
	UpdateAmbulanceProfile(ambulanceID string, upd models.AmbulanceProfileUpdate) (*models.Ambulance, error)
	UpdateAmbulanceLocation(ambulanceID string, loc models.LatLng) error
	SetAmbulanceStatus(ambulanceID string, status models.AmbulanceStatus) (*models.Request, error)
}

// Notifier delivers fire-and-forget text messages.
type Notifier interface {
	SendTextMessage(phone, body string) error
}

// Caller places the out-of-band confirmation call that gates an auto-detected
// dispatch. Returns a provider call reference.
type Caller interface {
	PlaceConfirmationCall(phone, callbackBaseURL, alertID string) (string, error)
}

// Config is the engine's runtime configuration, parsed once in main.
type Config struct {
	// VerifyCalls selects the verification-call flow for auto-detected
	// accidents; when false the engine dispatches directly.
	VerifyCalls     bool
	CallbackBaseURL string
	AlertCooldown   time.Duration
}

const DefaultAlertCooldown = 300 * time.Second

type Dispatch struct {
	Db         db.DB
	Cfg        Config
	Classifier *detect.Classifier

	Reading  IReading
	Alert    IAlert
	Request  IRequest
	Profile  IProfile
	Notifier Notifier
	Caller   Caller
}

type ServiceOpts struct {
	Reading  IReading
	Alert    IAlert
	Request  IRequest
	Profile  IProfile
	Notifier Notifier
	Caller   Caller
}

func (d *Dispatch) WithServices(opts ServiceOpts) *Dispatch {
	if opts.Reading != nil {
		d.Reading = opts.Reading
	}
	if opts.Alert != nil {
		d.Alert = opts.Alert
	}
	if opts.Request != nil {
		d.Request = opts.Request
	}
	if opts.Profile != nil {
		d.Profile = opts.Profile
	}
	if opts.Notifier != nil {
		d.Notifier = opts.Notifier
	}
	if opts.Caller != nil {
		d.Caller = opts.Caller
	}
	return d
}
