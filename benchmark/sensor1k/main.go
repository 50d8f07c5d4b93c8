package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"emergo.xyz/dispatch-service/pkg/common"
	"emergo.xyz/dispatch-service/pkg/db"
	"emergo.xyz/dispatch-service/pkg/detect"
	"emergo.xyz/dispatch-service/pkg/dispatch"
	"emergo.xyz/dispatch-service/pkg/models"
	"emergo.xyz/dispatch-service/pkg/notify"
)

var maxUsers int = 1000
var maxAmbulances int = 100
var readingsPerUser int = 20

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

var core dispatch.Dispatch

func main() {
	common.SetTestLoggerNop()

	core = dispatch.Dispatch{
		Db:         *db.GetInstance(db.UseMemorySqliteDialector()),
		Cfg:        dispatch.Config{VerifyCalls: false},
		Classifier: detect.NewClassifier(nil),
	}
	core.WithServices(dispatch.ServiceOpts{
		Reading:  core.GetIReading(),
		Alert:    core.GetIAlert(),
		Request:  core.GetIRequest(),
		Profile:  core.GetIProfile(),
		Notifier: notify.LogNotifier{},
		Caller:   notify.LogCaller{},
	})

	userIDs := make([]string, maxUsers)
	for i := range maxUsers {
		user, err := core.Profile.GetOrCreateUser("+91" + uuid.NewString()[:10])
		if err != nil {
			log.Fatal("Failed to create user:", err)
		}
		userIDs[i] = user.ID
	}
	fmt.Printf("created %v users\n", maxUsers)

	for range maxAmbulances {
		if err := seedAmbulance(); err != nil {
			log.Fatal("Failed to seed ambulance:", err)
		}
	}
	fmt.Printf("seeded %v active ambulances\n", maxAmbulances)

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxUsers {
		wg.Add(1)
		go func() {
			doActions(userIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	totalActions := maxUsers * readingsPerUser
	fmt.Printf(
		"\rsubmitted %v sensor readings for %v users: used time=%v seconds, throughput=%v action/second\n",
		totalActions, maxUsers, usedTime.Seconds(), float64(totalActions)/usedTime.Seconds(),
	)

	var requests int64
	core.Db.Conn.Model(&models.Request{}).Count(&requests)
	fmt.Printf("dispatched %v emergency requests\n", requests)
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func seedAmbulance() error {
	amb, err := core.Profile.GetOrCreateAmbulance("+91" + uuid.NewString()[:10])
	if err != nil {
		return err
	}
	typ := models.AmbulanceTypeBasicLife
	if _, err := core.Profile.UpdateAmbulanceProfile(amb.ID, models.AmbulanceProfileUpdate{
		Name:           strPtr("Unit " + amb.ID[:8]),
		Age:            intPtr(30),
		DateOfBirth:    strPtr("1995-01-01"),
		Gender:         strPtr("male"),
		VehicleNumber:  strPtr("KA-" + amb.ID[:6]),
		DrivingLicense: strPtr("DL-" + amb.ID[:6]),
		Type:           &typ,
	}); err != nil {
		return err
	}
	loc := models.LatLng{Lat: rndFloat64(12.8, 13.1, 6), Lng: rndFloat64(77.4, 77.8, 6)}
	if err := core.Profile.UpdateAmbulanceLocation(amb.ID, loc); err != nil {
		return err
	}
	_, err = core.Profile.SetAmbulanceStatus(amb.ID, models.AmbulanceStatusActive)
	return err
}

func doActions(userID string) {
	lat := rndFloat64(12.8, 13.1, 6)
	lng := rndFloat64(77.4, 77.8, 6)
	base := time.Now().Add(-time.Duration(readingsPerUser) * time.Second)

	for i := range readingsPerUser {
		speed := rndFloat64(20.0, 60.0, 1)
		if flipCoin() {
			speed = rndFloat64(0.0, 5.0, 1)
		}
		reading := &models.SensorReading{
			UserID:    userID,
			Lat:       lat,
			Lng:       lng,
			SpeedKmh:  &speed,
			AccelX:    rndFloat64(-2.0, 2.0, 2),
			AccelY:    rndFloat64(-2.0, 2.0, 2),
			AccelZ:    rndFloat64(8.0, 11.0, 2),
			GyroX:     rndFloat64(-1.0, 1.0, 2),
			GyroY:     rndFloat64(-1.0, 1.0, 2),
			GyroZ:     rndFloat64(-1.0, 1.0, 2),
			Timestamp: base.Add(time.Duration(i) * time.Second),
		}
		if _, err := core.Reading.SubmitReading(userID, reading, false); err != nil {
			fmt.Printf("\nerror: %v\n", err)
		}
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
