package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"emergo.xyz/dispatch-service/pkg/auth"
	"emergo.xyz/dispatch-service/pkg/common"
	"emergo.xyz/dispatch-service/pkg/db"
	"emergo.xyz/dispatch-service/pkg/detect"
	"emergo.xyz/dispatch-service/pkg/dispatch"
	dispatchHttp "emergo.xyz/dispatch-service/pkg/http"
	"emergo.xyz/dispatch-service/pkg/notify"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	dispatchDbType := os.Getenv(common.EnvKeyDispatchDBType)
	switch dispatchDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown DISPATCH_DB_TYPE: " + dispatchDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyDispatchHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyDispatchDefaultRate), 64); err != nil {
		log.Fatal("Invalid DISPATCH_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyDispatchDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid DISPATCH_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	jwtSecret := os.Getenv(common.EnvKeyDispatchJwtSecret)
	if jwtSecret == "" {
		log.Fatal("DISPATCH_JWT_SECRET must be set in .env")
	}

	verifyCalls := os.Getenv(common.EnvKeyDispatchVerifyCalls) == "true"
	callbackBaseURL := strings.TrimRight(os.Getenv(common.EnvKeyDispatchCallbackBaseURL), "/")
	if verifyCalls && callbackBaseURL == "" {
		log.Fatal("DISPATCH_CALLBACK_BASE_URL must be set when DISPATCH_VERIFY_CALLS=true")
	}

	logger := common.GetLogger()

	var model detect.Model
	if modelPath := os.Getenv(common.EnvKeyDispatchModelPath); modelPath != "" {
		loaded, err := detect.LoadModel(modelPath)
		if err != nil {
			logger.Warn("Trained model not loaded, rule cascade only", zap.Error(err))
		} else {
			model = loaded
			logger.Info("Trained model loaded", zap.String("path", modelPath))
		}
	}

	dispatchCore := dispatch.Dispatch{
		Db: *dbInstance,
		Cfg: dispatch.Config{
			VerifyCalls:     verifyCalls,
			CallbackBaseURL: callbackBaseURL,
		},
		Classifier: detect.NewClassifier(model),
	}
	dispatchCore.WithServices(dispatch.ServiceOpts{
		Reading:  dispatchCore.GetIReading(),
		Alert:    dispatchCore.GetIAlert(),
		Request:  dispatchCore.GetIRequest(),
		Profile:  dispatchCore.GetIProfile(),
		Notifier: notify.LogNotifier{},
		Caller:   notify.LogCaller{},
	})

	otpStore := auth.NewOTPStore()

	// background sweeps: stale sensor readings age out of the detection
	// window, expired OTPs leave the store
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every 1m", func() {
		if _, err := dispatchCore.Reading.PurgeOlderThan(detect.WindowMaxAge); err != nil {
			logger.Error("Reading sweep failed", zap.Error(err))
		}
		otpStore.PurgeExpired()
	}); err != nil {
		log.Fatalf("failed to schedule background sweeps: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &dispatchHttp.RestfulServer{
		Server:           gin.Default(),
		Dispatch:         &dispatchCore,
		Issuer:           auth.NewTokenIssuer(jwtSecret),
		OTPStore:         otpStore,
		RateLimiterStore: dispatch.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)),
		zap.Bool("verify_calls", verifyCalls))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
