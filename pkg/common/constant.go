package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyDispatchDBType string = "DISPATCH_DB_TYPE"
	EnvKeyDispatchDbPath string = "DISPATCH_DB_PATH"

	EnvKeyDispatchHttpHostPort string = "DISPATCH_HTTP_HOST_PORT"

	EnvKeyDispatchDefaultRate  string = "DISPATCH_DEFAULT_RATE"
	EnvKeyDispatchDefaultBurst string = "DISPATCH_DEFAULT_BURST"

	EnvKeyDispatchVerifyCalls     string = "DISPATCH_VERIFY_CALLS"
	EnvKeyDispatchCallbackBaseURL string = "DISPATCH_CALLBACK_BASE_URL"
	EnvKeyDispatchModelPath       string = "DISPATCH_MODEL_PATH"

	EnvKeyDispatchJwtSecret string = "DISPATCH_JWT_SECRET"

	LoggerNameDispatchCore  string = "dispatch_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerFieldCategory     string = "category"

	LoggerCategoryReading string = "reading"
	LoggerCategoryAlert   string = "alert"
	LoggerCategoryRequest string = "request"
	LoggerCategoryMatch   string = "match"
	LoggerCategoryProfile string = "profile"
	LoggerCategoryNotify  string = "notify"
)
