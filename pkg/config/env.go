package config

const (
	EnvPort      = "PORT"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"

	EnvDirectoryFile = "DIRECTORY_FILE"
	EnvDataDir       = "DATA_DIR"
	EnvSchemaFile    = "SCHEMA_FILE"

	EnvMinPartialSearchLength = "MIN_PARTIAL_SEARCH_LENGTH"
	EnvCountryCodes           = "COUNTRY_CODES"

	EnvContactURLEnabled = "CONTACT_URL_ENABLED"
	EnvContactURLBase    = "CONTACT_URL_BASE"
	EnvContactURLSuffix  = "CONTACT_URL_SUFFIX"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxUploadSize  = "MAX_UPLOAD_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)
