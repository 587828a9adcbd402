package config

import "time"

const (
	DefaultPort      = "8080"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultDirectoryFile = "contacts.csv"
	DefaultDataDir       = "."

	DefaultMinPartialSearchLength = 3
	DefaultCountryCodes           = "33,49"

	DefaultContactURLEnabled = true
	DefaultContactURLBase    = "https://ui.boondmanager.com/contacts/"
	DefaultContactURLSuffix  = "/overview"

	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxUploadSize  = 20 * 1024 * 1024 // 20MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
