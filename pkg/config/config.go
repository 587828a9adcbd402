package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"phonechecker/pkg/locale"
	"phonechecker/pkg/logger"
	"phonechecker/pkg/model"
	"phonechecker/pkg/sanitizer"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	LogLevel  string
	LogFormat string

	DirectoryFile string
	// DataDir bounds the files the HTTP load endpoint may open.
	DataDir       string
	SchemaFile    string
	Schemas       []model.Schema

	MinPartialSearchLength int
	CountryCodes           []string

	ContactURLEnabled bool
	ContactURLBase    string
	ContactURLSuffix  string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	MaxUploadSize  int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	Log *logger.Logger
}

// Load builds the configuration from the environment and exits the process
// when it is invalid.
func Load(serviceName string) *Config {
	cfg, err := New(serviceName)
	if err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

// New reads .env (when present) and the environment, then validates.
// The returned Config is usable for logging even when err != nil.
func New(serviceName string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to read .env file: %v\n", err)
	}

	cfg := &Config{
		Port:      getEnvStr(EnvPort, DefaultPort),
		LogLevel:  getEnvStr(EnvLogLevel, DefaultLogLevel),
		LogFormat: getEnvStr(EnvLogFormat, DefaultLogFormat),

		DirectoryFile: getEnvStr(EnvDirectoryFile, DefaultDirectoryFile),
		DataDir:       getEnvStr(EnvDataDir, DefaultDataDir),
		SchemaFile:    getEnvStr(EnvSchemaFile, ""),
		Schemas:       model.DefaultSchemas(),

		MinPartialSearchLength: getEnvNum(EnvMinPartialSearchLength, DefaultMinPartialSearchLength),
		CountryCodes:           getEnvList(EnvCountryCodes, DefaultCountryCodes),

		ContactURLEnabled: getEnvBool(EnvContactURLEnabled, DefaultContactURLEnabled),
		ContactURLBase:    getEnvStr(EnvContactURLBase, DefaultContactURLBase),
		ContactURLSuffix:  getEnvStr(EnvContactURLSuffix, DefaultContactURLSuffix),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxUploadSize:  getEnvNum(EnvMaxUploadSize, DefaultMaxUploadSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
	}

	cfg.Log = logger.New(logger.Config{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		AddSource: true,
		Service:   serviceName,
	})

	var schemaErr error
	if cfg.SchemaFile != "" {
		cfg.Schemas, schemaErr = ReadSchemaFile(cfg.SchemaFile)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if schemaErr != nil {
		return cfg, schemaErr
	}
	return cfg, nil
}

// ReadSchemaFile decodes a JSON array of schemas and normalizes their column
// names the way the importer normalizes header cells. The first entry
// becomes the fallback variant.
func ReadSchemaFile(path string) ([]model.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	var schemas []model.Schema
	if err := json.Unmarshal(data, &schemas); err != nil {
		return nil, fmt.Errorf("failed to parse schema file %s: %w", path, err)
	}
	if len(schemas) == 0 {
		return nil, fmt.Errorf("schema file %s defines no schema", path)
	}

	for i := range schemas {
		s := &schemas[i]
		s.Variant = strings.TrimSpace(s.Variant)
		s.PhoneColumns = sanitizer.NormalizeColumns(s.PhoneColumns)
		s.InfoColumns = sanitizer.NormalizeColumns(s.InfoColumns)
		s.CountryColumns = sanitizer.NormalizeColumns(s.CountryColumns)
		s.ReferenceColumn = sanitizer.TrimAndNormalize(s.ReferenceColumn)
	}
	return schemas, nil
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.LogFormat != logger.JSON && cfg.LogFormat != logger.TEXT {
		errors = append(errors, fmt.Sprintf("LogFormat must be 'json' or 'text', got: %s", cfg.LogFormat))
	}

	if strings.TrimSpace(cfg.DataDir) == "" {
		errors = append(errors, "DataDir cannot be empty")
	} else if info, err := os.Stat(cfg.DataDir); err == nil && !info.IsDir() {
		errors = append(errors, fmt.Sprintf("DataDir must be a directory, got: %s", cfg.DataDir))
	}

	if cfg.MinPartialSearchLength <= 0 {
		errors = append(errors, fmt.Sprintf("MinPartialSearchLength must be positive, got: %d", cfg.MinPartialSearchLength))
	}

	if len(cfg.CountryCodes) == 0 {
		errors = append(errors, "CountryCodes cannot be empty")
	}
	for _, code := range cfg.CountryCodes {
		if !locale.IsKnownCallingCode(code) {
			errors = append(errors, fmt.Sprintf("CountryCodes contains an unknown calling code: %s", code))
		}
	}

	if cfg.ContactURLEnabled {
		if u, err := url.Parse(cfg.ContactURLBase); err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, fmt.Sprintf("ContactURLBase must be an absolute URL, got: %s", cfg.ContactURLBase))
		}
	}

	if cfg.RateLimitWindow <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitWindow must be positive, got: %s", cfg.RateLimitWindow))
	}
	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if cfg.RateLimitRequests <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.MaxUploadSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxUploadSize must be positive, got: %d", cfg.MaxUploadSize))
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	variants := make([]string, 0, len(cfg.Schemas))
	for _, s := range cfg.Schemas {
		variants = append(variants, s.Variant)
	}

	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"directory_file", cfg.DirectoryFile,
		"data_dir", cfg.DataDir,
		"schema_file", cfg.SchemaFile,
		"schema_variants", variants,
		"min_partial_search_length", cfg.MinPartialSearchLength,
		"country_codes", cfg.CountryCodes,
		"contact_url_enabled", cfg.ContactURLEnabled,
		"contact_url_base", cfg.ContactURLBase,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"max_upload_size", cfg.MaxUploadSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
	)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// getEnvList splits a comma separated calling-code list, keeping digits only.
func getEnvList(key, fallback string) []string {
	return sanitizer.NormalizeCallingCodes(strings.Split(getEnvStr(key, fallback), ","))
}
