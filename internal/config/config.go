package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Port           int `validate:"min=1,max=65535"`
	APIKey         string
	TrustedProxies []string

	// Remote authority
	APIBaseURL          string `validate:"required,url"`
	AuthorityAPIKey     string
	PlayerID            string        `validate:"required"`
	AuthorityRetryMax   int           `validate:"min=0,max=10"`
	AuthorityRetryDelay time.Duration `validate:"gte=0"`
	AuthorityTimeout    time.Duration `validate:"gt=0"`

	// Logging
	LogLevel    string
	LogFormat   string `validate:"oneof=text json"`
	LogDir      string
	Environment string
	ServiceName string
	Version     string

	// Journal
	JournalDriver        string `validate:"oneof=none postgres sqlite"`
	JournalDSN           string `validate:"required_unless=JournalDriver none"`
	JournalRetentionDays int    `validate:"min=1"`
	DBMaxConns           int    `validate:"min=1"`
	DBMaxConnIdleTime    time.Duration
	DBMaxConnLifetime    time.Duration

	// Scheduling
	TickInterval           time.Duration `validate:"gt=0"`
	CatalogRefreshInterval time.Duration `validate:"gt=0"`
	CatalogCacheTTL        time.Duration `validate:"gt=0"`
	WorkerCount            int           `validate:"min=1"`
	WorkerQueueSize        int           `validate:"min=1"`

	// Event publishing
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string

	TuningFile string
	Tuning     Tuning
}

// Tuning holds the optional YAML overrides. Game constants are not tunable.
type Tuning struct {
	NotificationWindow time.Duration `yaml:"notification_window" validate:"gt=0"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
	SSEKeepalive       time.Duration `yaml:"sse_keepalive" validate:"gt=0"`
}

// DefaultTuning returns the built-in tuning values
func DefaultTuning() Tuning {
	return Tuning{
		NotificationWindow: DefaultNotificationWindow,
		ShutdownTimeout:    DefaultShutdownTimeout,
		SSEKeepalive:       DefaultSSEKeepalive,
	}
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnvAsInt(EnvPort, DefaultPort),
		APIKey:         getEnv(EnvAPIKey, ""),
		TrustedProxies: getEnvAsList(EnvTrustedProxies),

		APIBaseURL:          getEnv(EnvAPIBaseURL, ""),
		AuthorityAPIKey:     getEnv(EnvAuthorityAPIKey, ""),
		PlayerID:            getEnv(EnvPlayerID, ""),
		AuthorityRetryMax:   getEnvAsInt(EnvAuthorityRetryMax, DefaultAuthorityRetryMax),
		AuthorityRetryDelay: getEnvAsDuration(EnvAuthorityRetryDelay, DefaultAuthorityRetryDelay),
		AuthorityTimeout:    getEnvAsDuration(EnvAuthorityTimeout, DefaultAuthorityTimeout),

		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:      getEnv(EnvLogDir, DefaultLogDir),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),

		JournalDriver:        strings.ToLower(getEnv(EnvJournalDriver, DefaultJournalDriver)),
		JournalDSN:           getEnv(EnvJournalDSN, ""),
		JournalRetentionDays: getEnvAsInt(EnvJournalRetentionDays, DefaultJournalRetentionDays),
		DBMaxConns:           getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime:    getEnvAsDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime:    getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),

		TickInterval:           getEnvAsDuration(EnvTickInterval, DefaultTickInterval),
		CatalogRefreshInterval: getEnvAsDuration(EnvCatalogRefreshInterval, DefaultCatalogRefreshInterval),
		CatalogCacheTTL:        getEnvAsDuration(EnvCatalogCacheTTL, DefaultCatalogCacheTTL),
		WorkerCount:            getEnvAsInt(EnvWorkerCount, DefaultWorkerCount),
		WorkerQueueSize:        getEnvAsInt(EnvWorkerQueueSize, DefaultWorkerQueueSize),

		EventMaxRetries:     getEnvAsInt(EnvEventMaxRetries, DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration(EnvEventRetryDelay, DefaultEventRetryDelay),
		EventDeadLetterPath: getEnv(EnvEventDeadLetterPath, DefaultEventDeadLetterPath),

		TuningFile: getEnv(EnvTuningFile, ""),
		Tuning:     DefaultTuning(),
	}

	if cfg.TuningFile != "" {
		tuning, err := LoadTuning(cfg.TuningFile)
		if err != nil {
			return nil, err
		}
		cfg.Tuning = tuning
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoadTuning reads tuning overrides from a YAML file. Keys left out keep
// their defaults.
func LoadTuning(path string) (Tuning, error) {
	tuning := DefaultTuning()

	data, err := os.ReadFile(path)
	if err != nil {
		return tuning, fmt.Errorf("failed to read tuning file: %w", err)
	}

	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return tuning, fmt.Errorf("failed to parse tuning file %s: %w", path, err)
	}

	return tuning, nil
}

// IsDevelopment reports whether the service runs in a dev environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back on absence or error
func getEnvAsInt(key string, defaultValue int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsDuration parses a Go duration, falling back on absence or error
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return defaultValue
	}
	return d
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
