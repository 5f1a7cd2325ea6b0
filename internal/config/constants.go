package config

import "time"

// Defaults
const (
	DefaultPort                   = 8090
	DefaultLogLevel               = "info"
	DefaultLogFormat              = "text"
	DefaultLogDir                 = "logs"
	DefaultEnvironment            = "dev"
	DefaultServiceName            = "magicgarden"
	DefaultVersion                = "dev"
	DefaultJournalDriver          = JournalDriverNone
	DefaultJournalRetentionDays   = 30
	DefaultCatalogRefreshInterval = 10 * time.Minute
	DefaultCatalogCacheTTL        = 10 * time.Minute
	DefaultAuthorityRetryMax      = 2
	DefaultAuthorityRetryDelay    = 250 * time.Millisecond
	DefaultAuthorityTimeout       = 10 * time.Second
	DefaultTickInterval           = 1 * time.Second
	DefaultWorkerCount            = 2
	DefaultWorkerQueueSize        = 16
	DefaultEventMaxRetries        = 5
	DefaultEventRetryDelay        = 2 * time.Second
	DefaultEventDeadLetterPath    = "logs/event_deadletter.jsonl"
	DefaultDBMaxConns             = 20
	DefaultDBMaxConnIdleTime      = 5 * time.Minute
	DefaultDBMaxConnLifetime      = 30 * time.Minute
	DefaultNotificationWindow     = 3 * time.Second
	DefaultShutdownTimeout        = 10 * time.Second
	DefaultSSEKeepalive           = 15 * time.Second
)

// Journal drivers
const (
	JournalDriverNone     = "none"
	JournalDriverPostgres = "postgres"
	JournalDriverSQLite   = "sqlite"
)

// Environment variable names
const (
	EnvSchemaVersion          = "ENV_SCHEMA_VERSION"
	EnvPort                   = "PORT"
	EnvAPIKey                 = "API_KEY"
	EnvTrustedProxies         = "TRUSTED_PROXIES"
	EnvAPIBaseURL             = "API_BASE_URL"
	EnvAuthorityAPIKey        = "AUTHORITY_API_KEY"
	EnvPlayerID               = "PLAYER_ID"
	EnvLogLevel               = "LOG_LEVEL"
	EnvLogFormat              = "LOG_FORMAT"
	EnvLogDir                 = "LOG_DIR"
	EnvEnvironment            = "ENVIRONMENT"
	EnvServiceName            = "SERVICE_NAME"
	EnvVersion                = "VERSION"
	EnvJournalDriver          = "JOURNAL_DRIVER"
	EnvJournalDSN             = "JOURNAL_DSN"
	EnvJournalRetentionDays   = "JOURNAL_RETENTION_DAYS"
	EnvCatalogRefreshInterval = "CATALOG_REFRESH_INTERVAL"
	EnvCatalogCacheTTL        = "CATALOG_CACHE_TTL"
	EnvAuthorityRetryMax      = "AUTHORITY_RETRY_MAX"
	EnvAuthorityRetryDelay    = "AUTHORITY_RETRY_DELAY"
	EnvAuthorityTimeout       = "AUTHORITY_TIMEOUT"
	EnvTickInterval           = "TICK_INTERVAL"
	EnvWorkerCount            = "WORKER_COUNT"
	EnvWorkerQueueSize        = "WORKER_QUEUE_SIZE"
	EnvEventMaxRetries        = "EVENT_MAX_RETRIES"
	EnvEventRetryDelay        = "EVENT_RETRY_DELAY"
	EnvEventDeadLetterPath    = "EVENT_DEADLETTER_PATH"
	EnvDBMaxConns             = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime      = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime      = "DB_MAX_CONN_LIFETIME"
	EnvTuningFile             = "TUNING_FILE"
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleAPIKey = "generate_with_openssl_rand_hex_32"
)
