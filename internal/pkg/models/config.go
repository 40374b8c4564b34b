package models

// Config represents application configuration
type Config struct {
	App            AppConfig
	Server         ServerConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	NATS           NATSConfig
	JWT            JWTConfig
	Logger         LoggerConfig
	Ledger         LedgerConfig
	Reconciliation ReconciliationConfig
	Provider       ProviderConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// LedgerConfig contains ledger business-rule configuration
type LedgerConfig struct {
	DailyWithdrawalCap string `json:"daily_withdrawal_cap"` // decimal string, per tenant per local day
	MaxTransactionSize string `json:"max_transaction_size"` // decimal string, single-operation ceiling
	DistributedLock    bool   `json:"distributed_lock"`     // serialize tenants via Redis for multi-instance deployments
	LockTTLSeconds     int    `json:"lock_ttl_seconds"`
}

// ReconciliationConfig contains reconciliation engine thresholds and scheduling
type ReconciliationConfig struct {
	BalanceThreshold    string `json:"balance_threshold"`     // max tolerated |system - external| balance drift
	EntryThreshold      string `json:"entry_threshold"`       // max tolerated per-entry amount drift
	AutoResolveLimit    string `json:"auto_resolve_limit"`    // discrepancies at or below this resolve automatically
	ScheduleIntervalMin int    `json:"schedule_interval_min"` // minutes between automated runs
}

// ProviderConfig contains the external money-movement provider client configuration
type ProviderConfig struct {
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
}
