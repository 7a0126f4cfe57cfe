package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug       bool   `mapstructure:"debug"`
	SentryDSN   string `mapstructure:"sentry_dsn"`
	Environment string `mapstructure:"environment"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadHost        string        `mapstructure:"read_host"`
	ReadPort        int           `mapstructure:"read_port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// NATSConfig holds NATS JetStream configuration. An empty URL disables event publishing.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// EthereumConfig holds the relayer's chain configuration
type EthereumConfig struct {
	RPCURL              string        `mapstructure:"rpc_url"`
	ChainID             int64         `mapstructure:"chain_id"`
	RelayerPrivateKey   string        `mapstructure:"relayer_private_key"`
	FactoryAddress      string        `mapstructure:"factory_address"`
	ConfirmationTimeout time.Duration `mapstructure:"confirmation_timeout"`
	SubmitTimeout       time.Duration `mapstructure:"submit_timeout"`
	QueueSize           int           `mapstructure:"queue_size"`
	DialTimeout         time.Duration `mapstructure:"dial_timeout"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration for mutating routes.
// Both fields empty means the routes are open.
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// RateLimitConfig holds per-client request limits for the /api group.
// With RedisAddr set the limit is shared across API replicas.
type RateLimitConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	RequestsPerSecond int    `mapstructure:"requests_per_second"`
	Burst             int    `mapstructure:"burst"`
	RedisAddr         string `mapstructure:"redis_addr"`
	RedisPassword     string `mapstructure:"redis_password"`
	RedisDB           int    `mapstructure:"redis_db"`
	RedisKeyPrefix    string `mapstructure:"redis_key_prefix"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// ReconciliationConfig holds configuration for the stale asset reconciler
type ReconciliationConfig struct {
	Schedule  string        `mapstructure:"schedule"`
	StaleAge  time.Duration `mapstructure:"stale_age"`
	BatchSize int           `mapstructure:"batch_size"`
	Worker    WorkerConfig  `mapstructure:"worker"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig    `mapstructure:"server"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Ethereum   EthereumConfig  `mapstructure:"ethereum"`
	NATS       NATSConfig      `mapstructure:"nats"`
	Auth       AuthConfig      `mapstructure:"auth"`
	RateLimit  RateLimitConfig `mapstructure:"rate_limit"`
}

// SweeperConfig holds configuration for the sweeper program
type SweeperConfig struct {
	BaseConfig     `mapstructure:",squash"`
	Database       DatabaseConfig       `mapstructure:"database"`
	NATS           NATSConfig           `mapstructure:"nats"`
	Reconciliation ReconciliationConfig `mapstructure:"reconciliation"`
	// Ethereum is read only to check the stale age against the relayer's timeouts
	Ethereum       EthereumConfig       `mapstructure:"ethereum"`
}

// RelayerToolConfig holds configuration for the relayer operator tool
type RelayerToolConfig struct {
	BaseConfig `mapstructure:",squash"`
	Ethereum   EthereumConfig `mapstructure:"ethereum"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	v.SetDefault("debug", false)
	v.SetDefault("environment", "development")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3001)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 180)
	v.SetDefault("server.idle_timeout", 120)
	setDatabaseDefaults(v)
	v.SetDefault("database.auto_migrate", true)
	setEthereumDefaults(v)
	setNATSDefaults(v, "finara-api")
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_second", 20)
	v.SetDefault("rate_limit.burst", 40)
	v.SetDefault("rate_limit.redis_key_prefix", "finara:api:limiter:")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadSweeperConfig loads configuration for the sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	setDatabaseDefaults(v)
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	setNATSDefaults(v, "finara-sweeper")
	v.SetDefault("reconciliation.schedule", "@every 5m")
	v.SetDefault("reconciliation.stale_age", "15m")
	v.SetDefault("reconciliation.batch_size", 100)
	v.SetDefault("reconciliation.worker.pool_size", 4)
	v.SetDefault("reconciliation.worker.queue_size", 100)
	setEthereumDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}

	// a relayer call lasts at most submit_timeout plus confirmation_timeout
	inFlight := cfg.Ethereum.SubmitTimeout + cfg.Ethereum.ConfirmationTimeout
	if cfg.Reconciliation.StaleAge <= inFlight {
		return nil, fmt.Errorf("reconciliation.stale_age (%s) must exceed ethereum.submit_timeout + ethereum.confirmation_timeout (%s)",
			cfg.Reconciliation.StaleAge, inFlight)
	}

	return &cfg, nil
}

// LoadRelayerToolConfig loads configuration for the relayer tool
func LoadRelayerToolConfig(configFile string, envPath string) (*RelayerToolConfig, error) {
	v := configureViper("relayer-tool", configFile, envPath)
	setEthereumDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg RelayerToolConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
}

func setEthereumDefaults(v *viper.Viper) {
	v.SetDefault("ethereum.rpc_url", "https://rpc.sepolia.org")
	v.SetDefault("ethereum.chain_id", 11155111)
	v.SetDefault("ethereum.confirmation_timeout", "2m")
	v.SetDefault("ethereum.submit_timeout", "5m")
	v.SetDefault("ethereum.queue_size", 64)
	v.SetDefault("ethereum.dial_timeout", "10s")
}

func setNATSDefaults(v *viper.Viper, connectionName string) {
	v.SetDefault("nats.stream_name", "FINARA_EVENTS")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", connectionName)
}

// readConfig reads the config file; a missing file in the search paths is not an error
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("FINARA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone does not reach Unmarshal for keys missing from the file
	bindAllEnvVars(v)
	return v
}

func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"environment",
		// Database
		"database.host",
		"database.port",
		"database.read_host",
		"database.read_port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		"database.auto_migrate",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Ethereum
		"ethereum.rpc_url",
		"ethereum.chain_id",
		"ethereum.relayer_private_key",
		"ethereum.factory_address",
		"ethereum.confirmation_timeout",
		"ethereum.submit_timeout",
		"ethereum.queue_size",
		"ethereum.dial_timeout",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Rate limit
		"rate_limit.enabled",
		"rate_limit.requests_per_second",
		"rate_limit.burst",
		"rate_limit.redis_addr",
		"rate_limit.redis_password",
		"rate_limit.redis_db",
		"rate_limit.redis_key_prefix",
		// Reconciliation
		"reconciliation.schedule",
		"reconciliation.stale_age",
		"reconciliation.batch_size",
		"reconciliation.worker.pool_size",
		"reconciliation.worker.queue_size",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads .env files from envPath (default config/); later files override earlier ones
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile))
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// Enabled reports whether a database host is configured
func (c *DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ReadDSN returns the read-replica connection string. ReadPort falls back to Port.
func (c *DatabaseConfig) ReadDSN() string {
	port := c.ReadPort
	if port == 0 {
		port = c.Port
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.ReadHost, port, c.User, c.Password, c.DBName, c.SSLMode)
}

