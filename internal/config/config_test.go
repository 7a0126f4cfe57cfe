package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9000
database:
  host: localhost
  port: 5433
  read_host: replica
  user: finara
  password: secret
  dbname: finara
ethereum:
  rpc_url: "http://localhost:8545"
  chain_id: 31337
  relayer_private_key: "0xabc"
  factory_address: "0xFactory"
  confirmation_timeout: "30s"
nats:
  url: "nats://localhost:4222"
auth:
  api_keys:
    - key-1
    - key-2
rate_limit:
  enabled: false
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9000, cfg.Server.Port)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "replica", cfg.Database.ReadHost)
				assert.True(t, cfg.Database.Enabled())
				assert.Equal(t, "http://localhost:8545", cfg.Ethereum.RPCURL)
				assert.Equal(t, int64(31337), cfg.Ethereum.ChainID)
				assert.Equal(t, "0xabc", cfg.Ethereum.RelayerPrivateKey)
				assert.Equal(t, "0xFactory", cfg.Ethereum.FactoryAddress)
				assert.Equal(t, 30*time.Second, cfg.Ethereum.ConfirmationTimeout)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, []string{"key-1", "key-2"}, cfg.Auth.APIKeys)
				assert.False(t, cfg.RateLimit.Enabled)
			},
		},
		{
			name:       "config with defaults",
			configFile: "debug: false\n",
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 3001, cfg.Server.Port)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.False(t, cfg.Database.Enabled())
				assert.True(t, cfg.Database.AutoMigrate)
				assert.Equal(t, "https://rpc.sepolia.org", cfg.Ethereum.RPCURL)
				assert.Equal(t, int64(11155111), cfg.Ethereum.ChainID)
				assert.Equal(t, 2*time.Minute, cfg.Ethereum.ConfirmationTimeout)
				assert.Equal(t, 64, cfg.Ethereum.QueueSize)
				assert.Equal(t, "FINARA_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "finara-api", cfg.NATS.ConnectionName)
				assert.True(t, cfg.RateLimit.Enabled)
				assert.Equal(t, 20, cfg.RateLimit.RequestsPerSecond)
				assert.Equal(t, "finara:api:limiter:", cfg.RateLimit.RedisKeyPrefix)
				assert.Equal(t, 40, cfg.RateLimit.Burst)
			},
		},
		{
			name:        "malformed yaml",
			configFile:  "server: [unclosed",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadAPIConfig(writeConfig(t, tt.configFile), t.TempDir())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadSweeperConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError string
		validate    func(*testing.T, *SweeperConfig)
	}{
		{
			name: "valid config with defaults",
			configFile: `
database:
  host: localhost
  dbname: finara
`,
			validate: func(t *testing.T, cfg *SweeperConfig) {
				assert.Equal(t, "@every 5m", cfg.Reconciliation.Schedule)
				assert.Equal(t, 15*time.Minute, cfg.Reconciliation.StaleAge)
				assert.Equal(t, 100, cfg.Reconciliation.BatchSize)
				assert.Equal(t, 4, cfg.Reconciliation.Worker.WorkerPoolSize)
				assert.Equal(t, 5, cfg.Database.MaxOpenConns)
				assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
				assert.Equal(t, 5*time.Minute, cfg.Ethereum.SubmitTimeout)
			},
		},
		{
			name: "custom schedule",
			configFile: `
database:
  host: localhost
  dbname: finara
reconciliation:
  schedule: "*/10 * * * *"
  stale_age: 1h
  batch_size: 10
`,
			validate: func(t *testing.T, cfg *SweeperConfig) {
				assert.Equal(t, "*/10 * * * *", cfg.Reconciliation.Schedule)
				assert.Equal(t, time.Hour, cfg.Reconciliation.StaleAge)
				assert.Equal(t, 10, cfg.Reconciliation.BatchSize)
			},
		},
		{
			name: "stale age within relayer in-flight window",
			configFile: `
database:
  host: localhost
  dbname: finara
reconciliation:
  stale_age: 5m
ethereum:
  confirmation_timeout: 2m
  submit_timeout: 5m
`,
			expectError: "reconciliation.stale_age (5m0s) must exceed",
		},
		{
			name:        "missing database host",
			configFile:  "database:\n  dbname: finara\n",
			expectError: "database.host is required",
		},
		{
			name:        "missing database name",
			configFile:  "database:\n  host: localhost\n",
			expectError: "database.dbname is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadSweeperConfig(writeConfig(t, tt.configFile), t.TempDir())

			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadRelayerToolConfig(t *testing.T) {
	cfg, err := LoadRelayerToolConfig(writeConfig(t, `
ethereum:
  rpc_url: "http://node:8545"
  relayer_private_key: "0x01"
`), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "http://node:8545", cfg.Ethereum.RPCURL)
	assert.Equal(t, "0x01", cfg.Ethereum.RelayerPrivateKey)
	assert.Equal(t, 10*time.Second, cfg.Ethereum.DialTimeout)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "finara",
		Password: "p@ssw0rd!",
		DBName:   "finara",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=localhost port=5432 user=finara password=p@ssw0rd! dbname=finara sslmode=disable", cfg.DSN())

	cfg.ReadHost = "replica"
	assert.Equal(t, "host=replica port=5432 user=finara password=p@ssw0rd! dbname=finara sslmode=disable", cfg.ReadDSN())

	cfg.ReadPort = 6432
	assert.Equal(t, "host=replica port=6432 user=finara password=p@ssw0rd! dbname=finara sslmode=disable", cfg.ReadDSN())
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	envDir := t.TempDir()
	envContent := `FINARA_DEBUG=true
FINARA_DATABASE_HOST=env-host
FINARA_DATABASE_PORT=6543
FINARA_ETHEREUM_RELAYER_PRIVATE_KEY=0xenv
FINARA_NATS_URL=nats://env:4222
`
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env"), []byte(envContent), 0600))
	for _, key := range []string{
		"FINARA_DEBUG",
		"FINARA_DATABASE_HOST",
		"FINARA_DATABASE_PORT",
		"FINARA_ETHEREUM_RELAYER_PRIVATE_KEY",
		"FINARA_NATS_URL",
	} {
		k := key
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}

	configPath := writeConfig(t, `
debug: false
database:
  host: file-host
  port: 5432
`)

	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "0xenv", cfg.Ethereum.RelayerPrivateKey)
	assert.Equal(t, "nats://env:4222", cfg.NATS.URL)
}
