package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	EVM        EVMConfig        `mapstructure:"evm"`
	Protocol   ProtocolConfig   `mapstructure:"protocol"`
	Controller ControllerConfig `mapstructure:"controller"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type EVMConfig struct {
	RPCURL          string        `mapstructure:"rpc_url"`
	ChainID         int64         `mapstructure:"chain_id"`
	DispatchAddress string        `mapstructure:"dispatch_address"`
	OperatorKey     string        `mapstructure:"operator_key"` // hex-encoded secp256k1 private key
	ReceiptTimeout  time.Duration `mapstructure:"receipt_timeout"`
	PollInterval    time.Duration `mapstructure:"poll_interval"`
}

type ProtocolConfig struct {
	Version uint8 `mapstructure:"version"` // envelope version byte
}

type ControllerConfig struct {
	Owner         string `mapstructure:"owner"`          // owner principal address
	SystemAddress string `mapstructure:"system_address"` // system holder, may be empty at boot
	Keeper        string `mapstructure:"keeper"`         // reserved, may be empty
}

type AuthConfig struct {
	TimestampSkew time.Duration `mapstructure:"timestamp_skew"` // max clock drift for signed requests
	NonceTTL      time.Duration `mapstructure:"nonce_ttl"`      // replay window a nonce is held for
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CBC_ (Core Bridge Controller).
// Nested keys use underscore: CBC_EVM_RPC_URL, CBC_CONTROLLER_OWNER, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "bridge_controller")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("evm.rpc_url", "http://localhost:8545")
	v.SetDefault("evm.chain_id", 999)
	v.SetDefault("evm.dispatch_address", "0x3333333333333333333333333333333333333333")
	v.SetDefault("evm.operator_key", "")
	v.SetDefault("evm.receipt_timeout", "90s")
	v.SetDefault("evm.poll_interval", "2s")
	v.SetDefault("protocol.version", 1)
	v.SetDefault("controller.owner", "")
	v.SetDefault("controller.system_address", "")
	v.SetDefault("controller.keeper", "")
	v.SetDefault("auth.timestamp_skew", "60s")
	v.SetDefault("auth.nonce_ttl", "120s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: CBC_EVM_RPC_URL -> evm.rpc_url
	v.SetEnvPrefix("CBC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (optional; env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
