package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	Demo     DemoConfig     `mapstructure:"demo"`
	Stats    StatsConfig    `mapstructure:"stats"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"` // audit trail persistence
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
	Enabled  bool   `mapstructure:"enabled"` // rate limiting
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// DemoConfig controls the loan demo simulation.
type DemoConfig struct {
	ConnectDelay       time.Duration `mapstructure:"connect_delay"`
	WalletAddress      string        `mapstructure:"wallet_address"`
	WalletBalance      string        `mapstructure:"wallet_balance"` // decimal string
	Currency           string        `mapstructure:"currency"`
	StatsMode          string        `mapstructure:"stats_mode"` // fixed, derived
	AppendOnSubmit     bool          `mapstructure:"append_on_submit"`
	StrictAmount       bool          `mapstructure:"strict_amount"`
	SessionTTL         time.Duration `mapstructure:"session_ttl"`
	JanitorInterval    time.Duration `mapstructure:"janitor_interval"`
	NotificationBuffer int           `mapstructure:"notification_buffer"`
}

// StatsConfig holds the constants shown when stats_mode is "fixed".
type StatsConfig struct {
	TotalLoans         int64  `mapstructure:"total_loans"`
	TotalFunded        string `mapstructure:"total_funded"`
	CO2SavedTons       string `mapstructure:"co2_saved_tons"`
	SuccessRatePercent string `mapstructure:"success_rate_percent"`
	SolarProjects      int64  `mapstructure:"solar_projects"`
	EVsPurchased       int64  `mapstructure:"evs_purchased"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: GFD_ (GreenFund Demo).
// Nested keys use underscore: GFD_DEMO_CONNECT_DELAY, GFD_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "greenfund_demo")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "2h")
	v.SetDefault("jwt.issuer", "greenfund-demo")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("demo.connect_delay", "1s")
	v.SetDefault("demo.wallet_address", "0x742d35cc6634c0532925a3b844bc9e7595f08f1a")
	v.SetDefault("demo.wallet_balance", "5.24")
	v.SetDefault("demo.currency", "ETH")
	v.SetDefault("demo.stats_mode", "fixed")
	v.SetDefault("demo.append_on_submit", false)
	v.SetDefault("demo.strict_amount", false)
	v.SetDefault("demo.session_ttl", "30m")
	v.SetDefault("demo.janitor_interval", "1m")
	v.SetDefault("demo.notification_buffer", 16)
	v.SetDefault("stats.total_loans", 156)
	v.SetDefault("stats.total_funded", "847.6")
	v.SetDefault("stats.co2_saved_tons", "1234")
	v.SetDefault("stats.success_rate_percent", "94.2")
	v.SetDefault("stats.solar_projects", 89)
	v.SetDefault("stats.evs_purchased", 245)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: GFD_DEMO_STATS_MODE -> demo.stats_mode
	v.SetEnvPrefix("GFD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the demo engine cannot run with.
func (c *Config) Validate() error {
	switch c.Demo.StatsMode {
	case "fixed", "derived":
	default:
		return fmt.Errorf("invalid demo.stats_mode %q: must be fixed or derived", c.Demo.StatsMode)
	}
	if c.Demo.ConnectDelay < 0 {
		return fmt.Errorf("demo.connect_delay must not be negative")
	}
	if c.Demo.NotificationBuffer < 1 {
		return fmt.Errorf("demo.notification_buffer must be at least 1")
	}
	if c.Demo.JanitorInterval <= 0 {
		return fmt.Errorf("demo.janitor_interval must be positive")
	}
	return nil
}
