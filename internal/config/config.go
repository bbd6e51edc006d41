package config

import (
	"errors"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Env             string        `mapstructure:"ENV"`
	Port            string        `mapstructure:"PORT"`
	DatabaseURL     string        `mapstructure:"DATABASE_URL"`
	DashboardSecret string        `mapstructure:"DASHBOARD_SECRET"`
	CORSAllowed     string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	DBMaxConns      int32         `mapstructure:"DB_MAX_CONNS"`
	DBMaxIdleTime   time.Duration `mapstructure:"DB_MAX_CONN_IDLE_TIME"`
	DBConnTimeout   time.Duration `mapstructure:"DB_CONNECT_TIMEOUT"`
	DBAcquireWait   time.Duration `mapstructure:"DB_ACQUIRE_TIMEOUT"`
	WriteRateLimit  float64       `mapstructure:"WRITE_RATE_LIMIT"`
	WriteRateBurst  int           `mapstructure:"WRITE_RATE_BURST"`
}

var ErrMissingDatabaseURL = errors.New("DATABASE_URL environment variable is not set")

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"port":      "PORT",
	"log-level": "LOG_LEVEL",
}

// Load reads .env and the environment. Flags that were set on fs win over both.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_CONN_IDLE_TIME", "30s")
	v.SetDefault("DB_CONNECT_TIMEOUT", "2s")
	v.SetDefault("DB_ACQUIRE_TIMEOUT", "2s")
	v.SetDefault("WRITE_RATE_LIMIT", 5)
	v.SetDefault("WRITE_RATE_BURST", 10)
	// keys with no default still need to be known for Unmarshal to see env values
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DASHBOARD_SECRET", "")

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil && f.Changed {
				v.Set(key, f.Value.String())
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.DatabaseURL == "" {
		return Config{}, ErrMissingDatabaseURL
	}
	return cfg, nil
}
