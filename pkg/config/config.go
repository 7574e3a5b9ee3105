package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	RateLimit    RateLimitConfig
	Insights     InsightsConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SALESPULSE_APP_ENV" required:"true"`
	Port         string `envconfig:"SALESPULSE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SALESPULSE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SALESPULSE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"SALESPULSE_DB_DSN"`
	Driver string `envconfig:"SALESPULSE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"SALESPULSE_DB_HOST"`
	LegacyPort     int    `envconfig:"SALESPULSE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SALESPULSE_DB_USER"`
	LegacyPassword string `envconfig:"SALESPULSE_DB_PASSWORD"`
	LegacyName     string `envconfig:"SALESPULSE_DB_NAME"`
	LegacySSLMode  string `envconfig:"SALESPULSE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SALESPULSE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SALESPULSE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SALESPULSE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SALESPULSE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SALESPULSE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"SALESPULSE_REDIS_ADDR"`
	Password     string        `envconfig:"SALESPULSE_REDIS_PASSWORD"`
	DB           int           `envconfig:"SALESPULSE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SALESPULSE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SALESPULSE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SALESPULSE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SALESPULSE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SALESPULSE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type RateLimitConfig struct {
	Window time.Duration `envconfig:"SALESPULSE_RATE_LIMIT_WINDOW" default:"1m"`
	Limit  int           `envconfig:"SALESPULSE_RATE_LIMIT_LIMIT" default:"120"`
}

// InsightsConfig bounds the analytics engine. FetchCap limits how many rows a
// single analysis may pull from the database.
type InsightsConfig struct {
	FetchCap        int `envconfig:"SALESPULSE_INSIGHTS_FETCH_CAP" default:"100000"`
	DefaultRangeDay int `envconfig:"SALESPULSE_INSIGHTS_DEFAULT_RANGE_DAYS" default:"30"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SALESPULSE_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
