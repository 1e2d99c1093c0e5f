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
	CartToken    CartTokenConfig
	Cart         CartConfig
	Checkout     CheckoutConfig
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
	Env          string `envconfig:"FRESHMANDI_APP_ENV" required:"true"`
	Port         string `envconfig:"FRESHMANDI_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"FRESHMANDI_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FRESHMANDI_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"FRESHMANDI_DB_DSN"`
	Driver string `envconfig:"FRESHMANDI_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"FRESHMANDI_DB_HOST"`
	LegacyPort     int    `envconfig:"FRESHMANDI_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"FRESHMANDI_DB_USER"`
	LegacyPassword string `envconfig:"FRESHMANDI_DB_PASSWORD"`
	LegacyName     string `envconfig:"FRESHMANDI_DB_NAME"`
	LegacySSLMode  string `envconfig:"FRESHMANDI_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"FRESHMANDI_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"FRESHMANDI_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"FRESHMANDI_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"FRESHMANDI_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"FRESHMANDI_REDIS_URL" required:"true"`
	Address      string        `envconfig:"FRESHMANDI_REDIS_ADDR"`
	Password     string        `envconfig:"FRESHMANDI_REDIS_PASSWORD"`
	DB           int           `envconfig:"FRESHMANDI_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FRESHMANDI_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FRESHMANDI_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FRESHMANDI_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FRESHMANDI_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FRESHMANDI_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// CartTokenConfig signs the anonymous cart token handed to shoppers.
type CartTokenConfig struct {
	Secret     string `envconfig:"FRESHMANDI_CART_TOKEN_SECRET" required:"true"`
	Issuer     string `envconfig:"FRESHMANDI_CART_TOKEN_ISSUER" required:"true"`
	TTLMinutes int    `envconfig:"FRESHMANDI_CART_TOKEN_TTL_MINUTES" default:"43200"`
}

// TTL returns the cart token lifetime configured in minutes.
func (c CartTokenConfig) TTL() time.Duration {
	if c.TTLMinutes <= 0 {
		return 0
	}
	return time.Duration(c.TTLMinutes) * time.Minute
}

type CartConfig struct {
	MirrorTTL time.Duration `envconfig:"FRESHMANDI_CART_MIRROR_TTL" default:"720h"`
}

type CheckoutConfig struct {
	SessionTTL time.Duration `envconfig:"FRESHMANDI_CHECKOUT_SESSION_TTL" default:"30m"`
	OrderTTL   time.Duration `envconfig:"FRESHMANDI_CHECKOUT_ORDER_TTL" default:"24h"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool   `envconfig:"FRESHMANDI_USE_SQLITE" default:"false"`
	SQLitePath  string `envconfig:"FRESHMANDI_SQLITE_PATH" default:"freshmandi.db"`
	AutoMigrate bool   `envconfig:"FRESHMANDI_AUTO_MIGRATE" default:"false"`
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
