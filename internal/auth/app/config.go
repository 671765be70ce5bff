package app

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/aussiebroadwan/authkit/internal/auth/store/drivers/postgres"
	"github.com/aussiebroadwan/authkit/pkg/jwtx"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env                 string        `env:"ENV"                   envDefault:"dev"`  // Environment (dev, staging, prod)
	LogLevel            string        `env:"LOG_LEVEL"             envDefault:"info"` // debug, info, warn, error
	LogFormat           string        `env:"LOG_FORMAT"            envDefault:"json"` // json, text
	Port                int           `env:"PORT"                  envDefault:"3001"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	DBDriver     string `env:"DB_DRIVER"     envDefault:"sqlite"` // sqlite, postgres
	DatabaseFile string `env:"DATABASE_FILE" envDefault:"auth.db"`
	DB           DBConfig

	JWTSecret    string        `env:"JWT_SECRET"`
	JWTExpiresIn time.Duration `env:"JWT_EXPIRES_IN" envDefault:"1h"`

	// ClientURL lists the browser origins allowed by CORS, comma separated.
	ClientURL []string `env:"CLIENT_URL" envDefault:"http://localhost:3005" envSeparator:","`

	// PepperFile is optional. When set, a pepper is loaded from (or generated
	// into) this file and mixed into every password hash.
	PepperFile string `env:"PEPPER_FILE"`
}

// DBConfig holds the Postgres connection settings.
type DBConfig struct {
	Host     string `env:"DB_HOST"     envDefault:"localhost"`
	Port     int    `env:"DB_PORT"     envDefault:"5432"`
	Username string `env:"DB_USERNAME"`
	Password string `env:"DB_PASSWORD"`
	Database string `env:"DB_DATABASE"`
	SSLMode  string `env:"DB_SSLMODE"`
}

// URL renders the settings as a postgres connection string.
func (c DBConfig) URL() string {
	return postgres.Config{
		Host:     c.Host,
		Port:     c.Port,
		Username: c.Username,
		Password: c.Password,
		Database: c.Database,
		SSLMode:  c.SSLMode,
	}.URL()
}

// LoadConfig reads a .env file from the working directory if one exists,
// then parses the environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return ParseConfig(env.Options{})
}

// ParseConfig parses configuration using opts. Tests pass Environment to
// avoid touching the process env.
func ParseConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ValidateStorage checks the settings needed to open the database.
func (c Config) ValidateStorage() error {
	switch c.DBDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			return errors.New("DATABASE_FILE must be set for the sqlite driver")
		}
	case DriverPostgres:
		if c.DB.Database == "" {
			return errors.New("DB_DATABASE must be set for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER %q (want %s or %s)", c.DBDriver, DriverSQLite, DriverPostgres)
	}
	return nil
}

// Validate checks everything the server needs to start.
func (c Config) Validate() error {
	if err := c.ValidateStorage(); err != nil {
		return err
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if len(c.JWTSecret) < jwtx.MinSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes", jwtx.MinSecretLength)
	}
	if c.JWTExpiresIn <= 0 {
		return errors.New("JWT_EXPIRES_IN must be positive")
	}
	return nil
}
