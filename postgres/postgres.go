package postgres

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/xy-planning-network/enums"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// PG Docs: https://www.postgresql.org/docs/current/libpq-connect.html#LIBPQ-PARAMKEYWORDS
const cxnStr = "host=%s port=%s dbname=%s user=%s password=%s sslmode=%s"

// CxnConfig holds connection information used to connect to a PostgreSQL
// database. URL, when set, wins over the individual parts.
type CxnConfig struct {
	URL      string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
}

// ConfigFromEnv builds a CxnConfig from DATABASE_* environment variables,
// falling back to development defaults.
func ConfigFromEnv() *CxnConfig {
	return &CxnConfig{
		URL:      os.Getenv("DATABASE_URL"),
		Host:     envVarOrString("DATABASE_HOST", "localhost"),
		Port:     envVarOrString("DATABASE_PORT", "5432"),
		Name:     envVarOrString("DATABASE_NAME", "enums_development"),
		User:     envVarOrString("DATABASE_USER", "postgres"),
		Password: os.Getenv("DATABASE_PASSWORD"),
		SSLMode:  envVarOrString("DATABASE_SSLMODE", "disable"),
	}
}

// Connect creates a database connection through GORM according to the
// connection config.
func Connect(config *CxnConfig) (*gorm.DB, error) {
	// https://gorm.io/docs/logger.html
	c := gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	}

	db, err := gorm.Open(postgres.Open(buildCxnStr(config)), &gorm.Config{
		Logger: gormlogger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), c),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: connecting: %s", enums.ErrUnexpected, err)
	}

	slog.Info("connected to PostgreSQL", "host", config.Host, "name", config.Name)

	return db, nil
}

func buildCxnStr(config *CxnConfig) string {
	if config.URL != "" {
		return config.URL
	}

	return fmt.Sprintf(cxnStr, config.Host, config.Port, config.Name, config.User, config.Password, config.SSLMode)
}

func envVarOrString(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	return val
}
