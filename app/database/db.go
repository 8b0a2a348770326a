package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gLogger "gorm.io/gorm/logger"

	"github.com/joefazee/prognos/models"

	// import necessary for gorm to recognize the postgres driver
	_ "github.com/lib/pq"
)

type Config struct {
	Host           string `env:"DB_HOST"`
	Port           string `env:"DB_PORT" env-default:"5432"`
	User           string `env:"DB_USER"`
	Password       string `env:"DB_PASSWORD"`
	Database       string `env:"DB_NAME"`
	UseSSL         bool   `env:"DB_SSL_MODE"`
	LogQuery       bool   `env:"DB_LOG_QUERY"`
	AutoMigrate    bool   `env:"DB_AUTO_MIGRATE" env-default:"true"`
	MigrationsPath string `env:"DB_MIGRATIONS_PATH" env-default:"migrations"`
}

func (c *Config) Validate() error {
	if c.Host == "" ||
		c.Password == "" || c.Database == "" || c.User == "" {
		return models.ErrDatabaseCredentialNotConfigured
	}
	return nil
}

func (c *Config) sslMode() string {
	if c.UseSSL {
		return "require"
	}
	return "disable"
}

// DSN is the key/value connection string used by gorm.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Database, c.Port, c.sslMode())
}

// URL is the postgres:// form expected by the migrator.
func (c *Config) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.sslMode())
}

func New(c *Config) (*gorm.DB, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cfg := &gorm.Config{}
	if !c.LogQuery {
		cfg.Logger = gLogger.Discard
	}

	db, err := gorm.Open(postgres.Open(c.DSN()), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
