package suites

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/joefazee/prognos/app/database"
)

const (
	postgresImage = "postgres:17.5-alpine3.21"
	postgresPort  = "5432/tcp"
)

// PostgresContainer is a disposable postgres server and the config that
// reaches it.
type PostgresContainer struct {
	testcontainers.Container
	Config database.Config
}

func NewPostgresContainer(ctx context.Context) (*PostgresContainer, error) {
	cfg := database.Config{
		User:     "prognos",
		Password: "prognos",
		Database: "prognos_test",
	}

	dbURL := func(host string, port nat.Port) string {
		c := cfg
		c.Host, c.Port = host, port.Port()
		return c.URL()
	}

	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{postgresPort},
		Cmd:          []string{"postgres", "-c", "fsync=off"},
		Env: map[string]string{
			"POSTGRES_DB":       cfg.Database,
			"POSTGRES_USER":     cfg.User,
			"POSTGRES_PASSWORD": cfg.Password,
		},
		WaitingFor: wait.ForSQL(postgresPort, "postgres", dbURL).
			WithStartupTimeout(30 * time.Second).
			WithQuery("SELECT 1"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, postgresPort)
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	cfg.Host = host
	cfg.Port = mappedPort.Port()

	return &PostgresContainer{Container: container, Config: cfg}, nil
}

// RepositoryTestSuite starts one postgres container per suite and empties
// every table before each test. Embed it and set AutoMigrate before calling
// its SetupSuite.
type RepositoryTestSuite struct {
	suite.Suite
	Container      *PostgresContainer
	DB             *gorm.DB
	AutoMigrate    bool
	MigrationsPath string
}

func (s *RepositoryTestSuite) SetupSuite() {
	s.T().Helper()

	if testing.Short() {
		s.T().Skip("Skipping database integration tests in short mode")
	}

	if s.MigrationsPath == "" {
		s.MigrationsPath = findMigrationsPath()
	}

	ctx := context.Background()
	container, err := NewPostgresContainer(ctx)
	if err != nil {
		s.T().Fatalf("Failed to create postgres container: %v", err)
	}
	s.Container = container
	s.T().Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	cfg := container.Config
	cfg.MigrationsPath = s.MigrationsPath

	if s.AutoMigrate {
		if err := database.Migrate(&cfg); err != nil {
			s.T().Fatalf("Failed to run migrations: %v", err)
		}
	}

	db, err := database.New(&cfg)
	if err != nil {
		s.T().Fatalf("Failed to open database: %v", err)
	}
	s.DB = db

	s.T().Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
}

// findMigrationsPath walks up from the working directory to the module root.
func findMigrationsPath() string {
	wd, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return filepath.Join(wd, "migrations")
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			return "migrations"
		}
		wd = parent
	}
}

func (s *RepositoryTestSuite) SetupTest() {
	s.truncateTables()
}

func (s *RepositoryTestSuite) truncateTables() {
	if s.DB == nil {
		return
	}

	var tables []string
	s.DB.Raw(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		AND table_type = 'BASE TABLE'
		AND table_name <> 'schema_migrations'
	`).Scan(&tables)

	if len(tables) == 0 {
		return
	}

	quoted := make([]string, len(tables))
	for i, table := range tables {
		quoted[i] = fmt.Sprintf("%q", table)
	}
	if err := s.DB.Exec("TRUNCATE " + strings.Join(quoted, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		s.T().Fatalf("Failed to truncate tables: %v", err)
	}
}

func (s *RepositoryTestSuite) CountRecords(table string) int64 {
	var c int64
	s.DB.Table(table).Count(&c)
	return c
}

func (s *RepositoryTestSuite) TableExists(table string) bool {
	return s.DB.Migrator().HasTable(table)
}

func (s *RepositoryTestSuite) AssertNoDBError(err error, args ...interface{}) {
	s.Assert().NoError(err, args...)
}
