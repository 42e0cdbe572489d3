package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/Mrithul03/vendroo-server/config"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// Connection owns the single connection pool shared by every repository.
// It is opened once at process start and closed on shutdown.
type Connection struct {
	DB *sqlx.DB
}

func New(config *config.Config) *Connection {
	db := connect(config)
	if db == nil {
		log.Fatal().Msg("Could not establish database connection")
	}

	if config.DB.Postgres.AutoMigrate {
		if err := Bootstrap(db); err != nil {
			log.Fatal().Err(err).Msg("Failed to ensure database schema")
		}
	}

	return &Connection{DB: db}
}

func (c *Connection) Close() error {
	if err := c.DB.Close(); err != nil {
		return fmt.Errorf("closing connection pool: %w", err)
	}

	return nil
}

// Descriptor builds the connection string, honoring a full URL override.
func Descriptor(config *config.Config) string {
	if config.DB.Postgres.URL != "" {
		return config.DB.Postgres.URL
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		config.DB.Postgres.Username,
		config.DB.Postgres.Password,
		net.JoinHostPort(config.DB.Postgres.Host, config.DB.Postgres.Port),
		config.DB.Postgres.Name,
		config.PostgresSSLMode(),
	)
}

func connect(config *config.Config) *sqlx.DB {
	descriptor := Descriptor(config)

	host := config.DB.Postgres.Host
	port := config.DB.Postgres.Port
	dbName := config.DB.Postgres.Name

	for retry := range config.DB.Postgres.MaxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(config.DB.Postgres.RetryWaitTime) * time.Second)
	}

	return nil
}

const schemaFormEntries = `
CREATE TABLE IF NOT EXISTS form_entries (
	id           BIGSERIAL PRIMARY KEY,
	owner        TEXT NOT NULL,
	shopname     TEXT NOT NULL,
	businesstype TEXT NOT NULL,
	phone        TEXT NOT NULL,
	location     TEXT NOT NULL,
	building     TEXT NOT NULL DEFAULT '',
	photo_url    TEXT,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const schemaTodos = `
CREATE TABLE IF NOT EXISTS todos (
	id          BIGSERIAL PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	completed   BOOLEAN NOT NULL DEFAULT FALSE,
	due_date    TIMESTAMPTZ,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Bootstrap applies the create-if-absent schema. Safe to run on every start.
func Bootstrap(db *sqlx.DB) error {
	for _, ddl := range []string{schemaFormEntries, schemaTodos} {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	log.Info().Msg("Database schema ensured")

	return nil
}
