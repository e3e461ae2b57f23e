package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"
	"todos/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName                = "postgres"
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

type Connection struct {
	DB *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{
		DB: CreatePostgresConnection(
			Descriptor(config),
			config.DB.Postgres.MaxRetry,
			config.DB.Postgres.RetryWaitTime,
		),
	}
}

// Descriptor returns DB_POSTGRES_URL when set, otherwise a local connection string for DB_POSTGRES_NAME.
func Descriptor(config *config.Config) string {
	pg := config.DB.Postgres
	if pg.URL != "" {
		return pg.URL
	}

	descriptor := url.URL{
		Scheme: driverName,
		Host:   net.JoinHostPort(pg.Host, pg.Port),
		Path:   "/" + pg.Name,
	}

	if pg.Username != "" {
		descriptor.User = url.UserPassword(pg.Username, pg.Password)
	}

	if pg.SSLMode != "" {
		descriptor.RawQuery = url.Values{"sslmode": []string{pg.SSLMode}}.Encode()
	}

	return descriptor.String()
}

// CreatePostgresConnection creates a database connection, retrying maxRetry times.
func CreatePostgresConnection(descriptor string, maxRetry, waitTime int) *sqlx.DB {
	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect(driverName, descriptor)
		if err == nil {
			log.Info().Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	log.Fatal().Msg("Giving up connecting to database")

	return nil
}

// WithinTx runs fn inside a transaction. The transaction is rolled back when fn fails and committed otherwise.
func (c *Connection) WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := c.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (c *Connection) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}

	return c.DB.Close() //nolint:wrapcheck
}
