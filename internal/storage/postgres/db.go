// ABOUTME: Postgres connection and lifecycle management for the movie store
// ABOUTME: Uses the pgx stdlib driver through database/sql
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/postermatch/postermatch/internal/config"
	"github.com/postermatch/postermatch/internal/util"
)

const connectBaseDelay = 500 * time.Millisecond

// DB wraps a Postgres database connection
type DB struct {
	conn *sql.DB
}

// DSN builds a postgres:// connection string from cfg. The password is
// URL-escaped so credentials with reserved characters survive.
func DSN(cfg *config.DBConfig) string {
	u := url.URL{
		Scheme: "postgres",
		Host:   cfg.Host + ":" + strconv.Itoa(cfg.Port),
		Path:   "/" + cfg.Database,
	}
	if cfg.Password != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	} else {
		u.User = url.User(cfg.User)
	}
	q := url.Values{}
	if cfg.SSLMode != "" {
		q.Set("sslmode", cfg.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Open connects to Postgres using cfg, retrying the initial ping with
// exponential backoff, and ensures the schema exists.
func Open(ctx context.Context, cfg *config.DBConfig, retries int) (*DB, error) {
	conn, err := sql.Open("pgx", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// The single catalog query never runs concurrently with anything else,
	// so a small pool is plenty.
	conn.SetMaxOpenConns(4)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	if err := util.Do(ctx, retries, connectBaseDelay, func() error {
		return conn.PingContext(ctx)
	}); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.initSchema(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return db, nil
}

// initSchema creates the movies table and indexes
func (db *DB) initSchema(ctx context.Context) error {
	_, err := db.conn.ExecContext(ctx, Schema)
	return err
}

// Close closes the database connection
func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// Conn returns the underlying sql.DB connection for advanced usage
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// ExecContext executes a query without returning rows
func (db *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return db.conn.ExecContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows
func (db *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return db.conn.QueryContext(ctx, query, args...)
}

// QueryRowContext executes a query that returns at most one row
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return db.conn.QueryRowContext(ctx, query, args...)
}
