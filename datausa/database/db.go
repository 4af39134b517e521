package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/datausa/datausa-go/datausa"
	"github.com/datausa/datausa-go/datausa/logger"
)

const (
	defaultConnTimeout   = 5 * time.Second
	defaultMaxRetries    = 3
	defaultRetryInterval = time.Second
)

type DB struct {
	pool  *pgxpool.Pool
	bunDB *bun.DB
}

// New connects to Postgres, retrying the first ping a few times.
func New(ctx context.Context, cfg datausa.DBConfig) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(buildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	if cfg.PoolSize > 0 {
		poolConfig.MaxConns = int32(cfg.PoolSize)
	}
	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = int32(cfg.MaxIdleConns)
	}
	if cfg.MaxLifetime > 0 {
		poolConfig.MaxConnLifetime = time.Duration(cfg.MaxLifetime) * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	for i := 0; i < defaultMaxRetries; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, defaultConnTimeout)
		err = pool.Ping(pingCtx)
		cancel()
		if err == nil {
			break
		}
		slog.Warn("Database ping failed",
			slog.String("type", "db"),
			slog.Int("attempt", i+1),
			slog.Any("error", err))
		time.Sleep(defaultRetryInterval)
	}
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("database server unreachable after %d attempts: %w", defaultMaxRetries, err)
	}

	return &DB{pool: pool, bunDB: NewBunDB(cfg)}, nil
}

// NewBunDB opens a bun DB for cfg. No connection is made until the first
// query, so it is also usable offline to build and print queries.
func NewBunDB(cfg datausa.DBConfig) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(buildDSN(cfg, false)),
		pgdriver.WithDialTimeout(defaultConnTimeout),
	))
	db := bun.NewDB(sqldb, pgdialect.New())
	db.AddQueryHook(queryLogHook{})
	return db
}

func buildConnString(cfg datausa.DBConfig) string {
	return buildDSN(cfg, true)
}

// buildDSN renders cfg as a postgres URL. pgdriver rejects connect_timeout,
// so it is only added for pgx.
func buildDSN(cfg datausa.DBConfig, withTimeout bool) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:   "/" + cfg.Database,
	}
	q := url.Values{}
	q.Set("sslmode", sslMode)
	if withTimeout {
		q.Set("connect_timeout", strconv.Itoa(int(defaultConnTimeout.Seconds())))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func (db *DB) GetPool() *pgxpool.Pool {
	return db.pool
}

func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
	if db.bunDB != nil {
		db.bunDB.Close()
	}
}

func (db *DB) ExecWithLog(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	start := time.Now()
	result, err := db.pool.Exec(ctx, sql, args...)
	logger.LogQuery("exec", sql, time.Since(start), err)
	return result, err
}

func (db *DB) QueryWithLog(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	start := time.Now()
	rows, err := db.pool.Query(ctx, sql, args...)
	logger.LogQuery("query", sql, time.Since(start), err)
	return rows, err
}

// queryLogHook logs every statement run through bun.
type queryLogHook struct{}

func (queryLogHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (queryLogHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	err := event.Err
	if err == sql.ErrNoRows {
		err = nil
	}
	logger.LogQuery(event.Operation(), event.Query, time.Since(event.StartTime), err)
}
