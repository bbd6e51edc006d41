package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Options struct {
	DatabaseURL     string
	MaxConns        int32
	MaxConnIdleTime time.Duration
	ConnectTimeout  time.Duration
	// AcquireTimeout bounds the wait for a free pooled connection.
	AcquireTimeout time.Duration
}

type Store struct {
	Pool           *pgxpool.Pool
	acquireTimeout time.Duration
}

func New(ctx context.Context, opts Options) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(opts.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	if opts.MaxConnIdleTime > 0 {
		cfg.MaxConnIdleTime = opts.MaxConnIdleTime
	}
	if opts.ConnectTimeout > 0 {
		cfg.ConnConfig.ConnectTimeout = opts.ConnectTimeout
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Store{Pool: pool, acquireTimeout: opts.AcquireTimeout}, nil
}

func (s *Store) Close() {
	s.Pool.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.Pool.Ping(ctx)
}

// withConn scopes one pooled connection to fn and releases it on every path.
func (s *Store) withConn(ctx context.Context, op string, fn func(ctx context.Context, conn *pgxpool.Conn) error) (err error) {
	start := time.Now()
	defer func() { observeQuery(op, start, err) }()

	acquireCtx := ctx
	if s.acquireTimeout > 0 {
		var cancel context.CancelFunc
		acquireCtx, cancel = context.WithTimeout(ctx, s.acquireTimeout)
		defer cancel()
	}
	conn, err := s.Pool.Acquire(acquireCtx)
	if err != nil {
		return &DatabaseError{Op: op, Err: fmt.Errorf("acquire connection: %w", err)}
	}
	defer conn.Release()

	if err = fn(ctx, conn); err != nil {
		return &DatabaseError{Op: op, Err: err}
	}
	return nil
}

func (s *Store) exec(ctx context.Context, op, sql string, args ...any) (int64, error) {
	var affected int64
	err := s.withConn(ctx, op, func(ctx context.Context, conn *pgxpool.Conn) error {
		tag, err := conn.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		affected = tag.RowsAffected()
		return nil
	})
	return affected, err
}

func (s *Store) scalar(ctx context.Context, op, sql string, dest any, args ...any) error {
	return s.withConn(ctx, op, func(ctx context.Context, conn *pgxpool.Conn) error {
		return conn.QueryRow(ctx, sql, args...).Scan(dest)
	})
}

func queryRows[T any](ctx context.Context, s *Store, op, sql string, scan func(pgx.Row) (T, error), args ...any) ([]T, error) {
	out := []T{}
	err := s.withConn(ctx, op, func(ctx context.Context, conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			v, err := scan(rows)
			if err != nil {
				return err
			}
			out = append(out, v)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func queryRow[T any](ctx context.Context, s *Store, op, sql string, scan func(pgx.Row) (T, error), args ...any) (T, error) {
	var out T
	err := s.withConn(ctx, op, func(ctx context.Context, conn *pgxpool.Conn) error {
		v, err := scan(conn.QueryRow(ctx, sql, args...))
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}
