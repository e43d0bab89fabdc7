// Package catalog resolves repair code prices from the regional price lists kept in Postgres.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"claimscope/internal/infrastructure/logger"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	connectAttempts = 8
	connectTimeout  = 5 * time.Second
)

var ErrMissingDSN = errors.New("missing CATALOG_DATABASE_URL")

// Connect opens a pool and waits for Postgres to answer a ping, retrying with exponential backoff.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, ErrMissingDSN
	}
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse catalog dsn: %w", err)
	}

	var pool *pgxpool.Pool
	attempt := 0
	err = backoff.Retry(
		func() error {
			attempt++
			attemptCtx, cancel := context.WithTimeout(ctx, connectTimeout)
			defer cancel()

			p, err := pgxpool.NewWithConfig(attemptCtx, cfg)
			if err != nil {
				logger.Warnf(ctx, "[catalog][infra] connect failed attempt=%d err=%v", attempt, err)
				return err
			}
			if err := p.Ping(attemptCtx); err != nil {
				p.Close()
				logger.Warnf(ctx, "[catalog][infra] ping failed attempt=%d err=%v", attempt, err)
				return err
			}
			pool = p
			return nil
		},
		backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), connectAttempts-1), ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("connect catalog after %d attempts: %w", attempt, err)
	}
	logger.Infof(ctx, "[catalog][infra] connected attempt=%d", attempt)
	return pool, nil
}
