package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"shopmart-backend/internal/config"
)

// Connect opens a pgx connection pool sized from cfg and verifies
// connectivity with a ping.
func Connect(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.DBConnString)
	if err != nil {
		return nil, err
	}

	if cfg.DBMaxConns > 0 {
		pc.MaxConns = int32(cfg.DBMaxConns)
	}
	if cfg.DBMinConns > 0 {
		pc.MinConns = int32(cfg.DBMinConns)
	}
	pc.MaxConnIdleTime = 5 * time.Minute
	pc.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
