package app

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ffloras/comp2537-assignment2/internal/config"
	"github.com/ffloras/comp2537-assignment2/internal/logger"
	"github.com/ffloras/comp2537-assignment2/internal/redis"
	"github.com/ffloras/comp2537-assignment2/internal/store"
)

type Infra struct {
	Pool  *pgxpool.Pool
	Redis *redis.Client
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx, pool); err != nil {
		return nil, err
	}

	logger.Info("database ready", nil)

	redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready", nil)

	return &Infra{
		Pool:  pool,
		Redis: redisClient,
	}, nil
}
