package bootstrap

import (
	"context"
	"fmt"
	"time"

	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/strata-labs/strata-backend/config"
	"github.com/strata-labs/strata-backend/internal/projects/repository"
)

// OpenStore builds the project store selected by STORE_BACKEND. The
// returned handle is process-wide: opened once at startup and shared
// across requests, with no per-request teardown.
func OpenStore(ctx context.Context, cfg config.StoreConfig) (repository.Store, func(), error) {
	switch cfg.Backend {
	case "dynamodb":
		return openDynamo(ctx, cfg)
	case "redis":
		return openRedis(ctx, cfg)
	case "postgres":
		return openPostgres(ctx, cfg)
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

func openDynamo(ctx context.Context, cfg config.StoreConfig) (repository.Store, func(), error) {
	var opts []func(*awscfg.LoadOptions) error
	if cfg.AWSRegion != "" {
		opts = append(opts, awscfg.WithRegion(cfg.AWSRegion))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("load aws config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg)
	return repository.NewDynamoStore(client, cfg.TableName), func() {}, nil
}

func openRedis(ctx context.Context, cfg config.StoreConfig) (repository.Store, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}

	return repository.NewRedisStore(client), func() { _ = client.Close() }, nil
}

func openPostgres(ctx context.Context, cfg config.StoreConfig) (repository.Store, func(), error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(cctx, cfg.PostgresDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("db connect: %w", err)
	}

	pctx, pcancel := context.WithTimeout(ctx, 2*time.Second)
	defer pcancel()
	if err := pool.Ping(pctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("db ping: %w", err)
	}

	return repository.NewPostgresStore(pool), pool.Close, nil
}
