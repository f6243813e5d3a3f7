package health

import (
	"context"

	"github.com/carevan/carevan/internal/pkg/database"
)

// NewPostgresChecker reports PostgreSQL reachability.
func NewPostgresChecker(client *database.PostgresClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.GetDB().PingContext(ctx)
	})
}

// NewRedisChecker reports Redis reachability.
func NewRedisChecker(client *database.RedisClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Ping(ctx)
	})
}
