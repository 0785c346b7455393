package waitlist

import (
	"context"
	"time"

	"github.com/akeren/saascribe/internal/models"
	"github.com/akeren/saascribe/pkg/constants"
	apperrors "github.com/akeren/saascribe/pkg/errors"
	goredis "github.com/go-redis/redis/v8"
)

// RedisHashClient is the one command the redis store needs; *redis.Client satisfies it.
type RedisHashClient interface {
	HSetNX(ctx context.Context, key, field string, value interface{}) *goredis.BoolCmd
}

// redisWaitlistRepository keeps the users collection as a hash of email to
// creation time. HSETNX makes the uniqueness check and the write one command.
type redisWaitlistRepository struct {
	client RedisHashClient
	now    func() time.Time
}

func NewRedisWaitlistRepository(client RedisHashClient) WaitlistRepository {
	return &redisWaitlistRepository{client: client, now: time.Now}
}

func (r *redisWaitlistRepository) InsertEntry(ctx context.Context, entry *models.WaitlistEntry) error {
	if entry == nil {
		return apperrors.NewInvalidRequestError("entry cannot be nil", nil)
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now().UTC()
	}

	added, err := r.client.HSetNX(ctx, constants.WaitlistCollection, entry.Email, createdAt.Format(constants.RFC3339DateTimeFormat)).Result()
	if err != nil {
		return apperrors.NewServiceUnavailableError("waitlist store is unavailable", err)
	}
	if !added {
		return apperrors.NewConflictError(duplicateEmailMessage, nil)
	}

	entry.CreatedAt = createdAt
	return nil
}
