package repository

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
	"github.com/johnquangdev/meeting-minutes/internal/domain/repositories"
	"github.com/johnquangdev/meeting-minutes/internal/infrastructure/cache"
)

const meetingTypesCacheKey = "meeting-types:all"

// cachedMeetingTypeRepository caches the meeting type list in front of the
// database. Meeting types are static reference data, so a short TTL is safe;
// any cache failure falls through to the inner repository.
type cachedMeetingTypeRepository struct {
	inner  repositories.MeetingTypeRepository
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedMeetingTypeRepository wraps a meeting type repository with a cache
func NewCachedMeetingTypeRepository(inner repositories.MeetingTypeRepository, c cache.Cache, ttl time.Duration, logger *zap.Logger) repositories.MeetingTypeRepository {
	return &cachedMeetingTypeRepository{
		inner:  inner,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// List retrieves all meeting types, serving from cache when possible
func (r *cachedMeetingTypeRepository) List(ctx context.Context) ([]*entities.MeetingType, error) {
	if raw, ok, err := r.cache.Get(ctx, meetingTypesCacheKey); err != nil {
		r.logger.Warn("meeting type cache read failed",
			zap.String("key", meetingTypesCacheKey),
			zap.Error(err),
		)
	} else if ok {
		var types []*entities.MeetingType
		if err := json.Unmarshal([]byte(raw), &types); err == nil {
			return types, nil
		}
		// Corrupt entry, drop it and reload from the database
		_ = r.cache.Delete(ctx, meetingTypesCacheKey)
	}

	types, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(types); err == nil {
		if err := r.cache.Set(ctx, meetingTypesCacheKey, string(raw), r.ttl); err != nil {
			r.logger.Warn("meeting type cache write failed",
				zap.String("key", meetingTypesCacheKey),
				zap.Error(err),
			)
		}
	}

	return types, nil
}

// FindByID goes straight to the inner repository; single-row lookups are rare
// enough that caching them is not worth an invalidation story.
func (r *cachedMeetingTypeRepository) FindByID(ctx context.Context, id int) (*entities.MeetingType, error) {
	return r.inner.FindByID(ctx, id)
}
