package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
	"github.com/johnquangdev/meeting-minutes/internal/infrastructure/cache"
)

func TestCachedMeetingTypeRepository_ServesFromCache(t *testing.T) {
	db := newTestDB(t)
	store := cache.NewMemoryStore()
	repo := NewCachedMeetingTypeRepository(NewMeetingTypeRepository(db), store, time.Minute, zap.NewNop())
	ctx := context.Background()

	types, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, types, 3)

	// The first call populated the cache; the database may now change
	// underneath without the cached list noticing until the TTL lapses.
	require.NoError(t, db.Create(&entities.MeetingType{ID: 4, Name: "Board"}).Error)

	types, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 3)
}

func TestCachedMeetingTypeRepository_CorruptEntryFallsThrough(t *testing.T) {
	db := newTestDB(t)
	store := cache.NewMemoryStore()
	repo := NewCachedMeetingTypeRepository(NewMeetingTypeRepository(db), store, time.Minute, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "meeting-types:all", "{not json", time.Minute))

	types, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 3)
}

func TestCachedMeetingTypeRepository_FindByIDBypassesCache(t *testing.T) {
	db := newTestDB(t)
	repo := NewCachedMeetingTypeRepository(NewMeetingTypeRepository(db), cache.NewMemoryStore(), time.Minute, zap.NewNop())

	mt, err := repo.FindByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Finance", mt.Name)
}
