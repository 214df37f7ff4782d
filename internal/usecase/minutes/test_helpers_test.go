package minutes

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/meeting-minutes/internal/adapter/repository"
	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
	"github.com/johnquangdev/meeting-minutes/internal/domain/repositories"
)

// newTestDB opens a throwaway sqlite database with the same gorm settings the
// postgres connection uses, so error translation and timestamps behave alike.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "minutes-test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.MeetingType{},
		&entities.Meeting{},
		&entities.ActionItem{},
		&entities.ItemStatus{},
	))

	seedMeetingTypes(t, db)
	return db
}

func seedMeetingTypes(t *testing.T, db *gorm.DB) {
	t.Helper()

	types := []entities.MeetingType{
		{ID: 1, Name: "MANCO"},
		{ID: 2, Name: "Finance"},
		{ID: 3, Name: "PTL"},
	}
	require.NoError(t, db.Create(&types).Error)
}

// newTestService wires a service against real repositories on a test database
func newTestService(t *testing.T) (*MinutesService, repositories.Set, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	repos := repository.NewSet(db)
	return NewMinutesService(repos, repository.NewAtomic(db)), repos, db
}

func date(t *testing.T, value string) time.Time {
	t.Helper()

	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}
