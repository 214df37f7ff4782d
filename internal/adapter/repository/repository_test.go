package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
	"github.com/johnquangdev/meeting-minutes/internal/domain/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "repository_test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.MeetingType{},
		&entities.Meeting{},
		&entities.ActionItem{},
		&entities.ItemStatus{},
	))

	require.NoError(t, db.Create([]*entities.MeetingType{
		{ID: 1, Name: "MANCO"},
		{ID: 2, Name: "Finance"},
		{ID: 3, Name: "PTL"},
	}).Error)

	return db
}

func seedMeeting(t *testing.T, set repositories.Set, typeID int, code, day string) *entities.Meeting {
	t.Helper()

	parsed, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)

	m := &entities.Meeting{MeetingTypeID: typeID, MeetingCode: code, MeetingDate: parsed}
	require.NoError(t, set.Meetings.Create(context.Background(), m))
	return m
}

func seedItem(t *testing.T, set repositories.Set, title string) *entities.ActionItem {
	t.Helper()

	item := &entities.ActionItem{Title: title, ResponsiblePerson: "Alice"}
	require.NoError(t, set.ActionItems.Create(context.Background(), item))
	return item
}

func seedStatus(t *testing.T, set repositories.Set, meetingID, itemID uuid.UUID, status string) *entities.ItemStatus {
	t.Helper()

	row := &entities.ItemStatus{
		MeetingID:    meetingID,
		ActionItemID: itemID,
		Status:       status,
		Comment:      entities.CommentAddedInMeeting,
		UpdatedOn:    time.Now().UTC(),
	}
	require.NoError(t, set.ItemStatuses.Create(context.Background(), row))
	return row
}

func TestMeetingRepository_CountByType(t *testing.T) {
	set := NewSet(newTestDB(t))
	ctx := context.Background()

	seedMeeting(t, set, 2, "F01", "2024-01-10")
	seedMeeting(t, set, 2, "F02", "2024-02-10")
	seedMeeting(t, set, 1, "M01", "2024-01-05")

	count, err := set.Meetings.CountByType(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = set.Meetings.CountByType(ctx, 3)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMeetingRepository_DuplicateCodeIsTranslated(t *testing.T) {
	set := NewSet(newTestDB(t))

	seedMeeting(t, set, 2, "F01", "2024-01-10")

	err := set.Meetings.Create(context.Background(), &entities.Meeting{
		MeetingTypeID: 2,
		MeetingCode:   "F01",
		MeetingDate:   time.Now().UTC(),
	})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestMeetingRepository_SameCodeDifferentTypeIsFine(t *testing.T) {
	set := NewSet(newTestDB(t))

	seedMeeting(t, set, 2, "F01", "2024-01-10")

	err := set.Meetings.Create(context.Background(), &entities.Meeting{
		MeetingTypeID: 1,
		MeetingCode:   "F01",
		MeetingDate:   time.Now().UTC(),
	})
	assert.NoError(t, err)
}

func TestItemStatusRepository_OneRowPerMeetingAndItem(t *testing.T) {
	set := NewSet(newTestDB(t))

	m := seedMeeting(t, set, 2, "F01", "2024-01-10")
	item := seedItem(t, set, "Budget review")
	seedStatus(t, set, m.ID, item.ID, entities.StatusOpen)

	err := set.ItemStatuses.Create(context.Background(), &entities.ItemStatus{
		MeetingID:    m.ID,
		ActionItemID: item.ID,
		Status:       "Closed",
		UpdatedOn:    time.Now().UTC(),
	})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestItemStatusRepository_ListByMeetingTypeOrdering(t *testing.T) {
	set := NewSet(newTestDB(t))
	ctx := context.Background()

	older := seedMeeting(t, set, 2, "F01", "2024-01-10")
	newer := seedMeeting(t, set, 2, "F02", "2024-02-10")
	other := seedMeeting(t, set, 1, "M01", "2024-03-01")

	item := seedItem(t, set, "Budget review")
	seedStatus(t, set, older.ID, item.ID, entities.StatusOpen)
	seedStatus(t, set, newer.ID, item.ID, "In Progress")
	seedStatus(t, set, other.ID, seedItem(t, set, "Hiring plan").ID, entities.StatusOpen)

	statuses, err := set.ItemStatuses.ListByMeetingType(ctx, 2)
	require.NoError(t, err)
	require.Len(t, statuses, 2)

	// Newest meeting first, with meeting and item preloaded
	assert.Equal(t, newer.ID, statuses[0].MeetingID)
	assert.Equal(t, "In Progress", statuses[0].Status)
	require.NotNil(t, statuses[0].Meeting)
	assert.Equal(t, "F02", statuses[0].Meeting.MeetingCode)
	require.NotNil(t, statuses[0].ActionItem)
	assert.Equal(t, "Budget review", statuses[0].ActionItem.Title)
	assert.Equal(t, older.ID, statuses[1].MeetingID)
}

func TestItemStatusRepository_UpdateByActionItem(t *testing.T) {
	set := NewSet(newTestDB(t))
	ctx := context.Background()

	m1 := seedMeeting(t, set, 2, "F01", "2024-01-10")
	m2 := seedMeeting(t, set, 2, "F02", "2024-02-10")
	item := seedItem(t, set, "Budget review")
	untouched := seedItem(t, set, "Forecast")
	seedStatus(t, set, m1.ID, item.ID, entities.StatusOpen)
	seedStatus(t, set, m2.ID, item.ID, entities.StatusOpen)
	seedStatus(t, set, m1.ID, untouched.ID, entities.StatusOpen)

	count, err := set.ItemStatuses.UpdateByActionItem(ctx, item.ID, repositories.StatusPatch{
		Status:  "Closed",
		Comment: "Done",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	statuses, err := set.ItemStatuses.ListByActionItem(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	for _, status := range statuses {
		assert.Equal(t, "Closed", status.Status)
		assert.Equal(t, "Done", status.Comment)
	}

	others, err := set.ItemStatuses.ListByActionItem(ctx, untouched.ID)
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, entities.StatusOpen, others[0].Status)
}

func TestItemStatusRepository_UpdateByActionItem_NoRows(t *testing.T) {
	set := NewSet(newTestDB(t))

	count, err := set.ItemStatuses.UpdateByActionItem(context.Background(), uuid.New(), repositories.StatusPatch{Status: "Closed"})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAtomic_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	atomic := NewAtomic(db)
	ctx := context.Background()

	wantErr := assert.AnError
	err := atomic.Transaction(ctx, func(repos repositories.Set) error {
		m := &entities.Meeting{MeetingTypeID: 2, MeetingCode: "F01", MeetingDate: time.Now().UTC()}
		if err := repos.Meetings.Create(ctx, m); err != nil {
			return err
		}
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	count, err := NewSet(db).Meetings.CountByType(ctx, 2)
	require.NoError(t, err)
	assert.Zero(t, count)
}
