package services

import (
	"context"
	"testing"
	"time"

	"github.com/muntadher/nizam-api/internal/models"
	"github.com/muntadher/nizam-api/internal/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConflictChecker(t *testing.T) (*ConflictChecker, *store.Store) {
	t.Helper()
	st := store.NewMemory()
	return NewConflictChecker(st.StudyItems, st.Notifications, zerolog.Nop()), st
}

func addStudyItem(t *testing.T, st *store.Store, title string, scheduledAt time.Time) {
	t.Helper()
	now := time.Now()
	err := st.StudyItems.Insert(context.Background(), models.StudyItem{
		ID:          store.NewID(),
		WorkspaceID: models.WorkspaceStudy,
		Title:       title,
		ItemType:    "lecture",
		ScheduledAt: &scheduledAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	require.NoError(t, err)
}

func dueTask(workspaceID string, due *time.Time) models.Task {
	now := time.Now()
	return models.Task{
		ID:          store.NewID(),
		WorkspaceID: workspaceID,
		Title:       "prepare investor deck",
		Status:      models.TaskStatusTodo,
		Priority:    models.PriorityNormal,
		RepeatType:  models.RepeatNone,
		DueAt:       due,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestConflictChecker_EmitsNotification(t *testing.T) {
	checker, st := setupConflictChecker(t)
	ctx := context.Background()

	scheduled := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	addStudyItem(t, st, "Algorithms Lecture", scheduled)

	due := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	checker.Check(ctx, dueTask(models.WorkspaceKhotawat, &due))

	list, err := st.Notifications.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "تحذير تضارب مع الدراسة", list[0].Title)
	require.NotNil(t, list[0].Body)
	assert.Contains(t, *list[0].Body, "prepare investor deck")
	assert.Contains(t, *list[0].Body, "Algorithms Lecture")
	assert.Contains(t, *list[0].Body, "راجع جدول الدراسة")
	require.NotNil(t, list[0].WorkspaceID)
	assert.Equal(t, models.WorkspaceKhotawat, *list[0].WorkspaceID)
}

func TestConflictChecker_JoinsMultipleMatches(t *testing.T) {
	checker, st := setupConflictChecker(t)
	ctx := context.Background()

	addStudyItem(t, st, "Algorithms Lecture", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	addStudyItem(t, st, "Databases Lab", time.Date(2024, 3, 1, 11, 30, 0, 0, time.UTC))

	due := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	checker.Check(ctx, dueTask(models.WorkspaceKhotawat, &due))

	list, err := st.Notifications.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Contains(t, *list[0].Body, "Algorithms Lecture، Databases Lab")
}

func TestConflictChecker_DifferentDayIgnored(t *testing.T) {
	checker, st := setupConflictChecker(t)
	ctx := context.Background()

	addStudyItem(t, st, "Algorithms Lecture", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))

	due := time.Date(2024, 3, 2, 10, 30, 0, 0, time.UTC)
	checker.Check(ctx, dueTask(models.WorkspaceKhotawat, &due))

	list, err := st.Notifications.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestConflictChecker_TwoHourProximity(t *testing.T) {
	checker, st := setupConflictChecker(t)
	ctx := context.Background()

	addStudyItem(t, st, "Algorithms Lecture", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))

	// 1h59m before the slot is still a clash; 2h after its end is not.
	due := time.Date(2024, 3, 1, 8, 1, 0, 0, time.UTC)
	checker.Check(ctx, dueTask(models.WorkspaceKhotawat, &due))

	far := time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC)
	checker.Check(ctx, dueTask(models.WorkspaceKhotawat, &far))

	list, err := st.Notifications.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestConflictChecker_SkipsOtherWorkspaces(t *testing.T) {
	checker, st := setupConflictChecker(t)
	ctx := context.Background()

	addStudyItem(t, st, "Algorithms Lecture", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))

	due := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	checker.Check(ctx, dueTask(models.WorkspacePersonal, &due))

	list, err := st.Notifications.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestConflictChecker_SkipsTasksWithoutDue(t *testing.T) {
	checker, st := setupConflictChecker(t)
	ctx := context.Background()

	addStudyItem(t, st, "Algorithms Lecture", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))

	checker.Check(ctx, dueTask(models.WorkspaceKhotawat, nil))

	list, err := st.Notifications.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestConflictChecker_RecheckNotifiesAgain(t *testing.T) {
	checker, st := setupConflictChecker(t)
	ctx := context.Background()

	addStudyItem(t, st, "Algorithms Lecture", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))

	due := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	task := dueTask(models.WorkspaceKhotawat, &due)
	checker.Check(ctx, task)
	checker.Check(ctx, task)

	list, err := st.Notifications.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestConflictChecker_TruncatesLongTitles(t *testing.T) {
	checker, st := setupConflictChecker(t)
	ctx := context.Background()

	addStudyItem(t, st, "Algorithms Lecture", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))

	due := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	task := dueTask(models.WorkspaceKhotawat, &due)
	long := make([]rune, 80)
	for i := range long {
		long[i] = 'x'
	}
	task.Title = string(long)
	checker.Check(ctx, task)

	list, err := st.Notifications.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NotContains(t, *list[0].Body, task.Title)
	assert.Contains(t, *list[0].Body, string(long[:50]))
}
