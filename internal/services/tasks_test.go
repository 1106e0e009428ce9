package services

import (
	"context"
	"testing"
	"time"

	"github.com/muntadher/nizam-api/internal/models"
	"github.com/muntadher/nizam-api/internal/store"
	"github.com/muntadher/nizam-api/pkg/dto"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTaskService(t *testing.T) (*TaskService, *store.Store) {
	t.Helper()
	st := store.NewMemory()
	checker := NewConflictChecker(st.StudyItems, st.Notifications, zerolog.Nop())
	return NewTaskService(st.Tasks, checker), st
}

func TestTaskService_Add_Defaults(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	task, err := svc.Add(ctx, "khotawat", dto.CreateTaskRequest{Title: "write proposal"})

	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "khotawat", task.WorkspaceID)
	assert.Equal(t, models.TaskStatusTodo, task.Status)
	assert.Equal(t, models.PriorityNormal, task.Priority)
	assert.Equal(t, models.RepeatNone, task.RepeatType)
	assert.Nil(t, task.CompletedAt)
	assert.False(t, task.Completed())
}

func TestTaskService_Add_DoneStampsCompletion(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	task, err := svc.Add(ctx, "khotawat", dto.CreateTaskRequest{
		Title:  "already finished",
		Status: models.TaskStatusDone,
	})

	require.NoError(t, err)
	require.NotNil(t, task.CompletedAt)
	assert.True(t, task.Completed())
}

func TestTaskService_Get_WorkspaceScoped(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.Add(ctx, "khotawat", dto.CreateTaskRequest{Title: "scoped"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "khotawat", created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)

	// Same id through another workspace reads as missing.
	got, err = svc.Get(ctx, "rahal", created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTaskService_List_FiltersAndOrder(t *testing.T) {
	svc, st := setupTaskService(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	urgent := models.PriorityUrgent
	for i, title := range []string{"oldest", "middle", "newest"} {
		task := models.Task{
			ID:          store.NewID(),
			WorkspaceID: "khotawat",
			Title:       title,
			Status:      models.TaskStatusTodo,
			Priority:    models.PriorityNormal,
			RepeatType:  models.RepeatNone,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
			UpdatedAt:   base,
		}
		if title == "middle" {
			task.Priority = urgent
			task.Status = models.TaskStatusDone
		}
		require.NoError(t, st.Tasks.Insert(ctx, task))
	}

	all, err := svc.List(ctx, "khotawat", dto.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "newest", all[0].Title)
	assert.Equal(t, "oldest", all[2].Title)

	done, err := svc.List(ctx, "khotawat", dto.TaskFilter{Status: models.TaskStatusDone})
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, "middle", done[0].Title)

	urgentOnly, err := svc.List(ctx, "khotawat", dto.TaskFilter{Priority: urgent})
	require.NoError(t, err)
	assert.Len(t, urgentOnly, 1)

	other, err := svc.List(ctx, "rahal", dto.TaskFilter{})
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestTaskService_Update_SparseFields(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.Add(ctx, "khotawat", dto.CreateTaskRequest{Title: "before"})
	require.NoError(t, err)

	title := "after"
	urgent := models.PriorityUrgent
	updated, err := svc.Update(ctx, "khotawat", created.ID, dto.UpdateTaskRequest{
		Title:    &title,
		Priority: &urgent,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "after", updated.Title)
	assert.Equal(t, models.PriorityUrgent, updated.Priority)
	assert.Equal(t, models.TaskStatusTodo, updated.Status)
}

func TestTaskService_Update_CompletedFlag(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.Add(ctx, "khotawat", dto.CreateTaskRequest{Title: "toggle me"})
	require.NoError(t, err)

	completed := true
	updated, err := svc.Update(ctx, "khotawat", created.ID, dto.UpdateTaskRequest{Completed: &completed})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.TaskStatusDone, updated.Status)
	require.NotNil(t, updated.CompletedAt)

	completed = false
	updated, err = svc.Update(ctx, "khotawat", created.ID, dto.UpdateTaskRequest{Completed: &completed})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.TaskStatusTodo, updated.Status)
	assert.Nil(t, updated.CompletedAt)
}

func TestTaskService_Update_StatusDrivesCompletion(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.Add(ctx, "khotawat", dto.CreateTaskRequest{Title: "kanban move"})
	require.NoError(t, err)

	done := models.TaskStatusDone
	updated, err := svc.Update(ctx, "khotawat", created.ID, dto.UpdateTaskRequest{Status: &done})
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedAt)

	review := models.TaskStatusReview
	updated, err = svc.Update(ctx, "khotawat", created.ID, dto.UpdateTaskRequest{Status: &review})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusReview, updated.Status)
	assert.Nil(t, updated.CompletedAt)
}

func TestTaskService_Update_WrongWorkspace(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.Add(ctx, "khotawat", dto.CreateTaskRequest{Title: "protected"})
	require.NoError(t, err)

	title := "hijacked"
	updated, err := svc.Update(ctx, "rahal", created.ID, dto.UpdateTaskRequest{Title: &title})

	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestTaskService_Delete(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.Add(ctx, "khotawat", dto.CreateTaskRequest{Title: "doomed"})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, "rahal", created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = svc.Delete(ctx, "khotawat", created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(ctx, "khotawat", created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestTaskService_Add_TriggersConflictCheck(t *testing.T) {
	svc, st := setupTaskService(t)
	ctx := context.Background()

	scheduled := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	addStudyItem(t, st, "Algorithms Lecture", scheduled)

	due := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	_, err := svc.Add(ctx, models.WorkspaceKhotawat, dto.CreateTaskRequest{
		Title: "ship release",
		DueAt: &due,
	})
	require.NoError(t, err)

	list, err := st.Notifications.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
