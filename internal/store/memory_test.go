package store

import (
	"context"
	"testing"
	"time"

	"github.com/muntadher/nizam-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTask(id, workspaceID, title string) models.Task {
	now := time.Now()
	return models.Task{
		ID:          id,
		WorkspaceID: workspaceID,
		Title:       title,
		Status:      models.TaskStatusTodo,
		Priority:    models.PriorityNormal,
		RepeatType:  models.RepeatNone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestMemoryCollection_RoundTrip(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()

	task := testTask("t1", "khotawat", "build api")
	require.NoError(t, st.Tasks.Insert(ctx, task))

	got, found, err := st.Tasks.Get(ctx, "t1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "build api", got.Title)

	_, found, err = st.Tasks.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCollection_InsertionOrderRetained(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()

	require.NoError(t, st.Tasks.Insert(ctx, testTask("a", "khotawat", "first")))
	require.NoError(t, st.Tasks.Insert(ctx, testTask("b", "khotawat", "second")))
	require.NoError(t, st.Tasks.Insert(ctx, testTask("c", "study", "third")))

	all, err := st.Tasks.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
	assert.Equal(t, "c", all[2].ID)

	scoped, err := st.Tasks.ListByWorkspace(ctx, "khotawat")
	require.NoError(t, err)
	require.Len(t, scoped, 2)
	assert.Equal(t, "a", scoped[0].ID)
	assert.Equal(t, "b", scoped[1].ID)
}

func TestMemoryCollection_Replace(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()

	task := testTask("t1", "khotawat", "before")
	require.NoError(t, st.Tasks.Insert(ctx, task))

	task.Title = "after"
	found, err := st.Tasks.Replace(ctx, task)
	require.NoError(t, err)
	assert.True(t, found)

	got, _, err := st.Tasks.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)

	missing := testTask("ghost", "khotawat", "nope")
	found, err = st.Tasks.Replace(ctx, missing)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCollection_DeleteIdempotent(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()

	require.NoError(t, st.Tasks.Insert(ctx, testTask("t1", "khotawat", "doomed")))

	found, err := st.Tasks.Delete(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = st.Tasks.Delete(ctx, "t1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryWorkspaces_Seeded(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()

	list, err := st.Workspaces.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 5)
	assert.Equal(t, models.WorkspaceKhotawat, list[0].ID)
	assert.Equal(t, models.WorkspacePersonal, list[4].ID)

	ws, found, err := st.Workspaces.Get(ctx, models.WorkspaceStudy)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "academic", ws.Type)

	_, found, err = st.Workspaces.Get(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryBudgets_Upsert(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()

	amount, err := st.Budgets.Get(ctx, "rahal")
	require.NoError(t, err)
	assert.Zero(t, amount)

	set, err := st.Budgets.Set(ctx, "rahal", 1500)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, set)

	set, err = st.Budgets.Set(ctx, "rahal", 900)
	require.NoError(t, err)
	assert.Equal(t, 900.0, set)

	amount, err = st.Budgets.Get(ctx, "rahal")
	require.NoError(t, err)
	assert.Equal(t, 900.0, amount)
}

func TestMemoryStores_Isolated(t *testing.T) {
	ctx := context.Background()
	first := NewMemory()
	second := NewMemory()

	require.NoError(t, first.Tasks.Insert(ctx, testTask("t1", "khotawat", "only in first")))

	all, err := second.Tasks.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
