package services

import (
	"context"
	"testing"
	"time"

	"github.com/muntadher/nizam-api/internal/store"
	"github.com/muntadher/nizam-api/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCalendarService(t *testing.T) *CalendarService {
	t.Helper()
	return NewCalendarService(store.NewMemory().Events)
}

func mustAddEvent(t *testing.T, svc *CalendarService, title string, start, end time.Time) {
	t.Helper()
	ws := "personal"
	_, err := svc.Add(context.Background(), dto.CreateEventRequest{
		WorkspaceID: &ws,
		Title:       title,
		StartAt:     start,
		EndAt:       end,
	})
	require.NoError(t, err)
}

func TestCalendarService_Add_Defaults(t *testing.T) {
	svc := setupCalendarService(t)
	start := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	event, err := svc.Add(context.Background(), dto.CreateEventRequest{
		Title:   "standup",
		StartAt: start,
		EndAt:   start.Add(30 * time.Minute),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "event", event.EventType)
}

func TestCalendarService_Add_RejectsInvertedRange(t *testing.T) {
	svc := setupCalendarService(t)
	start := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	_, err := svc.Add(context.Background(), dto.CreateEventRequest{
		Title:   "backwards",
		StartAt: start,
		EndAt:   start.Add(-time.Hour),
	})

	assert.ErrorIs(t, err, ErrInvalidEventRange)
}

func TestCalendarService_List_StartAscending(t *testing.T) {
	svc := setupCalendarService(t)
	ctx := context.Background()
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	mustAddEvent(t, svc, "afternoon", day.Add(14*time.Hour), day.Add(15*time.Hour))
	mustAddEvent(t, svc, "morning", day.Add(9*time.Hour), day.Add(10*time.Hour))
	mustAddEvent(t, svc, "noon", day.Add(12*time.Hour), day.Add(13*time.Hour))

	list, err := svc.List(ctx, dto.EventFilter{})

	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "morning", list[0].Title)
	assert.Equal(t, "noon", list[1].Title)
	assert.Equal(t, "afternoon", list[2].Title)
}

func TestCalendarService_List_Window(t *testing.T) {
	svc := setupCalendarService(t)
	ctx := context.Background()
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	mustAddEvent(t, svc, "before", day.Add(-2*time.Hour), day.Add(-time.Hour))
	mustAddEvent(t, svc, "straddles start", day.Add(-time.Hour), day.Add(time.Hour))
	mustAddEvent(t, svc, "inside", day.Add(9*time.Hour), day.Add(10*time.Hour))
	mustAddEvent(t, svc, "after", day.Add(30*time.Hour), day.Add(31*time.Hour))

	to := day.Add(24 * time.Hour)
	list, err := svc.List(ctx, dto.EventFilter{From: &day, To: &to})

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "straddles start", list[0].Title)
	assert.Equal(t, "inside", list[1].Title)
}

func TestCalendarService_List_WindowNeedsBothBounds(t *testing.T) {
	svc := setupCalendarService(t)
	ctx := context.Background()
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	mustAddEvent(t, svc, "old", day.Add(-48*time.Hour), day.Add(-47*time.Hour))

	list, err := svc.List(ctx, dto.EventFilter{From: &day})

	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCalendarService_Update(t *testing.T) {
	svc := setupCalendarService(t)
	ctx := context.Background()
	start := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	event, err := svc.Add(ctx, dto.CreateEventRequest{
		Title:   "planning",
		StartAt: start,
		EndAt:   start.Add(time.Hour),
	})
	require.NoError(t, err)

	title := "sprint planning"
	updated, err := svc.Update(ctx, event.ID, dto.UpdateEventRequest{Title: &title})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "sprint planning", updated.Title)
	assert.Equal(t, start, updated.StartAt)

	badEnd := start.Add(-time.Hour)
	_, err = svc.Update(ctx, event.ID, dto.UpdateEventRequest{EndAt: &badEnd})
	assert.ErrorIs(t, err, ErrInvalidEventRange)

	missing, err := svc.Update(ctx, "missing", dto.UpdateEventRequest{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCalendarService_Delete(t *testing.T) {
	svc := setupCalendarService(t)
	ctx := context.Background()
	start := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	event, err := svc.Add(ctx, dto.CreateEventRequest{
		Title:   "cancelled",
		StartAt: start,
		EndAt:   start.Add(time.Hour),
	})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, event.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(ctx, event.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
