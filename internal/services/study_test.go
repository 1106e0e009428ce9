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

func setupStudyService(t *testing.T) *StudyService {
	t.Helper()
	st := store.NewMemory()
	return NewStudyService(st.StudyTerms, st.StudyItems, st.Courses)
}

func TestStudyService_Terms(t *testing.T) {
	svc := setupStudyService(t)
	ctx := context.Background()

	fall := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	spring := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.AddTerm(ctx, "study", dto.CreateStudyTermRequest{
		Name: "Fall 2024", StartDate: fall, EndDate: fall.AddDate(0, 4, 0),
	})
	require.NoError(t, err)
	term, err := svc.AddTerm(ctx, "study", dto.CreateStudyTermRequest{
		Name: "Spring 2025", StartDate: spring, EndDate: spring.AddDate(0, 4, 0),
	})
	require.NoError(t, err)

	list, err := svc.ListTerms(ctx, "study")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Spring 2025", list[0].Name)

	deleted, err := svc.DeleteTerm(ctx, term.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteTerm(ctx, term.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestStudyService_Items_TermFilterAndOrder(t *testing.T) {
	svc := setupStudyService(t)
	ctx := context.Background()

	termID := "term-1"
	late := time.Date(2024, 9, 10, 10, 0, 0, 0, time.UTC)
	early := time.Date(2024, 9, 3, 10, 0, 0, 0, time.UTC)

	_, err := svc.AddItem(ctx, "study", dto.CreateStudyItemRequest{
		TermID: &termID, Title: "late lecture", ScheduledAt: &late,
	})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "study", dto.CreateStudyItemRequest{
		TermID: &termID, Title: "early lecture", ScheduledAt: &early,
	})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "study", dto.CreateStudyItemRequest{Title: "unassigned"})
	require.NoError(t, err)

	scoped, err := svc.ListItems(ctx, "study", termID)
	require.NoError(t, err)
	require.Len(t, scoped, 2)
	assert.Equal(t, "early lecture", scoped[0].Title)
	assert.Equal(t, "late lecture", scoped[1].Title)

	all, err := svc.ListItems(ctx, "study", "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Unscheduled items sort first.
	assert.Equal(t, "unassigned", all[0].Title)
}

func TestStudyService_AddItem_DefaultType(t *testing.T) {
	svc := setupStudyService(t)

	item, err := svc.AddItem(context.Background(), "study", dto.CreateStudyItemRequest{Title: "calculus"})

	require.NoError(t, err)
	assert.Equal(t, "lecture", item.ItemType)
}

func TestStudyService_UpdateItem(t *testing.T) {
	svc := setupStudyService(t)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, "study", dto.CreateStudyItemRequest{Title: "midterm"})
	require.NoError(t, err)

	scheduled := time.Date(2024, 10, 20, 9, 0, 0, 0, time.UTC)
	itemType := "exam"
	updated, err := svc.UpdateItem(ctx, "study", item.ID, dto.UpdateStudyItemRequest{
		ItemType:    &itemType,
		ScheduledAt: &scheduled,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "exam", updated.ItemType)
	require.NotNil(t, updated.ScheduledAt)
	assert.Equal(t, scheduled, *updated.ScheduledAt)
}

func TestStudyService_Courses(t *testing.T) {
	svc := setupStudyService(t)
	ctx := context.Background()

	course, err := svc.AddCourse(ctx, "study", dto.CreateCourseRequest{Name: "Go basics"})
	require.NoError(t, err)
	assert.Zero(t, course.ProgressPct)

	progress := 60.0
	updated, err := svc.UpdateCourse(ctx, "study", course.ID, dto.UpdateCourseRequest{ProgressPct: &progress})
	require.NoError(t, err)
	assert.Equal(t, 60.0, updated.ProgressPct)

	list, err := svc.ListCourses(ctx, "study")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	deleted, err := svc.DeleteCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}
