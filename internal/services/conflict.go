package services

import (
	"context"
	"strings"
	"time"

	"github.com/muntadher/nizam-api/internal/models"
	"github.com/muntadher/nizam-api/internal/store"
	"github.com/rs/zerolog"
)

const conflictNotificationTitle = "تحذير تضارب مع الدراسة"

// ConflictChecker scans the study workspace for schedule clashes with a
// task due time and emits a notification per check that finds any. It keeps
// no memory of earlier checks, so re-saving a conflicting task notifies
// again.
type ConflictChecker struct {
	studyItems    store.Collection[models.StudyItem]
	notifications store.Collection[models.Notification]
	log           zerolog.Logger
}

func NewConflictChecker(studyItems store.Collection[models.StudyItem], notifications store.Collection[models.Notification], log zerolog.Logger) *ConflictChecker {
	return &ConflictChecker{studyItems: studyItems, notifications: notifications, log: log}
}

// Check runs after a task create or update. It only applies to tasks of the
// khotawat workspace with a due time; everything else is a no-op. Failures
// are logged and swallowed so they never fail the task mutation.
func (c *ConflictChecker) Check(ctx context.Context, task models.Task) {
	if task.WorkspaceID != models.WorkspaceKhotawat || task.DueAt == nil {
		return
	}
	due := *task.DueAt

	items, err := c.studyItems.ListByWorkspace(ctx, models.WorkspaceStudy)
	if err != nil {
		c.log.Warn().Err(err).Str("task_id", task.ID).Msg("conflict check: loading study items failed")
		return
	}

	var matched []string
	for _, item := range items {
		if item.ScheduledAt == nil {
			continue
		}
		if conflicts(due, *item.ScheduledAt) {
			matched = append(matched, item.Title)
		}
	}
	if len(matched) == 0 {
		return
	}

	wid := models.WorkspaceKhotawat
	now := time.Now()
	body := "المهمة \"" + truncate(task.Title, 50) + "\" تتزامن مع: " + strings.Join(matched, "، ") + ". راجع جدول الدراسة."
	n := models.Notification{
		ID:          store.NewID(),
		WorkspaceID: &wid,
		Title:       conflictNotificationTitle,
		Body:        &body,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := c.notifications.Insert(ctx, n); err != nil {
		c.log.Warn().Err(err).Str("task_id", task.ID).Msg("conflict check: writing notification failed")
		return
	}
	c.log.Info().Str("task_id", task.ID).Int("matches", len(matched)).Msg("study conflict notification emitted")
}

// conflicts reports a clash between a task due time and a study slot: same
// calendar day, and either the due time falls inside the hour starting at
// the slot or the two are less than two hours apart.
func conflicts(due, scheduled time.Time) bool {
	dy, dm, dd := due.UTC().Date()
	sy, sm, sd := scheduled.UTC().Date()
	if dy != sy || dm != sm || dd != sd {
		return false
	}
	if !due.Before(scheduled) && !due.After(scheduled.Add(time.Hour)) {
		return true
	}
	diff := due.Sub(scheduled)
	if diff < 0 {
		diff = -diff
	}
	return diff < 2*time.Hour
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
