package models

import "time"

// Task statuses (Kanban columns).
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusReview     = "review"
	TaskStatusDone       = "done"
)

// Task priorities.
const (
	PriorityUrgent    = "urgent"
	PriorityImportant = "important"
	PriorityNormal    = "normal"
)

// Repeat policies.
const (
	RepeatNone    = "none"
	RepeatDaily   = "daily"
	RepeatWeekly  = "weekly"
	RepeatMonthly = "monthly"
)

type Task struct {
	ID          string         `json:"id" db:"id"`
	WorkspaceID string         `json:"workspaceId" db:"workspace_id"`
	Title       string         `json:"title" db:"title"`
	Description *string        `json:"description,omitempty" db:"description"`
	Status      string         `json:"status" db:"status"`
	Priority    string         `json:"priority" db:"priority"`
	DueAt       *time.Time     `json:"dueAt,omitempty" db:"due_at"`
	CompletedAt *time.Time     `json:"completedAt,omitempty" db:"completed_at"`
	TimeSpent   int            `json:"timeSpent" db:"time_spent"`
	RepeatType  string         `json:"repeatType" db:"repeat_type"`
	NextDue     *time.Time     `json:"nextDue,omitempty" db:"next_due"`
	Meta        map[string]any `json:"meta,omitempty" db:"meta"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}

func (t Task) GetID() string          { return t.ID }
func (t Task) GetWorkspaceID() string { return t.WorkspaceID }

// Completed is a read-side projection, never stored: done status and a
// completion timestamp always agree with it in both directions.
func (t Task) Completed() bool {
	return t.Status == TaskStatusDone || t.CompletedAt != nil
}

// Overdue reports an incomplete task whose due time has passed.
func (t Task) Overdue(now time.Time) bool {
	return !t.Completed() && t.DueAt != nil && t.DueAt.Before(now)
}
