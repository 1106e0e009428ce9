package models

import "time"

// CalendarEvent may belong to a workspace or be global (nil WorkspaceID).
type CalendarEvent struct {
	ID            string         `json:"id" db:"id"`
	WorkspaceID   *string        `json:"workspaceId,omitempty" db:"workspace_id"`
	Title         string         `json:"title" db:"title"`
	StartAt       time.Time      `json:"startAt" db:"start_at"`
	EndAt         time.Time      `json:"endAt" db:"end_at"`
	EventType     string         `json:"eventType" db:"event_type"`
	RecurringRule *string        `json:"recurringRule,omitempty" db:"recurring_rule"`
	Meta          map[string]any `json:"meta,omitempty" db:"meta"`
	CreatedAt     time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time      `json:"updatedAt" db:"updated_at"`
}

func (e CalendarEvent) GetID() string { return e.ID }

func (e CalendarEvent) GetWorkspaceID() string {
	if e.WorkspaceID == nil {
		return ""
	}
	return *e.WorkspaceID
}
