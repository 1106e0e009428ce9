package dto

import "time"

type CreateEventRequest struct {
	ID            string         `json:"id,omitempty"`
	WorkspaceID   *string        `json:"workspaceId,omitempty"`
	Title         string         `json:"title"`
	StartAt       time.Time      `json:"startAt"`
	EndAt         time.Time      `json:"endAt"`
	EventType     string         `json:"eventType,omitempty"`
	RecurringRule *string        `json:"recurringRule,omitempty"`
	Meta          map[string]any `json:"meta,omitempty"`
}

type UpdateEventRequest struct {
	WorkspaceID   *string        `json:"workspaceId,omitempty"`
	Title         *string        `json:"title,omitempty"`
	StartAt       *time.Time     `json:"startAt,omitempty"`
	EndAt         *time.Time     `json:"endAt,omitempty"`
	EventType     *string        `json:"eventType,omitempty"`
	RecurringRule *string        `json:"recurringRule,omitempty"`
	Meta          map[string]any `json:"meta,omitempty"`
}

// EventFilter selects events overlapping the [From, To) window when both
// bounds are set, optionally narrowed to a workspace.
type EventFilter struct {
	WorkspaceID string
	From        *time.Time
	To          *time.Time
}
