package models

import "time"

// Notification is created by the system or a user action and only ever
// mutated by marking it read.
type Notification struct {
	ID          string     `json:"id" db:"id"`
	WorkspaceID *string    `json:"workspaceId,omitempty" db:"workspace_id"`
	Title       string     `json:"title" db:"title"`
	Body        *string    `json:"body,omitempty" db:"body"`
	ReadAt      *time.Time `json:"readAt,omitempty" db:"read_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

func (n Notification) GetID() string { return n.ID }

func (n Notification) GetWorkspaceID() string {
	if n.WorkspaceID == nil {
		return ""
	}
	return *n.WorkspaceID
}

func (n Notification) Unread() bool { return n.ReadAt == nil }
