package dto

import (
	"time"

	"github.com/muntadher/nizam-api/internal/models"
)

type CreateTaskRequest struct {
	ID          string         `json:"id,omitempty"`
	Title       string         `json:"title"`
	Description *string        `json:"description,omitempty"`
	Status      string         `json:"status,omitempty"`
	Priority    string         `json:"priority,omitempty"`
	DueAt       *time.Time     `json:"dueAt,omitempty"`
	TimeSpent   *int           `json:"timeSpent,omitempty"`
	RepeatType  string         `json:"repeatType,omitempty"`
	NextDue     *time.Time     `json:"nextDue,omitempty"`
	Meta        map[string]any `json:"meta,omitempty"`
}

// UpdateTaskRequest carries only the fields present in the request body;
// nil means "leave as is". Completed drives the status/completedAt pair in
// both directions.
type UpdateTaskRequest struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Status      *string        `json:"status,omitempty"`
	Priority    *string        `json:"priority,omitempty"`
	DueAt       *time.Time     `json:"dueAt,omitempty"`
	Completed   *bool          `json:"completed,omitempty"`
	TimeSpent   *int           `json:"timeSpent,omitempty"`
	RepeatType  *string        `json:"repeatType,omitempty"`
	NextDue     *time.Time     `json:"nextDue,omitempty"`
	Meta        map[string]any `json:"meta,omitempty"`
}

type TaskFilter struct {
	Status   string
	Priority string
}

// TaskResponse is the wire shape of a task: the stored row plus the
// completed projection and the legacy text alias of title.
type TaskResponse struct {
	ID          string         `json:"id"`
	WorkspaceID string         `json:"workspaceId"`
	Title       string         `json:"title"`
	Text        string         `json:"text"`
	Description *string        `json:"description,omitempty"`
	Status      string         `json:"status"`
	Priority    string         `json:"priority"`
	Completed   bool           `json:"completed"`
	DueAt       *time.Time     `json:"dueAt,omitempty"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
	TimeSpent   int            `json:"timeSpent"`
	RepeatType  string         `json:"repeatType"`
	NextDue     *time.Time     `json:"nextDue,omitempty"`
	Meta        map[string]any `json:"meta,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func NewTaskResponse(t models.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		WorkspaceID: t.WorkspaceID,
		Title:       t.Title,
		Text:        t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		Completed:   t.Completed(),
		DueAt:       t.DueAt,
		CompletedAt: t.CompletedAt,
		TimeSpent:   t.TimeSpent,
		RepeatType:  t.RepeatType,
		NextDue:     t.NextDue,
		Meta:        t.Meta,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func NewTaskResponses(tasks []models.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewTaskResponse(t))
	}
	return out
}
