package dto

type CreateNotificationRequest struct {
	ID          string  `json:"id,omitempty"`
	WorkspaceID *string `json:"workspaceId,omitempty"`
	Title       string  `json:"title"`
	Body        *string `json:"body,omitempty"`
}

type MarkReadResponse struct {
	OK bool `json:"ok"`
}
