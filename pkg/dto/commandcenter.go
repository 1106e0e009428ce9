package dto

import "github.com/muntadher/nizam-api/internal/models"

// WorkspaceOverview is the per-workspace slice of the command center.
type WorkspaceOverview struct {
	ID           string         `json:"id"`
	Code         string         `json:"code"`
	NameAr       string         `json:"nameAr"`
	NameEn       string         `json:"nameEn"`
	Type         string         `json:"type"`
	TaskCount    int            `json:"taskCount"`
	TodoCount    int            `json:"todoCount"`
	DoneCount    int            `json:"doneCount"`
	OverdueCount int            `json:"overdueCount"`
	Tasks        []TaskResponse `json:"tasks"`
	UrgentTasks  []TaskResponse `json:"urgentTasks"`
}

type CommandCenterSummary struct {
	TotalTasks       int `json:"totalTasks"`
	TotalTodo        int `json:"totalTodo"`
	TotalDone        int `json:"totalDone"`
	OverdueCount     int `json:"overdueCount"`
	ProductivityRate int `json:"productivityRate"`
}

type CommandCenterResponse struct {
	Workspaces     []WorkspaceOverview    `json:"workspaces"`
	Summary        CommandCenterSummary   `json:"summary"`
	Notifications  []models.Notification  `json:"notifications"`
	UpcomingEvents []models.CalendarEvent `json:"upcomingEvents"`
}
