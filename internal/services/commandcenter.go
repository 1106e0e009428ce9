package services

import (
	"context"
	"math"
	"time"

	"github.com/muntadher/nizam-api/internal/models"
	"github.com/muntadher/nizam-api/pkg/dto"
)

// CommandCenterService builds the cross-workspace dashboard. Nothing is
// cached or stored, every call recomputes from the live records.
type CommandCenterService struct {
	workspaces    *WorkspaceService
	tasks         *TaskService
	notifications *NotificationService
	calendar      *CalendarService
}

func NewCommandCenterService(workspaces *WorkspaceService, tasks *TaskService, notifications *NotificationService, calendar *CalendarService) *CommandCenterService {
	return &CommandCenterService{
		workspaces:    workspaces,
		tasks:         tasks,
		notifications: notifications,
		calendar:      calendar,
	}
}

func (s *CommandCenterService) Overview(ctx context.Context) (*dto.CommandCenterResponse, error) {
	workspaces, err := s.workspaces.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekEnd := todayStart.AddDate(0, 0, 7)

	var summary dto.CommandCenterSummary
	overviews := make([]dto.WorkspaceOverview, 0, len(workspaces))
	for _, ws := range workspaces {
		tasks, err := s.tasks.List(ctx, ws.ID, dto.TaskFilter{})
		if err != nil {
			return nil, err
		}

		ov := dto.WorkspaceOverview{
			ID:          ws.ID,
			Code:        ws.Code,
			NameAr:      ws.NameAr,
			NameEn:      ws.NameEn,
			Type:        ws.Type,
			TaskCount:   len(tasks),
			Tasks:       dto.NewTaskResponses(tasks),
			UrgentTasks: []dto.TaskResponse{},
		}
		for _, t := range tasks {
			switch {
			case t.Completed():
				ov.DoneCount++
			default:
				ov.TodoCount++
			}
			if t.Overdue(now) {
				ov.OverdueCount++
			}
			if t.Priority == models.PriorityUrgent && !t.Completed() && len(ov.UrgentTasks) < 3 {
				ov.UrgentTasks = append(ov.UrgentTasks, dto.NewTaskResponse(t))
			}
		}
		summary.TotalTasks += ov.TaskCount
		summary.TotalTodo += ov.TodoCount
		summary.TotalDone += ov.DoneCount
		summary.OverdueCount += ov.OverdueCount
		overviews = append(overviews, ov)
	}
	if summary.TotalTasks > 0 {
		summary.ProductivityRate = int(math.Round(float64(summary.TotalDone) / float64(summary.TotalTasks) * 100))
	}

	notifications, err := s.notifications.List(ctx, true)
	if err != nil {
		return nil, err
	}
	if len(notifications) > 10 {
		notifications = notifications[:10]
	}

	events, err := s.calendar.List(ctx, dto.EventFilter{From: &todayStart, To: &weekEnd})
	if err != nil {
		return nil, err
	}
	if len(events) > 15 {
		events = events[:15]
	}

	return &dto.CommandCenterResponse{
		Workspaces:     overviews,
		Summary:        summary,
		Notifications:  notifications,
		UpcomingEvents: events,
	}, nil
}
