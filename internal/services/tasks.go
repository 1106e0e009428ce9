package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/muntadher/nizam-api/internal/models"
	"github.com/muntadher/nizam-api/internal/store"
	"github.com/muntadher/nizam-api/pkg/dto"
)

// TaskService owns the task lifecycle: defaults, the completed/status
// coupling, list filtering and ordering, and triggering the study conflict
// check after every create and update.
type TaskService struct {
	tasks     store.Collection[models.Task]
	conflicts *ConflictChecker
}

func NewTaskService(tasks store.Collection[models.Task], conflicts *ConflictChecker) *TaskService {
	return &TaskService{tasks: tasks, conflicts: conflicts}
}

func (s *TaskService) Add(ctx context.Context, workspaceID string, req dto.CreateTaskRequest) (*models.Task, error) {
	now := time.Now()
	task := models.Task{
		ID:          req.ID,
		WorkspaceID: workspaceID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueAt:       req.DueAt,
		RepeatType:  req.RepeatType,
		NextDue:     req.NextDue,
		Meta:        req.Meta,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.ID == "" {
		task.ID = store.NewID()
	}
	if task.Status == "" {
		task.Status = models.TaskStatusTodo
	}
	if task.Priority == "" {
		task.Priority = models.PriorityNormal
	}
	if task.RepeatType == "" {
		task.RepeatType = models.RepeatNone
	}
	if req.TimeSpent != nil {
		task.TimeSpent = *req.TimeSpent
	}
	if task.Status == models.TaskStatusDone {
		task.CompletedAt = &now
	}

	if err := s.tasks.Insert(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}
	s.conflicts.Check(ctx, task)
	return &task, nil
}

func (s *TaskService) Get(ctx context.Context, workspaceID, id string) (*models.Task, error) {
	task, found, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if !found || task.WorkspaceID != workspaceID {
		return nil, nil
	}
	return &task, nil
}

// List returns the workspace's tasks, optionally narrowed by status and
// priority, newest first.
func (s *TaskService) List(ctx context.Context, workspaceID string, filter dto.TaskFilter) ([]models.Task, error) {
	tasks, err := s.tasks.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	out := tasks[:0]
	for _, t := range tasks {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Update applies the present fields of req onto the stored task. Returns
// (nil, nil) when the id is unknown or belongs to another workspace.
func (s *TaskService) Update(ctx context.Context, workspaceID, id string, req dto.UpdateTaskRequest) (*models.Task, error) {
	task, found, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if !found || task.WorkspaceID != workspaceID {
		return nil, nil
	}

	now := time.Now()
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.DueAt != nil {
		task.DueAt = req.DueAt
	}
	if req.TimeSpent != nil {
		task.TimeSpent = *req.TimeSpent
	}
	if req.RepeatType != nil {
		task.RepeatType = *req.RepeatType
	}
	if req.NextDue != nil {
		task.NextDue = req.NextDue
	}
	if req.Meta != nil {
		task.Meta = req.Meta
	}

	// Status and the completed flag both drive the status/completedAt pair;
	// the explicit flag wins when both are present.
	if req.Status != nil {
		task.Status = *req.Status
		if task.Status == models.TaskStatusDone {
			if task.CompletedAt == nil {
				task.CompletedAt = &now
			}
		} else {
			task.CompletedAt = nil
		}
	}
	if req.Completed != nil {
		if *req.Completed {
			task.Status = models.TaskStatusDone
			if task.CompletedAt == nil {
				task.CompletedAt = &now
			}
		} else {
			task.Status = models.TaskStatusTodo
			task.CompletedAt = nil
		}
	}

	task.UpdatedAt = now
	found, err = s.tasks.Replace(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	if !found {
		return nil, nil
	}
	s.conflicts.Check(ctx, task)
	return &task, nil
}

func (s *TaskService) Delete(ctx context.Context, workspaceID, id string) (bool, error) {
	task, found, err := s.tasks.Get(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to get task: %w", err)
	}
	if !found || task.WorkspaceID != workspaceID {
		return false, nil
	}
	deleted, err := s.tasks.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}
	return deleted, nil
}
