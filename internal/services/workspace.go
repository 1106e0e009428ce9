package services

import (
	"context"
	"fmt"

	"github.com/muntadher/nizam-api/internal/models"
	"github.com/muntadher/nizam-api/internal/store"
)

// WorkspaceService reads the seeded workspace set.
type WorkspaceService struct {
	workspaces store.WorkspaceStore
}

func NewWorkspaceService(workspaces store.WorkspaceStore) *WorkspaceService {
	return &WorkspaceService{workspaces: workspaces}
}

func (s *WorkspaceService) List(ctx context.Context) ([]models.Workspace, error) {
	list, err := s.workspaces.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	return list, nil
}

func (s *WorkspaceService) Get(ctx context.Context, id string) (*models.Workspace, error) {
	ws, found, err := s.workspaces.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &ws, nil
}
