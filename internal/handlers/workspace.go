package handlers

import (
	"context"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/muntadher/nizam-api/internal/services"
)

type WorkspaceHandler struct {
	workspaceService *services.WorkspaceService
}

func NewWorkspaceHandler(workspaceService *services.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

func (h *WorkspaceHandler) List(c *drift.Context) {
	workspaces, err := h.workspaceService.List(context.Background())
	if err != nil {
		c.InternalServerError("failed to list workspaces")
		return
	}
	_ = c.JSON(200, workspaces)
}

func (h *WorkspaceHandler) Get(c *drift.Context) {
	ws, err := h.workspaceService.Get(context.Background(), c.Param("wid"))
	if err != nil {
		c.InternalServerError("failed to get workspace")
		return
	}
	if ws == nil {
		c.NotFound("workspace not found")
		return
	}
	_ = c.JSON(200, ws)
}
