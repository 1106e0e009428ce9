package handlers

import (
	"context"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/muntadher/nizam-api/internal/services"
)

type CommandCenterHandler struct {
	commandCenterService *services.CommandCenterService
}

func NewCommandCenterHandler(commandCenterService *services.CommandCenterService) *CommandCenterHandler {
	return &CommandCenterHandler{commandCenterService: commandCenterService}
}

func (h *CommandCenterHandler) Overview(c *drift.Context) {
	overview, err := h.commandCenterService.Overview(context.Background())
	if err != nil {
		c.InternalServerError("failed to build command center")
		return
	}
	_ = c.JSON(200, overview)
}
