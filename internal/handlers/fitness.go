package handlers

import (
	"context"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/muntadher/nizam-api/internal/services"
	"github.com/muntadher/nizam-api/pkg/dto"
)

type FitnessHandler struct {
	fitnessService *services.FitnessService
}

func NewFitnessHandler(fitnessService *services.FitnessService) *FitnessHandler {
	return &FitnessHandler{fitnessService: fitnessService}
}

func (h *FitnessHandler) List(c *drift.Context) {
	from := parseTimeQuery(c, "from")
	to := parseTimeQuery(c, "to")
	list, err := h.fitnessService.List(context.Background(), c.Param("wid"), from, to)
	if err != nil {
		c.InternalServerError("failed to list fitness entries")
		return
	}
	_ = c.JSON(200, list)
}

func (h *FitnessHandler) Create(c *drift.Context) {
	var req dto.CreateFitnessEntryRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.ActivityType == "" {
		c.BadRequest("activityType is required")
		return
	}

	e, err := h.fitnessService.Add(context.Background(), c.Param("wid"), req)
	if err != nil {
		c.InternalServerError("failed to create fitness entry")
		return
	}
	_ = c.JSON(201, e)
}

func (h *FitnessHandler) Delete(c *drift.Context) {
	deleted, err := h.fitnessService.Delete(context.Background(), c.Param("id"))
	if err != nil {
		c.InternalServerError("failed to delete fitness entry")
		return
	}
	if !deleted {
		c.NotFound("fitness entry not found")
		return
	}
	noContent(c)
}
