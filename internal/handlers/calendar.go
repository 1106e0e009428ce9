package handlers

import (
	"context"
	"errors"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/muntadher/nizam-api/internal/services"
	"github.com/muntadher/nizam-api/pkg/dto"
)

type CalendarHandler struct {
	calendarService *services.CalendarService
}

func NewCalendarHandler(calendarService *services.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

func (h *CalendarHandler) List(c *drift.Context) {
	filter := dto.EventFilter{
		WorkspaceID: c.QueryParam("workspaceId"),
		From:        parseTimeQuery(c, "from"),
		To:          parseTimeQuery(c, "to"),
	}
	events, err := h.calendarService.List(context.Background(), filter)
	if err != nil {
		c.InternalServerError("failed to list events")
		return
	}
	_ = c.JSON(200, events)
}

func (h *CalendarHandler) Create(c *drift.Context) {
	var req dto.CreateEventRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Title == "" {
		c.BadRequest("title is required")
		return
	}

	event, err := h.calendarService.Add(context.Background(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidEventRange) {
			c.BadRequest("endAt must not be before startAt")
			return
		}
		c.InternalServerError("failed to create event")
		return
	}
	_ = c.JSON(201, event)
}

func (h *CalendarHandler) Update(c *drift.Context) {
	var req dto.UpdateEventRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	event, err := h.calendarService.Update(context.Background(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidEventRange) {
			c.BadRequest("endAt must not be before startAt")
			return
		}
		c.InternalServerError("failed to update event")
		return
	}
	if event == nil {
		c.NotFound("event not found")
		return
	}
	_ = c.JSON(200, event)
}

func (h *CalendarHandler) Delete(c *drift.Context) {
	deleted, err := h.calendarService.Delete(context.Background(), c.Param("id"))
	if err != nil {
		c.InternalServerError("failed to delete event")
		return
	}
	if !deleted {
		c.NotFound("event not found")
		return
	}
	noContent(c)
}
