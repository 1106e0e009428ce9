package handlers

import (
	"context"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/muntadher/nizam-api/internal/services"
	"github.com/muntadher/nizam-api/pkg/dto"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) List(c *drift.Context) {
	unreadOnly := c.QueryParam("unreadOnly") == "true"
	notifications, err := h.notificationService.List(context.Background(), unreadOnly)
	if err != nil {
		c.InternalServerError("failed to list notifications")
		return
	}
	_ = c.JSON(200, notifications)
}

func (h *NotificationHandler) Create(c *drift.Context) {
	var req dto.CreateNotificationRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Title == "" {
		c.BadRequest("title is required")
		return
	}

	n, err := h.notificationService.Add(context.Background(), req)
	if err != nil {
		c.InternalServerError("failed to create notification")
		return
	}
	_ = c.JSON(201, n)
}

func (h *NotificationHandler) MarkRead(c *drift.Context) {
	found, err := h.notificationService.MarkRead(context.Background(), c.Param("id"))
	if err != nil {
		c.InternalServerError("failed to mark notification read")
		return
	}
	if !found {
		c.NotFound("notification not found")
		return
	}
	_ = c.JSON(200, dto.MarkReadResponse{OK: true})
}
