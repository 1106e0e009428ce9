package handlers

import (
	"context"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/muntadher/nizam-api/internal/services"
	"github.com/muntadher/nizam-api/pkg/dto"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) List(c *drift.Context) {
	filter := dto.TaskFilter{
		Status:   c.QueryParam("status"),
		Priority: c.QueryParam("priority"),
	}
	tasks, err := h.taskService.List(context.Background(), c.Param("wid"), filter)
	if err != nil {
		c.InternalServerError("failed to list tasks")
		return
	}
	_ = c.JSON(200, dto.NewTaskResponses(tasks))
}

func (h *TaskHandler) Create(c *drift.Context) {
	var req dto.CreateTaskRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Title == "" {
		c.BadRequest("title is required")
		return
	}

	task, err := h.taskService.Add(context.Background(), c.Param("wid"), req)
	if err != nil {
		c.InternalServerError("failed to create task")
		return
	}
	_ = c.JSON(201, dto.NewTaskResponse(*task))
}

func (h *TaskHandler) Get(c *drift.Context) {
	task, err := h.taskService.Get(context.Background(), c.Param("wid"), c.Param("id"))
	if err != nil {
		c.InternalServerError("failed to get task")
		return
	}
	if task == nil {
		c.NotFound("task not found")
		return
	}
	_ = c.JSON(200, dto.NewTaskResponse(*task))
}

func (h *TaskHandler) Update(c *drift.Context) {
	var req dto.UpdateTaskRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	task, err := h.taskService.Update(context.Background(), c.Param("wid"), c.Param("id"), req)
	if err != nil {
		c.InternalServerError("failed to update task")
		return
	}
	if task == nil {
		c.NotFound("task not found")
		return
	}
	_ = c.JSON(200, dto.NewTaskResponse(*task))
}

func (h *TaskHandler) Delete(c *drift.Context) {
	deleted, err := h.taskService.Delete(context.Background(), c.Param("wid"), c.Param("id"))
	if err != nil {
		c.InternalServerError("failed to delete task")
		return
	}
	if !deleted {
		c.NotFound("task not found")
		return
	}
	noContent(c)
}
