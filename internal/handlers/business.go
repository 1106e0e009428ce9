package handlers

import (
	"context"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/muntadher/nizam-api/internal/services"
	"github.com/muntadher/nizam-api/pkg/dto"
)

type ExpenseHandler struct {
	expenseService *services.ExpenseService
}

func NewExpenseHandler(expenseService *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

func (h *ExpenseHandler) List(c *drift.Context) {
	list, err := h.expenseService.List(context.Background(), c.Param("wid"))
	if err != nil {
		c.InternalServerError("failed to list expenses")
		return
	}
	_ = c.JSON(200, list)
}

func (h *ExpenseHandler) Create(c *drift.Context) {
	var req dto.CreateExpenseRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	e, err := h.expenseService.Add(context.Background(), c.Param("wid"), req)
	if err != nil {
		c.InternalServerError("failed to create expense")
		return
	}
	_ = c.JSON(201, e)
}

func (h *ExpenseHandler) Update(c *drift.Context) {
	var req dto.UpdateExpenseRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	e, err := h.expenseService.Update(context.Background(), c.Param("wid"), c.Param("id"), req)
	if err != nil {
		c.InternalServerError("failed to update expense")
		return
	}
	if e == nil {
		c.NotFound("expense not found")
		return
	}
	_ = c.JSON(200, e)
}

func (h *ExpenseHandler) Delete(c *drift.Context) {
	deleted, err := h.expenseService.Delete(context.Background(), c.Param("id"))
	if err != nil {
		c.InternalServerError("failed to delete expense")
		return
	}
	if !deleted {
		c.NotFound("expense not found")
		return
	}
	noContent(c)
}

type RoadmapHandler struct {
	roadmapService *services.RoadmapService
}

func NewRoadmapHandler(roadmapService *services.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{roadmapService: roadmapService}
}

func (h *RoadmapHandler) List(c *drift.Context) {
	list, err := h.roadmapService.List(context.Background(), c.Param("wid"))
	if err != nil {
		c.InternalServerError("failed to list roadmap items")
		return
	}
	_ = c.JSON(200, list)
}

func (h *RoadmapHandler) Create(c *drift.Context) {
	var req dto.CreateRoadmapItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Title == "" {
		c.BadRequest("title is required")
		return
	}

	item, err := h.roadmapService.Add(context.Background(), c.Param("wid"), req)
	if err != nil {
		c.InternalServerError("failed to create roadmap item")
		return
	}
	_ = c.JSON(201, item)
}

func (h *RoadmapHandler) Update(c *drift.Context) {
	var req dto.UpdateRoadmapItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	item, err := h.roadmapService.Update(context.Background(), c.Param("wid"), c.Param("id"), req)
	if err != nil {
		c.InternalServerError("failed to update roadmap item")
		return
	}
	if item == nil {
		c.NotFound("roadmap item not found")
		return
	}
	_ = c.JSON(200, item)
}

func (h *RoadmapHandler) Delete(c *drift.Context) {
	deleted, err := h.roadmapService.Delete(context.Background(), c.Param("id"))
	if err != nil {
		c.InternalServerError("failed to delete roadmap item")
		return
	}
	if !deleted {
		c.NotFound("roadmap item not found")
		return
	}
	noContent(c)
}

type BacklogHandler struct {
	backlogService *services.BacklogService
}

func NewBacklogHandler(backlogService *services.BacklogService) *BacklogHandler {
	return &BacklogHandler{backlogService: backlogService}
}

func (h *BacklogHandler) List(c *drift.Context) {
	list, err := h.backlogService.List(context.Background(), c.Param("wid"))
	if err != nil {
		c.InternalServerError("failed to list backlog items")
		return
	}
	_ = c.JSON(200, list)
}

func (h *BacklogHandler) Create(c *drift.Context) {
	var req dto.CreateBacklogItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Title == "" {
		c.BadRequest("title is required")
		return
	}

	item, err := h.backlogService.Add(context.Background(), c.Param("wid"), req)
	if err != nil {
		c.InternalServerError("failed to create backlog item")
		return
	}
	_ = c.JSON(201, item)
}

func (h *BacklogHandler) Update(c *drift.Context) {
	var req dto.UpdateBacklogItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	item, err := h.backlogService.Update(context.Background(), c.Param("wid"), c.Param("id"), req)
	if err != nil {
		c.InternalServerError("failed to update backlog item")
		return
	}
	if item == nil {
		c.NotFound("backlog item not found")
		return
	}
	_ = c.JSON(200, item)
}

func (h *BacklogHandler) Delete(c *drift.Context) {
	deleted, err := h.backlogService.Delete(context.Background(), c.Param("id"))
	if err != nil {
		c.InternalServerError("failed to delete backlog item")
		return
	}
	if !deleted {
		c.NotFound("backlog item not found")
		return
	}
	noContent(c)
}

type TechDocHandler struct {
	techDocService *services.TechDocService
}

func NewTechDocHandler(techDocService *services.TechDocService) *TechDocHandler {
	return &TechDocHandler{techDocService: techDocService}
}

func (h *TechDocHandler) List(c *drift.Context) {
	list, err := h.techDocService.List(context.Background(), c.Param("wid"))
	if err != nil {
		c.InternalServerError("failed to list tech docs")
		return
	}
	_ = c.JSON(200, list)
}

func (h *TechDocHandler) Get(c *drift.Context) {
	doc, err := h.techDocService.Get(context.Background(), c.Param("wid"), c.Param("id"))
	if err != nil {
		c.InternalServerError("failed to get tech doc")
		return
	}
	if doc == nil {
		c.NotFound("tech doc not found")
		return
	}
	_ = c.JSON(200, doc)
}

func (h *TechDocHandler) Create(c *drift.Context) {
	var req dto.CreateTechDocRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Title == "" {
		c.BadRequest("title is required")
		return
	}

	doc, err := h.techDocService.Add(context.Background(), c.Param("wid"), req)
	if err != nil {
		c.InternalServerError("failed to create tech doc")
		return
	}
	_ = c.JSON(201, doc)
}

func (h *TechDocHandler) Update(c *drift.Context) {
	var req dto.UpdateTechDocRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	doc, err := h.techDocService.Update(context.Background(), c.Param("wid"), c.Param("id"), req)
	if err != nil {
		c.InternalServerError("failed to update tech doc")
		return
	}
	if doc == nil {
		c.NotFound("tech doc not found")
		return
	}
	_ = c.JSON(200, doc)
}

func (h *TechDocHandler) Delete(c *drift.Context) {
	deleted, err := h.techDocService.Delete(context.Background(), c.Param("id"))
	if err != nil {
		c.InternalServerError("failed to delete tech doc")
		return
	}
	if !deleted {
		c.NotFound("tech doc not found")
		return
	}
	noContent(c)
}
