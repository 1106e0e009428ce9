package handlers

import (
	"context"
	"time"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/muntadher/nizam-api/internal/services"
	"github.com/muntadher/nizam-api/pkg/dto"
)

type FinanceHandler struct {
	financeService *services.FinanceService
}

func NewFinanceHandler(financeService *services.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

func (h *FinanceHandler) Bundle(c *drift.Context) {
	bundle, err := h.financeService.Bundle(context.Background(), c.Param("wid"))
	if err != nil {
		c.InternalServerError("failed to load finance data")
		return
	}
	_ = c.JSON(200, bundle)
}

func (h *FinanceHandler) CreateTransaction(c *drift.Context) {
	var req dto.CreateTransactionRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	t, err := h.financeService.AddTransaction(context.Background(), c.Param("wid"), req)
	if err != nil {
		c.InternalServerError("failed to create transaction")
		return
	}
	_ = c.JSON(201, t)
}

func (h *FinanceHandler) DeleteTransaction(c *drift.Context) {
	deleted, err := h.financeService.DeleteTransaction(context.Background(), c.Param("id"))
	if err != nil {
		c.InternalServerError("failed to delete transaction")
		return
	}
	if !deleted {
		c.NotFound("transaction not found")
		return
	}
	noContent(c)
}

func (h *FinanceHandler) SetBudget(c *drift.Context) {
	var req dto.SetBudgetRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	amount, err := h.financeService.SetBudget(context.Background(), c.Param("wid"), req.Amount)
	if err != nil {
		c.InternalServerError("failed to set budget")
		return
	}
	_ = c.JSON(200, dto.BudgetResponse{WorkspaceID: c.Param("wid"), Amount: amount})
}

func (h *FinanceHandler) CreateGoal(c *drift.Context) {
	var req dto.CreateGoalRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	g, err := h.financeService.AddGoal(context.Background(), c.Param("wid"), req)
	if err != nil {
		c.InternalServerError("failed to create goal")
		return
	}
	_ = c.JSON(201, g)
}

func (h *FinanceHandler) UpdateGoal(c *drift.Context) {
	var req dto.UpdateGoalRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	g, err := h.financeService.UpdateGoal(context.Background(), c.Param("wid"), c.Param("id"), req)
	if err != nil {
		c.InternalServerError("failed to update goal")
		return
	}
	if g == nil {
		c.NotFound("goal not found")
		return
	}
	_ = c.JSON(200, g)
}

func (h *FinanceHandler) DeleteGoal(c *drift.Context) {
	deleted, err := h.financeService.DeleteGoal(context.Background(), c.Param("id"))
	if err != nil {
		c.InternalServerError("failed to delete goal")
		return
	}
	if !deleted {
		c.NotFound("goal not found")
		return
	}
	noContent(c)
}

func (h *FinanceHandler) CreateDebt(c *drift.Context) {
	var req dto.CreateDebtRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.PersonName == "" {
		c.BadRequest("personName is required")
		return
	}

	d, err := h.financeService.AddDebt(context.Background(), c.Param("wid"), req)
	if err != nil {
		c.InternalServerError("failed to create debt")
		return
	}
	_ = c.JSON(201, d)
}

func (h *FinanceHandler) UpdateDebt(c *drift.Context) {
	var req dto.UpdateDebtRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	d, err := h.financeService.UpdateDebt(context.Background(), c.Param("wid"), c.Param("id"), req)
	if err != nil {
		c.InternalServerError("failed to update debt")
		return
	}
	if d == nil {
		c.NotFound("debt not found")
		return
	}
	_ = c.JSON(200, d)
}

func (h *FinanceHandler) DeleteDebt(c *drift.Context) {
	deleted, err := h.financeService.DeleteDebt(context.Background(), c.Param("id"))
	if err != nil {
		c.InternalServerError("failed to delete debt")
		return
	}
	if !deleted {
		c.NotFound("debt not found")
		return
	}
	noContent(c)
}

func (h *FinanceHandler) CreateSubscription(c *drift.Context) {
	var req dto.CreateSubscriptionRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	sub, err := h.financeService.AddSubscription(context.Background(), c.Param("wid"), req)
	if err != nil {
		c.InternalServerError("failed to create subscription")
		return
	}
	_ = c.JSON(201, dto.NewSubscriptionResponse(*sub, time.Now()))
}

func (h *FinanceHandler) UpdateSubscription(c *drift.Context) {
	var req dto.UpdateSubscriptionRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	sub, err := h.financeService.UpdateSubscription(context.Background(), c.Param("wid"), c.Param("id"), req)
	if err != nil {
		c.InternalServerError("failed to update subscription")
		return
	}
	if sub == nil {
		c.NotFound("subscription not found")
		return
	}
	_ = c.JSON(200, dto.NewSubscriptionResponse(*sub, time.Now()))
}

func (h *FinanceHandler) DeleteSubscription(c *drift.Context) {
	deleted, err := h.financeService.DeleteSubscription(context.Background(), c.Param("id"))
	if err != nil {
		c.InternalServerError("failed to delete subscription")
		return
	}
	if !deleted {
		c.NotFound("subscription not found")
		return
	}
	noContent(c)
}
