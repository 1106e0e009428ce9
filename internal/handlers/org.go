package handlers

import (
	"context"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/muntadher/nizam-api/internal/services"
	"github.com/muntadher/nizam-api/pkg/dto"
)

type OrgRoleHandler struct {
	orgRoleService *services.OrgRoleService
}

func NewOrgRoleHandler(orgRoleService *services.OrgRoleService) *OrgRoleHandler {
	return &OrgRoleHandler{orgRoleService: orgRoleService}
}

func (h *OrgRoleHandler) List(c *drift.Context) {
	list, err := h.orgRoleService.List(context.Background(), c.Param("wid"))
	if err != nil {
		c.InternalServerError("failed to list org roles")
		return
	}
	_ = c.JSON(200, list)
}

func (h *OrgRoleHandler) Create(c *drift.Context) {
	var req dto.CreateOrgRoleRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.TitleAr == "" {
		c.BadRequest("titleAr is required")
		return
	}

	role, err := h.orgRoleService.Add(context.Background(), c.Param("wid"), req)
	if err != nil {
		c.InternalServerError("failed to create org role")
		return
	}
	_ = c.JSON(201, role)
}

func (h *OrgRoleHandler) Update(c *drift.Context) {
	var req dto.UpdateOrgRoleRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	role, err := h.orgRoleService.Update(context.Background(), c.Param("wid"), c.Param("id"), req)
	if err != nil {
		c.InternalServerError("failed to update org role")
		return
	}
	if role == nil {
		c.NotFound("org role not found")
		return
	}
	_ = c.JSON(200, role)
}

func (h *OrgRoleHandler) Delete(c *drift.Context) {
	deleted, err := h.orgRoleService.Delete(context.Background(), c.Param("id"))
	if err != nil {
		c.InternalServerError("failed to delete org role")
		return
	}
	if !deleted {
		c.NotFound("org role not found")
		return
	}
	noContent(c)
}

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

func (h *TeamHandler) List(c *drift.Context) {
	list, err := h.teamService.List(context.Background(), c.Param("wid"))
	if err != nil {
		c.InternalServerError("failed to list team members")
		return
	}
	_ = c.JSON(200, list)
}

func (h *TeamHandler) Create(c *drift.Context) {
	var req dto.CreateTeamMemberRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	m, err := h.teamService.Add(context.Background(), c.Param("wid"), req)
	if err != nil {
		c.InternalServerError("failed to create team member")
		return
	}
	_ = c.JSON(201, m)
}

func (h *TeamHandler) Update(c *drift.Context) {
	var req dto.UpdateTeamMemberRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	m, err := h.teamService.Update(context.Background(), c.Param("wid"), c.Param("id"), req)
	if err != nil {
		c.InternalServerError("failed to update team member")
		return
	}
	if m == nil {
		c.NotFound("team member not found")
		return
	}
	_ = c.JSON(200, m)
}

func (h *TeamHandler) Delete(c *drift.Context) {
	deleted, err := h.teamService.Delete(context.Background(), c.Param("id"))
	if err != nil {
		c.InternalServerError("failed to delete team member")
		return
	}
	if !deleted {
		c.NotFound("team member not found")
		return
	}
	noContent(c)
}

type DepartmentBudgetHandler struct {
	budgetService *services.DepartmentBudgetService
}

func NewDepartmentBudgetHandler(budgetService *services.DepartmentBudgetService) *DepartmentBudgetHandler {
	return &DepartmentBudgetHandler{budgetService: budgetService}
}

func (h *DepartmentBudgetHandler) List(c *drift.Context) {
	list, err := h.budgetService.List(context.Background(), c.Param("wid"))
	if err != nil {
		c.InternalServerError("failed to list department budgets")
		return
	}
	_ = c.JSON(200, list)
}

func (h *DepartmentBudgetHandler) Create(c *drift.Context) {
	var req dto.CreateDepartmentBudgetRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	b, err := h.budgetService.Add(context.Background(), c.Param("wid"), req)
	if err != nil {
		c.InternalServerError("failed to create department budget")
		return
	}
	_ = c.JSON(201, b)
}

func (h *DepartmentBudgetHandler) Update(c *drift.Context) {
	var req dto.UpdateDepartmentBudgetRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	b, err := h.budgetService.Update(context.Background(), c.Param("wid"), c.Param("id"), req)
	if err != nil {
		c.InternalServerError("failed to update department budget")
		return
	}
	if b == nil {
		c.NotFound("department budget not found")
		return
	}
	_ = c.JSON(200, b)
}

func (h *DepartmentBudgetHandler) Delete(c *drift.Context) {
	deleted, err := h.budgetService.Delete(context.Background(), c.Param("id"))
	if err != nil {
		c.InternalServerError("failed to delete department budget")
		return
	}
	if !deleted {
		c.NotFound("department budget not found")
		return
	}
	noContent(c)
}
