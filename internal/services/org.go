package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/muntadher/nizam-api/internal/models"
	"github.com/muntadher/nizam-api/internal/store"
	"github.com/muntadher/nizam-api/pkg/dto"
)

// OrgRoleService manages the organizational chart. Parent references are
// not validated, an orphan role simply renders at the top level.
type OrgRoleService struct {
	roles store.Collection[models.OrgRole]
}

func NewOrgRoleService(roles store.Collection[models.OrgRole]) *OrgRoleService {
	return &OrgRoleService{roles: roles}
}

func (s *OrgRoleService) Add(ctx context.Context, workspaceID string, req dto.CreateOrgRoleRequest) (*models.OrgRole, error) {
	now := time.Now()
	role := models.OrgRole{
		ID:          req.ID,
		WorkspaceID: workspaceID,
		TitleAr:     req.TitleAr,
		TitleEn:     req.TitleEn,
		ParentID:    req.ParentID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if role.ID == "" {
		role.ID = store.NewID()
	}
	if req.SortOrder != nil {
		role.SortOrder = *req.SortOrder
	}
	if err := s.roles.Insert(ctx, role); err != nil {
		return nil, fmt.Errorf("failed to insert org role: %w", err)
	}
	return &role, nil
}

func (s *OrgRoleService) List(ctx context.Context, workspaceID string) ([]models.OrgRole, error) {
	list, err := s.roles.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list org roles: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].SortOrder < list[j].SortOrder })
	return list, nil
}

func (s *OrgRoleService) Update(ctx context.Context, workspaceID, id string, req dto.UpdateOrgRoleRequest) (*models.OrgRole, error) {
	role, found, err := s.roles.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get org role: %w", err)
	}
	if !found || role.WorkspaceID != workspaceID {
		return nil, nil
	}
	if req.TitleAr != nil {
		role.TitleAr = *req.TitleAr
	}
	if req.TitleEn != nil {
		role.TitleEn = req.TitleEn
	}
	if req.ParentID != nil {
		role.ParentID = req.ParentID
	}
	if req.SortOrder != nil {
		role.SortOrder = *req.SortOrder
	}
	role.UpdatedAt = time.Now()
	found, err = s.roles.Replace(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("failed to update org role: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &role, nil
}

func (s *OrgRoleService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.roles.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete org role: %w", err)
	}
	return deleted, nil
}

// TeamService manages team members, alphabetical by name. Role references
// are not validated.
type TeamService struct {
	members store.Collection[models.TeamMember]
}

func NewTeamService(members store.Collection[models.TeamMember]) *TeamService {
	return &TeamService{members: members}
}

func (s *TeamService) Add(ctx context.Context, workspaceID string, req dto.CreateTeamMemberRequest) (*models.TeamMember, error) {
	now := time.Now()
	m := models.TeamMember{
		ID:          req.ID,
		WorkspaceID: workspaceID,
		Name:        req.Name,
		RoleID:      req.RoleID,
		Contact:     req.Contact,
		KPIs:        req.KPIs,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if m.ID == "" {
		m.ID = store.NewID()
	}
	if err := s.members.Insert(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to insert team member: %w", err)
	}
	return &m, nil
}

func (s *TeamService) List(ctx context.Context, workspaceID string) ([]models.TeamMember, error) {
	list, err := s.members.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (s *TeamService) Update(ctx context.Context, workspaceID, id string, req dto.UpdateTeamMemberRequest) (*models.TeamMember, error) {
	m, found, err := s.members.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}
	if !found || m.WorkspaceID != workspaceID {
		return nil, nil
	}
	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.RoleID != nil {
		m.RoleID = req.RoleID
	}
	if req.Contact != nil {
		m.Contact = req.Contact
	}
	if req.KPIs != nil {
		m.KPIs = req.KPIs
	}
	if req.Notes != nil {
		m.Notes = req.Notes
	}
	m.UpdatedAt = time.Now()
	found, err = s.members.Replace(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &m, nil
}

func (s *TeamService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.members.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete team member: %w", err)
	}
	return deleted, nil
}

// DepartmentBudgetService manages period budgets per department/role,
// latest period first.
type DepartmentBudgetService struct {
	budgets store.Collection[models.DepartmentBudget]
}

func NewDepartmentBudgetService(budgets store.Collection[models.DepartmentBudget]) *DepartmentBudgetService {
	return &DepartmentBudgetService{budgets: budgets}
}

func (s *DepartmentBudgetService) Add(ctx context.Context, workspaceID string, req dto.CreateDepartmentBudgetRequest) (*models.DepartmentBudget, error) {
	now := time.Now()
	b := models.DepartmentBudget{
		ID:          req.ID,
		WorkspaceID: workspaceID,
		RoleID:      req.RoleID,
		Amount:      req.Amount,
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if b.ID == "" {
		b.ID = store.NewID()
	}
	if err := s.budgets.Insert(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to insert department budget: %w", err)
	}
	return &b, nil
}

func (s *DepartmentBudgetService) List(ctx context.Context, workspaceID string) ([]models.DepartmentBudget, error) {
	list, err := s.budgets.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list department budgets: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].PeriodStart.After(list[j].PeriodStart) })
	return list, nil
}

func (s *DepartmentBudgetService) Update(ctx context.Context, workspaceID, id string, req dto.UpdateDepartmentBudgetRequest) (*models.DepartmentBudget, error) {
	b, found, err := s.budgets.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get department budget: %w", err)
	}
	if !found || b.WorkspaceID != workspaceID {
		return nil, nil
	}
	if req.RoleID != nil {
		b.RoleID = req.RoleID
	}
	if req.Amount != nil {
		b.Amount = *req.Amount
	}
	if req.PeriodStart != nil {
		b.PeriodStart = *req.PeriodStart
	}
	if req.PeriodEnd != nil {
		b.PeriodEnd = *req.PeriodEnd
	}
	b.UpdatedAt = time.Now()
	found, err = s.budgets.Replace(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("failed to update department budget: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &b, nil
}

func (s *DepartmentBudgetService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.budgets.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete department budget: %w", err)
	}
	return deleted, nil
}
