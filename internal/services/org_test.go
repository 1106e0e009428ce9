package services

import (
	"context"
	"testing"
	"time"

	"github.com/muntadher/nizam-api/internal/store"
	"github.com/muntadher/nizam-api/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrgRoleService_ListBySortOrder(t *testing.T) {
	svc := NewOrgRoleService(store.NewMemory().OrgRoles)
	ctx := context.Background()

	two := 2
	one := 1
	_, err := svc.Add(ctx, "khotawat", dto.CreateOrgRoleRequest{TitleAr: "مدير العمليات", SortOrder: &two})
	require.NoError(t, err)
	root, err := svc.Add(ctx, "khotawat", dto.CreateOrgRoleRequest{TitleAr: "المدير العام", SortOrder: &one})
	require.NoError(t, err)

	list, err := svc.List(ctx, "khotawat")

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, root.ID, list[0].ID)
}

func TestOrgRoleService_ParentNotValidated(t *testing.T) {
	svc := NewOrgRoleService(store.NewMemory().OrgRoles)
	ctx := context.Background()

	parent := "long-gone-role"
	role, err := svc.Add(ctx, "khotawat", dto.CreateOrgRoleRequest{TitleAr: "محاسب", ParentID: &parent})

	require.NoError(t, err)
	require.NotNil(t, role.ParentID)
	assert.Equal(t, parent, *role.ParentID)
}

func TestTeamService_ListByName(t *testing.T) {
	svc := NewTeamService(store.NewMemory().TeamMembers)
	ctx := context.Background()

	for _, name := range []string{"Zainab", "Ahmed", "Mariam"} {
		_, err := svc.Add(ctx, "khotawat", dto.CreateTeamMemberRequest{Name: name})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx, "khotawat")

	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Ahmed", list[0].Name)
	assert.Equal(t, "Zainab", list[2].Name)
}

func TestTeamService_Update(t *testing.T) {
	svc := NewTeamService(store.NewMemory().TeamMembers)
	ctx := context.Background()

	member, err := svc.Add(ctx, "khotawat", dto.CreateTeamMemberRequest{Name: "Ahmed"})
	require.NoError(t, err)

	contact := "ahmed@example.com"
	updated, err := svc.Update(ctx, "khotawat", member.ID, dto.UpdateTeamMemberRequest{Contact: &contact})

	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, updated.Contact)
	assert.Equal(t, contact, *updated.Contact)
}

func TestDepartmentBudgetService_ListPeriodStartDesc(t *testing.T) {
	svc := NewDepartmentBudgetService(store.NewMemory().DepartmentBudgets)
	ctx := context.Background()

	q1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	q2 := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Add(ctx, "khotawat", dto.CreateDepartmentBudgetRequest{
		Amount: 1000, PeriodStart: q1, PeriodEnd: q1.AddDate(0, 3, 0),
	})
	require.NoError(t, err)
	_, err = svc.Add(ctx, "khotawat", dto.CreateDepartmentBudgetRequest{
		Amount: 2000, PeriodStart: q2, PeriodEnd: q2.AddDate(0, 3, 0),
	})
	require.NoError(t, err)

	list, err := svc.List(ctx, "khotawat")

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 2000.0, list[0].Amount)
}
