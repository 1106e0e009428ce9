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

func TestSupplierService_ListByName(t *testing.T) {
	svc := NewSupplierService(store.NewMemory().Suppliers)
	ctx := context.Background()

	for _, name := range []string{"Zain Trading", "Al Noor Supplies", "Basra Metals"} {
		_, err := svc.Add(ctx, "khotawat", dto.CreateSupplierRequest{Name: name})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx, "khotawat")

	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Al Noor Supplies", list[0].Name)
	assert.Equal(t, "Zain Trading", list[2].Name)
}

func TestSupplierService_Update(t *testing.T) {
	svc := NewSupplierService(store.NewMemory().Suppliers)
	ctx := context.Background()

	sup, err := svc.Add(ctx, "khotawat", dto.CreateSupplierRequest{Name: "Old Name"})
	require.NoError(t, err)

	name := "New Name"
	updated, err := svc.Update(ctx, "khotawat", sup.ID, dto.UpdateSupplierRequest{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "New Name", updated.Name)

	updated, err = svc.Update(ctx, "rahal", sup.ID, dto.UpdateSupplierRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestInventoryService_Add_Defaults(t *testing.T) {
	svc := NewInventoryService(store.NewMemory().Inventory)
	ctx := context.Background()

	item, err := svc.Add(ctx, "khotawat", dto.CreateInventoryItemRequest{Name: "steel sheets"})

	require.NoError(t, err)
	assert.Equal(t, "product", item.ItemType)
	assert.Equal(t, "pcs", item.Unit)
	assert.Zero(t, item.Quantity)
}

func TestInventoryService_Update_Quantity(t *testing.T) {
	svc := NewInventoryService(store.NewMemory().Inventory)
	ctx := context.Background()

	item, err := svc.Add(ctx, "khotawat", dto.CreateInventoryItemRequest{Name: "bolts"})
	require.NoError(t, err)

	qty := 250.0
	updated, err := svc.Update(ctx, "khotawat", item.ID, dto.UpdateInventoryItemRequest{Quantity: &qty})

	require.NoError(t, err)
	assert.Equal(t, 250.0, updated.Quantity)
}

func TestCampaignService_ListLatestStartFirst(t *testing.T) {
	svc := NewCampaignService(store.NewMemory().Campaigns)
	ctx := context.Background()

	march := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	june := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Add(ctx, "rahal", dto.CreateCampaignRequest{Name: "spring push", StartDate: &march})
	require.NoError(t, err)
	_, err = svc.Add(ctx, "rahal", dto.CreateCampaignRequest{Name: "summer launch", StartDate: &june})
	require.NoError(t, err)
	_, err = svc.Add(ctx, "rahal", dto.CreateCampaignRequest{Name: "undated"})
	require.NoError(t, err)

	list, err := svc.List(ctx, "rahal")

	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "summer launch", list[0].Name)
	assert.Equal(t, "spring push", list[1].Name)
	assert.Equal(t, "undated", list[2].Name)
}

func TestCampaignService_Add_DefaultStatus(t *testing.T) {
	svc := NewCampaignService(store.NewMemory().Campaigns)

	c, err := svc.Add(context.Background(), "rahal", dto.CreateCampaignRequest{Name: "teaser"})

	require.NoError(t, err)
	assert.Equal(t, "draft", c.Status)
}

func TestContentPlanService_ListByMonth(t *testing.T) {
	svc := NewContentPlanService(store.NewMemory().ContentPlan)
	ctx := context.Background()

	add := func(month string, day, order int, title string) {
		_, err := svc.Add(ctx, "rahal", dto.CreateContentPlanItemRequest{
			PlanMonth:  month,
			DayOfMonth: day,
			Title:      title,
			SortOrder:  &order,
		})
		require.NoError(t, err)
	}
	add("2024-06", 15, 0, "mid june post")
	add("2024-06", 1, 1, "june second slot")
	add("2024-06", 1, 0, "june first slot")
	add("2024-07", 1, 0, "july post")

	june, err := svc.List(ctx, "rahal", "2024-06")
	require.NoError(t, err)
	require.Len(t, june, 3)
	assert.Equal(t, "june first slot", june[0].Title)
	assert.Equal(t, "june second slot", june[1].Title)
	assert.Equal(t, "mid june post", june[2].Title)

	all, err := svc.List(ctx, "rahal", "")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestContentPlanService_Reset(t *testing.T) {
	svc := NewContentPlanService(store.NewMemory().ContentPlan)
	ctx := context.Background()

	for day := 1; day <= 3; day++ {
		_, err := svc.Add(ctx, "rahal", dto.CreateContentPlanItemRequest{
			PlanMonth:  "2024-06",
			DayOfMonth: day,
			Title:      "june item",
		})
		require.NoError(t, err)
	}
	_, err := svc.Add(ctx, "rahal", dto.CreateContentPlanItemRequest{
		PlanMonth:  "2024-07",
		DayOfMonth: 1,
		Title:      "july item",
	})
	require.NoError(t, err)

	deleted, err := svc.Reset(ctx, "rahal", "2024-06")
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)

	remaining, err := svc.List(ctx, "rahal", "")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "july item", remaining[0].Title)

	deleted, err = svc.Reset(ctx, "rahal", "2024-06")
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
