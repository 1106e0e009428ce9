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

// SupplierService manages suppliers, alphabetical by name.
type SupplierService struct {
	suppliers store.Collection[models.Supplier]
}

func NewSupplierService(suppliers store.Collection[models.Supplier]) *SupplierService {
	return &SupplierService{suppliers: suppliers}
}

func (s *SupplierService) Add(ctx context.Context, workspaceID string, req dto.CreateSupplierRequest) (*models.Supplier, error) {
	now := time.Now()
	sup := models.Supplier{
		ID:          req.ID,
		WorkspaceID: workspaceID,
		Name:        req.Name,
		Contact:     req.Contact,
		Materials:   req.Materials,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if sup.ID == "" {
		sup.ID = store.NewID()
	}
	if err := s.suppliers.Insert(ctx, sup); err != nil {
		return nil, fmt.Errorf("failed to insert supplier: %w", err)
	}
	return &sup, nil
}

func (s *SupplierService) List(ctx context.Context, workspaceID string) ([]models.Supplier, error) {
	list, err := s.suppliers.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (s *SupplierService) Update(ctx context.Context, workspaceID, id string, req dto.UpdateSupplierRequest) (*models.Supplier, error) {
	sup, found, err := s.suppliers.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}
	if !found || sup.WorkspaceID != workspaceID {
		return nil, nil
	}
	if req.Name != nil {
		sup.Name = *req.Name
	}
	if req.Contact != nil {
		sup.Contact = req.Contact
	}
	if req.Materials != nil {
		sup.Materials = req.Materials
	}
	if req.Notes != nil {
		sup.Notes = req.Notes
	}
	sup.UpdatedAt = time.Now()
	found, err = s.suppliers.Replace(ctx, sup)
	if err != nil {
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &sup, nil
}

func (s *SupplierService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.suppliers.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete supplier: %w", err)
	}
	return deleted, nil
}

// InventoryService manages stock items, alphabetical by name.
type InventoryService struct {
	items store.Collection[models.InventoryItem]
}

func NewInventoryService(items store.Collection[models.InventoryItem]) *InventoryService {
	return &InventoryService{items: items}
}

func (s *InventoryService) Add(ctx context.Context, workspaceID string, req dto.CreateInventoryItemRequest) (*models.InventoryItem, error) {
	now := time.Now()
	item := models.InventoryItem{
		ID:          req.ID,
		WorkspaceID: workspaceID,
		Name:        req.Name,
		ItemType:    req.ItemType,
		Unit:        req.Unit,
		MinLevel:    req.MinLevel,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if item.ID == "" {
		item.ID = store.NewID()
	}
	if item.ItemType == "" {
		item.ItemType = "product"
	}
	if item.Unit == "" {
		item.Unit = "pcs"
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if err := s.items.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to insert inventory item: %w", err)
	}
	return &item, nil
}

func (s *InventoryService) List(ctx context.Context, workspaceID string) ([]models.InventoryItem, error) {
	list, err := s.items.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (s *InventoryService) Update(ctx context.Context, workspaceID, id string, req dto.UpdateInventoryItemRequest) (*models.InventoryItem, error) {
	item, found, err := s.items.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	if !found || item.WorkspaceID != workspaceID {
		return nil, nil
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.ItemType != nil {
		item.ItemType = *req.ItemType
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.MinLevel != nil {
		item.MinLevel = req.MinLevel
	}
	if req.Notes != nil {
		item.Notes = req.Notes
	}
	item.UpdatedAt = time.Now()
	found, err = s.items.Replace(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &item, nil
}

func (s *InventoryService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.items.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete inventory item: %w", err)
	}
	return deleted, nil
}

// CampaignService manages marketing campaigns, latest start date first.
type CampaignService struct {
	campaigns store.Collection[models.Campaign]
}

func NewCampaignService(campaigns store.Collection[models.Campaign]) *CampaignService {
	return &CampaignService{campaigns: campaigns}
}

func (s *CampaignService) Add(ctx context.Context, workspaceID string, req dto.CreateCampaignRequest) (*models.Campaign, error) {
	now := time.Now()
	c := models.Campaign{
		ID:          req.ID,
		WorkspaceID: workspaceID,
		Name:        req.Name,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
		Budget:      req.Budget,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if c.ID == "" {
		c.ID = store.NewID()
	}
	if c.Status == "" {
		c.Status = "draft"
	}
	if err := s.campaigns.Insert(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to insert campaign: %w", err)
	}
	return &c, nil
}

func (s *CampaignService) List(ctx context.Context, workspaceID string) ([]models.Campaign, error) {
	list, err := s.campaigns.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return timePtrLess(list[j].StartDate, list[i].StartDate)
	})
	return list, nil
}

func (s *CampaignService) Update(ctx context.Context, workspaceID, id string, req dto.UpdateCampaignRequest) (*models.Campaign, error) {
	c, found, err := s.campaigns.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	if !found || c.WorkspaceID != workspaceID {
		return nil, nil
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.StartDate != nil {
		c.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		c.EndDate = req.EndDate
	}
	if req.Status != nil {
		c.Status = *req.Status
	}
	if req.Budget != nil {
		c.Budget = req.Budget
	}
	c.UpdatedAt = time.Now()
	found, err = s.campaigns.Replace(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &c, nil
}

func (s *CampaignService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.campaigns.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete campaign: %w", err)
	}
	return deleted, nil
}

// ContentPlanService manages the monthly content calendar. Items are keyed
// to a YYYY-MM plan month and listed by day then sort order.
type ContentPlanService struct {
	items store.Collection[models.ContentPlanItem]
}

func NewContentPlanService(items store.Collection[models.ContentPlanItem]) *ContentPlanService {
	return &ContentPlanService{items: items}
}

func (s *ContentPlanService) Add(ctx context.Context, workspaceID string, req dto.CreateContentPlanItemRequest) (*models.ContentPlanItem, error) {
	now := time.Now()
	item := models.ContentPlanItem{
		ID:          req.ID,
		WorkspaceID: workspaceID,
		PlanMonth:   req.PlanMonth,
		DayOfMonth:  req.DayOfMonth,
		Title:       req.Title,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if item.ID == "" {
		item.ID = store.NewID()
	}
	if req.SortOrder != nil {
		item.SortOrder = *req.SortOrder
	}
	if err := s.items.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to insert content plan item: %w", err)
	}
	return &item, nil
}

// List returns the items of one plan month; an empty month returns the
// whole workspace plan.
func (s *ContentPlanService) List(ctx context.Context, workspaceID, month string) ([]models.ContentPlanItem, error) {
	list, err := s.items.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list content plan items: %w", err)
	}
	if month != "" {
		out := list[:0]
		for _, item := range list {
			if item.PlanMonth == month {
				out = append(out, item)
			}
		}
		list = out
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].DayOfMonth != list[j].DayOfMonth {
			return list[i].DayOfMonth < list[j].DayOfMonth
		}
		return list[i].SortOrder < list[j].SortOrder
	})
	return list, nil
}

func (s *ContentPlanService) Update(ctx context.Context, workspaceID, id string, req dto.UpdateContentPlanItemRequest) (*models.ContentPlanItem, error) {
	item, found, err := s.items.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get content plan item: %w", err)
	}
	if !found || item.WorkspaceID != workspaceID {
		return nil, nil
	}
	if req.PlanMonth != nil {
		item.PlanMonth = *req.PlanMonth
	}
	if req.DayOfMonth != nil {
		item.DayOfMonth = *req.DayOfMonth
	}
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Notes != nil {
		item.Notes = req.Notes
	}
	if req.SortOrder != nil {
		item.SortOrder = *req.SortOrder
	}
	item.UpdatedAt = time.Now()
	found, err = s.items.Replace(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to update content plan item: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &item, nil
}

func (s *ContentPlanService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.items.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete content plan item: %w", err)
	}
	return deleted, nil
}

// Reset deletes every item of one plan month, item by item. A failure
// partway leaves the earlier deletes in place.
func (s *ContentPlanService) Reset(ctx context.Context, workspaceID, month string) (int, error) {
	list, err := s.items.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return 0, fmt.Errorf("failed to list content plan items: %w", err)
	}
	deleted := 0
	for _, item := range list {
		if item.PlanMonth != month {
			continue
		}
		ok, err := s.items.Delete(ctx, item.ID)
		if err != nil {
			return deleted, fmt.Errorf("failed to reset content plan month: %w", err)
		}
		if ok {
			deleted++
		}
	}
	return deleted, nil
}
