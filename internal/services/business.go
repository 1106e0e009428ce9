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

// ExpenseService tracks ad-hoc spending per workspace.
type ExpenseService struct {
	expenses store.Collection[models.Expense]
}

func NewExpenseService(expenses store.Collection[models.Expense]) *ExpenseService {
	return &ExpenseService{expenses: expenses}
}

func (s *ExpenseService) Add(ctx context.Context, workspaceID string, req dto.CreateExpenseRequest) (*models.Expense, error) {
	now := time.Now()
	e := models.Expense{
		ID:          req.ID,
		WorkspaceID: workspaceID,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		ExpenseDate: req.ExpenseDate,
		Meta:        req.Meta,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if e.ID == "" {
		e.ID = store.NewID()
	}
	if e.ExpenseDate.IsZero() {
		e.ExpenseDate = now
	}
	if err := s.expenses.Insert(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to insert expense: %w", err)
	}
	return &e, nil
}

func (s *ExpenseService) List(ctx context.Context, workspaceID string) ([]models.Expense, error) {
	list, err := s.expenses.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].ExpenseDate.After(list[j].ExpenseDate) })
	return list, nil
}

func (s *ExpenseService) Update(ctx context.Context, workspaceID, id string, req dto.UpdateExpenseRequest) (*models.Expense, error) {
	e, found, err := s.expenses.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	if !found || e.WorkspaceID != workspaceID {
		return nil, nil
	}
	if req.Amount != nil {
		e.Amount = *req.Amount
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.Description != nil {
		e.Description = req.Description
	}
	if req.ExpenseDate != nil {
		e.ExpenseDate = *req.ExpenseDate
	}
	if req.Meta != nil {
		e.Meta = req.Meta
	}
	e.UpdatedAt = time.Now()
	found, err = s.expenses.Replace(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &e, nil
}

func (s *ExpenseService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.expenses.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete expense: %w", err)
	}
	return deleted, nil
}

// RoadmapService manages roadmap items ordered by sort order then target
// date.
type RoadmapService struct {
	items store.Collection[models.RoadmapItem]
}

func NewRoadmapService(items store.Collection[models.RoadmapItem]) *RoadmapService {
	return &RoadmapService{items: items}
}

func (s *RoadmapService) Add(ctx context.Context, workspaceID string, req dto.CreateRoadmapItemRequest) (*models.RoadmapItem, error) {
	now := time.Now()
	item := models.RoadmapItem{
		ID:          req.ID,
		WorkspaceID: workspaceID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		TargetDate:  req.TargetDate,
		ItemType:    req.ItemType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if item.ID == "" {
		item.ID = store.NewID()
	}
	if item.Status == "" {
		item.Status = "planned"
	}
	if item.ItemType == "" {
		item.ItemType = "feature"
	}
	if req.SortOrder != nil {
		item.SortOrder = *req.SortOrder
	}
	if err := s.items.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to insert roadmap item: %w", err)
	}
	return &item, nil
}

func (s *RoadmapService) List(ctx context.Context, workspaceID string) ([]models.RoadmapItem, error) {
	list, err := s.items.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roadmap items: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].SortOrder != list[j].SortOrder {
			return list[i].SortOrder < list[j].SortOrder
		}
		return timePtrLess(list[i].TargetDate, list[j].TargetDate)
	})
	return list, nil
}

func (s *RoadmapService) Update(ctx context.Context, workspaceID, id string, req dto.UpdateRoadmapItemRequest) (*models.RoadmapItem, error) {
	item, found, err := s.items.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get roadmap item: %w", err)
	}
	if !found || item.WorkspaceID != workspaceID {
		return nil, nil
	}
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.Status != nil {
		item.Status = *req.Status
	}
	if req.TargetDate != nil {
		item.TargetDate = req.TargetDate
	}
	if req.ItemType != nil {
		item.ItemType = *req.ItemType
	}
	if req.SortOrder != nil {
		item.SortOrder = *req.SortOrder
	}
	item.UpdatedAt = time.Now()
	found, err = s.items.Replace(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to update roadmap item: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &item, nil
}

func (s *RoadmapService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.items.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete roadmap item: %w", err)
	}
	return deleted, nil
}

// BacklogService manages the development backlog, newest first.
type BacklogService struct {
	items store.Collection[models.BacklogItem]
}

func NewBacklogService(items store.Collection[models.BacklogItem]) *BacklogService {
	return &BacklogService{items: items}
}

func (s *BacklogService) Add(ctx context.Context, workspaceID string, req dto.CreateBacklogItemRequest) (*models.BacklogItem, error) {
	now := time.Now()
	item := models.BacklogItem{
		ID:          req.ID,
		WorkspaceID: workspaceID,
		Title:       req.Title,
		ItemType:    req.ItemType,
		Priority:    req.Priority,
		Status:      req.Status,
		StoryPoints: req.StoryPoints,
		Meta:        req.Meta,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if item.ID == "" {
		item.ID = store.NewID()
	}
	if item.ItemType == "" {
		item.ItemType = "feature"
	}
	if item.Priority == "" {
		item.Priority = "medium"
	}
	if item.Status == "" {
		item.Status = "backlog"
	}
	if err := s.items.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to insert backlog item: %w", err)
	}
	return &item, nil
}

func (s *BacklogService) List(ctx context.Context, workspaceID string) ([]models.BacklogItem, error) {
	list, err := s.items.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list backlog items: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (s *BacklogService) Update(ctx context.Context, workspaceID, id string, req dto.UpdateBacklogItemRequest) (*models.BacklogItem, error) {
	item, found, err := s.items.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get backlog item: %w", err)
	}
	if !found || item.WorkspaceID != workspaceID {
		return nil, nil
	}
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.ItemType != nil {
		item.ItemType = *req.ItemType
	}
	if req.Priority != nil {
		item.Priority = *req.Priority
	}
	if req.Status != nil {
		item.Status = *req.Status
	}
	if req.StoryPoints != nil {
		item.StoryPoints = req.StoryPoints
	}
	if req.Meta != nil {
		item.Meta = req.Meta
	}
	item.UpdatedAt = time.Now()
	found, err = s.items.Replace(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to update backlog item: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &item, nil
}

func (s *BacklogService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.items.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete backlog item: %w", err)
	}
	return deleted, nil
}

// TechDocService manages technical documents, most recently edited first.
type TechDocService struct {
	docs store.Collection[models.TechDoc]
}

func NewTechDocService(docs store.Collection[models.TechDoc]) *TechDocService {
	return &TechDocService{docs: docs}
}

func (s *TechDocService) Add(ctx context.Context, workspaceID string, req dto.CreateTechDocRequest) (*models.TechDoc, error) {
	now := time.Now()
	doc := models.TechDoc{
		ID:          req.ID,
		WorkspaceID: workspaceID,
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if doc.ID == "" {
		doc.ID = store.NewID()
	}
	if err := s.docs.Insert(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to insert tech doc: %w", err)
	}
	return &doc, nil
}

func (s *TechDocService) Get(ctx context.Context, workspaceID, id string) (*models.TechDoc, error) {
	doc, found, err := s.docs.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tech doc: %w", err)
	}
	if !found || doc.WorkspaceID != workspaceID {
		return nil, nil
	}
	return &doc, nil
}

func (s *TechDocService) List(ctx context.Context, workspaceID string) ([]models.TechDoc, error) {
	list, err := s.docs.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tech docs: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].UpdatedAt.After(list[j].UpdatedAt) })
	return list, nil
}

func (s *TechDocService) Update(ctx context.Context, workspaceID, id string, req dto.UpdateTechDocRequest) (*models.TechDoc, error) {
	doc, found, err := s.docs.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tech doc: %w", err)
	}
	if !found || doc.WorkspaceID != workspaceID {
		return nil, nil
	}
	if req.Title != nil {
		doc.Title = *req.Title
	}
	if req.Content != nil {
		doc.Content = req.Content
	}
	if req.Category != nil {
		doc.Category = req.Category
	}
	doc.UpdatedAt = time.Now()
	found, err = s.docs.Replace(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to update tech doc: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &doc, nil
}

func (s *TechDocService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.docs.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete tech doc: %w", err)
	}
	return deleted, nil
}
