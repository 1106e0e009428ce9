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

// FitnessService is an append-only activity log: entries are created and
// deleted, never edited.
type FitnessService struct {
	entries store.Collection[models.FitnessEntry]
}

func NewFitnessService(entries store.Collection[models.FitnessEntry]) *FitnessService {
	return &FitnessService{entries: entries}
}

func (s *FitnessService) Add(ctx context.Context, workspaceID string, req dto.CreateFitnessEntryRequest) (*models.FitnessEntry, error) {
	now := time.Now()
	e := models.FitnessEntry{
		ID:           req.ID,
		WorkspaceID:  workspaceID,
		ActivityType: req.ActivityType,
		DurationMin:  req.DurationMin,
		FitnessDate:  req.FitnessDate,
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if e.ID == "" {
		e.ID = store.NewID()
	}
	if e.FitnessDate.IsZero() {
		e.FitnessDate = now
	}
	if err := s.entries.Insert(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to insert fitness entry: %w", err)
	}
	return &e, nil
}

// List returns entries newest first, optionally bounded to the inclusive
// [from, to] date range.
func (s *FitnessService) List(ctx context.Context, workspaceID string, from, to *time.Time) ([]models.FitnessEntry, error) {
	list, err := s.entries.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fitness entries: %w", err)
	}
	out := list[:0]
	for _, e := range list {
		if from != nil && e.FitnessDate.Before(*from) {
			continue
		}
		if to != nil && e.FitnessDate.After(*to) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].FitnessDate.After(out[j].FitnessDate) })
	return out, nil
}

func (s *FitnessService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.entries.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete fitness entry: %w", err)
	}
	return deleted, nil
}
