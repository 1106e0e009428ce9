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

// StudyService covers terms, scheduled study items and courses. Study
// items feed the task conflict checker through their scheduled times.
type StudyService struct {
	terms   store.Collection[models.StudyTerm]
	items   store.Collection[models.StudyItem]
	courses store.Collection[models.Course]
}

func NewStudyService(terms store.Collection[models.StudyTerm], items store.Collection[models.StudyItem], courses store.Collection[models.Course]) *StudyService {
	return &StudyService{terms: terms, items: items, courses: courses}
}

func (s *StudyService) AddTerm(ctx context.Context, workspaceID string, req dto.CreateStudyTermRequest) (*models.StudyTerm, error) {
	now := time.Now()
	term := models.StudyTerm{
		ID:          req.ID,
		WorkspaceID: workspaceID,
		Name:        req.Name,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if term.ID == "" {
		term.ID = store.NewID()
	}
	if err := s.terms.Insert(ctx, term); err != nil {
		return nil, fmt.Errorf("failed to insert study term: %w", err)
	}
	return &term, nil
}

func (s *StudyService) ListTerms(ctx context.Context, workspaceID string) ([]models.StudyTerm, error) {
	list, err := s.terms.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list study terms: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].StartDate.After(list[j].StartDate) })
	return list, nil
}

// DeleteTerm removes the term only; its items keep their dangling term id.
func (s *StudyService) DeleteTerm(ctx context.Context, id string) (bool, error) {
	deleted, err := s.terms.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete study term: %w", err)
	}
	return deleted, nil
}

func (s *StudyService) AddItem(ctx context.Context, workspaceID string, req dto.CreateStudyItemRequest) (*models.StudyItem, error) {
	now := time.Now()
	item := models.StudyItem{
		ID:          req.ID,
		WorkspaceID: workspaceID,
		TermID:      req.TermID,
		Title:       req.Title,
		ItemType:    req.ItemType,
		ScheduledAt: req.ScheduledAt,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if item.ID == "" {
		item.ID = store.NewID()
	}
	if item.ItemType == "" {
		item.ItemType = "lecture"
	}
	if err := s.items.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to insert study item: %w", err)
	}
	return &item, nil
}

// ListItems returns study items ascending by scheduled time, optionally
// narrowed to a term.
func (s *StudyService) ListItems(ctx context.Context, workspaceID, termID string) ([]models.StudyItem, error) {
	list, err := s.items.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list study items: %w", err)
	}
	if termID != "" {
		out := list[:0]
		for _, item := range list {
			if item.TermID != nil && *item.TermID == termID {
				out = append(out, item)
			}
		}
		list = out
	}
	sort.SliceStable(list, func(i, j int) bool {
		return timePtrLess(list[i].ScheduledAt, list[j].ScheduledAt)
	})
	return list, nil
}

func (s *StudyService) UpdateItem(ctx context.Context, workspaceID, id string, req dto.UpdateStudyItemRequest) (*models.StudyItem, error) {
	item, found, err := s.items.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get study item: %w", err)
	}
	if !found || item.WorkspaceID != workspaceID {
		return nil, nil
	}
	if req.TermID != nil {
		item.TermID = req.TermID
	}
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.ItemType != nil {
		item.ItemType = *req.ItemType
	}
	if req.ScheduledAt != nil {
		item.ScheduledAt = req.ScheduledAt
	}
	if req.Notes != nil {
		item.Notes = req.Notes
	}
	item.UpdatedAt = time.Now()
	found, err = s.items.Replace(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to update study item: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &item, nil
}

func (s *StudyService) DeleteItem(ctx context.Context, id string) (bool, error) {
	deleted, err := s.items.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete study item: %w", err)
	}
	return deleted, nil
}

func (s *StudyService) AddCourse(ctx context.Context, workspaceID string, req dto.CreateCourseRequest) (*models.Course, error) {
	now := time.Now()
	c := models.Course{
		ID:          req.ID,
		WorkspaceID: workspaceID,
		Name:        req.Name,
		Platform:    req.Platform,
		TargetDate:  req.TargetDate,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if c.ID == "" {
		c.ID = store.NewID()
	}
	if req.ProgressPct != nil {
		c.ProgressPct = *req.ProgressPct
	}
	if err := s.courses.Insert(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to insert course: %w", err)
	}
	return &c, nil
}

func (s *StudyService) ListCourses(ctx context.Context, workspaceID string) ([]models.Course, error) {
	list, err := s.courses.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (s *StudyService) UpdateCourse(ctx context.Context, workspaceID, id string, req dto.UpdateCourseRequest) (*models.Course, error) {
	c, found, err := s.courses.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if !found || c.WorkspaceID != workspaceID {
		return nil, nil
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Platform != nil {
		c.Platform = req.Platform
	}
	if req.ProgressPct != nil {
		c.ProgressPct = *req.ProgressPct
	}
	if req.TargetDate != nil {
		c.TargetDate = req.TargetDate
	}
	if req.Notes != nil {
		c.Notes = req.Notes
	}
	c.UpdatedAt = time.Now()
	found, err = s.courses.Replace(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to update course: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &c, nil
}

func (s *StudyService) DeleteCourse(ctx context.Context, id string) (bool, error) {
	deleted, err := s.courses.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete course: %w", err)
	}
	return deleted, nil
}
