package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/muntadher/nizam-api/internal/models"
	"github.com/muntadher/nizam-api/internal/store"
	"github.com/muntadher/nizam-api/pkg/dto"
)

var ErrInvalidEventRange = errors.New("event end must not be before start")

type CalendarService struct {
	events store.Collection[models.CalendarEvent]
}

func NewCalendarService(events store.Collection[models.CalendarEvent]) *CalendarService {
	return &CalendarService{events: events}
}

func (s *CalendarService) Add(ctx context.Context, req dto.CreateEventRequest) (*models.CalendarEvent, error) {
	if req.EndAt.Before(req.StartAt) {
		return nil, ErrInvalidEventRange
	}
	now := time.Now()
	event := models.CalendarEvent{
		ID:            req.ID,
		WorkspaceID:   req.WorkspaceID,
		Title:         req.Title,
		StartAt:       req.StartAt,
		EndAt:         req.EndAt,
		EventType:     req.EventType,
		RecurringRule: req.RecurringRule,
		Meta:          req.Meta,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if event.ID == "" {
		event.ID = store.NewID()
	}
	if event.EventType == "" {
		event.EventType = "event"
	}
	if err := s.events.Insert(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}
	return &event, nil
}

// List returns events ascending by start time. With both window bounds set
// it keeps only events overlapping [From, To).
func (s *CalendarService) List(ctx context.Context, filter dto.EventFilter) ([]models.CalendarEvent, error) {
	var (
		events []models.CalendarEvent
		err    error
	)
	if filter.WorkspaceID != "" {
		events, err = s.events.ListByWorkspace(ctx, filter.WorkspaceID)
	} else {
		events, err = s.events.ListAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	if filter.From != nil && filter.To != nil {
		out := events[:0]
		for _, e := range events {
			if e.StartAt.Before(*filter.To) && e.EndAt.After(*filter.From) {
				out = append(out, e)
			}
		}
		events = out
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].StartAt.Before(events[j].StartAt) })
	return events, nil
}

func (s *CalendarService) Update(ctx context.Context, id string, req dto.UpdateEventRequest) (*models.CalendarEvent, error) {
	event, found, err := s.events.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if !found {
		return nil, nil
	}

	if req.WorkspaceID != nil {
		event.WorkspaceID = req.WorkspaceID
	}
	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.StartAt != nil {
		event.StartAt = *req.StartAt
	}
	if req.EndAt != nil {
		event.EndAt = *req.EndAt
	}
	if req.EventType != nil {
		event.EventType = *req.EventType
	}
	if req.RecurringRule != nil {
		event.RecurringRule = req.RecurringRule
	}
	if req.Meta != nil {
		event.Meta = req.Meta
	}
	if event.EndAt.Before(event.StartAt) {
		return nil, ErrInvalidEventRange
	}

	event.UpdatedAt = time.Now()
	found, err = s.events.Replace(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &event, nil
}

func (s *CalendarService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.events.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete event: %w", err)
	}
	return deleted, nil
}
