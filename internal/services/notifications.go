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

type NotificationService struct {
	notifications store.Collection[models.Notification]
}

func NewNotificationService(notifications store.Collection[models.Notification]) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) Add(ctx context.Context, req dto.CreateNotificationRequest) (*models.Notification, error) {
	now := time.Now()
	n := models.Notification{
		ID:          req.ID,
		WorkspaceID: req.WorkspaceID,
		Title:       req.Title,
		Body:        req.Body,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if n.ID == "" {
		n.ID = store.NewID()
	}
	if err := s.notifications.Insert(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to insert notification: %w", err)
	}
	return &n, nil
}

// List returns notifications newest first, optionally only unread ones.
func (s *NotificationService) List(ctx context.Context, unreadOnly bool) ([]models.Notification, error) {
	all, err := s.notifications.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	out := all[:0]
	for _, n := range all {
		if unreadOnly && !n.Unread() {
			continue
		}
		out = append(out, n)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// MarkRead stamps the notification read. Idempotent: marking an already
// read notification keeps its original read time.
func (s *NotificationService) MarkRead(ctx context.Context, id string) (bool, error) {
	n, found, err := s.notifications.Get(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to get notification: %w", err)
	}
	if !found {
		return false, nil
	}
	if n.ReadAt == nil {
		now := time.Now()
		n.ReadAt = &now
		n.UpdatedAt = now
		if _, err := s.notifications.Replace(ctx, n); err != nil {
			return false, fmt.Errorf("failed to mark notification read: %w", err)
		}
	}
	return true, nil
}
