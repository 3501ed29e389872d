package service

import (
	"context"

	"github.com/Malmeu/food-force-v2-sub001/internal/authz"
	"github.com/Malmeu/food-force-v2-sub001/internal/models"
	"github.com/Malmeu/food-force-v2-sub001/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationService handles business logic for notifications.
type NotificationService struct {
	repo       repository.NotificationRepository
	authorizer authz.Authorizer
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(repo repository.NotificationRepository, authorizer authz.Authorizer) *NotificationService {
	return &NotificationService{
		repo:       repo,
		authorizer: authorizer,
	}
}

// List returns the recipient's notifications with their unread count.
func (s *NotificationService) List(ctx context.Context, recipientID primitive.ObjectID, page, limit int) (*models.NotificationListResponse, error) {
	notifications, total, err := s.repo.FindByRecipient(ctx, recipientID, page, limit)
	if err != nil {
		return nil, err
	}

	unread, err := s.repo.CountUnread(ctx, recipientID)
	if err != nil {
		return nil, err
	}

	return &models.NotificationListResponse{
		Items:       notifications,
		UnreadCount: unread,
		Pagination:  models.NewPagination(page, limit, total),
	}, nil
}

// MarkRead marks one of the recipient's notifications as read.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID, recipientID primitive.ObjectID) error {
	if err := authz.Require(ctx, s.authorizer, recipientID, authz.KindNotification, notificationID, authz.RelationRecipient); err != nil {
		return err
	}

	return s.repo.MarkRead(ctx, notificationID)
}

// MarkAllRead marks all the recipient's notifications as read and returns the
// number updated.
func (s *NotificationService) MarkAllRead(ctx context.Context, recipientID primitive.ObjectID) (int, error) {
	return s.repo.MarkAllRead(ctx, recipientID)
}

// Delete removes one of the recipient's notifications.
func (s *NotificationService) Delete(ctx context.Context, notificationID, recipientID primitive.ObjectID) error {
	if err := authz.Require(ctx, s.authorizer, recipientID, authz.KindNotification, notificationID, authz.RelationRecipient); err != nil {
		return err
	}

	return s.repo.Delete(ctx, notificationID)
}
