package service

import (
	"context"

	apperrors "github.com/Malmeu/food-force-v2-sub001/internal/errors"
	"github.com/Malmeu/food-force-v2-sub001/internal/models"
	"github.com/Malmeu/food-force-v2-sub001/internal/queue"
	"github.com/Malmeu/food-force-v2-sub001/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MessageService handles business logic for messaging.
type MessageService struct {
	repo     repository.MessageRepository
	userRepo repository.UserRepository
	notifier EventNotifier
}

// NewMessageService creates a new MessageService.
func NewMessageService(repo repository.MessageRepository, userRepo repository.UserRepository, notifier EventNotifier) *MessageService {
	return &MessageService{
		repo:     repo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

// Send delivers a message to another user.
func (s *MessageService) Send(ctx context.Context, senderID primitive.ObjectID, req *models.SendMessageRequest) (*models.Message, error) {
	recipientID, err := primitive.ObjectIDFromHex(req.RecipientID)
	if err != nil {
		return nil, apperrors.ErrRecipientNotFound
	}
	if recipientID == senderID {
		return nil, apperrors.ErrMessageToSelf
	}

	if _, err := s.userRepo.FindByID(ctx, recipientID); err != nil {
		return nil, apperrors.ErrRecipientNotFound
	}

	message := &models.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     req.Content,
	}

	if err := s.repo.Create(ctx, message); err != nil {
		return nil, err
	}

	s.notifier.Notify(queue.NotificationEvent{
		RecipientID: recipientID,
		Type:        models.NotificationMessage,
		Title:       "New message",
		Message:     "You have received a new message",
		RelatedID:   message.ID,
		RelatedKind: "message",
	})

	return message, nil
}

// GetConversation returns the messages exchanged with a peer and marks the
// peer's messages as read.
func (s *MessageService) GetConversation(ctx context.Context, userID, peerID primitive.ObjectID, page, limit int) (*models.MessageListResponse, error) {
	messages, total, err := s.repo.FindConversation(ctx, userID, peerID, page, limit)
	if err != nil {
		return nil, err
	}

	// Opening the conversation counts as reading it.
	if _, err := s.repo.MarkConversationRead(ctx, userID, peerID); err != nil {
		return nil, err
	}

	return &models.MessageListResponse{
		Items:      messages,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// ListConversations returns the user's conversation overview.
func (s *MessageService) ListConversations(ctx context.Context, userID primitive.ObjectID) ([]models.ConversationSummary, error) {
	return s.repo.ListConversations(ctx, userID)
}
