package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationType tags the entity a notification relates to.
type NotificationType string

const (
	NotificationJob         NotificationType = "job"
	NotificationApplication NotificationType = "application"
	NotificationMessage     NotificationType = "message"
	NotificationPayment     NotificationType = "payment"
	NotificationMission     NotificationType = "mission"
	NotificationRating      NotificationType = "rating"
	NotificationSystem      NotificationType = "system"
)

// Notification is a recipient-scoped log entry written as a best-effort side
// effect of other entities' mutations.
type Notification struct {
	ID          primitive.ObjectID  `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	RecipientID primitive.ObjectID  `json:"recipientId" bson:"recipientId" example:"507f1f77bcf86cd799439012"`
	Type        NotificationType    `json:"type" bson:"type" example:"mission"`
	Title       string              `json:"title" bson:"title" example:"New mission"`
	Message     string              `json:"message" bson:"message" example:"You have been assigned to Service renfort février"`
	Read        bool                `json:"read" bson:"read" example:"false"`
	RelatedID   *primitive.ObjectID `json:"relatedId,omitempty" bson:"relatedId,omitempty"`
	RelatedKind string              `json:"relatedKind,omitempty" bson:"relatedKind,omitempty" example:"mission"`
	CreatedAt   time.Time           `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// NotificationListResponse is the response for listing notifications.
type NotificationListResponse struct {
	Items       []Notification `json:"items"`
	UnreadCount int            `json:"unreadCount" example:"3"`
	Pagination  Pagination     `json:"pagination"`
}
