package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is a peer-to-peer message between a candidate and an establishment.
type Message struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	SenderID    primitive.ObjectID `json:"senderId" bson:"senderId" example:"507f1f77bcf86cd799439012"`
	RecipientID primitive.ObjectID `json:"recipientId" bson:"recipientId" example:"507f1f77bcf86cd799439013"`
	Content     string             `json:"content" bson:"content" example:"Are you available Friday evening?"`
	Read        bool               `json:"read" bson:"read" example:"false"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// SendMessageRequest is the payload for sending a message.
type SendMessageRequest struct {
	RecipientID string `json:"recipientId" binding:"required,objectid" example:"507f1f77bcf86cd799439013"`
	Content     string `json:"content" binding:"required,max=2000" example:"Are you available Friday evening?"`
}

// MessageListResponse is the response for listing the messages of a conversation.
type MessageListResponse struct {
	Items      []Message  `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// ConversationSummary is one row of the conversation overview: the peer, the
// latest message exchanged and how many of their messages are unread.
type ConversationSummary struct {
	PeerID      primitive.ObjectID `json:"peerId" bson:"_id" example:"507f1f77bcf86cd799439013"`
	LastMessage Message            `json:"lastMessage" bson:"lastMessage"`
	UnreadCount int                `json:"unreadCount" bson:"unreadCount" example:"2"`
}
