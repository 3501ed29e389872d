package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating is a score given by one party of a completed mission to the other.
type Rating struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	MissionID primitive.ObjectID `json:"missionId" bson:"missionId" example:"507f1f77bcf86cd799439012"`
	RaterID   primitive.ObjectID `json:"raterId" bson:"raterId" example:"507f1f77bcf86cd799439013"`
	RatedID   primitive.ObjectID `json:"ratedId" bson:"ratedId" example:"507f1f77bcf86cd799439014"`
	Score     int                `json:"score" bson:"score" example:"5"`
	Comment   string             `json:"comment" bson:"comment" example:"Punctual and professional"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-03-01T09:30:00Z"`
}

// CreateRatingRequest is the payload for rating the counterparty of a mission.
type CreateRatingRequest struct {
	MissionID string `json:"missionId" binding:"required,objectid" example:"507f1f77bcf86cd799439012"`
	Score     int    `json:"score" binding:"required,min=1,max=5" example:"5"`
	Comment   string `json:"comment" binding:"max=1000" example:"Punctual and professional"`
}

// RatingAverage is the derived aggregate exposed per user.
type RatingAverage struct {
	Average float64 `json:"average" bson:"average" example:"4.6"`
	Count   int     `json:"count" bson:"count" example:"17"`
}

// RatingListResponse is the response for listing ratings.
type RatingListResponse struct {
	Items      []Rating   `json:"items"`
	Pagination Pagination `json:"pagination"`
}
