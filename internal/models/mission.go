package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MissionStatus represents the lifecycle state of a mission.
type MissionStatus string

const (
	// MissionPending indicates the mission has not started yet.
	MissionPending MissionStatus = "pending"
	// MissionInProgress indicates the candidate has started working.
	MissionInProgress MissionStatus = "in_progress"
	// MissionCompleted indicates all work is done.
	MissionCompleted MissionStatus = "completed"
	// MissionCancelled indicates the establishment cancelled the mission.
	MissionCancelled MissionStatus = "cancelled"
)

// MissionPriority orders missions in establishment views.
type MissionPriority string

const (
	PriorityLow    MissionPriority = "low"
	PriorityMedium MissionPriority = "medium"
	PriorityHigh   MissionPriority = "high"
)

var missionStatusLabels = map[string]MissionStatus{
	"pending":     MissionPending,
	"en attente":  MissionPending,
	"in_progress": MissionInProgress,
	"en cours":    MissionInProgress,
	"completed":   MissionCompleted,
	"terminée":    MissionCompleted,
	"terminee":    MissionCompleted,
	"cancelled":   MissionCancelled,
	"annulée":     MissionCancelled,
	"annulee":     MissionCancelled,
}

// ParseMissionStatus normalizes a client-supplied status label (English or
// legacy French) to its canonical value.
func ParseMissionStatus(s string) (MissionStatus, bool) {
	status, ok := missionStatusLabels[strings.ToLower(strings.TrimSpace(s))]
	return status, ok
}

// Mission is the authoritative work assignment created from an accepted
// application. ActualHours is derived: it always equals the sum of validated
// work-hours entries for the mission and is recomputed from that aggregate
// after every entry transition.
type Mission struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Title           string             `json:"title" bson:"title" example:"Service renfort février"`
	Description     string             `json:"description" bson:"description" example:"Evening reinforcement for the winter season"`
	EstablishmentID primitive.ObjectID `json:"establishmentId" bson:"establishmentId" example:"507f1f77bcf86cd799439012"`
	CandidateID     primitive.ObjectID `json:"candidateId" bson:"candidateId" example:"507f1f77bcf86cd799439013"`
	ApplicationID   primitive.ObjectID `json:"applicationId" bson:"applicationId" example:"507f1f77bcf86cd799439014"`
	StartDate       time.Time          `json:"startDate" bson:"startDate" example:"2024-02-01T00:00:00Z"`
	EndDate         time.Time          `json:"endDate" bson:"endDate" example:"2024-02-29T00:00:00Z"`
	Status          MissionStatus      `json:"status" bson:"status" example:"pending"`
	Priority        MissionPriority    `json:"priority" bson:"priority" example:"medium"`
	HourlyRate      float64            `json:"hourlyRate" bson:"hourlyRate" example:"15.5"`
	EstimatedHours  float64            `json:"estimatedHours" bson:"estimatedHours" example:"120"`
	ActualHours     float64            `json:"actualHours" bson:"actualHours" example:"96"`
	Notes           string             `json:"notes" bson:"notes" example:"Uniform provided"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// CreateMissionRequest is the payload for creating a mission from an accepted application.
type CreateMissionRequest struct {
	Title          string          `json:"title" binding:"required,min=2,max=200" example:"Service renfort février"`
	Description    string          `json:"description" binding:"required,max=5000" example:"Evening reinforcement"`
	CandidateID    string          `json:"candidateId" binding:"required,objectid" example:"507f1f77bcf86cd799439013"`
	ApplicationID  string          `json:"applicationId" binding:"required,objectid" example:"507f1f77bcf86cd799439014"`
	StartDate      time.Time       `json:"startDate" binding:"required" example:"2024-02-01T00:00:00Z"`
	EndDate        time.Time       `json:"endDate" binding:"required,gtfield=StartDate" example:"2024-02-29T00:00:00Z"`
	HourlyRate     float64         `json:"hourlyRate" binding:"required,gt=0" example:"15.5"`
	EstimatedHours float64         `json:"estimatedHours" binding:"required,gt=0" example:"120"`
	Priority       MissionPriority `json:"priority" binding:"omitempty,oneof=low medium high" example:"medium"`
	Notes          string          `json:"notes" binding:"max=2000" example:"Uniform provided"`
}

// UpdateMissionRequest is the establishment's generic mission update payload.
type UpdateMissionRequest struct {
	Title          *string          `json:"title" binding:"omitempty,min=2,max=200"`
	Description    *string          `json:"description" binding:"omitempty,max=5000"`
	StartDate      *time.Time       `json:"startDate"`
	EndDate        *time.Time       `json:"endDate"`
	Status         *string          `json:"status"`
	Priority       *MissionPriority `json:"priority" binding:"omitempty,oneof=low medium high"`
	HourlyRate     *float64         `json:"hourlyRate" binding:"omitempty,gt=0"`
	EstimatedHours *float64         `json:"estimatedHours" binding:"omitempty,gt=0"`
	Notes          *string          `json:"notes" binding:"omitempty,max=2000"`
}

// UpdateMissionStatusRequest is the candidate's restricted status transition payload.
type UpdateMissionStatusRequest struct {
	Status string `json:"status" binding:"required" example:"in_progress"`
}

// MissionListResponse is the response for listing missions.
type MissionListResponse struct {
	Items      []Mission  `json:"items"`
	Pagination Pagination `json:"pagination"`
}
