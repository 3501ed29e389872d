package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkHoursStatus represents the review state of a work-hours entry.
type WorkHoursStatus string

const (
	// WorkHoursPending indicates the entry awaits establishment review.
	WorkHoursPending WorkHoursStatus = "pending"
	// WorkHoursValidated indicates the entry counts toward the mission's actual hours.
	WorkHoursValidated WorkHoursStatus = "validated"
	// WorkHoursRejected indicates the entry was refused with a reason.
	WorkHoursRejected WorkHoursStatus = "rejected"
)

// WorkHours is a single dated time entry logged by a candidate against a
// mission. Once validated or rejected the entry is immutable.
type WorkHours struct {
	ID              primitive.ObjectID  `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	MissionID       primitive.ObjectID  `json:"missionId" bson:"missionId" example:"507f1f77bcf86cd799439012"`
	CandidateID     primitive.ObjectID  `json:"candidateId" bson:"candidateId" example:"507f1f77bcf86cd799439013"`
	Date            time.Time           `json:"date" bson:"date" example:"2024-02-05T00:00:00Z"`
	Hours           float64             `json:"hours" bson:"hours" example:"8"`
	Description     string              `json:"description" bson:"description" example:"Evening service"`
	Status          WorkHoursStatus     `json:"status" bson:"status" example:"pending"`
	RejectionReason string              `json:"rejectionReason,omitempty" bson:"rejectionReason,omitempty"`
	ValidatedBy     *primitive.ObjectID `json:"validatedBy,omitempty" bson:"validatedBy,omitempty"`
	ValidatedAt     *time.Time          `json:"validatedAt,omitempty" bson:"validatedAt,omitempty"`
	CreatedAt       time.Time           `json:"createdAt" bson:"createdAt" example:"2024-02-05T22:10:00Z"`
	UpdatedAt       time.Time           `json:"updatedAt" bson:"updatedAt" example:"2024-02-05T22:10:00Z"`
}

// RecordWorkHoursRequest is the candidate's payload for logging a time entry.
type RecordWorkHoursRequest struct {
	MissionID   string    `json:"missionId" binding:"required,objectid" example:"507f1f77bcf86cd799439012"`
	Date        time.Time `json:"date" binding:"required" example:"2024-02-05T00:00:00Z"`
	Hours       float64   `json:"hours" binding:"required,gt=0,lte=24" example:"8"`
	Description string    `json:"description" binding:"max=1000" example:"Evening service"`
}

// RejectWorkHoursRequest carries the mandatory rejection reason.
type RejectWorkHoursRequest struct {
	Reason string `json:"reason" binding:"required,max=1000" example:"Shift was covered by another employee"`
}

// WorkHoursListResponse is the response for listing work-hours entries.
type WorkHoursListResponse struct {
	Items      []WorkHours `json:"items"`
	Pagination Pagination  `json:"pagination"`
}
