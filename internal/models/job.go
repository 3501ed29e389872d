package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobStatus represents the publication state of a job posting.
type JobStatus string

const (
	// JobStatusActive indicates the job accepts applications.
	JobStatusActive JobStatus = "active"
	// JobStatusInactive indicates the job is closed to new applications.
	JobStatusInactive JobStatus = "inactive"
	// JobStatusDraft indicates the job is not yet published.
	JobStatusDraft JobStatus = "draft"
)

// Location is where the job takes place.
type Location struct {
	City    string `json:"city" bson:"city" binding:"required" example:"Paris"`
	Address string `json:"address" bson:"address" example:"12 rue des Halles"`
}

// Salary describes the offered compensation.
type Salary struct {
	Amount   float64 `json:"amount" bson:"amount" binding:"required,gt=0" example:"14.5"`
	Period   string  `json:"period" bson:"period" binding:"required,oneof=hour day month" example:"hour"`
	Currency string  `json:"currency" bson:"currency" example:"EUR"`
}

// Job represents a job posting owned by an establishment.
type Job struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	EstablishmentID primitive.ObjectID `json:"establishmentId" bson:"establishmentId" example:"507f1f77bcf86cd799439012"`
	Title           string             `json:"title" bson:"title" example:"Chef de partie"`
	Description     string             `json:"description" bson:"description" example:"Evening service, 5 days a week"`
	ContractType    string             `json:"contractType" bson:"contractType" example:"CDI"`
	Sector          string             `json:"sector" bson:"sector" example:"restaurant"`
	Location        Location           `json:"location" bson:"location"`
	Salary          Salary             `json:"salary" bson:"salary"`
	RequiredSkills  []string           `json:"requiredSkills" bson:"requiredSkills" example:"grill,pastry"`
	Schedule        string             `json:"schedule" bson:"schedule" example:"18:00-01:00"`
	Status          JobStatus          `json:"status" bson:"status" example:"active"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// CreateJobRequest is the payload for creating a job posting.
type CreateJobRequest struct {
	Title          string    `json:"title" binding:"required,min=2,max=200" example:"Chef de partie"`
	Description    string    `json:"description" binding:"required,max=5000" example:"Evening service"`
	ContractType   string    `json:"contractType" binding:"required" example:"CDI"`
	Sector         string    `json:"sector" binding:"required" example:"restaurant"`
	Location       Location  `json:"location" binding:"required"`
	Salary         Salary    `json:"salary" binding:"required"`
	RequiredSkills []string  `json:"requiredSkills" binding:"max=20,dive,max=50"`
	Schedule       string    `json:"schedule" example:"18:00-01:00"`
	Status         JobStatus `json:"status" binding:"omitempty,oneof=active inactive draft" example:"active"`
}

// UpdateJobRequest is the payload for updating a job posting.
type UpdateJobRequest struct {
	Title          *string    `json:"title" binding:"omitempty,min=2,max=200"`
	Description    *string    `json:"description" binding:"omitempty,max=5000"`
	ContractType   *string    `json:"contractType"`
	Sector         *string    `json:"sector"`
	Location       *Location  `json:"location"`
	Salary         *Salary    `json:"salary"`
	RequiredSkills []string   `json:"requiredSkills" binding:"max=20,dive,max=50"`
	Schedule       *string    `json:"schedule"`
	Status         *JobStatus `json:"status" binding:"omitempty,oneof=active inactive draft"`
}

// JobFilter narrows public job searches.
type JobFilter struct {
	City         string `form:"city" example:"Paris"`
	ContractType string `form:"contractType" example:"CDI"`
	Sector       string `form:"sector" example:"restaurant"`
}

// JobListResponse is the response for listing jobs.
type JobListResponse struct {
	Items      []Job      `json:"items"`
	Pagination Pagination `json:"pagination"`
}
