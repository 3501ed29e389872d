// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserType discriminates the two profile shapes stored in the users collection.
type UserType string

const (
	// UserTypeCandidate is a worker account that applies to jobs and logs work hours.
	UserTypeCandidate UserType = "candidate"
	// UserTypeEstablishment is an employer account that posts jobs and manages missions.
	UserTypeEstablishment UserType = "establishment"
)

// CandidateProfile holds candidate-specific profile fields.
type CandidateProfile struct {
	FirstName  string   `json:"firstName" bson:"firstName" example:"Marie"`
	LastName   string   `json:"lastName" bson:"lastName" example:"Dubois"`
	Phone      string   `json:"phone" bson:"phone" example:"+33612345678"`
	City       string   `json:"city" bson:"city" example:"Lyon"`
	Skills     []string `json:"skills" bson:"skills" example:"barista,service"`
	Experience string   `json:"experience" bson:"experience" example:"3 years in fine dining"`
	ResumeKey  string   `json:"-" bson:"resumeKey"` // S3 key, exposed via pre-signed URL only
	ResumeURL  string   `json:"resumeUrl,omitempty" bson:"-"`
}

// EstablishmentProfile holds establishment-specific profile fields.
type EstablishmentProfile struct {
	Name        string `json:"name" bson:"name" example:"Le Petit Bistro"`
	Description string `json:"description" bson:"description" example:"Traditional French bistro"`
	Address     string `json:"address" bson:"address" example:"12 rue des Halles"`
	City        string `json:"city" bson:"city" example:"Paris"`
	Phone       string `json:"phone" bson:"phone" example:"+33145678901"`
	LogoKey     string `json:"-" bson:"logoKey"`
	LogoURL     string `json:"logoUrl,omitempty" bson:"-"`
}

// User represents either a candidate or an establishment, discriminated by UserType.
// Exactly one of the two profile sub-documents is populated.
type User struct {
	ID            primitive.ObjectID    `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Email         string                `json:"email" bson:"email" example:"marie@example.com"`
	Password      string                `json:"-" bson:"password"` // "-" = never include in JSON response
	UserType      UserType              `json:"userType" bson:"userType" example:"candidate"`
	Candidate     *CandidateProfile     `json:"candidate,omitempty" bson:"candidateProfile,omitempty"`
	Establishment *EstablishmentProfile `json:"establishment,omitempty" bson:"establishmentProfile,omitempty"`
	CreatedAt     time.Time             `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt     time.Time             `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Email         string                `json:"email" binding:"required,email" example:"marie@example.com"`
	Password      string                `json:"password" binding:"required,min=6" example:"secret123"`
	UserType      UserType              `json:"userType" binding:"required,oneof=candidate establishment" example:"candidate"`
	Candidate     *CandidateProfile     `json:"candidate,omitempty"`
	Establishment *EstablishmentProfile `json:"establishment,omitempty"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"marie@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// AuthResponse is the response after successful registration or login.
type AuthResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	User  User   `json:"user"`
}

// UpdateUserRequest is the payload for updating the authenticated user's profile.
type UpdateUserRequest struct {
	Email         *string               `json:"email" binding:"omitempty,email" example:"new@example.com"`
	Candidate     *CandidateProfile     `json:"candidate,omitempty"`
	Establishment *EstablishmentProfile `json:"establishment,omitempty"`
}

// DocumentUploadRequest asks for a pre-signed upload URL for a profile document.
type DocumentUploadRequest struct {
	Kind        string `json:"kind" binding:"required,oneof=resume logo" example:"resume"`
	ContentType string `json:"contentType" binding:"required" example:"application/pdf"`
}

// DocumentUploadResponse carries the pre-signed upload URL and the stored key.
type DocumentUploadResponse struct {
	Key       string `json:"key" example:"documents/507f.../resume.pdf"`
	UploadURL string `json:"uploadUrl" example:"https://bucket.s3.amazonaws.com/...?X-Amz-Signature=..."`
}
