package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplicationStatus is the closed set of application states. Only canonical
// values are ever stored; the French labels used by older clients are accepted
// at the API boundary through ParseApplicationStatus.
type ApplicationStatus string

const (
	// ApplicationPending indicates the application awaits review.
	ApplicationPending ApplicationStatus = "pending"
	// ApplicationReviewed indicates the establishment has reviewed the application.
	ApplicationReviewed ApplicationStatus = "reviewed"
	// ApplicationInterview indicates the candidate is invited to an interview.
	ApplicationInterview ApplicationStatus = "interview"
	// ApplicationAccepted indicates the candidate was accepted; a mission can be created.
	ApplicationAccepted ApplicationStatus = "accepted"
	// ApplicationRejected indicates the candidate was turned down.
	ApplicationRejected ApplicationStatus = "rejected"
)

// applicationStatusLabels maps incoming labels (lowercased) to canonical statuses.
// Both accented and unaccented French spellings appear in legacy data.
var applicationStatusLabels = map[string]ApplicationStatus{
	"pending":    ApplicationPending,
	"en attente": ApplicationPending,
	"reviewed":   ApplicationReviewed,
	"examinée":   ApplicationReviewed,
	"examinee":   ApplicationReviewed,
	"interview":  ApplicationInterview,
	"entretien":  ApplicationInterview,
	"accepted":   ApplicationAccepted,
	"acceptée":   ApplicationAccepted,
	"acceptee":   ApplicationAccepted,
	"rejected":   ApplicationRejected,
	"rejetée":    ApplicationRejected,
	"rejetee":    ApplicationRejected,
	"refusée":    ApplicationRejected,
	"refusee":    ApplicationRejected,
}

// ParseApplicationStatus normalizes a client-supplied status label to its
// canonical value. It is the migration shim for the bilingual labels found in
// legacy data; matching is exact (case-insensitive), never by substring.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	status, ok := applicationStatusLabels[strings.ToLower(strings.TrimSpace(s))]
	return status, ok
}

// Application links a candidate to a job posting.
type Application struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	JobID       primitive.ObjectID `json:"jobId" bson:"jobId" example:"507f1f77bcf86cd799439012"`
	CandidateID primitive.ObjectID `json:"candidateId" bson:"candidateId" example:"507f1f77bcf86cd799439013"`
	CoverLetter string             `json:"coverLetter" bson:"coverLetter" example:"I have three years of experience..."`
	Status      ApplicationStatus  `json:"status" bson:"status" example:"pending"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// CreateApplicationRequest is the payload for applying to a job.
type CreateApplicationRequest struct {
	JobID       string `json:"jobId" binding:"required,objectid" example:"507f1f77bcf86cd799439012"`
	CoverLetter string `json:"coverLetter" binding:"max=5000" example:"I have three years of experience..."`
}

// UpdateApplicationStatusRequest is the payload for changing an application's status.
// The status label is normalized through ParseApplicationStatus.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required" example:"accepted"`
}

// ApplicationListResponse is the response for listing applications.
type ApplicationListResponse struct {
	Items      []Application `json:"items"`
	Pagination Pagination    `json:"pagination"`
}
