package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatus represents the settlement state of a payment. Transitions are
// monotonic: pending → processed → paid, and paid is terminal.
type PaymentStatus string

const (
	// PaymentPending indicates the payment was created but not yet processed.
	PaymentPending PaymentStatus = "pending"
	// PaymentProcessed indicates the transfer has been initiated.
	PaymentProcessed PaymentStatus = "processed"
	// PaymentPaid indicates the candidate has been paid. Terminal.
	PaymentPaid PaymentStatus = "paid"
)

var paymentStatusLabels = map[string]PaymentStatus{
	"pending":    PaymentPending,
	"en attente": PaymentPending,
	"processed":  PaymentProcessed,
	"traité":     PaymentProcessed,
	"traite":     PaymentProcessed,
	"paid":       PaymentPaid,
	"payé":       PaymentPaid,
	"paye":       PaymentPaid,
}

// ParsePaymentStatus normalizes a client-supplied status label (English or
// legacy French) to its canonical value.
func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	status, ok := paymentStatusLabels[strings.ToLower(strings.TrimSpace(s))]
	return status, ok
}

// PaymentMethod is how the settlement is made.
type PaymentMethod string

const (
	PaymentBankTransfer  PaymentMethod = "bank_transfer"
	PaymentCash          PaymentMethod = "cash"
	PaymentMobilePayment PaymentMethod = "mobile_payment"
	PaymentCheck         PaymentMethod = "check"
)

// Period is the date range a payment covers.
type Period struct {
	Start time.Time `json:"start" bson:"start" example:"2024-02-01T00:00:00Z"`
	End   time.Time `json:"end" bson:"end" example:"2024-02-15T00:00:00Z"`
}

// Payment is a settlement record for hours worked on a mission. The claimed
// hoursWorked never exceeds the validated work-hours total for the period;
// the precondition is checked on every creation path.
type Payment struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	MissionID      primitive.ObjectID `json:"missionId" bson:"missionId" example:"507f1f77bcf86cd799439012"`
	EmployerID     primitive.ObjectID `json:"employerId" bson:"employerId" example:"507f1f77bcf86cd799439013"`
	CandidateID    primitive.ObjectID `json:"candidateId" bson:"candidateId" example:"507f1f77bcf86cd799439014"`
	JobID          primitive.ObjectID `json:"jobId,omitempty" bson:"jobId,omitempty" example:"507f1f77bcf86cd799439015"`
	Amount         float64            `json:"amount" bson:"amount" example:"620"`
	HoursWorked    float64            `json:"hoursWorked" bson:"hoursWorked" example:"40"`
	Period         Period             `json:"period" bson:"period"`
	PaymentMethod  PaymentMethod      `json:"paymentMethod" bson:"paymentMethod" example:"bank_transfer"`
	PaymentDetails string             `json:"paymentDetails,omitempty" bson:"paymentDetails,omitempty" example:"IBAN FR76..."`
	Status         PaymentStatus      `json:"status" bson:"status" example:"pending"`
	InvoiceNumber  string             `json:"invoiceNumber" bson:"invoiceNumber" example:"INV-1706520000000-4821"`
	DueDate        *time.Time         `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	PaymentDate    *time.Time         `json:"paymentDate,omitempty" bson:"paymentDate,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt" example:"2024-02-16T09:30:00Z"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-02-16T09:30:00Z"`
}

// CreateMissionPaymentRequest is the payload for creating a mission-scoped payment.
type CreateMissionPaymentRequest struct {
	MissionID      string        `json:"missionId" binding:"required,objectid" example:"507f1f77bcf86cd799439012"`
	Amount         float64       `json:"amount" binding:"required,gt=0" example:"620"`
	HoursWorked    float64       `json:"hoursWorked" binding:"required,gt=0" example:"40"`
	PeriodStart    time.Time     `json:"periodStart" binding:"required" example:"2024-02-01T00:00:00Z"`
	PeriodEnd      time.Time     `json:"periodEnd" binding:"required,gtfield=PeriodStart" example:"2024-02-15T00:00:00Z"`
	PaymentMethod  PaymentMethod `json:"paymentMethod" binding:"required,oneof=bank_transfer cash mobile_payment check" example:"bank_transfer"`
	PaymentDetails string        `json:"paymentDetails" binding:"max=500" example:"IBAN FR76..."`
	DueDate        *time.Time    `json:"dueDate,omitempty"`
}

// UpdatePaymentStatusRequest advances a payment's status. The label is
// normalized through ParsePaymentStatus.
type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required" example:"processed"`
}

// PaymentListResponse is the response for listing payments.
type PaymentListResponse struct {
	Items      []Payment  `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// PaymentStatusTotal aggregates payments sharing a status.
type PaymentStatusTotal struct {
	Status PaymentStatus `json:"status" bson:"_id" example:"paid"`
	Count  int           `json:"count" bson:"count" example:"12"`
	Amount float64       `json:"amount" bson:"amount" example:"7440"`
}

// PaymentMonthTotal aggregates payments by creation month (YYYY-MM).
type PaymentMonthTotal struct {
	Month  string  `json:"month" bson:"_id" example:"2024-02"`
	Count  int     `json:"count" bson:"count" example:"4"`
	Amount float64 `json:"amount" bson:"amount" example:"2480"`
}

// EmployerPaymentStats is the aggregate view behind GET /payments/employer/stats.
type EmployerPaymentStats struct {
	TotalAmount float64              `json:"totalAmount" example:"7440"`
	TotalCount  int                  `json:"totalCount" example:"12"`
	ByStatus    []PaymentStatusTotal `json:"byStatus"`
	ByMonth     []PaymentMonthTotal  `json:"byMonth"`
}
