package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseApplicationStatus(t *testing.T) {
	tests := []struct {
		label string
		want  ApplicationStatus
		ok    bool
	}{
		// Canonical English labels
		{"pending", ApplicationPending, true},
		{"reviewed", ApplicationReviewed, true},
		{"interview", ApplicationInterview, true},
		{"accepted", ApplicationAccepted, true},
		{"rejected", ApplicationRejected, true},

		// Legacy French labels, accented and unaccented
		{"en attente", ApplicationPending, true},
		{"examinée", ApplicationReviewed, true},
		{"examinee", ApplicationReviewed, true},
		{"entretien", ApplicationInterview, true},
		{"acceptée", ApplicationAccepted, true},
		{"acceptee", ApplicationAccepted, true},
		{"rejetée", ApplicationRejected, true},
		{"refusée", ApplicationRejected, true},
		{"refusee", ApplicationRejected, true},

		// Case and whitespace normalization
		{"Acceptée", ApplicationAccepted, true},
		{"ACCEPTED", ApplicationAccepted, true},
		{"  pending  ", ApplicationPending, true},

		// Never matched
		{"", "", false},
		{"shortlisted", "", false},
		{"accept", "", false},
		{"acceptée!", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := ParseApplicationStatus(tt.label)
			assert.Equal(t, tt.ok, ok, "label %q", tt.label)
			if tt.ok {
				assert.Equal(t, tt.want, got, "label %q", tt.label)
			}
		})
	}
}

func TestParseMissionStatus(t *testing.T) {
	tests := []struct {
		label string
		want  MissionStatus
		ok    bool
	}{
		{"pending", MissionPending, true},
		{"in_progress", MissionInProgress, true},
		{"completed", MissionCompleted, true},
		{"cancelled", MissionCancelled, true},

		{"en attente", MissionPending, true},
		{"en cours", MissionInProgress, true},
		{"terminée", MissionCompleted, true},
		{"terminee", MissionCompleted, true},
		{"annulée", MissionCancelled, true},
		{"annulee", MissionCancelled, true},

		{"Terminée", MissionCompleted, true},
		{" in_progress ", MissionInProgress, true},

		{"", "", false},
		{"paused", "", false},
		{"in progress", "", false},
		{"canceled", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := ParseMissionStatus(tt.label)
			assert.Equal(t, tt.ok, ok, "label %q", tt.label)
			if tt.ok {
				assert.Equal(t, tt.want, got, "label %q", tt.label)
			}
		})
	}
}

func TestParsePaymentStatus(t *testing.T) {
	tests := []struct {
		label string
		want  PaymentStatus
		ok    bool
	}{
		{"pending", PaymentPending, true},
		{"processed", PaymentProcessed, true},
		{"paid", PaymentPaid, true},

		{"en attente", PaymentPending, true},
		{"traité", PaymentProcessed, true},
		{"traite", PaymentProcessed, true},
		{"payé", PaymentPaid, true},
		{"paye", PaymentPaid, true},

		{"Payé", PaymentPaid, true},
		{"  paid", PaymentPaid, true},

		{"", "", false},
		{"refunded", "", false},
		{"pay", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := ParsePaymentStatus(tt.label)
			assert.Equal(t, tt.ok, ok, "label %q", tt.label)
			if tt.ok {
				assert.Equal(t, tt.want, got, "label %q", tt.label)
			}
		})
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int
		totalPages int
	}{
		{"even split", 1, 10, 40, 4},
		{"partial last page", 2, 10, 42, 5},
		{"single item", 1, 10, 1, 1},
		{"empty", 1, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.total, p.TotalItems)
			assert.Equal(t, tt.totalPages, p.TotalPages)
		})
	}
}
