package repository

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/Malmeu/food-force-v2-sub001/internal/errors"
	"github.com/Malmeu/food-force-v2-sub001/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newPayment(employerID primitive.ObjectID, amount float64, status models.PaymentStatus) *models.Payment {
	return &models.Payment{
		MissionID:     primitive.NewObjectID(),
		EmployerID:    employerID,
		CandidateID:   primitive.NewObjectID(),
		Amount:        amount,
		HoursWorked:   amount / 15.5,
		Period:        models.Period{Start: time.Now().AddDate(0, 0, -14), End: time.Now()},
		PaymentMethod: models.PaymentBankTransfer,
		Status:        status,
		InvoiceNumber: "INV-1706520000000-4821",
	}
}

func TestPaymentRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewPaymentRepository(tdb.Database)
	ctx := context.Background()

	t.Run("creates payment with generated ID", func(t *testing.T) {
		tdb.ClearCollection(t, "payments")

		payment := newPayment(primitive.NewObjectID(), 620, models.PaymentPending)

		err := repo.Create(ctx, payment)

		require.NoError(t, err)
		assert.False(t, payment.ID.IsZero())
		assert.NotZero(t, payment.CreatedAt)
	})
}

func TestPaymentRepository_FindByMission(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewPaymentRepository(tdb.Database)
	ctx := context.Background()

	t.Run("returns only the mission's payments", func(t *testing.T) {
		tdb.ClearCollection(t, "payments")

		missionID := primitive.NewObjectID()

		p1 := newPayment(primitive.NewObjectID(), 100, models.PaymentPending)
		p1.MissionID = missionID
		p2 := newPayment(primitive.NewObjectID(), 200, models.PaymentPending)
		p2.MissionID = missionID
		other := newPayment(primitive.NewObjectID(), 300, models.PaymentPending)
		require.NoError(t, repo.Create(ctx, p1))
		require.NoError(t, repo.Create(ctx, p2))
		require.NoError(t, repo.Create(ctx, other))

		payments, total, err := repo.FindByMission(ctx, missionID, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, payments, 2)
	})

	t.Run("returns empty slice when no payments", func(t *testing.T) {
		tdb.ClearCollection(t, "payments")

		payments, total, err := repo.FindByMission(ctx, primitive.NewObjectID(), 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.NotNil(t, payments)
		assert.Len(t, payments, 0)
	})
}

func TestPaymentRepository_UpdateStatus(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewPaymentRepository(tdb.Database)
	ctx := context.Background()

	t.Run("updates status without payment date", func(t *testing.T) {
		tdb.ClearCollection(t, "payments")

		payment := newPayment(primitive.NewObjectID(), 620, models.PaymentPending)
		require.NoError(t, repo.Create(ctx, payment))

		updated, err := repo.UpdateStatus(ctx, payment.ID, models.PaymentProcessed, nil)

		require.NoError(t, err)
		assert.Equal(t, models.PaymentProcessed, updated.Status)
		assert.Nil(t, updated.PaymentDate)
	})

	t.Run("stamps payment date when provided", func(t *testing.T) {
		tdb.ClearCollection(t, "payments")

		payment := newPayment(primitive.NewObjectID(), 620, models.PaymentProcessed)
		require.NoError(t, repo.Create(ctx, payment))

		now := time.Now()
		updated, err := repo.UpdateStatus(ctx, payment.ID, models.PaymentPaid, &now)

		require.NoError(t, err)
		assert.Equal(t, models.PaymentPaid, updated.Status)
		require.NotNil(t, updated.PaymentDate)
		assert.WithinDuration(t, now, *updated.PaymentDate, time.Second)
	})

	t.Run("returns error for non-existent payment", func(t *testing.T) {
		tdb.ClearCollection(t, "payments")

		updated, err := repo.UpdateStatus(ctx, primitive.NewObjectID(), models.PaymentPaid, nil)

		assert.Nil(t, updated)
		assert.Equal(t, apperrors.ErrPaymentNotFound, err)
	})
}

func TestPaymentRepository_EmployerStats(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewPaymentRepository(tdb.Database)
	ctx := context.Background()

	t.Run("aggregates by status with grand totals", func(t *testing.T) {
		tdb.ClearCollection(t, "payments")

		employerID := primitive.NewObjectID()

		require.NoError(t, repo.Create(ctx, newPayment(employerID, 100, models.PaymentPending)))
		require.NoError(t, repo.Create(ctx, newPayment(employerID, 200, models.PaymentPending)))
		require.NoError(t, repo.Create(ctx, newPayment(employerID, 300, models.PaymentPaid)))
		// Another employer's payment must not count
		require.NoError(t, repo.Create(ctx, newPayment(primitive.NewObjectID(), 999, models.PaymentPaid)))

		stats, err := repo.EmployerStats(ctx, employerID)

		require.NoError(t, err)
		assert.Equal(t, float64(600), stats.TotalAmount)
		assert.Equal(t, 3, stats.TotalCount)

		byStatus := map[models.PaymentStatus]models.PaymentStatusTotal{}
		for _, s := range stats.ByStatus {
			byStatus[s.Status] = s
		}
		assert.Equal(t, 2, byStatus[models.PaymentPending].Count)
		assert.Equal(t, float64(300), byStatus[models.PaymentPending].Amount)
		assert.Equal(t, 1, byStatus[models.PaymentPaid].Count)
		assert.Equal(t, float64(300), byStatus[models.PaymentPaid].Amount)
	})

	t.Run("groups by creation month", func(t *testing.T) {
		tdb.ClearCollection(t, "payments")

		employerID := primitive.NewObjectID()

		require.NoError(t, repo.Create(ctx, newPayment(employerID, 150, models.PaymentPending)))
		require.NoError(t, repo.Create(ctx, newPayment(employerID, 250, models.PaymentPending)))

		stats, err := repo.EmployerStats(ctx, employerID)

		require.NoError(t, err)
		require.Len(t, stats.ByMonth, 1, "both payments created this month")
		assert.Equal(t, time.Now().UTC().Format("2006-01"), stats.ByMonth[0].Month)
		assert.Equal(t, 2, stats.ByMonth[0].Count)
		assert.Equal(t, float64(400), stats.ByMonth[0].Amount)
	})

	t.Run("returns empty aggregates for employer with no payments", func(t *testing.T) {
		tdb.ClearCollection(t, "payments")

		stats, err := repo.EmployerStats(ctx, primitive.NewObjectID())

		require.NoError(t, err)
		assert.Equal(t, float64(0), stats.TotalAmount)
		assert.Equal(t, 0, stats.TotalCount)
		assert.NotNil(t, stats.ByStatus)
		assert.Len(t, stats.ByStatus, 0)
		assert.NotNil(t, stats.ByMonth)
		assert.Len(t, stats.ByMonth, 0)
	})
}
