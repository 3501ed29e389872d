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

func TestNewWorkHoursRepository(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewWorkHoursRepository(tdb.Database)

	assert.NotNil(t, repo)
}

func newPendingEntry(missionID, candidateID primitive.ObjectID, date time.Time, hours float64) *models.WorkHours {
	return &models.WorkHours{
		MissionID:   missionID,
		CandidateID: candidateID,
		Date:        date,
		Hours:       hours,
		Description: "Evening service",
		Status:      models.WorkHoursPending,
	}
}

func TestWorkHoursRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewWorkHoursRepository(tdb.Database)
	ctx := context.Background()

	t.Run("creates entry with generated ID and timestamps", func(t *testing.T) {
		tdb.ClearCollection(t, "work_hours")

		entry := newPendingEntry(primitive.NewObjectID(), primitive.NewObjectID(), time.Now(), 8)

		err := repo.Create(ctx, entry)

		require.NoError(t, err)
		assert.False(t, entry.ID.IsZero())
		assert.NotZero(t, entry.CreatedAt)
		assert.NotZero(t, entry.UpdatedAt)
	})
}

func TestWorkHoursRepository_FindByID(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewWorkHoursRepository(tdb.Database)
	ctx := context.Background()

	t.Run("finds existing entry", func(t *testing.T) {
		tdb.ClearCollection(t, "work_hours")

		entry := newPendingEntry(primitive.NewObjectID(), primitive.NewObjectID(), time.Now(), 6)
		require.NoError(t, repo.Create(ctx, entry))

		found, err := repo.FindByID(ctx, entry.ID)

		require.NoError(t, err)
		assert.Equal(t, entry.ID, found.ID)
		assert.Equal(t, float64(6), found.Hours)
	})

	t.Run("returns error for non-existent entry", func(t *testing.T) {
		tdb.ClearCollection(t, "work_hours")

		found, err := repo.FindByID(ctx, primitive.NewObjectID())

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrWorkHoursNotFound, err)
	})
}

func TestWorkHoursRepository_FindByMission(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewWorkHoursRepository(tdb.Database)
	ctx := context.Background()

	t.Run("returns paginated entries for mission", func(t *testing.T) {
		tdb.ClearCollection(t, "work_hours")

		missionID := primitive.NewObjectID()
		candidateID := primitive.NewObjectID()

		for i := 0; i < 5; i++ {
			entry := newPendingEntry(missionID, candidateID, time.Now().AddDate(0, 0, -i), 4)
			require.NoError(t, repo.Create(ctx, entry))
		}
		// Entry on another mission must not leak in
		other := newPendingEntry(primitive.NewObjectID(), candidateID, time.Now(), 4)
		require.NoError(t, repo.Create(ctx, other))

		entries, total, err := repo.FindByMission(ctx, missionID, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Len(t, entries, 5)
	})

	t.Run("sorts by date descending", func(t *testing.T) {
		tdb.ClearCollection(t, "work_hours")

		missionID := primitive.NewObjectID()
		candidateID := primitive.NewObjectID()

		old := newPendingEntry(missionID, candidateID, time.Now().AddDate(0, 0, -3), 4)
		recent := newPendingEntry(missionID, candidateID, time.Now(), 8)
		require.NoError(t, repo.Create(ctx, old))
		require.NoError(t, repo.Create(ctx, recent))

		entries, _, err := repo.FindByMission(ctx, missionID, 1, 10)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, recent.ID, entries[0].ID)
	})

	t.Run("returns empty slice when no entries", func(t *testing.T) {
		tdb.ClearCollection(t, "work_hours")

		entries, total, err := repo.FindByMission(ctx, primitive.NewObjectID(), 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.NotNil(t, entries)
		assert.Len(t, entries, 0)
	})
}

func TestWorkHoursRepository_Validate(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewWorkHoursRepository(tdb.Database)
	ctx := context.Background()

	t.Run("validates pending entry", func(t *testing.T) {
		tdb.ClearCollection(t, "work_hours")

		entry := newPendingEntry(primitive.NewObjectID(), primitive.NewObjectID(), time.Now(), 8)
		require.NoError(t, repo.Create(ctx, entry))

		validatorID := primitive.NewObjectID()
		validated, err := repo.Validate(ctx, entry.ID, validatorID)

		require.NoError(t, err)
		assert.Equal(t, models.WorkHoursValidated, validated.Status)
		require.NotNil(t, validated.ValidatedBy)
		assert.Equal(t, validatorID, *validated.ValidatedBy)
		assert.NotNil(t, validated.ValidatedAt)
	})

	t.Run("refuses to validate twice", func(t *testing.T) {
		tdb.ClearCollection(t, "work_hours")

		entry := newPendingEntry(primitive.NewObjectID(), primitive.NewObjectID(), time.Now(), 8)
		require.NoError(t, repo.Create(ctx, entry))

		_, err := repo.Validate(ctx, entry.ID, primitive.NewObjectID())
		require.NoError(t, err)

		validated, err := repo.Validate(ctx, entry.ID, primitive.NewObjectID())

		assert.Nil(t, validated)
		assert.Equal(t, apperrors.ErrWorkHoursAlreadyReviewed, err)
	})

	t.Run("refuses to validate a rejected entry", func(t *testing.T) {
		tdb.ClearCollection(t, "work_hours")

		entry := newPendingEntry(primitive.NewObjectID(), primitive.NewObjectID(), time.Now(), 8)
		require.NoError(t, repo.Create(ctx, entry))

		_, err := repo.Reject(ctx, entry.ID, primitive.NewObjectID(), "shift was covered")
		require.NoError(t, err)

		validated, err := repo.Validate(ctx, entry.ID, primitive.NewObjectID())

		assert.Nil(t, validated)
		assert.Equal(t, apperrors.ErrWorkHoursAlreadyReviewed, err)
	})

	t.Run("returns error for non-existent entry", func(t *testing.T) {
		tdb.ClearCollection(t, "work_hours")

		validated, err := repo.Validate(ctx, primitive.NewObjectID(), primitive.NewObjectID())

		assert.Nil(t, validated)
		assert.Equal(t, apperrors.ErrWorkHoursNotFound, err)
	})
}

func TestWorkHoursRepository_Reject(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewWorkHoursRepository(tdb.Database)
	ctx := context.Background()

	t.Run("rejects pending entry with reason", func(t *testing.T) {
		tdb.ClearCollection(t, "work_hours")

		entry := newPendingEntry(primitive.NewObjectID(), primitive.NewObjectID(), time.Now(), 8)
		require.NoError(t, repo.Create(ctx, entry))

		rejected, err := repo.Reject(ctx, entry.ID, primitive.NewObjectID(), "shift was covered")

		require.NoError(t, err)
		assert.Equal(t, models.WorkHoursRejected, rejected.Status)
		assert.Equal(t, "shift was covered", rejected.RejectionReason)
	})

	t.Run("refuses to reject twice", func(t *testing.T) {
		tdb.ClearCollection(t, "work_hours")

		entry := newPendingEntry(primitive.NewObjectID(), primitive.NewObjectID(), time.Now(), 8)
		require.NoError(t, repo.Create(ctx, entry))

		_, err := repo.Reject(ctx, entry.ID, primitive.NewObjectID(), "first")
		require.NoError(t, err)

		rejected, err := repo.Reject(ctx, entry.ID, primitive.NewObjectID(), "second")

		assert.Nil(t, rejected)
		assert.Equal(t, apperrors.ErrWorkHoursAlreadyReviewed, err)
	})
}

func TestWorkHoursRepository_SumValidatedHours(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewWorkHoursRepository(tdb.Database)
	ctx := context.Background()

	t.Run("sums only validated entries", func(t *testing.T) {
		tdb.ClearCollection(t, "work_hours")

		missionID := primitive.NewObjectID()
		candidateID := primitive.NewObjectID()
		validatorID := primitive.NewObjectID()

		e1 := newPendingEntry(missionID, candidateID, time.Now().AddDate(0, 0, -2), 6)
		e2 := newPendingEntry(missionID, candidateID, time.Now().AddDate(0, 0, -1), 4)
		e3 := newPendingEntry(missionID, candidateID, time.Now(), 5)
		require.NoError(t, repo.Create(ctx, e1))
		require.NoError(t, repo.Create(ctx, e2))
		require.NoError(t, repo.Create(ctx, e3))

		_, err := repo.Validate(ctx, e1.ID, validatorID)
		require.NoError(t, err)
		_, err = repo.Validate(ctx, e2.ID, validatorID)
		require.NoError(t, err)
		_, err = repo.Reject(ctx, e3.ID, validatorID, "duplicate entry")
		require.NoError(t, err)

		total, err := repo.SumValidatedHours(ctx, missionID)

		require.NoError(t, err)
		assert.Equal(t, float64(10), total)
	})

	t.Run("returns zero when nothing is validated", func(t *testing.T) {
		tdb.ClearCollection(t, "work_hours")

		total, err := repo.SumValidatedHours(ctx, primitive.NewObjectID())

		require.NoError(t, err)
		assert.Equal(t, float64(0), total)
	})
}

func TestWorkHoursRepository_SumValidatedHoursInPeriod(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewWorkHoursRepository(tdb.Database)
	ctx := context.Background()

	t.Run("counts only entries dated within the period", func(t *testing.T) {
		tdb.ClearCollection(t, "work_hours")

		missionID := primitive.NewObjectID()
		candidateID := primitive.NewObjectID()
		validatorID := primitive.NewObjectID()

		base := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

		inside := newPendingEntry(missionID, candidateID, base.AddDate(0, 0, 5), 8)
		boundary := newPendingEntry(missionID, candidateID, base.AddDate(0, 0, 14), 3)
		outside := newPendingEntry(missionID, candidateID, base.AddDate(0, 0, 20), 7)
		require.NoError(t, repo.Create(ctx, inside))
		require.NoError(t, repo.Create(ctx, boundary))
		require.NoError(t, repo.Create(ctx, outside))

		for _, e := range []*models.WorkHours{inside, boundary, outside} {
			_, err := repo.Validate(ctx, e.ID, validatorID)
			require.NoError(t, err)
		}

		total, err := repo.SumValidatedHoursInPeriod(ctx, missionID, base, base.AddDate(0, 0, 14))

		require.NoError(t, err)
		assert.Equal(t, float64(11), total, "boundary date is inclusive, later date excluded")
	})
}
