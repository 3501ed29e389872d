package service

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/Malmeu/food-force-v2-sub001/internal/errors"
	"github.com/Malmeu/food-force-v2-sub001/internal/models"
	repomocks "github.com/Malmeu/food-force-v2-sub001/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestWorkHoursService_Record(t *testing.T) {
	missionID := primitive.NewObjectID()
	candidateID := primitive.NewObjectID()
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)

	missionRepo := &repomocks.MockMissionRepository{
		FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.Mission, error) {
			return &models.Mission{ID: missionID, CandidateID: candidateID, StartDate: start, EndDate: end}, nil
		},
	}

	t.Run("records a pending entry", func(t *testing.T) {
		repo := &repomocks.MockWorkHoursRepository{}

		service := NewWorkHoursService(repo, missionRepo, &stubAuthorizer{}, &recordingNotifier{})
		entry, err := service.Record(context.Background(), candidateID, &models.RecordWorkHoursRequest{
			MissionID: missionID.Hex(),
			Date:      start.AddDate(0, 0, 4),
			Hours:     8,
		})

		require.NoError(t, err)
		assert.Equal(t, models.WorkHoursPending, entry.Status)
		assert.Equal(t, candidateID, entry.CandidateID)
	})

	t.Run("rejects a date outside the mission period", func(t *testing.T) {
		for _, date := range []time.Time{start.AddDate(0, 0, -1), end.AddDate(0, 0, 1)} {
			service := NewWorkHoursService(&repomocks.MockWorkHoursRepository{}, missionRepo, &stubAuthorizer{}, &recordingNotifier{})
			entry, err := service.Record(context.Background(), candidateID, &models.RecordWorkHoursRequest{
				MissionID: missionID.Hex(),
				Date:      date,
				Hours:     8,
			})

			assert.Nil(t, entry)
			assert.ErrorIs(t, err, apperrors.ErrDateOutsideMission)
		}
	})

	t.Run("accepts the period boundaries", func(t *testing.T) {
		for _, date := range []time.Time{start, end} {
			service := NewWorkHoursService(&repomocks.MockWorkHoursRepository{}, missionRepo, &stubAuthorizer{}, &recordingNotifier{})
			entry, err := service.Record(context.Background(), candidateID, &models.RecordWorkHoursRequest{
				MissionID: missionID.Hex(),
				Date:      date,
				Hours:     4,
			})

			require.NoError(t, err)
			assert.NotNil(t, entry)
		}
	})

	t.Run("denies a non-assignee", func(t *testing.T) {
		service := NewWorkHoursService(&repomocks.MockWorkHoursRepository{}, missionRepo, denyAll(), &recordingNotifier{})
		entry, err := service.Record(context.Background(), primitive.NewObjectID(), &models.RecordWorkHoursRequest{
			MissionID: missionID.Hex(),
			Date:      start,
			Hours:     8,
		})

		assert.Nil(t, entry)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestWorkHoursService_Validate(t *testing.T) {
	missionID := primitive.NewObjectID()
	entryID := primitive.NewObjectID()
	candidateID := primitive.NewObjectID()
	validatorID := primitive.NewObjectID()

	validatedEntry := &models.WorkHours{
		ID:          entryID,
		MissionID:   missionID,
		CandidateID: candidateID,
		Date:        time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		Hours:       8,
		Status:      models.WorkHoursValidated,
	}

	t.Run("validates the entry and recomputes the mission total", func(t *testing.T) {
		var setHours float64
		var setMission primitive.ObjectID

		repo := &repomocks.MockWorkHoursRepository{
			ValidateFunc: func(ctx context.Context, id, vID primitive.ObjectID) (*models.WorkHours, error) {
				return validatedEntry, nil
			},
			SumValidatedHoursFunc: func(ctx context.Context, mID primitive.ObjectID) (float64, error) {
				return 42.5, nil
			},
		}
		missionRepo := &repomocks.MockMissionRepository{
			SetActualHoursFunc: func(ctx context.Context, id primitive.ObjectID, hours float64) error {
				setMission = id
				setHours = hours
				return nil
			},
		}
		notifier := &recordingNotifier{}

		service := NewWorkHoursService(repo, missionRepo, &stubAuthorizer{}, notifier)
		entry, err := service.Validate(context.Background(), entryID, validatorID)

		require.NoError(t, err)
		assert.Equal(t, models.WorkHoursValidated, entry.Status)
		assert.Equal(t, missionID, setMission)
		assert.Equal(t, 42.5, setHours, "actual hours come from the validated aggregate")
		require.Len(t, notifier.events, 1)
		assert.Equal(t, candidateID, notifier.events[0].RecipientID)
	})

	t.Run("reviewed entry cannot be reviewed again", func(t *testing.T) {
		repo := &repomocks.MockWorkHoursRepository{
			ValidateFunc: func(ctx context.Context, id, vID primitive.ObjectID) (*models.WorkHours, error) {
				return nil, apperrors.ErrWorkHoursAlreadyReviewed
			},
		}

		service := NewWorkHoursService(repo, &repomocks.MockMissionRepository{}, &stubAuthorizer{}, &recordingNotifier{})
		entry, err := service.Validate(context.Background(), entryID, validatorID)

		assert.Nil(t, entry)
		assert.ErrorIs(t, err, apperrors.ErrWorkHoursAlreadyReviewed)
	})

	t.Run("validation succeeds even when the recompute fails", func(t *testing.T) {
		repo := &repomocks.MockWorkHoursRepository{
			ValidateFunc: func(ctx context.Context, id, vID primitive.ObjectID) (*models.WorkHours, error) {
				return validatedEntry, nil
			},
			SumValidatedHoursFunc: func(ctx context.Context, mID primitive.ObjectID) (float64, error) {
				return 0, assert.AnError
			},
		}

		service := NewWorkHoursService(repo, &repomocks.MockMissionRepository{}, &stubAuthorizer{}, &recordingNotifier{})
		entry, err := service.Validate(context.Background(), entryID, validatorID)

		require.NoError(t, err)
		assert.NotNil(t, entry)
	})

	t.Run("denies a non-owner", func(t *testing.T) {
		service := NewWorkHoursService(&repomocks.MockWorkHoursRepository{}, &repomocks.MockMissionRepository{}, denyAll(), &recordingNotifier{})
		entry, err := service.Validate(context.Background(), entryID, primitive.NewObjectID())

		assert.Nil(t, entry)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestWorkHoursService_Reject(t *testing.T) {
	entryID := primitive.NewObjectID()
	candidateID := primitive.NewObjectID()

	t.Run("rejects the entry with the reason", func(t *testing.T) {
		var gotReason string
		repo := &repomocks.MockWorkHoursRepository{
			RejectFunc: func(ctx context.Context, id, vID primitive.ObjectID, reason string) (*models.WorkHours, error) {
				gotReason = reason
				return &models.WorkHours{
					ID:              id,
					CandidateID:     candidateID,
					Date:            time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
					Status:          models.WorkHoursRejected,
					RejectionReason: reason,
				}, nil
			},
		}
		notifier := &recordingNotifier{}

		service := NewWorkHoursService(repo, &repomocks.MockMissionRepository{}, &stubAuthorizer{}, notifier)
		entry, err := service.Reject(context.Background(), entryID, primitive.NewObjectID(), "shift was covered")

		require.NoError(t, err)
		assert.Equal(t, models.WorkHoursRejected, entry.Status)
		assert.Equal(t, "shift was covered", gotReason)
		require.Len(t, notifier.events, 1)
		assert.Equal(t, candidateID, notifier.events[0].RecipientID)
	})

	t.Run("rejecting does not touch the mission total", func(t *testing.T) {
		called := false
		missionRepo := &repomocks.MockMissionRepository{
			SetActualHoursFunc: func(ctx context.Context, id primitive.ObjectID, hours float64) error {
				called = true
				return nil
			},
		}
		repo := &repomocks.MockWorkHoursRepository{
			RejectFunc: func(ctx context.Context, id, vID primitive.ObjectID, reason string) (*models.WorkHours, error) {
				return &models.WorkHours{ID: id, Status: models.WorkHoursRejected}, nil
			},
		}

		service := NewWorkHoursService(repo, missionRepo, &stubAuthorizer{}, &recordingNotifier{})
		_, err := service.Reject(context.Background(), entryID, primitive.NewObjectID(), "duplicate entry")

		require.NoError(t, err)
		assert.False(t, called, "rejected hours never count")
	})
}
