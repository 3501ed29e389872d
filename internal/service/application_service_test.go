package service

import (
	"context"
	"testing"

	apperrors "github.com/Malmeu/food-force-v2-sub001/internal/errors"
	"github.com/Malmeu/food-force-v2-sub001/internal/models"
	repomocks "github.com/Malmeu/food-force-v2-sub001/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestApplicationService_Apply(t *testing.T) {
	jobID := primitive.NewObjectID()
	candidateID := primitive.NewObjectID()
	establishmentID := primitive.NewObjectID()

	activeJobRepo := func(status models.JobStatus) *repomocks.MockJobRepository {
		return &repomocks.MockJobRepository{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.Job, error) {
				return &models.Job{ID: jobID, EstablishmentID: establishmentID, Title: "Serveur / Serveuse", Status: status}, nil
			},
		}
	}

	req := &models.CreateApplicationRequest{
		JobID:       jobID.Hex(),
		CoverLetter: "Three years of fine dining service.",
	}

	t.Run("creates a pending application and notifies the establishment", func(t *testing.T) {
		notifier := &recordingNotifier{}
		service := NewApplicationService(&repomocks.MockApplicationRepository{}, activeJobRepo(models.JobStatusActive), &stubAuthorizer{}, notifier)

		application, err := service.Apply(context.Background(), candidateID, req)

		require.NoError(t, err)
		assert.Equal(t, models.ApplicationPending, application.Status)
		assert.Equal(t, candidateID, application.CandidateID)
		require.Len(t, notifier.events, 1)
		assert.Equal(t, establishmentID, notifier.events[0].RecipientID)
	})

	t.Run("rejects an inactive job", func(t *testing.T) {
		for _, status := range []models.JobStatus{models.JobStatusInactive, models.JobStatusDraft} {
			service := NewApplicationService(&repomocks.MockApplicationRepository{}, activeJobRepo(status), &stubAuthorizer{}, &recordingNotifier{})

			application, err := service.Apply(context.Background(), candidateID, req)

			assert.Nil(t, application, "status %s", status)
			assert.ErrorIs(t, err, apperrors.ErrJobInactive, "status %s", status)
		}
	})

	t.Run("rejects a second application to the same job", func(t *testing.T) {
		repo := &repomocks.MockApplicationRepository{
			ExistsByJobAndCandidateFunc: func(ctx context.Context, jID, cID primitive.ObjectID) (bool, error) {
				return true, nil
			},
		}
		service := NewApplicationService(repo, activeJobRepo(models.JobStatusActive), &stubAuthorizer{}, &recordingNotifier{})

		application, err := service.Apply(context.Background(), candidateID, req)

		assert.Nil(t, application)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
	})

	t.Run("unknown job surfaces not found", func(t *testing.T) {
		jobRepo := &repomocks.MockJobRepository{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.Job, error) {
				return nil, apperrors.ErrJobNotFound
			},
		}
		service := NewApplicationService(&repomocks.MockApplicationRepository{}, jobRepo, &stubAuthorizer{}, &recordingNotifier{})

		application, err := service.Apply(context.Background(), candidateID, req)

		assert.Nil(t, application)
		assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
	})
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	applicationID := primitive.NewObjectID()
	candidateID := primitive.NewObjectID()
	requesterID := primitive.NewObjectID()

	repoReturning := func(gotStatus *models.ApplicationStatus) *repomocks.MockApplicationRepository {
		return &repomocks.MockApplicationRepository{
			UpdateStatusFunc: func(ctx context.Context, id primitive.ObjectID, status models.ApplicationStatus) (*models.Application, error) {
				if gotStatus != nil {
					*gotStatus = status
				}
				return &models.Application{ID: applicationID, CandidateID: candidateID, Status: status}, nil
			},
		}
	}

	t.Run("normalizes legacy French labels", func(t *testing.T) {
		cases := map[string]models.ApplicationStatus{
			"accepted":  models.ApplicationAccepted,
			"Acceptée":  models.ApplicationAccepted,
			"acceptee":  models.ApplicationAccepted,
			"refusée":   models.ApplicationRejected,
			"entretien": models.ApplicationInterview,
		}
		for label, want := range cases {
			var stored models.ApplicationStatus
			notifier := &recordingNotifier{}
			service := NewApplicationService(repoReturning(&stored), &repomocks.MockJobRepository{}, &stubAuthorizer{}, notifier)

			application, err := service.UpdateStatus(context.Background(), applicationID, requesterID, label)

			require.NoError(t, err, "label %q", label)
			assert.Equal(t, want, stored, "label %q", label)
			assert.Equal(t, want, application.Status, "label %q", label)
			require.Len(t, notifier.events, 1, "label %q", label)
			assert.Equal(t, candidateID, notifier.events[0].RecipientID)
		}
	})

	t.Run("rejects unknown status label", func(t *testing.T) {
		service := NewApplicationService(repoReturning(nil), &repomocks.MockJobRepository{}, &stubAuthorizer{}, &recordingNotifier{})

		application, err := service.UpdateStatus(context.Background(), applicationID, requesterID, "shortlisted")

		assert.Nil(t, application)
		assert.ErrorIs(t, err, apperrors.ErrUnknownApplicationStatus)
	})

	t.Run("denies a requester who does not own the job", func(t *testing.T) {
		service := NewApplicationService(repoReturning(nil), &repomocks.MockJobRepository{}, denyAll(), &recordingNotifier{})

		application, err := service.UpdateStatus(context.Background(), applicationID, requesterID, "accepted")

		assert.Nil(t, application)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestApplicationService_ListJobApplications(t *testing.T) {
	jobID := primitive.NewObjectID()

	t.Run("returns the job's applications to its owner", func(t *testing.T) {
		repo := &repomocks.MockApplicationRepository{
			FindByJobFunc: func(ctx context.Context, jID primitive.ObjectID, page, limit int) ([]models.Application, int, error) {
				return []models.Application{{JobID: jID}}, 1, nil
			},
		}
		service := NewApplicationService(repo, &repomocks.MockJobRepository{}, &stubAuthorizer{}, &recordingNotifier{})

		list, err := service.ListJobApplications(context.Background(), jobID, primitive.NewObjectID(), 1, 20)

		require.NoError(t, err)
		require.Len(t, list.Items, 1)
		assert.Equal(t, 1, list.Pagination.TotalItems)
	})

	t.Run("denies a non-owner", func(t *testing.T) {
		service := NewApplicationService(&repomocks.MockApplicationRepository{}, &repomocks.MockJobRepository{}, denyAll(), &recordingNotifier{})

		list, err := service.ListJobApplications(context.Background(), jobID, primitive.NewObjectID(), 1, 20)

		assert.Nil(t, list)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}
