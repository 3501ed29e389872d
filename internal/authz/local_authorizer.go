package authz

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/Malmeu/food-force-v2-sub001/internal/errors"
	"github.com/Malmeu/food-force-v2-sub001/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Finder interfaces keep the authorizer decoupled from the full repository
// implementations: each lookup needs a single method.

// JobFinder looks up jobs by id.
type JobFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Job, error)
}

// ApplicationFinder looks up applications by id.
type ApplicationFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error)
}

// MissionFinder looks up missions by id.
type MissionFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Mission, error)
}

// WorkHoursFinder looks up work-hours entries by id.
type WorkHoursFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.WorkHours, error)
}

// PaymentFinder looks up payments by id.
type PaymentFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Payment, error)
}

// NotificationFinder looks up notifications by id.
type NotificationFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Notification, error)
}

// LocalAuthorizer implements Authorizer using database lookups.
// This is the initial implementation that can be replaced with SpiceDBAuthorizer later.
type LocalAuthorizer struct {
	jobs          JobFinder
	applications  ApplicationFinder
	missions      MissionFinder
	workHours     WorkHoursFinder
	payments      PaymentFinder
	notifications NotificationFinder
}

// NewLocalAuthorizer creates a new LocalAuthorizer.
func NewLocalAuthorizer(jobs JobFinder, applications ApplicationFinder, missions MissionFinder, workHours WorkHoursFinder, payments PaymentFinder, notifications NotificationFinder) *LocalAuthorizer {
	return &LocalAuthorizer{
		jobs:          jobs,
		applications:  applications,
		missions:      missions,
		workHours:     workHours,
		payments:      payments,
		notifications: notifications,
	}
}

// Ensure LocalAuthorizer implements Authorizer interface
var _ Authorizer = (*LocalAuthorizer)(nil)

// HasRelation checks whether the actor holds the given relation to the resource.
// A missing resource is reported as no relation, not as an error, so callers
// can map both cases to the same forbidden response without leaking existence.
func (a *LocalAuthorizer) HasRelation(ctx context.Context, actorID primitive.ObjectID, kind string, resourceID primitive.ObjectID, relation string) (bool, error) {
	switch kind {
	case KindJob:
		return a.jobRelation(ctx, actorID, resourceID, relation)
	case KindApplication:
		return a.applicationRelation(ctx, actorID, resourceID, relation)
	case KindMission:
		return a.missionRelation(ctx, actorID, resourceID, relation)
	case KindWorkHours:
		return a.workHoursRelation(ctx, actorID, resourceID, relation)
	case KindPayment:
		return a.paymentRelation(ctx, actorID, resourceID, relation)
	case KindNotification:
		return a.notificationRelation(ctx, actorID, resourceID, relation)
	default:
		return false, fmt.Errorf("unknown resource kind %q", kind)
	}
}

// HasAnyRelation checks whether the actor holds at least one of the given relations.
func (a *LocalAuthorizer) HasAnyRelation(ctx context.Context, actorID primitive.ObjectID, kind string, resourceID primitive.ObjectID, relations ...string) (bool, error) {
	for _, relation := range relations {
		ok, err := a.HasRelation(ctx, actorID, kind, resourceID, relation)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (a *LocalAuthorizer) jobRelation(ctx context.Context, actorID, jobID primitive.ObjectID, relation string) (bool, error) {
	job, err := a.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, apperrors.ErrJobNotFound) {
			return false, nil
		}
		return false, err
	}
	if relation == RelationOwner {
		return job.EstablishmentID == actorID, nil
	}
	return false, nil
}

func (a *LocalAuthorizer) applicationRelation(ctx context.Context, actorID, applicationID primitive.ObjectID, relation string) (bool, error) {
	application, err := a.applications.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrApplicationNotFound) {
			return false, nil
		}
		return false, err
	}
	switch relation {
	case RelationAssignee:
		return application.CandidateID == actorID, nil
	case RelationOwner:
		// The employer side of an application is the owner of its job.
		return a.jobRelation(ctx, actorID, application.JobID, RelationOwner)
	}
	return false, nil
}

func (a *LocalAuthorizer) missionRelation(ctx context.Context, actorID, missionID primitive.ObjectID, relation string) (bool, error) {
	mission, err := a.missions.FindByID(ctx, missionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrMissionNotFound) {
			return false, nil
		}
		return false, err
	}
	switch relation {
	case RelationOwner:
		return mission.EstablishmentID == actorID, nil
	case RelationAssignee:
		return mission.CandidateID == actorID, nil
	}
	return false, nil
}

func (a *LocalAuthorizer) workHoursRelation(ctx context.Context, actorID, workHoursID primitive.ObjectID, relation string) (bool, error) {
	entry, err := a.workHours.FindByID(ctx, workHoursID)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkHoursNotFound) {
			return false, nil
		}
		return false, err
	}
	switch relation {
	case RelationAssignee:
		return entry.CandidateID == actorID, nil
	case RelationOwner:
		// Validation rights follow the mission's establishment.
		return a.missionRelation(ctx, actorID, entry.MissionID, RelationOwner)
	}
	return false, nil
}

func (a *LocalAuthorizer) paymentRelation(ctx context.Context, actorID, paymentID primitive.ObjectID, relation string) (bool, error) {
	payment, err := a.payments.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPaymentNotFound) {
			return false, nil
		}
		return false, err
	}
	switch relation {
	case RelationOwner:
		return payment.EmployerID == actorID, nil
	case RelationRecipient:
		return payment.CandidateID == actorID, nil
	}
	return false, nil
}

func (a *LocalAuthorizer) notificationRelation(ctx context.Context, actorID, notificationID primitive.ObjectID, relation string) (bool, error) {
	notification, err := a.notifications.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotificationNotFound) {
			return false, nil
		}
		return false, err
	}
	if relation == RelationRecipient {
		return notification.RecipientID == actorID, nil
	}
	return false, nil
}
