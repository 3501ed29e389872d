// Package authz provides authorization interfaces and implementations.
// This module is designed for future migration to SpiceDB or API Gateway.
package authz

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind constants identify the resource types covered by authorization checks.
const (
	KindJob          = "job"
	KindApplication  = "application"
	KindMission      = "mission"
	KindWorkHours    = "workhours"
	KindPayment      = "payment"
	KindNotification = "notification"
)

// Relation constants define how an actor may relate to a resource.
const (
	// RelationOwner is the establishment side of a resource (job poster,
	// mission creator, payment issuer).
	RelationOwner = "owner"
	// RelationAssignee is the candidate side (applicant, mission worker).
	RelationAssignee = "assignee"
	// RelationRecipient is the addressee of a notification or payment.
	RelationRecipient = "recipient"
)

// Authorizer defines the interface for authorization checks.
// Implementations can be swapped for SpiceDB or removed for API Gateway.
type Authorizer interface {
	// HasRelation checks whether the actor holds the given relation to the
	// resource identified by kind and id.
	HasRelation(ctx context.Context, actorID primitive.ObjectID, kind string, resourceID primitive.ObjectID, relation string) (bool, error)

	// HasAnyRelation checks whether the actor holds at least one of the given
	// relations to the resource.
	HasAnyRelation(ctx context.Context, actorID primitive.ObjectID, kind string, resourceID primitive.ObjectID, relations ...string) (bool, error)
}
