package authz

import (
	"context"

	apperrors "github.com/Malmeu/food-force-v2-sub001/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Require checks that the actor holds at least one of the given relations to
// the resource and returns ErrForbidden otherwise. Lookup failures propagate
// unchanged so callers can distinguish denial from infrastructure errors.
func Require(ctx context.Context, authorizer Authorizer, actorID primitive.ObjectID, kind string, resourceID primitive.ObjectID, relations ...string) error {
	ok, err := authorizer.HasAnyRelation(ctx, actorID, kind, resourceID, relations...)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrForbidden
	}
	return nil
}
