package service

import (
	"context"
	"io"
	"time"

	"github.com/Malmeu/food-force-v2-sub001/internal/queue"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubAuthorizer is a func-field Authorizer for service tests. With no func
// set it grants everything.
type stubAuthorizer struct {
	HasRelationFunc func(ctx context.Context, actorID primitive.ObjectID, kind string, resourceID primitive.ObjectID, relation string) (bool, error)
}

func (a *stubAuthorizer) HasRelation(ctx context.Context, actorID primitive.ObjectID, kind string, resourceID primitive.ObjectID, relation string) (bool, error) {
	if a.HasRelationFunc != nil {
		return a.HasRelationFunc(ctx, actorID, kind, resourceID, relation)
	}
	return true, nil
}

func (a *stubAuthorizer) HasAnyRelation(ctx context.Context, actorID primitive.ObjectID, kind string, resourceID primitive.ObjectID, relations ...string) (bool, error) {
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

// denyAll returns an authorizer that rejects every check.
func denyAll() *stubAuthorizer {
	return &stubAuthorizer{
		HasRelationFunc: func(ctx context.Context, actorID primitive.ObjectID, kind string, resourceID primitive.ObjectID, relation string) (bool, error) {
			return false, nil
		},
	}
}

// recordingNotifier collects the events a service emits.
type recordingNotifier struct {
	events []queue.NotificationEvent
}

func (n *recordingNotifier) Notify(event queue.NotificationEvent) {
	n.events = append(n.events, event)
}

// stubCache is a func-field Cache for service tests. With no funcs set every
// lookup misses and every write succeeds.
type stubCache struct {
	GetFunc    func(ctx context.Context, key string, dest interface{}) (bool, error)
	SetFunc    func(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func (c *stubCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if c.GetFunc != nil {
		return c.GetFunc(ctx, key, dest)
	}
	return false, nil
}

func (c *stubCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.SetFunc != nil {
		return c.SetFunc(ctx, key, value, ttl)
	}
	return nil
}

func (c *stubCache) Delete(ctx context.Context, key string) error {
	if c.DeleteFunc != nil {
		return c.DeleteFunc(ctx, key)
	}
	return nil
}

// stubStorage is a func-field Storage for service tests. With no funcs set
// every pre-signed URL request returns a fixed URL.
type stubStorage struct {
	GetPresignedURLFunc    func(ctx context.Context, key string, expiry time.Duration) (string, error)
	GetPresignedPutURLFunc func(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
	PutObjectFunc          func(ctx context.Context, key string, body io.Reader, contentType string) error
}

func (s *stubStorage) GetPresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if s.GetPresignedURLFunc != nil {
		return s.GetPresignedURLFunc(ctx, key, expiry)
	}
	return "https://storage.test/" + key, nil
}

func (s *stubStorage) GetPresignedPutURL(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	if s.GetPresignedPutURLFunc != nil {
		return s.GetPresignedPutURLFunc(ctx, key, contentType, expiry)
	}
	return "https://storage.test/upload/" + key, nil
}

func (s *stubStorage) PutObject(ctx context.Context, key string, body io.Reader, contentType string) error {
	if s.PutObjectFunc != nil {
		return s.PutObjectFunc(ctx, key, body, contentType)
	}
	return nil
}
