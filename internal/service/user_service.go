package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Malmeu/food-force-v2-sub001/internal/cache"
	apperrors "github.com/Malmeu/food-force-v2-sub001/internal/errors"
	"github.com/Malmeu/food-force-v2-sub001/internal/models"
	"github.com/Malmeu/food-force-v2-sub001/internal/repository"
	"github.com/Malmeu/food-force-v2-sub001/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	userCacheTTL      = 15 * time.Minute
	documentURLExpiry = 15 * time.Minute
)

// UserService handles business logic for user operations.
type UserService struct {
	repo    repository.UserRepository
	cache   cache.Cache
	storage storage.Storage
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, cache cache.Cache, storage storage.Storage) *UserService {
	return &UserService{
		repo:    repo,
		cache:   cache,
		storage: storage,
	}
}

// GetUser retrieves a user by ID (with caching) and attaches pre-signed
// document URLs when the profile carries uploaded documents.
func (s *UserService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	cacheKey := cache.UserCacheKey(id.Hex())

	var cached models.User
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err == nil && found {
		s.attachDocumentURLs(ctx, &cached)
		return &cached, nil // Cache hit
	}

	// Cache miss - get from database
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Store in cache (ignore errors - cache is best effort)
	_ = s.cache.Set(ctx, cacheKey, user, userCacheTTL)

	s.attachDocumentURLs(ctx, user)
	return user, nil
}

// UpdateUser updates a user's profile.
func (s *UserService) UpdateUser(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// A profile update must stay on the account's side of the marketplace.
	if req.Candidate != nil && user.UserType != models.UserTypeCandidate {
		return nil, apperrors.ErrProfileMismatch
	}
	if req.Establishment != nil && user.UserType != models.UserTypeEstablishment {
		return nil, apperrors.ErrProfileMismatch
	}

	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.UserCacheKey(id.Hex()))

	s.attachDocumentURLs(ctx, updated)
	return updated, nil
}

// RequestDocumentUpload issues a pre-signed upload URL for a profile document
// and records the storage key on the profile.
func (s *UserService) RequestDocumentUpload(ctx context.Context, userID primitive.ObjectID, req *models.DocumentUploadRequest) (*models.DocumentUploadResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("documents/%s/%s-%d", userID.Hex(), req.Kind, time.Now().UnixMilli())

	switch req.Kind {
	case "resume":
		if user.UserType != models.UserTypeCandidate {
			return nil, apperrors.ErrNotCandidate
		}
		if err := s.repo.SetResumeKey(ctx, userID, key); err != nil {
			return nil, err
		}
	case "logo":
		if user.UserType != models.UserTypeEstablishment {
			return nil, apperrors.ErrNotEstablishment
		}
		if err := s.repo.SetLogoKey(ctx, userID, key); err != nil {
			return nil, err
		}
	}

	uploadURL, err := s.storage.GetPresignedPutURL(ctx, key, req.ContentType, documentURLExpiry)
	if err != nil {
		return nil, err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.UserCacheKey(userID.Hex()))

	return &models.DocumentUploadResponse{
		Key:       key,
		UploadURL: uploadURL,
	}, nil
}

// attachDocumentURLs fills in pre-signed download URLs for stored documents.
// Failures are ignored: the profile is still usable without the links.
func (s *UserService) attachDocumentURLs(ctx context.Context, user *models.User) {
	if user.Candidate != nil && user.Candidate.ResumeKey != "" {
		if url, err := s.storage.GetPresignedURL(ctx, user.Candidate.ResumeKey, documentURLExpiry); err == nil {
			user.Candidate.ResumeURL = url
		}
	}
	if user.Establishment != nil && user.Establishment.LogoKey != "" {
		if url, err := s.storage.GetPresignedURL(ctx, user.Establishment.LogoKey, documentURLExpiry); err == nil {
			user.Establishment.LogoURL = url
		}
	}
}
