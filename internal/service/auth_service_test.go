package service

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/Malmeu/food-force-v2-sub001/internal/errors"
	"github.com/Malmeu/food-force-v2-sub001/internal/models"
	repomocks "github.com/Malmeu/food-force-v2-sub001/internal/repository/mocks"
	"github.com/Malmeu/food-force-v2-sub001/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestJWTManager() *auth.JWTManager {
	return auth.NewJWTManager("test-secret", time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	candidateReq := func() *models.RegisterRequest {
		return &models.RegisterRequest{
			Email:    "marie@example.com",
			Password: "secret123",
			UserType: models.UserTypeCandidate,
			Candidate: &models.CandidateProfile{
				FirstName: "Marie",
				LastName:  "Dubois",
			},
		}
	}

	t.Run("registers a candidate and returns a valid token", func(t *testing.T) {
		userRepo := &repomocks.MockUserRepository{
			CreateFunc: func(ctx context.Context, user *models.User) error {
				user.ID = primitive.NewObjectID()
				return nil
			},
		}
		jwtManager := newTestJWTManager()

		service := NewAuthService(userRepo, jwtManager)
		resp, err := service.Register(context.Background(), candidateReq())

		require.NoError(t, err)
		assert.Equal(t, models.UserTypeCandidate, resp.User.UserType)
		assert.NotEqual(t, "secret123", resp.User.Password, "password is stored hashed")

		claims, err := jwtManager.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID.Hex(), claims.UserID)
		assert.Equal(t, string(models.UserTypeCandidate), claims.UserType)
	})

	t.Run("rejects a candidate without a candidate profile", func(t *testing.T) {
		req := candidateReq()
		req.Candidate = nil

		service := NewAuthService(&repomocks.MockUserRepository{}, newTestJWTManager())
		resp, err := service.Register(context.Background(), req)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrProfileMismatch)
	})

	t.Run("rejects a candidate carrying an establishment profile", func(t *testing.T) {
		req := candidateReq()
		req.Establishment = &models.EstablishmentProfile{Name: "Le Petit Bistro"}

		service := NewAuthService(&repomocks.MockUserRepository{}, newTestJWTManager())
		resp, err := service.Register(context.Background(), req)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrProfileMismatch)
	})

	t.Run("rejects an establishment without an establishment profile", func(t *testing.T) {
		req := &models.RegisterRequest{
			Email:    "bistro@example.com",
			Password: "secret123",
			UserType: models.UserTypeEstablishment,
			Candidate: &models.CandidateProfile{
				FirstName: "Marie",
			},
		}

		service := NewAuthService(&repomocks.MockUserRepository{}, newTestJWTManager())
		resp, err := service.Register(context.Background(), req)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrProfileMismatch)
	})

	t.Run("duplicate email surfaces the repository error", func(t *testing.T) {
		userRepo := &repomocks.MockUserRepository{
			CreateFunc: func(ctx context.Context, user *models.User) error {
				return apperrors.ErrUserAlreadyExists
			},
		}

		service := NewAuthService(userRepo, newTestJWTManager())
		resp, err := service.Register(context.Background(), candidateReq())

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	userID := primitive.NewObjectID()
	userRepo := &repomocks.MockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			if email != "marie@example.com" {
				return nil, apperrors.ErrUserNotFound
			}
			return &models.User{
				ID:       userID,
				Email:    email,
				Password: hashed,
				UserType: models.UserTypeCandidate,
			}, nil
		},
	}

	t.Run("returns a token for valid credentials", func(t *testing.T) {
		jwtManager := newTestJWTManager()
		service := NewAuthService(userRepo, jwtManager)

		resp, err := service.Login(context.Background(), &models.LoginRequest{
			Email:    "marie@example.com",
			Password: "secret123",
		})

		require.NoError(t, err)
		claims, err := jwtManager.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, userID.Hex(), claims.UserID)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		service := NewAuthService(userRepo, newTestJWTManager())

		resp, err := service.Login(context.Background(), &models.LoginRequest{
			Email:    "marie@example.com",
			Password: "wrong-password",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("rejects an unknown email without leaking existence", func(t *testing.T) {
		service := NewAuthService(userRepo, newTestJWTManager())

		resp, err := service.Login(context.Background(), &models.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}
