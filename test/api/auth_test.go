//go:build api

package api

import (
	"net/http"
	"testing"

	"github.com/Malmeu/food-force-v2-sub001/internal/models"
	"github.com/Malmeu/food-force-v2-sub001/pkg/response"
	"github.com/Malmeu/food-force-v2-sub001/test/api/testserver"
	"github.com/Malmeu/food-force-v2-sub001/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	authHelper := testserver.NewAuthHelper(testServer)

	t.Run("registers a candidate", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		user, token := authHelper.RegisterCandidate(t, "marie@example.com", "password123")

		assert.NotEmpty(t, token)
		assert.Equal(t, "marie@example.com", user["email"])
		assert.Equal(t, "candidate", user["userType"])
		candidate, ok := user["candidate"].(map[string]interface{})
		require.True(t, ok, "candidate profile should be present")
		assert.Equal(t, "Marie", candidate["firstName"])
		_, hasPassword := user["password"]
		assert.False(t, hasPassword, "password must never appear in responses")
	})

	t.Run("registers an establishment", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		user, token := authHelper.RegisterEstablishment(t, "bistro@example.com", "password123")

		assert.NotEmpty(t, token)
		assert.Equal(t, "establishment", user["userType"])
		establishment, ok := user["establishment"].(map[string]interface{})
		require.True(t, ok, "establishment profile should be present")
		assert.Equal(t, "Le Petit Bistro", establishment["name"])
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		authHelper.RegisterCandidate(t, "taken@example.com", "password123")

		req := models.RegisterRequest{
			Email:    "taken@example.com",
			Password: "password123",
			UserType: models.UserTypeCandidate,
			Candidate: &models.CandidateProfile{
				FirstName: "Other",
				LastName:  "Person",
			},
		}
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/register", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a candidate without a candidate profile", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		req := models.RegisterRequest{
			Email:    "noprofile@example.com",
			Password: "password123",
			UserType: models.UserTypeCandidate,
		}
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/register", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogin(t *testing.T) {
	authHelper := testserver.NewAuthHelper(testServer)

	t.Run("logs in with valid credentials", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		authHelper.RegisterCandidate(t, "marie@example.com", "password123")

		token := authHelper.Login(t, "marie@example.com", "password123")
		assert.NotEmpty(t, token)

		// The token works against a protected route.
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/me", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		authHelper.RegisterCandidate(t, "marie@example.com", "password123")

		req := models.LoginRequest{Email: "marie@example.com", Password: "wrongpass"}
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/login", req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp response.Response
		testutil.ParseResponse(t, w, &resp)
		assert.False(t, resp.Success)
	})

	t.Run("rejects an unknown email", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		req := models.LoginRequest{Email: "ghost@example.com", Password: "password123"}
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/login", req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("protected route rejects a missing token", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/me", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
