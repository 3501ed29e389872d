//go:build api

package testserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/Malmeu/food-force-v2-sub001/internal/models"
	"github.com/Malmeu/food-force-v2-sub001/pkg/response"
	"github.com/Malmeu/food-force-v2-sub001/test/testutil"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthHelper provides account registration helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// RegisterCandidate registers a candidate account and returns the user data
// and token.
func (ah *AuthHelper) RegisterCandidate(t *testing.T, email, password string) (map[string]interface{}, string) {
	t.Helper()

	req := models.RegisterRequest{
		Email:    email,
		Password: password,
		UserType: models.UserTypeCandidate,
		Candidate: &models.CandidateProfile{
			FirstName: "Marie",
			LastName:  "Dubois",
			City:      "Lyon",
		},
	}
	return ah.register(t, req)
}

// RegisterEstablishment registers an establishment account and returns the
// user data and token.
func (ah *AuthHelper) RegisterEstablishment(t *testing.T, email, password string) (map[string]interface{}, string) {
	t.Helper()

	req := models.RegisterRequest{
		Email:    email,
		Password: password,
		UserType: models.UserTypeEstablishment,
		Establishment: &models.EstablishmentProfile{
			Name: "Le Petit Bistro",
			City: "Paris",
		},
	}
	return ah.register(t, req)
}

func (ah *AuthHelper) register(t *testing.T, req models.RegisterRequest) (map[string]interface{}, string) {
	t.Helper()

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/register", req)
	require.Equal(t, http.StatusCreated, w.Code, "register should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "register response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")

	token, ok := data["token"].(string)
	require.True(t, ok, "token should be a string")

	user, ok := data["user"].(map[string]interface{})
	require.True(t, ok, "user should be a map")

	return user, token
}

// Login logs a user in and returns the token.
func (ah *AuthHelper) Login(t *testing.T, email, password string) string {
	t.Helper()

	req := models.LoginRequest{Email: email, Password: password}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "login response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")

	token, ok := data["token"].(string)
	require.True(t, ok, "token should be a string")

	return token
}

// MarketplaceHelper drives the hiring flow through the API.
type MarketplaceHelper struct {
	server *TestServer
}

// NewMarketplaceHelper creates a new marketplace helper.
func NewMarketplaceHelper(server *TestServer) *MarketplaceHelper {
	return &MarketplaceHelper{server: server}
}

// CreateJob posts a job as the establishment and returns its data.
func (mh *MarketplaceHelper) CreateJob(t *testing.T, token, title string) map[string]interface{} {
	t.Helper()

	req := models.CreateJobRequest{
		Title:        title,
		Description:  "Evening service, 5 days a week",
		ContractType: "CDI",
		Sector:       "restaurant",
		Location:     models.Location{City: "Paris"},
		Salary:       models.Salary{Amount: 14.5, Period: "hour", Currency: "EUR"},
	}

	w := testutil.MakeAuthRequest(t, mh.server.Router, http.MethodPost, "/api/v1/jobs", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create job should return 201, got: %s", w.Body.String())

	return dataOf(t, w.Body.Bytes())
}

// Apply submits an application as the candidate and returns its data.
func (mh *MarketplaceHelper) Apply(t *testing.T, token, jobID string) map[string]interface{} {
	t.Helper()

	req := models.CreateApplicationRequest{
		JobID:       jobID,
		CoverLetter: "Three years of evening service experience",
	}

	w := testutil.MakeAuthRequest(t, mh.server.Router, http.MethodPost, "/api/v1/applications", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "apply should return 201, got: %s", w.Body.String())

	return dataOf(t, w.Body.Bytes())
}

// SetApplicationStatus moves an application as the establishment.
func (mh *MarketplaceHelper) SetApplicationStatus(t *testing.T, token, applicationID, status string) map[string]interface{} {
	t.Helper()

	req := models.UpdateApplicationStatusRequest{Status: status}

	w := testutil.MakeAuthRequest(t, mh.server.Router, http.MethodPut, "/api/v1/applications/"+applicationID+"/status", token, req)
	require.Equal(t, http.StatusOK, w.Code, "application status update should return 200, got: %s", w.Body.String())

	return dataOf(t, w.Body.Bytes())
}

// CreateMission creates a mission from an accepted application.
func (mh *MarketplaceHelper) CreateMission(t *testing.T, token, candidateID, applicationID string, start, end time.Time) map[string]interface{} {
	t.Helper()

	req := models.CreateMissionRequest{
		Title:          "Service renfort",
		Description:    "Evening reinforcement",
		CandidateID:    candidateID,
		ApplicationID:  applicationID,
		StartDate:      start,
		EndDate:        end,
		HourlyRate:     15.5,
		EstimatedHours: 120,
	}

	w := testutil.MakeAuthRequest(t, mh.server.Router, http.MethodPost, "/api/v1/missions", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create mission should return 201, got: %s", w.Body.String())

	return dataOf(t, w.Body.Bytes())
}

// RecordHours records a work-hours entry as the candidate.
func (mh *MarketplaceHelper) RecordHours(t *testing.T, token, missionID string, date time.Time, hours float64) map[string]interface{} {
	t.Helper()

	req := models.RecordWorkHoursRequest{
		MissionID:   missionID,
		Date:        date,
		Hours:       hours,
		Description: "Evening service",
	}

	w := testutil.MakeAuthRequest(t, mh.server.Router, http.MethodPost, "/api/v1/workhours", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "record hours should return 201, got: %s", w.Body.String())

	return dataOf(t, w.Body.Bytes())
}

// ValidateHours validates a work-hours entry as the establishment.
func (mh *MarketplaceHelper) ValidateHours(t *testing.T, token, entryID string) map[string]interface{} {
	t.Helper()

	w := testutil.MakeAuthRequest(t, mh.server.Router, http.MethodPut, "/api/v1/workhours/"+entryID+"/validate", token, nil)
	require.Equal(t, http.StatusOK, w.Code, "validate hours should return 200, got: %s", w.Body.String())

	return dataOf(t, w.Body.Bytes())
}

// dataOf unmarshals an envelope and returns its data object.
func dataOf(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(body, &resp))
	require.True(t, resp.Success, "response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// GetIDFromResponse extracts the ID from response data.
func GetIDFromResponse(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	id, ok := data["id"].(string)
	require.True(t, ok, "id should be a string in response data")
	return id
}

// GetObjectIDFromResponse extracts and parses the ID as an ObjectID.
func GetObjectIDFromResponse(t *testing.T, data map[string]interface{}) primitive.ObjectID {
	t.Helper()

	oid, err := primitive.ObjectIDFromHex(GetIDFromResponse(t, data))
	require.NoError(t, err, "failed to parse ObjectID")
	return oid
}

// SeedUser directly inserts a user into the database (bypasses API).
func (ah *AuthHelper) SeedUser(t *testing.T, user *models.User) *models.User {
	t.Helper()

	err := ah.server.UserRepo.Create(context.Background(), user)
	require.NoError(t, err, "failed to seed user")
	return user
}

// SeedMission directly inserts a mission into the database (bypasses API).
func (mh *MarketplaceHelper) SeedMission(t *testing.T, mission *models.Mission) *models.Mission {
	t.Helper()

	err := mh.server.MissionRepo.Create(context.Background(), mission)
	require.NoError(t, err, "failed to seed mission")
	return mission
}
