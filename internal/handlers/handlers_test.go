package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vacay-dev/vacay/db"
	"github.com/vacay-dev/vacay/internal/auth"
	"github.com/vacay-dev/vacay/internal/models"
	"github.com/vacay-dev/vacay/internal/router"
	"github.com/vacay-dev/vacay/internal/view"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()

	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	require.NoError(t, db.ConnectDatabase("sqlite", dsn))
	require.NoError(t, db.MigrateDatabase())

	return router.NewRouter()
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())

	return out
}

type authPayload struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

func register(t *testing.T, r *gin.Engine, username, password string) authPayload {
	t.Helper()

	w := do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	return decode[authPayload](t, w)
}

func TestRegisterLoginFlow(t *testing.T) {
	r := setupServer(t)

	alice := register(t, r, "alice", "pw1")
	assert.Equal(t, "alice", alice.Username)
	assert.NotEmpty(t, alice.Token)

	// Duplicate username is rejected.
	w := do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{"username": "alice", "password": "pw2"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Wrong password fails closed.
	w = do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"username": "alice", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"username": "alice", "password": "pw1"})
	require.Equal(t, http.StatusOK, w.Code)
	login := decode[authPayload](t, w)
	assert.Equal(t, alice.ID, login.ID)
	assert.NotEmpty(t, login.Token)
}

func TestRequiresToken(t *testing.T) {
	r := setupServer(t)

	w := do(t, r, http.MethodGet, "/api/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, r, http.MethodGet, "/api/users", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateVacation(t *testing.T) {
	r := setupServer(t)
	alice := register(t, r, "alice", "pw1")

	w := do(t, r, http.MethodPost, "/api/vacations", alice.Token, gin.H{"name": "Trip"})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	payload := decode[view.Vacations](t, w)
	require.Len(t, payload.Vacations, 1)

	trip := payload.Vacations[0]
	assert.Equal(t, "Trip", trip.Name)
	assert.Nil(t, trip.Dates)
	assert.Empty(t, trip.Comments)
	assert.Empty(t, trip.Activities)
	assert.Empty(t, trip.Users)

	// The self view carries identity plus the same vacations.
	w = do(t, r, http.MethodGet, "/api/users", alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[view.User](t, w)
	assert.Equal(t, alice.ID, me.ID)
	assert.Equal(t, "alice", me.Username)
	require.Len(t, me.Vacations, 1)
	assert.Equal(t, "Trip", me.Vacations[0].Name)

	// Missing name is a validation failure.
	w = do(t, r, http.MethodPost, "/api/vacations", alice.Token, gin.H{"place": "Cancun"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInviteFlow(t *testing.T) {
	r := setupServer(t)
	alice := register(t, r, "alice", "pw1")
	bob := register(t, r, "bob", "pw2")

	w := do(t, r, http.MethodPost, "/api/vacations", alice.Token, gin.H{"name": "Trip"})
	require.Equal(t, http.StatusCreated, w.Code)
	vid := decode[view.Vacations](t, w).Vacations[0].ID

	w = do(t, r, http.MethodPost, fmt.Sprintf("/api/vacations/%d/users", vid), alice.Token, gin.H{"username": "bob"})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	payload := decode[view.Vacations](t, w)
	require.Len(t, payload.Vacations, 1)
	require.Len(t, payload.Vacations[0].Users, 1)
	assert.Equal(t, bob.ID, payload.Vacations[0].Users[0].ID)
	assert.Equal(t, "bob", payload.Vacations[0].Users[0].Username)

	// Inviting bob again conflicts.
	w = do(t, r, http.MethodPost, fmt.Sprintf("/api/vacations/%d/users", vid), alice.Token, gin.H{"username": "bob"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown username is a 404.
	w = do(t, r, http.MethodPost, fmt.Sprintf("/api/vacations/%d/users", vid), alice.Token, gin.H{"username": "ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Only the owner may invite.
	register(t, r, "carol", "pw3")
	w = do(t, r, http.MethodPost, fmt.Sprintf("/api/vacations/%d/users", vid), bob.Token, gin.H{"username": "carol"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRemoveMember(t *testing.T) {
	r := setupServer(t)
	alice := register(t, r, "alice", "pw1")
	bob := register(t, r, "bob", "pw2")

	w := do(t, r, http.MethodPost, "/api/vacations", alice.Token, gin.H{"name": "Trip"})
	vid := decode[view.Vacations](t, w).Vacations[0].ID

	w = do(t, r, http.MethodPost, fmt.Sprintf("/api/vacations/%d/users", vid), alice.Token, gin.H{"username": "bob"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodDelete, fmt.Sprintf("/api/vacations/%d/users/%d", vid, bob.ID), alice.Token, nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	payload := decode[view.Vacations](t, w)
	assert.Empty(t, payload.Vacations[0].Users)

	// Removing someone who is not a member conflicts.
	w = do(t, r, http.MethodDelete, fmt.Sprintf("/api/vacations/%d/users/%d", vid, bob.ID), alice.Token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Removing an unknown user id is a 404.
	w = do(t, r, http.MethodDelete, fmt.Sprintf("/api/vacations/%d/users/999", vid), alice.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOnlyOwnerDeletesVacation(t *testing.T) {
	r := setupServer(t)
	alice := register(t, r, "alice", "pw1")
	bob := register(t, r, "bob", "pw2")

	w := do(t, r, http.MethodPost, "/api/vacations", alice.Token, gin.H{"name": "Trip"})
	vid := decode[view.Vacations](t, w).Vacations[0].ID

	w = do(t, r, http.MethodDelete, fmt.Sprintf("/api/vacations/%d", vid), bob.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Still there for alice.
	w = do(t, r, http.MethodGet, "/api/users", alice.Token, nil)
	me := decode[view.User](t, w)
	require.Len(t, me.Vacations, 1)

	w = do(t, r, http.MethodDelete, fmt.Sprintf("/api/vacations/%d", vid), alice.Token, nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	payload := decode[view.Vacations](t, w)
	assert.Empty(t, payload.Vacations)
}

func TestSingletonDates(t *testing.T) {
	r := setupServer(t)
	alice := register(t, r, "alice", "pw1")

	w := do(t, r, http.MethodPost, "/api/vacations", alice.Token, gin.H{"name": "Trip"})
	vid := decode[view.Vacations](t, w).Vacations[0].ID

	datesPath := fmt.Sprintf("/api/vacations/%d/dates", vid)

	w = do(t, r, http.MethodPost, datesPath, alice.Token, gin.H{
		"start": "2026-03-08T00:00:00Z",
		"end":   "2026-03-15T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	payload := decode[view.Vacations](t, w)
	require.NotNil(t, payload.Vacations[0].Dates)
	datesID := payload.Vacations[0].Dates.ID

	// Only the first creation succeeds.
	w = do(t, r, http.MethodPost, datesPath, alice.Token, gin.H{"start": "2026-04-01T00:00:00Z"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/api/users", alice.Token, nil)
	me := decode[view.User](t, w)
	require.NotNil(t, me.Vacations[0].Dates)
	assert.Equal(t, datesID, me.Vacations[0].Dates.ID)

	// The existing range updates through its own route.
	w = do(t, r, http.MethodPut, fmt.Sprintf("%s/%d", datesPath, datesID), alice.Token, gin.H{"end": "2026-03-20T00:00:00Z"})
	assert.Equal(t, http.StatusAccepted, w.Code)

	// Updating through another vacation's path must not resolve.
	w = do(t, r, http.MethodPost, "/api/vacations", alice.Token, gin.H{"name": "Other"})
	otherID := uint(0)
	for _, v := range decode[view.Vacations](t, w).Vacations {
		if v.Name == "Other" {
			otherID = v.ID
		}
	}
	w = do(t, r, http.MethodPut, fmt.Sprintf("/api/vacations/%d/dates/%d", otherID, datesID), alice.Token, gin.H{"end": "2026-05-01T00:00:00Z"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodDelete, fmt.Sprintf("%s/%d", datesPath, datesID), alice.Token, nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	payload = decode[view.Vacations](t, w)
	for _, v := range payload.Vacations {
		if v.ID == vid {
			assert.Nil(t, v.Dates)
		}
	}
}

func TestActivitiesOwnerOnly(t *testing.T) {
	r := setupServer(t)
	alice := register(t, r, "alice", "pw1")
	bob := register(t, r, "bob", "pw2")

	w := do(t, r, http.MethodPost, "/api/vacations", alice.Token, gin.H{"name": "Trip"})
	vid := decode[view.Vacations](t, w).Vacations[0].ID

	path := fmt.Sprintf("/api/vacations/%d/activities", vid)

	w = do(t, r, http.MethodPost, path, bob.Token, gin.H{"name": "Skiing"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodPost, path, alice.Token, gin.H{"name": "Skiing"})
	require.Equal(t, http.StatusCreated, w.Code)

	payload := decode[view.Vacations](t, w)
	require.Len(t, payload.Vacations[0].Activities, 1)
	activityID := payload.Vacations[0].Activities[0].ID
	assert.Equal(t, "Skiing", payload.Vacations[0].Activities[0].Name)

	w = do(t, r, http.MethodPut, fmt.Sprintf("%s/%d", path, activityID), alice.Token, gin.H{"description": "Black slopes only"})
	require.Equal(t, http.StatusAccepted, w.Code)
	payload = decode[view.Vacations](t, w)
	assert.Equal(t, "Black slopes only", payload.Vacations[0].Activities[0].Description)
	assert.Equal(t, "Skiing", payload.Vacations[0].Activities[0].Name, "absent fields keep their value")

	w = do(t, r, http.MethodDelete, fmt.Sprintf("%s/%d", path, activityID), alice.Token, nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	payload = decode[view.Vacations](t, w)
	assert.Empty(t, payload.Vacations[0].Activities)

	// Unknown activity id is a 404.
	w = do(t, r, http.MethodDelete, fmt.Sprintf("%s/999", path), alice.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentPermissions(t *testing.T) {
	r := setupServer(t)
	alice := register(t, r, "alice", "pw1")
	bob := register(t, r, "bob", "pw2")
	carol := register(t, r, "carol", "pw3")

	w := do(t, r, http.MethodPost, "/api/vacations", alice.Token, gin.H{"name": "Trip"})
	vid := decode[view.Vacations](t, w).Vacations[0].ID

	w = do(t, r, http.MethodPost, fmt.Sprintf("/api/vacations/%d/users", vid), alice.Token, gin.H{"username": "bob"})
	require.Equal(t, http.StatusCreated, w.Code)

	path := fmt.Sprintf("/api/vacations/%d/comments", vid)

	w = do(t, r, http.MethodPost, path, bob.Token, gin.H{"body": "Cancun here we go"})
	require.Equal(t, http.StatusCreated, w.Code)

	payload := decode[view.Vacations](t, w)
	require.Len(t, payload.Vacations[0].Comments, 1)
	commentID := payload.Vacations[0].Comments[0].ID
	assert.Equal(t, bob.ID, payload.Vacations[0].Comments[0].CreatedBy)

	commentPath := fmt.Sprintf("%s/%d", path, commentID)

	// Neither owner nor author: forbidden, comment unchanged.
	w = do(t, r, http.MethodPut, commentPath, carol.Token, gin.H{"body": "hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodGet, "/api/users", bob.Token, nil)
	me := decode[view.User](t, w)
	assert.Equal(t, "Cancun here we go", me.Vacations[0].Comments[0].Body)

	// The author may edit.
	w = do(t, r, http.MethodPut, commentPath, bob.Token, gin.H{"body": "edited"})
	assert.Equal(t, http.StatusAccepted, w.Code)

	// The vacation owner may delete someone else's comment.
	w = do(t, r, http.MethodDelete, commentPath, alice.Token, nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	payload = decode[view.Vacations](t, w)
	assert.Empty(t, payload.Vacations[0].Comments)
}

func TestDeleteVacationCascades(t *testing.T) {
	r := setupServer(t)
	alice := register(t, r, "alice", "pw1")

	w := do(t, r, http.MethodPost, "/api/vacations", alice.Token, gin.H{"name": "Trip"})
	vid := decode[view.Vacations](t, w).Vacations[0].ID

	base := fmt.Sprintf("/api/vacations/%d", vid)
	do(t, r, http.MethodPost, base+"/dates", alice.Token, gin.H{"start": "2026-03-08T00:00:00Z"})
	do(t, r, http.MethodPost, base+"/activities", alice.Token, gin.H{"name": "Xcaret"})
	do(t, r, http.MethodPost, base+"/comments", alice.Token, gin.H{"body": "pumped"})

	w = do(t, r, http.MethodDelete, base, alice.Token, nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Empty(t, decode[view.Vacations](t, w).Vacations)

	w = do(t, r, http.MethodGet, "/api/users", alice.Token, nil)
	assert.Empty(t, decode[view.User](t, w).Vacations)

	// Former children are unreachable; the vacation itself is gone.
	w = do(t, r, http.MethodPost, base+"/comments", alice.Token, gin.H{"body": "ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The child rows were removed with their parent.
	for _, child := range []interface{}{
		&models.DateRange{}, &models.Activity{}, &models.Comment{}, &models.Membership{},
	} {
		var count int64
		require.NoError(t, db.DB.Model(child).Where("vacation_id = ?", vid).Count(&count).Error)
		assert.Zero(t, count, "%T rows should cascade", child)
	}
}

func TestNestedRouteUnknownVacation(t *testing.T) {
	r := setupServer(t)
	alice := register(t, r, "alice", "pw1")

	w := do(t, r, http.MethodPost, "/api/vacations/999/activities", alice.Token, gin.H{"name": "Skiing"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodPost, "/api/vacations/abc/activities", alice.Token, gin.H{"name": "Skiing"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSelf(t *testing.T) {
	r := setupServer(t)
	alice := register(t, r, "alice", "pw1")

	w := do(t, r, http.MethodPut, "/api/users", alice.Token, gin.H{"avatar": "https://example.com/a.png"})
	require.Equal(t, http.StatusAccepted, w.Code)

	me := decode[view.User](t, w)
	assert.Equal(t, "https://example.com/a.png", me.Avatar)
	assert.Equal(t, "alice", me.Username, "absent fields keep their value")

	// Taking another user's name conflicts.
	register(t, r, "bob", "pw2")
	w = do(t, r, http.MethodPut, "/api/users", alice.Token, gin.H{"username": "bob"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPut, "/api/users", alice.Token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateVacationPartial(t *testing.T) {
	r := setupServer(t)
	alice := register(t, r, "alice", "pw1")
	bob := register(t, r, "bob", "pw2")

	w := do(t, r, http.MethodPost, "/api/vacations", alice.Token, gin.H{
		"name":  "Trip",
		"place": "Cancun",
	})
	vid := decode[view.Vacations](t, w).Vacations[0].ID

	path := fmt.Sprintf("/api/vacations/%d", vid)

	w = do(t, r, http.MethodPut, path, bob.Token, gin.H{"name": "Stolen"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodPut, path, alice.Token, gin.H{"description": "Summer getaway"})
	require.Equal(t, http.StatusAccepted, w.Code)

	trip := decode[view.Vacations](t, w).Vacations[0]
	assert.Equal(t, "Trip", trip.Name)
	assert.Equal(t, "Cancun", trip.Place)
	assert.Equal(t, "Summer getaway", trip.Description)

	w = do(t, r, http.MethodPut, "/api/vacations/999", alice.Token, gin.H{"name": "Nope"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
