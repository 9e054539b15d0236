package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agri-connect/internal/shared/middleware"
	"agri-connect/internal/shared/util"
	"agri-connect/internal/user/app"
	"agri-connect/internal/user/domain"
	"agri-connect/internal/user/repo"
)

func newTestHandler() *Handler {
	return NewHandler(app.NewUserService(repo.NewMemoryRepo(), nil, nil, util.New()))
}

// Clients send their full user record on login, including a
// client-side id and rating; those fields are ignored, not rejected.
func TestLoginAcceptsFullUserRecord(t *testing.T) {
	handler := newTestHandler()

	body := []byte(`{
		"id": "user_1",
		"name": "Ravi",
		"phone": "9000000001",
		"role": "WORKER",
		"lat": 12.97,
		"lng": 77.59,
		"available": true,
		"rating": 4.2
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.LoginHandler(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.NotEmpty(t, out.Token)
	assert.NotEmpty(t, out.ID)
	assert.NotEqual(t, "user_1", out.ID)
	assert.Equal(t, "Ravi", out.Name)
	assert.Zero(t, out.Rating)
}

func TestUpdateUserAcceptsFullUserRecord(t *testing.T) {
	handler := newTestHandler()

	created, _, err := handler.service.Upsert(context.Background(), domain.UpsertRequest{
		Phone: "9000000002",
		Role:  domain.RoleWorker,
	})
	require.NoError(t, err)

	body := []byte(`{
		"id": "` + created.ID + `",
		"name": "Ravi Kumar",
		"phone": "9000000002",
		"role": "WORKER",
		"available": false,
		"rating": 4.8
	}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/users/"+created.ID, bytes.NewReader(body))
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, created.ID))
	rec := httptest.NewRecorder()
	handler.UpdateUserHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var user domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "Ravi Kumar", user.Name)
	assert.False(t, user.Available)
}

func TestUpdateUserRejectsOtherUsers(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPatch, "/api/users/u-1", bytes.NewReader([]byte(`{}`)))
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, "u-2"))
	rec := httptest.NewRecorder()
	handler.UpdateUserHandler(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
