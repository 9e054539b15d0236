package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agri-connect/internal/job/app"
	"agri-connect/internal/job/domain"
	"agri-connect/internal/job/repo"
	"agri-connect/internal/shared/ai"
	"agri-connect/internal/shared/util"
)

func newTestHandler() *Handler {
	return NewHandler(app.NewJobService(repo.NewMemoryRepo(), nil, ai.NewStatic(), util.New()))
}

// Clients post their full job record including id, status, distance
// and rating; server-managed fields are ignored and assigned fresh.
func TestPostJobIgnoresClientManagedFields(t *testing.T) {
	handler := newTestHandler()

	body := []byte(`{
		"id": "job_123",
		"farmerId": "f-1",
		"farmerName": "Mahesh",
		"workType": "Wheat Harvesting",
		"wage": 500,
		"lat": 12.97,
		"lng": 77.59,
		"status": "FILLED",
		"distance": 3.2,
		"rating": 4.5
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/jobs", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.JobsHandler(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var job domain.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, domain.StatusOpen, job.Status)
	assert.NotEmpty(t, job.ID)
	assert.NotEqual(t, "job_123", job.ID)
	assert.Equal(t, "Wheat Harvesting", job.WorkType)
	assert.Zero(t, job.Rating)
}

func TestPostJobRejectsMalformedBody(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/jobs", bytes.NewReader([]byte(`{"farmerId":`)))
	rec := httptest.NewRecorder()
	handler.JobsHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
