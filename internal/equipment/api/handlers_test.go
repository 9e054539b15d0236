package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agri-connect/internal/equipment/app"
	"agri-connect/internal/equipment/domain"
	"agri-connect/internal/equipment/repo"
	"agri-connect/internal/shared/ai"
	"agri-connect/internal/shared/util"
)

// Clients send their full equipment record; server-managed fields such
// as id and rating are ignored, not rejected.
func TestAddEquipmentIgnoresClientManagedFields(t *testing.T) {
	handler := NewHandler(app.NewEquipmentService(repo.NewMemoryRepo(), ai.NewStatic(), util.New()))

	body := []byte(`{
		"id": "equip_1",
		"providerId": "p-1",
		"type": "TRACTOR",
		"name": "Mahindra 575",
		"rentPerDay": 1200,
		"lat": 12.97,
		"lng": 77.59,
		"available": false,
		"rating": 4.9
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/equipment", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.EquipmentHandler(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var equipment domain.Equipment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &equipment))
	assert.NotEqual(t, "equip_1", equipment.ID)
	assert.True(t, equipment.Available)
	assert.Zero(t, equipment.Rating)
}
