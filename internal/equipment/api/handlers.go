package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"agri-connect/internal/equipment/app"
	"agri-connect/internal/equipment/domain"
	"agri-connect/internal/shared/util"
)

type Handler struct {
	service *app.EquipmentService
}

func NewHandler(service *app.EquipmentService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/equipment", h.EquipmentHandler)
	mux.HandleFunc("/api/equipment/", h.TipsHandler)
}

func (h *Handler) EquipmentHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.addEquipment(w, r)
	case http.MethodGet:
		h.listEquipment(w, r)
	default:
		util.WriteJSONError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) addEquipment(w http.ResponseWriter, r *http.Request) {
	logger := util.New()
	start := time.Now()

	var input domain.AddRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logger.Error("AddEquipmentHandler", err)
		util.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	equipment, err := h.service.Add(r.Context(), input)
	if err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusCreated, equipment)
	logger.HTTP(http.StatusCreated, time.Since(start), r.RemoteAddr, r.Method, r.URL.Path)
}

func (h *Handler) listEquipment(w http.ResponseWriter, r *http.Request) {
	logger := util.New()
	start := time.Now()

	origin, radius, err := util.ParseGeoQuery(r)
	if err != nil {
		util.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	equipment, err := h.service.ListNearby(r.Context(), origin, radius, util.ParseSortKey(r))
	if err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusOK, equipment)
	logger.HTTP(http.StatusOK, time.Since(start), r.RemoteAddr, r.Method, r.URL.Path)
}

// TipsHandler serves GET /api/equipment/{id}/tips.
func (h *Handler) TipsHandler(w http.ResponseWriter, r *http.Request) {
	logger := util.New()
	start := time.Now()

	if r.Method != http.MethodGet {
		util.WriteJSONError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 4 || parts[0] != "api" || parts[1] != "equipment" || parts[3] != "tips" {
		util.WriteJSONError(w, "invalid URL path", http.StatusBadRequest)
		return
	}

	tips, err := h.service.MaintenanceTips(r.Context(), parts[2])
	if err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusOK, map[string]string{"tips": tips})
	logger.HTTP(http.StatusOK, time.Since(start), r.RemoteAddr, r.Method, r.URL.Path)
}
