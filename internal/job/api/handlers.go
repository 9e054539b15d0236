package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"agri-connect/internal/job/app"
	"agri-connect/internal/job/domain"
	"agri-connect/internal/shared/middleware"
	"agri-connect/internal/shared/util"
)

type Handler struct {
	service *app.JobService
}

func NewHandler(service *app.JobService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/jobs", h.JobsHandler)
	mux.Handle("/api/jobs/", middleware.Auth(http.HandlerFunc(h.UpdateStatusHandler)))
}

func (h *Handler) JobsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.postJob(w, r)
	case http.MethodGet:
		h.listJobs(w, r)
	default:
		util.WriteJSONError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) postJob(w http.ResponseWriter, r *http.Request) {
	logger := util.New()
	start := time.Now()

	// Clients post their full job record; server-managed fields such
	// as id and status are ignored here and assigned by the service.
	var input domain.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logger.Error("PostJobHandler", err)
		util.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	job, err := h.service.Post(r.Context(), input)
	if err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusCreated, job)
	logger.HTTP(http.StatusCreated, time.Since(start), r.RemoteAddr, r.Method, r.URL.Path)
}

// listJobs serves both modes: ?farmerId= returns the farmer's own
// jobs with no proximity filtering; otherwise lat/lng/radius drive a
// nearby-open-jobs query.
func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	logger := util.New()
	start := time.Now()

	if farmerID := r.URL.Query().Get("farmerId"); farmerID != "" {
		jobs, err := h.service.ListByFarmer(r.Context(), farmerID)
		if err != nil {
			util.ErrResponseInJson(w, err)
			return
		}
		util.ResponseInJson(w, http.StatusOK, jobs)
		logger.HTTP(http.StatusOK, time.Since(start), r.RemoteAddr, r.Method, r.URL.Path)
		return
	}

	origin, radius, err := util.ParseGeoQuery(r)
	if err != nil {
		util.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	jobs, err := h.service.ListNearbyOpen(r.Context(), origin, radius, util.ParseSortKey(r))
	if err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusOK, jobs)
	logger.HTTP(http.StatusOK, time.Since(start), r.RemoteAddr, r.Method, r.URL.Path)
}

func (h *Handler) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	logger := util.New()
	start := time.Now()

	if r.Method != http.MethodPatch {
		util.WriteJSONError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 3 || parts[0] != "api" || parts[1] != "jobs" {
		util.WriteJSONError(w, "invalid URL path", http.StatusBadRequest)
		return
	}
	jobID := parts[2]

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Error("UpdateStatusHandler", err)
		util.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	job, err := h.service.UpdateStatus(r.Context(), jobID, middleware.GetUserID(r.Context()), body.Status)
	if err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusOK, job)
	logger.HTTP(http.StatusOK, time.Since(start), r.RemoteAddr, r.Method, r.URL.Path)
}
