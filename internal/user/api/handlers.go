package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"agri-connect/internal/shared/jwt"
	"agri-connect/internal/shared/middleware"
	"agri-connect/internal/shared/util"
	"agri-connect/internal/user/domain"
)

type LoginResponse struct {
	domain.User
	Token string `json:"token"`
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	logger := util.New()
	start := time.Now()

	if r.Method != http.MethodPost {
		util.WriteJSONError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Clients send their full user record on login; server-managed
	// fields such as id are ignored here and assigned by the service.
	var input domain.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logger.Error("LoginHandler", err)
		util.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	user, created, err := h.service.Upsert(r.Context(), input)
	if err != nil {
		logger.Error("LoginHandler", err)
		util.ErrResponseInJson(w, err)
		return
	}

	token, err := jwt.GenerateToken(user.ID, user.Phone, user.Role)
	if err != nil {
		logger.Error("LoginHandler", err)
		util.WriteJSONError(w, "failed to issue session token", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	util.ResponseInJson(w, status, LoginResponse{User: *user, Token: token})
	logger.HTTP(status, time.Since(start), r.RemoteAddr, r.Method, r.URL.Path)
}

func (h *Handler) LookupHandler(w http.ResponseWriter, r *http.Request) {
	logger := util.New()
	start := time.Now()

	if r.Method != http.MethodGet {
		util.WriteJSONError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, err := h.service.LookupByPhone(r.Context(), r.URL.Query().Get("phone"))
	if err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusOK, user)
	logger.HTTP(http.StatusOK, time.Since(start), r.RemoteAddr, r.Method, r.URL.Path)
}

func (h *Handler) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	logger := util.New()
	start := time.Now()

	if r.Method != http.MethodPatch {
		util.WriteJSONError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 3 || parts[0] != "api" || parts[1] != "users" {
		util.WriteJSONError(w, "invalid URL path", http.StatusBadRequest)
		return
	}
	userID := parts[2]

	if middleware.GetUserID(r.Context()) != userID {
		logger.Warn("UpdateUserHandler", "caller tried to update another user's profile")
		util.WriteJSONError(w, "you can only update your own profile", http.StatusForbidden)
		return
	}

	var upd domain.Update
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		logger.Error("UpdateUserHandler", err)
		util.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	user, err := h.service.UpdateUser(r.Context(), userID, upd)
	if err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusOK, user)
	logger.HTTP(http.StatusOK, time.Since(start), r.RemoteAddr, r.Method, r.URL.Path)
}

func (h *Handler) ListWorkersHandler(w http.ResponseWriter, r *http.Request) {
	logger := util.New()
	start := time.Now()

	if r.Method != http.MethodGet {
		util.WriteJSONError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	origin, radius, err := util.ParseGeoQuery(r)
	if err != nil {
		util.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	workers, err := h.service.ListWorkers(r.Context(), origin, radius, util.ParseSortKey(r))
	if err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusOK, workers)
	logger.HTTP(http.StatusOK, time.Since(start), r.RemoteAddr, r.Method, r.URL.Path)
}
