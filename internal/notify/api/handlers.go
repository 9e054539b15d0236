package api

import (
	"net/http"
	"time"

	"agri-connect/internal/notify/app"
	"agri-connect/internal/shared/util"
)

type Handler struct {
	service *app.NotificationService
	ws      *WSManager
}

func NewHandler(service *app.NotificationService, ws *WSManager) *Handler {
	return &Handler{service: service, ws: ws}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/notifications", h.ListHandler)
	mux.HandleFunc("/ws/users/", h.UserWSHandler)
}

func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	logger := util.New()
	start := time.Now()

	if r.Method != http.MethodGet {
		util.WriteJSONError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	notifications, err := h.service.List(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusOK, notifications)
	logger.HTTP(http.StatusOK, time.Since(start), r.RemoteAddr, r.Method, r.URL.Path)
}
