package api

import (
	"net/http"

	"agri-connect/internal/shared/middleware"
	"agri-connect/internal/user/app"
)

type Handler struct {
	service *app.UserService
}

func NewHandler(service *app.UserService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/login", h.LoginHandler)
	mux.HandleFunc("/api/users/lookup", h.LookupHandler)
	mux.Handle("/api/users/", middleware.Auth(http.HandlerFunc(h.UpdateUserHandler)))
	mux.HandleFunc("/api/workers", h.ListWorkersHandler)
}
