package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"problem_app/internal/app/service"
	"problem_app/internal/common"
	"problem_app/internal/logger"
)

type UserHandler struct {
	userService *service.UserService
	log         *logger.Logger
}

func NewUserHandler(us *service.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{userService: us, log: log}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/online", h.listOnline)
}

func (h *UserHandler) listOnline(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListOnline(r.Context())
	if err != nil {
		common.RespondWithServiceError(w, r, h.log, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, users)
}
