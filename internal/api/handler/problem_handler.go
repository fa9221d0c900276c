package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"problem_app/internal/app/service"
	"problem_app/internal/common"
	"problem_app/internal/domain/model"
	"problem_app/internal/logger"
)

type ProblemHandler struct {
	problemService *service.ProblemService
	log            *logger.Logger
}

func NewProblemHandler(ps *service.ProblemService, log *logger.Logger) *ProblemHandler {
	return &ProblemHandler{problemService: ps, log: log}
}

// RegisterRoutes mounts the problem routes. Only the single-problem view is
// public; everything else goes through requireAuth.
func (h *ProblemHandler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Get("/{problemID}", h.getProblem) // GET /api/problems/{id}

	r.Group(func(authed chi.Router) {
		authed.Use(requireAuth)
		authed.Get("/", h.listProblems)
		authed.Post("/", h.createProblem)
		authed.Put("/{problemID}", h.updateProblem)
		authed.Delete("/{problemID}", h.deleteProblem)

		authed.Get("/categories", h.listCategories)
		authed.Post("/categories", h.createCategory)
	})
}

func (h *ProblemHandler) listProblems(w http.ResponseWriter, r *http.Request) {
	problems, err := h.problemService.ListProblems(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		common.RespondWithServiceError(w, r, h.log, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, problems)
}

func (h *ProblemHandler) getProblem(w http.ResponseWriter, r *http.Request) {
	problem, err := h.problemService.GetProblem(r.Context(), chi.URLParam(r, "problemID"))
	if err != nil {
		common.RespondWithServiceError(w, r, h.log, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, problem)
}

func (h *ProblemHandler) createProblem(w http.ResponseWriter, r *http.Request) {
	var req model.Problem
	if !decodeJSON(w, r, &req, "Invalid request: ") {
		return
	}

	problem, err := h.problemService.CreateProblem(r.Context(), req)
	if err != nil {
		common.RespondWithServiceError(w, r, h.log, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, problem)
}

func (h *ProblemHandler) updateProblem(w http.ResponseWriter, r *http.Request) {
	var req model.Problem
	if !decodeJSON(w, r, &req, "Invalid request: ") {
		return
	}

	problem, err := h.problemService.UpdateProblem(r.Context(), chi.URLParam(r, "problemID"), req)
	if err != nil {
		common.RespondWithServiceError(w, r, h.log, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, problem)
}

func (h *ProblemHandler) deleteProblem(w http.ResponseWriter, r *http.Request) {
	if err := h.problemService.DeleteProblem(r.Context(), chi.URLParam(r, "problemID")); err != nil {
		common.RespondWithServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProblemHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.problemService.ListCategories(r.Context())
	if err != nil {
		common.RespondWithServiceError(w, r, h.log, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, categories)
}

func (h *ProblemHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req model.Category
	if !decodeJSON(w, r, &req, "Invalid request: ") {
		return
	}

	category, err := h.problemService.CreateCategory(r.Context(), req)
	if err != nil {
		common.RespondWithServiceError(w, r, h.log, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, category)
}
