package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"problem_app/internal/api/middleware"
	"problem_app/internal/app/service"
	"problem_app/internal/common"
	"problem_app/internal/logger"
)

type CommentHandler struct {
	commentService *service.CommentService
	log            *logger.Logger
}

func NewCommentHandler(cs *service.CommentService, log *logger.Logger) *CommentHandler {
	return &CommentHandler{commentService: cs, log: log}
}

type createCommentRequest struct {
	Content string `json:"content"`
}

// RegisterRoutes expects to be mounted behind the authenticator.
func (h *CommentHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listComments)
	r.Post("/", h.createComment)
	r.Delete("/{commentID}", h.deleteComment)
}

func (h *CommentHandler) listComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.commentService.ListComments(r.Context())
	if err != nil {
		common.RespondWithServiceError(w, r, h.log, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) createComment(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req createCommentRequest
	if !decodeJSON(w, r, &req, "Invalid request: ") {
		return
	}

	comment, err := h.commentService.CreateComment(r.Context(), service.Author{
		UserID:   identity.UserID,
		Username: identity.Username,
	}, req.Content)
	if err != nil {
		common.RespondWithServiceError(w, r, h.log, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) deleteComment(w http.ResponseWriter, r *http.Request) {
	if err := h.commentService.DeleteComment(r.Context(), chi.URLParam(r, "commentID")); err != nil {
		common.RespondWithServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
