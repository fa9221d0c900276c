package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"

	"problem_app/internal/api/handler"
	"problem_app/internal/api/middleware"
	"problem_app/internal/app/service"
	"problem_app/internal/common/security"
	"problem_app/internal/logger"
	"problem_app/internal/platform/config"
	"problem_app/internal/platform/metrics"
)

type RouterDeps struct {
	Config         *config.Config
	Log            *logger.Logger
	Issuer         *security.TokenIssuer
	AuthService    *service.AuthService
	UserService    *service.UserService
	ProblemService *service.ProblemService
	CommentService *service.CommentService
	HealthChecks   map[string]handler.Pinger
}

func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(deps.Log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.HTTPMetrics)
	r.Use(chiMiddleware.Timeout(deps.Config.HTTP.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Finds "Authorization: Bearer T" and verifies signature and expiry.
	// Routes that need a caller add requireAuth on top.
	r.Use(jwtauth.Verifier(deps.Issuer.Auth()))

	requireAuth := func(next http.Handler) http.Handler {
		return middleware.Authenticator(deps.Issuer)(middleware.TrackPresence(deps.UserService)(next))
	}

	r.Method(http.MethodGet, "/health", handler.NewHealthHandler(deps.HealthChecks))
	metrics.Init()
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(api chi.Router) {
		authHandler := handler.NewAuthHandler(deps.AuthService, deps.Log)
		api.Route("/auth", authHandler.RegisterRoutes)

		problemHandler := handler.NewProblemHandler(deps.ProblemService, deps.Log)
		api.Route("/problems", func(pr chi.Router) {
			problemHandler.RegisterRoutes(pr, requireAuth)
		})

		commentHandler := handler.NewCommentHandler(deps.CommentService, deps.Log)
		api.With(requireAuth).Route("/comments", commentHandler.RegisterRoutes)

		userHandler := handler.NewUserHandler(deps.UserService, deps.Log)
		api.With(requireAuth).Route("/users", userHandler.RegisterRoutes)
	})

	return r
}
