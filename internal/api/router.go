package api

import (
	"net/http"
	"time"

	"learning_iq/internal/api/handler"
	"learning_iq/internal/api/middleware"
	"learning_iq/internal/app/service"
	"learning_iq/internal/common/security"
	"learning_iq/internal/platform/config"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	userService *service.UserService,
	catalogService *service.CatalogService,
	progressService *service.ProgressService,
	insightService *service.InsightService,
	engagementService *service.EngagementService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Token handling: Verifier parses a bearer token when present; Identity
	// turns valid claims into a user id and lets everything else through as
	// anonymous.
	r.Use(jwtauth.Verifier(security.TokenAuth))
	r.Use(middleware.Identity)

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(api chi.Router) {
		handler.NewAuthHandler(authService).RegisterRoutes(api)
		handler.NewUserHandler(userService).RegisterRoutes(api)
		handler.NewCatalogHandler(catalogService).RegisterRoutes(api)
		handler.NewProgressHandler(progressService).RegisterRoutes(api)
		handler.NewInsightHandler(insightService).RegisterRoutes(api)
		handler.NewEngagementHandler(engagementService, config.AppConfig.DefaultUserID).RegisterRoutes(api)
	})

	return r
}
