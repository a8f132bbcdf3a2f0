package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dtroode/aethercure-server/internal/api/http/handler"
	"github.com/dtroode/aethercure-server/internal/api/http/middleware"
	"github.com/dtroode/aethercure-server/internal/logger"
	"github.com/dtroode/aethercure-server/internal/metrics"
	"github.com/dtroode/aethercure-server/internal/model"
)

// Services groups the application services exposed over HTTP.
type Services struct {
	Auth    handler.AuthService
	Tokens  middleware.TokenVerifier
	User    handler.UserService
	File    handler.FileService
	Share   handler.ShareService
	Medical handler.MedicalService
}

// Router represents the HTTP router for aethercure operations.
// It wires handlers and middleware onto a chi mux.
type Router struct {
	services       Services
	contextManager model.ContextManager
	rateLimiter    *middleware.RateLimiter
	recorder       metrics.Recorder
	metricsHandler http.Handler
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
//
// Parameters:
//   - services: The application services
//   - contextManager: Stores verified claims in request contexts
//   - rateLimiter: Per-IP limiter for unauthenticated auth endpoints, may be nil
//   - recorder: Metrics recorder for request accounting
//   - metricsHandler: Scrape handler mounted at /metrics, may be nil
//   - logger: The logger for request logging
//
// Returns a pointer to the newly created Router instance.
func New(
	services Services,
	contextManager model.ContextManager,
	rateLimiter *middleware.RateLimiter,
	recorder metrics.Recorder,
	metricsHandler http.Handler,
	logger *logger.Logger,
) *Router {
	return &Router{
		services:       services,
		contextManager: contextManager,
		rateLimiter:    rateLimiter,
		recorder:       recorder,
		metricsHandler: metricsHandler,
		logger:         logger,
	}
}

// Register builds the route tree.
func (r *Router) Register() http.Handler {
	mux := chi.NewRouter()

	mux.Use(chimiddleware.RealIP)
	mux.Use(middleware.NewLogging(r.logger, r.recorder).Handler)
	mux.Use(middleware.Recover(r.logger))

	authenticate := middleware.NewAuthenticate(r.services.Tokens, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.services.Auth, r.contextManager, r.logger)
	userHandler := handler.NewUser(r.services.User, r.contextManager, r.logger)
	fileHandler := handler.NewFile(r.services.File, r.contextManager, r.logger)
	shareHandler := handler.NewShare(r.services.Share, r.contextManager, r.logger)
	medicalHandler := handler.NewMedical(r.services.Medical, r.contextManager, r.logger)

	mux.Group(func(pub chi.Router) {
		if r.rateLimiter != nil {
			pub.Use(r.rateLimiter.Handler)
		}
		pub.Post("/signUp", authHandler.SignUp)
		pub.Post("/verify", authHandler.Verify)
		pub.Post("/login", authHandler.Login)
		pub.Post("/forgotPass", authHandler.ForgotPassword)
		pub.Post("/resetPassVerify", authHandler.ResetPasswordVerify)
	})

	mux.Post("/logout", authHandler.Logout)
	mux.Get("/files/shared/{shareId}", shareHandler.GetSharedFile)

	if r.metricsHandler != nil {
		mux.Method(http.MethodGet, "/metrics", r.metricsHandler)
	}

	mux.Group(func(priv chi.Router) {
		priv.Use(authenticate.Handler)

		priv.Post("/resetPassword", authHandler.ResetPassword)

		priv.Get("/getUser", userHandler.GetUser)
		priv.Get("/getAllUsers", userHandler.ListUsers)
		priv.Put("/update", userHandler.UpdateUser)
		priv.Delete("/delete", userHandler.DeleteUser)
		priv.Post("/updateBlockchainId", userHandler.UpdateBlockchainID)

		priv.Post("/files", fileHandler.CreateFile)
		priv.Get("/files/user", fileHandler.ListFiles)
		priv.Patch("/files/{id}", fileHandler.UpdateFile)
		priv.Delete("/files/{id}", fileHandler.DeleteFile)

		priv.Post("/files/share", shareHandler.CreateShare)
		priv.Get("/files/shared/links", shareHandler.ListShares)
		priv.Delete("/files/shared/{shareId}", shareHandler.DeleteShare)

		priv.Post("/medical-info", medicalHandler.SaveMedicalInfo)
		priv.Get("/medical-info", medicalHandler.GetMedicalInfo)
		priv.Delete("/medical-info", medicalHandler.DeleteMedicalInfo)
	})

	return mux
}
