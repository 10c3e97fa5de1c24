package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"phishguard/internal/analyzer"
	feedbackAPI "phishguard/internal/app/server/api/http/feedback"
	healthAPI "phishguard/internal/app/server/api/http/health"
	"phishguard/internal/app/server/api/http/middleware"
	"phishguard/internal/app/server/api/http/middleware/logger"
	scanAPI "phishguard/internal/app/server/api/http/scan"
	userAPI "phishguard/internal/app/server/api/http/user"
	"phishguard/internal/domain/feedback"
	"phishguard/internal/domain/scan"
	"phishguard/internal/domain/user"
)

// Repositories — набор хранилищ, которым владеет выбранный бэкенд
// (memory или postgres); роутер получает их по ссылке.
type Repositories struct {
	Scans    scan.Repository
	Feedback feedback.Repository
	Users    user.Repository
}

type Handlers struct {
	Health   *healthAPI.Handler
	Scan     *scanAPI.Handler
	Feedback *feedbackAPI.Handler
	User     *userAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register
func New(repos Repositories, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("PhishGuard API", "1.0.0")

	API := humachi.New(mux, config)

	h := handlers(repos, log)
	h.Health.SetupRoutes(API)
	h.Scan.SetupRoutes(API)
	h.Feedback.SetupRoutes(API)
	h.User.SetupRoutes(API)

	return mux
}

func handlers(repos Repositories, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	scanService := scan.NewService(repos.Scans, analyzer.NewURL(), analyzer.NewScreenshot(), log)
	middlewares.Add(loggerMW.Middleware())
	scanHandler := scanAPI.NewHandler(scanService, log, middlewares.GetAllAndClear())

	feedbackService := feedback.NewService(repos.Feedback, repos.Scans, log)
	middlewares.Add(loggerMW.Middleware())
	feedbackHandler := feedbackAPI.NewHandler(feedbackService, log, middlewares.GetAllAndClear())

	userService := user.NewService(repos.Users, user.NewRegisterValidator(), log)
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		Scan:     scanHandler,
		Feedback: feedbackHandler,
		User:     userHandler,
	}
}
