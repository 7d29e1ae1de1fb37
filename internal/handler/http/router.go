package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/worktrack/timeclock-backend-go/internal/config"
	"github.com/worktrack/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/jwt"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	jwtService *jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	statsHandler StatsHandler,
	adminHandler AdminHandler,
	gatherer prometheus.Gatherer,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel(cfg.App.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Method(http.MethodGet, "/metrics", metrics.Handler(gatherer))

	uploads := http.StripPrefix("/uploads", http.FileServer(http.Dir(cfg.Storage.BasePath)))
	r.Get("/uploads/*", uploads.ServeHTTP)

	authLimiter := middleware.NewRateLimiter(rate.Limit(5), 10)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Use(authLimiter.Handler)

			r.Post("/login", authHandler.LoginUser)
			r.Route("/admin", func(r chi.Router) {
				r.Post("/register", authHandler.RegisterAdmin)
				r.Post("/login", authHandler.LoginAdmin)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/me", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Post("/sick", attendanceHandler.ReportSick)
				r.Get("/attendance", attendanceHandler.GetMyAttendance)

				r.Route("/break", func(r chi.Router) {
					r.Post("/start", attendanceHandler.StartBreak)
					r.Post("/end", attendanceHandler.EndBreak)
				})

				r.Get("/stats", statsHandler.GetMyStats)
				r.Get("/reports", statsHandler.GetMyReports)
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Post("/users", adminHandler.CreateUser)
				r.Get("/users", adminHandler.ListUsers)
				r.Get("/users/{userID}/stats", adminHandler.GetUserStats)
				r.Get("/overview", adminHandler.GetOverview)
			})
		})
	})

	return r
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
