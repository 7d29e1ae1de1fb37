package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/worktrack/timeclock-backend-go/internal/config"
	appHTTP "github.com/worktrack/timeclock-backend-go/internal/handler/http"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/clock"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/database"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/jwt"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/metrics"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/storage"
	"github.com/worktrack/timeclock-backend-go/internal/repository/postgresql"
	attendanceService "github.com/worktrack/timeclock-backend-go/internal/service/attendance"
	authService "github.com/worktrack/timeclock-backend-go/internal/service/auth"
	"github.com/worktrack/timeclock-backend-go/internal/service/file"
	reportService "github.com/worktrack/timeclock-backend-go/internal/service/report"
	statsService "github.com/worktrack/timeclock-backend-go/internal/service/stats"
	userService "github.com/worktrack/timeclock-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()

	if err := database.RunMigrations(dsn); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	sessionRepo := postgresql.NewSessionRepository(db)
	breakRepo := postgresql.NewBreakRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	adminRepo := postgresql.NewAdminRepository(db)
	userRepo := postgresql.NewUserRepository(db)

	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Expiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}
	fileService := file.NewFileService(fileStorage)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	recorder := metrics.NewCollector(registry)

	clk := clock.System()

	reports := reportService.NewReportService(reportRepo)
	attendances := attendanceService.NewAttendanceService(db, sessionRepo, breakRepo, reports, clk, recorder)
	statss := statsService.NewStatsService(sessionRepo, breakRepo, reportRepo, clk)
	auths := authService.NewAuthService(adminRepo, userRepo, jwtService)
	users := userService.NewUserService(userRepo, adminRepo, sessionRepo, reportRepo, clk)

	authHandler := appHTTP.NewAuthHandler(auths)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendances, fileService)
	statsHandler := appHTTP.NewStatsHandler(statss, reports)
	adminHandler := appHTTP.NewAdminHandler(users)

	router := appHTTP.NewRouter(cfg, jwtService, authHandler, attendanceHandler, statsHandler, adminHandler, registry)

	addr := ":" + cfg.App.Port
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}
