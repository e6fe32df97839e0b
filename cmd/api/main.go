package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/config"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/hris-lite-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/dateonly"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/logger"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/sqlite"
	attendanceService "github.com/cmlabs-hris/hris-lite-go/internal/service/attendance"
	dashboardService "github.com/cmlabs-hris/hris-lite-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/hris-lite-go/internal/service/employee"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.LogLevel,
		slog.String("app", "hris-lite"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	employeeRepo, attendanceRepo, closeDB, err := openRepositories(ctx, cfg)
	if err != nil {
		log.Error("Error connecting to database", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	defer closeDB()

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, attendanceRepo)

	if cfg.App.SeedDemo {
		if _, err := fixtures.SeedDemo(ctx, employeeSvc, attendanceSvc, dateonly.Today()); err != nil {
			log.Error("Error seeding demo data", "error", err)
			os.Exit(1)
		}
	}

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{Logger: log, AllowedOrigins: cfg.App.FrontendURL},
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown error", "error", err)
		}
	}()

	log.Info("Server running", "addr", "http://localhost"+srv.Addr, "driver", cfg.Database.Driver)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("Server error", "error", err)
		os.Exit(1)
	}
}

func openRepositories(ctx context.Context, cfg *config.ServerConfig) (employee.EmployeeRepository, attendance.AttendanceRepository, func(), error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.Database.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		return sqlite.NewEmployeeRepository(db), sqlite.NewAttendanceRepository(db), closeSQL(db), nil
	default:
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			return nil, nil, nil, err
		}
		if err := postgresql.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		return postgresql.NewEmployeeRepository(db), postgresql.NewAttendanceRepository(db), db.Close, nil
	}
}

func closeSQL(db *sql.DB) func() {
	return func() {
		if err := db.Close(); err != nil {
			slog.Error("Error closing database", "error", err)
		}
	}
}
