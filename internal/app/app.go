package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"property-backoffice/internal/config"
	"property-backoffice/internal/database"
	"property-backoffice/internal/event"
	"property-backoffice/internal/handler"
	"property-backoffice/internal/middleware"
	"property-backoffice/internal/model"
	"property-backoffice/internal/repository"
	"property-backoffice/internal/router"
	"property-backoffice/internal/service"
)

const (
	defaultAdminEmail    = "admin@example.com"
	defaultAdminPassword = "admin123"
)

type App struct {
	server       *http.Server
	db           *database.DB
	cleanupFuncs []func()
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	pool := db.Pool
	userRepo := repository.NewUserRepository(pool)
	propertyRepo := repository.NewPropertyRepository(pool)
	leaseRepo := repository.NewLeaseRepository(pool)
	invoiceRepo := repository.NewInvoiceRepository(pool)
	personRepo := repository.NewPersonRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)
	auditRepo := repository.NewAuditRepository(pool)
	slog.Info("database ready")

	if err := seedDefaultAdmin(context.Background(), userRepo); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed default admin: %w", err)
	}

	bus := event.NewBus()

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, bus)
	authMiddleware := middleware.NewAuthMiddleware(authService, authService)

	propertyService := service.NewPropertyService(propertyRepo, bus)
	leaseService := service.NewLeaseService(leaseRepo, bus)
	invoiceService := service.NewInvoiceService(invoiceRepo, bus)
	personService := service.NewPersonService(personRepo, bus)
	dashboardService := service.NewDashboardService(dashboardRepo, propertyRepo, cfg.DashboardRecent)
	auditService := service.NewAuditService(auditRepo)

	auditCtx, auditCancel := context.WithCancel(context.Background())
	go auditService.Run(auditCtx, bus)

	appRouter := router.New(cfg, authMiddleware, router.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Property:  handler.NewPropertyHandler(propertyService),
		Lease:     handler.NewLeaseHandler(leaseService),
		Invoice:   handler.NewInvoiceHandler(invoiceService),
		Person:    handler.NewPersonHandler(personService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Audit:     handler.NewAuditHandler(auditService, cfg.AuditListLimit),
	})

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      appRouter,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	return &App{
		server: server,
		db:     db,
		cleanupFuncs: []func(){
			auditCancel,
			db.Close,
		},
	}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	for _, cleanup := range a.cleanupFuncs {
		cleanup()
	}

	slog.Info("server stopped")
	return nil
}

// seedDefaultAdmin provisions a first login on an empty users table so
// the API is usable right after the schema is created.
func seedDefaultAdmin(ctx context.Context, users *repository.UserRepository) error {
	count, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), 12)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := model.User{
		ID:           uuid.NewString(),
		Name:         "Administrator",
		Email:        defaultAdminEmail,
		PasswordHash: string(hash),
		Role:         "admin",
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	slog.Warn("seeded default admin user; change its password", "email", defaultAdminEmail)
	return nil
}
