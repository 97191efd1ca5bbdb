package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/frahmantamala/hr-directory/internal"
	"github.com/frahmantamala/hr-directory/internal/auth"
	authPostgres "github.com/frahmantamala/hr-directory/internal/auth/postgres"
	"github.com/frahmantamala/hr-directory/internal/company"
	companyPostgres "github.com/frahmantamala/hr-directory/internal/company/postgres"
	"github.com/frahmantamala/hr-directory/internal/employee"
	employeePostgres "github.com/frahmantamala/hr-directory/internal/employee/postgres"
	"github.com/frahmantamala/hr-directory/internal/media"
	"github.com/frahmantamala/hr-directory/internal/transport/rest"
	"github.com/frahmantamala/hr-directory/internal/user"
	userPostgres "github.com/frahmantamala/hr-directory/internal/user/postgres"
	"github.com/frahmantamala/hr-directory/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config          *internal.Config
	DB              *sqlx.DB
	Router          *chi.Mux
	AuthHandler     *auth.Handler
	CompanyHandler  *company.Handler
	EmployeeHandler *employee.Handler
	UserHandler     *user.Handler
	Logger          *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.DB,
		deps.AuthHandler,
		deps.CompanyHandler,
		deps.EmployeeHandler,
		deps.UserHandler,
		deps.Config.Server.AllowedOrigins,
		deps.Logger,
	)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)
	log := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	mediaHost, err := media.NewS3Store(context.Background(), config.Media)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize media store: %w", err)
	}

	tokenGen := auth.NewJWTTokenGenerator(config.Security.TokenSecret, config.Security.TokenTTLOrDefault())

	authRepo := authPostgres.NewRepository(gormDB)
	authService := auth.NewService(authRepo, tokenGen, config.Security.BCryptCostOrDefault(), log)
	authHandler := auth.NewHandler(authService)

	companyRepo := companyPostgres.NewCompanyRepository(gormDB)
	companyService := company.NewService(companyRepo, authService, mediaHost, log)
	companyHandler := company.NewHandler(companyService)

	employeeRepo := employeePostgres.NewEmployeeRepository(gormDB)
	employeeService := employee.NewService(employeeRepo, mediaHost, log)
	employeeHandler := employee.NewHandler(employeeService)

	userRepo := userPostgres.NewUserRepository(gormDB)
	userService := user.NewService(userRepo, authService, log)
	userHandler := user.NewHandler(userService)

	return &Dependencies{
		Config:          config,
		DB:              db,
		Router:          chi.NewRouter(),
		AuthHandler:     authHandler,
		CompanyHandler:  companyHandler,
		EmployeeHandler: employeeHandler,
		UserHandler:     userHandler,
		Logger:          log,
	}, nil
}

func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm layers the ORM over the already-open connection pool so both
// access paths share one pool.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
}
