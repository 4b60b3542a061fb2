package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "diagnostic-backend/internal/auth"
	"diagnostic-backend/internal/diagnostics"
	"diagnostic-backend/internal/diagnostics/engine"
	"diagnostic-backend/internal/diagnostics/knowledge"
	"diagnostic-backend/internal/services/health"
	"diagnostic-backend/internal/shared/auth"
	"diagnostic-backend/internal/shared/config"
	"diagnostic-backend/internal/shared/server"
	"diagnostic-backend/internal/shared/server/middleware"
	"diagnostic-backend/internal/shared/storage/db"
	"diagnostic-backend/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config            config.Config
	Router            *gin.Engine
	DB                *sql.DB
	Dialect           db.Dialect
	Engine            *engine.Engine
	DiagnosticsRepo   diagnostics.Repo
	DiagnosticService *diagnostics.Service
	DiagnosticHandler *diagnostics.Handler
	Signer            *auth.Signer
	GoogleAuth        *googleauth.GoogleService
}

// Build prepares dependencies and the router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	signer, err := auth.NewSigner(cfg.JWTSecret, cfg.IsProduction())
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		telemetry.Warn("bootstrap.jwt_dev_secret", map[string]any{"env": cfg.Env})
	}

	sqlDB, dialect, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	admins := auth.NewAdminList(cfg.AdminEmails)

	eng := NewEngine(cfg.Engine)

	app := &App{
		Config:  cfg,
		DB:      sqlDB,
		Dialect: dialect,
		Engine:  eng,
		Signer:  signer,
	}
	switch {
	case sqlDB == nil:
		app.DiagnosticsRepo = diagnostics.NewMemoryRepo()
	case dialect == db.DialectSQLite:
		app.DiagnosticsRepo = &diagnostics.SQLiteRepo{DB: sqlDB}
	default:
		app.DiagnosticsRepo = &diagnostics.PGRepo{DB: sqlDB}
	}
	app.DiagnosticService = diagnostics.NewService(eng, app.DiagnosticsRepo)
	app.DiagnosticHandler = diagnostics.NewHandler(app.DiagnosticService)
	app.GoogleAuth = googleauth.NewGoogleService(googleauth.GoogleConfig{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		UIRedirect:   cfg.UIRedirectURL,
	}, signer, admins)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            cfg,
		Signer:            signer,
		Admins:            admins,
		DiagnosticHandler: app.DiagnosticHandler,
		GoogleAuth:        app.GoogleAuth,
		Limiter:           middleware.NewRateLimiter(nil),
		Health:            health.NewService(sqlDB),
	})
	return app, nil
}

// Close releases the database handle, if any.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

// NewEngine builds an engine over the default knowledge base; zero overrides keep defaults.
func NewEngine(overrides config.EngineConfig) *engine.Engine {
	cfg := engine.DefaultConfig()
	if overrides.SystemMonthlyCost > 0 {
		cfg.SystemMonthlyCost = overrides.SystemMonthlyCost
	}
	if overrides.TimeSavingsRatio > 0 {
		cfg.TimeSavingsRatio = overrides.TimeSavingsRatio
	}
	if overrides.MoneySavingsRatio > 0 {
		cfg.MoneySavingsRatio = overrides.MoneySavingsRatio
	}
	if overrides.ErrorReductionRatio > 0 {
		cfg.ErrorReductionRatio = overrides.ErrorReductionRatio
	}
	if s := strings.TrimSpace(overrides.CurrencySymbol); s != "" {
		cfg.CurrencySymbol = s
	}
	return engine.New(knowledge.Default(), engine.WithConfig(cfg))
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, db.Dialect, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.memory_store", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, dialect, err := db.Open(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err == nil {
		if err = db.RunMigrations(ctx, sqlDB, dialect); err != nil {
			_ = sqlDB.Close()
			err = fmt.Errorf("run migrations: %w", err)
		}
	}
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.memory_store", map[string]any{"reason": "database unavailable", "err": err})
			return nil, "", nil
		}
		return nil, "", err
	}
	telemetry.Info("bootstrap.database", map[string]any{"dialect": string(dialect)})
	return sqlDB, dialect, nil
}
