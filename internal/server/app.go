// Package server assembles the InstaGuard backend from its configuration
// and runs the HTTP API until the context is cancelled.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/instaguard/instaguard/internal/common"
	"github.com/instaguard/instaguard/internal/logging"
	"github.com/instaguard/instaguard/internal/server/auth"
	"github.com/instaguard/instaguard/internal/server/captcha"
	"github.com/instaguard/instaguard/internal/server/classifier"
	"github.com/instaguard/instaguard/internal/server/config"
	"github.com/instaguard/instaguard/internal/server/httpapi"
	"github.com/instaguard/instaguard/internal/server/mailer"
	"github.com/instaguard/instaguard/internal/server/ratelimit"
	"github.com/instaguard/instaguard/internal/server/repositories/repomanager"
	"github.com/instaguard/instaguard/internal/server/services"
	"github.com/instaguard/instaguard/internal/server/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	outboundTimeout = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	redis  *redis.Client
	server *http.Server
}

// NewApp connects to Postgres, runs migrations and builds the router. Redis
// and Google key fetching are optional: when they fail the app starts
// without rate limiting or Google sign-in.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	app := &App{config: cfg, logger: logger, db: db}

	store, err := storage.NewS3Store(ctx, storage.S3Config{
		AccessKey:    cfg.S3RootUser,
		SecretKey:    cfg.S3RootPassword,
		Region:       cfg.S3Region,
		Bucket:       cfg.S3Bucket,
		BaseEndpoint: cfg.S3BaseEndpoint,
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	client := &http.Client{Timeout: outboundTimeout}

	cv := captcha.NewRecaptcha(cfg.RecaptchaSecret, client)
	if !cv.Enabled() {
		logger.Warn(ctx, "reCAPTCHA secret not set, captcha checks are disabled")
	}

	ml := app.newMailer(ctx)
	model := classifier.NewHTTPModel(cfg.ClassifierURL, client)
	lookup := classifier.NewHTTPProfileLookup(cfg.ProfileLookupURL, client)

	svc := httpapi.Services{
		Auth:       services.NewAuthService(db, rm, cfg, cv, app.newGoogleVerifier(ctx), ml, logger),
		Account:    services.NewAccountService(db, rm, cv),
		Reports:    services.NewReportService(db, rm),
		Feedback:   services.NewFeedbackService(db, rm),
		Contact:    services.NewContactService(db, rm, ml, cfg.SupportEmail),
		Admin:      services.NewAdminService(db, rm),
		Prediction: services.NewPredictionService(db, rm, model, lookup, cv, cfg.ModelVersion, logger),
		Export:     services.NewExportService(db, rm, store),
	}

	gin.SetMode(gin.ReleaseMode)
	router := httpapi.NewRouter(svc, app.newLimiter(ctx), cfg.CORSOrigin, logger)

	app.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

func (app *App) newLimiter(ctx context.Context) ratelimit.Limiter {
	if app.config.RedisAddr == "" {
		app.logger.Warn(ctx, "redis address not set, rate limiting is disabled")
		return ratelimit.Unlimited{}
	}

	rdb, err := ratelimit.NewRedisClient(ctx, app.config.RedisAddr)
	if err != nil {
		app.logger.Warn(ctx, "redis unavailable, rate limiting is disabled", "error", err)
		return ratelimit.Unlimited{}
	}
	app.redis = rdb
	return ratelimit.NewRedisLimiter(rdb, app.config.RateLimit, app.config.RateLimitWindow)
}

func (app *App) newGoogleVerifier(ctx context.Context) services.GoogleTokenVerifier {
	v, err := auth.NewGoogleVerifier(ctx, app.config.GoogleClientID)
	if err != nil {
		app.logger.Warn(ctx, "google keys unavailable, google sign-in is disabled", "error", err)
		return googleUnavailable{}
	}
	return v
}

func (app *App) newMailer(ctx context.Context) mailer.Mailer {
	c := app.config
	if c.SMTPHost == "" {
		app.logger.Warn(ctx, "SMTP host not set, outgoing mail is logged only")
		return mailer.NewLogMailer(app.logger)
	}
	return mailer.NewSMTPMailer(c.SMTPHost, c.SMTPPort, c.SMTPUser, c.SMTPPassword, c.SMTPFrom)
}

// googleUnavailable rejects every token.
type googleUnavailable struct{}

func (googleUnavailable) Verify(context.Context, string) (*auth.GoogleIdentity, error) {
	return nil, fmt.Errorf("%w: google keys not loaded", common.ErrInvalidToken)
}

// Run serves until ctx is cancelled, then drains in-flight requests and
// closes the database and Redis connections.
func (app *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "listening", "addr", app.server.Addr)
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		app.logger.Info(context.Background(), "shutting down")
	case runErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "shutdown", "error", err)
	}

	if app.redis != nil {
		_ = app.redis.Close()
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(shutdownCtx, "db close", "error", err)
	}

	return runErr
}
