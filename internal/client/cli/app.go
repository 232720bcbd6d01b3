package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/instaguard/instaguard/internal/client/client"
	"github.com/instaguard/instaguard/internal/client/config"
	"github.com/instaguard/instaguard/internal/client/repositories/session"
	"github.com/instaguard/instaguard/internal/client/services"
	"github.com/instaguard/instaguard/internal/filex"
	"github.com/instaguard/instaguard/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// view is the dashboard the REPL is currently showing.
type view int

const (
	viewAnonymous view = iota
	viewUser
	viewAdmin
)

func (v view) String() string {
	switch v {
	case viewUser:
		return "user"
	case viewAdmin:
		return "admin"
	default:
		return "guest"
	}
}

func viewFor(r services.Route) view {
	if r == services.RouteAdminDashboard {
		return viewAdmin
	}
	return viewUser
}

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB

	auth        services.AuthService
	reports     services.ReportService
	predictions services.PredictionService
	feedback    services.FeedbackService
	profile     services.ProfileService
	admin       services.AdminService

	reader *bufio.Reader
	out    io.Writer

	mu   sync.Mutex
	mode Mode
	view view
}

// NewApp opens the session database under cfg.DataDir and wires the
// services to an HTTP client for cfg.ServerURL.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	dir, err := filex.EnsureSubDir(cfg.DataDir, "")
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dir, "session.db"))
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	api, err := client.NewHTTPClient(cfg.ServerURL, cfg.RequestTimeout, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := session.NewSQLiteRepository(db)
	needCaptcha := cfg.CaptchaRequired()

	return &App{
		config:      cfg,
		logger:      logger,
		db:          db,
		auth:        services.NewAuthService(api, store, needCaptcha),
		reports:     services.NewReportService(api, store),
		predictions: services.NewPredictionService(api, store, needCaptcha),
		feedback:    services.NewFeedbackService(api, store),
		profile:     services.NewProfileService(api, store, needCaptcha),
		admin:       services.NewAdminService(api, store, dir),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "switched mode", "mode", string(mode))
	}
}

func (a *App) setView(v view) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.view = v
}

func (a *App) currentView() view {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.view
}

// getStatus renders the prompt suffix, e.g. "(admin online)".
func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := a.view.String()
	if a.mode != "" {
		s += " " + string(a.mode)
	}
	return "(" + s + ")"
}

// Run restores a stored session if there is one, starts the online status
// watcher and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.db != nil {
			_ = a.db.Close()
		}
	}()

	printlnFn("Welcome to InstaGuard CLI (type 'help' for commands)")
	a.restore(ctx)

	if a.config.OnlineCheckInterval > 0 {
		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) restore(ctx context.Context) {
	res, err := a.auth.Restore(ctx)
	switch {
	case err == nil:
		a.setView(viewFor(res.Route))
		printlnFn("Resumed saved session.")
	case errors.Is(err, session.ErrNoSession):
	default:
		a.logger.Warn(ctx, "restore session", "error", err)
	}
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.auth.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
