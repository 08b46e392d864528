package app

import (
	"context"
	"net/http"
	"time"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/config"
	"github.com/aptechtayyab/msgalpha-campusconnect/internal/rest"
	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Application wires configuration, data repositories, router, and server
// lifecycle.
type Application struct {
	cfg    config.Application
	deps   *Dependencies
	router *mux.Router
	srv    *http.Server
	cron   *cron.Cron
}

// NewApplication constructs the full HTTP application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()

	// Build dependencies (repositories, services, handlers...)
	deps, err := BuildDependencies(cfg)
	if err != nil {
		return nil, err
	}

	// Middleware chain
	SetupMiddleware(r, deps, cfg)

	// Routes
	RegisterRoutes(r, deps, cfg)

	// Frontend
	if cfg.Frontend.Enabled {
		frontend := rest.NewFrontendHandler("frontend", "index.html")
		r.PathPrefix("/").Handler(frontend)
	}

	// Scheduled re-read of the data files, so edits show up without a restart.
	c := cron.New()
	if _, err := c.AddFunc(cfg.Data.ReloadSchedule, func() {
		if err := deps.EventRepo.Reload(); err != nil {
			log.Errorf("scheduled event reload failed: %v", err)
		}
		if err := deps.ContentRepo.Reload(); err != nil {
			log.Errorf("scheduled content reload failed: %v", err)
		}
	}); err != nil {
		return nil, err
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.Addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, deps: deps, router: r, srv: srv, cron: c}, nil
}

// Run starts the background loops and the HTTP server, and blocks.
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.cron.Start()
	defer a.cron.Stop()

	a.deps.BannerRotator.Start(ctx)

	// Session sweeper drops idle sessions once a minute.
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				a.deps.SessionStore.Sweep()
			}
		}
	}()

	log.Infof("Starting server on %s", a.srv.Addr)
	return a.srv.ListenAndServe()
}
