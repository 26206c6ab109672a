package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Pjt727/classboard/api/handlers"
	"github.com/Pjt727/classboard/config"
	"github.com/Pjt727/classboard/planner"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	log "github.com/sirupsen/logrus"
)

func NewRouter(p *planner.Planner, cfg config.Runtime) http.Handler {
	return newRouter(handlers.New(p), cfg)
}

func newRouter(h *handlers.Handler, cfg config.Runtime) chi.Router {
	r := chi.NewRouter()
	cors := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{handlers.PersistedHeader},
		AllowCredentials: false,
		MaxAge:           300, // Maximum age for preflight requests
	})
	r.Use(cors.Handler)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(newClientLimiter(cfg.RequestsPerMin, cfg.RequestBurst).Handler)

	r.Get("/home", h.GetHome)
	r.Get("/watch", h.Watch)
	r.Route("/sections", func(r chi.Router) {
		populateSectionRoutes(&r, h)
	})
	r.Route("/holidays", func(r chi.Router) {
		populateHolidayRoutes(&r, h)
	})
	return r
}

// Serve runs the API until ctx is done
func Serve(ctx context.Context, p *planner.Planner, cfg config.Runtime) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           NewRouter(p, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Running server on :%d", cfg.Port)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
