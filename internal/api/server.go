// Package api exposes the tab group use cases over HTTP for the side panel.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/bnema/tabgrouper/internal/application/usecase"
	"github.com/bnema/tabgrouper/internal/domain/entity"
)

// Deps holds the use cases served by the API.
type Deps struct {
	Snapshots *usecase.BuildSnapshotUseCase
	Reorder   *usecase.ReorderTabsUseCase
	Drops     *usecase.DropQueue
	Groups    *usecase.SyncGroupMetadataUseCase
	Presets   *usecase.ManagePresetsUseCase

	DefaultTitle string
	DefaultColor entity.GroupColor
}

// NewServer builds the HTTP handler. Every request carries a child of
// logger in its context.
func NewServer(logger zerolog.Logger, deps Deps) http.Handler {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(requestLogger(logger))
	router.Use(middleware.Recoverer)

	cfg := huma.DefaultConfig("tabgrouper API", "1.0.0")
	// No $schema links in response bodies.
	cfg.CreateHooks = nil
	api := humachi.New(router, cfg)

	registerHealthHandlers(api, deps)
	registerSnapshotHandlers(api, deps)
	registerDropHandlers(api, deps)
	registerGroupHandlers(api, deps)
	registerPresetHandlers(api, deps)

	return router
}

// Serve runs handler on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: readHeaderTimeout}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var partial *entity.PartialApplyFailure
	var providerFailure *entity.ProviderCallFailure
	switch {
	case errors.Is(err, usecase.ErrDropInProgress), errors.Is(err, entity.ErrStaleDrop):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, entity.ErrTabNotFound),
		errors.Is(err, entity.ErrGroupNotFound),
		errors.Is(err, entity.ErrPresetNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, entity.ErrInvalidColor), errors.Is(err, entity.ErrInvalidPreset):
		return huma.Error400BadRequest(err.Error())
	case errors.As(err, &partial), errors.As(err, &providerFailure):
		return huma.Error502BadGateway(err.Error())
	default:
		return huma.Error500InternalServerError(err.Error())
	}
}
