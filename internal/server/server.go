// Package server wires the property store into the HTTP API and runs it.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/propertydesk/propertydesk/config"
	"github.com/propertydesk/propertydesk/internal/api"
	"github.com/propertydesk/propertydesk/internal/api/handlers"
	"github.com/propertydesk/propertydesk/internal/core/form"
	"github.com/propertydesk/propertydesk/internal/core/property"
	"github.com/propertydesk/propertydesk/internal/core/validation"
	"github.com/propertydesk/propertydesk/internal/logging"
	"github.com/propertydesk/propertydesk/internal/storage/slots"
)

// Run opens the configured storage, restores the store and serves the API
// until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logOut io.Writer) error {
	logger := logging.New(cfg.Log, logOut)

	slot, err := slots.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer slot.Close()

	logger.Info("opened storage", "driver", cfg.Storage.Driver, "key", cfg.Storage.Key)

	store := property.NewStore(slot,
		property.WithLogger(logger),
		property.WithKey(cfg.Storage.Key),
	)
	store.Load(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           NewEngine(cfg, logger, store),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// NewEngine builds the gin engine serving store.
func NewEngine(cfg *config.Config, logger *slog.Logger, store *property.Store) *gin.Engine {
	forms := form.NewService(store, validation.NewValidator(), cfg.Form.EditDelay)

	router := api.NewRouter(
		logger,
		handlers.NewPropertyHandler(store, forms),
		handlers.NewFilterHandler(store),
	)
	return router.Setup(cfg.Server.Mode)
}
