package cli

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

	"github.com/integradaneuropsicologia/ETDAH-II/internal/adapters/inbound/httpapi"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/adapters/outbound/history"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/application"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP backend of the form",
		Long: "Serve the JSON API the browser form talks to: session opening, draft autosave, " +
			"scoring and submission to SheetDB.",
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			})))

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			drafts, closeDrafts, err := openDraftStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := closeDrafts(); err != nil {
					slog.Error("draft store close error", "error", err)
				}
			}()

			sheets := newSheetStore(cfg)
			api := httpapi.NewServer(
				cfg.Server,
				application.NewSessionService(sheets, cfg, nil),
				application.NewSubmitService(sheets, drafts, history.New(), cfg, nil),
				application.NewDraftService(drafts, cfg.Code, nil),
				application.NewScoreService(nil),
			)

			httpServer := &http.Server{
				Addr:              cfg.Server.Addr,
				Handler:           api.Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				slog.Info("HTTP server starting", "addr", httpServer.Addr, "draft_backend", cfg.Draft.Backend)
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("http server: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			slog.Info("shutting down gracefully...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("http server shutdown: %w", err)
			}
			slog.Info("etdah server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")
	return cmd
}
