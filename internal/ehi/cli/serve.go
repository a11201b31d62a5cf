package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecosystem-labs/ehi/internal/ehi/dashboard"
)

var (
	serveAddr string
	serveData string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the score dashboard",
	Long: `Starts an HTTP server with a dashboard over the score history: an
overview of all companies with their latest scores, and a per-record detail
page with a radar chart and subcategory breakdown.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8400", "Listen address")
	serveCmd.Flags().StringVar(&serveData, "data", "data/ehi_scores.json", "Score history file")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

	dash, err := dashboard.New(serveData, logger)
	if err != nil {
		return fmt.Errorf("initializing dashboard: %w", err)
	}

	mux := http.NewServeMux()
	dash.RegisterRoutes(mux)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ui", http.StatusFound)
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:         serveAddr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("dashboard listening",
			"addr", serveAddr,
			"data", serveData,
			"url", fmt.Sprintf("http://localhost%s/ui", serveAddr),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down dashboard")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
