package main

import (
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/finboard/finboard-cli/internal/dataset"
)

var (
	servePort   int
	serveFile   string
	serveSample bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard API for the frontend",
	Long: `Starts the local HTTP API the single-page dashboard talks to.
The dataset starts empty (or pre-loaded via --file / --sample) and is
replaced wholesale by each POST /api/import.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		session := dataset.NewSession()
		switch {
		case serveSample:
			session.LoadSample()
		case serveFile != "":
			if err := session.LoadFile(serveFile); err != nil {
				return eris.Wrap(err, "serve: preload dataset")
			}
		}

		port := servePort
		if port == 0 {
			if err := cfg.Validate("serve"); err != nil {
				return err
			}
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: buildRouter(session),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server",
			zap.Int("port", port),
			zap.Int("periods", session.Len()),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "serve: listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	serveCmd.Flags().StringVar(&serveFile, "file", "", "pre-load a dataset file")
	serveCmd.Flags().BoolVar(&serveSample, "sample", false, "pre-load the built-in sample dataset")
	rootCmd.AddCommand(serveCmd)
}
