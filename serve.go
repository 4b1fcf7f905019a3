package main

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"nff-scraper/internal/server"
)

var serveAddr string

func init() {
	serveCmd.Flags().String("out", "", "JSON file to serve (overrides config and NFF_OUTPUT).")
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address.")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve [--addr :8080]",
	Short: "Serves the last fetched document as a read-only JSON API.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              serveAddr,
			Handler:           server.New(cfg.Output).Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			<-cmd.Context().Done()
			srv.Close()
		}()

		slog.Info("server running", "addr", serveAddr, "document", cfg.Output)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}
