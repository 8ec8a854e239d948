package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davidcollom/dbcost/pkg/api"
	"github.com/davidcollom/dbcost/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	listenAddr     string
	requestTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the price tables as a JSON API",
	Long:  `Serve read-only JSON views of the catalog: /api/v1/rows, /api/v1/regions, /api/v1/regions/{name}, /api/v1/instances/{name} and /api/v1/compare.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := loadEngine()
		if err != nil {
			logger.Fatalf("[!] Could not load catalog: %s", err)
		}

		server := &http.Server{
			Addr:              listenAddr,
			Handler:           api.NewServer(engine).Router(requestTimeout),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Errorf("Could not shut down: %s", err)
			}
		}()

		logger.Infof("Listening on %s", listenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("[!] Server failed: %s", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&listenAddr, "listen", ":8080", "Address to listen on")
	serveCmd.Flags().DurationVar(&requestTimeout, "timeout", 60*time.Second, "Request timeout")
}
