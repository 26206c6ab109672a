package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Pjt727/classboard/api"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the api service",
	Long: `Runs the api service on CLASSBOARD_PORT (default 3000) until interrupted.
Changes made through the api are streamed to websocket clients on /watch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.WithFields(log.Fields{
			"job": "serve",
		})
		if port, _ := cmd.Flags().GetInt("port"); port > 0 {
			settings.Port = port
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		p, closeStore, err := openPlanner(ctx, logger)
		if err != nil {
			logger.Error("Could not open the store: ", err)
			return err
		}
		defer closeStore()

		return api.Serve(ctx, p, settings)
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides CLASSBOARD_PORT)")
	appCmd.AddCommand(serveCmd)
}
