package cmd

import (
	"errors"

	"github.com/Pjt727/classboard/data"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// upCmd represents the up command
var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Runs the up migrations",
	Long: `Runs the up migrations against DB_CONN so the postgres store has its
persisted_slices table, and errors if the up migrations cannot work`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.WithFields(log.Fields{
			"job": "up",
		})
		if settings.DBConn == "" {
			return errors.New("DB_CONN must be set to run migrations")
		}
		if err := data.MigrateUp(settings.DBConn); err != nil {
			logger.Error("Could not run up migrations: ", err)
			return err
		}
		logger.Info("Database has been synced with any up migrations")
		return nil
	},
}

func init() {
	appCmd.AddCommand(upCmd)
}
