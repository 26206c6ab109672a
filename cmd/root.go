package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Pjt727/classboard/config"
	"github.com/Pjt727/classboard/data"
	"github.com/Pjt727/classboard/planner"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// settings is resolved once per invocation before any command runs
var settings config.Runtime

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "classboard",
	Short: "classboard manages the course sections and holiday calendar of a college schedule",
	Long: `classboard keeps three course sections and a shared holiday calendar in a
durable store. Records can be listed, searched and edited from the command line
or served over a JSON api (see classboard app serve)`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if store, _ := cmd.Flags().GetString("store"); store != "" {
			cfg.Store = strings.ToLower(store)
			if err := cfg.Validate(); err != nil {
				return err
			}
		}
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		log.SetLevel(level)
		settings = cfg
		return nil
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("store", "", "storage backend: memory, file, postgres or redis (overrides CLASSBOARD_STORE)")
}

// openPlanner connects to the configured store and loads every collection.
// The returned func must be called once the command is done.
func openPlanner(ctx context.Context, logger *log.Entry) (*planner.Planner, func(), error) {
	store, closeStore, err := data.OpenStore(ctx, settings)
	if err != nil {
		return nil, nil, err
	}
	return planner.New(ctx, store, logger), closeStore, nil
}
