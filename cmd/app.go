package cmd

import (
	"github.com/spf13/cobra"
)

// appCmd represents the app command
var appCmd = &cobra.Command{
	Use:   "app",
	Short: "used to run the classboard service",
	Long: `The classboard service is a json server over the course sections and
holiday calendar (this command is not ran directly)`,
}

func init() {
	rootCmd.AddCommand(appCmd)
}
