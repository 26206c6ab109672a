package cmd

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Shows an overview of every section and the next holidays",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.WithFields(log.Fields{
			"job": "home",
		})
		p, closeStore, err := openPlanner(context.Background(), logger)
		if err != nil {
			return err
		}
		defer closeStore()

		d := p.Dashboard(now())
		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(out, d)
		}

		tw := newTable(out)
		fmt.Fprintln(tw, "SECTION\tCOURSES\tCREDITS\tWEEKLY HOURS")
		for _, s := range d.Sections {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", s.Section.Title, s.Stats.Courses, s.Stats.Credits, s.Stats.WeeklyHours)
		}
		fmt.Fprintf(tw, "Total\t%d\t%d\t%d\n", d.TotalCourses, d.TotalCredits, d.WeeklyHours)
		if err := tw.Flush(); err != nil {
			return err
		}

		fmt.Fprintf(out, "\n%d holidays on the calendar\n", d.Holidays)
		if len(d.Upcoming) == 0 {
			fmt.Fprintln(out, "No upcoming holidays")
			return nil
		}
		fmt.Fprintln(out, "Upcoming:")
		for _, h := range d.Upcoming {
			fmt.Fprintf(out, "  %s - %s (%s)\n", h.Name, h.LongDate, h.Relative)
		}
		return nil
	},
}

func init() {
	homeCmd.Flags().Bool("json", false, "print the overview as json")
	rootCmd.AddCommand(homeCmd)
}
