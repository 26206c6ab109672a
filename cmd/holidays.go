package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Pjt727/classboard/planner"
	"github.com/Pjt727/classboard/schedule"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// holidaysCmd represents the holidays command
var holidaysCmd = &cobra.Command{
	Use:   "holidays",
	Short: "List and edit the holiday calendar",
	Long: `List and edit the academic and national holidays shared by every section,
or move them in and out of iCalendar files (this command is not ran directly)`,
}

func holidayCommand(job string, run func(cmd *cobra.Command, args []string, p *planner.Planner) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger := log.WithFields(log.Fields{
			"job": job,
		})
		p, closeStore, err := openPlanner(context.Background(), logger)
		if err != nil {
			return err
		}
		defer closeStore()
		return run(cmd, args, p)
	}
}

var holidaysListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists holidays in date order",
	Args:  cobra.NoArgs,
	RunE: holidayCommand("listHolidays", func(cmd *cobra.Command, args []string, p *planner.Planner) error {
		search, _ := cmd.Flags().GetString("search")
		kind, _ := cmd.Flags().GetString("type")
		asJSON, _ := cmd.Flags().GetBool("json")

		kind = strings.ToLower(strings.TrimSpace(kind))
		if kind != schedule.AllTypes {
			if _, ok := schedule.ParseHolidayType(kind); !ok {
				return fmt.Errorf("unknown holiday type %q", kind)
			}
		}
		view := p.HolidayView(schedule.HolidayFilter{Search: search, Type: kind}, now())
		out := cmd.OutOrStdout()
		if asJSON {
			return printJSON(out, view)
		}

		fmt.Fprintf(out, "%d holidays (%d academic, %d national)\n\n",
			view.Stats.Total, view.Stats.Academic, view.Stats.National)
		if len(view.Holidays) == 0 {
			fmt.Fprintln(out, "No holidays found")
			return nil
		}
		return printHolidays(out, view.Holidays)
	}),
}

var holidaysUpcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Shows the next holidays from today",
	Args:  cobra.NoArgs,
	RunE: holidayCommand("upcomingHolidays", func(cmd *cobra.Command, args []string, p *planner.Planner) error {
		view := p.HolidayView(schedule.HolidayFilter{}, now())
		out := cmd.OutOrStdout()
		if len(view.Upcoming) == 0 {
			fmt.Fprintln(out, "No upcoming holidays")
			return nil
		}
		return printHolidays(out, view.Upcoming)
	}),
}

func addHolidayFlags(c *cobra.Command) {
	c.Flags().String("name", "", "holiday name")
	c.Flags().String("date", "", "date as YYYY-MM-DD")
	c.Flags().String("type", string(schedule.HolidayAcademic), "academic or national")
	c.Flags().String("description", "", "optional description")
}

func applyHolidayFlags(cmd *cobra.Command, draft *schedule.HolidayDraft) {
	flags := cmd.Flags()
	for name, field := range map[string]*string{
		"name":        &draft.Name,
		"date":        &draft.Date,
		"type":        &draft.Type,
		"description": &draft.Description,
	} {
		if flags.Changed(name) {
			*field, _ = flags.GetString(name)
		}
	}
}

var holidaysAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Adds a holiday",
	Args:  cobra.NoArgs,
	RunE: holidayCommand("addHoliday", func(cmd *cobra.Command, args []string, p *planner.Planner) error {
		draft := schedule.NewHolidayDraft()
		applyHolidayFlags(cmd, &draft)
		holiday, err := p.AddHoliday(cmd.Context(), draft)
		if err := persisted(cmd, err); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s on %s with id %s\n", holiday.Name, holiday.Date, holiday.ID)
		return nil
	}),
}

var holidaysEditCmd = &cobra.Command{
	Use:   "edit <holiday id>",
	Short: "Changes the given fields of a holiday",
	Args:  cobra.ExactArgs(1),
	RunE: holidayCommand("editHoliday", func(cmd *cobra.Command, args []string, p *planner.Planner) error {
		existing, ok := schedule.Find(p.Holidays(), args[0])
		if !ok {
			return fmt.Errorf("%w: holiday %s", planner.ErrNotFound, args[0])
		}
		draft := schedule.DraftFromHoliday(existing)
		applyHolidayFlags(cmd, &draft)
		holiday, found, err := p.UpdateHoliday(cmd.Context(), existing.ID, draft)
		if err := persisted(cmd, err); err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: holiday %s", planner.ErrNotFound, args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s)\n", holiday.Name, holiday.ID)
		return nil
	}),
}

var holidaysDeleteCmd = &cobra.Command{
	Use:   "delete <holiday id>",
	Short: "Deletes a holiday",
	Args:  cobra.ExactArgs(1),
	RunE: holidayCommand("deleteHoliday", func(cmd *cobra.Command, args []string, p *planner.Planner) error {
		if err := persisted(cmd, p.DeleteHoliday(cmd.Context(), args[0])); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted holiday %s\n", args[0])
		return nil
	}),
}

var holidaysExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes the holiday calendar as an iCalendar file",
	Args:  cobra.NoArgs,
	RunE: holidayCommand("exportHolidays", func(cmd *cobra.Command, args []string, p *planner.Planner) error {
		calendar := p.ExportHolidays(now())
		path, _ := cmd.Flags().GetString("out")
		if path == "" || path == "-" {
			_, err := io.WriteString(cmd.OutOrStdout(), calendar)
			return err
		}
		if err := os.WriteFile(path, []byte(calendar), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d holidays to %s\n", len(p.Holidays()), path)
		return nil
	}),
}

var holidaysImportCmd = &cobra.Command{
	Use:   "import <file.ics>",
	Short: "Adds the events of an iCalendar file as holidays",
	Long: `Adds every event of an iCalendar file (- reads stdin) as a holiday. Events
already on the calendar with the same name and date are skipped`,
	Args: cobra.ExactArgs(1),
	RunE: holidayCommand("importHolidays", func(cmd *cobra.Command, args []string, p *planner.Planner) error {
		var in io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}
		added, err := p.ImportHolidays(cmd.Context(), in)
		if err := persisted(cmd, err); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d holidays\n", len(added))
		return nil
	}),
}

func init() {
	holidaysListCmd.Flags().String("search", "", "match holiday name")
	holidaysListCmd.Flags().String("type", schedule.AllTypes, "all, academic or national")
	holidaysListCmd.Flags().Bool("json", false, "print the view as json")

	addHolidayFlags(holidaysAddCmd)
	addHolidayFlags(holidaysEditCmd)
	holidaysExportCmd.Flags().StringP("out", "o", "", "file to write (default stdout)")

	holidaysCmd.AddCommand(
		holidaysListCmd,
		holidaysUpcomingCmd,
		holidaysAddCmd,
		holidaysEditCmd,
		holidaysDeleteCmd,
		holidaysExportCmd,
		holidaysImportCmd,
	)
	rootCmd.AddCommand(holidaysCmd)
}
