package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/Pjt727/classboard/planner"
	"github.com/Pjt727/classboard/schedule"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// coursesCmd represents the courses command
var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List and edit the courses of a section",
	Long: `List and edit the courses of section-a, section-b or section-c. A section
may also be given by its letter (this command is not ran directly)`,
}

func resolveSection(p *planner.Planner, arg string) (schedule.Section, error) {
	id := strings.ToLower(strings.TrimSpace(arg))
	if len(id) == 1 {
		id = "section-" + id
	}
	return p.Section(id)
}

// sectionCommand opens the planner and resolves the section named by the
// first argument before handing both to run
func sectionCommand(job string, run func(cmd *cobra.Command, args []string, p *planner.Planner, section schedule.Section) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger := log.WithFields(log.Fields{
			"job":     job,
			"section": args[0],
		})
		p, closeStore, err := openPlanner(context.Background(), logger)
		if err != nil {
			return err
		}
		defer closeStore()

		section, err := resolveSection(p, args[0])
		if err != nil {
			return err
		}
		return run(cmd, args, p, section)
	}
}

var coursesListCmd = &cobra.Command{
	Use:   "list <section>",
	Short: "Lists a section's courses as a weekly grid or a table",
	Args:  cobra.ExactArgs(1),
	RunE: sectionCommand("listCourses", func(cmd *cobra.Command, args []string, p *planner.Planner, section schedule.Section) error {
		search, _ := cmd.Flags().GetString("search")
		day, _ := cmd.Flags().GetString("day")
		viewFlag, _ := cmd.Flags().GetString("view")
		asJSON, _ := cmd.Flags().GetBool("json")

		mode, ok := schedule.ParseViewMode(viewFlag)
		if !ok {
			return fmt.Errorf("unknown view %q (want weekly or table)", viewFlag)
		}
		day = normalizeDay(day)
		if day != "" && day != schedule.AllDays && !schedule.IsWeekday(day) {
			return fmt.Errorf("unknown day %q", day)
		}

		view, err := p.CourseView(section.ID, schedule.CourseFilter{Search: search, Day: day})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if asJSON {
			return printJSON(out, view)
		}

		fmt.Fprintln(out, section.Title)
		printCourseStats(out, view.Stats)
		fmt.Fprintln(out)
		if len(view.Courses) == 0 {
			fmt.Fprintln(out, "No courses found")
			return nil
		}
		if mode == schedule.ViewTable {
			return printCourseTable(out, view.Courses)
		}
		return printWeekly(out, view.Weekly)
	}),
}

func normalizeDay(day string) string {
	day = strings.TrimSpace(day)
	if strings.EqualFold(day, schedule.AllDays) {
		return schedule.AllDays
	}
	if len(day) < 2 {
		return day
	}
	return strings.ToUpper(day[:1]) + strings.ToLower(day[1:])
}

func addCourseFlags(c *cobra.Command) {
	c.Flags().String("name", "", "course name")
	c.Flags().String("instructor", "", "instructor name")
	c.Flags().String("room", "", "room")
	c.Flags().String("time", "", `meeting time, e.g. "9:00 AM - 10:30 AM"`)
	c.Flags().String("days", "", "comma separated weekdays, e.g. Monday,Wednesday")
	c.Flags().Int("credits", schedule.DefaultCredits, fmt.Sprintf("credits (%d-%d)", schedule.MinCredits, schedule.MaxCredits))
}

// applyCourseFlags overwrites the draft fields whose flags were given
func applyCourseFlags(cmd *cobra.Command, draft *schedule.CourseDraft) error {
	flags := cmd.Flags()
	for name, field := range map[string]*string{
		"name":       &draft.Name,
		"instructor": &draft.Instructor,
		"room":       &draft.Room,
		"time":       &draft.Time,
	} {
		if flags.Changed(name) {
			*field, _ = flags.GetString(name)
		}
	}
	if flags.Changed("days") {
		raw, _ := flags.GetString("days")
		draft.Days = nil
		for _, day := range strings.Split(raw, ",") {
			if day = normalizeDay(day); day != "" {
				draft.Days = append(draft.Days, day)
			}
		}
	}
	if flags.Changed("credits") {
		credits, _ := flags.GetInt("credits")
		if credits < schedule.MinCredits || credits > schedule.MaxCredits {
			return fmt.Errorf("credits must be between %d and %d", schedule.MinCredits, schedule.MaxCredits)
		}
		draft.Credits = credits
	}
	return nil
}

var coursesAddCmd = &cobra.Command{
	Use:   "add <section>",
	Short: "Adds a course to a section",
	Args:  cobra.ExactArgs(1),
	RunE: sectionCommand("addCourse", func(cmd *cobra.Command, args []string, p *planner.Planner, section schedule.Section) error {
		draft := schedule.NewCourseDraft()
		if err := applyCourseFlags(cmd, &draft); err != nil {
			return err
		}
		course, err := p.AddCourse(cmd.Context(), section.ID, draft)
		if err := persisted(cmd, err); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s with id %s\n", course.Name, section.ID, course.ID)
		return nil
	}),
}

var coursesEditCmd = &cobra.Command{
	Use:   "edit <section> <course id>",
	Short: "Changes the given fields of a course",
	Args:  cobra.ExactArgs(2),
	RunE: sectionCommand("editCourse", func(cmd *cobra.Command, args []string, p *planner.Planner, section schedule.Section) error {
		courses, err := p.Courses(section.ID)
		if err != nil {
			return err
		}
		existing, ok := schedule.Find(courses, args[1])
		if !ok {
			return fmt.Errorf("%w: course %s in %s", planner.ErrNotFound, args[1], section.ID)
		}
		draft := schedule.DraftFromCourse(existing)
		if err := applyCourseFlags(cmd, &draft); err != nil {
			return err
		}
		course, found, err := p.UpdateCourse(cmd.Context(), section.ID, existing.ID, draft)
		if err := persisted(cmd, err); err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: course %s in %s", planner.ErrNotFound, args[1], section.ID)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s)\n", course.Name, course.ID)
		return nil
	}),
}

var coursesDeleteCmd = &cobra.Command{
	Use:   "delete <section> <course id>",
	Short: "Deletes a course from a section",
	Args:  cobra.ExactArgs(2),
	RunE: sectionCommand("deleteCourse", func(cmd *cobra.Command, args []string, p *planner.Planner, section schedule.Section) error {
		if err := persisted(cmd, p.DeleteCourse(cmd.Context(), section.ID, args[1])); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted course %s from %s\n", args[1], section.ID)
		return nil
	}),
}

var coursesResetCmd = &cobra.Command{
	Use:   "reset <section>",
	Short: "Restores a section to its default courses",
	Args:  cobra.ExactArgs(1),
	RunE: sectionCommand("resetCourses", func(cmd *cobra.Command, args []string, p *planner.Planner, section schedule.Section) error {
		if err := persisted(cmd, p.Reset(cmd.Context(), section.ID)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored the default courses of %s\n", section.ID)
		return nil
	}),
}

func init() {
	coursesListCmd.Flags().String("search", "", "match course name or instructor")
	coursesListCmd.Flags().String("day", schedule.AllDays, "only courses meeting on this weekday")
	coursesListCmd.Flags().String("view", string(schedule.ViewWeekly), "weekly or table")
	coursesListCmd.Flags().Bool("json", false, "print the view as json")

	addCourseFlags(coursesAddCmd)
	addCourseFlags(coursesEditCmd)

	coursesCmd.AddCommand(coursesListCmd, coursesAddCmd, coursesEditCmd, coursesDeleteCmd, coursesResetCmd)
	rootCmd.AddCommand(coursesCmd)
}
