package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Pjt727/classboard/data/persist"
	"github.com/Pjt727/classboard/planner"
	"github.com/Pjt727/classboard/schedule"
	"github.com/spf13/cobra"
)

// now is swapped in tests
var now = time.Now

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// persisted downgrades a persistence failure to a warning. The change it
// belongs to is still visible for the rest of this process.
func persisted(cmd *cobra.Command, err error) error {
	if errors.Is(err, persist.ErrNotPersisted) {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: change was not saved:", err)
		return nil
	}
	return err
}

func printCourseStats(w io.Writer, stats schedule.CourseStats) {
	fmt.Fprintf(w, "%d courses, %d credits, %d weekly hours\n", stats.Courses, stats.Credits, stats.WeeklyHours)
}

func printCourseTable(w io.Writer, courses []schedule.Course) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tINSTRUCTOR\tROOM\tTIME\tDAYS\tCREDITS")
	for _, c := range courses {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			c.ID, c.Name, c.Instructor, c.Room, c.Time, strings.Join(c.Days, ", "), c.Credits)
	}
	return tw.Flush()
}

func printWeekly(w io.Writer, buckets []schedule.DayBucket) error {
	for _, bucket := range buckets {
		fmt.Fprintln(w, bucket.Day)
		if len(bucket.Courses) == 0 {
			fmt.Fprintln(w, "  No classes")
			continue
		}
		tw := newTable(w)
		for _, c := range bucket.Courses {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", c.Time, c.Name, c.Room, c.Instructor)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func printHolidays(w io.Writer, holidays []planner.DatedHoliday) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tDATE\tTYPE\tWHEN")
	for _, h := range holidays {
		date := h.LongDate
		if date == "" {
			date = h.Date
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", h.ID, h.Name, date, h.Type, h.Relative)
	}
	return tw.Flush()
}
