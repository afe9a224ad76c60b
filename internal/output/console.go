package output

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
)

// ConsoleScheduleWriter writes schedule reports to the console.
type ConsoleScheduleWriter struct{}

// Write outputs the schedule report to the console.
func (w *ConsoleScheduleWriter) Write(report *ScheduleReport, options OutputOptions) error {
	color.Green("Planned commit schedule")
	fmt.Printf("Start: %s\n", report.Start.Format("2006-01-02 15:04"))
	fmt.Printf("Days: %d, total commits: %d\n\n", len(report.Days), report.TotalCommits)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Date\tCommits\tFirst\tLast")

	for _, day := range report.Days {
		if day.Skipped {
			fmt.Fprintf(tw, "%s\tskipped\t\t\n", day.Date)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", day.Date, day.Commits, day.First, day.Last)
	}

	tw.Flush()
	return nil
}
