package output

import "time"

// Compile-time interface conformance checks.
var (
	_ ScheduleWriter = (*ConsoleScheduleWriter)(nil)
	_ ScheduleWriter = (*JSONScheduleWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole OutputFormat = "console"
	FormatJSON    OutputFormat = "json"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string
}

// ScheduleReport holds the planned commits of a preview run.
type ScheduleReport struct {
	GeneratedAt  time.Time     `json:"generatedAt"`
	Start        time.Time     `json:"start"`
	TotalCommits int           `json:"totalCommits"`
	Days         []DaySchedule `json:"days"`
}

// DaySchedule is one calendar day of the plan.
type DaySchedule struct {
	Date    string `json:"date"`
	Commits int    `json:"commits"`
	Skipped bool   `json:"skipped"`
	First   string `json:"first,omitempty"`
	Last    string `json:"last,omitempty"`
}

// ScheduleWriter writes schedule reports.
type ScheduleWriter interface {
	Write(report *ScheduleReport, options OutputOptions) error
}

// NewScheduleWriter creates a report writer for the specified format.
func NewScheduleWriter(format OutputFormat) ScheduleWriter {
	switch format {
	case FormatJSON:
		return &JSONScheduleWriter{}
	default:
		return &ConsoleScheduleWriter{}
	}
}
