package output

import (
	"encoding/json"
	"os"
)

// JSONScheduleWriter writes schedule reports as JSON.
type JSONScheduleWriter struct{}

// Write outputs the schedule report as JSON, to the output path if one is
// set, otherwise to stdout.
func (w *JSONScheduleWriter) Write(report *ScheduleReport, options OutputOptions) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if options.OutputPath != "" {
		return os.WriteFile(options.OutputPath, data, 0644)
	}
	_, err = os.Stdout.Write(data)
	return err
}
