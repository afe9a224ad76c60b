package cmd

import (
	"time"

	"github.com/urfave/cli/v2"

	gitpkg "github.com/PrismaPhonic/green-bois-magnet/internal/git"
	"github.com/PrismaPhonic/green-bois-magnet/internal/output"
	"github.com/PrismaPhonic/green-bois-magnet/internal/schedule"
)

// PreviewCmd creates the preview command, which prints the would-be schedule
// without touching any repository.
func PreviewCmd() *cli.Command {
	return &cli.Command{
		Name:  "preview",
		Usage: "Show the commit schedule a seed run would produce",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (console, json)",
				Value:   "console",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: stdout)",
			},
		),
		Action: previewAction,
	}
}

func previewAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	window, err := buildWindow(cfg)
	if err != nil {
		return err
	}
	policy, err := buildDatePolicy(cfg)
	if err != nil {
		return err
	}
	sampler, err := buildSampler(cfg, c.Uint64("seed"))
	if err != nil {
		return err
	}

	author := gitpkg.Identity{Name: "preview", Email: "preview@localhost"}
	if cfg.Commit.Author != "" {
		if author, err = parseAuthor(cfg.Commit.Author); err != nil {
			return err
		}
	}

	store := gitpkg.NewMemoryStore()
	sched, err := schedule.New(store, sampler, policy, schedule.Options{
		Author:   author,
		Message:  cfg.Commit.Message,
		YearsAgo: cfg.Window.YearsAgo,
		Window:   window,
	})
	if err != nil {
		return err
	}

	if err := sched.Run(c.Context); err != nil {
		return err
	}

	report := buildScheduleReport(sched, store, policy)
	writer := output.NewScheduleWriter(getOutputFormat(c.String("format")))
	return writer.Write(report, output.OutputOptions{
		Format:     getOutputFormat(c.String("format")),
		OutputPath: c.String("output"),
	})
}

// buildScheduleReport groups the recorded requests back into calendar days.
func buildScheduleReport(sched *schedule.Scheduler, store *gitpkg.MemoryStore, skip schedule.DatePolicy) *output.ScheduleReport {
	perDay := map[string][]time.Time{}
	for _, req := range store.Requests {
		key := req.When.Format("2006-01-02")
		perDay[key] = append(perDay[key], req.When)
	}

	days := sched.DaysToCommit()
	if days < 1 {
		// A sub-day window still writes the root commit.
		days = 1
	}

	report := &output.ScheduleReport{
		GeneratedAt:  time.Now(),
		Start:        sched.Start(),
		TotalCommits: len(store.Requests),
	}

	day := sched.Start()
	for i := 0; i < days; i++ {
		key := day.Format("2006-01-02")
		times := perDay[key]
		entry := output.DaySchedule{
			Date:    key,
			Commits: len(times),
			Skipped: i > 0 && skip(day),
		}
		if len(times) > 0 {
			entry.First = times[0].Format("15:04:05")
			entry.Last = times[len(times)-1].Format("15:04:05")
		}
		report.Days = append(report.Days, entry)
		day = day.AddDate(0, 0, 1)
	}

	return report
}
