package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/PrismaPhonic/green-bois-magnet/config"
	gitpkg "github.com/PrismaPhonic/green-bois-magnet/internal/git"
	"github.com/PrismaPhonic/green-bois-magnet/internal/output"
	"github.com/PrismaPhonic/green-bois-magnet/internal/schedule"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "green-bois-magnet",
		Usage:   "Backfill a Git repository with plausible-looking commit history",
		Version: "1.0.0",
		Commands: []*cli.Command{
			SeedCmd(),
			PreviewCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		},
		Action: legacyAction,
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:    "author",
			Aliases: []string{"a"},
			Usage:   "Author override, e.g. \"Jane Doe <jane@example.com>\" (default: repository identity)",
		},
		&cli.StringFlag{
			Name:    "message",
			Aliases: []string{"m"},
			Usage:   "Message for every generated commit",
		},
		&cli.Float64Flag{
			Name:    "years",
			Aliases: []string{"y"},
			Usage:   "How many years back the history starts (fractional allowed)",
		},
		&cli.StringFlag{
			Name:  "start",
			Usage: "Daily work window start (HH:MM)",
		},
		&cli.StringFlag{
			Name:  "end",
			Usage: "Daily work window end (HH:MM)",
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Usage: "Seed for the commit-count distribution (0: seed from the clock)",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns of staged paths to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns of staged paths to exclude (can be specified multiple times)",
		},
	}
}

// loadConfig loads configuration from file or defaults and applies flag
// overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if msg := c.String("message"); msg != "" {
		cfg.Commit.Message = msg
	}
	if author := c.String("author"); author != "" {
		cfg.Commit.Author = author
	}
	if years := c.Float64("years"); years > 0 {
		cfg.Window.YearsAgo = years
	}
	if start := c.String("start"); start != "" {
		cfg.Window.Start = start
	}
	if end := c.String("end"); end != "" {
		cfg.Window.End = end
	}
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}

	return cfg, nil
}

// buildWindow parses the configured work window.
func buildWindow(cfg *config.Config) (schedule.Window, error) {
	return schedule.ParseWindow(cfg.Window.Start, cfg.Window.End)
}

// buildDatePolicy assembles the skip policy from configuration.
func buildDatePolicy(cfg *config.Config) (schedule.DatePolicy, error) {
	var policies []schedule.DatePolicy

	if cfg.Skip.Weekends {
		policies = append(policies, schedule.SkipWeekends)
	}
	if len(cfg.Skip.Dates) > 0 {
		dates := make([]time.Time, 0, len(cfg.Skip.Dates))
		for _, s := range cfg.Skip.Dates {
			d, err := time.Parse("2006-01-02", s)
			if err != nil {
				return nil, fmt.Errorf("invalid skip date %q (expected YYYY-MM-DD)", s)
			}
			dates = append(dates, d)
		}
		policies = append(policies, schedule.SkipDates(dates))
	}

	if len(policies) == 0 {
		return schedule.SkipNone, nil
	}
	return schedule.AnyOf(policies...), nil
}

// buildSampler creates the commit-count sampler, seeded explicitly when the
// seed flag is set.
func buildSampler(cfg *config.Config, seed uint64) (schedule.CountSampler, error) {
	if seed != 0 {
		return schedule.NewSeededWeightedSampler(cfg.Weights, seed)
	}
	return schedule.NewWeightedSampler(cfg.Weights)
}

// parseAuthor splits "Name <email>" into its parts.
func parseAuthor(s string) (gitpkg.Identity, error) {
	lt := strings.LastIndexByte(s, '<')
	gt := strings.LastIndexByte(s, '>')
	if lt <= 0 || gt != len(s)-1 || gt < lt {
		return gitpkg.Identity{}, fmt.Errorf("invalid author %q (expected \"Name <email>\")", s)
	}
	name := strings.TrimSpace(s[:lt])
	email := strings.TrimSpace(s[lt+1 : gt])
	if name == "" || email == "" {
		return gitpkg.Identity{}, fmt.Errorf("invalid author %q (expected \"Name <email>\")", s)
	}
	return gitpkg.Identity{Name: name, Email: email}, nil
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch s {
	case "json":
		return output.FormatJSON
	default:
		return output.FormatConsole
	}
}

// legacyAction handles the default (legacy) command behavior: a bare
// repository path argument seeds that repository.
func legacyAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.ShowAppHelp(c)
	}
	return SeedCmd().Action(c)
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
