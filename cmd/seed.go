package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/PrismaPhonic/green-bois-magnet/config"
	gitpkg "github.com/PrismaPhonic/green-bois-magnet/internal/git"
	"github.com/PrismaPhonic/green-bois-magnet/internal/schedule"
)

// SeedCmd creates the seed command, the main synthesis operation.
func SeedCmd() *cli.Command {
	return &cli.Command{
		Name:      "seed",
		Usage:     "Write a backdated commit chain into a repository",
		ArgsUsage: "[repository path]",
		Flags:     commonFlags(),
		Action:    seedAction,
	}
}

func seedAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	repoPath := c.String("repo")
	if repoPath == "" {
		repoPath = "."
	}
	if c.NArg() > 0 {
		repoPath = c.Args().Get(0)
	}

	return runSeed(c.Context, repoPath, cfg, c.Uint64("seed"))
}

func runSeed(ctx context.Context, repoPath string, cfg *config.Config, seed uint64) error {
	started := time.Now()
	color.Green("Seeding %v repo", repoPath)

	engine, err := gitpkg.Open(repoPath, gitpkg.FilterOptions{
		Include: cfg.Filters.Include,
		Exclude: cfg.Filters.Exclude,
	})
	if err != nil {
		return err
	}

	tree, err := engine.IndexTree()
	if err != nil {
		return err
	}

	author, err := resolveAuthor(engine, cfg)
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
	sampler, err := buildSampler(cfg, seed)
	if err != nil {
		return err
	}

	sched, err := schedule.New(engine, sampler, policy, schedule.Options{
		Tree:     tree,
		Author:   author,
		Message:  cfg.Commit.Message,
		YearsAgo: cfg.Window.YearsAgo,
		Window:   window,
	})
	if err != nil {
		return err
	}

	color.Yellow("Writing %v days of history as %v", sched.DaysToCommit(), author)

	if err := sched.Run(ctx); err != nil {
		return err
	}

	color.Green("Branch head now points at the synthesized history")
	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n", time.Since(started))
	return nil
}

// resolveAuthor prefers the configured override, falling back to the
// repository's own identity.
func resolveAuthor(engine *gitpkg.Engine, cfg *config.Config) (gitpkg.Identity, error) {
	if cfg.Commit.Author != "" {
		return parseAuthor(cfg.Commit.Author)
	}
	return engine.AuthorIdentity()
}
