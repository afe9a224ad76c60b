package schedule

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-git/go-git/v5/plumbing"

	gitpkg "github.com/PrismaPhonic/green-bois-magnet/internal/git"
)

// Options configures a single scheduling run.
type Options struct {
	Tree    plumbing.Hash
	Author  gitpkg.Identity
	Message string

	// YearsAgo is how far back the history starts; may be fractional.
	YearsAgo float64
	Window   Window

	// Now overrides the clock; zero means time.Now. Tests use it to pin the
	// run to a known date.
	Now time.Time
}

// Scheduler decides when commits happen and drives the store to create them,
// one calendar day at a time, threading each commit's hash forward as the
// next commit's parent.
type Scheduler struct {
	store  gitpkg.CommitStore
	counts CountSampler
	skip   DatePolicy

	tree    plumbing.Hash
	author  gitpkg.Identity
	message string

	daysToCommit int
	start        time.Time
	window       Window
}

// New validates opts and computes the run's day count and start instant: the
// current date anchored at the window's opening time, pushed back
// daysToCommit calendar days.
func New(store gitpkg.CommitStore, counts CountSampler, skip DatePolicy, opts Options) (*Scheduler, error) {
	if opts.YearsAgo <= 0 {
		return nil, fmt.Errorf("years ago must be positive, got %v", opts.YearsAgo)
	}
	if err := opts.Window.Validate(); err != nil {
		return nil, err
	}
	if skip == nil {
		skip = SkipNone
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	daysToCommit := int(math.Round(365 * opts.YearsAgo))
	start := dayOpen(now, opts.Window).AddDate(0, 0, -daysToCommit)

	return &Scheduler{
		store:        store,
		counts:       counts,
		skip:         skip,
		tree:         opts.Tree,
		author:       opts.Author,
		message:      opts.Message,
		daysToCommit: daysToCommit,
		start:        start,
		window:       opts.Window,
	}, nil
}

// DaysToCommit is the number of calendar-day iterations the run covers.
func (s *Scheduler) DaysToCommit() int {
	return s.daysToCommit
}

// Start is the instant the root commit lands at.
func (s *Scheduler) Start() time.Time {
	return s.start
}

// Run creates the whole chain and points the branch head at its tip. The root
// commit lands exactly at the start instant; every later day consults the
// date policy once, draws a commit count, and spreads the commits evenly
// across the working window. Any store error aborts immediately, leaving the
// head untouched.
func (s *Scheduler) Run(ctx context.Context) error {
	parent, err := s.store.WriteCommit(ctx, s.request(plumbing.ZeroHash, s.start))
	if err != nil {
		return err
	}

	day := s.start
	for i := 1; i < s.daysToCommit; i++ {
		day = day.AddDate(0, 0, 1)
		if s.skip(day) {
			continue
		}
		parent, err = s.commitDay(ctx, parent, day)
		if err != nil {
			return err
		}
	}

	return s.store.ResetHeadMixed(ctx, parent)
}

// commitDay writes one day's commits, evenly spaced from the window opening,
// and returns the last hash written, or the incoming parent when the draw
// comes up zero.
func (s *Scheduler) commitDay(ctx context.Context, parent plumbing.Hash, day time.Time) (plumbing.Hash, error) {
	num := s.counts.Draw()
	if num <= 0 {
		return parent, nil
	}

	workSeconds := s.window.Duration().Seconds()
	for i := 0; i < num; i++ {
		offset := time.Duration(workSeconds/float64(num)*float64(i)) * time.Second
		hash, err := s.store.WriteCommit(ctx, s.request(parent, day.Add(offset)))
		if err != nil {
			return plumbing.ZeroHash, err
		}
		parent = hash
	}
	return parent, nil
}

func (s *Scheduler) request(parent plumbing.Hash, when time.Time) gitpkg.CommitRequest {
	return gitpkg.CommitRequest{
		Tree:    s.tree,
		Parent:  parent,
		Author:  s.author,
		Message: s.message,
		When:    when,
	}
}

// dayOpen is the given date at the window's opening time.
func dayOpen(t time.Time, w Window) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).Add(w.Start)
}
