package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-git/go-git/v5/plumbing"

	gitpkg "github.com/PrismaPhonic/green-bois-magnet/internal/git"
)

// fixedSampler always draws the same commit count.
type fixedSampler struct{ n int }

func (f fixedSampler) Draw() int { return f.n }

// monday is a fixed clock so runs land on known dates (2025-06-30 is a Monday).
var monday = time.Date(2025, 6, 30, 14, 23, 0, 0, time.UTC)

func testOptions(yearsAgo float64) Options {
	return Options{
		Tree:     plumbing.NewHash("4b825dc642cb6eb9a060e54bf8d69288fbee4904"),
		Author:   gitpkg.Identity{Name: "Test", Email: "test@example.com"},
		Message:  "update",
		YearsAgo: yearsAgo,
		Window:   Window{Start: 9 * time.Hour, End: 17 * time.Hour},
		Now:      monday,
	}
}

func TestNew_DaysToCommit(t *testing.T) {
	tests := []struct {
		name     string
		yearsAgo float64
		want     int
	}{
		{name: "OneYear", yearsAgo: 1, want: 365},
		{name: "TwoYears", yearsAgo: 2, want: 730},
		{name: "TenthOfYear", yearsAgo: 0.1, want: 37},
		{name: "HalfYear", yearsAgo: 0.5, want: 183},
		{name: "TinyFraction", yearsAgo: 0.001, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched, err := New(gitpkg.NewMemoryStore(), fixedSampler{n: 1}, SkipNone, testOptions(tt.yearsAgo))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := sched.DaysToCommit(); got != tt.want {
				t.Errorf("DaysToCommit() = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestNew_StartAnchor(t *testing.T) {
	sched, err := New(gitpkg.NewMemoryStore(), fixedSampler{n: 1}, SkipNone, testOptions(0.02))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// round(365 * 0.02) = 7 days back from Monday at the window opening.
	want := time.Date(2025, 6, 23, 9, 0, 0, 0, time.UTC)
	if !sched.Start().Equal(want) {
		t.Errorf("Start() = %v, expected %v", sched.Start(), want)
	}
}

func TestNew_Validation(t *testing.T) {
	t.Run("NonPositiveYears", func(t *testing.T) {
		opts := testOptions(0)
		if _, err := New(gitpkg.NewMemoryStore(), fixedSampler{n: 1}, SkipNone, opts); err == nil {
			t.Fatalf("expected error, got nil")
		}
	})

	t.Run("InvertedWindow", func(t *testing.T) {
		opts := testOptions(1)
		opts.Window = Window{Start: 17 * time.Hour, End: 9 * time.Hour}
		if _, err := New(gitpkg.NewMemoryStore(), fixedSampler{n: 1}, SkipNone, opts); err == nil {
			t.Fatalf("expected error, got nil")
		}
	})
}

func TestScheduler_Run_LinearChain(t *testing.T) {
	store := gitpkg.NewMemoryStore()
	sched, err := New(store, fixedSampler{n: 2}, SkipNone, testOptions(0.02))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := sched.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Root commit plus 2 commits for each of the 6 remaining days.
	if len(store.Requests) != 13 {
		t.Fatalf("wrote %d commits, expected 13", len(store.Requests))
	}

	if store.Requests[0].HasParent() {
		t.Errorf("root commit has parent %v", store.Requests[0].Parent)
	}
	for i := 1; i < len(store.Requests); i++ {
		if store.Requests[i].Parent != store.Hashes[i-1] {
			t.Errorf("request %d parent = %v, expected %v", i, store.Requests[i].Parent, store.Hashes[i-1])
		}
	}

	if store.Head != store.Hashes[len(store.Hashes)-1] {
		t.Errorf("head = %v, expected last hash %v", store.Head, store.Hashes[len(store.Hashes)-1])
	}
}

func TestScheduler_Run_TimestampsInsideWindow(t *testing.T) {
	store := gitpkg.NewMemoryStore()
	opts := testOptions(0.05) // 18 days
	sched, err := New(store, fixedSampler{n: 5}, SkipNone, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sched.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var prev time.Time
	for i, req := range store.Requests {
		if i > 0 && req.When.Before(prev) {
			t.Errorf("request %d at %v is before request %d at %v", i, req.When, i-1, prev)
		}
		prev = req.When

		midnight := time.Date(req.When.Year(), req.When.Month(), req.When.Day(), 0, 0, 0, 0, req.When.Location())
		tod := req.When.Sub(midnight)
		if tod < opts.Window.Start || tod > opts.Window.End {
			t.Errorf("request %d time of day %v outside window", i, tod)
		}
	}
}

func TestScheduler_Run_EvenSpacing(t *testing.T) {
	store := gitpkg.NewMemoryStore()
	sched, err := New(store, fixedSampler{n: 4}, SkipNone, testOptions(0.005)) // 2 days
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sched.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Root commit, then 4 commits across the 8h window on the second day:
	// 09:00, 11:00, 13:00, 15:00.
	if len(store.Requests) != 5 {
		t.Fatalf("wrote %d commits, expected 5", len(store.Requests))
	}
	day := time.Date(2025, 6, 29, 0, 0, 0, 0, time.UTC)
	wantHours := []int{9, 11, 13, 15}
	for i, h := range wantHours {
		want := day.Add(time.Duration(h) * time.Hour)
		if got := store.Requests[i+1].When; !got.Equal(want) {
			t.Errorf("commit %d at %v, expected %v", i+1, got, want)
		}
	}
}

func TestScheduler_Run_SkipsWeekends(t *testing.T) {
	store := gitpkg.NewMemoryStore()
	sched, err := New(store, fixedSampler{n: 3}, SkipWeekends, testOptions(0.04)) // 15 days
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sched.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for i, req := range store.Requests {
		// The root commit ignores the policy, matching the original
		// behavior of always writing the initial commit.
		if i == 0 {
			continue
		}
		wd := req.When.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			t.Errorf("request %d landed on a weekend: %v", i, req.When)
		}
	}

	// The chain must still be unbroken across the gaps.
	for i := 1; i < len(store.Requests); i++ {
		if store.Requests[i].Parent != store.Hashes[i-1] {
			t.Errorf("request %d parent = %v, expected %v", i, store.Requests[i].Parent, store.Hashes[i-1])
		}
	}
}

func TestScheduler_Run_ZeroDraw(t *testing.T) {
	store := gitpkg.NewMemoryStore()
	sched, err := New(store, fixedSampler{n: 0}, SkipNone, testOptions(0.02))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sched.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(store.Requests) != 1 {
		t.Fatalf("wrote %d commits, expected only the root commit", len(store.Requests))
	}
	if store.Head != store.Hashes[0] {
		t.Errorf("head = %v, expected the root commit %v", store.Head, store.Hashes[0])
	}
}

func TestScheduler_Run_ZeroDays(t *testing.T) {
	store := gitpkg.NewMemoryStore()
	sched, err := New(store, fixedSampler{n: 3}, SkipNone, testOptions(0.001))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sched.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(store.Requests) != 1 {
		t.Fatalf("wrote %d commits, expected only the root commit", len(store.Requests))
	}
}

func TestScheduler_Run_WriteFailure(t *testing.T) {
	store := gitpkg.NewMemoryStore()
	store.FailAt = 5
	store.Err = errors.New("object database unavailable")

	sched, err := New(store, fixedSampler{n: 2}, SkipNone, testOptions(0.02))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := sched.Run(context.Background()); !errors.Is(err, store.Err) {
		t.Fatalf("Run = %v, expected %v", err, store.Err)
	}

	// The commits written before the failure stay, the head is never reset.
	if len(store.Requests) != 5 {
		t.Errorf("wrote %d commits before failing, expected 5", len(store.Requests))
	}
	if store.Head != plumbing.ZeroHash {
		t.Errorf("head = %v, expected untouched", store.Head)
	}
}

func TestScheduler_Run_ResetFailure(t *testing.T) {
	store := gitpkg.NewMemoryStore()
	store.ResetErr = errors.New("ref locked")

	sched, err := New(store, fixedSampler{n: 1}, SkipNone, testOptions(0.01))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := sched.Run(context.Background()); !errors.Is(err, store.ResetErr) {
		t.Fatalf("Run = %v, expected %v", err, store.ResetErr)
	}
	if len(store.Requests) != 4 {
		t.Errorf("wrote %d commits, expected the full chain of 4", len(store.Requests))
	}
}
