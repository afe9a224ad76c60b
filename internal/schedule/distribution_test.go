package schedule

import "testing"

func TestNewSeededWeightedSampler_Validation(t *testing.T) {
	tests := []struct {
		name    string
		weights []int
	}{
		{name: "Empty", weights: nil},
		{name: "Negative", weights: []int{1, -2, 3}},
		{name: "ZeroSum", weights: []int{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSeededWeightedSampler(tt.weights, 1); err == nil {
				t.Fatalf("expected error, got nil")
			}
		})
	}
}

func TestWeightedSampler_Bounds(t *testing.T) {
	sampler, err := NewSeededWeightedSampler(DefaultWeights, 12345)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 100000; i++ {
		n := sampler.Draw()
		if n < 0 || n > 13 {
			t.Fatalf("Draw() = %d, expected in [0, 13]", n)
		}
	}
}

func TestWeightedSampler_UShape(t *testing.T) {
	sampler, err := NewSeededWeightedSampler(DefaultWeights, 67890)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	counts := make([]int, len(DefaultWeights))
	for i := 0; i < 100000; i++ {
		counts[sampler.Draw()]++
	}

	// Extremes carry weight 3-4 against 1 for the middle values, so each
	// extreme must clearly out-draw each middle value.
	extremes := []int{0, 1, 12, 13}
	middles := []int{5, 6, 7, 8}
	for _, e := range extremes {
		for _, m := range middles {
			if counts[e] <= counts[m] {
				t.Errorf("count[%d] = %d not above count[%d] = %d", e, counts[e], m, counts[m])
			}
		}
	}
}

func TestWeightedSampler_SeedDeterminism(t *testing.T) {
	a, err := NewSeededWeightedSampler(DefaultWeights, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewSeededWeightedSampler(DefaultWeights, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 1000; i++ {
		if x, y := a.Draw(), b.Draw(); x != y {
			t.Fatalf("draw %d: %d != %d for identical seeds", i, x, y)
		}
	}
}

func TestWeightedSampler_SingleChoice(t *testing.T) {
	sampler, err := NewSeededWeightedSampler([]int{5}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 100; i++ {
		if n := sampler.Draw(); n != 0 {
			t.Fatalf("Draw() = %d, expected 0", n)
		}
	}
}
