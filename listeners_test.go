package nav

import (
	"context"
	"testing"
)

func TestRecordingListener_VisitedReturnsCopy(t *testing.T) {
	rec := &RecordingListener{}
	rec.NodeVisited(1)
	rec.NodeVisited(2)

	visited := rec.Visited()
	visited[0] = 99

	if rec.Visited()[0] != 1 {
		t.Error("expected Visited to return a copy")
	}
}

func TestRecordingListener_Reset(t *testing.T) {
	rec := &RecordingListener{}
	rec.NodeVisited(1)
	rec.Reset()

	if rec.Count() != 0 {
		t.Errorf("expected count 0 after reset, got %d", rec.Count())
	}
	if rec.Visited() == nil {
		// Visited returns an empty, non-nil slice
		t.Error("expected empty slice from Visited")
	}
}

func TestSumListener(t *testing.T) {
	navigator, err := New([]int{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	sum := &SumListener{}
	navigator.Subscribe(sum)
	if err := navigator.Navigate(context.Background()); err != nil {
		t.Fatalf("Navigate failed: %v", err)
	}

	if sum.Sum() != 15 {
		t.Errorf("expected sum 15, got %d", sum.Sum())
	}
}

func TestStatsListener(t *testing.T) {
	navigator, err := New([]int{10, -5, 20, 3})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	stats := &StatsListener{}
	navigator.Subscribe(stats)
	if err := navigator.Navigate(context.Background()); err != nil {
		t.Fatalf("Navigate failed: %v", err)
	}

	s := stats.Stats()
	if s.Count != 4 {
		t.Errorf("expected count 4, got %d", s.Count)
	}
	if s.Sum != 28 {
		t.Errorf("expected sum 28, got %d", s.Sum)
	}
	if s.Min != -5 {
		t.Errorf("expected min -5, got %d", s.Min)
	}
	if s.Max != 20 {
		t.Errorf("expected max 20, got %d", s.Max)
	}
	if s.Avg != 7.0 {
		t.Errorf("expected avg 7.0, got %f", s.Avg)
	}
}

func TestStatsListener_Empty(t *testing.T) {
	stats := &StatsListener{}

	s := stats.Stats()
	if s.Count != 0 {
		t.Errorf("expected zero snapshot, got %+v", s)
	}
	if s.String() != "no data" {
		t.Errorf("expected 'no data', got %q", s.String())
	}
}

func TestStats_String(t *testing.T) {
	s := Stats{Count: 2, Sum: 3, Min: 1, Max: 2, Avg: 1.5}
	if s.String() != "count=2 sum=3 min=1 max=2 avg=1.50" {
		t.Errorf("unexpected String: %q", s.String())
	}
}
