package nav

import "fmt"

// RecordingListener records every visited value and the total notification
// count. The zero value is ready to use.
type RecordingListener struct {
	visited []int
}

// NodeVisited records the visited value.
func (l *RecordingListener) NodeVisited(value int) error {
	l.visited = append(l.visited, value)
	return nil
}

// Visited returns a copy of the recorded values, in notification order.
func (l *RecordingListener) Visited() []int {
	out := make([]int, len(l.visited))
	copy(out, l.visited)
	return out
}

// Count returns the total number of notifications received.
func (l *RecordingListener) Count() int {
	return len(l.visited)
}

// Reset discards all recorded values.
func (l *RecordingListener) Reset() {
	l.visited = nil
}

// SumListener accumulates a running sum of visited values.
// The zero value is ready to use.
type SumListener struct {
	sum int
}

// NodeVisited adds the visited value to the running sum.
func (l *SumListener) NodeVisited(value int) error {
	l.sum += value
	return nil
}

// Sum returns the accumulated sum.
func (l *SumListener) Sum() int {
	return l.sum
}

// Stats is a snapshot of the values observed by a StatsListener.
type Stats struct {
	Count int
	Sum   int
	Min   int
	Max   int
	Avg   float64
}

// String returns a human-readable rendering of the snapshot.
func (s Stats) String() string {
	if s.Count == 0 {
		return "no data"
	}
	return fmt.Sprintf("count=%d sum=%d min=%d max=%d avg=%.2f",
		s.Count, s.Sum, s.Min, s.Max, s.Avg)
}

// StatsListener collects count, sum, min, max, and average of visited
// values. The zero value is ready to use.
type StatsListener struct {
	count int
	sum   int
	min   int
	max   int
}

// NodeVisited folds the visited value into the running statistics.
func (l *StatsListener) NodeVisited(value int) error {
	if l.count == 0 || value < l.min {
		l.min = value
	}
	if l.count == 0 || value > l.max {
		l.max = value
	}
	l.count++
	l.sum += value
	return nil
}

// Stats returns a snapshot of the collected statistics.
// The zero snapshot is returned when no values have been observed.
func (l *StatsListener) Stats() Stats {
	if l.count == 0 {
		return Stats{}
	}
	return Stats{
		Count: l.count,
		Sum:   l.sum,
		Min:   l.min,
		Max:   l.max,
		Avg:   float64(l.sum) / float64(l.count),
	}
}
