package usecase

import "time"

// MetricsRecorder receives counters from batch use cases.
type MetricsRecorder interface {
	ObserveLeaderboardRecompute(entries int, elapsed time.Duration, err error)
	ObserveSeed(activities int, elapsed time.Duration, err error)
}

type nopMetrics struct{}

func (nopMetrics) ObserveLeaderboardRecompute(int, time.Duration, error) {}
func (nopMetrics) ObserveSeed(int, time.Duration, error)                {}
