package stats

import "context"

// StatsService projects the caller's attendance into a dashboard view.
// Reads only; never mutates attendance state.
type StatsService interface {
	MyStats(ctx context.Context) (*MyStatsResponse, error)
}
