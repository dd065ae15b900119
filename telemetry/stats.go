// Package telemetry tracks match statistics: rallies, bounces and score
// progression, aggregated into fixed windows for logging and CSV output.
package telemetry

import "gonum.org/v1/gonum/stat"

// WindowStats holds aggregated match statistics for one time window.
type WindowStats struct {
	WindowEndTick int32   `csv:"window_end"`
	SimTimeSec    float64 `csv:"sim_time"`

	// Scores at window end
	LeftScore  int `csv:"left_score"`
	RightScore int `csv:"right_score"`

	// Events during window
	Points  int `csv:"points"`
	Bounces int `csv:"bounces"`
	Jumps   int `csv:"jumps"`

	// Rally lengths in ticks, for rallies that ended in this window
	RallyLenMean float64 `csv:"rally_len_mean"`
	RallyLenStd  float64 `csv:"rally_len_std"`
	LongestRally float64 `csv:"longest_rally"`
}

// ComputeRallyStats calculates mean, standard deviation and maximum of
// rally lengths. Returns zeros for an empty slice; stddev is zero for a
// single rally.
func ComputeRallyStats(lengths []float64) (mean, std, longest float64) {
	if len(lengths) == 0 {
		return 0, 0, 0
	}

	mean = stat.Mean(lengths, nil)
	if len(lengths) > 1 {
		std = stat.StdDev(lengths, nil)
	}

	longest = lengths[0]
	for _, l := range lengths[1:] {
		if l > longest {
			longest = l
		}
	}
	return mean, std, longest
}
