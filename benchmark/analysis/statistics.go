// Package analysis provides statistical analysis for self-play results.
package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ScoreStats summarizes a sample of per-game scores (1, 0.5, 0 from White's
// point of view).
type ScoreStats struct {
	Games    int
	Mean     float64 // White's score rate
	StdDev   float64
	StdErr   float64
	CI95Low  float64 // 95% confidence interval for the score rate
	CI95High float64
}

// Summarize computes summary statistics for a sample of game scores.
func Summarize(scores []float64) ScoreStats {
	n := len(scores)
	if n == 0 {
		return ScoreStats{}
	}

	mean := stat.Mean(scores, nil)
	sd := 0.0
	if n > 1 {
		sd = stat.StdDev(scores, nil)
	}
	se := sd / math.Sqrt(float64(n))

	s := ScoreStats{
		Games:    n,
		Mean:     mean,
		StdDev:   sd,
		StdErr:   se,
		CI95Low:  clampScore(mean - 1.96*se),
		CI95High: clampScore(mean + 1.96*se),
	}
	return s
}

// EloDifference converts a score rate into an Elo rating difference using
// the logistic model: diff = -400*log10(1/score - 1). Score rates at the
// extremes are clamped so the estimate stays finite.
func EloDifference(score float64) float64 {
	const epsilon = 0.001
	if score < epsilon {
		score = epsilon
	}
	if score > 1-epsilon {
		score = 1 - epsilon
	}
	return -400 * math.Log10(1/score-1)
}

// EloEstimate is an Elo difference with a confidence interval, derived from
// a score sample.
type EloEstimate struct {
	Diff     float64
	CI95Low  float64
	CI95High float64
}

// EstimateElo converts score statistics into an Elo difference estimate for
// White over Black.
func EstimateElo(s ScoreStats) EloEstimate {
	return EloEstimate{
		Diff:     EloDifference(s.Mean),
		CI95Low:  EloDifference(s.CI95Low),
		CI95High: EloDifference(s.CI95High),
	}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
