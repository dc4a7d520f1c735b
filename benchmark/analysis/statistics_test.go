package analysis

import (
	"math"
	"testing"
)

func TestSummarize_EmptySample(t *testing.T) {
	s := Summarize(nil)
	if s.Games != 0 || s.Mean != 0 {
		t.Errorf("Summarize(nil) = %+v, want zero value", s)
	}
}

func TestSummarize_Basic(t *testing.T) {
	scores := []float64{1, 1, 0.5, 0}
	s := Summarize(scores)

	if s.Games != 4 {
		t.Errorf("Games = %d, want 4", s.Games)
	}
	if math.Abs(s.Mean-0.625) > 1e-9 {
		t.Errorf("Mean = %v, want 0.625", s.Mean)
	}
	if s.CI95Low > s.Mean || s.CI95High < s.Mean {
		t.Errorf("CI [%v, %v] does not contain mean %v", s.CI95Low, s.CI95High, s.Mean)
	}
	if s.CI95Low < 0 || s.CI95High > 1 {
		t.Errorf("CI [%v, %v] outside [0,1]", s.CI95Low, s.CI95High)
	}
}

func TestEloDifference(t *testing.T) {
	if got := EloDifference(0.5); math.Abs(got) > 1e-9 {
		t.Errorf("EloDifference(0.5) = %v, want 0", got)
	}

	// A 75% score corresponds to roughly +191 Elo.
	got := EloDifference(0.75)
	if math.Abs(got-190.8) > 1 {
		t.Errorf("EloDifference(0.75) = %v, want about 190.8", got)
	}

	// Symmetric: losing at the same rate is the same magnitude, negated.
	if diff := EloDifference(0.25) + EloDifference(0.75); math.Abs(diff) > 1e-9 {
		t.Errorf("EloDifference is not symmetric: %v", diff)
	}

	// Extremes stay finite.
	if math.IsInf(EloDifference(0), 0) || math.IsInf(EloDifference(1), 0) {
		t.Error("EloDifference at extremes is infinite")
	}
}

func TestEstimateElo(t *testing.T) {
	s := Summarize([]float64{1, 0.5, 1, 0.5, 1, 0.5})
	est := EstimateElo(s)

	if est.Diff <= 0 {
		t.Errorf("Diff = %v, want positive for a winning score", est.Diff)
	}
	if est.CI95Low > est.Diff || est.CI95High < est.Diff {
		t.Errorf("CI [%v, %v] does not contain estimate %v", est.CI95Low, est.CI95High, est.Diff)
	}
}
