package semantic

import (
	"fmt"
	"math"
)

const (
	sparsityThreshold  = 70.0
	sparsityRatio      = 0.3
	sparsityPenalty    = 0.5
	strongMatch        = 50.0
	noStrongMatchCap   = 60.0
	minCoveredPairs    = 2
	limitedCoverageCap = 50.0
)

// applyRails pulls an over-confident raw score down when the evidence behind
// it is thin. It returns the adjusted score in [0, 100] and one note per rail
// that fired.
func applyRails(raw float64, matches []Match, cvHard, jdHard int) (float64, []string) {
	var gaps []string
	score := raw

	ratio := hardEntityRatio(cvHard, jdHard)
	if raw > sparsityThreshold && ratio < sparsityRatio {
		score -= (raw - sparsityThreshold) * sparsityPenalty
		gaps = append(gaps, fmt.Sprintf("Low entity coverage (%d vs %d JD skills)", cvHard, jdHard))
	}

	strong := false
	for _, m := range matches {
		if m.HighValue && m.Similarity > strongMatch {
			strong = true
			break
		}
	}
	if !strong && score > noStrongMatchCap {
		score = noStrongMatchCap
		gaps = append(gaps, "No strong Experience/Projects matches")
	}

	if len(matches) < minCoveredPairs && score > limitedCoverageCap {
		score = limitedCoverageCap
		gaps = append(gaps, "Limited section coverage")
	}

	return math.Max(0, math.Min(100, score)), gaps
}

// hardEntityRatio treats a JD without hard entities as fully covered when
// the CV names any, and as half covered otherwise.
func hardEntityRatio(cv, jd int) float64 {
	switch {
	case jd > 0:
		return float64(cv) / float64(jd)
	case cv > 0:
		return 1.0
	default:
		return 0.5
	}
}
