package ats

import (
	"math"

	"github.com/spigell/ats-matcher/internal/semantic"
)

// HybridScore is the breakdown of the final score.
type HybridScore struct {
	FinalScore           float64 `json:"final_score"`
	LexicalScore         float64 `json:"lexical_score"`
	LexicalWeight        float64 `json:"lexical_weight"`
	LexicalContribution  float64 `json:"lexical_contribution"`
	SemanticScore        float64 `json:"semantic_score"`
	SemanticWeight       float64 `json:"semantic_weight"`
	SemanticContribution float64 `json:"semantic_contribution"`
	EvidenceScore        float64 `json:"evidence_score"`
	EvidenceWeight       float64 `json:"evidence_weight"`
	EvidenceContribution float64 `json:"evidence_contribution"`
	SemanticAvailable    bool    `json:"semantic_available"`
}

// EvidenceScore maps an average evidence strength from roughly [0.5, 2.0]
// onto [0, 100].
func EvidenceScore(strength float64) float64 {
	return clamp((strength-0.5)/1.5*100, 0, 100)
}

// blend combines the component scores. Without a semantic signal the
// semantic weight is added to the lexical weight.
func (w Weights) blend(lexical float64, sem semantic.Result, avgStrength float64) HybridScore {
	lexicalWeight, semanticWeight := w.Lexical, w.Semantic
	semanticScore := sem.Score
	if !sem.Available {
		lexicalWeight += semanticWeight
		semanticWeight = 0
		semanticScore = 0
	}

	evidenceScore := EvidenceScore(avgStrength)
	final := lexical*lexicalWeight + semanticScore*semanticWeight + evidenceScore*w.Evidence

	return HybridScore{
		FinalScore:           round(clamp(final, 0, 100), 1),
		LexicalScore:         round(lexical, 1),
		LexicalWeight:        round(lexicalWeight, 2),
		LexicalContribution:  round(lexical*lexicalWeight, 1),
		SemanticScore:        round(semanticScore, 1),
		SemanticWeight:       round(semanticWeight, 2),
		SemanticContribution: round(semanticScore*semanticWeight, 1),
		EvidenceScore:        round(evidenceScore, 1),
		EvidenceWeight:       round(w.Evidence, 2),
		EvidenceContribution: round(evidenceScore*w.Evidence, 1),
		SemanticAvailable:    sem.Available,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
