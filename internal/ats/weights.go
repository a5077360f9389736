package ats

import (
	"errors"
	"fmt"
	"math"
)

// Category is a scored keyword bucket.
type Category string

const (
	CategoryCritical   Category = "critical_keywords"
	CategoryHardSkills Category = "hard_skills"
	CategoryRequired   Category = "required"
	CategorySoftSkills Category = "soft_skills"
	CategoryPreferred  Category = "preferred"
	CategoryFrequency  Category = "frequency_keywords"
)

// Categories lists the buckets in report order.
var Categories = []Category{
	CategoryCritical, CategoryHardSkills, CategoryRequired,
	CategorySoftSkills, CategoryPreferred, CategoryFrequency,
}

// Weights drives the lexical score and the hybrid blend. When semantic scoring
// is unavailable its weight moves to the lexical component.
type Weights struct {
	Lexical    float64
	Semantic   float64
	Evidence   float64
	Categories map[Category]float64
}

// DefaultWeights returns the standard blend: 55% lexical, 35% semantic, 10% evidence.
func DefaultWeights() Weights {
	return Weights{
		Lexical:  0.55,
		Semantic: 0.35,
		Evidence: 0.10,
		Categories: map[Category]float64{
			CategoryCritical:   3.0,
			CategoryHardSkills: 2.5,
			CategoryRequired:   2.0,
			CategorySoftSkills: 1.5,
			CategoryPreferred:  1.0,
			CategoryFrequency:  0.5,
		},
	}
}

// Validate checks that the blend weights are non-negative and sum to 1 and
// that every category has a positive weight.
func (w Weights) Validate() error {
	if w.Lexical < 0 || w.Semantic < 0 || w.Evidence < 0 {
		return errors.New("hybrid weights must not be negative")
	}
	if sum := w.Lexical + w.Semantic + w.Evidence; math.Abs(sum-1) > 1e-6 {
		return fmt.Errorf("hybrid weights must sum to 1, got %.4f", sum)
	}
	for _, c := range Categories {
		if w.Categories[c] <= 0 {
			return fmt.Errorf("category %q needs a positive weight", c)
		}
	}
	return nil
}
