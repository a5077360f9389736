package semantic

import "github.com/spigell/ats-matcher/internal/document"

// Match is one embedded JD/CV section pair.
type Match struct {
	JDSection  document.SectionType `json:"jd_section"`
	CVSection  document.SectionType `json:"cv_section"`
	Similarity float64              `json:"similarity"`
	JDPreview  string               `json:"jd_text_preview"`
	CVPreview  string               `json:"cv_text_preview"`
	HighValue  bool                 `json:"is_high_value"`
}

// Result is the outcome of semantic scoring. When Available is false the
// score carries no signal and must not be read as zero similarity.
type Result struct {
	Score                 float64                          `json:"score"`
	SectionSimilarities   map[document.SectionType]float64 `json:"section_similarities"`
	CVSectionSimilarities map[document.SectionType]float64 `json:"cv_section_similarities"`
	TopMatches            []Match                          `json:"top_matches"`
	Gaps                  []string                         `json:"gaps"`
	EntitySupportRatio    float64                          `json:"entity_support_ratio"`
	HighValueMatchCount   int                              `json:"high_value_match_count"`
	Available             bool                             `json:"available"`
}

func unavailable() Result {
	return Result{
		SectionSimilarities:   map[document.SectionType]float64{},
		CVSectionSimilarities: map[document.SectionType]float64{},
	}
}
