package document

import "strings"

// Kind selects the section vocabulary used when splitting a document.
type Kind int

const (
	KindCV Kind = iota
	KindJD
)

func (k Kind) String() string {
	switch k {
	case KindCV:
		return "cv"
	case KindJD:
		return "jd"
	default:
		return "unknown"
	}
}

// SectionType labels a detected section. CV and job-description vocabularies
// share the type; SectionUnknown is used by both.
type SectionType string

// CV sections.
const (
	SectionSummary        SectionType = "summary"
	SectionSkills         SectionType = "skills"
	SectionExperience     SectionType = "experience"
	SectionEducation      SectionType = "education"
	SectionCertifications SectionType = "certifications"
	SectionProjects       SectionType = "projects"
	SectionContact        SectionType = "contact"
)

// Job-description sections.
const (
	SectionOverview         SectionType = "overview"
	SectionResponsibilities SectionType = "responsibilities"
	SectionRequirements     SectionType = "requirements"
	SectionPreferred        SectionType = "preferred"
	SectionQualifications   SectionType = "qualifications"
	SectionBenefits         SectionType = "benefits"
	SectionAbout            SectionType = "about"
)

const SectionUnknown SectionType = "unknown"

// Title returns the section name with its first letter upper-cased.
func (s SectionType) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// EntityType classifies an extracted entity.
type EntityType string

const (
	EntityHardSkill       EntityType = "hard_skill"
	EntitySoftSkill       EntityType = "soft_skill"
	EntityCertification   EntityType = "certification"
	EntityMethodology     EntityType = "methodology"
	EntityDomain          EntityType = "domain"
	EntityJobTitle        EntityType = "job_title"
	EntityYearsExperience EntityType = "years_experience"
	EntityMetric          EntityType = "metric"
)

// Entity is a typed span recognised in a document. Two entities are the same
// when their lowercased text and type match; see Key.
type Entity struct {
	Text             string      `json:"text"`
	Type             EntityType  `json:"entity_type"`
	Section          SectionType `json:"section,omitempty"`
	EvidenceStrength float64     `json:"evidence_strength"`
	Context          string      `json:"context"`
}

// EntityKey identifies an entity independently of where it was found.
type EntityKey struct {
	Text string
	Type EntityType
}

// Key returns the identity of the entity.
func (e Entity) Key() EntityKey {
	return EntityKey{Text: strings.ToLower(e.Text), Type: e.Type}
}

// Section is a contiguous block of lines labelled with a section type.
// Content excludes the header line itself.
type Section struct {
	Type      SectionType `json:"section_type"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	StartLine int         `json:"start_line"`
	EndLine   int         `json:"end_line"`
	Entities  []Entity    `json:"entities"`
}

// ParsedCV is the structured form of a résumé.
type ParsedCV struct {
	RawText         string    `json:"raw_text"`
	Sections        []Section `json:"sections"`
	Entities        []Entity  `json:"entities"`
	YearsExperience *int      `json:"years_experience"`
	JobTitles       []string  `json:"job_titles"`
}

// EntitiesOfType returns the entities with the given type in document order.
func (p *ParsedCV) EntitiesOfType(t EntityType) []Entity {
	return filterByType(p.Entities, t)
}

// EntitiesInSection returns the entities tagged with the given section.
func (p *ParsedCV) EntitiesInSection(s SectionType) []Entity {
	var out []Entity
	for _, e := range p.Entities {
		if e.Section == s {
			out = append(out, e)
		}
	}
	return out
}

// HardSkills returns unique lowercased hard-skill names.
func (p *ParsedCV) HardSkills() []string {
	return uniqueLower(p.Entities, EntityHardSkill)
}

// SoftSkills returns unique lowercased soft-skill names.
func (p *ParsedCV) SoftSkills() []string {
	return uniqueLower(p.Entities, EntitySoftSkill)
}

// ParsedJD is the structured form of a job description.
type ParsedJD struct {
	RawText           string    `json:"raw_text"`
	Sections          []Section `json:"sections"`
	Entities          []Entity  `json:"entities"`
	RequiredEntities  []Entity  `json:"required_entities"`
	PreferredEntities []Entity  `json:"preferred_entities"`
	YearsRequired     *int      `json:"years_required"`
	JobTitle          string    `json:"job_title,omitempty"`
}

// EntitiesOfType returns the entities with the given type in document order.
func (p *ParsedJD) EntitiesOfType(t EntityType) []Entity {
	return filterByType(p.Entities, t)
}

// RequiredSkills returns unique lowercased hard and soft skills marked as required.
func (p *ParsedJD) RequiredSkills() []string {
	return uniqueLower(p.RequiredEntities, EntityHardSkill, EntitySoftSkill)
}

// PreferredSkills returns unique lowercased hard and soft skills marked as preferred.
func (p *ParsedJD) PreferredSkills() []string {
	return uniqueLower(p.PreferredEntities, EntityHardSkill, EntitySoftSkill)
}

// SectionText joins the content of every section of the given type.
func SectionText(sections []Section, t SectionType) string {
	var parts []string
	for _, s := range sections {
		if s.Type == t {
			parts = append(parts, s.Content)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// CountHardEntities counts hard skills and certifications.
func CountHardEntities(entities []Entity) int {
	n := 0
	for _, e := range entities {
		if e.Type == EntityHardSkill || e.Type == EntityCertification {
			n++
		}
	}
	return n
}

func filterByType(entities []Entity, t EntityType) []Entity {
	var out []Entity
	for _, e := range entities {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func uniqueLower(entities []Entity, types ...EntityType) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range entities {
		match := false
		for _, t := range types {
			if e.Type == t {
				match = true
				break
			}
		}
		if !match {
			continue
		}
		key := strings.ToLower(e.Text)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	return out
}
