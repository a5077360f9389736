package ats

import (
	"strings"

	"github.com/spigell/ats-matcher/internal/document"
)

const (
	strongEvidence   = 1.3
	moderateEvidence = 1.0
)

type sectionMatches struct {
	experience []string
	projects   []string
	skills     []string
	other      []string
	notFound   []string
}

// matchSections places every required or preferred JD entity in the CV
// section that best demonstrates it: experience, then projects, then skills,
// then any other section.
func matchSections(cv *document.ParsedCV, jd *document.ParsedJD) sectionMatches {
	bySection := make(map[document.SectionType]map[string]bool)
	for _, e := range cv.Entities {
		section := e.Section
		if section == "" {
			section = document.SectionUnknown
		}
		if bySection[section] == nil {
			bySection[section] = make(map[string]bool)
		}
		bySection[section][strings.ToLower(e.Text)] = true
	}

	var skills []string
	seen := make(map[string]bool)
	for _, list := range [][]document.Entity{jd.RequiredEntities, jd.PreferredEntities} {
		for _, e := range list {
			s := strings.ToLower(e.Text)
			if !seen[s] {
				seen[s] = true
				skills = append(skills, s)
			}
		}
	}

	var m sectionMatches
	for _, s := range skills {
		switch {
		case bySection[document.SectionExperience][s]:
			m.experience = append(m.experience, s)
		case bySection[document.SectionProjects][s]:
			m.projects = append(m.projects, s)
		case bySection[document.SectionSkills][s]:
			m.skills = append(m.skills, s)
		case inAnySection(bySection, s):
			m.other = append(m.other, s)
		default:
			m.notFound = append(m.notFound, s)
		}
	}
	return m
}

func inAnySection(bySection map[document.SectionType]map[string]bool, skill string) bool {
	for _, set := range bySection {
		if set[skill] {
			return true
		}
	}
	return false
}

// EvidenceItem is a CV entity that covers a JD skill.
type EvidenceItem struct {
	Skill    string               `json:"skill"`
	Strength float64              `json:"strength"`
	Section  document.SectionType `json:"section,omitempty"`
}

type evidence struct {
	strong   []EvidenceItem
	moderate []EvidenceItem
	weak     []EvidenceItem
	average  float64
	total    float64
}

// weighEvidence buckets the CV entities that name a JD hard or soft skill by
// evidence strength.
func weighEvidence(cv *document.ParsedCV, jd *document.ParsedJD) evidence {
	jdSkills := make(map[string]bool)
	for _, e := range jd.Entities {
		if e.Type == document.EntityHardSkill || e.Type == document.EntitySoftSkill {
			jdSkills[strings.ToLower(e.Text)] = true
		}
	}

	var (
		ev    evidence
		count int
	)
	for _, e := range cv.Entities {
		if !jdSkills[strings.ToLower(e.Text)] {
			continue
		}
		count++
		ev.total += e.EvidenceStrength

		item := EvidenceItem{Skill: e.Text, Strength: e.EvidenceStrength, Section: e.Section}
		switch {
		case e.EvidenceStrength > strongEvidence:
			ev.strong = append(ev.strong, item)
		case e.EvidenceStrength >= moderateEvidence:
			ev.moderate = append(ev.moderate, item)
		default:
			ev.weak = append(ev.weak, item)
		}
	}

	if count > 0 {
		ev.average = round(ev.total/float64(count), 2)
		ev.total = round(ev.total, 2)
	}
	return ev
}
