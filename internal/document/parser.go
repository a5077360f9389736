package document

import (
	"regexp"
	"strings"
)

var (
	sentenceSplit = regexp.MustCompile(`[.!?;]\s+|\n`)
	preferredCue  = regexp.MustCompile(`(?i)\b(nice to have|preferred|bonus|a plus|desirable|ideally)\b`)
	requiredCue   = regexp.MustCompile(`(?i)\b(required|requirements?|must|essential|mandatory|needed|need)\b`)
)

// ParseCV detects sections, extracts entities per section and then over the
// full text, keeping the first occurrence of each entity.
func ParseCV(text string) *ParsedCV {
	sections := DetectSections(text, KindCV)

	var entities []Entity
	seen := make(map[EntityKey]bool)
	for i := range sections {
		sections[i].Entities = Extract(sections[i].Content, sections[i].Type)
		entities = appendUnique(entities, seen, sections[i].Entities)
	}
	entities = appendUnique(entities, seen, Extract(text, ""))

	return &ParsedCV{
		RawText:         text,
		Sections:        sections,
		Entities:        entities,
		YearsExperience: YearsExperience(text),
		JobTitles:       JobTitles(text),
	}
}

// ParseJD works like ParseCV and additionally classifies entities as required
// (Requirements and Qualifications sections) or preferred (Preferred sections).
// Sections of unknown type are classified sentence by sentence using cue words.
func ParseJD(text string) *ParsedJD {
	sections := DetectSections(text, KindJD)

	var entities, required, preferred []Entity
	seen := make(map[EntityKey]bool)
	seenRequired := make(map[EntityKey]bool)
	seenPreferred := make(map[EntityKey]bool)

	for i := range sections {
		s := &sections[i]
		s.Entities = Extract(s.Content, s.Type)
		entities = appendUnique(entities, seen, s.Entities)

		switch s.Type {
		case SectionRequirements, SectionQualifications:
			required = appendUnique(required, seenRequired, s.Entities)
		case SectionPreferred:
			preferred = appendUnique(preferred, seenPreferred, s.Entities)
		case SectionUnknown:
			req, pref := classifyByCues(s)
			required = appendUnique(required, seenRequired, req)
			preferred = appendUnique(preferred, seenPreferred, pref)
		}
	}
	entities = appendUnique(entities, seen, Extract(text, ""))

	jd := &ParsedJD{
		RawText:           text,
		Sections:          sections,
		Entities:          entities,
		RequiredEntities:  required,
		PreferredEntities: preferred,
		YearsRequired:     YearsExperience(text),
	}
	if titles := JobTitles(text); len(titles) > 0 {
		jd.JobTitle = titles[0]
	}

	return jd
}

// classifyByCues splits an unlabelled section into sentences and assigns the
// section's entities to preferred or required by the cue words of the sentence
// they occur in. Preferred cues win over required ones.
func classifyByCues(s *Section) (required, preferred []Entity) {
	if len(s.Entities) == 0 {
		return nil, nil
	}

	byKey := make(map[EntityKey]Entity, len(s.Entities))
	for _, e := range s.Entities {
		byKey[e.Key()] = e
	}

	for _, sentence := range sentenceSplit.Split(s.Content, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}

		var target *[]Entity
		switch {
		case preferredCue.MatchString(sentence):
			target = &preferred
		case requiredCue.MatchString(sentence):
			target = &required
		default:
			continue
		}

		for _, found := range Extract(sentence, s.Type) {
			if e, ok := byKey[found.Key()]; ok {
				*target = append(*target, e)
			}
		}
	}

	return required, preferred
}

func appendUnique(dst []Entity, seen map[EntityKey]bool, src []Entity) []Entity {
	for _, e := range src {
		k := e.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		dst = append(dst, e)
	}
	return dst
}
