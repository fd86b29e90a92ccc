package matching

import (
	"regexp"
	"strconv"
	"strings"
)

// Section extraction is deliberately first-match regex parsing: the upstream
// postings are free text, and a stricter grammar would reject more of them
// than it would parse. Absent sections degrade to empty requirement lists.
var (
	skillsSection = regexp.MustCompile(`(?i)(?:requirements|skills|qualifications)\s*:\s*([^.\n]+)`)
	certsSection  = regexp.MustCompile(`(?i)certifications?\s*:\s*([^.\n]+)`)
	mustHave      = regexp.MustCompile(`(?i)must have\s+([^.\n]+)`)
	yearsPhrase   = regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+of\s+experience`)
	listSeparator = regexp.MustCompile(`[,;]|\s+and\s+|\s+or\s+`)
)

// JobRequirements holds the structured requirements extracted from a job
// description. All fields are derived once at construction and never
// mutated afterwards.
type JobRequirements struct {
	// RequiredSkills are normalized (lower-cased, trimmed) skill names parsed
	// from the requirements/skills/qualifications section, in posting order.
	RequiredSkills []string

	// RequiredExperienceYears is taken from the first "<N>(+) years of
	// experience" phrase, 0 when the posting states none.
	RequiredExperienceYears int

	// CertificationKeywords are normalized certification names from the
	// certifications section, falling back to the "must have" phrase when no
	// labeled section exists.
	CertificationKeywords []string
}

// ParseJobRequirements extracts structured requirements from raw job
// description text. It never fails: a posting without recognizable sections
// yields empty lists and zero required experience, which score as zero
// contribution rather than as an error.
func ParseJobRequirements(jobDescription string) *JobRequirements {
	req := &JobRequirements{
		RequiredSkills:          extractList(skillsSection, jobDescription),
		RequiredExperienceYears: extractYears(jobDescription),
	}

	// The labeled "Certifications:" section wins over the looser "must have"
	// phrase, which frequently introduces an experience requirement instead.
	req.CertificationKeywords = extractList(certsSection, jobDescription)
	if len(req.CertificationKeywords) == 0 {
		req.CertificationKeywords = extractList(mustHave, jobDescription)
	}

	return req
}

// extractYears returns the first stated "<N> years of experience" in the
// text, or 0 when absent. Shared between job descriptions and résumés.
func extractYears(text string) int {
	match := yearsPhrase.FindStringSubmatch(text)
	if match == nil {
		return 0
	}
	years, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return years
}

// extractList captures the segment after a section label up to a sentence
// boundary and splits it into normalized items.
func extractList(section *regexp.Regexp, text string) []string {
	match := section.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	return splitListItems(match[1])
}

// splitListItems splits a captured section on commas, semicolons, " and "
// and " or ", lower-casing and trimming each item.
func splitListItems(segment string) []string {
	parts := listSeparator.Split(segment, -1)
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.ToLower(strings.TrimSpace(part))
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
