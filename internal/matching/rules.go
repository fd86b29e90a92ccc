package matching

import (
	"regexp"
	"strings"
)

// Weights for the four rule-based sub-scores. They sum to the content-score
// cap of 50; each sub-score is individually capped at its weight.
const (
	experienceWeight     = 20.0
	skillsWeight         = 15.0
	projectsWeight       = 10.0
	certificationsWeight = 5.0

	// pointsPerProject is awarded per "Project:" heading found in a résumé,
	// up to projectsWeight.
	pointsPerProject = 2.0
)

// projectHeading matches "project:" headings in résumé text, the convention
// candidates use to introduce project descriptions.
var projectHeading = regexp.MustCompile(`(?i)\bproject:`)

// RuleScorer scores résumé texts against the explicit requirements of one
// job description using interpretable containment heuristics. Construct one
// per scoring request; instances are read-only after construction and safe
// for concurrent use.
type RuleScorer struct {
	requirements *JobRequirements
}

// NewRuleScorer parses the job description once and returns a scorer bound
// to its requirements. A description without recognizable requirement
// sections produces a scorer that awards zero for the missing signals.
func NewRuleScorer(jobDescription string) *RuleScorer {
	return &RuleScorer{requirements: ParseJobRequirements(jobDescription)}
}

// Requirements returns the requirements the scorer was constructed with.
func (s *RuleScorer) Requirements() *JobRequirements {
	return s.requirements
}

// ScoreResume returns the rule-based content score for a résumé, in [0, 50].
// It never fails: empty or signal-free text simply scores low.
func (s *RuleScorer) ScoreResume(resumeText string) float64 {
	if strings.TrimSpace(resumeText) == "" {
		return 0
	}
	return s.experienceScore(resumeText) +
		s.skillsScore(resumeText) +
		s.projectsScore(resumeText) +
		s.certificationsScore(resumeText)
}

// experienceScore compares the candidate's stated years of experience with
// the required years, scaled to experienceWeight and capped there.
//
// A posting that states no experience requirement awards zero experience
// points to every candidate. That is the documented historical behavior of
// this scorer, kept intact rather than silently redefined.
func (s *RuleScorer) experienceScore(resumeText string) float64 {
	required := s.requirements.RequiredExperienceYears
	if required <= 0 {
		return 0
	}
	candidate := extractYears(resumeText)
	score := float64(candidate) / float64(required) * experienceWeight
	return min(score, experienceWeight)
}

// skillsScore scales the fraction of required skills present in the résumé
// to skillsWeight. No required skills means no skill points.
func (s *RuleScorer) skillsScore(resumeText string) float64 {
	total := len(s.requirements.RequiredSkills)
	if total == 0 {
		return 0
	}
	matched := len(s.MatchedSkills(resumeText))
	score := float64(matched) / float64(total) * skillsWeight
	return min(score, skillsWeight)
}

// projectsScore awards pointsPerProject per project heading, capped at
// projectsWeight.
func (s *RuleScorer) projectsScore(resumeText string) float64 {
	score := float64(s.ProjectCount(resumeText)) * pointsPerProject
	return min(score, projectsWeight)
}

// certificationsScore scales the fraction of certification keywords present
// in the résumé to certificationsWeight.
func (s *RuleScorer) certificationsScore(resumeText string) float64 {
	total := len(s.requirements.CertificationKeywords)
	if total == 0 {
		return 0
	}
	matched := len(s.MatchedCertifications(resumeText))
	score := float64(matched) / float64(total) * certificationsWeight
	return min(score, certificationsWeight)
}

// MatchedSkills returns the required skills found in the résumé text by
// case-insensitive substring match, in requirement order.
func (s *RuleScorer) MatchedSkills(resumeText string) []string {
	return containedKeywords(s.requirements.RequiredSkills, resumeText)
}

// MatchedCertifications returns the certification keywords found in the
// résumé text, in requirement order.
func (s *RuleScorer) MatchedCertifications(resumeText string) []string {
	return containedKeywords(s.requirements.CertificationKeywords, resumeText)
}

// ProjectCount counts project headings in the résumé text.
func (s *RuleScorer) ProjectCount(resumeText string) int {
	return len(projectHeading.FindAllStringIndex(resumeText, -1))
}

// containedKeywords filters keywords to those appearing as case-insensitive
// substrings of the text. Keywords are already normalized to lower case.
func containedKeywords(keywords []string, text string) []string {
	lower := strings.ToLower(text)
	matched := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			matched = append(matched, keyword)
		}
	}
	return matched
}
