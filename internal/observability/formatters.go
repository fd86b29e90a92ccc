// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jiruejeta/resume-matcher/internal/matching"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobRequirements outputs a human-readable summary of the parsed job requirements.
func (p *Printer) PrintJobRequirements(requirements *matching.JobRequirements) {
	if requirements == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Experience: %d years\n", requirements.RequiredExperienceYears))
	sb.WriteString("\n")

	if len(requirements.RequiredSkills) > 0 {
		sb.WriteString("Required Skills:\n")
		count := min(len(requirements.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", requirements.RequiredSkills[i]))
		}
		if len(requirements.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(requirements.RequiredSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(requirements.CertificationKeywords) > 0 {
		sb.WriteString("Certifications:\n")
		count := min(len(requirements.CertificationKeywords), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", requirements.CertificationKeywords[i]))
		}
		if len(requirements.CertificationKeywords) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(requirements.CertificationKeywords)-3))
		}
	}

	p.printBox("PARSED JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResults outputs the top N scored résumés with their sub-scores.
func (p *Printer) PrintMatchResults(results []matching.ScoreResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total resumes scored: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		sb.WriteString(fmt.Sprintf("#%d  combined %.2f\n", i+1, result.CombinedScore))
		sb.WriteString(fmt.Sprintf("    content %.2f / similarity %.2f\n", result.ContentScore, result.SimilarityScore))
		if len(result.Details.MatchedSkills) > 0 {
			skills := strings.Join(result.Details.MatchedSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if result.Details.ProjectsCount > 0 {
			sb.WriteString(fmt.Sprintf("    Projects: %d\n", result.Details.ProjectsCount))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more\n", len(results)-maxItemsToShow))
	}

	p.printBox("RANKED RESUMES", strings.TrimSuffix(sb.String(), "\n"))
}
