package extraction

import (
	"regexp"
	"strings"
)

var (
	intraLineSpace  = regexp.MustCompile(`[ \t]+`)
	extraBlankLines = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes extracted document text: line endings become LF,
// runs of spaces and tabs collapse to one space, trailing whitespace is
// dropped and blank-line runs shrink to a single separator. Structure that
// matters to the matcher (line breaks between sections) survives.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(intraLineSpace.ReplaceAllString(line, " "))
	}

	cleaned := strings.Join(lines, "\n")
	cleaned = extraBlankLines.ReplaceAllString(cleaned, "\n\n")
	return strings.TrimSpace(cleaned)
}
