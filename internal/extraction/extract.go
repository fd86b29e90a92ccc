// Package extraction converts uploaded candidate documents into plain text
// for the scoring engine. Extraction never fails past this boundary: an
// unreadable or unsupported document degrades to empty text, which the
// scorers treat as carrying no signal.
package extraction

import (
	"log"
	"os"
	"path/filepath"
	"strings"
)

// supportedExtensions lists the document types extracted natively. PDF and
// DOCX uploads are accepted by the API surface but degrade to empty text
// until a converter is wired in; the scoring contract tolerates that.
var supportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".text": true,
}

// Supported reports whether the file's extension has a native extractor.
func Supported(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// Extract reads a document and returns its cleaned plain text, or an empty
// string when the file cannot be read or its type has no extractor.
func Extract(path string) string {
	if !Supported(path) {
		log.Printf("extraction: no extractor for %q, treating %s as empty", filepath.Ext(path), path)
		return ""
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("extraction: reading %s failed: %v", path, err)
		return ""
	}
	return CleanText(string(data))
}
