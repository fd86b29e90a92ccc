package fetch

import (
	"net/url"
	"strings"
)

// Platform identifies a known job board so text extraction can use
// board-specific selectors.
type Platform string

const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformUnknown    Platform = "unknown"
)

// DetectPlatform identifies the job board hosting a posting URL.
func DetectPlatform(postingURL string) Platform {
	parsed, err := url.Parse(postingURL)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	switch {
	case strings.Contains(host, "greenhouse.io"):
		return PlatformGreenhouse
	case strings.Contains(host, "lever.co"):
		return PlatformLever
	case strings.Contains(host, "workday.com"), strings.Contains(host, "myworkdayjobs.com"):
		return PlatformWorkday
	default:
		return PlatformUnknown
	}
}

// contentSelectors returns the CSS selectors tried when locating the job
// description, board-specific ones first.
func contentSelectors(platform Platform) []string {
	generic := []string{
		".job-description",
		".job-content",
		"#job-description",
		".posting-content",
		".job-details",
		"[data-testid='job-description']",
		"main",
		"article",
		".content",
		"#content",
	}

	switch platform {
	case PlatformGreenhouse:
		return append([]string{".job__description.body", ".job__description", "#content .body"}, generic...)
	case PlatformLever:
		return append([]string{".posting-page", ".section-wrapper .section", "[data-qa='job-description']"}, generic...)
	case PlatformWorkday:
		return append([]string{"[data-automation-id='jobPostingDescription']"}, generic...)
	default:
		return generic
	}
}
