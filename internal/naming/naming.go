package naming

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxTitleLength = 80

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`v=([a-zA-Z0-9_-]{11})`),
}

var (
	unsafeRunes    = regexp.MustCompile(`[^a-z0-9_-]`)
	separatorRuns  = regexp.MustCompile(`[_-]+`)
	titleCaser     = cases.Title(language.Und)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// ExtractVideoID pulls the 11-character video identifier out of the common
// watch, short-link, and embed URL shapes. Returns "" when none is found.
func ExtractVideoID(url string) string {
	for _, pattern := range videoIDPatterns {
		if match := pattern.FindStringSubmatch(url); match != nil {
			return match[1]
		}
	}
	return ""
}

// SanitizeTitle lowercases a video title and strips everything unsafe for
// a directory name. Falls back to "video" when nothing survives.
func SanitizeTitle(title string) string {
	sanitized := strings.ToLower(title)
	sanitized = strings.ReplaceAll(sanitized, " ", "_")
	sanitized = unsafeRunes.ReplaceAllString(sanitized, "")
	sanitized = separatorRuns.ReplaceAllString(sanitized, "_")
	sanitized = strings.Trim(sanitized, "_-")
	if len(sanitized) > maxTitleLength {
		sanitized = strings.TrimRight(sanitized[:maxTitleLength], "_-")
	}
	if sanitized == "" {
		return "video"
	}
	return sanitized
}

// DisplayTitle normalizes whitespace and title-cases a raw video title for
// tables and log output.
func DisplayTitle(title string) string {
	title = strings.TrimSpace(whitespaceRuns.ReplaceAllString(title, " "))
	if title == "" {
		return "Untitled"
	}
	return titleCaser.String(title)
}

// OutputFolderName builds the dated output folder name
// YYYY-MM-DD__sanitized-title__video-id.
func OutputFolderName(title, videoID string, runDate time.Time) string {
	if strings.TrimSpace(videoID) == "" {
		videoID = "unknown"
	}
	return fmt.Sprintf("%s__%s__%s", runDate.Format("2006-01-02"), SanitizeTitle(title), videoID)
}
