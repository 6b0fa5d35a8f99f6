package internal

import (
	"regexp"
)

// videoLinkPattern recognizes short links, embeds, channel/user links and watch URLs.
// The leading greedy .* makes the last recognized prefix in the URL win.
var videoLinkPattern = regexp.MustCompile(`.*(?:youtu.be\/|v\/|u\/\w\/|embed\/|watch\?v=)([^#\&\?]*).*`)

// postIDPattern finds the status ID in a pasted tweet URL or a bare numeric ID
var postIDPattern = regexp.MustCompile(`(?:(?:twitter|x)\.com/\w+/status/)?(\d+)`)

// ExtractVideoID returns the video ID of a YouTube link, or "" if the URL is not one
func ExtractVideoID(link string) string {
	m := videoLinkPattern.FindStringSubmatch(link)
	if m == nil {
		return ""
	}
	return m[1]
}

// FilterVideoIDs maps URLs to video IDs, dropping anything that is not a video link.
// Order and duplicates are preserved.
func FilterVideoIDs(links []string) ([]string, error) {
	ids := make([]string, 0, len(links))
	for _, link := range links {
		if id := ExtractVideoID(link); id != "" {
			ids = append(ids, id)
		}
	}

	if len(ids) == 0 {
		return nil, ErrNoRecognizedLinks
	}
	return ids, nil
}

// ParsePostID extracts the conversation ID from a tweet URL or ID.
// Returns "" when the input contains no ID.
func ParsePostID(input string) string {
	m := postIDPattern.FindStringSubmatch(input)
	if m == nil {
		return ""
	}
	return m[1]
}
