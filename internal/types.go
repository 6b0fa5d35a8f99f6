package internal

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoRecognizedLinks is returned when none of the harvested URLs is a YouTube video link
var ErrNoRecognizedLinks = errors.New("Could not find any YouTube links in replies.")

// ErrAuthorizationRequired is returned when a browser login is needed but not possible
var ErrAuthorizationRequired = errors.New("no refresh token stored - run `replaylist auth` to log in")

// RequestError reports a non-success response from an upstream API
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%d error: %s", e.StatusCode, e.Message)
}

// Upstream failure messages
const (
	msgTwitterRequest  = "Invalid Request. Unable to access Twitter API."
	msgRefreshRequest  = "Invalid Request. Unable to refresh access token."
	msgPlaylistRequest = "Invalid Request. Unable to create playlist."
)

// PlaylistMetadata is the user supplied snippet for a new playlist
type PlaylistMetadata struct {
	Title       string
	Description string
}

// RunResult records the outcome of one playlist run
type RunResult struct {
	PostID     string    `json:"post_id"`
	PlaylistID string    `json:"playlist_id"`
	Title      string    `json:"title"`
	VideoIDs   []string  `json:"video_ids"`
	Inserted   []string  `json:"inserted"`
	Failed     []string  `json:"failed"`
	CreatedAt  time.Time `json:"created_at"`
}

// PlaylistURL returns the public URL of the created playlist
func (r *RunResult) PlaylistURL() string {
	return "https://www.youtube.com/playlist?list=" + r.PlaylistID
}

// Summary returns the one line success message printed after a run
func (r *RunResult) Summary() string {
	return fmt.Sprintf("Successfully inserted %d videos into playlist \"%s\"", len(r.Inserted), r.Title)
}

// DescribeError formats a workflow error the way it is shown to the user
func DescribeError(err error) string {
	var reqErr *RequestError
	switch {
	case errors.As(err, &reqErr):
		return reqErr.Error()
	case errors.Is(err, ErrNoRecognizedLinks):
		return "Error: " + ErrNoRecognizedLinks.Error()
	default:
		return fmt.Sprintf("Unknown error: %v", err)
	}
}
