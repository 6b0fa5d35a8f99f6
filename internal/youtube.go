package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// DefaultYouTubeAPIURL is the root of the YouTube Data API host.
// The generated client appends youtube/v3/<resource> itself.
const DefaultYouTubeAPIURL = "https://youtube.googleapis.com/"

// videoKind is the resource kind of a playlist item pointing at a video
const videoKind = "youtube#video"

// YouTube creates playlists and playlist items through the Data API
type YouTube struct {
	service *youtube.Service
	verbose bool
}

// NewYouTube creates a Data API client authorized with the given access token
func NewYouTube(ctx context.Context, httpClient *http.Client, endpoint, accessToken string, verbose bool) (*YouTube, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})

	authClient := oauth2.NewClient(ctx, ts)
	authClient.Timeout = httpClient.Timeout

	service, err := youtube.NewService(ctx,
		option.WithHTTPClient(authClient),
		option.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("creating YouTube service: %w", err)
	}

	return &YouTube{
		service: service,
		verbose: verbose,
	}, nil
}

// CreatePlaylist creates a playlist and returns its ID
func (yt *YouTube) CreatePlaylist(ctx context.Context, meta PlaylistMetadata) (string, error) {
	playlist := &youtube.Playlist{
		Snippet: &youtube.PlaylistSnippet{
			Title:       meta.Title,
			Description: meta.Description,
		},
	}

	created, err := yt.service.Playlists.Insert([]string{"snippet"}, playlist).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			return "", &RequestError{StatusCode: apiErr.Code, Message: msgPlaylistRequest}
		}
		return "", fmt.Errorf("creating playlist: %w", err)
	}

	if yt.verbose {
		fmt.Printf("Created playlist %s\n", created.Id)
	}

	return created.Id, nil
}

// InsertVideo appends a video to a playlist and reports whether it worked.
// Failures are not errors: one bad video must not stop the others.
func (yt *YouTube) InsertVideo(ctx context.Context, playlistID, videoID string) bool {
	item := &youtube.PlaylistItem{
		Snippet: &youtube.PlaylistItemSnippet{
			PlaylistId: playlistID,
			ResourceId: &youtube.ResourceId{
				Kind:    videoKind,
				VideoId: videoID,
			},
		},
	}

	if _, err := yt.service.PlaylistItems.Insert([]string{"snippet"}, item).Context(ctx).Do(); err != nil {
		if yt.verbose {
			fmt.Printf("Failed to insert video %s: %v\n", videoID, err)
		}
		return false
	}

	return true
}
