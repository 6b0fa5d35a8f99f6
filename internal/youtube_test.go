package internal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestYouTube(t *testing.T, handler http.Handler) *YouTube {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	yt, err := NewYouTube(context.Background(), testHTTPClient(), server.URL+"/", "yt-access", false)
	require.NoError(t, err)
	return yt
}

func TestYouTubeCreatePlaylist(t *testing.T) {
	yt := newTestYouTube(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/youtube/v3/playlists", r.URL.Path)
		assert.Equal(t, "snippet", r.URL.Query().Get("part"))
		assert.Equal(t, "Bearer yt-access", r.Header.Get("Authorization"))

		var body struct {
			Snippet struct {
				Title       string `json:"title"`
				Description string `json:"description"`
			} `json:"snippet"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "My Picks", body.Snippet.Title)
		assert.Equal(t, "from the replies", body.Snippet.Description)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"kind": "youtube#playlist", "id": "PL123"}`))
	}))

	id, err := yt.CreatePlaylist(context.Background(), PlaylistMetadata{Title: "My Picks", Description: "from the replies"})
	require.NoError(t, err)
	assert.Equal(t, "PL123", id)
}

func TestYouTubeCreatePlaylistFailure(t *testing.T) {
	yt := newTestYouTube(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"code": 403, "message": "quota exceeded"}}`))
	}))

	_, err := yt.CreatePlaylist(context.Background(), PlaylistMetadata{Title: "My Picks"})

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr), "expected RequestError, got %v", err)
	assert.Equal(t, http.StatusForbidden, reqErr.StatusCode)
	assert.Equal(t, "403 error: Invalid Request. Unable to create playlist.", reqErr.Error())
}

func TestYouTubeInsertVideo(t *testing.T) {
	yt := newTestYouTube(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/youtube/v3/playlistItems", r.URL.Path)
		assert.Equal(t, "Bearer yt-access", r.Header.Get("Authorization"))

		var body struct {
			Snippet struct {
				PlaylistID string `json:"playlistId"`
				ResourceID struct {
					Kind    string `json:"kind"`
					VideoID string `json:"videoId"`
				} `json:"resourceId"`
			} `json:"snippet"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "PL123", body.Snippet.PlaylistID)
		assert.Equal(t, "youtube#video", body.Snippet.ResourceID.Kind)

		w.Header().Set("Content-Type", "application/json")
		if body.Snippet.ResourceID.VideoID == "gone" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": {"code": 404, "message": "video not found"}}`))
			return
		}
		w.Write([]byte(`{"kind": "youtube#playlistItem", "id": "item"}`))
	}))

	assert.True(t, yt.InsertVideo(context.Background(), "PL123", "vid111"))
	assert.False(t, yt.InsertVideo(context.Background(), "PL123", "gone"))
}

func TestYouTubeDefaultEndpointPaths(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "PL123"}`))
	}))
	defer server.Close()

	endpoint := strings.Replace(DefaultYouTubeAPIURL, "https://youtube.googleapis.com", server.URL, 1)
	yt, err := NewYouTube(context.Background(), testHTTPClient(), endpoint, "yt-access", false)
	require.NoError(t, err)

	_, err = yt.CreatePlaylist(context.Background(), PlaylistMetadata{Title: "My Picks"})
	require.NoError(t, err)
	assert.True(t, yt.InsertVideo(context.Background(), "PL123", "vid111"))

	assert.Equal(t, []string{"/youtube/v3/playlists", "/youtube/v3/playlistItems"}, paths)
}
