package internal

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toolRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestMCPListReplyVideos(t *testing.T) {
	app, _ := newTestApp(t, &fakeUpstream{}, "")
	s := NewMCPServer(app, "test")

	result, err := s.handleListVideos(context.Background(), toolRequest("list_reply_videos", map[string]any{
		"post": "https://x.com/someone/status/123",
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "vid111\nvid222", resultText(t, result))
}

func TestMCPListReplyVideosMissingPost(t *testing.T) {
	app, _ := newTestApp(t, &fakeUpstream{}, "")
	s := NewMCPServer(app, "test")

	result, err := s.handleListVideos(context.Background(), toolRequest("list_reply_videos", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestMCPCreateReplyPlaylist(t *testing.T) {
	upstream := &fakeUpstream{rejected: map[string]bool{"vid222": true}}
	app, _ := newTestApp(t, upstream, "")
	s := NewMCPServer(app, "test")

	result, err := s.handleCreatePlaylist(context.Background(), toolRequest("create_reply_playlist", map[string]any{
		"post":  "123",
		"title": "My Picks",
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	text := resultText(t, result)
	assert.Contains(t, text, `Successfully inserted 1 videos into playlist "My Picks"`)
	assert.Contains(t, text, "https://www.youtube.com/playlist?list=PLtest")
	assert.Contains(t, text, "Failed: vid222")
}

func TestMCPCreateReplyPlaylistNeedsLogin(t *testing.T) {
	app, config := newTestApp(t, &fakeUpstream{}, "")
	require.NoError(t, (&ClientSecrets{Installed: InstalledCredentials{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
	}}).Save(config.ClientSecretsFile))
	app.credentials = NewCredentials(config.ClientSecretsFile, NoBrowserAuthorizer{}, app.httpClient, false)
	s := NewMCPServer(app, "test")

	result, err := s.handleCreatePlaylist(context.Background(), toolRequest("create_reply_playlist", map[string]any{
		"post":  "123",
		"title": "My Picks",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestMCPCreateReplyPlaylistRejectsEmptyArguments(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
	}{
		{"empty title", map[string]any{"post": "123", "title": ""}},
		{"empty post", map[string]any{"post": "", "title": "My Picks"}},
		{"long title", map[string]any{"post": "123", "title": strings.Repeat("t", 151)}},
		{"long description", map[string]any{"post": "123", "title": "My Picks", "description": strings.Repeat("d", 5001)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := &fakeUpstream{}
			// a queued protocol line must never be read as an answer
			app, _ := newTestApp(t, upstream, "{\"jsonrpc\":\"2.0\"}\n")
			s := NewMCPServer(app, "test")

			result, err := s.handleCreatePlaylist(context.Background(), toolRequest("create_reply_playlist", tt.args))
			require.NoError(t, err)
			assert.True(t, result.IsError)
			assert.Zero(t, upstream.playlists)
		})
	}
}

func TestMCPListReplyVideosEmptyPost(t *testing.T) {
	app, _ := newTestApp(t, &fakeUpstream{}, "123\n")
	s := NewMCPServer(app, "test")

	result, err := s.handleListVideos(context.Background(), toolRequest("list_reply_videos", map[string]any{"post": ""}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
