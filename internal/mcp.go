package internal

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MCPServer wraps the MCP server and application dependencies
type MCPServer struct {
	app       *App
	mcpServer *server.MCPServer
}

// NewMCPServer creates a new MCP server instance
func NewMCPServer(app *App, version string) *MCPServer {
	mcpServer := server.NewMCPServer(
		"replaylist-server",
		version,
		server.WithToolCapabilities(true),
	)

	s := &MCPServer{
		app:       app,
		mcpServer: mcpServer,
	}

	s.registerTools()

	return s
}

func (s *MCPServer) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_reply_videos",
		mcp.WithDescription("List the YouTube video IDs linked in the replies to a tweet. Only the first 100 replies are searched and duplicates are kept in reply order."),
		mcp.WithString("post",
			mcp.Description("Tweet URL or numeric tweet ID"),
			mcp.Required(),
		),
	), s.handleListVideos)

	s.mcpServer.AddTool(mcp.NewTool("create_reply_playlist",
		mcp.WithDescription("Create a YouTube playlist from the videos linked in the replies to a tweet. Requires a stored refresh token: run `replaylist auth` in a terminal first."),
		mcp.WithString("post",
			mcp.Description("Tweet URL or numeric tweet ID"),
			mcp.Required(),
		),
		mcp.WithString("title",
			mcp.Description("Playlist title (1-150 characters)"),
			mcp.Required(),
		),
		mcp.WithString("description",
			mcp.Description("Optional playlist description (up to 5000 characters)"),
		),
	), s.handleCreatePlaylist)
}

// handleListVideos implements the list_reply_videos tool
func (s *MCPServer) handleListVideos(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	post, err := request.RequireString("post")
	if err != nil || post == "" {
		return mcp.NewToolResultError("post parameter is required and must be a non-empty string"), nil
	}

	postID := ParsePostID(post)
	MCPLogInfo("list_reply_videos post=%q id=%q", post, postID)

	ids, err := s.app.VideoIDs(ctx, postID)
	if err != nil {
		MCPLogError("list_reply_videos failed: %v", err)
		return mcp.NewToolResultErrorFromErr("could not list reply videos", err), nil
	}

	return mcp.NewToolResultText(strings.Join(ids, "\n")), nil
}

// handleCreatePlaylist implements the create_reply_playlist tool
func (s *MCPServer) handleCreatePlaylist(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	post, err := request.RequireString("post")
	if err != nil || post == "" {
		return mcp.NewToolResultError("post parameter is required and must be a non-empty string"), nil
	}
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title parameter is required and must be a string"), nil
	}
	if err := ValidateTitle(title); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	description := request.GetString("description", "")
	if err := ValidateDescription(description); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	MCPLogInfo("create_reply_playlist post=%q title=%q", post, title)

	result, err := s.app.CreatePlaylistFromReplies(ctx, RunOptions{
		Post:           post,
		Title:          title,
		Description:    description,
		DescriptionSet: true,
	})
	if err != nil {
		MCPLogError("create_reply_playlist failed: %v", err)
		return mcp.NewToolResultErrorFromErr("could not create playlist", err), nil
	}

	MCPLogDebug("playlist %s: inserted=%v failed=%v", result.PlaylistID, result.Inserted, result.Failed)

	var buf strings.Builder
	buf.WriteString(result.Summary() + "\n")
	buf.WriteString(fmt.Sprintf("Playlist: %s\n", result.PlaylistURL()))
	if len(result.Failed) > 0 {
		buf.WriteString(fmt.Sprintf("Failed: %s\n", strings.Join(result.Failed, ", ")))
	}

	return mcp.NewToolResultText(buf.String()), nil
}

// Start starts the MCP server using the specified transport
func (s *MCPServer) Start(ctx context.Context, transport string, port int) error {
	if transport == "http" {
		httpServer := server.NewStreamableHTTPServer(s.mcpServer)
		addr := fmt.Sprintf(":%d", port)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		MCPLogInfo("serving MCP over HTTP on %s", addr)
		return httpServer.Start(addr)
	}

	MCPLogInfo("serving MCP over stdio")
	return server.ServeStdio(s.mcpServer)
}
