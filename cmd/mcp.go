package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rtzll/replaylist/internal"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP server exposing replaylist as tools",
	Long: `Run a Model Context Protocol (MCP) server that exposes replaylist as tools.

The MCP server provides two tools:
- list_reply_videos: list the YouTube video IDs linked in a tweet's replies
- create_reply_playlist: build a playlist from those videos

The server never opens a browser. Log in once with 'replaylist auth'
so a refresh token is stored before creating playlists through MCP.

Transport options:
- stdio (default): Standard MCP transport via stdin/stdout
- http: HTTP transport on specified port (use --port to configure)`,
	Example: `  # Run MCP server with stdio transport
  replaylist mcp

  # Run MCP server with HTTP transport on port 8080
  replaylist mcp --transport=http --port=8080`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// stdout is the protocol channel
		config.Verbose = false
		config.Quiet = true
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		if transport != "stdio" && transport != "http" {
			return fmt.Errorf("unsupported transport %q (use stdio or http)", transport)
		}

		closeLog, err := internal.InitMCPLogging(config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			defer closeLog()
		}

		app := internal.NewApp(config,
			internal.WithAuthorizer(internal.NoBrowserAuthorizer{}),
			internal.WithoutPrompts(),
		)
		mcpServer := internal.NewMCPServer(app, buildVersion())

		if transport == "http" {
			fmt.Fprintf(os.Stderr, "Starting replaylist MCP server on HTTP port %d...\n", port)
		}

		return mcpServer.Start(cmd.Context(), transport, port)
	},
}

func init() {
	mcpCmd.Flags().String("transport", "stdio", "Transport protocol (stdio or http)")
	mcpCmd.Flags().Int("port", 8080, "Port for HTTP transport (only used with --transport=http)")
	rootCmd.AddCommand(mcpCmd)
}
