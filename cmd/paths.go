package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rtzll/replaylist/internal"
)

// pathsCmd represents the paths command
var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show paths used by the application",
	Example: `  # Show all application paths
  replaylist paths`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Config directory: %s\n", config.ConfigDir)
		fmt.Printf("Data directory: %s\n", config.DataDir)
		fmt.Printf("Cache directory: %s\n", config.CacheDir)
		fmt.Printf("History directory: %s\n", config.HistoryDir)
		fmt.Printf("Client secrets file: %s\n", config.ClientSecretsFile)
		fmt.Printf("MCP log file: %s\n", internal.MCPLogPath(config))
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}
