package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rtzll/replaylist/internal"
)

// historyCmd lists the playlists created by earlier runs
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List playlists created by earlier runs",
	Example: `  # Show past playlists, newest first
  replaylist history`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runs, err := internal.LoadHistory(config.HistoryDir)
		if err != nil {
			return err
		}

		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No playlists created yet")
			return nil
		}

		for _, run := range runs {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %q  %d/%d videos  tweet %s\n    %s\n",
				run.CreatedAt.Format("2006-01-02 15:04"),
				run.Title,
				len(run.Inserted),
				len(run.VideoIDs),
				run.PostID,
				run.PlaylistURL())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
