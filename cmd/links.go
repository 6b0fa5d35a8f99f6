package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rtzll/replaylist/internal"
)

// linksCmd prints the video IDs found in the replies without touching YouTube
var linksCmd = &cobra.Command{
	Use:   "links [tweet URL or ID]",
	Short: "List the YouTube videos linked in a tweet's replies",
	Example: `  # Print one video ID per line
  replaylist links "https://twitter.com/user/status/1234567890"
  replaylist links 1234567890`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := internal.NewApp(config)

		var opts internal.RunOptions
		if len(args) > 0 {
			opts.Post = args[0]
		}

		postID, err := app.PostID(opts)
		if err != nil {
			return err
		}

		ids, err := app.VideoIDs(cmd.Context(), postID)
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), internal.DescribeError(err))
			return nil
		}

		for _, id := range ids {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(linksCmd)
}
