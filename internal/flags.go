package internal

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AddPlaylistFlags adds flags that answer the interactive prompts up front
func AddPlaylistFlags(cmd *cobra.Command) {
	cmd.Flags().String("post", "", "Tweet URL or ID whose replies are scanned (prompted if empty)")
	cmd.Flags().StringP("title", "t", "", "Playlist title, at most 150 characters (prompted if empty)")
	cmd.Flags().StringP("description", "d", "", "Playlist description, at most 5000 characters (prompted if not set)")
	cmd.Flags().Bool("copy", false, "Copy the playlist URL to the clipboard")
}

// RunOptionsFromFlags reads the playlist flags of cmd
func RunOptionsFromFlags(cmd *cobra.Command) RunOptions {
	post, _ := cmd.Flags().GetString("post")
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")

	return RunOptions{
		Post:           post,
		Title:          title,
		Description:    description,
		DescriptionSet: cmd.Flags().Changed("description"),
	}
}

// HandleVerboseFlag processes the --verbose flag to update config
func HandleVerboseFlag(cmd *cobra.Command, config *Config) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	if verbose {
		config.Verbose = true
	}
	return nil
}
