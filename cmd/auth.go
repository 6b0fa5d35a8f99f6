package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rtzll/replaylist/internal"
)

// authCmd logs in to YouTube, or checks that the stored refresh token still works
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Log in to YouTube and store a refresh token",
	Long: `Obtain a YouTube access token the same way a playlist run does.

Without a refresh token in the client secrets file a browser opens for
the Google consent screen and the resulting tokens are written back to
the file. With a refresh token the token is refreshed to verify it.`,
	Example: `  # First login
  replaylist auth

  # Use a different client secrets file
  REPLAYLIST_CLIENT_SECRETS_FILE=~/secrets.json replaylist auth`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := internal.NewApp(config)

		if _, err := app.AccessToken(cmd.Context()); err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), internal.DescribeError(err))
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "YouTube credentials are valid (%s)\n", config.ClientSecretsFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
}
