package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rtzll/replaylist/internal"
)

var (
	config  *internal.Config
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "replaylist",
	Short: "Turn the YouTube links in a tweet's replies into a playlist",
	Long: `replaylist collects the YouTube links posted as replies to a tweet and
adds them to a new playlist on your YouTube account.

It asks for the tweet, a playlist title and an optional description,
searches the replies with the Twitter API and creates the playlist with
the YouTube Data API. The first run opens a browser to log in to YouTube;
later runs reuse the stored refresh token.`,
	Example: `  # Interactive run
  replaylist

  # Skip the prompts
  replaylist --post "https://twitter.com/user/status/1234567890" \
    --title "Thread picks" --description "" --copy`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config = internal.LoadConfig(viper.GetViper(), cfgFile)

		if err := internal.EnsureDirs(config.ConfigDir, config.DataDir, config.CacheDir); err != nil {
			return fmt.Errorf("creating XDG directories: %w", err)
		}

		if err := internal.EnsureDefaultConfig(config.ConfigDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to ensure default config: %v\n", err)
		}

		return internal.HandleVerboseFlag(cmd, config)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := internal.NewApp(config)

		result, err := app.CreatePlaylistFromReplies(cmd.Context(), internal.RunOptionsFromFlags(cmd))
		if err != nil {
			// every failure ends the run normally with a message
			fmt.Fprintln(cmd.OutOrStdout(), internal.DescribeError(err))
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Summary())

		if copyURL, _ := cmd.Flags().GetBool("copy"); copyURL {
			if err := clipboard.WriteAll(result.PlaylistURL()); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: copying playlist URL to clipboard: %v\n", err)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Playlist URL copied to clipboard")
			}
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	internal.AddPlaylistFlags(rootCmd)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for debugging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $XDG_CONFIG_HOME/replaylist/config.toml)")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}
