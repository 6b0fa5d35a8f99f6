package internal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// App holds the application state and dependencies
type App struct {
	config      *Config
	ui          UIManager
	prompter    *Prompter
	httpClient  *http.Client
	authorizer  Authorizer
	credentials *Credentials
}

// NewApp initializes the application
func NewApp(config *Config, options ...AppOption) *App {
	app := &App{
		config:     config,
		ui:         NewUIManager(config.Verbose, config.Quiet),
		prompter:   NewPrompter(os.Stdin, os.Stdout),
		httpClient: NewHTTPClient(config.HTTPTimeout, config.InsecureTransport),
	}

	// Apply any custom options
	for _, option := range options {
		option(app)
	}

	if app.authorizer == nil {
		app.authorizer = NewLocalServerAuthorizer(&DefaultCommandRunner{}, config.InsecureTransport, app.ui)
	}

	app.credentials = NewCredentials(config.ClientSecretsFile, app.authorizer, app.httpClient, config.Verbose)

	return app
}

// AppOption customizes App creation
type AppOption func(*App)

// WithUI sets a custom UI manager
func WithUI(ui UIManager) AppOption {
	return func(a *App) {
		a.ui = ui
	}
}

// WithPrompter sets where interactive answers are read from
func WithPrompter(in io.Reader, out io.Writer) AppOption {
	return func(a *App) {
		a.prompter = NewPrompter(in, out)
	}
}

// WithoutPrompts makes every interactive question fail instead of touching the terminal
func WithoutPrompts() AppOption {
	return func(a *App) {
		a.prompter = NewPrompter(strings.NewReader(""), io.Discard)
	}
}

// WithHTTPClient sets the client used for all upstream calls
func WithHTTPClient(client *http.Client) AppOption {
	return func(a *App) {
		a.httpClient = client
	}
}

// WithAuthorizer sets how a missing refresh token is obtained
func WithAuthorizer(authorizer Authorizer) AppOption {
	return func(a *App) {
		a.authorizer = authorizer
	}
}

// RunOptions carries answers given up front; empty fields are prompted for
type RunOptions struct {
	Post           string
	Title          string
	Description    string
	DescriptionSet bool
}

// PostID returns the conversation ID from the options or asks for it
func (app *App) PostID(opts RunOptions) (string, error) {
	if opts.Post != "" {
		return ParsePostID(opts.Post), nil
	}
	return app.prompter.PostID()
}

// VideoIDs harvests the links replied to a conversation and keeps the YouTube video IDs
func (app *App) VideoIDs(ctx context.Context, postID string) ([]string, error) {
	if err := ValidateTwitterToken(app.config.TwitterBearerToken); err != nil {
		return nil, err
	}

	tw := NewTwitter(app.httpClient, app.config.TwitterAPIURL, app.config.TwitterBearerToken, app.config.Verbose)

	spinner := app.ui.NewSpinner("Searching replies...")
	links, err := tw.ReplyURLs(ctx, postID)
	spinner.Finish()
	if err != nil {
		return nil, err
	}

	ids, err := FilterVideoIDs(links)
	if err != nil {
		return nil, err
	}

	app.ui.Verbose("Found %d YouTube links in %d reply links\n", len(ids), len(links))
	return ids, nil
}

// Metadata returns the playlist title and description from the options or asks for them
func (app *App) Metadata(opts RunOptions) (PlaylistMetadata, error) {
	var meta PlaylistMetadata
	var err error

	if opts.Title != "" {
		if err := ValidateTitle(opts.Title); err != nil {
			return meta, err
		}
		meta.Title = opts.Title
	} else if meta.Title, err = app.prompter.Title(); err != nil {
		return meta, err
	}

	if opts.DescriptionSet {
		if err := ValidateDescription(opts.Description); err != nil {
			return meta, err
		}
		meta.Description = opts.Description
	} else if meta.Description, err = app.prompter.Description(); err != nil {
		return meta, err
	}

	return meta, nil
}

// AccessToken refreshes or obtains the YouTube access token
func (app *App) AccessToken(ctx context.Context) (string, error) {
	return app.credentials.AccessToken(ctx)
}

// BuildPlaylist creates the playlist and inserts every video, counting the successes
func (app *App) BuildPlaylist(ctx context.Context, accessToken, postID string, meta PlaylistMetadata, videoIDs []string) (*RunResult, error) {
	yt, err := NewYouTube(ctx, app.httpClient, app.config.YouTubeAPIURL, accessToken, app.config.Verbose)
	if err != nil {
		return nil, err
	}

	playlistID, err := yt.CreatePlaylist(ctx, meta)
	if err != nil {
		return nil, err
	}

	result := &RunResult{
		PostID:     postID,
		PlaylistID: playlistID,
		Title:      meta.Title,
		VideoIDs:   videoIDs,
		Inserted:   []string{},
		Failed:     []string{},
		CreatedAt:  time.Now(),
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if app.config.InsertInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(app.config.InsertInterval), 1)
	}

	bar := app.ui.NewProgressBar(len(videoIDs), "Adding videos")
	for _, videoID := range videoIDs {
		if err := limiter.Wait(ctx); err != nil {
			bar.Finish()
			return nil, fmt.Errorf("adding videos: %w", err)
		}
		if yt.InsertVideo(ctx, playlistID, videoID) {
			result.Inserted = append(result.Inserted, videoID)
		} else {
			result.Failed = append(result.Failed, videoID)
		}
		bar.Advance()
	}
	bar.Finish()

	return result, nil
}

// CreatePlaylistFromReplies performs the complete workflow:
// post ID -> reply links -> video IDs -> playlist details -> token -> playlist
func (app *App) CreatePlaylistFromReplies(ctx context.Context, opts RunOptions) (*RunResult, error) {
	postID, err := app.PostID(opts)
	if err != nil {
		return nil, err
	}

	videoIDs, err := app.VideoIDs(ctx, postID)
	if err != nil {
		return nil, err
	}

	meta, err := app.Metadata(opts)
	if err != nil {
		return nil, err
	}

	accessToken, err := app.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	result, err := app.BuildPlaylist(ctx, accessToken, postID, meta, videoIDs)
	if err != nil {
		return nil, err
	}

	if err := SaveRunResult(result, app.config.HistoryDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if app.config.Verbose {
		app.printReport(result)
	}

	return result, nil
}

// printReport shows the rendered run report
func (app *App) printReport(result *RunResult) {
	report, err := BuildReport(result)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}

	rendered, err := RenderMarkdown(report)
	if err != nil {
		rendered = report
	}
	app.ui.Println(rendered)
}
