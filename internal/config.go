package internal

import (
	"context"
	"embed"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// CommandRunner executes external commands
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// DefaultCommandRunner implements CommandRunner
type DefaultCommandRunner struct{}

func (r *DefaultCommandRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}

// Config holds application settings
type Config struct {
	// User configurable settings
	TwitterBearerToken string
	TwitterAPIURL      string
	YouTubeAPIURL      string
	ClientSecretsFile  string
	HistoryDir         string
	HTTPTimeout        time.Duration
	InsertInterval     time.Duration
	InsecureTransport  bool
	Verbose            bool
	Quiet              bool
	MCPLogEnabled      bool

	// Fixed XDG paths (not configurable)
	ConfigDir string
	DataDir   string
	CacheDir  string
}

//go:embed config.toml summary.tmpl
var defaultFS embed.FS

// ensureDefaultFile checks if a file exists in the specified directory
// and creates it from the embedded default if it doesn't exist
func ensureDefaultFile(configDir, embedFilename, description string) error {
	filePath := filepath.Join(configDir, embedFilename)

	if FileExists(filePath) {
		return nil
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	defaultContent, err := defaultFS.ReadFile(embedFilename)
	if err != nil {
		return fmt.Errorf("reading embedded default %s: %w", description, err)
	}

	if err := os.WriteFile(filePath, defaultContent, 0644); err != nil {
		return fmt.Errorf("writing default %s: %w", description, err)
	}

	fmt.Fprintf(os.Stderr, "Created default %s at %s\n", description, filePath)
	return nil
}

// EnsureDefaultConfig checks if a config file exists in the XDG config directory
// and creates it from the embedded default if it doesn't exist
func EnsureDefaultConfig(configDir string) error {
	return ensureDefaultFile(configDir, "config.toml", "configuration")
}

// LoadConfig reads configuration into v. An explicit configFile replaces the search paths.
func LoadConfig(v *viper.Viper, configFile string) *Config {
	configDir := filepath.Join(xdg.ConfigHome, "replaylist")
	dataDir := filepath.Join(xdg.DataHome, "replaylist")
	cacheDir := filepath.Join(xdg.CacheHome, "replaylist")

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	v.SetDefault("twitter_api_url", DefaultTwitterAPIURL)
	v.SetDefault("youtube_api_url", DefaultYouTubeAPIURL)
	v.SetDefault("client_secrets_file", filepath.Join(cwd, "google_client_secret.json"))
	v.SetDefault("history_dir", filepath.Join(dataDir, "history"))
	v.SetDefault("http_timeout", 30*time.Second)
	v.SetDefault("insert_interval", time.Duration(0))
	// loopback OAuth redirect is plain http; turn off outside local development
	v.SetDefault("insecure_transport", true)
	v.SetDefault("verbose", false)
	v.SetDefault("mcp_log", false)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("REPLAYLIST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Bearer token may also come from the conventional variable
	_ = v.BindEnv("twitter_bearer_token", "REPLAYLIST_TWITTER_BEARER_TOKEN", "TWITTER_BEARER_TOKEN")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: Error reading config file: %v\n", err)
		}
	}

	config := &Config{
		TwitterBearerToken: v.GetString("twitter_bearer_token"),
		TwitterAPIURL:      v.GetString("twitter_api_url"),
		YouTubeAPIURL:      v.GetString("youtube_api_url"),
		ClientSecretsFile:  v.GetString("client_secrets_file"),
		HistoryDir:         v.GetString("history_dir"),
		HTTPTimeout:        v.GetDuration("http_timeout"),
		InsertInterval:     v.GetDuration("insert_interval"),
		InsecureTransport:  v.GetBool("insecure_transport"),
		Verbose:            v.GetBool("verbose"),
		MCPLogEnabled:      v.GetBool("mcp_log"),

		ConfigDir: configDir,
		DataDir:   dataDir,
		CacheDir:  cacheDir,
	}

	if config.Verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", v.ConfigFileUsed())
	}

	return config
}

// ValidateTwitterToken checks that a bearer token for the search API is configured
func ValidateTwitterToken(token string) error {
	if token == "" {
		return fmt.Errorf("Twitter bearer token is required - set twitter_bearer_token in config.toml or the TWITTER_BEARER_TOKEN environment variable")
	}
	return nil
}
