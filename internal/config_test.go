package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TWITTER_BEARER_TOKEN", "")
	t.Setenv("REPLAYLIST_TWITTER_BEARER_TOKEN", "")

	config := LoadConfig(viper.New(), filepath.Join(t.TempDir(), "missing.toml"))

	assert.Equal(t, DefaultTwitterAPIURL, config.TwitterAPIURL)
	assert.Equal(t, DefaultYouTubeAPIURL, config.YouTubeAPIURL)
	assert.Equal(t, 30*time.Second, config.HTTPTimeout)
	assert.Zero(t, config.InsertInterval)
	assert.True(t, config.InsecureTransport)
	assert.Equal(t, "google_client_secret.json", filepath.Base(config.ClientSecretsFile))
	assert.Equal(t, filepath.Join(config.DataDir, "history"), config.HistoryDir)
	assert.Empty(t, config.TwitterBearerToken)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	t.Setenv("TWITTER_BEARER_TOKEN", "")
	t.Setenv("REPLAYLIST_TWITTER_BEARER_TOKEN", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
twitter_bearer_token = "from-file"
http_timeout = "5s"
insecure_transport = false
`), 0644))

	config := LoadConfig(viper.New(), path)
	assert.Equal(t, "from-file", config.TwitterBearerToken)
	assert.Equal(t, 5*time.Second, config.HTTPTimeout)
	assert.False(t, config.InsecureTransport)

	t.Setenv("TWITTER_BEARER_TOKEN", "from-env")
	config = LoadConfig(viper.New(), path)
	assert.Equal(t, "from-env", config.TwitterBearerToken)
}

func TestEnsureDefaultConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "replaylist")
	require.NoError(t, EnsureDefaultConfig(dir))

	data, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "insecure_transport = true")

	// existing files are left alone
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("verbose = true\n"), 0644))
	require.NoError(t, EnsureDefaultConfig(dir))
	data, err = os.ReadFile(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, "verbose = true\n", string(data))
}

func TestValidateTwitterToken(t *testing.T) {
	assert.Error(t, ValidateTwitterToken(""))
	assert.NoError(t, ValidateTwitterToken("token"))
}
