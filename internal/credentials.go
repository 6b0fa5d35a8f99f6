package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// YouTubeScope grants full management of the user's playlists
const YouTubeScope = "https://www.googleapis.com/auth/youtube"

// Fixed values written to the client secrets file after a browser login
const (
	defaultProjectID   = "get-all-the-vids"
	defaultRedirectURI = "http://localhost"
)

// ClientSecrets is the on-disk client secrets file
type ClientSecrets struct {
	Installed InstalledCredentials `json:"installed"`
}

// InstalledCredentials holds the OAuth client and the token material of the user
type InstalledCredentials struct {
	AuthURI      string   `json:"auth_uri,omitempty"`
	ClientID     string   `json:"client_id"`
	ClientSecret string   `json:"client_secret"`
	ProjectID    string   `json:"project_id,omitempty"`
	RaptToken    string   `json:"rapt_token,omitempty"`
	RedirectURIs []string `json:"redirect_uris,omitempty"`
	RefreshToken string   `json:"refresh_token,omitempty"`
	TokenURI     string   `json:"token_uri,omitempty"`
	Token        string   `json:"token,omitempty"`
}

// LoadClientSecrets reads the client secrets file
func LoadClientSecrets(path string) (*ClientSecrets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading client secrets: %w", err)
	}

	var secrets ClientSecrets
	if err := json.Unmarshal(data, &secrets); err != nil {
		return nil, fmt.Errorf("parsing client secrets %s: %w", path, err)
	}

	return &secrets, nil
}

// Save overwrites the client secrets file
func (s *ClientSecrets) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling client secrets: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing client secrets: %w", err)
	}
	return nil
}

// OAuthConfig builds the OAuth client configuration for the stored client
func (c *InstalledCredentials) OAuthConfig() *oauth2.Config {
	endpoint := google.Endpoint
	if c.AuthURI != "" {
		endpoint.AuthURL = c.AuthURI
	}
	if c.TokenURI != "" {
		endpoint.TokenURL = c.TokenURI
	}
	// client id and secret go in the form body, never probe with basic auth first
	endpoint.AuthStyle = oauth2.AuthStyleInParams

	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint:     endpoint,
		Scopes:       []string{YouTubeScope},
	}
}

// Credentials obtains YouTube access tokens, refreshing from disk when possible
// and falling back to an interactive authorization otherwise
type Credentials struct {
	path       string
	authorizer Authorizer
	httpClient *http.Client
	verbose    bool
}

// NewCredentials creates a credential manager for the given client secrets file
func NewCredentials(path string, authorizer Authorizer, httpClient *http.Client, verbose bool) *Credentials {
	return &Credentials{
		path:       path,
		authorizer: authorizer,
		httpClient: httpClient,
		verbose:    verbose,
	}
}

// AccessToken returns a freshly refreshed or newly authorized access token.
// A new authorization rewrites the client secrets file.
func (c *Credentials) AccessToken(ctx context.Context) (string, error) {
	secrets, err := LoadClientSecrets(c.path)
	if err != nil {
		return "", err
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	creds := secrets.Installed

	// an empty refresh_token counts as missing
	if creds.RefreshToken != "" {
		if c.verbose {
			fmt.Println("Refreshing YouTube access token...")
		}
		return c.refresh(ctx, &creds)
	}

	if c.verbose {
		fmt.Println("No refresh token stored, starting browser login...")
	}
	return c.authorize(ctx, &creds)
}

func (c *Credentials) refresh(ctx context.Context, creds *InstalledCredentials) (string, error) {
	ts := creds.OAuthConfig().TokenSource(ctx, &oauth2.Token{RefreshToken: creds.RefreshToken})

	token, err := ts.Token()
	if err != nil {
		var rErr *oauth2.RetrieveError
		if errors.As(err, &rErr) && rErr.Response != nil {
			return "", &RequestError{StatusCode: rErr.Response.StatusCode, Message: msgRefreshRequest}
		}
		return "", fmt.Errorf("refreshing access token: %w", err)
	}

	return token.AccessToken, nil
}

func (c *Credentials) authorize(ctx context.Context, creds *InstalledCredentials) (string, error) {
	conf := creds.OAuthConfig()

	token, err := c.authorizer.Authorize(ctx, conf)
	if err != nil {
		return "", err
	}

	updated := &ClientSecrets{Installed: InstalledCredentials{
		AuthURI:      google.Endpoint.AuthURL,
		ClientID:     conf.ClientID,
		ClientSecret: conf.ClientSecret,
		ProjectID:    defaultProjectID,
		RaptToken:    extraString(token, "rapt_token"),
		RedirectURIs: []string{defaultRedirectURI},
		RefreshToken: token.RefreshToken,
		TokenURI:     conf.Endpoint.TokenURL,
		Token:        token.AccessToken,
	}}
	if creds.ProjectID != "" {
		updated.Installed.ProjectID = creds.ProjectID
	}

	if err := updated.Save(c.path); err != nil {
		return "", err
	}

	if c.verbose {
		fmt.Printf("Saved refresh token to %s\n", c.path)
	}

	return token.AccessToken, nil
}

// extraString reads an optional string field from the token response
func extraString(token *oauth2.Token, key string) string {
	if v, ok := token.Extra(key).(string); ok {
		return v
	}
	return ""
}
