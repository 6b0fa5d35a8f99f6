package internal

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"runtime"
	"time"

	"golang.org/x/oauth2"
)

// Authorizer obtains user consent and returns a token carrying a refresh token
type Authorizer interface {
	Authorize(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error)
}

// StaticAuthorizer returns a fixed token without user interaction
type StaticAuthorizer struct {
	Token *oauth2.Token
	Err   error
}

func (a *StaticAuthorizer) Authorize(_ context.Context, _ *oauth2.Config) (*oauth2.Token, error) {
	if a.Err != nil {
		return nil, a.Err
	}
	return a.Token, nil
}

// NoBrowserAuthorizer refuses to authorize, for contexts without a user at the terminal
type NoBrowserAuthorizer struct{}

func (NoBrowserAuthorizer) Authorize(context.Context, *oauth2.Config) (*oauth2.Token, error) {
	return nil, ErrAuthorizationRequired
}

// LocalServerAuthorizer runs the installed-app flow: it serves the redirect on a loopback
// port, opens the consent page in the browser and exchanges the returned code
type LocalServerAuthorizer struct {
	cmdRunner     CommandRunner
	allowInsecure bool
	timeout       time.Duration
	ui            UIManager
}

// NewLocalServerAuthorizer creates the browser based authorizer.
// allowInsecure must be set for the plain-http loopback redirect to be used.
func NewLocalServerAuthorizer(cmdRunner CommandRunner, allowInsecure bool, ui UIManager) *LocalServerAuthorizer {
	return &LocalServerAuthorizer{
		cmdRunner:     cmdRunner,
		allowInsecure: allowInsecure,
		timeout:       5 * time.Minute,
		ui:            ui,
	}
}

type callbackResult struct {
	code string
	err  error
}

// Authorize implements Authorizer
func (a *LocalServerAuthorizer) Authorize(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error) {
	if !a.allowInsecure {
		return nil, fmt.Errorf("loopback redirect %s: %w", defaultRedirectURI, ErrInsecureTransport)
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("starting local redirect server: %w", err)
	}

	port := listener.Addr().(*net.TCPAddr).Port
	flowConf := *conf
	flowConf.RedirectURL = fmt.Sprintf("%s:%d/", defaultRedirectURI, port)

	state, err := randomState()
	if err != nil {
		listener.Close()
		return nil, err
	}
	verifier := oauth2.GenerateVerifier()

	results := make(chan callbackResult, 1)
	srv := &http.Server{
		Handler:           callbackHandler(state, results),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			select {
			case results <- callbackResult{err: fmt.Errorf("local redirect server: %w", err)}:
			default:
			}
		}
	}()
	defer srv.Close()

	authURL := flowConf.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.ApprovalForce,
		oauth2.S256ChallengeOption(verifier),
	)

	a.ui.Println("Please visit this URL to authorize this application:")
	a.ui.Println(authURL)
	if err := a.openBrowser(ctx, authURL); err != nil {
		a.ui.Verbose("Could not open browser: %v\n", err)
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	var res callbackResult
	select {
	case res = <-results:
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for authorization: %w", ctx.Err())
	}
	if res.err != nil {
		return nil, res.err
	}

	token, err := flowConf.Exchange(ctx, res.code, oauth2.VerifierOption(verifier))
	if err != nil {
		var rErr *oauth2.RetrieveError
		if errors.As(err, &rErr) && rErr.Response != nil {
			return nil, &RequestError{StatusCode: rErr.Response.StatusCode, Message: "Invalid Request. Unable to exchange authorization code."}
		}
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}

	return token, nil
}

// callbackHandler receives the redirect and forwards the code or the error once
func callbackHandler(state string, results chan<- callbackResult) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("code") == "" && q.Get("error") == "" {
			http.NotFound(w, r)
			return
		}

		var res callbackResult
		switch {
		case q.Get("state") != state:
			res.err = errors.New("authorization response has mismatching state")
		case q.Get("error") != "":
			res.err = fmt.Errorf("authorization denied: %s", q.Get("error"))
		default:
			res.code = q.Get("code")
		}

		if res.err != nil {
			http.Error(w, res.err.Error(), http.StatusBadRequest)
		} else {
			fmt.Fprintln(w, "The authentication flow has completed. You may close this window.")
		}

		select {
		case results <- res:
		default:
		}
	})
}

// openBrowser opens url with the platform's default handler
func (a *LocalServerAuthorizer) openBrowser(ctx context.Context, url string) error {
	var name string
	var args []string

	switch runtime.GOOS {
	case "darwin":
		name = "open"
	case "windows":
		name, args = "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			return errors.New("no graphical display")
		}
		name = "xdg-open"
	}

	output, err := a.cmdRunner.Run(ctx, name, append(args, url)...)
	if err != nil {
		return fmt.Errorf("%s failed: %w\nOutput: %s", name, err, string(output))
	}
	return nil
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating state: %w", err)
	}
	return hex.EncodeToString(b), nil
}
