package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
)

// DefaultTwitterAPIURL is the base of the X/Twitter v2 API
const DefaultTwitterAPIURL = "https://api.twitter.com/2"

// searchMaxResults is the page size of one recent-search request; only one page is read
const searchMaxResults = 100

// searchResponse is the subset of the recent-search payload we use
type searchResponse struct {
	Data []struct {
		ID       string `json:"id"`
		Entities struct {
			URLs []struct {
				ExpandedURL string `json:"expanded_url"`
			} `json:"urls"`
		} `json:"entities"`
	} `json:"data"`
	Meta struct {
		ResultCount int `json:"result_count"`
	} `json:"meta"`
}

// Twitter harvests links from the replies of a conversation
type Twitter struct {
	baseURL string
	client  *http.Client
	verbose bool
}

// NewTwitter creates a search client authenticated with an app bearer token
func NewTwitter(httpClient *http.Client, baseURL, bearerToken string, verbose bool) *Twitter {
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: bearerToken, TokenType: "Bearer"})

	client := oauth2.NewClient(ctx, ts)
	client.Timeout = httpClient.Timeout

	return &Twitter{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		verbose: verbose,
	}
}

// ReplyURLs returns the expanded URL of every link in the conversation's replies,
// in response order and with duplicates kept
func (tw *Twitter) ReplyURLs(ctx context.Context, conversationID string) ([]string, error) {
	endpoint := tw.baseURL + "/tweets/search/recent?" + url.Values{
		"query":        {"conversation_id:" + conversationID},
		"tweet.fields": {"entities"},
		"max_results":  {fmt.Sprint(searchMaxResults)},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}

	if tw.verbose {
		fmt.Printf("Searching replies of conversation %q\n", conversationID)
	}

	resp, err := tw.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: msgTwitterRequest}
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	var urls []string
	for _, tweet := range result.Data {
		for _, u := range tweet.Entities.URLs {
			urls = append(urls, u.ExpandedURL)
		}
	}

	if tw.verbose {
		fmt.Printf("Found %d replies with %d links\n", len(result.Data), len(urls))
	}

	return urls, nil
}
