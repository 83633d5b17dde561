package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/samber/mo"

	"mmjira/clients"
	"mmjira/core"
)

// Client queries the Jira REST API. Only the read-only search-by-key
// capability is exposed; the bridge never writes to the tracker.
type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	password   string
}

func NewJiraClient(baseURL, username, password string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		username:   username,
		password:   password,
	}
}

// SearchIssueByKey runs `jql=key=<key>` against /rest/api/2/search and
// returns the single matching issue, or None when Jira reports no match.
func (c *Client) SearchIssueByKey(ctx context.Context, key string) (mo.Option[clients.JiraIssue], error) {
	query := url.Values{}
	query.Set("jql", fmt.Sprintf("key=%s", key))
	query.Set("maxResults", "1")
	searchURL := fmt.Sprintf("%s/rest/api/2/search?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return mo.None[clients.JiraIssue](), &core.FetchError{
			Err:            core.ErrTrackerConnect,
			TrackerMessage: err.Error(),
		}
	}
	req.Header.Set("Accept", "application/json")
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Covers DNS/TLS failures and the per-lookup timeout.
		return mo.None[clients.JiraIssue](), &core.FetchError{
			Err:            core.ErrTrackerConnect,
			TrackerMessage: err.Error(),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return mo.None[clients.JiraIssue](), &core.FetchError{
			Err:            core.ErrTrackerConnect,
			TrackerMessage: fmt.Sprintf("authentication rejected (HTTP %d)", resp.StatusCode),
		}
	}

	if resp.StatusCode != http.StatusOK {
		return mo.None[clients.JiraIssue](), &core.FetchError{
			Err:            core.ErrTrackerQuery,
			TrackerMessage: readErrorMessage(resp.Body, resp.StatusCode),
		}
	}

	var searchResp clients.JiraSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return mo.None[clients.JiraIssue](), &core.FetchError{
			Err:            core.ErrTrackerQuery,
			TrackerMessage: fmt.Sprintf("malformed search response: %v", err),
		}
	}

	if len(searchResp.Issues) == 0 {
		return mo.None[clients.JiraIssue](), nil
	}

	return mo.Some(searchResp.Issues[0]), nil
}

// readErrorMessage extracts Jira's errorMessages from a failed response body,
// falling back to the HTTP status when the body is not the expected JSON.
func readErrorMessage(body io.Reader, statusCode int) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err == nil {
		var errResp clients.JiraErrorResponse
		if json.Unmarshal(raw, &errResp) == nil && len(errResp.ErrorMessages) > 0 {
			return strings.Join(errResp.ErrorMessages, "; ")
		}
	}
	return fmt.Sprintf("HTTP %d", statusCode)
}
