package bandcamp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const defaultAPIBase = "https://bandcamp.com/api/fancollection/1"

// Client talks to Bandcamp's private fancollection API. The identity cookie
// is an opaque session credential: it is attached to every request unmodified
// and never inspected. An empty identity still works for public collections,
// but private and hidden items will be missing from the results.
type Client struct {
	identity string
	apiBase  string
	http     *http.Client
	log      zerolog.Logger

	// now seeds the initial continuation token; swapped out in tests.
	now func() time.Time
}

// New creates a Client with the given identity cookie and API base URL.
// If apiBase is empty, the public Bandcamp API is used.
func New(identity, apiBase string, log zerolog.Logger) *Client {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	// Strip trailing slash for consistent URL building.
	apiBase = strings.TrimRight(apiBase, "/")

	return &Client{
		identity: identity,
		apiBase:  apiBase,
		http: &http.Client{
			Timeout: 60 * time.Second,
		},
		log: log,
		now: time.Now,
	}
}

// postJSON sends body as a JSON POST to url and decodes the JSON response
// into out. Any transport failure, non-2xx status, or undecodable body is
// returned as an error; there is exactly one attempt per call.
func (c *Client) postJSON(ctx context.Context, url string, body, out interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.identity != "" {
		req.AddCookie(&http.Cookie{Name: "identity", Value: c.identity})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if err := checkStatus(resp); err != nil {
		return err
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// url builds an API URL from path segments.
func (c *Client) url(parts ...string) string {
	return c.apiBase + "/" + strings.Join(parts, "/")
}

// checkStatus returns a typed error for non-2xx responses.
func checkStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent:
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("bandcamp API error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}
