package randomorg

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the random.org plain-text integers endpoint.
const DefaultBaseURL = "https://www.random.org/integers/"

// Client fetches uniform random integers from the random.org HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client with a bounded request timeout. An empty
// baseURL selects the public random.org endpoint.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchIntegers requests count integers in [min, max], one per line in
// plain-text format. Any transport failure, non-200 status or malformed
// body is returned as an error; callers treat them all as "unavailable".
func (c *Client) FetchIntegers(ctx context.Context, count, min, max int) ([]int, error) {
	url := fmt.Sprintf("%s?num=%d&min=%d&max=%d&col=1&base=10&format=plain&rnd=new",
		c.baseURL, count, min, max)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("random.org returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return nil, err
	}

	lines := strings.Fields(string(body))
	if len(lines) != count {
		return nil, fmt.Errorf("random.org returned %d values, want %d", len(lines), count)
	}

	values := make([]int, 0, count)
	for _, line := range lines {
		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("malformed value %q: %w", line, err)
		}
		if n < min || n > max {
			return nil, fmt.Errorf("value %d outside [%d,%d]", n, min, max)
		}
		values = append(values, n)
	}

	return values, nil
}
