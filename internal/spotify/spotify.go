// Package spotify fetches recently played tracks from a JSON endpoint that
// proxies the Spotify Web API.
package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/termfolio/termfolio/internal/portfolio"
)

var errNoTracks = errors.New("response has no tracks")

type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{endpoint: endpoint, http: hc}
}

type response struct {
	Tracks *[]portfolio.Track `json:"tracks"`
}

// RecentTracks returns recently played tracks, most recent first, with
// repeat plays of the same track name removed.
func (c *Client) RecentTracks(ctx context.Context) ([]portfolio.Track, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching tracks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tracks endpoint returned %s", resp.Status)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding tracks: %w", err)
	}
	if body.Tracks == nil {
		return nil, errNoTracks
	}
	return dedupe(*body.Tracks), nil
}

func dedupe(tracks []portfolio.Track) []portfolio.Track {
	seen := make(map[string]struct{}, len(tracks))
	out := make([]portfolio.Track, 0, len(tracks))
	for _, t := range tracks {
		if _, ok := seen[t.Name]; ok {
			continue
		}
		seen[t.Name] = struct{}{}
		out = append(out, t)
	}
	return out
}
