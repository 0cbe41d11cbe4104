// Package contact forwards contact form submissions to a form endpoint.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/termfolio/termfolio/internal/portfolio"
)

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

// Submit posts msg as JSON. Any non-2xx response is an error.
func (c *Client) Submit(ctx context.Context, msg portfolio.ContactMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding contact message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("posting contact message: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("contact endpoint returned %s", resp.Status)
	}
	return nil
}

// Sender delivers a message somewhere.
type Sender interface {
	Submit(ctx context.Context, msg portfolio.ContactMessage) error
}

// Archive stores messages locally.
type Archive interface {
	Record(ctx context.Context, msg portfolio.ContactMessage) (string, error)
	MarkDelivered(ctx context.Context, id string) error
}

// Archiving records every message before handing it to next, so a failed
// delivery still leaves a copy behind. A nil next only archives.
type Archiving struct {
	archive Archive
	next    Sender
	logger  *slog.Logger
}

func NewArchiving(archive Archive, next Sender, logger *slog.Logger) *Archiving {
	return &Archiving{archive: archive, next: next, logger: logger}
}

func (a *Archiving) Submit(ctx context.Context, msg portfolio.ContactMessage) error {
	id, err := a.archive.Record(ctx, msg)
	if err != nil {
		return err
	}
	a.logger.Info("contact message archived", "id", id)

	if a.next == nil {
		return nil
	}
	if err := a.next.Submit(ctx, msg); err != nil {
		return err
	}
	if err := a.archive.MarkDelivered(ctx, id); err != nil {
		a.logger.Warn("marking contact message delivered failed", "id", id, "error", err)
	}
	return nil
}
