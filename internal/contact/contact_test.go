package contact_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/termfolio/termfolio/internal/contact"
	"github.com/termfolio/termfolio/internal/portfolio"
)

var msg = portfolio.ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "Hello"}

func TestClientSubmit(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{"ok", http.StatusOK, false},
		{"created", http.StatusCreated, false},
		{"rejected", http.StatusUnprocessableEntity, true},
		{"server error", http.StatusBadGateway, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got portfolio.ContactMessage
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("method = %s, want POST", r.Method)
				}
				if a := r.Header.Get("Accept"); a != "application/json" {
					t.Errorf("Accept = %q", a)
				}
				if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
					t.Errorf("decoding body: %v", err)
				}
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := contact.NewClient(srv.URL, srv.Client()).Submit(context.Background(), msg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Submit error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != msg {
				t.Errorf("server got %+v, want %+v", got, msg)
			}
		})
	}
}

func TestClientUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if err := contact.NewClient(url, nil).Submit(context.Background(), msg); err == nil {
		t.Fatal("expected error")
	}
}

type memArchive struct {
	recorded  []portfolio.ContactMessage
	delivered []string
	failWith  error
}

func (m *memArchive) Record(_ context.Context, msg portfolio.ContactMessage) (string, error) {
	if m.failWith != nil {
		return "", m.failWith
	}
	m.recorded = append(m.recorded, msg)
	return "id-1", nil
}

func (m *memArchive) MarkDelivered(_ context.Context, id string) error {
	m.delivered = append(m.delivered, id)
	return nil
}

type senderFunc func(context.Context, portfolio.ContactMessage) error

func (f senderFunc) Submit(ctx context.Context, m portfolio.ContactMessage) error { return f(ctx, m) }

func TestArchiving(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ok := senderFunc(func(context.Context, portfolio.ContactMessage) error { return nil })
	fail := senderFunc(func(context.Context, portfolio.ContactMessage) error { return errors.New("offline") })

	t.Run("delivered", func(t *testing.T) {
		a := &memArchive{}
		if err := contact.NewArchiving(a, ok, logger).Submit(context.Background(), msg); err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if len(a.recorded) != 1 || len(a.delivered) != 1 {
			t.Errorf("recorded %d, delivered %d; want 1, 1", len(a.recorded), len(a.delivered))
		}
	})

	t.Run("delivery fails", func(t *testing.T) {
		a := &memArchive{}
		if err := contact.NewArchiving(a, fail, logger).Submit(context.Background(), msg); err == nil {
			t.Fatal("expected error")
		}
		if len(a.recorded) != 1 || len(a.delivered) != 0 {
			t.Errorf("recorded %d, delivered %d; want 1, 0", len(a.recorded), len(a.delivered))
		}
	})

	t.Run("archive only", func(t *testing.T) {
		a := &memArchive{}
		if err := contact.NewArchiving(a, nil, logger).Submit(context.Background(), msg); err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if len(a.recorded) != 1 {
			t.Errorf("recorded %d, want 1", len(a.recorded))
		}
	})

	t.Run("archive fails", func(t *testing.T) {
		a := &memArchive{failWith: errors.New("disk full")}
		if err := contact.NewArchiving(a, ok, logger).Submit(context.Background(), msg); err == nil {
			t.Fatal("expected error")
		}
	})
}
