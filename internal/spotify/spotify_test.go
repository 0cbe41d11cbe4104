package spotify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func serve(t *testing.T, status int, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, srv.Client())
}

func TestRecentTracks(t *testing.T) {
	c := serve(t, http.StatusOK, `{"tracks":[
		{"name":"Starboy","artist":"The Weeknd","album":"Starboy","albumArt":"a.jpg","spotifyUrl":"https://open.spotify.com/track/1","playedAt":"2025-01-01T10:00:00Z"},
		{"name":"Starboy","artist":"The Weeknd","album":"Starboy","spotifyUrl":"https://open.spotify.com/track/1","playedAt":"2025-01-01T09:55:00Z"},
		{"name":"Numb","artist":"Linkin Park","album":"Meteora","spotifyUrl":"https://open.spotify.com/track/2","playedAt":"2025-01-01T09:50:00Z"}
	]}`)

	got, err := c.RecentTracks(context.Background())
	if err != nil {
		t.Fatalf("RecentTracks: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d tracks, want 2", len(got))
	}
	if got[0].Name != "Starboy" || got[0].PlayedAt != "2025-01-01T10:00:00Z" {
		t.Errorf("first track = %+v", got[0])
	}
	if got[1].URL != "https://open.spotify.com/track/2" {
		t.Errorf("second track URL = %q", got[1].URL)
	}
}

func TestRecentTracksErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`},
		{"missing tracks", http.StatusOK, `{"error":"token expired"}`},
		{"malformed", http.StatusOK, `{"tracks":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := serve(t, tt.status, tt.body).RecentTracks(context.Background()); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestRecentTracksEmpty(t *testing.T) {
	got, err := serve(t, http.StatusOK, `{"tracks":[]}`).RecentTracks(context.Background())
	if err != nil {
		t.Fatalf("RecentTracks: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d tracks, want 0", len(got))
	}
}
