package server

import (
	"context"
	"strings"
	"testing"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/termfolio/termfolio/internal/terminal"
)

type frame struct {
	Type       string          `json:"type"`
	Mode       string          `json:"mode"`
	Prompt     string          `json:"prompt"`
	Lines      []terminal.Line `json:"lines"`
	ClearInput bool            `json:"clearInput"`
}

func TestTerminalWebSocket(t *testing.T) {
	ts := newTestServer(t)
	c := newClient(t)
	sess := createSession(t, c, ts.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/terminal/" + sess.ID
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.CloseNow()

	send := func(msg string) {
		t.Helper()
		if err := conn.Write(ctx, websocket.MessageText, []byte(msg)); err != nil {
			t.Fatalf("write %q: %v", msg, err)
		}
	}
	read := func() frame {
		t.Helper()
		var f frame
		if err := wsjson.Read(ctx, conn, &f); err != nil {
			t.Fatalf("read: %v", err)
		}
		return f
	}

	send("pwd")
	f := read()
	if f.Type != frameReply {
		t.Fatalf("type = %q, want reply", f.Type)
	}
	if len(f.Lines) != 2 || f.Lines[1].Text != "/home/guest" {
		t.Errorf("lines = %+v", f.Lines)
	}

	// The reply and the fetched tracks may arrive in either order.
	send("spotify")
	got := map[string]frame{}
	for range 2 {
		f := read()
		got[f.Type] = f
	}
	if _, ok := got[frameReply]; !ok {
		t.Error("missing reply frame")
	}
	out, ok := got[eventOutput]
	if !ok || len(out.Lines) == 0 || !strings.Contains(out.Lines[1].Text, "Numb") {
		t.Errorf("output frame = %+v", out)
	}

	send("games")
	if f := read(); f.Mode != "games" || f.Prompt != "select>" {
		t.Errorf("after games: %+v", f)
	}

	send(interruptFrame)
	f = read()
	if !f.ClearInput || f.Mode != "none" {
		t.Errorf("after interrupt: %+v", f)
	}

	conn.Close(websocket.StatusNormalClosure, "done")
}
