package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// interruptFrame is what a browser sends for Ctrl-C.
const interruptFrame = "\x03"

// ReplyFrame answers one text frame. Asynchronous output arrives as Event
// frames in between.
type ReplyFrame struct {
	Type string `json:"type"`
	InputResponse
}

const frameReply = "reply"

// handleTerminal speaks the terminal over a WebSocket: every text frame is a
// submitted line and every reply or queued output goes back as JSON.
func handleTerminal(logger *slog.Logger, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			logger.Error("websocket accept failed", "error", err)
			return
		}
		defer conn.CloseNow()

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Hour)
		defer cancel()

		ch := broker.Subscribe(sess.ID)
		defer broker.Unsubscribe(sess.ID, ch)

		go func() {
			defer cancel()
			for {
				select {
				case <-ctx.Done():
					return
				case <-sess.Done():
					conn.Close(websocket.StatusGoingAway, "session ended")
					return
				case data, ok := <-ch:
					if !ok {
						conn.Close(websocket.StatusGoingAway, "session ended")
						return
					}
					if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
						logger.Debug("websocket write failed", "error", err)
						return
					}
				}
			}
		}()

		for {
			typ, msg, err := conn.Read(ctx)
			if err != nil {
				logger.Debug("websocket read ended", "session", sess.ID, "error", err)
				return
			}
			if typ != websocket.MessageText {
				continue
			}

			var resp InputResponse
			if string(msg) == interruptFrame {
				resp = sess.Interrupt(time.Now())
			} else {
				resp = sess.Submit(string(msg), time.Now())
			}

			if err := wsjson.Write(ctx, conn, ReplyFrame{Type: frameReply, InputResponse: resp}); err != nil {
				logger.Debug("websocket write failed", "error", err)
				return
			}
		}
	}
}
