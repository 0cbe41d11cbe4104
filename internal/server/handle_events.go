package server

import (
	"fmt"
	"net/http"
	"time"
)

func handleEvents(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)

		flusher, ok := w.(http.Flusher)
		if !ok {
			writeError(w, http.StatusInternalServerError, "streaming not supported")
			return
		}

		// Subscribed before the headers are flushed: a client that has seen
		// the response receives every later event.
		ch := broker.Subscribe(sess.ID)
		defer broker.Unsubscribe(sess.ID, ch)

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		ping := time.NewTicker(30 * time.Second)
		defer ping.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case <-sess.Done():
				endStream(w, flusher)
				return
			case data, ok := <-ch:
				if !ok {
					endStream(w, flusher)
					return
				}
				fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventOutput, data)
				flusher.Flush()
			case <-ping.C:
				fmt.Fprintf(w, ": ping\n\n")
				flusher.Flush()
			}
		}
	}
}

func endStream(w http.ResponseWriter, flusher http.Flusher) {
	fmt.Fprintf(w, "event: end\ndata: {}\n\n")
	flusher.Flush()
}
