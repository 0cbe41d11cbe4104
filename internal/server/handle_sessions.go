package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/termfolio/termfolio/internal/terminal"
)

type SessionResponse struct {
	TerminalState
	Lines []terminal.Line `json:"lines"`
}

type InputRequest struct {
	Line string `json:"line"`
}

type LogResponse struct {
	Lines []terminal.Line `json:"lines"`
}

type HistoryResponse struct {
	Entries []string `json:"entries"`
}

func handleCreateSession(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessions.Create(r.Context(), clientID(w, r))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "could not start session")
			return
		}

		writeJSON(w, http.StatusCreated, SessionResponse{
			TerminalState: sess.State(),
			Lines:         sess.Log(),
		})
	}
}

func handleInput() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req InputRequest
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if strings.ContainsAny(req.Line, "\r\n") {
			writeError(w, http.StatusBadRequest, "line must not contain newlines")
			return
		}

		writeJSON(w, http.StatusOK, sessionFrom(r).Submit(req.Line, time.Now()))
	}
}

func handleInterrupt() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sessionFrom(r).Interrupt(time.Now()))
	}
}

func handleLog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, LogResponse{Lines: sessionFrom(r).Log()})
	}
}

func handleHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := sessionFrom(r).History()
		if entries == nil {
			entries = []string{}
		}
		writeJSON(w, http.StatusOK, HistoryResponse{Entries: entries})
	}
}

func handleDeleteSession(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sessions.Delete(sessionFrom(r).ID); err != nil {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
