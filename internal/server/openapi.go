package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse maps each dependency to its status.
type HealthResponse map[string]struct {
	Status string `json:"status"`
}

type sessionPath struct {
	ID string `path:"id"`
}

type inputRequest struct {
	ID   string `path:"id"`
	Line string `json:"line"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "termfolio API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the portfolio terminal.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/sessions
	postSession, _ := r.NewOperationContext(http.MethodPost, "/api/sessions")
	postSession.SetSummary("Start session")
	postSession.SetDescription("Starts a terminal session and returns the welcome output. Issues a tf_client cookie that scopes saved settings.")
	postSession.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	postSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusInternalServerError))
	_ = r.AddOperation(postSession)

	// POST /api/sessions/{id}/input
	postInput, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{id}/input")
	postInput.SetSummary("Submit line")
	postInput.SetDescription("Submits one line of input and returns the output it produced synchronously.")
	postInput.AddReqStructure(inputRequest{})
	postInput.AddRespStructure(InputResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postInput.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postInput.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postInput)

	// POST /api/sessions/{id}/interrupt
	postInterrupt, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{id}/interrupt")
	postInterrupt.SetSummary("Interrupt")
	postInterrupt.SetDescription("Equivalent to Ctrl-C: cancels any active mode.")
	postInterrupt.AddReqStructure(sessionPath{})
	postInterrupt.AddRespStructure(InputResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postInterrupt.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postInterrupt)

	// GET /api/sessions/{id}/log
	getLog, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{id}/log")
	getLog.SetSummary("Output log")
	getLog.SetDescription("Returns every line in the session's output log.")
	getLog.AddReqStructure(sessionPath{})
	getLog.AddRespStructure(LogResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getLog.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getLog)

	// GET /api/sessions/{id}/history
	getHistory, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{id}/history")
	getHistory.SetSummary("Command history")
	getHistory.SetDescription("Returns submitted lines, most recent first.")
	getHistory.AddReqStructure(sessionPath{})
	getHistory.AddRespStructure(HistoryResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHistory.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getHistory)

	// GET /api/sessions/{id}/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{id}/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream of output produced after a command returned, such as contact delivery results or fetched tracks.")
	getEvents.AddReqStructure(sessionPath{})
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	getEvents.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getEvents)

	// DELETE /api/sessions/{id}
	deleteSession, _ := r.NewOperationContext(http.MethodDelete, "/api/sessions/{id}")
	deleteSession.SetSummary("End session")
	deleteSession.AddReqStructure(sessionPath{})
	deleteSession.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	deleteSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(deleteSession)

	// GET /ws/terminal/{id}
	getTerminal, _ := r.NewOperationContext(http.MethodGet, "/ws/terminal/{id}")
	getTerminal.SetSummary("WebSocket terminal")
	getTerminal.SetDescription("Upgrades to a WebSocket. Each text frame is a submitted line (\\u0003 interrupts); the server answers with JSON reply and output frames.")
	getTerminal.AddReqStructure(sessionPath{})
	getTerminal.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("application/json"))
	_ = r.AddOperation(getTerminal)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
