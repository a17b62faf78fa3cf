package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"

	"github.com/aretw0/lineviz"
	"github.com/aretw0/lineviz/pkg/domain"
	"github.com/aretw0/lineviz/pkg/session"
)

// maxBodySize bounds the JSON body of an execute request.
const maxBodySize = 4096

//go:generate go tool oapi-codegen -package http -generate types,chi-server -o api.gen.go openapi.yaml

// Server implements the generated ServerInterface over the workbench sessions.
type Server struct {
	Sessions *session.Manager
	Streams  *StreamManager
	spec     *openapi3.T
	metrics  http.Handler
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// Option configures the handler.
type Option func(*Server)

// WithMetrics mounts h at GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewHandler creates a new HTTP handler for the session manager.
// It fails if the embedded OpenAPI document does not load.
func NewHandler(sessions *session.Manager, opts ...Option) (http.Handler, error) {
	spec, err := GetSwagger()
	if err != nil {
		return nil, err
	}

	server := &Server{
		Sessions: sessions,
		Streams:  NewStreamManager(),
		spec:     spec,
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	if server.metrics != nil {
		r.Method(http.MethodGet, "/metrics", server.metrics)
	}

	handler := HandlerWithOptions(server, ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			slog.Warn("Invalid request parameters", "path", r.URL.Path, "err", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
		},
	})
	return enableCORS(handler), nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>lineviz API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if s.spec.Info != nil {
		apiVersion = s.spec.Info.Version
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "lineviz-http",
		"version":     strings.TrimSpace(lineviz.Version),
		"api_version": apiVersion,
	})
}

// ListSessions handles the GET /sessions request.
func (s *Server) ListSessions(w http.ResponseWriter, r *http.Request) {
	list, err := s.Sessions.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	resp := make([]SessionInfo, 0, len(list))
	for _, info := range list {
		resp = append(resp, SessionInfo{
			Id:        ptr(info.ID),
			CreatedAt: ptr(info.CreatedAt),
			LastUsed:  ptr(info.LastUsed),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateSession handles the POST /sessions request.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, err := s.Sessions.Create(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// GetSession handles the GET /sessions/{id} request.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request, id SessionID) {
	snap, err := s.Sessions.Snapshot(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// DeleteSession handles the DELETE /sessions/{id} request.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request, id SessionID) {
	if err := s.Sessions.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Execute handles the POST /sessions/{id}/{target}/{action} request.
// The response is broadcast to event subscribers while the session is still
// locked, so events arrive in the order the operations were applied.
func (s *Server) Execute(w http.ResponseWriter, r *http.Request, id SessionID, target string, action string) {
	t, err := domain.ParseTarget(target)
	if err != nil {
		writeError(w, err)
		return
	}

	var body ExecuteJSONRequestBody
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		slog.Warn("Execute: Invalid request body", "session_id", id, "err", err)
		return
	}

	req := lineviz.Request{
		Target: t,
		Action: action,
		Value:  body.Value,
	}
	if body.Expression != nil {
		req.Expression = *body.Expression
	}

	var resp *lineviz.Response
	err = s.Sessions.WithWorkbench(r.Context(), id, func(ctx context.Context, wb *lineviz.Workbench) error {
		var execErr error
		resp, execErr = wb.Execute(ctx, req)
		if resp != nil {
			s.Streams.Broadcast(id, resp)
		}
		return execErr
	})
	if err != nil {
		if resp != nil {
			// Domain rejection: the view is still useful to the client.
			writeJSON(w, statusFor(err), resp)
			return
		}
		slog.Warn("Execute failed", "session_id", id, "target", t, "action", action, "err", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// statusFor maps a domain error to an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownTarget),
		errors.Is(err, domain.ErrUnknownAction),
		errors.Is(err, domain.ErrMissingValue):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrEmptyExpression),
		errors.Is(err, domain.ErrInvalidCharacter):
		return http.StatusUnprocessableEntity
	case domain.IsUserError(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		slog.Error("Request failed", "error", err)
	}
	http.Error(w, fmt.Sprintf("%v", err), code)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

func ptr[T any](v T) *T {
	return &v
}
