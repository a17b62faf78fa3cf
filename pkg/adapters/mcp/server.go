package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/lineviz"
	"github.com/aretw0/lineviz/internal/presentation/tui"
	"github.com/aretw0/lineviz/pkg/domain"
	"github.com/aretw0/lineviz/pkg/session"
)

// DefaultSession is used when a tool call names no session.
const DefaultSession = "default"

// ConvertResponse is the result of the one-shot convert tool.
type ConvertResponse struct {
	Postfix string   `json:"postfix" jsonschema_description:"The postfix expression, partial when the input is malformed"`
	Trace   []string `json:"trace" jsonschema_description:"Explanation of every conversion step"`
	Error   string   `json:"error,omitempty" jsonschema_description:"Why the conversion stopped, if it failed"`
}

// Server exposes workbench sessions as MCP tools.
type Server struct {
	sessions  *session.Manager
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(sessions *session.Manager) *Server {
	s := &Server{
		sessions:  sessions,
		mcpServer: server.NewMCPServer("lineviz-mcp", strings.TrimSpace(lineviz.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		// Create a timeout context for the graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("CORS Middleware", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	sessionArg := mcp.WithString("session", mcp.Description("Session ID (optional, defaults to \"default\"); created on first use"))

	// TOOL: stack
	s.mcpServer.AddTool(mcp.NewTool("stack",
		mcp.WithDescription("Operate the bounded LIFO stack. Returns the status message and the stack view."),
		mcp.WithString("action", mcp.Required(),
			mcp.Description("One of: "+strings.Join(lineviz.Actions[domain.TargetStack], ", ")),
			mcp.Enum(lineviz.Actions[domain.TargetStack]...),
		),
		mcp.WithNumber("value", mcp.Description("Integer to push (push only)")),
		sessionArg,
	), s.targetHandler(domain.TargetStack))

	// TOOL: queue
	s.mcpServer.AddTool(mcp.NewTool("queue",
		mcp.WithDescription("Operate the bounded circular FIFO queue. Returns the status message and the queue view with front/rear indices."),
		mcp.WithString("action", mcp.Required(),
			mcp.Description("One of: "+strings.Join(lineviz.Actions[domain.TargetQueue], ", ")),
			mcp.Enum(lineviz.Actions[domain.TargetQueue]...),
		),
		mcp.WithNumber("value", mcp.Description("Integer to enqueue (enqueue only)")),
		sessionArg,
	), s.targetHandler(domain.TargetQueue))

	// TOOL: postfix
	s.mcpServer.AddTool(mcp.NewTool("postfix",
		mcp.WithDescription("Drive the step-by-step infix-to-postfix converter."),
		mcp.WithString("action", mcp.Required(),
			mcp.Description("One of: "+strings.Join(lineviz.Actions[domain.TargetPostfix], ", ")),
			mcp.Enum(lineviz.Actions[domain.TargetPostfix]...),
		),
		mcp.WithString("expression", mcp.Description("Infix expression such as (A+B)*C (start only)")),
		sessionArg,
	), s.targetHandler(domain.TargetPostfix))

	// TOOL: convert
	s.mcpServer.AddTool(mcp.NewTool("convert",
		mcp.WithDescription("Convert an infix expression to postfix in one call and return every step."),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Infix expression such as A+B*C")),
		mcp.WithOutputSchema[ConvertResponse](),
	), mcp.NewStructuredToolHandler(s.handleConvert))
}

func (s *Server) targetHandler(target domain.Target) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		resp, err := s.execute(ctx, target, request.GetArguments())
		if err != nil && resp == nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		jsonBytes, mErr := json.Marshal(resp)
		if mErr != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", mErr)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	}
}

// execute runs one tool call against the named session.
// Domain rejections return both the Response and the error.
func (s *Server) execute(ctx context.Context, target domain.Target, args map[string]any) (*lineviz.Response, error) {
	sessionID, _ := args["session"].(string)
	if sessionID == "" {
		sessionID = DefaultSession
	}
	if _, err := s.sessions.GetOrCreate(ctx, sessionID); err != nil {
		return nil, err
	}

	action, _ := args["action"].(string)
	req := lineviz.Request{Target: target, Action: action}

	if raw, ok := args["value"]; ok && raw != nil {
		v, err := toInt(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value: %w", err)
		}
		req.Value = &v
	}
	if expr, ok := args["expression"].(string); ok {
		req.Expression = expr
	}

	resp, err := s.sessions.Execute(ctx, sessionID, req)
	if err != nil {
		slog.Warn("MCP tool call rejected", "session_id", sessionID, "target", target, "action", action, "err", err)
	}
	return resp, err
}

func (s *Server) handleConvert(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ConvertResponse, error) {
	expr, _ := args["expression"].(string)
	res, trace, err := lineviz.Convert(expr)
	out := ConvertResponse{Postfix: res, Trace: trace}
	if out.Trace == nil {
		out.Trace = []string{}
	}
	if err != nil {
		if !domain.IsUserError(err) {
			return ConvertResponse{}, fmt.Errorf("convert failed: %w", err)
		}
		out.Error = err.Error()
	}
	return out, nil
}

func (s *Server) registerResources() {
	for _, target := range []domain.Target{domain.TargetStack, domain.TargetQueue, domain.TargetPostfix} {
		uri := "lineviz://help/" + string(target)
		markdown := tui.HelpMarkdown(target)
		s.mcpServer.AddResource(mcp.NewResource(uri, fmt.Sprintf("%s help", target),
			mcp.WithMIMEType("text/markdown"),
		), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     markdown,
				},
			}, nil
		})
	}
}

func toInt(raw any) (int, error) {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%v is not an integer", v)
		}
		if v < math.MinInt || v >= -math.MinInt {
			return 0, fmt.Errorf("%v is out of range", v)
		}
		return int(v), nil
	case int:
		return v, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, err
		}
		if n < math.MinInt || n > math.MaxInt {
			return 0, fmt.Errorf("%v is out of range", v)
		}
		return int(n), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(v))
	default:
		return 0, fmt.Errorf("unsupported type %T", raw)
	}
}
