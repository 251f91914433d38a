package server

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ironsheep/toolbox-mcp/internal/config"
	"github.com/ironsheep/toolbox-mcp/internal/imagegen"
)

const (
	// serverName identifies this server to MCP clients.
	serverName = "toolbox-mcp"
	// serverVersion identifies the server version.
	serverVersion = "0.1.0"
	// protocolVersion is the MCP protocol revision spoken by this server.
	protocolVersion = "2024-11-05"
)

// Server handles MCP protocol communication. The capability registry is
// built once in New and read-only afterwards; per-request state never
// outlives a request.
type Server struct {
	cfg       config.Config
	registry  *registry
	generator imagegen.Generator
	log       *slog.Logger
	nowFn     func() time.Time
	version   string
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// New creates a new server instance from configuration. It fails when the
// capability table contains a duplicate name.
func New(cfg config.Config) (*Server, error) {
	s := &Server{
		cfg:       cfg,
		generator: imagegen.NewClient(cfg.ImageAPIURL, cfg.ImageAPIToken, cfg.ImageTimeout),
		log:       slog.Default(),
		nowFn:     time.Now,
		version:   serverVersion,
	}
	reg, err := newRegistry(s.newRegistrations())
	if err != nil {
		return nil, err
	}
	s.registry = reg
	return s, nil
}

// now returns the current time via the injectable clock.
func (s *Server) now() time.Time {
	return s.nowFn()
}

// Run starts the server on stdin/stdout.
func (s *Server) Run() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve processes newline-delimited JSON-RPC requests from r and writes
// responses to w until r is exhausted.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for large requests
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 4*1024*1024)

	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			s.log.Warn("failed to parse request", "error", err)
			continue
		}

		resp := s.handleRequest(&req)
		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				s.log.Error("failed to encode response", "error", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	s.log.Debug("request", "method", req.Method)

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Client acknowledgment, no response needed
		return nil
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "resources/list":
		return s.handleResourcesList(req)
	case "resources/read":
		return s.handleResourcesRead(req)
	case "prompts/list":
		return s.handlePromptsList(req)
	case "prompts/get":
		return s.handlePromptsGet(req)
	default:
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &MCPError{
				Code:    -32601,
				Message: fmt.Sprintf("Method not found: %s", req.Method),
			},
		}
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": protocolVersion,
			"capabilities": map[string]interface{}{
				"tools":     map[string]interface{}{},
				"resources": map[string]interface{}{},
				"prompts":   map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    serverName,
				"version": s.version,
			},
		},
	}
}

// dispatch is the single entry point from the protocol layer into the
// capability table. A request moves received -> validating -> invoking ->
// responded; no request skips validation, and exactly one envelope comes
// back no matter which stage failed.
func (s *Server) dispatch(ctx context.Context, kind Kind, name string, raw json.RawMessage) *Result {
	reg, ok := s.registry.lookup(kind, name)
	if !ok {
		return errorResult(fmt.Sprintf("unknown capability: %q", name))
	}
	return s.invoke(ctx, reg, raw)
}

// invoke runs validation, the handler and normalization for one matched
// registration. A panic escaping the handler is converted to a generic
// error envelope here; handler faults never terminate the process.
func (s *Server) invoke(ctx context.Context, reg *registration, raw json.RawMessage) (res *Result) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("handler panic", "capability", reg.Name, "panic", r)
			res = errorResult(fmt.Sprintf("internal error in %s", reg.Name))
		}
	}()

	args, verr := validateArgs(reg.Params, raw)
	if verr != nil {
		return errorResult(verr.Error())
	}

	out, err := reg.Handler(ctx, args)
	return normalize(out, err)
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

func (s *Server) result(id interface{}, result interface{}) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	}
}
