package server

import (
	"context"
	"encoding/json"
)

// Tool is the discovery representation of one tool.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// ToolCallParams represents the parameters for a tools/call request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "greeting", "calculator").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsList returns the static tool catalog.
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	regs := s.registry.byKind(KindTool)
	tools := make([]Tool, 0, len(regs))
	for _, reg := range regs {
		tools = append(tools, Tool{
			Name:        reg.Name,
			Description: reg.Description,
			InputSchema: reg.InputSchema(),
		})
	}
	return s.result(req.ID, map[string]any{"tools": tools})
}

// handleToolsCall runs one tool through the dispatch pipeline.
//
// Unknown names, validation failures and handler failures all come back as
// the same envelope shape with isError set; only malformed params are a
// JSON-RPC level error.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	res := s.dispatch(context.Background(), KindTool, params.Name, params.Arguments)
	return s.result(req.ID, res)
}
