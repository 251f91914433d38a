package server

import (
	"context"
	"encoding/json"

	"github.com/ironsheep/toolbox-mcp/internal/review"
)

// Prompt is the discovery representation of one prompt template.
type Prompt struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Arguments   []PromptArgument `json:"arguments"`
}

// PromptArgument describes one prompt parameter for discovery.
type PromptArgument struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// PromptGetParams represents the parameters for a prompts/get request.
type PromptGetParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// handlePromptsList returns the static prompt catalog.
func (s *Server) handlePromptsList(req *MCPRequest) *MCPResponse {
	regs := s.registry.byKind(KindPrompt)
	prompts := make([]Prompt, 0, len(regs))
	for _, reg := range regs {
		args := make([]PromptArgument, 0, len(reg.Params))
		for _, p := range reg.Params {
			args = append(args, PromptArgument{
				Name:        p.Name,
				Description: p.Description,
				Required:    p.Required,
			})
		}
		prompts = append(prompts, Prompt{
			Name:        reg.Name,
			Description: reg.Description,
			Arguments:   args,
		})
	}
	return s.result(req.ID, map[string]any{"prompts": prompts})
}

// handlePromptsGet assembles a prompt through the dispatch pipeline.
func (s *Server) handlePromptsGet(req *MCPRequest) *MCPResponse {
	var params PromptGetParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	res := s.dispatch(context.Background(), KindPrompt, params.Name, params.Arguments)
	if res.IsError {
		return s.errorResponse(req.ID, -32000, "Prompt assembly failed", envelopeText(res))
	}

	reg, _ := s.registry.lookup(KindPrompt, params.Name)
	return s.result(req.ID, map[string]any{
		"description": reg.Description,
		"messages":    res.Messages,
	})
}

func (s *Server) handleCodeReview(_ context.Context, args Arguments) (any, error) {
	doc := review.Build(review.Params{
		Code:     args.String("code"),
		Language: args.String("language"),
		Focus:    args.String("focus"),
	})
	return Messages{UserMessage(doc)}, nil
}
