package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// serverInfoURI addresses the server_info resource.
const serverInfoURI = "server://info"

// Resource is the discovery representation of one resource.
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MimeType    string `json:"mimeType"`
}

// ResourceReadParams represents the parameters for a resources/read request.
type ResourceReadParams struct {
	URI string `json:"uri"`
}

// handleResourcesList returns the static resource catalog.
func (s *Server) handleResourcesList(req *MCPRequest) *MCPResponse {
	regs := s.registry.byKind(KindResource)
	resources := make([]Resource, 0, len(regs))
	for _, reg := range regs {
		resources = append(resources, Resource{
			URI:         reg.URI,
			Name:        reg.Name,
			Description: reg.Description,
			MimeType:    reg.MimeType,
		})
	}
	return s.result(req.ID, map[string]any{"resources": resources})
}

// handleResourcesRead resolves a resource URI and reads it through the
// dispatch pipeline. The read result is regenerated on every call.
func (s *Server) handleResourcesRead(req *MCPRequest) *MCPResponse {
	var params ResourceReadParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	var match *registration
	for _, reg := range s.registry.byKind(KindResource) {
		if reg.URI == params.URI {
			match = reg
			break
		}
	}
	if match == nil {
		return s.errorResponse(req.ID, -32002, "Resource not found", params.URI)
	}

	res := s.invoke(context.Background(), match, nil)
	if res.IsError {
		return s.errorResponse(req.ID, -32000, "Resource read failed", envelopeText(res))
	}

	return s.result(req.ID, map[string]any{
		"contents": []map[string]any{
			{
				"uri":      match.URI,
				"mimeType": match.MimeType,
				"text":     envelopeText(res),
			},
		},
	})
}

// envelopeText extracts the first text item of an envelope.
func envelopeText(res *Result) string {
	for _, c := range res.Content {
		if c.Type == "text" {
			return c.Text
		}
	}
	return fmt.Sprintf("%v", res.Content)
}

// serverInfoDoc is the self-description returned by the server_info
// resource. The capability lists are fixed for the process lifetime; the
// timestamp is recomputed on every read.
type serverInfoDoc struct {
	Name               string   `json:"name"`
	Version            string   `json:"version"`
	Tools              []string `json:"tools"`
	Resources          []string `json:"resources"`
	Prompts            []string `json:"prompts"`
	SupportedLanguages []string `json:"supported_languages"`
	Features           []string `json:"features"`
	GeneratedAt        string   `json:"generated_at"`
}

func (s *Server) handleServerInfo(_ context.Context, _ Arguments) (any, error) {
	return serverInfoDoc{
		Name:               serverName,
		Version:            s.version,
		Tools:              s.registry.names(KindTool),
		Resources:          s.registry.names(KindResource),
		Prompts:            s.registry.names(KindPrompt),
		SupportedLanguages: s.supportedLanguages(),
		Features: []string{
			"multilingual greetings",
			"arithmetic",
			"timezone-aware clock",
			"image generation",
			"color conversion",
			"code review prompts",
		},
		GeneratedAt: s.now().UTC().Format(time.RFC3339Nano),
	}, nil
}

// supportedLanguages reads the greeting tool's language enum so the
// document always matches the declared schema.
func (s *Server) supportedLanguages() []string {
	reg, ok := s.registry.lookup(KindTool, "greeting")
	if !ok {
		return nil
	}
	for _, p := range reg.Params {
		if p.Name == "language" {
			return p.Enum
		}
	}
	return nil
}
