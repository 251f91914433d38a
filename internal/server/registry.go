package server

import (
	"context"
	"fmt"
)

// Kind separates the capability namespaces exposed by the server.
type Kind string

const (
	// KindTool is an invocable tool.
	KindTool Kind = "tool"
	// KindResource is a readable informational endpoint.
	KindResource Kind = "resource"
	// KindPrompt is a templated text-generation endpoint.
	KindPrompt Kind = "prompt"
)

// ParamSpec declares one parameter of a capability's input shape.
type ParamSpec struct {
	Name        string
	Type        string // "string", "number", "integer" or "boolean"
	Description string
	Required    bool
	Enum        []string
	Default     any // JSON-native value substituted when the param is absent
}

// Descriptor is the static metadata for one capability: its unique name,
// human-readable description and input-shape contract. Descriptors are
// immutable once registered.
type Descriptor struct {
	Name        string
	Description string
	Params      []ParamSpec
}

// InputSchema renders the declared parameters as a JSON-schema object for
// discovery responses.
func (d Descriptor) InputSchema() map[string]any {
	properties := map[string]any{}
	var required []string

	for _, p := range d.Params {
		entry := map[string]any{"type": p.Type}
		if p.Description != "" {
			entry["description"] = p.Description
		}
		if len(p.Enum) > 0 {
			entry["enum"] = p.Enum
		}
		if p.Default != nil {
			entry["default"] = p.Default
		}
		properties[p.Name] = entry
		if p.Required {
			required = append(required, p.Name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// Handler executes one capability with validated arguments. The returned
// value is normalized into the response envelope by the dispatcher; a
// returned error becomes an error envelope, never a process fault.
type Handler func(ctx context.Context, args Arguments) (any, error)

// registration pairs a descriptor with its handler. URI and MimeType are
// populated for resources only.
type registration struct {
	Kind Kind
	Descriptor
	Handler  Handler
	URI      string
	MimeType string
}

// registry is the immutable capability table. It is built once at startup
// and read-only afterwards; dispatch shares no other state across requests.
type registry struct {
	order []*registration
	byKey map[string]*registration
}

// newRegistry indexes the registrations. A duplicate kind/name pair is
// rejected so startup fails deterministically instead of silently
// replacing a capability, and every declared default must satisfy its own
// parameter contract.
func newRegistry(regs []*registration) (*registry, error) {
	r := &registry{
		order: regs,
		byKey: make(map[string]*registration, len(regs)),
	}
	for _, reg := range regs {
		key := registryKey(reg.Kind, reg.Name)
		if _, exists := r.byKey[key]; exists {
			return nil, fmt.Errorf("duplicate %s registration: %s", reg.Kind, reg.Name)
		}
		for _, p := range reg.Params {
			if p.Default == nil {
				continue
			}
			if err := checkDefault(p); err != nil {
				return nil, fmt.Errorf("%s %s: %w", reg.Kind, reg.Name, err)
			}
		}
		r.byKey[key] = reg
	}
	return r, nil
}

func registryKey(kind Kind, name string) string {
	return string(kind) + "/" + name
}

// lookup finds a registration by kind and name.
func (r *registry) lookup(kind Kind, name string) (*registration, bool) {
	reg, ok := r.byKey[registryKey(kind, name)]
	return reg, ok
}

// byKind returns the registrations of one kind in catalog order.
func (r *registry) byKind(kind Kind) []*registration {
	var out []*registration
	for _, reg := range r.order {
		if reg.Kind == kind {
			out = append(out, reg)
		}
	}
	return out
}

// names returns the capability names of one kind in catalog order.
func (r *registry) names(kind Kind) []string {
	var out []string
	for _, reg := range r.byKind(kind) {
		out = append(out, reg.Name)
	}
	return out
}
