package server

import (
	"reflect"
	"strings"
	"testing"
)

func TestNewRegistry_RejectsDuplicates(t *testing.T) {
	regs := []*registration{
		{Kind: KindTool, Descriptor: Descriptor{Name: "echo"}},
		{Kind: KindTool, Descriptor: Descriptor{Name: "echo"}},
	}

	_, err := newRegistry(regs)
	if err == nil {
		t.Fatal("expected duplicate registration error, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate tool registration: echo") {
		t.Errorf("error = %q, want duplicate tool registration: echo", err)
	}
}

func TestNewRegistry_SameNameDifferentKind(t *testing.T) {
	regs := []*registration{
		{Kind: KindTool, Descriptor: Descriptor{Name: "info"}},
		{Kind: KindResource, Descriptor: Descriptor{Name: "info"}},
	}

	r, err := newRegistry(regs)
	if err != nil {
		t.Fatalf("distinct kinds rejected: %v", err)
	}
	if _, ok := r.lookup(KindTool, "info"); !ok {
		t.Error("tool/info not found")
	}
	if _, ok := r.lookup(KindResource, "info"); !ok {
		t.Error("resource/info not found")
	}
}

func TestNewRegistry_RejectsBadDefaults(t *testing.T) {
	tests := []struct {
		name  string
		param ParamSpec
		want  string
	}{
		{
			"type mismatch",
			ParamSpec{Name: "count", Type: "integer", Default: "three"},
			"not of type integer",
		},
		{
			"non-native integer",
			ParamSpec{Name: "count", Type: "integer", Default: 3},
			"not of type integer",
		},
		{
			"outside enum",
			ParamSpec{Name: "mode", Type: "string", Enum: []string{"on", "off"}, Default: "auto"},
			"outside its enum",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newRegistry([]*registration{{
				Kind:       KindTool,
				Descriptor: Descriptor{Name: "widget", Params: []ParamSpec{tt.param}},
			}})
			if err == nil {
				t.Fatal("expected bad-default registration error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err, tt.want)
			}
			if !strings.Contains(err.Error(), "tool widget") {
				t.Errorf("error = %q, want the offending registration named", err)
			}
		})
	}
}

func TestNewRegistry_AcceptsValidDefaults(t *testing.T) {
	_, err := newRegistry([]*registration{{
		Kind: KindTool,
		Descriptor: Descriptor{Name: "widget", Params: []ParamSpec{
			{Name: "mode", Type: "string", Enum: []string{"on", "off"}, Default: "on"},
			{Name: "count", Type: "integer", Default: float64(3)},
		}},
	}})
	if err != nil {
		t.Fatalf("valid defaults rejected: %v", err)
	}
}

func TestRegistry_LookupMiss(t *testing.T) {
	r, err := newRegistry([]*registration{
		{Kind: KindTool, Descriptor: Descriptor{Name: "echo"}},
	})
	if err != nil {
		t.Fatalf("newRegistry failed: %v", err)
	}
	if _, ok := r.lookup(KindTool, "missing"); ok {
		t.Error("lookup of unregistered name succeeded")
	}
	if _, ok := r.lookup(KindPrompt, "echo"); ok {
		t.Error("lookup with wrong kind succeeded")
	}
}

func TestRegistry_ByKindOrder(t *testing.T) {
	r, err := newRegistry([]*registration{
		{Kind: KindTool, Descriptor: Descriptor{Name: "alpha"}},
		{Kind: KindResource, Descriptor: Descriptor{Name: "doc"}},
		{Kind: KindTool, Descriptor: Descriptor{Name: "beta"}},
	})
	if err != nil {
		t.Fatalf("newRegistry failed: %v", err)
	}

	got := r.names(KindTool)
	want := []string{"alpha", "beta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("names(KindTool) = %v, want %v", got, want)
	}
}

func TestDescriptor_InputSchema(t *testing.T) {
	d := Descriptor{
		Name: "greeting",
		Params: []ParamSpec{
			{Name: "name", Type: "string", Description: "who to greet", Required: true},
			{Name: "language", Type: "string", Enum: []string{"english", "spanish"}, Default: "english"},
		},
	}

	schema := d.InputSchema()
	if schema["type"] != "object" {
		t.Errorf(`schema type = %v, want "object"`, schema["type"])
	}

	required, _ := schema["required"].([]string)
	if !reflect.DeepEqual(required, []string{"name"}) {
		t.Errorf("required = %v, want [name]", required)
	}

	props, _ := schema["properties"].(map[string]any)
	name, _ := props["name"].(map[string]any)
	if name["description"] != "who to greet" {
		t.Errorf("name description = %v", name["description"])
	}
	if _, hasDefault := name["default"]; hasDefault {
		t.Error("name carries a default it never declared")
	}

	language, _ := props["language"].(map[string]any)
	if language["default"] != "english" {
		t.Errorf("language default = %v, want english", language["default"])
	}
	enum, _ := language["enum"].([]string)
	if !reflect.DeepEqual(enum, []string{"english", "spanish"}) {
		t.Errorf("language enum = %v", enum)
	}
}

func TestDescriptor_InputSchema_NoParams(t *testing.T) {
	schema := Descriptor{Name: "bare"}.InputSchema()
	if _, has := schema["required"]; has {
		t.Error("empty descriptor rendered a required list")
	}
	props, _ := schema["properties"].(map[string]any)
	if len(props) != 0 {
		t.Errorf("properties = %v, want empty", props)
	}
}
