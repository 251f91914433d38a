package server

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// ValidationErrorKind classifies why an argument bag was rejected.
type ValidationErrorKind string

const (
	// ErrMissingField reports an absent required parameter.
	ErrMissingField ValidationErrorKind = "missing_field"
	// ErrTypeMismatch reports a value incompatible with the declared type.
	ErrTypeMismatch ValidationErrorKind = "type_mismatch"
	// ErrInvalidEnumValue reports a value outside the declared enum set.
	ErrInvalidEnumValue ValidationErrorKind = "invalid_enum_value"
	// ErrMalformedArguments reports an argument bag that is not a JSON object.
	ErrMalformedArguments ValidationErrorKind = "malformed_arguments"
)

// ValidationError describes one rejected parameter.
type ValidationError struct {
	Kind  ValidationErrorKind
	Param string
	// Detail completes the sentence "parameter X ...".
	Detail string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ErrMissingField:
		return fmt.Sprintf("missing required parameter %q", e.Param)
	case ErrMalformedArguments:
		return "arguments must be a JSON object"
	default:
		return fmt.Sprintf("parameter %q %s", e.Param, e.Detail)
	}
}

// Arguments maps parameter names to values that satisfied the declared
// input shape. Values use JSON-native types (string, float64, bool), so
// re-validating an Arguments bag yields the same values unchanged.
type Arguments map[string]any

// String returns the named argument as a string, or "" when absent.
func (a Arguments) String(key string) string {
	v, _ := a[key].(string)
	return v
}

// Float returns the named argument as a float64, or 0 when absent.
func (a Arguments) Float(key string) float64 {
	switch v := a[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

// validateArgs checks a raw argument bag against the declared parameters.
//
// For each declared parameter: required-and-absent rejects with
// ErrMissingField, a type-incompatible value rejects with ErrTypeMismatch,
// an out-of-set enum value rejects with ErrInvalidEnumValue. Absent
// optionals take their declared default, or stay absent when none is
// declared. Fields not declared by any parameter are ignored.
//
// The function is pure: raw is never mutated and no state is shared
// between calls.
func validateArgs(params []ParamSpec, raw json.RawMessage) (Arguments, *ValidationError) {
	bag := map[string]any{}
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, &bag); err != nil {
			return nil, &ValidationError{Kind: ErrMalformedArguments}
		}
	}

	out := make(Arguments, len(params))
	for _, p := range params {
		value, present := bag[p.Name]
		if !present {
			if p.Required {
				return nil, &ValidationError{Kind: ErrMissingField, Param: p.Name}
			}
			if p.Default != nil {
				out[p.Name] = p.Default
			}
			continue
		}

		coerced, ok := coerce(value, p.Type)
		if !ok {
			return nil, &ValidationError{
				Kind:   ErrTypeMismatch,
				Param:  p.Name,
				Detail: fmt.Sprintf("must be of type %s", p.Type),
			}
		}

		if len(p.Enum) > 0 {
			s, _ := coerced.(string)
			if !contains(p.Enum, s) {
				return nil, &ValidationError{
					Kind:   ErrInvalidEnumValue,
					Param:  p.Name,
					Detail: fmt.Sprintf("must be one of: %s", strings.Join(p.Enum, ", ")),
				}
			}
		}

		out[p.Name] = coerced
	}
	return out, nil
}

// checkDefault verifies a declared default against its own parameter
// contract, so a bad default fails registration instead of leaking into
// validated arguments.
func checkDefault(p ParamSpec) error {
	v, ok := coerce(p.Default, p.Type)
	if !ok {
		return fmt.Errorf("parameter %q declares a default that is not of type %s", p.Name, p.Type)
	}
	if len(p.Enum) > 0 {
		s, _ := v.(string)
		if !contains(p.Enum, s) {
			return fmt.Errorf("parameter %q declares a default outside its enum", p.Name)
		}
	}
	return nil
}

// coerce checks value against a declared JSON type, returning the
// JSON-native representation. Integers stay float64 so validation is
// idempotent over its own output.
func coerce(value any, typ string) (any, bool) {
	switch typ {
	case "string":
		v, ok := value.(string)
		return v, ok
	case "number":
		v, ok := value.(float64)
		return v, ok
	case "integer":
		v, ok := value.(float64)
		if !ok || v != math.Trunc(v) {
			return nil, false
		}
		return v, true
	case "boolean":
		v, ok := value.(bool)
		return v, ok
	default:
		return nil, false
	}
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
