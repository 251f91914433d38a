// Package server implements the MCP (Model Context Protocol) server and its
// capability registry.
//
// This package provides a JSON-RPC 2.0 server that exposes a fixed set of
// capabilities — five tools, one resource and one prompt template — to MCP
// clients such as Claude Desktop.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list, tools/call: Tool discovery and invocation
//   - resources/list, resources/read: Resource discovery and reads
//   - prompts/list, prompts/get: Prompt discovery and assembly
//   - ping: Health check
//
// # Capabilities
//
// Tools:
//   - greeting: Greet a person in one of ten languages
//   - calculator: Basic arithmetic on two numbers
//   - current_time: Current time in an IANA timezone
//   - generate_image: Text-to-image via the hosted backend (PNG)
//   - color_info: Hex color conversion with contrast ratios
//
// Resources:
//   - server://info: Self-description with a fresh timestamp per read
//
// Prompts:
//   - code_review: Review instructions assembled from code/language/focus
//
// # Dispatch
//
// Every call moves through lookup, validation, handler invocation and
// normalization, in that order. The capability table is built once at
// startup and never mutated; requests share no other state, so concurrent
// in-flight requests cannot observe each other.
//
// # Error Handling
//
// Three failure categories exist and all of them surface as an envelope
// with isError set rather than a process fault:
//   - unknown capability names
//   - validation failures (missing field, type mismatch, enum violation)
//   - domain failures (division by zero, unresolvable timezone, image
//     backend errors)
//
// Unknown or extra argument fields are ignored. Malformed JSON-RPC frames
// and unknown methods are answered at the JSON-RPC layer with standard
// error codes.
package server
