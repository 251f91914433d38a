package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Content is one item of a capability result. Type selects which of the
// remaining fields are populated: "text" carries Text, "image" carries a
// base64 payload in Data plus MimeType.
type Content struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	Data     string `json:"data,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// Message is one role-tagged part of a prompt result.
type Message struct {
	Role    string  `json:"role"`
	Content Content `json:"content"`
}

// Image is a handler's binary result before normalization.
type Image struct {
	Data     []byte
	MimeType string
}

// Messages is a handler's structured result before normalization.
type Messages []Message

// Result is the uniform response envelope. Exactly one Result is produced
// per request and it is never mutated after construction. When IsError is
// set, Content holds a single human-readable explanation and nothing else.
type Result struct {
	Content  []Content `json:"content"`
	Messages []Message `json:"messages,omitempty"`
	IsError  bool      `json:"isError,omitempty"`
}

// TextContent builds a text content item.
func TextContent(text string) Content {
	return Content{Type: "text", Text: text}
}

// ImageContent builds an image content item, base64-encoding the payload.
func ImageContent(data []byte, mimeType string) Content {
	return Content{
		Type:     "image",
		Data:     base64.StdEncoding.EncodeToString(data),
		MimeType: mimeType,
	}
}

// UserMessage wraps text as a single user-role message.
func UserMessage(text string) Message {
	return Message{Role: "user", Content: TextContent(text)}
}

// errorResult builds an error envelope from a message.
func errorResult(message string) *Result {
	return &Result{
		Content: []Content{TextContent(message)},
		IsError: true,
	}
}

// normalize converts a handler outcome into the response envelope.
//
// A non-nil err always wins and becomes an error envelope. Otherwise the
// domain value maps by kind: strings to text content, Image to an image
// content item, Messages to structured content. Anything else is rendered
// as indented JSON text, which keeps struct-shaped results (server_info)
// readable without the normalizer knowing handler identities.
func normalize(out any, err error) *Result {
	if err != nil {
		return errorResult(err.Error())
	}

	switch v := out.(type) {
	case string:
		return &Result{Content: []Content{TextContent(v)}}
	case Image:
		return &Result{Content: []Content{ImageContent(v.Data, v.MimeType)}}
	case Messages:
		return &Result{Content: []Content{}, Messages: v}
	default:
		b, merr := json.MarshalIndent(v, "", "  ")
		if merr != nil {
			return errorResult(fmt.Sprintf("failed to encode result: %v", merr))
		}
		return &Result{Content: []Content{TextContent(string(b))}}
	}
}
