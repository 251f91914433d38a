// Package imagegen wraps the hosted image-generation backend behind a
// prompt-in, PNG-bytes-out client.
//
// The backend is treated as opaque: a prompt string goes out over HTTP and
// image bytes come back, or the call fails. Failures (network, auth, quota)
// are returned as errors carrying the backend's own message so callers can
// surface them verbatim.
//
// # Output format
//
// The tool contract promises PNG. Backends occasionally answer with JPEG or
// WebP; EnsurePNG re-encodes those, while PNG responses pass through
// byte-identical.
package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// PNGMimeType tags generated image payloads.
const PNGMimeType = "image/png"

// maxImageBytes caps how much of a backend response is read (32 MiB).
const maxImageBytes = 32 << 20

// maxErrorBytes caps how much of an error body is echoed back to clients.
const maxErrorBytes = 2 << 10

// pngMagic is the 8-byte PNG file signature.
var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// ErrNoToken reports that the backend credential was never configured.
// It surfaces on the first generate_image call, not at startup.
var ErrNoToken = errors.New("image API token is not configured; set IMAGE_API_TOKEN")

// Generator produces image bytes for a prompt. Implementations may block on
// network I/O and must honor ctx cancellation.
type Generator interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}

// Client calls the hosted image-generation HTTP API.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// NewClient configures a backend client. The token may be empty; Generate
// then fails with ErrNoToken.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// Generate submits prompt to the backend and returns the raw image bytes.
func (c *Client) Generate(ctx context.Context, prompt string) ([]byte, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}

	body, err := json.Marshal(map[string]string{"inputs": prompt})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", PNGMimeType)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))
		detail := strings.TrimSpace(string(msg))
		if detail == "" {
			detail = "no error detail provided"
		}
		return nil, fmt.Errorf("image backend returned %s: %s", resp.Status, detail)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("read image response: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("image backend returned an empty response")
	}
	return data, nil
}

// EnsurePNG returns data unchanged when it already is a PNG, and otherwise
// decodes and re-encodes it so the declared MIME type holds.
func EnsurePNG(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, pngMagic) {
		return data, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode backend image: %w", err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
