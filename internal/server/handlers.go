package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/ironsheep/toolbox-mcp/internal/calc"
	"github.com/ironsheep/toolbox-mcp/internal/clock"
	"github.com/ironsheep/toolbox-mcp/internal/colorx"
	"github.com/ironsheep/toolbox-mcp/internal/greet"
	"github.com/ironsheep/toolbox-mcp/internal/imagegen"
)

// newRegistrations builds the full capability table: five tools, the
// server_info resource and the code_review prompt. Called once from New;
// the resulting registry is read-only for the process lifetime.
func (s *Server) newRegistrations() []*registration {
	return []*registration{
		{
			Kind: KindTool,
			Descriptor: Descriptor{
				Name:        "greeting",
				Description: "Greet a person by name in one of ten supported languages.",
				Params: []ParamSpec{
					{
						Name:        "name",
						Type:        "string",
						Description: "Name of the person to greet",
						Required:    true,
					},
					{
						Name:        "language",
						Type:        "string",
						Description: "Language for the greeting",
						Enum:        greet.Languages(),
						Default:     "english",
					},
				},
			},
			Handler: s.handleGreeting,
		},
		{
			Kind: KindTool,
			Descriptor: Descriptor{
				Name:        "calculator",
				Description: "Apply one of the four basic arithmetic operators to two numbers.",
				Params: []ParamSpec{
					{
						Name:        "num1",
						Type:        "number",
						Description: "First operand",
						Required:    true,
					},
					{
						Name:        "num2",
						Type:        "number",
						Description: "Second operand",
						Required:    true,
					},
					{
						Name:        "operator",
						Type:        "string",
						Description: "Arithmetic operator to apply",
						Required:    true,
						Enum:        []string{"+", "-", "*", "/"},
					},
				},
			},
			Handler: s.handleCalculator,
		},
		{
			Kind: KindTool,
			Descriptor: Descriptor{
				Name:        "current_time",
				Description: "Report the current time in an IANA timezone.",
				Params: []ParamSpec{
					{
						Name:        "timezone",
						Type:        "string",
						Description: "IANA timezone name (e.g. America/New_York)",
						Default:     s.cfg.DefaultTimezone,
					},
				},
			},
			Handler: s.handleCurrentTime,
		},
		{
			Kind: KindTool,
			Descriptor: Descriptor{
				Name:        "generate_image",
				Description: "Generate a PNG image from a text prompt using the hosted image backend.",
				Params: []ParamSpec{
					{
						Name:        "prompt",
						Type:        "string",
						Description: "Text description of the image to generate",
						Required:    true,
					},
				},
			},
			Handler: s.handleGenerateImage,
		},
		{
			Kind: KindTool,
			Descriptor: Descriptor{
				Name:        "color_info",
				Description: "Convert a hex color to RGB, HSL and Lab, with WCAG contrast ratios.",
				Params: []ParamSpec{
					{
						Name:        "color",
						Type:        "string",
						Description: "Hex color such as #1E90FF",
						Required:    true,
					},
					{
						Name:        "compare",
						Type:        "string",
						Description: "Which contrast references to report",
						Enum:        []string{"black", "white", "both"},
						Default:     "both",
					},
				},
			},
			Handler: s.handleColorInfo,
		},
		{
			Kind: KindResource,
			Descriptor: Descriptor{
				Name:        "server_info",
				Description: "Self-description of this server: capabilities, languages, features.",
			},
			URI:      serverInfoURI,
			MimeType: "application/json",
			Handler:  s.handleServerInfo,
		},
		{
			Kind: KindPrompt,
			Descriptor: Descriptor{
				Name:        "code_review",
				Description: "Build review instructions for a piece of code.",
				Params: []ParamSpec{
					{
						Name:        "code",
						Type:        "string",
						Description: "The code to review",
						Required:    true,
					},
					{
						Name:        "language",
						Type:        "string",
						Description: "Programming language of the code",
					},
					{
						Name:        "focus",
						Type:        "string",
						Description: "Aspect to focus the review on",
					},
				},
			},
			Handler: s.handleCodeReview,
		},
	}
}

func (s *Server) handleGreeting(_ context.Context, args Arguments) (any, error) {
	return greet.Greet(args.String("name"), args.String("language"))
}

func (s *Server) handleCalculator(_ context.Context, args Arguments) (any, error) {
	num1 := args.Float("num1")
	num2 := args.Float("num2")
	operator := args.String("operator")

	result, err := calc.Apply(num1, num2, operator)
	if err != nil {
		return nil, err
	}
	return fmt.Sprintf("%s %s %s = %s",
		calc.Format(num1), operator, calc.Format(num2), calc.Format(result)), nil
}

func (s *Server) handleCurrentTime(_ context.Context, args Arguments) (any, error) {
	info, err := clock.At(s.now(), args.String("timezone"))
	if err != nil {
		return nil, err
	}
	return fmt.Sprintf("Current time in %s: %s", info.Timezone, info.Local), nil
}

func (s *Server) handleGenerateImage(ctx context.Context, args Arguments) (any, error) {
	data, err := s.generator.Generate(ctx, args.String("prompt"))
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}
	png, err := imagegen.EnsurePNG(data)
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}
	return Image{Data: png, MimeType: imagegen.PNGMimeType}, nil
}

func (s *Server) handleColorInfo(_ context.Context, args Arguments) (any, error) {
	info, err := colorx.Parse(args.String("color"))
	if err != nil {
		return nil, err
	}
	return formatColorReport(info, args.String("compare")), nil
}

// formatColorReport renders the color_info text payload.
func formatColorReport(info *colorx.Info, compare string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Color %s\n", info.Hex)
	fmt.Fprintf(&b, "  RGB: %d, %d, %d\n", info.RGB.R, info.RGB.G, info.RGB.B)
	fmt.Fprintf(&b, "  HSL: %d, %d%%, %d%%\n", info.HSL.H, info.HSL.S, info.HSL.L)
	fmt.Fprintf(&b, "  Lab: L=%.2f a=%.2f b=%.2f\n", info.Lab.L, info.Lab.A, info.Lab.B)
	if compare == "black" || compare == "both" {
		fmt.Fprintf(&b, "  Contrast vs black: %.2f:1\n", info.ContrastBlack)
	}
	if compare == "white" || compare == "both" {
		fmt.Fprintf(&b, "  Contrast vs white: %.2f:1\n", info.ContrastWhite)
	}
	return b.String()
}
