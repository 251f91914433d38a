// Package review assembles the instruction document for the code_review
// prompt. Assembly is deterministic: the same inputs always produce the
// same document.
package review

import (
	"fmt"
	"strings"
)

// Params are the code_review prompt arguments. Code is required; Language
// and Focus fall back to generic wording when empty.
type Params struct {
	Code     string
	Language string
	Focus    string
}

// Build interpolates the parameters into the fixed review template.
func Build(p Params) string {
	language := p.Language
	if language == "" {
		language = "the language it appears to be written in"
	}
	focus := p.Focus
	if focus == "" {
		focus = "overall quality"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Please review the following code, treating it as %s and focusing on %s.\n\n", language, focus)

	b.WriteString("## Code\n\n")
	fmt.Fprintf(&b, "```%s\n", p.Language)
	b.WriteString(p.Code)
	if !strings.HasSuffix(p.Code, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("```\n\n")

	b.WriteString("## What to cover\n\n")
	b.WriteString("- Correctness: logic errors, unhandled edge cases, race conditions\n")
	b.WriteString("- Readability: naming, structure, unnecessary complexity\n")
	b.WriteString("- Safety: input validation, error handling, resource cleanup\n")
	b.WriteString("- Performance: needless allocations, algorithmic issues\n")
	fmt.Fprintf(&b, "- Focus area: give extra attention to %s\n\n", focus)

	b.WriteString("## Response format\n\n")
	b.WriteString("Start with a one-paragraph summary, then list findings ordered by severity. ")
	b.WriteString("For each finding, cite the relevant lines and suggest a concrete fix.\n")

	return b.String()
}
