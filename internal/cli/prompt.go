package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptResult contains the result of a user prompt interaction.
type PromptResult struct {
	// Accepted is true if the user accepted the prompt.
	Accepted bool
	// Cancelled is true if input could not be read (e.g. Ctrl+C).
	Cancelled bool
}

// Confirm prompts for a yes/no answer before a destructive action. It mirrors
// the TUI confirmation contract: nothing destructive fires unless the user
// explicitly accepts. The interactive flag is injected by the caller so
// non-terminal runs decline immediately without reading input.
//
// The prompt defaults to "No": empty input, EOF, and anything other than
// "y"/"yes" decline.
func Confirm(writer io.Writer, reader io.Reader, prompt string, interactive bool) PromptResult {
	if !interactive {
		return PromptResult{Accepted: false}
	}

	fmt.Fprintf(writer, "%s [y/N] ", prompt)

	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		if scanner.Err() != nil {
			return PromptResult{Cancelled: true}
		}
		return PromptResult{Accepted: false}
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return PromptResult{Accepted: true}
	default:
		return PromptResult{Accepted: false}
	}
}
