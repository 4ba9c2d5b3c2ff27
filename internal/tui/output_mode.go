package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are rendered.
type OutputMode int

const (
	// OutputModePlain renders an unstyled text table (pipes, CI).
	OutputModePlain OutputMode = iota
	// OutputModeStyled renders lipgloss-styled output without interactivity.
	OutputModeStyled
	// OutputModeInteractive runs the full Bubble Tea program.
	OutputModeInteractive
)

// IsTTY reports whether stdout is attached to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// DetectOutputMode picks the rendering mode. plain forces unstyled output;
// nonInteractive keeps styling but skips the TUI.
func DetectOutputMode(plain, nonInteractive bool) OutputMode {
	if plain || !IsTTY() {
		return OutputModePlain
	}
	if nonInteractive {
		return OutputModeStyled
	}
	return OutputModeInteractive
}
