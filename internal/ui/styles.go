package ui

import "fmt"

// ANSI256 color codes matching the Ayu palette.
const (
	colorAccent   = 74  // blue
	colorCmd      = 250 // light gray
	colorMuted    = 245 // medium gray
	colorApproved = 114 // green
	colorRefused  = 203 // red
)

var noColor bool

func render(code int, s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", code, s)
}

// RenderAccent returns s in the accent (blue) color.
func RenderAccent(s string) string {
	return render(colorAccent, s)
}

// RenderMuted returns s in the muted (gray) color.
func RenderMuted(s string) string {
	return render(colorMuted, s)
}

// RenderCommand returns s styled as a command name (light gray).
func RenderCommand(s string) string {
	return render(colorCmd, s)
}

// RenderApproved returns s in the approval (green) color.
func RenderApproved(s string) string {
	return render(colorApproved, s)
}

// RenderRefused returns s in the refusal (red) color.
func RenderRefused(s string) string {
	return render(colorRefused, s)
}

// SetColorEnabled turns color output on or off globally.
func SetColorEnabled(enabled bool) {
	noColor = !enabled
}
