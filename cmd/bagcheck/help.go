package main

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/flyaru/bagcheck-mobile-pwa/internal/ui"
	"github.com/spf13/cobra"
)

// helpRule styles every match of pattern in Cobra's plain-text help.
type helpRule struct {
	pattern *regexp.Regexp
	style   func(groups []string) string
}

var helpRules = []helpRule{
	// Section headers such as "Kiosk:" or "Flags:".
	{
		pattern: regexp.MustCompile(`(?m)^([A-Z][^\n]*:)\s*$`),
		style:   func(g []string) string { return ui.RenderAccent(g[1]) + strings.TrimPrefix(g[0], g[1]) },
	},
	// Command names: two-space indent, a word, two or more spaces.
	{
		pattern: regexp.MustCompile(`(?m)^(  )(\S+)(  )`),
		style:   func(g []string) string { return g[1] + ui.RenderCommand(g[2]) + g[3] },
	},
	// Flag type annotations, e.g. "--station string".
	{
		pattern: regexp.MustCompile(`(--?\S+\s+)(string|int|float|duration)\b`),
		style:   func(g []string) string { return g[1] + ui.RenderMuted(g[2]) },
	},
	// Default values, e.g. (default "kiosk").
	{
		pattern: regexp.MustCompile(`\(default "[^"]*"\)`),
		style:   func(g []string) string { return ui.RenderMuted(g[0]) },
	},
}

// colorizedHelpFunc returns a Cobra help function that colors the default
// help text when the terminal supports it.
func colorizedHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if !ui.ShouldUseColor() {
			_ = cmd.Usage()
			return
		}

		var buf bytes.Buffer
		cmd.SetOut(&buf)
		_ = cmd.Usage()
		cmd.SetOut(out)
		fmt.Fprint(out, colorizeHelpOutput(buf.String()))
	}
}

// colorizeHelpOutput applies helpRules in order.
func colorizeHelpOutput(s string) string {
	for _, rule := range helpRules {
		s = rule.pattern.ReplaceAllStringFunc(s, func(match string) string {
			groups := rule.pattern.FindStringSubmatch(match)
			if groups == nil {
				return match
			}
			return rule.style(groups)
		})
	}
	return s
}
