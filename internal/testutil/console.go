// Package testutil provides shared test helpers for piscribe packages.
package testutil

import (
	"strings"

	"codeberg.org/snonux/piscribe/internal/console"
)

// ScriptedConsole is a console.Console that replays canned input lines and
// records everything printed. When the script runs out, Input returns an
// empty string, which the review loop treats as "next".
type ScriptedConsole struct {
	Inputs  []string
	Lines   []string
	Prompts []string
	next    int
}

var _ console.Console = (*ScriptedConsole)(nil)

// NewScriptedConsole creates a ScriptedConsole replaying inputs in order.
func NewScriptedConsole(inputs ...string) *ScriptedConsole {
	return &ScriptedConsole{Inputs: inputs}
}

func (c *ScriptedConsole) Print(text string) {
	c.Lines = append(c.Lines, text)
}

func (c *ScriptedConsole) PrintWithSpacing(text string) {
	c.Lines = append(c.Lines, text)
}

func (c *ScriptedConsole) Input(prompt string) string {
	c.Prompts = append(c.Prompts, prompt)
	if c.next >= len(c.Inputs) {
		return ""
	}
	input := c.Inputs[c.next]
	c.next++
	return input
}

func (c *ScriptedConsole) InputWithSpacing(prompt string) string {
	return c.Input(prompt)
}

// Contains reports whether any recorded output line contains substr.
func (c *ScriptedConsole) Contains(substr string) bool {
	for _, line := range c.Lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
