// Package output renders command results for terminals, pipes and machines.
//
// A Renderer picks its effective mode once: styled text on a TTY, markdown
// when piped, JSON when asked for.
package output

import (
	"fmt"
	"strings"
)

// Mode selects how results are written.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Modes lists the accepted --output values.
func Modes() []string {
	return []string{string(ModeAuto), string(ModeText), string(ModeMarkdown), string(ModeJSON)}
}

// ParseMode validates a mode name. Empty selects ModeAuto and "md" is
// accepted for markdown.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ModeAuto):
		return ModeAuto, nil
	case string(ModeText):
		return ModeText, nil
	case string(ModeMarkdown), "md":
		return ModeMarkdown, nil
	case string(ModeJSON):
		return ModeJSON, nil
	}
	return "", fmt.Errorf("unknown output format %q (want one of %s)", s, strings.Join(Modes(), ", "))
}
