package components

import (
	"strings"

	"github.com/user/crush-cli/tui/styles"
)

// Binding is a key and what it does.
type Binding struct {
	Key  string
	Desc string
}

// HelpLine renders bindings as "key desc · key desc".
func HelpLine(bindings []Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, styles.Key.Render(b.Key)+" "+styles.Hint.Render(b.Desc))
	}
	return " " + strings.Join(parts, styles.Hint.Render(" · "))
}
