// Package forms provides huh-based form components for the TUI.
package forms

import (
	"github.com/charmbracelet/huh"
)

// NewConfirmCancelForm asks whether to stop the running cut.
// The result pointer is bound to the confirm field value.
func NewConfirmCancelForm(cancel *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Cancel this cut?").
				Description("ffmpeg will be stopped and the partial output left as is.").
				Affirmative("Yes, cancel").
				Negative("No, keep going").
				Value(cancel),
		),
	).WithTheme(Theme()).WithShowHelp(false)
}
