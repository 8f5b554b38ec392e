package forms

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/user/crush-cli/tui/styles"
)

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func button(bg, text lipgloss.Color, bold bool) lipgloss.Style {
	return lipgloss.NewStyle().Background(bg).Foreground(text).Bold(bold).Padding(0, 1)
}

// Theme returns a huh theme using the TUI colour palette. Focused fields get a
// thick left rule; blurred fields keep the same indent with a hidden border.
func Theme() *huh.Theme {
	t := huh.ThemeBase()

	f := &t.Focused
	f.Base = f.Base.BorderStyle(lipgloss.ThickBorder()).BorderLeft(true).BorderForeground(styles.Focus).PaddingLeft(1)
	f.Title = fg(styles.Title).Bold(true)
	f.NoteTitle = fg(styles.Info).Bold(true)
	f.Description = fg(styles.Muted)
	f.ErrorIndicator = fg(styles.Error).Bold(true)
	f.ErrorMessage = fg(styles.Error)
	f.SelectSelector = fg(styles.Info).SetString("▸ ")
	f.Option = fg(styles.Text)
	f.SelectedOption = fg(styles.Info)
	f.NextIndicator = fg(styles.Muted)
	f.PrevIndicator = fg(styles.Muted)
	f.TextInput.Cursor = fg(styles.Info)
	f.TextInput.Placeholder = fg(styles.Border)
	f.TextInput.Prompt = fg(styles.Info)
	f.TextInput.Text = fg(styles.Text)
	f.FocusedButton = button(styles.Focus, styles.Text, true)
	f.BlurredButton = button(styles.Border, styles.Muted, false)
	f.Next = f.FocusedButton

	b := &t.Blurred
	b.Base = b.Base.BorderStyle(lipgloss.HiddenBorder()).BorderLeft(true).PaddingLeft(1)
	b.Title = fg(styles.Muted)
	b.NoteTitle = fg(styles.Muted)
	b.Description = fg(styles.Border)
	b.ErrorIndicator = fg(styles.Error)
	b.ErrorMessage = fg(styles.Error)
	b.SelectSelector = lipgloss.NewStyle().SetString("  ")
	b.Option = fg(styles.Muted)
	b.SelectedOption = fg(styles.Muted)
	b.TextInput.Cursor = fg(styles.Border)
	b.TextInput.Placeholder = fg(styles.Border)
	b.TextInput.Prompt = fg(styles.Border)
	b.TextInput.Text = fg(styles.Muted)
	b.FocusedButton = button(styles.Border, styles.Muted, false)
	b.BlurredButton = button(styles.Background, styles.Border, false)
	b.Next = b.FocusedButton

	return t
}
