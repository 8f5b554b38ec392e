// Package styles provides Lipgloss styles for the TUI using the Ciapre colour palette.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - Ciapre (warm, earthy) theme from Gogh
const (
	// Background is the darkest surface (Ciapre background)
	Background = lipgloss.Color("#191C27")
	// Surface is used behind bars and panels (Ciapre ANSI 0 black)
	Surface = lipgloss.Color("#181818")
	// Border is the dim accent for box outlines (Ciapre ANSI 6 brown)
	Border = lipgloss.Color("#5C4F4B")
	// Focus marks the focused field and selected button (Ciapre ANSI 5 magenta)
	Focus = lipgloss.Color("#724D7C")
	// Muted is secondary text (Ciapre foreground)
	Muted = lipgloss.Color("#AEA47A")
	// Text is primary text (Ciapre ANSI 14 cream)
	Text = lipgloss.Color("#F3DBB2")
	// Title is used for headers (Ciapre ANSI 13 bright magenta)
	Title = lipgloss.Color("#D33061")
	// Info is used for informational log lines and the spinner (Ciapre ANSI 12 bright blue)
	Info = lipgloss.Color("#3097C6")
	// Warn is used for advisories such as an oversize clip (Ciapre derived amber)
	Warn = lipgloss.Color("#CC8B3F")
	// Error is used for failures (Ciapre ANSI 1)
	Error = lipgloss.Color("#AC3835")
	// Success is used for finished work (Ciapre ANSI 2)
	Success = lipgloss.Color("#A6A75D")
)

// Bar is the full-width status bar.
var Bar = lipgloss.NewStyle().
	Background(Surface).
	Foreground(Text).
	Bold(true)

// Header is the style for box titles.
var Header = lipgloss.NewStyle().
	Foreground(Title).
	Bold(true)

// PrimaryText is the style for primary text content
var PrimaryText = lipgloss.NewStyle().
	Foreground(Text)

// SecondaryText is the style for less prominent text
var SecondaryText = lipgloss.NewStyle().
	Foreground(Muted)

// Hint renders key hints at the bottom of the screen.
var Hint = lipgloss.NewStyle().
	Foreground(Muted).
	Italic(true)

// Key renders the key name inside a hint.
var Key = lipgloss.NewStyle().
	Foreground(Info).
	Bold(true)

// InfoLine, SuccessLine, WarningLine and ErrorLine colour status log lines by level.
var (
	InfoLine    = lipgloss.NewStyle().Foreground(Info)
	SuccessLine = lipgloss.NewStyle().Foreground(Success).Bold(true)
	WarningLine = lipgloss.NewStyle().Foreground(Warn).Bold(true)
	ErrorLine   = lipgloss.NewStyle().Foreground(Error).Bold(true)
)
