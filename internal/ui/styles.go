package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorLive      = lipgloss.Color("196") // Red
	colorSuccess   = lipgloss.Color("78")  // Green
)

// Header style for the title bar.
var Header = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// FilterButton shows the active filter label.
var FilterButton = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// DropdownOption is an unfocused entry in the open filter menu.
var DropdownOption = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Padding(0, 2)

// DropdownFocused is the focused entry in the open filter menu.
var DropdownFocused = DropdownOption.
	Bold(true).
	Background(colorPrimary)

// Card is an unfocused match card.
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorMuted).
	Padding(0, 1)

// FocusedCard is the card under the remote's focus.
var FocusedCard = Card.
	BorderForeground(colorHighlight)

// CardTitle style for the match title.
var CardTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255"))

// CardMeta style for the category and time line.
var CardMeta = lipgloss.NewStyle().
	Foreground(colorSecondary)

// LiveBadge marks a started match.
var LiveBadge = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorLive)

// Modal wraps the match detail overlay.
var Modal = lipgloss.NewStyle().
	Border(lipgloss.ThickBorder()).
	BorderForeground(colorPrimary).
	Padding(1, 2)

// CountdownBox frames the time remaining to kickoff.
var CountdownBox = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(colorHighlight).
	Bold(true).
	Padding(0, 2)

// PlayerRegion frames the stream area.
var PlayerRegion = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	BorderForeground(colorMuted).
	Padding(0, 1)

// PlayerMessage style for "Connecting..." and failures.
var PlayerMessage = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Italic(true)

// PlayingStyle for the resolved stream line.
var PlayingStyle = lipgloss.NewStyle().
	Foreground(colorSuccess).
	Bold(true)

// ServerButton is an idle mirror button.
var ServerButton = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1).
	MarginRight(1)

// ServerActive is the mirror being played.
var ServerActive = ServerButton.
	Background(colorPrimary).
	Bold(true)

// ServerFocused underlines the mirror under focus.
var ServerFocused = lipgloss.NewStyle().
	Underline(true)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBarText style for descriptive text in status bar.
var StatusBarText = lipgloss.NewStyle().
	Foreground(colorSecondary)

// ErrorStyle for page-level errors.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(colorLive).
	Bold(true).
	Padding(0, 1)

// HelpStyle for empty states and hints.
var HelpStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(1, 2)
