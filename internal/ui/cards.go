package ui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/abelbrown/kickoff/internal/match"
	"github.com/charmbracelet/lipgloss"
)

// Empty and error states for the match list.
const (
	LoadingText    = "Loading matches..."
	ConnectionText = "Connection Error."
	NoUpcomingText = "No upcoming matches found."
	NoMatchesText  = "No matches found."
	LiveBadgeText  = "LIVE 🔴"
	StartedText    = "Started / Streaming Now"
	kickoffLayout  = "Mon 2 Jan 15:04"
)

// cardHeight is the rendered height of one card including its border.
const cardHeight = 5

// RenderCards renders the visible window of match cards, keeping the
// focused card on screen.
func RenderCards(cards []match.Match, focus int, now time.Time, width, height int) string {
	if len(cards) == 0 {
		return HelpStyle.Render(NoMatchesText)
	}

	visible := height / cardHeight
	if visible < 1 {
		visible = 1
	}
	offset := calcScrollOffset(len(cards), focus, visible)

	var b strings.Builder
	for i := offset; i < len(cards) && i < offset+visible; i++ {
		b.WriteString(renderCard(cards[i], i == focus, now, width))
		b.WriteString("\n")
	}
	return b.String()
}

// calcScrollOffset returns the first card index so that focus is within a
// window of visible cards.
func calcScrollOffset(total, focus, visible int) int {
	if total == 0 || focus < 0 {
		return 0
	}
	if focus >= total {
		focus = total - 1
	}
	if focus >= visible {
		return focus - visible + 1
	}
	return 0
}

func renderCard(m match.Match, focused bool, now time.Time, width int) string {
	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	title := CardTitle.Render(truncateRunes(cardTitle(m), inner))
	if m.Started(now) {
		title += " " + LiveBadge.Render(LiveBadgeText)
	}

	lines := []string{title, CardMeta.Render(kickoffLine(m, now))}
	if teams := teamLine(m); teams != "" {
		lines = append(lines, truncateRunes(teams, inner))
	} else {
		lines = append(lines, CardMeta.Render(m.Category))
	}

	style := Card
	if focused {
		style = FocusedCard
	}
	return style.Width(inner).Render(strings.Join(lines, "\n"))
}

// cardTitle prefixes popular matches with a flame.
func cardTitle(m match.Match) string {
	if m.Popular {
		return "🔥 " + m.Title
	}
	return m.Title
}

// kickoffLine is the local kickoff time, or the started marker.
func kickoffLine(m match.Match, now time.Time) string {
	if m.Started(now) {
		return StartedText
	}
	return m.Date.Local().Format(kickoffLayout)
}

// teamLine renders "Home VS Away", or "" when the match has no teams.
func teamLine(m match.Match) string {
	if m.Teams == nil {
		return ""
	}
	return fmt.Sprintf("%s VS %s", teamName(m.Teams.Home), teamName(m.Teams.Away))
}

func teamName(t *match.Team) string {
	if t == nil || t.Name == "" {
		return "Team"
	}
	return t.Name
}

// renderDropdown renders the filter button and, when open, its options.
func renderDropdown(active match.Filter, open bool, cursor int) string {
	button := FilterButton.Render(active.Label() + " ▾")
	if !open {
		return button
	}
	rows := []string{button}
	for i, f := range match.Filters {
		style := DropdownOption
		if i == cursor {
			style = DropdownFocused
		}
		rows = append(rows, style.Render(fmt.Sprintf("%d. %s", i+1, f.Label())))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// truncateRunes shortens s to max runes, marking the cut with an ellipsis.
func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
