package ui

import (
	"fmt"
	"strings"

	"github.com/abelbrown/kickoff/internal/api"
	"github.com/abelbrown/kickoff/internal/lifecycle"
	"github.com/abelbrown/kickoff/internal/match"
	"github.com/abelbrown/kickoff/internal/selector"
	"github.com/charmbracelet/lipgloss"
)

// CountdownHeading labels the countdown box.
const CountdownHeading = "Match Starts In"

// modalView is everything the overlay needs for one frame.
type modalView struct {
	match       match.Match
	mode        lifecycle.Mode
	remaining   lifecycle.Remaining
	servers     []lifecycle.Server
	player      selector.Player
	serverFocus int
	badges      map[string]string
}

func renderModal(v modalView, width int) string {
	inner := width - 8
	if inner < 30 {
		inner = 30
	}

	sections := []string{CardTitle.Render(truncateRunes(v.match.Title, inner))}
	if teams := teamLine(v.match); teams != "" {
		sections = append(sections, teams)
		if badges := badgeLines(v.match, v.badges); badges != "" {
			sections = append(sections, CardMeta.Render(badges))
		}
	}
	sections = append(sections, "")

	switch v.mode {
	case lifecycle.ModeCountdown:
		body := StatusBarText.Render(CountdownHeading) + "\n" + v.remaining.String()
		sections = append(sections, CountdownBox.Render(body))
	case lifecycle.ModeNoStreams:
		sections = append(sections, CountdownBox.Render(lifecycle.NoStreamsMessage))
	case lifecycle.ModeLive:
		sections = append(sections, PlayerRegion.Width(inner).Render(renderPlayer(v.player)))
		sections = append(sections, renderServers(v.servers, v.serverFocus))
	}

	return Modal.Width(inner + 4).Render(strings.Join(sections, "\n"))
}

func renderPlayer(p selector.Player) string {
	if p.Status != selector.StatusPlaying {
		msg := p.Status.Message()
		if msg == "" {
			msg = selector.StatusConnecting.Message()
		}
		return PlayerMessage.Render(msg)
	}

	quality := "SD"
	if p.Stream.HD {
		quality = "HD"
	}
	head := PlayingStyle.Render(fmt.Sprintf("▶ %s stream %d", p.Source.Name, p.Stream.StreamNo))
	meta := CardMeta.Render(fmt.Sprintf("%s · %s", quality, p.Stream.Language))
	return strings.Join([]string{head, meta, p.Embed.URL}, "\n")
}

// serverLabel is the button text for a mirror.
func serverLabel(s lifecycle.Server) string {
	return "HD " + s.Label
}

func renderServers(servers []lifecycle.Server, focus int) string {
	buttons := make([]string, 0, len(servers))
	for _, s := range servers {
		style := ServerButton
		if s.Active {
			style = ServerActive
		}
		if s.Index == focus {
			style = style.Inherit(ServerFocused)
		}
		buttons = append(buttons, style.Render(serverLabel(s)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

// badgeLines lists badge images for the two teams. Teams without a badge
// id show the default; ids still resolving are left out.
func badgeLines(m match.Match, badges map[string]string) string {
	if m.Teams == nil {
		return ""
	}
	var parts []string
	for _, t := range []*match.Team{m.Teams.Home, m.Teams.Away} {
		if t == nil {
			continue
		}
		u, ok := api.DefaultBadge, true
		if t.Badge != "" {
			u, ok = badges[t.Badge]
		}
		if ok {
			parts = append(parts, fmt.Sprintf("%s: %s", teamName(t), u))
		}
	}
	return strings.Join(parts, "\n")
}
