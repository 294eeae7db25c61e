package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/abelbrown/kickoff/internal/match"
)

func TestKickoffLine(t *testing.T) {
	now := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	started := match.Match{Date: now}
	if got := kickoffLine(started, now); got != StartedText {
		t.Errorf("kickoff at now should read %q, got %q", StartedText, got)
	}

	later := match.Match{Date: now.Add(2 * time.Hour)}
	want := later.Date.Local().Format(kickoffLayout)
	if got := kickoffLine(later, now); got != want {
		t.Errorf("expected local time %q, got %q", want, got)
	}
}

func TestTeamLine(t *testing.T) {
	tests := []struct {
		name string
		m    match.Match
		want string
	}{
		{"no teams", match.Match{}, ""},
		{"both", match.Match{Teams: &match.Teams{
			Home: &match.Team{Name: "Inter"},
			Away: &match.Team{Name: "Milan"},
		}}, "Inter VS Milan"},
		{"missing side", match.Match{Teams: &match.Teams{
			Home: &match.Team{Name: "Inter"},
		}}, "Inter VS Team"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := teamLine(tt.m); got != tt.want {
				t.Errorf("teamLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCardTitle(t *testing.T) {
	if got := cardTitle(match.Match{Title: "Derby", Popular: true}); got != "🔥 Derby" {
		t.Errorf("popular title = %q", got)
	}
	if got := cardTitle(match.Match{Title: "Derby"}); got != "Derby" {
		t.Errorf("plain title = %q", got)
	}
}

func TestCalcScrollOffset(t *testing.T) {
	tests := []struct {
		total, focus, visible, want int
	}{
		{0, 0, 3, 0},
		{10, 0, 3, 0},
		{10, 2, 3, 0},
		{10, 3, 3, 1},
		{10, 9, 3, 7},
		{10, 20, 3, 7},
		{10, -1, 3, 0},
	}

	for _, tt := range tests {
		if got := calcScrollOffset(tt.total, tt.focus, tt.visible); got != tt.want {
			t.Errorf("calcScrollOffset(%d, %d, %d) = %d, want %d",
				tt.total, tt.focus, tt.visible, got, tt.want)
		}
	}
}

func TestRenderCardsKeepsFocusVisible(t *testing.T) {
	now := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	var cards []match.Match
	for i := 0; i < 8; i++ {
		cards = append(cards, match.Match{
			ID:    string(rune('a' + i)),
			Title: "Match " + string(rune('A'+i)),
			Date:  now.Add(time.Duration(i+1) * time.Hour),
		})
	}

	out := RenderCards(cards, 7, now, 80, cardHeight*2)
	if !strings.Contains(out, "Match H") {
		t.Error("focused card should be rendered")
	}
	if strings.Contains(out, "Match A") {
		t.Error("cards above the window should be skipped")
	}
}

func TestRenderCardsEmpty(t *testing.T) {
	if out := RenderCards(nil, 0, time.Now(), 80, 20); !strings.Contains(out, NoMatchesText) {
		t.Errorf("expected %q, got %q", NoMatchesText, out)
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncate me", 5, "trun…"},
		{"日本語テキスト", 4, "日本語…"},
		{"x", 0, ""},
	}

	for _, tt := range tests {
		if got := truncateRunes(tt.in, tt.max); got != tt.want {
			t.Errorf("truncateRunes(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestRenderDropdown(t *testing.T) {
	closed := renderDropdown(match.FilterLive, false, 0)
	if !strings.Contains(closed, "Live Matches 🔴") {
		t.Errorf("button should carry the active label, got %q", closed)
	}
	if strings.Contains(closed, "Popular Matches") {
		t.Error("closed dropdown should not list options")
	}

	open := renderDropdown(match.FilterAll, true, 1)
	for _, want := range []string{"1. All Matches", "2. Popular Matches", "3. Live Matches"} {
		if !strings.Contains(open, want) {
			t.Errorf("open dropdown missing %q", want)
		}
	}
}
