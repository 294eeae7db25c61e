package ui

import (
	"testing"

	"github.com/abelbrown/kickoff/internal/api"
	"github.com/abelbrown/kickoff/internal/match"
)

func TestBadgeLines(t *testing.T) {
	m := match.Match{Teams: &match.Teams{
		Home: &match.Team{Name: "Barcelona", Badge: "barcelona"},
		Away: &match.Team{Name: "Sevilla"},
	}}

	tests := []struct {
		name   string
		badges map[string]string
		want   string
	}{
		{
			name:   "resolved and missing",
			badges: map[string]string{"barcelona": "https://badges.example/barcelona.webp"},
			want:   "Barcelona: https://badges.example/barcelona.webp\nSevilla: " + api.DefaultBadge,
		},
		{
			name: "still resolving",
			want: "Sevilla: " + api.DefaultBadge,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := badgeLines(m, tt.badges); got != tt.want {
				t.Errorf("badgeLines() = %q, want %q", got, tt.want)
			}
		})
	}

	if got := badgeLines(match.Match{}, nil); got != "" {
		t.Errorf("match without teams should have no badges, got %q", got)
	}
}
