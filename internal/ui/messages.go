// Package ui provides the Bubble Tea TUI for kickoff.
package ui

import "github.com/abelbrown/kickoff/internal/match"

// MatchesLoaded is sent when the initial match fetch finishes.
type MatchesLoaded struct {
	Matches []match.Match
	Err     error
}

// BadgesResolved carries the image URL for each team badge id. Badges that
// failed to load map to api.DefaultBadge.
type BadgesResolved struct {
	URLs map[string]string
}

// noticeFade clears the status bar notice.
type noticeFade struct {
	seq int
}
