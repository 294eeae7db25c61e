// Package match holds the match directory domain: matches, teams, mirror
// sources and the read-only store the UI filters over.
package match

import "time"

// LiveWindow is how long after kickoff a match is still considered watchable.
// Matches whose kickoff plus LiveWindow is in the past are dropped at load.
const LiveWindow = 150 * time.Minute

// Team is one side of a match. Badge is the upstream badge identifier.
type Team struct {
	Name  string `json:"name"`
	Badge string `json:"badge"`
}

// Teams pairs the home and away sides. Either side may be missing upstream.
type Teams struct {
	Home *Team `json:"home,omitempty"`
	Away *Team `json:"away,omitempty"`
}

// Source identifies one mirror that can be resolved into streams.
type Source struct {
	Name string `json:"source"`
	ID   string `json:"id"`
}

// Stream is a resolved, embeddable stream for a source.
type Stream struct {
	ID       string `json:"id"`
	StreamNo int    `json:"streamNo"`
	Language string `json:"language"`
	HD       bool   `json:"hd"`
	EmbedURL string `json:"embedUrl"`
	Source   string `json:"source"`
}

// Match is a single fixture as listed by the directory.
type Match struct {
	ID       string
	Title    string
	Category string
	Date     time.Time
	Poster   string
	Popular  bool
	Teams    *Teams
	Sources  []Source
}

// End returns the time after which the match is no longer listed.
func (m Match) End() time.Time {
	return m.Date.Add(LiveWindow)
}

// Started reports whether kickoff is at or before now.
func (m Match) Started(now time.Time) bool {
	return !now.Before(m.Date)
}

// HasSources reports whether the match has any mirror to play.
func (m Match) HasSources() bool {
	return len(m.Sources) > 0
}
