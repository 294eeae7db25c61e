package api

import (
	"time"

	"github.com/abelbrown/kickoff/internal/match"
)

// apiTeam mirrors a team in the match list response.
type apiTeam struct {
	Name  string `json:"name"`
	Badge string `json:"badge"`
}

// apiMatch mirrors one element of GET /api/matches/{sport}. Date is unix
// milliseconds.
type apiMatch struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Date     int64  `json:"date"`
	Poster   string `json:"poster"`
	Popular  bool   `json:"popular"`
	Teams    *struct {
		Home *apiTeam `json:"home"`
		Away *apiTeam `json:"away"`
	} `json:"teams"`
	Sources []match.Source `json:"sources"`
}

func (a apiMatch) toMatch() match.Match {
	m := match.Match{
		ID:       a.ID,
		Title:    a.Title,
		Category: a.Category,
		Date:     time.UnixMilli(a.Date),
		Poster:   a.Poster,
		Popular:  a.Popular,
		Sources:  a.Sources,
	}
	if a.Teams != nil && (a.Teams.Home != nil || a.Teams.Away != nil) {
		m.Teams = &match.Teams{Home: a.Teams.Home.toTeam(), Away: a.Teams.Away.toTeam()}
	}
	return m
}

func (t *apiTeam) toTeam() *match.Team {
	if t == nil {
		return nil
	}
	return &match.Team{Name: t.Name, Badge: t.Badge}
}
