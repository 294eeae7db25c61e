// Package fixture is an offline provider with a deterministic match list,
// used for demos and tests.
package fixture

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abelbrown/kickoff/internal/api"
	"github.com/abelbrown/kickoff/internal/match"
)

// Source names with special behaviour.
const (
	SourceEmpty = "empty"
	SourceDown  = "down"
)

// Provider serves fixtures relative to its clock.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider on the wall clock.
func New() *Provider {
	return &Provider{now: time.Now}
}

// NewAt creates a fixture provider on the given clock.
func NewAt(now func() time.Time) *Provider {
	return &Provider{now: now}
}

var _ api.Provider = (*Provider)(nil)

// FetchMatches returns a mix of live, imminent, later, sourceless and ended
// matches.
func (p *Provider) FetchMatches(ctx context.Context) ([]match.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, &api.TransportError{Op: "fetch matches", URL: "fixture://matches", Err: err}
	}
	now := p.now().Truncate(time.Second)

	mirrors := func(id string) []match.Source {
		return []match.Source{
			{Name: "alpha", ID: id},
			{Name: "bravo", ID: id},
			{Name: SourceEmpty, ID: id},
			{Name: SourceDown, ID: id},
		}
	}
	team := func(name, badge string) *match.Team { return &match.Team{Name: name, Badge: badge} }

	return []match.Match{
		{
			ID: "fixture-live", Title: "Arsenal vs Chelsea", Category: "football",
			Date: now.Add(-35 * time.Minute), Popular: true,
			Teams:   &match.Teams{Home: team("Arsenal", "arsenal"), Away: team("Chelsea", "chelsea")},
			Sources: mirrors("ars-che"),
		},
		{
			ID: "fixture-soon", Title: "Barcelona vs Sevilla", Category: "football",
			Date:    now.Add(90 * time.Second),
			Teams:   &match.Teams{Home: team("Barcelona", "barcelona"), Away: team("Sevilla", "")},
			Sources: mirrors("bar-sev"),
		},
		{
			ID: "fixture-tonight", Title: "Inter vs Milan", Category: "football",
			Date: now.Add(3*time.Hour + 20*time.Minute), Popular: true,
			Teams:   &match.Teams{Home: team("Inter", "inter"), Away: team("Milan", "milan")},
			Sources: mirrors("int-mil"),
		},
		{
			ID: "fixture-tomorrow", Title: "Ajax vs PSV", Category: "football",
			Date:    now.Add(26 * time.Hour),
			Sources: mirrors("aja-psv"),
		},
		{
			ID: "fixture-dry", Title: "Celtic vs Rangers", Category: "football",
			Date: now.Add(-10 * time.Minute),
		},
		{
			ID: "fixture-ended", Title: "Porto vs Benfica", Category: "football",
			Date:    now.Add(-4 * time.Hour),
			Sources: mirrors("por-ben"),
		},
	}, nil
}

// ResolveStreams returns one stream per ordinary mirror, nothing for
// SourceEmpty and a transport failure for SourceDown.
func (p *Provider) ResolveStreams(ctx context.Context, src match.Source) ([]match.Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, &api.TransportError{Op: "resolve stream", URL: "fixture://" + src.ID, Err: err}
	}
	switch src.Name {
	case SourceEmpty:
		return []match.Stream{}, nil
	case SourceDown:
		return nil, &api.TransportError{Op: "resolve stream", URL: "fixture://" + src.ID, Err: errors.New("connection refused")}
	}
	return []match.Stream{
		{
			ID:       fmt.Sprintf("%s-%s-1", src.Name, src.ID),
			StreamNo: 1,
			Language: "English",
			HD:       true,
			EmbedURL: fmt.Sprintf("https://embed.example/%s/%s/1", src.Name, src.ID),
			Source:   src.Name,
		},
	}, nil
}

// ResolveBadge returns a fixture image for teams with a badge.
func (p *Provider) ResolveBadge(_ context.Context, team *match.Team) string {
	if team == nil || team.Badge == "" {
		return api.DefaultBadge
	}
	return "https://badges.example/" + team.Badge + ".webp"
}
