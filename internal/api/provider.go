package api

import (
	"context"

	"github.com/abelbrown/kickoff/internal/match"
)

// Provider is everything the directory needs from upstream.
type Provider interface {
	FetchMatches(ctx context.Context) ([]match.Match, error)
	ResolveStreams(ctx context.Context, src match.Source) ([]match.Stream, error)
	ResolveBadge(ctx context.Context, team *match.Team) string
}

var _ Provider = (*Client)(nil)
