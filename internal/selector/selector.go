// Package selector resolves a mirror source into a playable stream and owns
// the player region.
package selector

import (
	"context"

	"github.com/abelbrown/kickoff/internal/eventloop"
	"github.com/abelbrown/kickoff/internal/logging"
	"github.com/abelbrown/kickoff/internal/match"
)

// Resolver looks up the streams for a source.
type Resolver interface {
	ResolveStreams(ctx context.Context, src match.Source) ([]match.Stream, error)
}

// Status is what the player region shows.
type Status int

const (
	StatusIdle Status = iota
	StatusConnecting
	StatusPlaying
	StatusStreamError
	StatusConnectionFailed
)

// Message is the placeholder text for non-playing states.
func (s Status) Message() string {
	switch s {
	case StatusConnecting:
		return "Connecting..."
	case StatusStreamError:
		return "Stream Error."
	case StatusConnectionFailed:
		return "Connection Failed."
	default:
		return ""
	}
}

// Player is the player region content.
type Player struct {
	Status Status
	Source match.Source
	Stream match.Stream
	Embed  Embed
	// Token identifies the lookup that produced this state.
	Token uint64
}

// Options tunes a Selector.
type Options struct {
	// StrictOrdering discards completions older than the latest lookup.
	// When false the last lookup to complete wins.
	StrictOrdering bool
}

// Selector issues lookups and applies their results on the loop.
type Selector struct {
	resolver Resolver
	exec     eventloop.Executor
	opts     Options

	token   uint64
	resetAt uint64
	player  Player
}

// New creates a Selector.
func New(resolver Resolver, exec eventloop.Executor, opts Options) *Selector {
	return &Selector{resolver: resolver, exec: exec, opts: opts}
}

// Play starts resolving src and returns the lookup token.
func (s *Selector) Play(src match.Source) uint64 {
	s.token++
	tok := s.token
	s.player = Player{Status: StatusConnecting, Source: src, Token: tok}

	s.exec.Go(func(ctx context.Context) func() {
		streams, err := s.resolver.ResolveStreams(ctx, src)
		return func() { s.apply(tok, src, streams, err) }
	})
	return tok
}

func (s *Selector) apply(tok uint64, src match.Source, streams []match.Stream, err error) {
	if tok <= s.resetAt {
		return
	}
	if s.opts.StrictOrdering && tok != s.token {
		logging.Debug("Dropping stale stream lookup", "source", src.Name, "token", tok, "latest", s.token)
		return
	}

	p := Player{Source: src, Token: tok}
	switch {
	case err != nil:
		logging.Warn("Stream lookup failed", "source", src.Name, "id", src.ID, "err", err)
		p.Status = StatusConnectionFailed
	case len(streams) == 0:
		logging.Info("Stream lookup returned nothing", "source", src.Name, "id", src.ID)
		p.Status = StatusStreamError
	default:
		p.Status = StatusPlaying
		p.Stream = streams[0]
		p.Embed = NewEmbed(streams[0].EmbedURL)
	}
	s.player = p
}

// Reset clears the player region. Lookups still in flight are ignored when
// they complete.
func (s *Selector) Reset() {
	s.resetAt = s.token
	s.player = Player{}
}

// Player returns the current player region content.
func (s *Selector) Player() Player {
	return s.player
}
