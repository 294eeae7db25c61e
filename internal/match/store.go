package match

import "time"

// Store is the immutable list of matches fetched at startup.
// Order is the upstream order and is preserved by every query.
type Store struct {
	matches []Match
	byID    map[string]int
}

// NewStore keeps the matches whose End is strictly after now.
func NewStore(matches []Match, now time.Time) *Store {
	s := &Store{
		matches: make([]Match, 0, len(matches)),
		byID:    make(map[string]int, len(matches)),
	}
	for _, m := range matches {
		if !m.End().After(now) {
			continue
		}
		if m.ID != "" {
			s.byID[m.ID] = len(s.matches)
		}
		s.matches = append(s.matches, m)
	}
	return s
}

// Len returns the number of listed matches. Safe on a nil store.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.matches)
}

// All returns a copy of every listed match.
func (s *Store) All() []Match {
	if s == nil {
		return nil
	}
	out := make([]Match, len(s.matches))
	copy(out, s.matches)
	return out
}

// Get looks a match up by ID.
func (s *Store) Get(id string) (Match, bool) {
	if s == nil {
		return Match{}, false
	}
	i, ok := s.byID[id]
	if !ok {
		return Match{}, false
	}
	return s.matches[i], true
}

// Filter derives the visible subset for f. Unknown tokens yield nothing.
func (s *Store) Filter(f Filter, now time.Time) []Match {
	if s == nil {
		return nil
	}
	switch f {
	case FilterAll:
		return s.All()
	case FilterPopular:
		return s.where(func(m Match) bool { return m.Popular })
	case FilterLive:
		return s.where(func(m Match) bool { return m.Started(now) })
	default:
		return []Match{}
	}
}

func (s *Store) where(keep func(Match) bool) []Match {
	out := make([]Match, 0, len(s.matches))
	for _, m := range s.matches {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
