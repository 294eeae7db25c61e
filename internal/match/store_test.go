package match

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 10, 14, 18, 0, 0, 0, time.UTC)

func testMatches() []Match {
	return []Match{
		{ID: "ended", Title: "Old vs Gone", Date: testNow.Add(-3 * time.Hour)},
		{ID: "edge", Title: "Edge vs Case", Date: testNow.Add(-LiveWindow)},
		{ID: "live-pop", Title: "A vs B", Date: testNow.Add(-30 * time.Minute), Popular: true},
		{ID: "kickoff", Title: "C vs D", Date: testNow},
		{ID: "later", Title: "E vs F", Date: testNow.Add(2 * time.Hour)},
		{ID: "later-pop", Title: "G vs H", Date: testNow.Add(3 * time.Hour), Popular: true},
	}
}

func ids(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.ID
	}
	return out
}

func equalIDs(t *testing.T, got []Match, want ...string) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("expected %v, got %v", want, g)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, g)
		}
	}
}

func TestNewStoreDropsEndedMatches(t *testing.T) {
	s := NewStore(testMatches(), testNow)

	// "edge" ends exactly now, which is not strictly after now.
	equalIDs(t, s.All(), "live-pop", "kickoff", "later", "later-pop")

	if _, ok := s.Get("ended"); ok {
		t.Error("ended match should not be retrievable")
	}
	if m, ok := s.Get("later"); !ok || m.Title != "E vs F" {
		t.Errorf("expected to find later match, got %+v ok=%v", m, ok)
	}
}

func TestFilterAllPreservesOrder(t *testing.T) {
	s := NewStore(testMatches(), testNow)
	equalIDs(t, s.Filter(FilterAll, testNow), "live-pop", "kickoff", "later", "later-pop")
}

func TestFilterPopularIsSubsetOfAll(t *testing.T) {
	s := NewStore(testMatches(), testNow)
	all := map[string]bool{}
	for _, m := range s.Filter(FilterAll, testNow) {
		all[m.ID] = true
	}

	popular := s.Filter(FilterPopular, testNow)
	equalIDs(t, popular, "live-pop", "later-pop")
	for _, m := range popular {
		if !all[m.ID] {
			t.Errorf("popular match %s missing from all", m.ID)
		}
		if !m.Popular {
			t.Errorf("non-popular match %s in popular view", m.ID)
		}
	}
}

func TestFilterLiveUsesStartTime(t *testing.T) {
	s := NewStore(testMatches(), testNow)
	equalIDs(t, s.Filter(FilterLive, testNow), "live-pop", "kickoff")

	// Two hours on, "later" has kicked off as well.
	equalIDs(t, s.Filter(FilterLive, testNow.Add(2*time.Hour)), "live-pop", "kickoff", "later")
}

func TestFilterUnknownTokenIsEmpty(t *testing.T) {
	s := NewStore(testMatches(), testNow)
	got := s.Filter(Filter("finished"), testNow)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %v", got)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	s := NewStore(testMatches(), testNow)
	all := s.All()
	all[0].Title = "mutated"
	if s.All()[0].Title == "mutated" {
		t.Error("All should not expose the store's backing slice")
	}
}

func TestNilStore(t *testing.T) {
	var s *Store
	if s.Len() != 0 {
		t.Error("nil store should have length 0")
	}
	if got := s.Filter(FilterAll, testNow); len(got) != 0 {
		t.Errorf("nil store should filter to nothing, got %v", got)
	}
}

func TestParseFilter(t *testing.T) {
	for _, raw := range []string{"all", "popular", "live"} {
		if f, ok := ParseFilter(raw); !ok || string(f) != raw {
			t.Errorf("ParseFilter(%q) = %q, %v", raw, f, ok)
		}
	}
	if _, ok := ParseFilter("LIVE"); ok {
		t.Error("tokens are case sensitive")
	}
}

func TestMatchStarted(t *testing.T) {
	m := Match{Date: testNow}
	if !m.Started(testNow) {
		t.Error("match should count as started at kickoff")
	}
	if m.Started(testNow.Add(-time.Second)) {
		t.Error("match should not be started before kickoff")
	}
	if got := m.End(); !got.Equal(testNow.Add(150 * time.Minute)) {
		t.Errorf("unexpected end %v", got)
	}
}
