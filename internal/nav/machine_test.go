package nav

import (
	"testing"

	"github.com/abelbrown/kickoff/internal/match"
)

// recordingView captures the visible-state calls the machine makes.
type recordingView struct {
	filters []match.Filter
	shown   int
	hidden  int
	visible bool
}

func (v *recordingView) ShowFilter(f match.Filter) { v.filters = append(v.filters, f) }
func (v *recordingView) ShowModal()                { v.shown++; v.visible = true }
func (v *recordingView) HideModal()                { v.hidden++; v.visible = false }

func (v *recordingView) lastFilter() match.Filter {
	if len(v.filters) == 0 {
		return ""
	}
	return v.filters[len(v.filters)-1]
}

func newTestMachine() (*Machine, *MemoryHistory, *recordingView) {
	h := NewMemoryHistory()
	v := &recordingView{}
	m := NewMachine(h, v)
	m.Start()
	return m, h, v
}

func TestStartReplacesBootEntry(t *testing.T) {
	m, h, v := newTestMachine()

	if h.Len() != 1 {
		t.Fatalf("start should replace, not push; history has %d entries", h.Len())
	}
	if h.Current() != (Entry{}) {
		t.Errorf("boot entry should carry no filter, got %+v", h.Current())
	}
	if m.State() != ViewAll || v.lastFilter() != match.FilterAll {
		t.Errorf("expected all view, got state=%v filter=%q", m.State(), v.lastFilter())
	}
	if m.Back() {
		t.Error("first back should leave the directory")
	}
}

func TestSelectFilterPushes(t *testing.T) {
	m, h, v := newTestMachine()

	m.SelectFilter(match.FilterPopular)
	m.SelectFilter(match.FilterLive)

	if h.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", h.Len())
	}
	if m.State() != ViewLive {
		t.Errorf("expected live view, got %v", m.State())
	}
	if h.Current().Filter != match.FilterLive {
		t.Errorf("current entry should be the live filter, got %+v", h.Current())
	}
	if v.shown != 0 {
		t.Error("selecting filters should not open the modal")
	}
}

func TestBackReRendersFilterWithoutPushing(t *testing.T) {
	m, h, v := newTestMachine()
	m.SelectFilter(match.FilterPopular)
	m.SelectFilter(match.FilterLive)

	if !m.Back() {
		t.Fatal("back should succeed")
	}
	if m.State() != ViewPopular || v.lastFilter() != match.FilterPopular {
		t.Errorf("expected popular after back, got %v", m.State())
	}
	if h.Len() != 3 {
		t.Errorf("navigation must not write history, got %d entries", h.Len())
	}

	// Landing on the boot entry defaults to all.
	m.Back()
	if m.State() != ViewAll {
		t.Errorf("boot entry should render all, got %v", m.State())
	}
}

func TestOpenModalIsReentrant(t *testing.T) {
	m, h, v := newTestMachine()

	m.OpenModal()
	m.OpenModal()

	if h.Len() != 2 {
		t.Errorf("reentrant open must not push twice, got %d entries", h.Len())
	}
	if v.shown != 2 {
		t.Errorf("both opens should refresh the modal, got %d", v.shown)
	}
	if m.State() != ModalOpen {
		t.Errorf("expected modal state, got %v", m.State())
	}
}

func TestModalBackRoundTrip(t *testing.T) {
	for _, f := range match.Filters {
		t.Run(string(f), func(t *testing.T) {
			m, _, v := newTestMachine()
			m.SelectFilter(f)

			m.OpenModal()
			m.Back()

			if m.IsModalOpen() || v.visible {
				t.Fatal("back should hide the modal")
			}
			if m.Filter() != f {
				t.Errorf("expected %q after round trip, got %q", f, m.Filter())
			}
			if v.hidden != 1 {
				t.Errorf("expected one teardown, got %d", v.hidden)
			}
		})
	}
}

func TestRequestCloseHidesOnlyViaNavigation(t *testing.T) {
	h := NewMemoryHistory()
	v := &recordingView{}
	m := NewMachine(h, v)
	m.Start()
	m.OpenModal()

	// Detach the handler: with no navigate event the modal must stay open.
	h.OnNavigate(nil)
	m.RequestClose()
	if !m.IsModalOpen() || v.hidden != 0 {
		t.Fatal("close must not hide the modal without a navigate event")
	}
}

func TestRequestCloseSharesBackPath(t *testing.T) {
	m, h, v := newTestMachine()
	m.SelectFilter(match.FilterLive)
	m.OpenModal()

	if !m.RequestClose() {
		t.Fatal("close should move history")
	}
	if m.IsModalOpen() {
		t.Error("close should hide the modal")
	}
	if h.Current().Filter != match.FilterLive || m.State() != ViewLive {
		t.Errorf("expected to land on live, got entry=%+v state=%v", h.Current(), m.State())
	}
	if v.hidden != 1 {
		t.Errorf("expected exactly one hide, got %d", v.hidden)
	}
}

func TestForwardOntoModalEntryShowsAll(t *testing.T) {
	m, _, _ := newTestMachine()
	m.SelectFilter(match.FilterPopular)
	m.OpenModal()
	m.Back()

	// The modal entry carries no filter; landing on it with the modal hidden
	// falls back to all.
	if !m.Forward() {
		t.Fatal("forward should succeed")
	}
	if m.IsModalOpen() {
		t.Error("forward must not reopen the modal")
	}
	if m.State() != ViewAll {
		t.Errorf("expected all, got %v", m.State())
	}
}

func TestPushDropsForwardEntries(t *testing.T) {
	m, h, _ := newTestMachine()
	m.SelectFilter(match.FilterPopular)
	m.SelectFilter(match.FilterLive)
	m.Back()
	m.Back()

	m.SelectFilter(match.FilterLive)

	if h.Len() != 2 {
		t.Errorf("expected forward entries to be dropped, got %d", h.Len())
	}
	if m.Forward() {
		t.Error("nothing should be ahead after a push")
	}
}

func TestUnknownFilterState(t *testing.T) {
	m, _, v := newTestMachine()
	m.SelectFilter(match.Filter("finished"))
	if m.State() != ViewUnknown {
		t.Errorf("expected unknown view, got %v", m.State())
	}
	if v.lastFilter() != "finished" {
		t.Errorf("unknown token should still be rendered, got %q", v.lastFilter())
	}
}
