package nav

import "github.com/abelbrown/kickoff/internal/match"

// State is what the directory currently shows.
type State int

const (
	ViewAll State = iota
	ViewPopular
	ViewLive
	ModalOpen
	// ViewUnknown is a filter view for a token outside the known set; it
	// renders an empty list.
	ViewUnknown
)

func (s State) String() string {
	switch s {
	case ViewAll:
		return "all"
	case ViewPopular:
		return "popular"
	case ViewLive:
		return "live"
	case ModalOpen:
		return "modal"
	default:
		return "unknown"
	}
}

// View receives the visible-state changes the Machine decides on.
type View interface {
	ShowFilter(f match.Filter)
	ShowModal()
	// HideModal must tear down any player or timer state.
	HideModal()
}

// Machine is the navigation state machine.
type Machine struct {
	history   History
	view      View
	filter    match.Filter
	modalOpen bool
}

// NewMachine binds a machine to its history and view. Call Start before use.
func NewMachine(h History, v View) *Machine {
	m := &Machine{history: h, view: v, filter: match.FilterAll}
	h.OnNavigate(m.navigated)
	return m
}

// Start replaces the current entry with the boot entry and shows "all", so
// the first back action leaves the directory instead of bouncing within it.
func (m *Machine) Start() {
	m.history.Replace(Entry{})
	m.showFilter(match.FilterAll)
}

// SelectFilter pushes a filter entry and renders it.
func (m *Machine) SelectFilter(f match.Filter) {
	m.history.Push(Entry{Filter: f})
	m.showFilter(f)
}

// OpenModal shows the modal, pushing a modal entry only if it is not open
// already.
func (m *Machine) OpenModal() {
	if !m.modalOpen {
		m.history.Push(Entry{ModalOpen: true})
	}
	m.modalOpen = true
	m.view.ShowModal()
}

// RequestClose goes back through history. The modal is hidden by the
// resulting navigate event, not here. It reports whether history moved.
func (m *Machine) RequestClose() bool {
	return m.history.Back()
}

// Back is the browser back button.
func (m *Machine) Back() bool {
	return m.history.Back()
}

// Forward is the browser forward button.
func (m *Machine) Forward() bool {
	return m.history.Forward()
}

func (m *Machine) navigated(e Entry) {
	switch {
	case m.modalOpen:
		m.modalOpen = false
		m.view.HideModal()
	case e.Filter != "":
		m.showFilter(e.Filter)
	default:
		m.showFilter(match.FilterAll)
	}
}

func (m *Machine) showFilter(f match.Filter) {
	m.filter = f
	m.view.ShowFilter(f)
}

// Filter returns the active filter view; it is kept while the modal is open.
func (m *Machine) Filter() match.Filter {
	return m.filter
}

// IsModalOpen reports whether the modal is showing.
func (m *Machine) IsModalOpen() bool {
	return m.modalOpen
}

// State reports the current state.
func (m *Machine) State() State {
	if m.modalOpen {
		return ModalOpen
	}
	switch m.filter {
	case match.FilterAll:
		return ViewAll
	case match.FilterPopular:
		return ViewPopular
	case match.FilterLive:
		return ViewLive
	default:
		return ViewUnknown
	}
}
