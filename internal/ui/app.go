package ui

import (
	"context"
	"time"

	"github.com/abelbrown/kickoff/internal/api"
	"github.com/abelbrown/kickoff/internal/eventloop"
	"github.com/abelbrown/kickoff/internal/lifecycle"
	"github.com/abelbrown/kickoff/internal/logging"
	"github.com/abelbrown/kickoff/internal/match"
	"github.com/abelbrown/kickoff/internal/metrics"
	"github.com/abelbrown/kickoff/internal/nav"
	"github.com/abelbrown/kickoff/internal/selector"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// noticeDelay is how long a status bar notice stays visible.
const noticeDelay = 2 * time.Second

// AppConfig holds the collaborators the App is wired to. Provider and Loop
// are required.
type AppConfig struct {
	Context  context.Context
	Provider api.Provider
	Loop     eventloop.Loop
	Now      func() time.Time
	History  nav.History // nil means in-memory
	Player   selector.Options
	Recorder *metrics.Recorder

	// CopyText and OpenURL default to the system clipboard and browser.
	CopyText func(string) error
	OpenURL  func(string) error
}

// session is the directory state shared by every copy of App. The
// navigation machine and lifecycle controller call back into it, so it must
// outlive the value copies Bubble Tea makes on each update.
type session struct {
	now     func() time.Time
	store   *match.Store
	machine *nav.Machine
	life    *lifecycle.Controller
	player  *selector.Selector

	shown       match.Filter
	cards       []match.Match
	focus       int
	serverFocus int

	dropdownOpen   bool
	dropdownCursor int
}

// ShowFilter implements nav.View.
func (s *session) ShowFilter(f match.Filter) {
	s.shown = f
	s.cards = s.store.Filter(f, s.now())
	s.focus = 0
}

// ShowModal implements nav.View.
func (s *session) ShowModal() {
	s.dropdownOpen = false
}

// HideModal implements nav.View.
func (s *session) HideModal() {
	s.serverFocus = 0
	s.life.Close()
}

// OpenModal implements lifecycle.Modal.
func (s *session) OpenModal() {
	s.machine.OpenModal()
}

// App is the root Bubble Tea model.
type App struct {
	ctx      context.Context
	provider api.Provider
	recorder *metrics.Recorder
	copyText func(string) error
	openURL  func(string) error

	s       *session
	keys    keyMap
	help    help.Model
	spinner spinner.Model

	loading   bool
	err       error
	badges    map[string]string
	notice    string
	noticeSeq int
	width     int
	height    int
	ready     bool
}

// NewApp wires the navigation machine, lifecycle controller and stream
// selector together and starts navigation on the "all" view.
func NewApp(cfg AppConfig) App {
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.History == nil {
		cfg.History = nav.NewMemoryHistory()
	}
	if cfg.CopyText == nil {
		cfg.CopyText = clipboard.WriteAll
	}
	if cfg.OpenURL == nil {
		cfg.OpenURL = openBrowser
	}

	s := &session{now: cfg.Now}
	s.machine = nav.NewMachine(cfg.History, s)
	s.player = selector.New(cfg.Provider, cfg.Loop, cfg.Player)
	s.life = lifecycle.New(cfg.Loop, cfg.Now, s, s.player)
	s.machine.Start()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorHighlight)

	return App{
		ctx:      cfg.Context,
		provider: cfg.Provider,
		recorder: cfg.Recorder,
		copyText: cfg.CopyText,
		openURL:  cfg.OpenURL,
		s:        s,
		keys:     defaultKeyMap(),
		help:     help.New(),
		spinner:  sp,
		loading:  true,
		badges:   make(map[string]string),
	}
}

// Init starts the match fetch.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.loadMatches(), a.spinner.Tick)
}

func (a App) loadMatches() tea.Cmd {
	ctx, provider := a.ctx, a.provider
	return func() tea.Msg {
		matches, err := provider.FetchMatches(ctx)
		return MatchesLoaded{Matches: matches, Err: err}
	}
}

// resolveBadges checks each distinct team badge once.
func (a App) resolveBadges(matches []match.Match) tea.Cmd {
	teams := make(map[string]*match.Team)
	for _, m := range matches {
		if m.Teams == nil {
			continue
		}
		for _, t := range []*match.Team{m.Teams.Home, m.Teams.Away} {
			if t != nil && t.Badge != "" {
				teams[t.Badge] = t
			}
		}
	}
	if len(teams) == 0 {
		return nil
	}

	ctx, provider := a.ctx, a.provider
	return func() tea.Msg {
		urls := make(map[string]string, len(teams))
		for id, t := range teams {
			urls[id] = provider.ResolveBadge(ctx, t)
		}
		return BadgesResolved{URLs: urls}
	}
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.ready = true
		return a, nil

	case MatchesLoaded:
		a.loading = false
		if msg.Err != nil {
			logging.Error("Match fetch failed", "err", msg.Err)
			a.err = msg.Err
			msg.Matches = nil
		} else {
			a.err = nil
		}
		a.s.store = match.NewStore(msg.Matches, a.s.now())
		a.s.ShowFilter(a.s.shown)
		logging.Info("Matches loaded", "fetched", len(msg.Matches), "listed", a.s.store.Len())
		return a, a.resolveBadges(a.s.store.All())

	case BadgesResolved:
		for id, u := range msg.URLs {
			a.badges[id] = u
		}
		return a, nil

	case eventloop.Msg:
		msg.Run()
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case noticeFade:
		if msg.seq == a.noticeSeq {
			a.notice = ""
		}
		return a, nil
	}

	return a, nil
}

// handleKeyMsg processes remote and keyboard input.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := a.s
	k := a.keys

	if key.Matches(msg, k.Quit) {
		return a, tea.Quit
	}

	if s.dropdownOpen {
		switch {
		case key.Matches(msg, k.Up):
			if s.dropdownCursor > 0 {
				s.dropdownCursor--
			}
			return a, nil
		case key.Matches(msg, k.Down):
			if s.dropdownCursor < len(match.Filters)-1 {
				s.dropdownCursor++
			}
			return a, nil
		case key.Matches(msg, k.Confirm):
			s.dropdownOpen = false
			s.machine.SelectFilter(match.Filters[s.dropdownCursor])
			return a, nil
		}
		if f, ok := digitFilter(msg); ok {
			s.dropdownOpen = false
			s.machine.SelectFilter(f)
			return a, nil
		}
		// Any other action closes the menu; toggle and dismiss stop there.
		s.dropdownOpen = false
		if key.Matches(msg, k.Filter, k.Dismiss) {
			return a, nil
		}
	}

	switch {
	case key.Matches(msg, k.Back):
		if !s.machine.Back() {
			logging.Info("History exhausted, leaving")
			return a, tea.Quit
		}
		return a, nil

	case key.Matches(msg, k.Forward):
		s.machine.Forward()
		return a, nil

	case key.Matches(msg, k.Dismiss, k.Close):
		if s.machine.IsModalOpen() {
			s.machine.RequestClose()
		}
		return a, nil

	case key.Matches(msg, k.Filter):
		if !s.machine.IsModalOpen() {
			s.dropdownOpen = true
			s.dropdownCursor = filterIndex(s.shown)
		}
		return a, nil

	case key.Matches(msg, k.Up, k.Left):
		a.moveFocus(-1)
		return a, nil

	case key.Matches(msg, k.Down, k.Right):
		a.moveFocus(1)
		return a, nil

	case key.Matches(msg, k.Confirm):
		a.confirm()
		return a, nil

	case key.Matches(msg, k.Copy):
		return a.withEmbed(a.copyText, "Copied stream link", "Copy failed")

	case key.Matches(msg, k.Open):
		return a.withEmbed(a.openURL, "Opened in browser", "Could not open browser")
	}

	return a, nil
}

// moveFocus steps over server buttons in the modal, cards otherwise.
func (a App) moveFocus(delta int) {
	s := a.s
	if s.machine.IsModalOpen() {
		n := len(s.life.Servers())
		s.serverFocus = clamp(s.serverFocus+delta, n)
		return
	}
	s.focus = clamp(s.focus+delta, len(s.cards))
}

// confirm activates the focused element.
func (a App) confirm() {
	s := a.s
	if s.machine.IsModalOpen() {
		if s.life.Mode() == lifecycle.ModeLive {
			s.life.SelectServer(s.serverFocus)
		}
		return
	}
	if s.focus < 0 || s.focus >= len(s.cards) {
		return
	}
	m := s.cards[s.focus]
	logging.Debug("Opening match", "id", m.ID, "title", m.Title)
	s.life.Open(m)
}

// withEmbed hands the playing embed URL to fn and flashes the outcome.
func (a App) withEmbed(fn func(string) error, ok, failed string) (tea.Model, tea.Cmd) {
	p := a.s.player.Player()
	if !a.s.machine.IsModalOpen() || p.Status != selector.StatusPlaying {
		return a, nil
	}
	if err := fn(p.Embed.URL); err != nil {
		logging.Warn(failed, "url", p.Embed.URL, "err", err)
		return a.flash(failed)
	}
	return a.flash(ok)
}

func (a App) flash(text string) (tea.Model, tea.Cmd) {
	a.noticeSeq++
	a.notice = text
	seq := a.noticeSeq
	return a, tea.Tick(noticeDelay, func(time.Time) tea.Msg {
		return noticeFade{seq: seq}
	})
}

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return LoadingText
	}

	s := a.s
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		Header.Render("kickoff"), " ",
		renderDropdown(s.shown, s.dropdownOpen, s.dropdownCursor),
	)
	status := a.statusBar()
	bodyHeight := a.height - lipgloss.Height(header) - lipgloss.Height(status)

	var body string
	switch {
	case s.machine.IsModalOpen():
		body = renderModal(a.modalView(), a.width)
	case a.loading:
		body = HelpStyle.Render(a.spinner.View() + " " + LoadingText)
	case a.err != nil:
		body = ErrorStyle.Render(ConnectionText)
	case s.store.Len() == 0:
		body = HelpStyle.Render(NoUpcomingText)
	default:
		body = RenderCards(s.cards, s.focus, s.now(), a.width, bodyHeight)
	}

	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func (a App) modalView() modalView {
	s := a.s
	m, _ := s.life.Match()
	return modalView{
		match:       m,
		mode:        s.life.Mode(),
		remaining:   s.life.Remaining(),
		servers:     s.life.Servers(),
		player:      s.player.Player(),
		serverFocus: s.serverFocus,
		badges:      a.badges,
	}
}

func (a App) statusBar() string {
	left := a.notice
	if left == "" {
		left = a.help.View(a.keys)
	}
	if stats := statsSummary(a.recorder); stats != "" {
		left += "  " + StatusBarText.Render(stats)
	}
	return StatusBar.Width(a.width).Render(left)
}

// digitFilter maps 1..n to the dropdown entries.
func digitFilter(msg tea.KeyMsg) (match.Filter, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return "", false
	}
	i := int(msg.Runes[0] - '1')
	if i < 0 || i >= len(match.Filters) {
		return "", false
	}
	return match.Filters[i], true
}

func filterIndex(f match.Filter) int {
	for i, candidate := range match.Filters {
		if candidate == f {
			return i
		}
	}
	return 0
}

func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Filter returns the filter currently rendered (for testing).
func (a App) Filter() match.Filter {
	return a.s.shown
}

// Cards returns the rendered cards (for testing).
func (a App) Cards() []match.Match {
	return a.s.cards
}

// Focus returns the focused card index (for testing).
func (a App) Focus() int {
	return a.s.focus
}

// ServerFocus returns the focused server button (for testing).
func (a App) ServerFocus() int {
	return a.s.serverFocus
}

// ModalVisible reports whether the match overlay is shown.
func (a App) ModalVisible() bool {
	return a.s.machine.IsModalOpen()
}

// DropdownOpen reports whether the filter menu is open.
func (a App) DropdownOpen() bool {
	return a.s.dropdownOpen
}

// Lifecycle exposes the match lifecycle controller (for testing).
func (a App) Lifecycle() *lifecycle.Controller {
	return a.s.life
}

// Player returns the player region content.
func (a App) Player() selector.Player {
	return a.s.player.Player()
}

// Navigation exposes the navigation machine (for testing).
func (a App) Navigation() *nav.Machine {
	return a.s.machine
}

// Loading reports whether the initial fetch is still running.
func (a App) Loading() bool {
	return a.loading
}

// Err returns the fetch error, if any.
func (a App) Err() error {
	return a.err
}

// Notice returns the status bar notice.
func (a App) Notice() string {
	return a.notice
}

// Badges returns resolved badge URLs by badge id.
func (a App) Badges() map[string]string {
	return a.badges
}
