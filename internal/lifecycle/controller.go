// Package lifecycle decides, per match, between the pre-kickoff countdown
// and the live player, and owns the countdown timer.
package lifecycle

import (
	"fmt"
	"time"

	"github.com/abelbrown/kickoff/internal/eventloop"
	"github.com/abelbrown/kickoff/internal/logging"
	"github.com/abelbrown/kickoff/internal/match"
)

// Mode is what the modal body shows.
type Mode int

const (
	ModeIdle Mode = iota
	ModeCountdown
	ModeLive
	ModeNoStreams
)

func (m Mode) String() string {
	switch m {
	case ModeCountdown:
		return "countdown"
	case ModeLive:
		return "live"
	case ModeNoStreams:
		return "no-streams"
	default:
		return "idle"
	}
}

// NoStreamsMessage is shown for a live match without sources.
const NoStreamsMessage = "No streams yet."

// Modal is opened on every entry into countdown or live. Opening an already
// open modal must be a no-op for history.
type Modal interface {
	OpenModal()
}

// Player plays sources; the stream selector implements it.
type Player interface {
	Play(src match.Source) uint64
	Reset()
}

// Server is one mirror button in the live view.
type Server struct {
	Index  int
	Label  string
	Source match.Source
	Active bool
}

// Controller drives one match at a time.
type Controller struct {
	sched  eventloop.Scheduler
	now    func() time.Time
	modal  Modal
	player Player

	task      eventloop.Task
	current   *match.Match
	mode      Mode
	remaining Remaining
	active    int
}

// New creates a Controller. now is the clock used for every decision.
func New(sched eventloop.Scheduler, now func() time.Time, modal Modal, player Player) *Controller {
	return &Controller{
		sched:  sched,
		now:    now,
		modal:  modal,
		player: player,
		active: -1,
	}
}

// Open shows m: a countdown before kickoff, the player after.
func (c *Controller) Open(m match.Match) {
	if c.now().Before(m.Date) {
		c.startCountdown(m)
		return
	}
	c.goLive(m)
}

func (c *Controller) startCountdown(m match.Match) {
	c.stopTimer()
	c.modal.OpenModal()
	c.player.Reset()
	c.current = &m
	c.mode = ModeCountdown
	c.active = -1

	if c.tick() {
		return
	}
	c.task = c.sched.Every(time.Second, func() { c.tick() })
	logging.Debug("Countdown started", "match", m.Title, "remaining", c.remaining.String())
}

// tick refreshes the countdown and reports whether it promoted to live.
func (c *Controller) tick() bool {
	if c.current == nil || c.mode != ModeCountdown {
		return false
	}
	d := c.current.Date.Sub(c.now())
	if d < 0 {
		c.stopTimer()
		logging.Info("Kickoff reached, switching to live", "match", c.current.Title)
		c.goLive(*c.current)
		return true
	}
	c.remaining = Decompose(d)
	return false
}

func (c *Controller) goLive(m match.Match) {
	c.stopTimer()
	c.modal.OpenModal()
	c.player.Reset()
	c.current = &m
	c.remaining = Remaining{}

	if !m.HasSources() {
		c.mode = ModeNoStreams
		c.active = -1
		return
	}
	c.mode = ModeLive
	c.active = 0
	c.player.Play(m.Sources[0])
}

// SelectServer switches to the i-th mirror. It reports false when there is
// no live player or i is out of range.
func (c *Controller) SelectServer(i int) bool {
	if c.mode != ModeLive || c.current == nil || i < 0 || i >= len(c.current.Sources) {
		return false
	}
	c.active = i
	c.player.Play(c.current.Sources[i])
	return true
}

// Close tears everything down. Safe to call with nothing open.
func (c *Controller) Close() {
	c.stopTimer()
	c.player.Reset()
	c.current = nil
	c.mode = ModeIdle
	c.remaining = Remaining{}
	c.active = -1
}

func (c *Controller) stopTimer() {
	eventloop.Cancel(c.task)
	c.task = nil
}

// Mode returns the current display mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Match returns the match being shown.
func (c *Controller) Match() (match.Match, bool) {
	if c.current == nil {
		return match.Match{}, false
	}
	return *c.current, true
}

// Remaining returns the last computed countdown.
func (c *Controller) Remaining() Remaining {
	return c.remaining
}

// TimerActive reports whether a countdown task is scheduled.
func (c *Controller) TimerActive() bool {
	return c.task != nil && !c.task.Cancelled()
}

// ActiveServer returns the index of the active mirror, or -1.
func (c *Controller) ActiveServer() int {
	return c.active
}

// Servers lists the mirror buttons for the live view.
func (c *Controller) Servers() []Server {
	if c.mode != ModeLive || c.current == nil {
		return nil
	}
	out := make([]Server, len(c.current.Sources))
	for i, src := range c.current.Sources {
		out[i] = Server{
			Index:  i,
			Label:  fmt.Sprintf("Stream %d", i+1),
			Source: src,
			Active: i == c.active,
		}
	}
	return out
}
