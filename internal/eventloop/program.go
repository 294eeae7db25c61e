package eventloop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Msg is delivered to the Bubble Tea update loop for every timer firing and
// job completion. The root model calls Run from Update.
type Msg interface {
	Run()
}

// Fired is sent each time a scheduled task's interval elapses.
type Fired struct {
	task *programTask
	fn   func()
}

// Run invokes the task callback unless the task was cancelled while the
// message was in flight.
func (f Fired) Run() {
	if f.task.Cancelled() {
		return
	}
	f.fn()
}

// Completed is sent when a job finishes.
type Completed struct {
	fn func()
}

// Run invokes the job continuation.
func (c Completed) Run() {
	c.fn()
}

// Program is a Loop backed by a Bubble Tea program.
type Program struct {
	ctx context.Context

	mu   sync.RWMutex
	send func(tea.Msg)
}

// NewProgram creates a Program. Attach must be called with the program's
// Send before any task fires; messages sent before that are dropped.
func NewProgram(ctx context.Context) *Program {
	return &Program{ctx: ctx}
}

// Attach sets the function used to hand messages to the update loop.
func (p *Program) Attach(send func(tea.Msg)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.send = send
}

func (p *Program) post(msg tea.Msg) {
	p.mu.RLock()
	send := p.send
	p.mu.RUnlock()
	if send != nil {
		send(msg)
	}
}

type programTask struct {
	cancelled atomic.Bool
	done      chan struct{}
	once      sync.Once
}

func (t *programTask) Cancel() {
	t.once.Do(func() {
		t.cancelled.Store(true)
		close(t.done)
	})
}

func (t *programTask) Cancelled() bool {
	return t.cancelled.Load()
}

// Every starts a ticker goroutine that posts a Fired message per interval.
func (p *Program) Every(interval time.Duration, fn func()) Task {
	t := &programTask{done: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-p.ctx.Done():
				return
			case <-t.done:
				return
			case <-ticker.C:
				p.post(Fired{task: t, fn: fn})
			}
		}
	}()
	return t
}

// Go runs job on its own goroutine and posts the continuation.
func (p *Program) Go(job Job) {
	go func() {
		cont := job(p.ctx)
		if cont != nil {
			p.post(Completed{fn: cont})
		}
	}()
}
