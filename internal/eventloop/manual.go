package eventloop

import (
	"context"
	"time"
)

// Manual is a deterministic Loop driven by the caller. Time only moves on
// Advance and jobs only run on Complete or Drain.
type Manual struct {
	now   time.Time
	tasks []*manualTask
	jobs  []Job
}

// NewManual creates a Manual loop whose clock starts at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

type manualTask struct {
	interval  time.Duration
	next      time.Time
	fn        func()
	cancelled bool
}

func (t *manualTask) Cancel()         { t.cancelled = true }
func (t *manualTask) Cancelled() bool { return t.cancelled }

// Now is the loop's clock. Pass the method value as a time source.
func (m *Manual) Now() time.Time {
	return m.now
}

// Every registers a task; it first fires one interval from now.
func (m *Manual) Every(interval time.Duration, fn func()) Task {
	t := &manualTask{interval: interval, next: m.now.Add(interval), fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

// Active returns how many tasks are still scheduled.
func (m *Manual) Active() int {
	n := 0
	for _, t := range m.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, firing due tasks in time order.
func (m *Manual) Advance(d time.Duration) {
	target := m.now.Add(d)
	for {
		t := m.nextDue(target)
		if t == nil {
			break
		}
		m.now = t.next
		t.next = t.next.Add(t.interval)
		t.fn()
	}
	m.now = target
	m.prune()
}

func (m *Manual) nextDue(target time.Time) *manualTask {
	var due *manualTask
	for _, t := range m.tasks {
		if t.cancelled || t.next.After(target) {
			continue
		}
		if due == nil || t.next.Before(due.next) {
			due = t
		}
	}
	return due
}

func (m *Manual) prune() {
	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	m.tasks = live
}

// Go queues job until Complete or Drain runs it.
func (m *Manual) Go(job Job) {
	m.jobs = append(m.jobs, job)
}

// Pending returns the number of queued jobs.
func (m *Manual) Pending() int {
	return len(m.jobs)
}

// Complete runs the i-th queued job and its continuation, removing it from
// the queue. Completing out of order simulates responses arriving out of
// order.
func (m *Manual) Complete(i int) {
	job := m.jobs[i]
	m.jobs = append(m.jobs[:i], m.jobs[i+1:]...)
	if cont := job(context.Background()); cont != nil {
		cont()
	}
}

// Drain completes every queued job in submission order, including jobs
// queued by continuations.
func (m *Manual) Drain() {
	for len(m.jobs) > 0 {
		m.Complete(0)
	}
}
