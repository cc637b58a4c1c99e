// Package ticker drives recurring writes into cascade source handles. Tasks
// are placed on a single timer wheel and run on one goroutine, so cascades
// triggered by them never overlap; a graph written by a driver must not be
// mutated from other goroutines while the driver runs.
package ticker

import (
	"sync"
	"time"
)

const defaultSlots = 64

type task struct {
	id     uint64
	rounds int
	period int // in ticks; 0 for one-shot tasks
	fn     func()
}

// Driver owns the wheel. The zero value is not usable; construct with New.
type Driver struct {
	resolution time.Duration

	mu     sync.Mutex
	slots  [][]*task
	cursor int
	nextID uint64
	live   map[uint64]bool

	stop chan struct{}
	done chan struct{}
}

// New creates a stopped driver whose wheel advances one slot per resolution.
func New(resolution time.Duration) *Driver {
	if resolution <= 0 {
		resolution = time.Millisecond
	}
	return &Driver{
		resolution: resolution,
		slots:      make([][]*task, defaultSlots),
		live:       map[uint64]bool{},
	}
}

// Start begins advancing the wheel. Calling Start on a running driver is a
// no-op.
func (d *Driver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		return
	}
	d.stop = make(chan struct{})
	d.done = make(chan struct{})
	go d.run(d.stop, d.done)
}

// Stop halts the wheel and waits for the in-flight tick, if any, to finish.
// Scheduled tasks stay on the wheel and resume on the next Start.
func (d *Driver) Stop() {
	d.mu.Lock()
	stop, done := d.stop, d.done
	d.stop, d.done = nil, nil
	d.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done
}

func (d *Driver) run(stop, done chan struct{}) {
	defer close(done)
	tk := time.NewTicker(d.resolution)
	defer tk.Stop()
	for {
		select {
		case <-stop:
			return
		case <-tk.C:
			d.advance()
		}
	}
}

// Every schedules fn to run each period, rounded up to the wheel resolution.
// The returned cancel is idempotent.
func (d *Driver) Every(period time.Duration, fn func()) (cancel func()) {
	return d.schedule(period, fn, true)
}

// After schedules fn to run once after delay.
func (d *Driver) After(delay time.Duration, fn func()) (cancel func()) {
	return d.schedule(delay, fn, false)
}

func (d *Driver) schedule(in time.Duration, fn func(), repeat bool) func() {
	ticks := d.ticksFor(in)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	t := &task{id: d.nextID, fn: fn}
	if repeat {
		t.period = ticks
	}
	d.live[t.id] = true
	d.place(t, ticks)

	id := t.id
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.live, id)
	}
}

func (d *Driver) ticksFor(in time.Duration) int {
	ticks := int((in + d.resolution - 1) / d.resolution)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// place puts t ticks slots ahead of the cursor, recording how many full
// revolutions must pass before it fires. A delay of exactly one revolution
// lands on the cursor's own slot with zero extra rounds. Callers hold mu.
func (d *Driver) place(t *task, ticks int) {
	slot := (d.cursor + ticks) % len(d.slots)
	t.rounds = (ticks - 1) / len(d.slots)
	d.slots[slot] = append(d.slots[slot], t)
}

// advance moves the cursor one slot and runs everything due there. Task
// functions run outside the lock so they may schedule or cancel freely.
func (d *Driver) advance() {
	d.mu.Lock()
	d.cursor = (d.cursor + 1) % len(d.slots)
	bucket := d.slots[d.cursor]
	d.slots[d.cursor] = nil

	var due []*task
	for _, t := range bucket {
		if !d.live[t.id] {
			continue
		}
		if t.rounds > 0 {
			t.rounds--
			d.slots[d.cursor] = append(d.slots[d.cursor], t)
			continue
		}
		due = append(due, t)
		if t.period > 0 {
			d.place(t, t.period)
		} else {
			delete(d.live, t.id)
		}
	}
	d.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
}
