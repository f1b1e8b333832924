// Package loop runs repeating per-frame tasks off a host tick source.
package loop

import "time"

// Clock reports seconds elapsed since it started.
type Clock interface {
	Elapsed() float64
}

// WallClock measures elapsed wall time from its creation.
type WallClock struct {
	start time.Time
	now   func() time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{start: time.Now(), now: time.Now}
}

func (c *WallClock) Elapsed() float64 {
	return c.now().Sub(c.start).Seconds()
}

// Task is invoked once per tick with the clock's elapsed seconds.
type Task func(elapsed float64)

// Loop holds the tasks to run on each host tick. It is not safe for
// concurrent use; the host calls Tick from its single frame goroutine.
type Loop struct {
	clock  Clock
	nextID int
	tasks  []registered
}

type registered struct {
	id   int
	task Task
}

func New(clock Clock) *Loop {
	return &Loop{clock: clock}
}

// Register schedules task for every subsequent Tick. The returned cancel
// func de-registers it and may be called more than once.
func (l *Loop) Register(task Task) (cancel func()) {
	l.nextID++
	id := l.nextID
	l.tasks = append(l.tasks, registered{id: id, task: task})
	return func() {
		for i, r := range l.tasks {
			if r.id == id {
				l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
				return
			}
		}
	}
}

// Tick runs every registered task once, in registration order.
func (l *Loop) Tick() {
	if len(l.tasks) == 0 {
		return
	}
	elapsed := l.clock.Elapsed()
	// a task may cancel itself mid-tick
	tasks := append([]registered(nil), l.tasks...)
	for _, r := range tasks {
		r.task(elapsed)
	}
}

// Len reports how many tasks are registered.
func (l *Loop) Len() int {
	return len(l.tasks)
}
