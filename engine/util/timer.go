package util

import (
	"fmt"
	"strings"
	"time"
)

// TimerState accumulates the durations of one named simulation step.
type TimerState struct {
	name           string
	lastDuration   time.Duration
	totalDuration  time.Duration
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
}

func (t *TimerState) Name() string {
	return t.name
}

func (t *TimerState) Count() int64 {
	return t.executionCount
}

func (t *TimerState) Last() time.Duration {
	return t.lastDuration
}

func (t *TimerState) Average() time.Duration {
	if t.executionCount == 0 {
		return 0
	}
	return t.totalDuration / time.Duration(t.executionCount)
}

func (t *TimerState) String() string {
	return fmt.Sprintf("%s last: %v, avg: %v, min: %v, max: %v (n=%d)", t.name, t.lastDuration, t.Average(), t.minDuration, t.maxDuration, t.executionCount)
}

func (t *TimerState) record(d time.Duration) {
	t.lastDuration = d
	t.totalDuration += d
	t.executionCount++
	if t.executionCount == 1 || d < t.minDuration {
		t.minDuration = d
	}
	if d > t.maxDuration {
		t.maxDuration = d
	}
}

// Timer is not safe for concurrent use; the simulation calls it from the tick goroutine only.
type Timer struct {
	states     map[string]*TimerState
	timerNames []string
}

func NewTimer() *Timer {
	return &Timer{
		states: make(map[string]*TimerState),
	}
}

func (t *Timer) GetState(name string) *TimerState {
	return t.states[name]
}

func (t *Timer) Reset() {
	for _, name := range t.timerNames {
		t.states[name] = &TimerState{name: name}
	}
}

func (t *Timer) String() string {
	var sb strings.Builder
	for _, name := range t.timerNames {
		sb.WriteString(t.states[name].String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Start returns a stop function that records the elapsed time under name.
func (t *Timer) Start(name string) func() time.Duration {
	state, ok := t.states[name]
	if !ok {
		t.timerNames = append(t.timerNames, name)
		state = &TimerState{name: name}
		t.states[name] = state
	}
	start := time.Now()
	return func() time.Duration {
		elapsed := time.Since(start)
		state.record(elapsed)
		return elapsed
	}
}

func (t *Timer) Measure(name string, step func()) {
	stop := t.Start(name)
	step()
	stop()
}
