package game

import (
	"github.com/go-gl/mathgl/mgl32"
)

// SelectionObserver is notified about the drag gesture. Start is sent before
// any selection work, End after the resolver has applied its result.
type SelectionObserver interface {
	OnSelectionAreaStart(start mgl32.Vec2)
	OnSelectionAreaEnd(rect Rect, selected []UnitID)
}

type SelectionEventType int

const (
	SelectionAreaStarted SelectionEventType = iota
	SelectionAreaEnded
)

func (t SelectionEventType) String() string {
	switch t {
	case SelectionAreaStarted:
		return "SelectionAreaStarted"
	case SelectionAreaEnded:
		return "SelectionAreaEnded"
	}
	return "Unknown"
}

type SelectionEvent struct {
	Type     SelectionEventType
	Start    mgl32.Vec2
	Rect     Rect
	Selected []UnitID
}

// SelectionEventLog records every notification in order.
type SelectionEventLog struct {
	events []SelectionEvent
}

func NewSelectionEventLog() *SelectionEventLog {
	return &SelectionEventLog{}
}

func (l *SelectionEventLog) OnSelectionAreaStart(start mgl32.Vec2) {
	l.events = append(l.events, SelectionEvent{Type: SelectionAreaStarted, Start: start})
}

func (l *SelectionEventLog) OnSelectionAreaEnd(rect Rect, selected []UnitID) {
	ids := make([]UnitID, len(selected))
	copy(ids, selected)
	l.events = append(l.events, SelectionEvent{Type: SelectionAreaEnded, Rect: rect, Selected: ids})
}

func (l *SelectionEventLog) Events() []SelectionEvent {
	return l.events
}
