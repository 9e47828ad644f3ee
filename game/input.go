package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/unitcommand/engine/util"
)

// InputFrame is the edge-triggered input for one tick. Cursor is in screen
// space with the origin in the lower left corner.
type InputFrame struct {
	PrimaryPressed        bool
	PrimaryReleased       bool
	SecondaryPressed      bool
	Cursor                mgl32.Vec2
	MouseWorldPosition    mgl32.Vec3
	HasMouseWorldPosition bool
}

func (f InputFrame) HasEdges() bool {
	return f.PrimaryPressed || f.PrimaryReleased || f.SecondaryPressed
}

type InputSource interface {
	Poll() InputFrame
}

// ButtonEdges turns held button levels into press and release edges.
type ButtonEdges struct {
	primaryDown   bool
	secondaryDown bool
}

// Update returns the frame for the given levels. Holding a button yields no further edges.
func (b *ButtonEdges) Update(primaryDown, secondaryDown bool, cursor mgl32.Vec2) InputFrame {
	frame := InputFrame{
		PrimaryPressed:   primaryDown && !b.primaryDown,
		PrimaryReleased:  !primaryDown && b.primaryDown,
		SecondaryPressed: secondaryDown && !b.secondaryDown,
		Cursor:           cursor,
	}
	b.primaryDown = primaryDown
	b.secondaryDown = secondaryDown
	if frame.HasEdges() {
		util.LogInputDebug(fmt.Sprintf("[ButtonEdges] pressed=%v released=%v secondary=%v at %v", frame.PrimaryPressed, frame.PrimaryReleased, frame.SecondaryPressed, cursor))
	}
	return frame
}

// ScriptedInput replays a fixed list of frames, then reports idle frames
// at the last cursor position.
type ScriptedInput struct {
	frames []InputFrame
	next   int
	last   InputFrame
}

func NewScriptedInput(frames []InputFrame) *ScriptedInput {
	return &ScriptedInput{frames: frames}
}

func (s *ScriptedInput) Poll() InputFrame {
	if s.next >= len(s.frames) {
		return InputFrame{
			Cursor:                s.last.Cursor,
			MouseWorldPosition:    s.last.MouseWorldPosition,
			HasMouseWorldPosition: s.last.HasMouseWorldPosition,
		}
	}
	frame := s.frames[s.next]
	s.next++
	s.last = frame
	return frame
}

func (s *ScriptedInput) Remaining() int {
	return len(s.frames) - s.next
}
