package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// appliedSelectionObserver records which units were selected when the end notification arrived.
type appliedSelectionObserver struct {
	store      UnitStore
	startSeen  []UnitID
	selectedAt []UnitID
}

func (o *appliedSelectionObserver) OnSelectionAreaStart(start mgl32.Vec2) {
	o.startSeen = selectedIDs(o.store)
}

func (o *appliedSelectionObserver) OnSelectionAreaEnd(rect Rect, selected []UnitID) {
	o.selectedAt = selectedIDs(o.store)
}

func drag(m *UnitSelectionManager, from, to mgl32.Vec2) {
	m.Update(InputFrame{PrimaryPressed: true, Cursor: from})
	m.Update(InputFrame{PrimaryReleased: true, Cursor: to})
}

func TestSelectionManagerAreaSelection(t *testing.T) {
	w := newTestWorld(soldierAt(1, 0, 0), soldierAt(2, 50, 0), soldierAt(3, 100, 0), soldierAt(4, 120, 0), soldierAt(5, 50, 30))
	observer := &recordingObserver{}
	w.manager.AddObserver(observer)

	w.manager.Update(InputFrame{PrimaryPressed: true, Cursor: mgl32.Vec2{0, 0}})
	assert.True(t, w.manager.IsSelecting())
	assert.Equal(t, []string{"start"}, observer.calls)

	w.manager.Update(InputFrame{PrimaryReleased: true, Cursor: mgl32.Vec2{100, 0}})
	assert.False(t, w.manager.IsSelecting())
	assert.Equal(t, []string{"start", "end"}, observer.calls)
	assert.Equal(t, [][]UnitID{{1, 2, 3}}, observer.ends)

	assert.Equal(t, []UnitID{1, 2, 3}, selectedIDs(w.registry))
	for _, unit := range w.registry.Units() {
		inside := unit.ID <= 3
		assert.Equal(t, inside, unit.Selectable.IsSelected, "unit %d", unit.ID)
		assert.Equal(t, inside, unit.Selectable.JustSelected, "unit %d", unit.ID)
		assert.False(t, unit.Selectable.JustDeselected, "unit %d", unit.ID)
	}
}

func TestSelectionManagerSingleClick(t *testing.T) {
	w := newTestWorld(soldierAt(1, 0, 0), soldierAt(2, 10, 0), soldierAt(3, 20, 0))
	drag(w.manager, mgl32.Vec2{10, 0}, mgl32.Vec2{10, 0})
	assert.Equal(t, []UnitID{2}, selectedIDs(w.registry))
}

func TestSelectionManagerNotifiesAroundResolution(t *testing.T) {
	w := newTestWorld(soldierAt(1, 0, 0), soldierAt(2, 10, 0))
	drag(w.manager, mgl32.Vec2{0, 0}, mgl32.Vec2{0, 0})

	observer := &appliedSelectionObserver{store: w.registry}
	w.manager.AddObserver(observer)
	drag(w.manager, mgl32.Vec2{10, 0}, mgl32.Vec2{10, 0})

	assert.Equal(t, []UnitID{1}, observer.startSeen, "start fires before any selection change")
	assert.Equal(t, []UnitID{2}, observer.selectedAt, "end fires after the result is applied")
}

func TestSelectionManagerClickOnNothingClearsSelection(t *testing.T) {
	w := newTestWorld(soldierAt(1, 0, 0), soldierAt(2, 10, 0), soldierAt(3, 20, 0))
	drag(w.manager, mgl32.Vec2{-5, -25}, mgl32.Vec2{15, 25})
	require.Equal(t, []UnitID{1, 2}, selectedIDs(w.registry))
	ResetEventSystem{}.Update(w.registry)

	drag(w.manager, mgl32.Vec2{5, 30}, mgl32.Vec2{5, 30})

	assert.Empty(t, selectedIDs(w.registry))
	for _, unit := range w.registry.Units() {
		assert.False(t, unit.Selectable.IsSelected)
		assert.False(t, unit.Selectable.JustSelected)
		assert.Equal(t, unit.ID != 3, unit.Selectable.JustDeselected, "unit %d", unit.ID)
	}

	ResetEventSystem{}.Update(w.registry)
	for _, unit := range w.registry.Units() {
		assert.False(t, unit.Selectable.JustDeselected, "flag lasts one tick")
	}
}

func TestSelectionManagerReselectSetsBothFlags(t *testing.T) {
	w := newTestWorld(soldierAt(1, 0, 0))
	drag(w.manager, mgl32.Vec2{0, 0}, mgl32.Vec2{0, 0})
	ResetEventSystem{}.Update(w.registry)
	drag(w.manager, mgl32.Vec2{0, 0}, mgl32.Vec2{0, 0})

	unit, _ := w.registry.Get(1)
	assert.True(t, unit.Selectable.IsSelected)
	assert.True(t, unit.Selectable.JustDeselected)
	assert.True(t, unit.Selectable.JustSelected)
}

func TestSelectionManagerMoveOrderFormation(t *testing.T) {
	w := newTestWorld()
	for i := 1; i <= 5; i++ {
		w.add(soldierAt(UnitID(i), float32(i), 0))
	}
	w.add(soldierAt(6, 200, 200))
	drag(w.manager, mgl32.Vec2{0, -1}, mgl32.Vec2{50, 1})
	require.Equal(t, []UnitID{1, 2, 3, 4, 5}, selectedIDs(w.registry))

	target := mgl32.Vec3{10, 0, 10}
	w.manager.Update(InputFrame{SecondaryPressed: true, MouseWorldPosition: target, HasMouseWorldPosition: true})

	expected := GenerateMovePositions(target, 5, w.config.RingSpacing)
	for i, unit := range w.registry.Selected() {
		assert.True(t, unit.Override.Active, "unit %d", unit.ID)
		assert.Equal(t, expected[i], unit.Override.TargetPosition, "unit %d", unit.ID)
	}
	idle, _ := w.registry.Get(6)
	assert.False(t, idle.Override.Active)
}

func TestSelectionManagerMoveOrderReplacesPrevious(t *testing.T) {
	w := newTestWorld(soldierAt(1, 0, 0))
	drag(w.manager, mgl32.Vec2{0, 0}, mgl32.Vec2{0, 0})

	_, err := w.manager.IssueMoveOrder(mgl32.Vec3{5, 0, 5})
	require.NoError(t, err)
	moved, err := w.manager.IssueMoveOrder(mgl32.Vec3{-5, 0, 8})
	require.NoError(t, err)

	unit, _ := w.registry.Get(1)
	assert.Equal(t, 1, moved)
	assert.Equal(t, mgl32.Vec3{-5, 0, 8}, unit.Override.TargetPosition)
}

func TestSelectionManagerMoveOrderErrors(t *testing.T) {
	w := newTestWorld(soldierAt(1, 0, 0))
	_, err := w.manager.IssueMoveOrder(mgl32.Vec3{1, 0, 1})
	assert.True(t, errors.Is(err, ErrNoSelection))

	statue := NewUnit(2, "statue", mgl32.Vec3{30, 0, 0}, WithSelectable(2, 2))
	w.add(statue)
	drag(w.manager, mgl32.Vec2{30, 0}, mgl32.Vec2{30, 0})
	require.Equal(t, []UnitID{2}, selectedIDs(w.registry))

	moved, err := w.manager.IssueMoveOrder(mgl32.Vec3{1, 0, 1})
	assert.Equal(t, 0, moved)
	assert.True(t, errors.Is(err, ErrNoMovableUnits))
	assert.Contains(t, err.Error(), "1 selected")
}

func TestSelectionManagerMoveOrderNeedsGround(t *testing.T) {
	w := newTestWorld(soldierAt(1, 0, 0))
	drag(w.manager, mgl32.Vec2{0, 0}, mgl32.Vec2{0, 0})

	w.manager.Update(InputFrame{SecondaryPressed: true, Cursor: mgl32.Vec2{400, 300}})

	unit, _ := w.registry.Get(1)
	assert.False(t, unit.Override.Active)
}
