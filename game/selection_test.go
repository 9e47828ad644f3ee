package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/unitcommand/engine/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectionRectNormalizesCorners(t *testing.T) {
	rect := NewSelectionRect(mgl32.Vec2{50, 10}, mgl32.Vec2{20, 40})
	assert.Equal(t, Rect{X: 20, Y: 10, Width: 30, Height: 30}, rect)
	assert.Equal(t, float32(60), rect.Size())

	assert.True(t, rect.Contains(mgl32.Vec2{20, 10}), "corners are inside")
	assert.True(t, rect.Contains(mgl32.Vec2{50, 40}))
	assert.False(t, rect.Contains(mgl32.Vec2{50.5, 40}))
}

func TestResolveAreaFlatRect(t *testing.T) {
	inside := []*Unit{soldierAt(1, 0, 0), soldierAt(2, 50, 0), soldierAt(3, 100, 0)}
	outside := []*Unit{soldierAt(4, 101, 0), soldierAt(5, 50, 1)}
	w := newTestWorld(append(inside, outside...)...)

	rect := NewSelectionRect(mgl32.Vec2{0, 0}, mgl32.Vec2{100, 0})
	require.True(t, w.resolver.IsMultipleSelection(rect))
	assert.Equal(t, []UnitID{1, 2, 3}, w.resolver.ResolveArea(rect, w.registry.Units()))
}

func TestResolveAreaSkipsUnselectableAndHidden(t *testing.T) {
	plain := NewUnit(2, "crate", mgl32.Vec3{10, 0, 10}, WithMover(1, 1))
	buried := NewSoldier(3, "buried", mgl32.Vec3{20, -5, 20}, DefaultConfig())
	w := newTestWorld(soldierAt(1, 5, 5), plain, buried)

	rect := NewSelectionRect(mgl32.Vec2{0, 0}, mgl32.Vec2{50, 50})
	assert.Equal(t, []UnitID{1}, w.resolver.ResolveArea(rect, w.registry.Units()))
}

func TestResolveSingle(t *testing.T) {
	w := newTestWorld(soldierAt(1, 0, 0), soldierAt(2, 10, 0))

	id, ok := w.resolver.ResolveSingle(mgl32.Vec2{10.2, 0.3})
	require.True(t, ok)
	assert.Equal(t, UnitID(2), id)

	_, ok = w.resolver.ResolveSingle(mgl32.Vec2{5, 5})
	assert.False(t, ok)
}

func TestResolveSingleIgnoresOtherLayers(t *testing.T) {
	w := newTestWorld(soldierAt(1, 0, 0))
	// a roof on another layer, closer to the camera than the unit
	w.collisions.AddBody(99, util.NewAABB(mgl32.Vec3{0, 3, 0}, mgl32.Vec3{4, 1, 4}), 2)

	id, ok := w.resolver.ResolveSingle(mgl32.Vec2{0, 0})
	require.True(t, ok)
	assert.Equal(t, UnitID(1), id)
}

func TestResolveSingleRejectsNonUnitBodies(t *testing.T) {
	w := newTestWorld()
	plain := NewUnit(7, "crate", mgl32.Vec3{0, 0, 0})
	w.add(plain)

	_, ok := w.resolver.ResolveSingle(mgl32.Vec2{0, 0})
	assert.False(t, ok, "hit body belongs to a unit without Selectable")
}

func TestResolvePicksBranchBySize(t *testing.T) {
	w := newTestWorld(soldierAt(1, 0, 0), soldierAt(2, 10, 0))

	// 30 + 0 <= 40: a click on unit 2 at the release point
	assert.Equal(t, []UnitID{2}, w.resolver.Resolve(NewSelectionRect(mgl32.Vec2{-20, 0}, mgl32.Vec2{10, 0}), mgl32.Vec2{10, 0}))
	// 41 > 40: the same cursor now selects by area
	assert.Equal(t, []UnitID{1, 2}, w.resolver.Resolve(NewSelectionRect(mgl32.Vec2{-31, 0}, mgl32.Vec2{10, 0}), mgl32.Vec2{10, 0}))
	assert.Empty(t, w.resolver.Resolve(Rect{X: 5, Y: 5}, mgl32.Vec2{5, 5}))
}
