package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/unitcommand/engine/util"
)

// flatCamera looks straight down: world (x, z) is screen (x, z). Points
// below the ground count as behind the camera.
type flatCamera struct{}

func (flatCamera) WorldToScreen(world mgl32.Vec3) (mgl32.Vec2, bool) {
	if world.Y() < 0 {
		return mgl32.Vec2{}, false
	}
	return mgl32.Vec2{world.X(), world.Z()}, true
}

func (flatCamera) ScreenPointToRay(screen mgl32.Vec2) (mgl32.Vec3, mgl32.Vec3) {
	return mgl32.Vec3{screen.X(), 100, screen.Y()}, mgl32.Vec3{0, -1, 0}
}

type recordingObserver struct {
	calls []string
	ends  [][]UnitID
}

func (o *recordingObserver) OnSelectionAreaStart(start mgl32.Vec2) {
	o.calls = append(o.calls, "start")
}

func (o *recordingObserver) OnSelectionAreaEnd(rect Rect, selected []UnitID) {
	o.calls = append(o.calls, "end")
	o.ends = append(o.ends, selected)
}

type testWorld struct {
	config     Config
	registry   *UnitRegistry
	collisions *util.CollisionWorld
	physics    *PhysicsSync
	resolver   *SelectionResolver
	manager    *UnitSelectionManager
}

func newTestWorld(units ...*Unit) *testWorld {
	config := DefaultConfig()
	w := &testWorld{
		config:     config,
		registry:   NewUnitRegistry(),
		collisions: util.NewCollisionWorld(),
	}
	w.physics = NewPhysicsSync(w.collisions)
	for _, unit := range units {
		w.add(unit)
	}
	w.resolver = NewSelectionResolver(flatCamera{}, flatCamera{}, w.collisions, w.registry, config)
	w.manager = NewUnitSelectionManager(w.registry, w.resolver, config)
	return w
}

func (w *testWorld) add(unit *Unit) {
	w.registry.Add(unit)
	w.physics.AddUnitBody(unit, w.config.UnitsLayer)
}

func soldierAt(id UnitID, x, z float32) *Unit {
	return NewSoldier(id, "", mgl32.Vec3{x, 0, z}, DefaultConfig())
}

func selectedIDs(store UnitStore) []UnitID {
	var ids []UnitID
	for _, unit := range store.Selected() {
		ids = append(ids, unit.ID)
	}
	return ids
}
