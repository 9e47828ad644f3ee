package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/unitcommand/engine/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlatSimulation(units ...*Unit) (*testWorld, *VisualScales, *Simulation) {
	w := newTestWorld(units...)
	visuals := NewVisualScales()
	simulation := NewSimulation(w.registry, Collaborators{
		Projector: flatCamera{},
		Picker:    flatCamera{},
		Caster:    w.collisions,
		Visuals:   visuals,
		Physics:   w.physics,
	}, w.config)
	return w, visuals, simulation
}

func TestSimulationSelectionFlagsLastOneTick(t *testing.T) {
	w, visuals, simulation := newFlatSimulation(soldierAt(1, 0, 0), soldierAt(2, 10, 0))

	simulation.Tick(0.02, InputFrame{PrimaryPressed: true, Cursor: mgl32.Vec2{0, 0}})
	assert.True(t, simulation.SelectionManager().IsSelecting())
	simulation.Tick(0.02, InputFrame{PrimaryReleased: true, Cursor: mgl32.Vec2{0, 0}})

	unit, _ := w.registry.Get(1)
	assert.True(t, unit.IsSelected())
	assert.False(t, unit.Selectable.JustSelected, "cleared at the end of the tick")
	assert.Equal(t, unit.Selectable.ShowScale, visuals.Scale(1), "visuals saw the flag before the reset")

	simulation.Tick(0.02, InputFrame{PrimaryPressed: true, Cursor: mgl32.Vec2{10, 0}})
	simulation.Tick(0.02, InputFrame{PrimaryReleased: true, Cursor: mgl32.Vec2{10, 0}})
	assert.Equal(t, float32(0), visuals.Scale(1))
	assert.Equal(t, unit.Selectable.ShowScale, visuals.Scale(2))
	assert.Equal(t, uint64(4), simulation.Ticks())
}

func TestSimulationMoveOrderMovesUnits(t *testing.T) {
	w, _, simulation := newFlatSimulation(soldierAt(1, 0, 0))
	input := NewScriptedInput([]InputFrame{
		{PrimaryPressed: true, Cursor: mgl32.Vec2{0, 0}},
		{PrimaryReleased: true, Cursor: mgl32.Vec2{0, 0}},
		{SecondaryPressed: true, MouseWorldPosition: mgl32.Vec3{0, 0, 10}, HasMouseWorldPosition: true},
	})

	simulation.Run(input, 3, 0.1)
	unit, _ := w.registry.Get(1)
	require.True(t, unit.HasActiveOverride())
	// the order tick already integrated one step towards +Z
	assert.InDelta(t, 0.5, unit.GetPosition().Z(), 1e-4)
	assert.InDelta(t, unit.Mover.MoveSpeed, unit.Velocity.Linear.Z(), 1e-4)

	simulation.Run(input, 100, 0.1)
	assert.False(t, unit.HasActiveOverride())
	assert.Equal(t, Velocity{}, unit.Velocity)
	assert.LessOrEqual(t, util.DistanceSq(unit.GetPosition(), mgl32.Vec3{0, 0, 10}), w.config.ArrivalThresholdSq)
	assert.Contains(t, simulation.TimingReport(), "unitMover")
}

func TestSimulationWithoutOptionalSystems(t *testing.T) {
	w := newTestWorld(soldierAt(1, 0, 0))
	simulation := NewSimulation(w.registry, Collaborators{
		Projector: flatCamera{},
		Picker:    flatCamera{},
		Caster:    w.collisions,
	}, w.config)
	unit, _ := w.registry.Get(1)
	unit.Mover.TargetPosition = mgl32.Vec3{10, 0, 0}

	simulation.Tick(0.1, InputFrame{})

	assert.Equal(t, mgl32.Vec3{}, unit.GetPosition(), "nothing applies velocity without physics")
	assert.NotEqual(t, mgl32.Vec3{}, unit.Velocity.Linear)
	assert.Same(t, w.registry, simulation.Store())
}

func TestPhysicsSyncMovesBodies(t *testing.T) {
	collisions := util.NewCollisionWorld()
	physics := NewPhysicsSync(collisions)
	registry := NewUnitRegistry()
	unit := soldierAt(1, 0, 0)
	registry.Add(unit)
	physics.AddUnitBody(unit, 6)
	unit.Velocity.Linear = mgl32.Vec3{2, 0, 0}

	physics.Update(registry, 0.5)

	assert.Equal(t, mgl32.Vec3{1, 0, 0}, unit.GetPosition())
	body, ok := collisions.GetBody(1)
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{1, 0.99, 0}, body.Center())
}
