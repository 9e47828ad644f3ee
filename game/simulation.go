package game

import (
	"github.com/memmaker/unitcommand/engine/util"
)

// Collaborators are the engine services the simulation needs. Physics and
// Visuals are optional.
type Collaborators struct {
	Projector ScreenProjector
	Picker    PickingRayProvider
	Caster    util.RayCaster
	Visuals   VisualSink
	Physics   *PhysicsSync
}

// Simulation runs the systems of one tick in a fixed order:
// selection input, move overrides, unit mover, physics, visuals, flag reset.
type Simulation struct {
	store            UnitStore
	config           Config
	selectionManager *UnitSelectionManager
	moveOverride     *MoveOverrideSystem
	unitMover        *UnitMoverSystem
	physics          *PhysicsSync
	selectedVisual   *SelectedVisualSystem
	resetEvents      ResetEventSystem
	timer            *util.Timer
	ticks            uint64
}

func NewSimulation(store UnitStore, collaborators Collaborators, config Config) *Simulation {
	resolver := NewSelectionResolver(collaborators.Projector, collaborators.Picker, collaborators.Caster, store, config)
	s := &Simulation{
		store:            store,
		config:           config,
		selectionManager: NewUnitSelectionManager(store, resolver, config),
		moveOverride:     NewMoveOverrideSystem(config.ArrivalThresholdSq),
		unitMover:        NewUnitMoverSystem(config.ArrivalThresholdSq, config.MoverBatchSize, config.MoverWorkers),
		physics:          collaborators.Physics,
		timer:            util.NewTimer(),
	}
	if collaborators.Visuals != nil {
		s.selectedVisual = NewSelectedVisualSystem(collaborators.Visuals)
	}
	return s
}

func (s *Simulation) SelectionManager() *UnitSelectionManager {
	return s.selectionManager
}

func (s *Simulation) Store() UnitStore {
	return s.store
}

func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

func (s *Simulation) Tick(deltaTime float64, frame InputFrame) {
	s.timer.Measure("selection", func() { s.selectionManager.Update(frame) })
	s.timer.Measure("moveOverride", func() { s.moveOverride.Update(s.store) })
	s.timer.Measure("unitMover", func() { s.unitMover.Update(s.store, deltaTime) })
	if s.physics != nil {
		s.timer.Measure("physics", func() { s.physics.Update(s.store, deltaTime) })
	}
	if s.selectedVisual != nil {
		s.timer.Measure("selectedVisual", func() { s.selectedVisual.Update(s.store) })
	}
	s.resetEvents.Update(s.store)
	s.ticks++
}

// Run polls input and ticks the given number of times with a fixed step.
func (s *Simulation) Run(input InputSource, ticks int, deltaTime float64) {
	for i := 0; i < ticks; i++ {
		s.Tick(deltaTime, input.Poll())
	}
}

func (s *Simulation) TimingReport() string {
	return s.timer.String()
}
