package game

import (
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/unitcommand/engine/util"
	"golang.org/x/sync/errgroup"
)

const headingEpsilon = 1e-6

// UnitMoverSystem turns each unit's target into a velocity and a heading.
// Units are independent, so batches run concurrently; a batch only writes
// the rotation and velocity of its own units.
type UnitMoverSystem struct {
	arrivalThresholdSq float32
	batchSize          int
	workers            int
}

func NewUnitMoverSystem(arrivalThresholdSq float32, batchSize, workers int) *UnitMoverSystem {
	if batchSize <= 0 {
		batchSize = 64
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &UnitMoverSystem{
		arrivalThresholdSq: arrivalThresholdSq,
		batchSize:          batchSize,
		workers:            workers,
	}
}

func (s *UnitMoverSystem) Update(store UnitStore, deltaTime float64) {
	units := store.Units()
	if len(units) <= s.batchSize {
		s.integrateBatch(units, deltaTime)
		return
	}

	var group errgroup.Group
	group.SetLimit(s.workers)
	for start := 0; start < len(units); start += s.batchSize {
		end := start + s.batchSize
		if end > len(units) {
			end = len(units)
		}
		batch := units[start:end]
		group.Go(func() error {
			s.integrateBatch(batch, deltaTime)
			return nil
		})
	}
	_ = group.Wait()
}

func (s *UnitMoverSystem) integrateBatch(units []*Unit, deltaTime float64) {
	for _, unit := range units {
		IntegrateUnit(unit, deltaTime, s.arrivalThresholdSq)
	}
}

// IntegrateUnit updates one unit. It reports false when the unit is within
// the arrival threshold of its target and holds position.
func IntegrateUnit(unit *Unit, deltaTime float64, arrivalThresholdSq float32) bool {
	if unit.Mover == nil {
		return false
	}
	moveDirection := unit.Mover.TargetPosition.Sub(unit.GetPosition())
	if moveDirection.LenSqr() <= arrivalThresholdSq {
		unit.Velocity = Velocity{}
		return false
	}

	moveDirection = moveDirection.Normalize()

	// units stay upright, only the ground component of the direction turns them
	heading := mgl32.Vec3{moveDirection.X(), 0, moveDirection.Z()}
	if heading.LenSqr() > headingEpsilon {
		targetRotation := util.LookRotation(heading.Normalize(), util.WorldUp)
		turnAmount := float32(deltaTime) * unit.Mover.RotationSpeed
		unit.Transform.SetRotation(util.SlerpClamped(unit.Transform.GetRotation(), targetRotation, turnAmount))
	}

	unit.Velocity = Velocity{
		Linear:  moveDirection.Mul(unit.Mover.MoveSpeed),
		Angular: mgl32.Vec3{},
	}
	return true
}
