package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/unitcommand/engine/util"
)

// DefaultUnitExtents is the collision box size of a spawned unit.
var DefaultUnitExtents = mgl32.Vec3{0.98, 1.98, 0.98}

// PhysicsSync applies the velocities produced by the unit mover and keeps
// each unit's collision body centred on it. It stands in for an external physics step.
type PhysicsSync struct {
	world *util.CollisionWorld
}

func NewPhysicsSync(world *util.CollisionWorld) *PhysicsSync {
	return &PhysicsSync{world: world}
}

// AddUnitBody registers a unit's body on the given layer, raised so its feet touch the ground.
func (p *PhysicsSync) AddUnitBody(unit *Unit, layer uint) {
	p.world.AddBody(uint64(unit.ID), util.NewAABB(bodyCenter(unit.GetPosition()), DefaultUnitExtents), layer)
}

func (p *PhysicsSync) Update(store UnitStore, deltaTime float64) {
	for _, unit := range store.Units() {
		linear := unit.Velocity.Linear
		if linear.LenSqr() == 0 {
			continue
		}
		newPos := unit.GetPosition().Add(linear.Mul(float32(deltaTime)))
		unit.Transform.SetPosition(newPos)
		p.world.MoveBody(uint64(unit.ID), bodyCenter(newPos))
	}
}

func bodyCenter(footPosition mgl32.Vec3) mgl32.Vec3 {
	return footPosition.Add(mgl32.Vec3{0, DefaultUnitExtents.Y() / 2, 0})
}
