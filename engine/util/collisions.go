package util

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 0.000001

// CollisionFilter selects which bodies a query may hit. A body is hit when
// its category overlaps CollidesWith and the filter's BelongsTo overlaps the body's mask.
type CollisionFilter struct {
	BelongsTo    uint32
	CollidesWith uint32
}

func LayerFilter(layer uint) CollisionFilter {
	return CollisionFilter{
		BelongsTo:    ^uint32(0),
		CollidesWith: 1 << layer,
	}
}

type RayHit struct {
	BodyID   uint64
	Point    mgl32.Vec3
	Distance float32
}

type RayCaster interface {
	CastRay(origin, direction mgl32.Vec3, maxDistance float32, filter CollisionFilter) (RayHit, bool)
}

type collisionBody struct {
	id       uint64
	box      AABB
	category uint32
	mask     uint32
}

// CollisionWorld holds static and moving bodies for queries. Bodies are
// owned by id; callers keep them in sync with their units.
type CollisionWorld struct {
	lock   sync.RWMutex
	bodies map[uint64]*collisionBody
}

func NewCollisionWorld() *CollisionWorld {
	return &CollisionWorld{
		bodies: make(map[uint64]*collisionBody),
	}
}

func (c *CollisionWorld) AddBody(id uint64, box AABB, layer uint) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.bodies[id] = &collisionBody{
		id:       id,
		box:      box,
		category: 1 << layer,
		mask:     ^uint32(0),
	}
}

func (c *CollisionWorld) MoveBody(id uint64, center mgl32.Vec3) bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	body, ok := c.bodies[id]
	if !ok {
		return false
	}
	body.box = body.box.MovedTo(center)
	return true
}

func (c *CollisionWorld) RemoveBody(id uint64) {
	c.lock.Lock()
	defer c.lock.Unlock()
	delete(c.bodies, id)
}

func (c *CollisionWorld) GetBody(id uint64) (AABB, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	body, ok := c.bodies[id]
	if !ok {
		return AABB{}, false
	}
	return body.box, true
}

func (c *CollisionWorld) BodyCount() int {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return len(c.bodies)
}

// CastRay returns the nearest body along the ray that passes the filter.
// Ties are broken by the lower body id so results are deterministic.
func (c *CollisionWorld) CastRay(origin, direction mgl32.Vec3, maxDistance float32, filter CollisionFilter) (RayHit, bool) {
	if direction.LenSqr() < epsilon {
		return RayHit{}, false
	}
	direction = direction.Normalize()

	c.lock.RLock()
	defer c.lock.RUnlock()

	ids := make([]uint64, 0, len(c.bodies))
	for id := range c.bodies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var nearest RayHit
	rayHitObject := false
	for _, id := range ids {
		body := c.bodies[id]
		if body.category&filter.CollidesWith == 0 || body.mask&filter.BelongsTo == 0 {
			continue
		}
		hit, dist := body.box.IntersectsRay(origin, direction, maxDistance)
		if !hit {
			continue
		}
		if !rayHitObject || dist < nearest.Distance {
			rayHitObject = true
			nearest = RayHit{
				BodyID:   body.id,
				Point:    origin.Add(direction.Mul(dist)),
				Distance: dist,
			}
		}
	}
	if rayHitObject {
		LogSystemDebug(fmt.Sprintf("[CollisionWorld] Ray hit body %d at %v", nearest.BodyID, nearest.Point))
	}
	return nearest, rayHitObject
}
