package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/unitcommand/engine/util"
)

// RingSlotCount is the number of positions on ring r (counted from 0).
func RingSlotCount(ring int) int {
	return 3 + ring*2
}

// GenerateMovePositions spreads count positions around target in concentric
// rings. Slot 0 is the target itself, ring r holds 3+2r evenly spaced slots
// at radius ringSpacing*(r+1). The last ring may be partially filled.
func GenerateMovePositions(target mgl32.Vec3, count int, ringSpacing float32) []mgl32.Vec3 {
	if count <= 0 {
		return []mgl32.Vec3{}
	}
	positions := make([]mgl32.Vec3, 0, count)
	positions = append(positions, target)

	ring := 0
	for len(positions) < count {
		ringPositionCount := RingSlotCount(ring)
		radiusVector := mgl32.Vec3{ringSpacing * float32(ring+1), 0, 0}
		angleStep := float32(2*math.Pi) / float32(ringPositionCount)
		for i := 0; i < ringPositionCount && len(positions) < count; i++ {
			ringVector := util.RotateY(float32(i)*angleStep, radiusVector)
			positions = append(positions, target.Add(ringVector))
		}
		ring++
	}
	return positions
}
