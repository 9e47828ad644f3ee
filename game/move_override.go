package game

import (
	"fmt"

	"github.com/memmaker/unitcommand/engine/util"
)

// MoveOverrideSystem decides each tick whether a unit follows its move order
// or its standing target. While an order is active it is the only writer of
// UnitMover.TargetPosition.
type MoveOverrideSystem struct {
	arrivalThresholdSq float32
}

func NewMoveOverrideSystem(arrivalThresholdSq float32) *MoveOverrideSystem {
	return &MoveOverrideSystem{arrivalThresholdSq: arrivalThresholdSq}
}

// Update returns the number of units with an active override that were processed.
func (s *MoveOverrideSystem) Update(store UnitStore) int {
	processedCount := 0
	for _, unit := range store.Units() {
		if !unit.HasActiveOverride() || unit.Mover == nil {
			continue
		}
		processedCount++
		s.updateUnit(unit)
	}
	if processedCount > 0 {
		util.LogMovementDebug(fmt.Sprintf("[MoveOverrideSystem] processed %d units", processedCount))
	}
	return processedCount
}

func (s *MoveOverrideSystem) updateUnit(unit *Unit) {
	target := unit.Override.TargetPosition
	unit.Mover.TargetPosition = target
	if util.DistanceSq(unit.GetPosition(), target) > s.arrivalThresholdSq {
		return
	}
	// the standing target keeps the order's position, so the unit holds there
	unit.Override.Active = false
	util.LogMovementDebug(fmt.Sprintf("[MoveOverrideSystem] %s reached %v", unit.Name, target))
}
