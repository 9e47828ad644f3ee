package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/unitcommand/engine/util"
	"github.com/pkg/errors"
)

var (
	ErrNoSelection    = errors.New("no selected units")
	ErrNoMovableUnits = errors.New("no selected unit accepts move orders")
)

// UnitSelectionManager turns input edges into selection changes and move orders.
type UnitSelectionManager struct {
	store                  UnitStore
	resolver               *SelectionResolver
	config                 Config
	observers              []SelectionObserver
	selectionStartPosition mgl32.Vec2
	isSelecting            bool
}

func NewUnitSelectionManager(store UnitStore, resolver *SelectionResolver, config Config) *UnitSelectionManager {
	return &UnitSelectionManager{
		store:    store,
		resolver: resolver,
		config:   config,
	}
}

func (m *UnitSelectionManager) AddObserver(observer SelectionObserver) {
	m.observers = append(m.observers, observer)
}

func (m *UnitSelectionManager) IsSelecting() bool {
	return m.isSelecting
}

// SelectionAreaRect is the rectangle between the drag start and cursor.
func (m *UnitSelectionManager) SelectionAreaRect(cursor mgl32.Vec2) Rect {
	return NewSelectionRect(m.selectionStartPosition, cursor)
}

func (m *UnitSelectionManager) Update(frame InputFrame) {
	if frame.PrimaryPressed {
		m.BeginSelection(frame.Cursor)
	}

	if frame.PrimaryReleased {
		m.EndSelection(frame.Cursor)
	}

	if frame.SecondaryPressed {
		if !frame.HasMouseWorldPosition {
			util.LogSelectionWarning("[UnitSelectionManager] Move order without a ground position under the cursor")
			return
		}
		if _, err := m.IssueMoveOrder(frame.MouseWorldPosition); err != nil {
			util.LogSelectionWarning(fmt.Sprintf("[UnitSelectionManager] Move order ignored: %v", err))
		}
	}
}

func (m *UnitSelectionManager) BeginSelection(cursor mgl32.Vec2) {
	m.selectionStartPosition = cursor
	m.isSelecting = true
	for _, observer := range m.observers {
		observer.OnSelectionAreaStart(cursor)
	}
}

// EndSelection deselects everything, then selects what the gesture covers.
// Units picked again get both JustDeselected and JustSelected for this tick.
func (m *UnitSelectionManager) EndSelection(cursor mgl32.Vec2) []UnitID {
	for _, unit := range m.store.Selected() {
		m.store.SetSelected(unit, false)
		unit.Selectable.JustDeselected = true
	}

	selectionAreaRect := m.SelectionAreaRect(cursor)
	chosen := m.resolver.Resolve(selectionAreaRect, cursor)
	for _, id := range chosen {
		unit, ok := m.store.Get(id)
		if !ok || unit.Selectable == nil {
			continue
		}
		m.store.SetSelected(unit, true)
		unit.Selectable.JustSelected = true
	}
	m.isSelecting = false
	util.LogSelectionDebug(fmt.Sprintf("[UnitSelectionManager] %v selected %d units", selectionAreaRect, len(chosen)))

	for _, observer := range m.observers {
		observer.OnSelectionAreaEnd(selectionAreaRect, chosen)
	}
	return chosen
}

// IssueMoveOrder assigns ring formation slots around target to the selected
// units that accept move orders, in store order. It returns how many units moved.
func (m *UnitSelectionManager) IssueMoveOrder(target mgl32.Vec3) (int, error) {
	selectedUnits := m.store.Selected()
	if len(selectedUnits) == 0 {
		return 0, ErrNoSelection
	}
	util.LogSelectionDebug(fmt.Sprintf("[UnitSelectionManager] Found %d selected units", len(selectedUnits)))

	var movableUnits []*Unit
	for _, unit := range selectedUnits {
		if unit.AcceptsMoveOrders() {
			movableUnits = append(movableUnits, unit)
		}
	}
	if len(movableUnits) == 0 {
		return 0, errors.Wrapf(ErrNoMovableUnits, "%d selected", len(selectedUnits))
	}

	movePositions := GenerateMovePositions(target, len(movableUnits), m.config.RingSpacing)
	for i, unit := range movableUnits {
		unit.Override.TargetPosition = movePositions[i]
		unit.Override.Active = true
	}
	util.LogMovementInfo(fmt.Sprintf("[UnitSelectionManager] Moved %d units to position %v", len(movableUnits), target))
	return len(movableUnits), nil
}
