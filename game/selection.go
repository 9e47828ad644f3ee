package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/unitcommand/engine/util"
)

// ScreenProjector maps world positions to screen space (origin lower left).
type ScreenProjector interface {
	WorldToScreen(world mgl32.Vec3) (mgl32.Vec2, bool)
}

type PickingRayProvider interface {
	ScreenPointToRay(screen mgl32.Vec2) (mgl32.Vec3, mgl32.Vec3)
}

// Rect is an axis aligned screen rectangle anchored at its lower left corner.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

func NewSelectionRect(start, end mgl32.Vec2) Rect {
	lowerLeft := mgl32.Vec2{util.Min(start.X(), end.X()), util.Min(start.Y(), end.Y())}
	upperRight := mgl32.Vec2{util.Max(start.X(), end.X()), util.Max(start.Y(), end.Y())}
	return Rect{
		X:      lowerLeft.X(),
		Y:      lowerLeft.Y(),
		Width:  upperRight.X() - lowerLeft.X(),
		Height: upperRight.Y() - lowerLeft.Y(),
	}
}

func (r Rect) Size() float32 {
	return r.Width + r.Height
}

// Contains includes the boundary.
func (r Rect) Contains(p mgl32.Vec2) bool {
	return util.InRange(p.X(), r.X, r.X+r.Width) && util.InRange(p.Y(), r.Y, r.Y+r.Height)
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%0.1f,%0.1f %0.1fx%0.1f)", r.X, r.Y, r.Width, r.Height)
}

// SelectionResolver decides which units a finished selection gesture picks.
// It only reads unit state; applying the result is up to the caller.
type SelectionResolver struct {
	projector ScreenProjector
	picker    PickingRayProvider
	caster    util.RayCaster
	store     UnitStore
	config    Config
}

func NewSelectionResolver(projector ScreenProjector, picker PickingRayProvider, caster util.RayCaster, store UnitStore, config Config) *SelectionResolver {
	return &SelectionResolver{
		projector: projector,
		picker:    picker,
		caster:    caster,
		store:     store,
		config:    config,
	}
}

func (s *SelectionResolver) IsMultipleSelection(rect Rect) bool {
	return rect.Size() > s.config.MultipleSelectionSizeThreshold
}

// ResolveArea returns the candidates whose projected position lies inside rect.
func (s *SelectionResolver) ResolveArea(rect Rect, candidates []*Unit) []UnitID {
	var result []UnitID
	for _, unit := range candidates {
		if !unit.CanBeSelected() {
			continue
		}
		unitScreenPosition, visible := s.projector.WorldToScreen(unit.GetPosition())
		if !visible {
			continue
		}
		if rect.Contains(unitScreenPosition) {
			result = append(result, unit.ID)
		}
	}
	return result
}

// ResolveSingle casts a picking ray through screenPoint against the units layer.
func (s *SelectionResolver) ResolveSingle(screenPoint mgl32.Vec2) (UnitID, bool) {
	origin, direction := s.picker.ScreenPointToRay(screenPoint)
	hit, ok := s.caster.CastRay(origin, direction, s.config.RayCastDistance, s.config.UnitsFilter())
	if !ok {
		util.LogSelectionDebug(fmt.Sprintf("[SelectionResolver] No unit under %v", screenPoint))
		return 0, false
	}
	unit, isUnit := s.store.Get(UnitID(hit.BodyID))
	if !isUnit || !unit.CanBeSelected() {
		util.LogSelectionDebug(fmt.Sprintf("[SelectionResolver] Body %d under %v is not a selectable unit", hit.BodyID, screenPoint))
		return 0, false
	}
	return unit.ID, true
}

// Resolve picks the area or the single-pick branch depending on the rect size.
func (s *SelectionResolver) Resolve(rect Rect, cursor mgl32.Vec2) []UnitID {
	if s.IsMultipleSelection(rect) {
		return s.ResolveArea(rect, s.store.Units())
	}
	if id, ok := s.ResolveSingle(cursor); ok {
		return []UnitID{id}
	}
	return nil
}
