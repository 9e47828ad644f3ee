package game

import (
	"fmt"

	"github.com/memmaker/unitcommand/engine/util"
)

// VisualSink is the display scale slot owned by the renderer.
type VisualSink interface {
	SetDisplayScale(visualID uint64, scale float32)
}

// SelectedVisualSystem shows or hides selection markers on the selection edges.
// It must run before ResetEventSystem.
type SelectedVisualSystem struct {
	sink VisualSink
}

func NewSelectedVisualSystem(sink VisualSink) *SelectedVisualSystem {
	return &SelectedVisualSystem{sink: sink}
}

func (s *SelectedVisualSystem) Update(store UnitStore) {
	for _, unit := range store.Units() {
		selectable := unit.Selectable
		if selectable == nil {
			continue
		}
		if selectable.JustDeselected {
			s.sink.SetDisplayScale(selectable.VisualID, 0)
		}
		if selectable.JustSelected {
			s.sink.SetDisplayScale(selectable.VisualID, selectable.ShowScale)
		}
	}
}

// VisualScales is an in-memory VisualSink.
type VisualScales struct {
	scales map[uint64]float32
}

func NewVisualScales() *VisualScales {
	return &VisualScales{scales: make(map[uint64]float32)}
}

func (v *VisualScales) SetDisplayScale(visualID uint64, scale float32) {
	v.scales[visualID] = scale
	util.LogSelectionDebug(fmt.Sprintf("[VisualScales] visual %d scale %0.2f", visualID, scale))
}

// Scale reports 0 for visuals that were never shown.
func (v *VisualScales) Scale(visualID uint64) float32 {
	return v.scales[visualID]
}
