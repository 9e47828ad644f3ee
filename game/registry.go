package game

import (
	"fmt"
	"sort"

	"github.com/memmaker/unitcommand/engine/util"
)

// UnitStore is the entity store the systems run against. Iteration order is
// ascending by id so formation slots are handed out in a stable order.
type UnitStore interface {
	Units() []*Unit
	Get(id UnitID) (*Unit, bool)
	Selected() []*Unit
	SetSelected(u *Unit, selected bool)
}

// UnitRegistry is an in-memory UnitStore with a selected-unit index.
type UnitRegistry struct {
	units    map[UnitID]*Unit
	order    []UnitID
	selected map[UnitID]bool
}

func NewUnitRegistry() *UnitRegistry {
	return &UnitRegistry{
		units:    make(map[UnitID]*Unit),
		selected: make(map[UnitID]bool),
	}
}

func (r *UnitRegistry) Add(u *Unit) {
	if _, exists := r.units[u.ID]; !exists {
		index := sort.Search(len(r.order), func(i int) bool { return r.order[i] >= u.ID })
		r.order = append(r.order, 0)
		copy(r.order[index+1:], r.order[index:])
		r.order[index] = u.ID
	}
	r.units[u.ID] = u
	if u.IsSelected() {
		r.selected[u.ID] = true
	} else {
		delete(r.selected, u.ID)
	}
	util.LogSystemDebug(fmt.Sprintf("[UnitRegistry] Added %s", u.Description()))
}

func (r *UnitRegistry) Remove(id UnitID) {
	if _, exists := r.units[id]; !exists {
		return
	}
	delete(r.units, id)
	delete(r.selected, id)
	index := sort.Search(len(r.order), func(i int) bool { return r.order[i] >= id })
	r.order = append(r.order[:index], r.order[index+1:]...)
}

func (r *UnitRegistry) Len() int {
	return len(r.order)
}

func (r *UnitRegistry) Units() []*Unit {
	result := make([]*Unit, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.units[id])
	}
	return result
}

func (r *UnitRegistry) Get(id UnitID) (*Unit, bool) {
	u, ok := r.units[id]
	return u, ok
}

func (r *UnitRegistry) Selected() []*Unit {
	result := make([]*Unit, 0, len(r.selected))
	for _, id := range r.order {
		if r.selected[id] {
			result = append(result, r.units[id])
		}
	}
	return result
}

func (r *UnitRegistry) SetSelected(u *Unit, selected bool) {
	if u.Selectable == nil {
		return
	}
	u.Selectable.IsSelected = selected
	if selected {
		r.selected[u.ID] = true
	} else {
		delete(r.selected, u.ID)
	}
}
