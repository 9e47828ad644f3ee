package game

// ResetEventSystem clears the one-tick selection flags. It runs after every
// system that reads them and before the next tick resolves input.
type ResetEventSystem struct{}

func (ResetEventSystem) Update(store UnitStore) {
	for _, unit := range store.Units() {
		if unit.Selectable == nil {
			continue
		}
		unit.Selectable.JustSelected = false
		unit.Selectable.JustDeselected = false
	}
}
