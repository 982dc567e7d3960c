package state

import (
	"iter"

	"github.com/zyedidia/generic/mapset"

	"blademaster/pkg/engine/world"
)

// Entry is one collected cell in the inventory
type Entry struct {
	ID   world.CellID
	Name string
}

// Inventory owns the collected cells in pickup order.
// Items are never removed during a session.
type Inventory struct {
	entries []Entry
	held    mapset.Set[world.CellID]
}

// NewInventory creates an empty inventory
func NewInventory() *Inventory {
	return &Inventory{
		held: mapset.New[world.CellID](),
	}
}

// Take adds the cell to the inventory.
// Returns false if a cell with the same identity was already taken.
func (inv *Inventory) Take(c world.Cell) bool {
	if inv.held.Has(c.ID) {
		return false
	}
	inv.held.Put(c.ID)
	inv.entries = append(inv.entries, Entry{ID: c.ID, Name: c.Name})
	return true
}

// Has checks if the cell with the given identity has been taken
func (inv *Inventory) Has(id world.CellID) bool {
	return inv.held.Has(id)
}

// Len returns the number of items held
func (inv *Inventory) Len() int {
	return len(inv.entries)
}

// List yields the display name of every item in pickup order
func (inv *Inventory) List() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range inv.entries {
			if !yield(e.Name) {
				return
			}
		}
	}
}
