package world

import (
	"errors"
	"fmt"
	"runtime"
	"slices"
	"sync"

	"github.com/gookit/color"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ErrOccupied is returned when a cell would share a position with a live cell
// of a different access class.
var ErrOccupied = errors.New("position occupied")

// parallelThreshold is the registry size below which Translate runs inline.
const parallelThreshold = 256

// Registry owns every placed cell with encapsulated storage.
// Reads are shared, bulk moves and deletes are exclusive.
type Registry struct {
	mu    sync.RWMutex
	cells []Cell
	index map[CellID]int

	workers int
}

// RegistryOption configures a Registry
type RegistryOption func(*Registry)

// WithWorkers bounds the number of goroutines used by Translate.
// Zero or negative means GOMAXPROCS.
func WithWorkers(n int) RegistryOption {
	return func(r *Registry) {
		r.workers = n
	}
}

// NewRegistry creates an empty registry
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		index: make(map[CellID]int),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers <= 0 {
		r.workers = runtime.GOMAXPROCS(0)
	}
	return r
}

// Spawn places a new cell and returns its identity.
// An empty name or zero color falls back to the kind's defaults.
func (r *Registry) Spawn(x, y int, kind Kind, name string, c color.Color) (CellID, error) {
	if !kind.IsValid() {
		return uuid.Nil, fmt.Errorf("spawning cell at (%d,%d): invalid kind %d", x, y, kind)
	}
	if name == "" {
		name = kind.DefaultName()
	}
	if c == 0 {
		c = kind.DefaultColor()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, other := range r.cells {
		if other.X == x && other.Y == y && other.Access() != kind.Access() {
			return uuid.Nil, fmt.Errorf("spawning %s at (%d,%d) over %s: %w", kind, x, y, other.Kind, ErrOccupied)
		}
	}

	cell := Cell{
		ID:    uuid.New(),
		X:     x,
		Y:     y,
		Kind:  kind,
		Name:  name,
		Color: c,
	}
	r.index[cell.ID] = len(r.cells)
	r.cells = append(r.cells, cell)

	return cell.ID, nil
}

// Len returns the number of live cells
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cells)
}

// Get returns the cell with the given identity
func (r *Registry) Get(id CellID) (Cell, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return Cell{}, false
	}
	return r.cells[i], true
}

// Each iterates over all cells in insertion order, calling fn with a copy of each.
// Iteration stops early when fn returns false. fn must not call back into the registry
// with a write.
func (r *Registry) Each(fn func(c Cell) bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.cells {
		if !fn(c) {
			return
		}
	}
}

// Cells returns a snapshot of all cells in iteration order
func (r *Registry) Cells() []Cell {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.cells)
}

// Translate moves every cell by (dx, dy) in one exclusive pass.
// Large registries are split into chunks translated concurrently.
func (r *Registry) Translate(dx, dy int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.cells) < parallelThreshold || r.workers == 1 {
		translate(r.cells, dx, dy)
		return nil
	}

	chunk := (len(r.cells) + r.workers - 1) / r.workers

	var g errgroup.Group
	g.SetLimit(r.workers)
	for start := 0; start < len(r.cells); start += chunk {
		part := r.cells[start:min(start+chunk, len(r.cells))]
		g.Go(func() error {
			translate(part, dx, dy)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("translating registry by (%d,%d): %w", dx, dy, err)
	}
	return nil
}

func translate(cells []Cell, dx, dy int) {
	for i := range cells {
		cells[i].X += dx
		cells[i].Y += dy
	}
}

// Delete removes the cell with the given identity.
// Returns false if no such cell is alive.
func (r *Registry) Delete(id CellID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return false
	}

	r.cells = slices.Delete(r.cells, i, i+1)
	delete(r.index, id)
	for j := i; j < len(r.cells); j++ {
		r.index[r.cells[j].ID] = j
	}
	return true
}
