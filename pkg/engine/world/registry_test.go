package world

import (
	"errors"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spawn(t *testing.T, r *Registry, x, y int, kind Kind) CellID {
	t.Helper()
	id, err := r.Spawn(x, y, kind, "", 0)
	require.NoError(t, err)
	return id
}

func TestSpawn_Defaults(t *testing.T) {
	r := NewRegistry()
	id := spawn(t, r, 3, 4, Wall)

	c, ok := r.Get(id)
	require.True(t, ok)
	assert.Equal(t, 3, c.X)
	assert.Equal(t, 4, c.Y)
	assert.Equal(t, "Wall", c.Name)
	assert.Equal(t, color.FgGray, c.Color)
	assert.Equal(t, Impassable, c.Access())
}

func TestSpawn_KeepsNameAndColor(t *testing.T) {
	r := NewRegistry()
	id, err := r.Spawn(0, 0, EdgedWeapon, "Broadsword", color.FgRed)
	require.NoError(t, err)

	c, _ := r.Get(id)
	assert.Equal(t, "Broadsword", c.Name)
	assert.Equal(t, color.FgRed, c.Color)
}

func TestSpawn_RejectsConflictingAccess(t *testing.T) {
	r := NewRegistry()
	spawn(t, r, 5, 5, Wall)

	_, err := r.Spawn(5, 5, HardArmor, "", 0)
	assert.True(t, errors.Is(err, ErrOccupied), "got %v, want ErrOccupied", err)
	assert.Equal(t, 1, r.Len())
}

func TestSpawn_AllowsSameAccessStack(t *testing.T) {
	r := NewRegistry()
	spawn(t, r, 5, 5, HardArmor)
	spawn(t, r, 5, 5, SoftArmor)
	assert.Equal(t, 2, r.Len())
}

func TestSpawn_InvalidKind(t *testing.T) {
	r := NewRegistry()
	_, err := r.Spawn(0, 0, Kind(42), "", 0)
	assert.Error(t, err)
}

func TestEach_InsertionOrderAndEarlyStop(t *testing.T) {
	r := NewRegistry()
	a := spawn(t, r, 0, 0, Wall)
	b := spawn(t, r, 1, 0, Wall)
	spawn(t, r, 2, 0, Wall)

	var seen []CellID
	r.Each(func(c Cell) bool {
		seen = append(seen, c.ID)
		return len(seen) < 2
	})
	assert.Equal(t, []CellID{a, b}, seen)
}

func TestEach_CopiesDoNotMutate(t *testing.T) {
	r := NewRegistry()
	id := spawn(t, r, 1, 1, Wall)

	r.Each(func(c Cell) bool {
		c.X = 99
		return true
	})

	c, _ := r.Get(id)
	assert.Equal(t, 1, c.X)
}

func TestTranslate(t *testing.T) {
	for _, n := range []int{0, 3, parallelThreshold * 4} {
		r := NewRegistry(WithWorkers(4))
		for i := 0; i < n; i++ {
			spawn(t, r, i, -i, Wall)
		}

		require.NoError(t, r.Translate(2, -3))

		i := 0
		r.Each(func(c Cell) bool {
			assert.Equal(t, i+2, c.X)
			assert.Equal(t, -i-3, c.Y)
			i++
			return true
		})
		assert.Equal(t, n, i)
	}
}

func TestDelete(t *testing.T) {
	r := NewRegistry()
	a := spawn(t, r, 0, 0, Wall)
	b := spawn(t, r, 1, 0, HardArmor)
	c := spawn(t, r, 2, 0, Wall)

	assert.True(t, r.Delete(b))
	assert.False(t, r.Delete(b), "second delete of the same identity")

	_, ok := r.Get(b)
	assert.False(t, ok)

	cells := r.Cells()
	require.Len(t, cells, 2)
	assert.Equal(t, a, cells[0].ID)
	assert.Equal(t, c, cells[1].ID)

	got, ok := r.Get(c)
	require.True(t, ok)
	assert.Equal(t, 2, got.X)
}

func TestCells_IsSnapshot(t *testing.T) {
	r := NewRegistry()
	spawn(t, r, 0, 0, Wall)

	snap := r.Cells()
	require.NoError(t, r.Translate(1, 1))
	assert.Equal(t, 0, snap[0].X)
}
