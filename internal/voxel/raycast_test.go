package voxel

import (
	"testing"

	"github.com/annel0/blockcraft/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaycastHitsFace(t *testing.T) {
	w := NewWorld()
	target := w.Place(vec.Vec3{X: 0, Y: 0, Z: 5}, Stone)

	hit, ok := w.Raycast(vec.Vec3Float{X: 0, Y: 0, Z: 0}, vec.Vec3Float{Z: 1}, 10)
	require.True(t, ok)
	assert.Equal(t, target.ID, hit.Voxel.ID)
	assert.Equal(t, vec.Vec3{X: 0, Y: 0, Z: 5}, hit.Pos)
	assert.Equal(t, vec.Vec3{Z: -1}, hit.Normal)
	assert.InDelta(t, 4.5, hit.Distance, 1e-9)
}

func TestRaycastDownward(t *testing.T) {
	w := NewWorld()
	GenerateColumn(w, 0, 0, 2, -1)

	hit, ok := w.Raycast(vec.Vec3Float{X: 0, Y: 5, Z: 0}, vec.Vec3Float{Y: -1}, 10)
	require.True(t, ok)
	assert.Equal(t, vec.Vec3{X: 0, Y: 2, Z: 0}, hit.Pos)
	assert.Equal(t, vec.Vec3{Y: 1}, hit.Normal)
	assert.Equal(t, Grass, hit.Voxel.Material)
}

func TestRaycastMisses(t *testing.T) {
	w := NewWorld()
	w.Place(vec.Vec3{X: 0, Y: 0, Z: 20}, Stone)

	_, ok := w.Raycast(vec.Vec3Float{}, vec.Vec3Float{Z: 1}, 10)
	assert.False(t, ok, "воксель дальше дальности луча")

	_, ok = w.Raycast(vec.Vec3Float{}, vec.Vec3Float{}, 10)
	assert.False(t, ok, "нулевое направление")

	_, ok = w.Raycast(vec.Vec3Float{}, vec.Vec3Float{X: 1}, 10)
	assert.False(t, ok)
}

func TestRaycastIgnoresOwnCell(t *testing.T) {
	w := NewWorld()
	w.Place(vec.Vec3{}, Stone)
	far := w.Place(vec.Vec3{Z: 3}, Dirt)

	hit, ok := w.Raycast(vec.Vec3Float{}, vec.Vec3Float{Z: 1}, 10)
	require.True(t, ok)
	assert.Equal(t, far.ID, hit.Voxel.ID)
}

func TestRaycastPlace(t *testing.T) {
	w := NewWorld()
	GenerateColumn(w, 0, 0, 0, -2)
	before := w.Count()

	v, ok := w.RaycastPlace(vec.Vec3Float{X: 0, Y: 5, Z: 0}, vec.Vec3Float{Y: -1}, 10, Dirt)
	require.True(t, ok)
	assert.Equal(t, vec.Vec3{X: 0, Y: 1, Z: 0}, v.Pos)
	assert.Equal(t, Dirt, v.Material)
	assert.Equal(t, before+1, w.Count())

	_, ok = w.RaycastPlace(vec.Vec3Float{X: 0, Y: 5, Z: 0}, vec.Vec3Float{Y: 1}, 10, Dirt)
	assert.False(t, ok)
	assert.Equal(t, before+1, w.Count(), "промах не меняет мир")
}

func TestRaycastDiagonal(t *testing.T) {
	w := NewWorld()
	w.Place(vec.Vec3{X: 3, Y: 0, Z: 3}, Stone)

	hit, ok := w.Raycast(vec.Vec3Float{X: 0.1, Y: 0, Z: 0}, vec.Vec3Float{X: 1, Z: 1}, 10)
	require.True(t, ok)
	assert.Equal(t, vec.Vec3{X: 3, Y: 0, Z: 3}, hit.Pos)
	assert.Equal(t, vec.Vec3{Z: -1}, hit.Normal)
}
