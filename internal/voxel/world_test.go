package voxel

import (
	"testing"

	"github.com/annel0/blockcraft/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveBedrockKeepsCount(t *testing.T) {
	w := NewWorld()
	floor := w.Place(vec.Vec3{X: 0, Y: -5, Z: 0}, Bedrock)
	dirt := w.Place(vec.Vec3{X: 0, Y: -4, Z: 0}, Dirt)

	assert.False(t, w.Remove(floor.ID))
	assert.Equal(t, 2, w.Count(), "удаление бедрока не меняет количество")

	assert.True(t, w.Remove(dirt.ID))
	assert.Equal(t, 1, w.Count(), "удаление другого вокселя уменьшает количество ровно на один")

	assert.False(t, w.Remove(dirt.ID), "повторное удаление игнорируется")
	assert.False(t, w.Remove(EntityID(999)))
	assert.Equal(t, 1, w.Count())
}

func TestPlaceLastWriteWins(t *testing.T) {
	w := NewWorld()
	pos := vec.Vec3{X: 1, Y: 2, Z: 3}

	first := w.Place(pos, Grass)
	second := w.Place(pos, Stone)

	assert.Equal(t, 2, w.Count(), "проверки занятости нет")
	top, ok := w.At(pos)
	require.True(t, ok)
	assert.Equal(t, second.ID, top.ID)

	require.True(t, w.Remove(second.ID))
	top, ok = w.At(pos)
	require.True(t, ok)
	assert.Equal(t, first.ID, top.ID, "после удаления верхнего виден предыдущий")

	require.True(t, w.Remove(first.ID))
	assert.False(t, w.Occupied(pos))
}

func TestCountByMaterial(t *testing.T) {
	w := NewWorld()
	GenerateColumn(w, 0, 0, 7, -5)

	counts := w.CountByMaterial()
	assert.Equal(t, 1, counts[Grass])
	assert.Equal(t, 2, counts[Dirt])
	assert.Equal(t, 9, counts[Stone])
	assert.Equal(t, 1, counts[Bedrock])
}

func TestMaterialNames(t *testing.T) {
	assert.Equal(t, "grass", Grass.String())
	assert.Equal(t, "bedrock", Bedrock.String())
	assert.False(t, Bedrock.Removable())
	assert.True(t, Stone.Removable())
}
