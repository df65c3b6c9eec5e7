package voxel

import (
	"testing"

	"github.com/annel0/blockcraft/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSelection(t *testing.T) {
	s := NewSession()
	assert.Equal(t, Grass, s.Indicator())

	for key, want := range map[string]Material{"1": Grass, "2": Dirt, "3": Stone} {
		m, ok := MaterialForKey(key)
		require.True(t, ok)
		assert.Equal(t, want, m)

		assert.True(t, s.Select(m))
		first := s
		assert.True(t, s.Select(m))
		assert.Equal(t, first, s, "повторный выбор не меняет состояние")
	}

	assert.False(t, s.Select(Bedrock), "бедрок выбрать нельзя")
	assert.Equal(t, Stone, s.Material)

	_, ok := MaterialForKey("4")
	assert.False(t, ok)
	_, ok = CommandForKey("0")
	assert.False(t, ok)
}

func TestApplyPlaceAndRemove(t *testing.T) {
	w := NewWorld()
	GenerateColumn(w, 0, 0, 1, -1)
	s := NewSession()

	origin := vec.Vec3Float{X: 0, Y: 5, Z: 0}
	down := vec.Vec3Float{Y: -1}

	cmd, ok := CommandForKey("3")
	require.True(t, ok)
	Apply(w, &s, cmd, 10)
	assert.Equal(t, Stone, s.Material)

	cmd, ok = CommandForPointer(ButtonPrimary, origin, down)
	require.True(t, ok)
	res := Apply(w, &s, cmd, 10)
	require.NotNil(t, res.Placed)
	assert.Equal(t, vec.Vec3{X: 0, Y: 2, Z: 0}, res.Placed.Pos)
	assert.Equal(t, Stone, res.Placed.Material)
	assert.Equal(t, 4, w.Count())

	cmd, ok = CommandForPointer(ButtonSecondary, origin, down)
	require.True(t, ok)
	res = Apply(w, &s, cmd, 10)
	require.NotNil(t, res.Removed)
	assert.Equal(t, 3, w.Count())

	// Убираем всё до бедрока
	Apply(w, &s, RemoveCmd{Origin: origin, Direction: down}, 10)
	Apply(w, &s, RemoveCmd{Origin: origin, Direction: down}, 10)
	assert.Equal(t, 1, w.Count())

	res = Apply(w, &s, RemoveCmd{Origin: origin, Direction: down}, 10)
	assert.True(t, res.Ignored, "бедрок не удаляется")
	assert.Equal(t, 1, w.Count())

	_, ok = CommandForPointer(2, origin, down)
	assert.False(t, ok)
}

func TestApplyMiss(t *testing.T) {
	w := NewWorld()
	s := NewSession()

	res := Apply(w, &s, PlaceCmd{Origin: vec.Vec3Float{}, Direction: vec.Vec3Float{Z: 1}}, 10)
	assert.True(t, res.Ignored)
	assert.Equal(t, 0, w.Count())

	res = Apply(w, &s, SelectMaterialCmd{Material: Bedrock}, 10)
	assert.True(t, res.Ignored)
	assert.Equal(t, Grass, s.Material)
}
