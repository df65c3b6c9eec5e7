package voxel

import (
	"path/filepath"
	"testing"

	"github.com/annel0/blockcraft/internal/vec"
	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMeshCullsHiddenFaces(t *testing.T) {
	w := NewWorld()
	w.Place(vec.Vec3{}, Stone)

	mesh := BuildMesh(w)
	assert.Len(t, mesh.Positions, 6*4, "у одиночного куба шесть граней")
	assert.Len(t, mesh.Indices, 6*6)

	// Соседний куб закрывает по одной грани у каждого
	w.Place(vec.Vec3{X: 1}, Dirt)
	mesh = BuildMesh(w)
	assert.Len(t, mesh.Positions, 10*4)
	assert.Len(t, mesh.Normals, len(mesh.Positions))
	assert.Len(t, mesh.Colors, len(mesh.Positions))
}

func TestExportGLB(t *testing.T) {
	w := NewWorld()
	GenerateColumn(w, 0, 0, 3, -1)
	GenerateColumn(w, 0, 1, 1, -1)

	path := filepath.Join(t.TempDir(), "world.glb")
	require.NoError(t, ExportGLB(w, path))

	doc, err := gltf.Open(path)
	require.NoError(t, err)
	require.Len(t, doc.Meshes, 1)
	assert.Equal(t, "VoxelWorld", doc.Meshes[0].Name)
	require.Len(t, doc.Meshes[0].Primitives, 1)

	prim := doc.Meshes[0].Primitives[0]
	require.NotNil(t, prim.Indices)
	for _, attr := range []string{gltf.POSITION, gltf.NORMAL, gltf.COLOR_0} {
		idx, ok := prim.Attributes[attr]
		require.True(t, ok, "нет атрибута %s", attr)
		require.Less(t, idx, len(doc.Accessors))
	}

	mesh := BuildMesh(w)
	assert.Equal(t, len(mesh.Positions), doc.Accessors[prim.Attributes[gltf.POSITION]].Count)
	assert.Equal(t, len(mesh.Indices), doc.Accessors[*prim.Indices].Count)
	assert.Equal(t, []int{0}, doc.Scenes[0].Nodes)
}

func TestExportEmptyWorld(t *testing.T) {
	err := ExportGLB(NewWorld(), filepath.Join(t.TempDir(), "empty.glb"))
	assert.Error(t, err)
}
