package voxel

import (
	"fmt"

	"github.com/annel0/blockcraft/internal/vec"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Mesh геометрия видимых граней мира
type Mesh struct {
	Positions [][3]float32
	Normals   [][3]float32
	Colors    [][4]float32
	Indices   []uint32
}

type cubeFace struct {
	normal  vec.Vec3
	corners [4][3]float32
}

// Грани куба с центром в нуле, обход против часовой стрелки снаружи
var cubeFaces = [6]cubeFace{
	{vec.Vec3{X: 1}, [4][3]float32{{0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}, {0.5, -0.5, 0.5}}},
	{vec.Vec3{X: -1}, [4][3]float32{{-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}, {-0.5, -0.5, -0.5}}},
	{vec.Vec3{Y: 1}, [4][3]float32{{-0.5, 0.5, -0.5}, {-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}}},
	{vec.Vec3{Y: -1}, [4][3]float32{{-0.5, -0.5, 0.5}, {-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}}},
	{vec.Vec3{Z: 1}, [4][3]float32{{0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, -0.5, 0.5}}},
	{vec.Vec3{Z: -1}, [4][3]float32{{-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, -0.5, -0.5}}},
}

// BuildMesh строит сетку из граней, не закрытых соседними вокселями
func BuildMesh(w *World) Mesh {
	var mesh Mesh

	for _, v := range w.Visible() {
		c := v.Material.Color()
		rgba := [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, 1}

		for _, face := range cubeFaces {
			if w.Occupied(v.Pos.Add(face.normal)) {
				continue
			}

			base := uint32(len(mesh.Positions))
			n := [3]float32{float32(face.normal.X), float32(face.normal.Y), float32(face.normal.Z)}
			for _, corner := range face.corners {
				mesh.Positions = append(mesh.Positions, [3]float32{
					float32(v.Pos.X) + corner[0],
					float32(v.Pos.Y) + corner[1],
					float32(v.Pos.Z) + corner[2],
				})
				mesh.Normals = append(mesh.Normals, n)
				mesh.Colors = append(mesh.Colors, rgba)
			}
			mesh.Indices = append(mesh.Indices, base, base+1, base+2, base, base+2, base+3)
		}
	}

	return mesh
}

// ExportGLB сохраняет видимую геометрию мира в бинарный glTF
func ExportGLB(w *World, path string) error {
	mesh := BuildMesh(w)
	if len(mesh.Indices) == 0 {
		return fmt.Errorf("voxel: в мире нет видимых граней для экспорта")
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "blockcraft voxelize"

	posAccessor := modeler.WritePosition(doc, mesh.Positions)
	normalAccessor := modeler.WriteNormal(doc, mesh.Normals)
	colorAccessor := modeler.WriteColor(doc, mesh.Colors)
	indicesAccessor := modeler.WriteIndices(doc, mesh.Indices)

	prim := &gltf.Primitive{
		Attributes: gltf.PrimitiveAttributes{
			gltf.POSITION: posAccessor,
			gltf.NORMAL:   normalAccessor,
			gltf.COLOR_0:  colorAccessor,
		},
		Indices: gltf.Index(indicesAccessor),
	}

	pbr := &gltf.PBRMetallicRoughness{
		BaseColorFactor: &[4]float64{1, 1, 1, 1},
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(1),
	}
	doc.Materials = []*gltf.Material{{PBRMetallicRoughness: pbr, AlphaMode: gltf.AlphaOpaque}}
	prim.Material = gltf.Index(0)

	doc.Meshes = []*gltf.Mesh{{Name: "VoxelWorld", Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("voxel: не удалось сохранить %s: %w", path, err)
	}
	return nil
}
