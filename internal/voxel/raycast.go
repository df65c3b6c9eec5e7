package voxel

import (
	"math"

	"github.com/annel0/blockcraft/internal/vec"
)

// Hit результат попадания луча в воксель
type Hit struct {
	Voxel    *Voxel
	Pos      vec.Vec3 // позиция занятой ячейки
	Normal   vec.Vec3 // нормаль грани, через которую луч вошёл в ячейку
	Distance float64
}

// maxRaycastSteps ограничивает обход на случай вырожденных входных данных
const maxRaycastSteps = 4096

// Raycast проходит по ячейкам вдоль луча и возвращает первую занятую.
// Ячейка с координатой n занимает куб [n-0.5, n+0.5] по каждой оси.
// Ячейка, в которой находится наблюдатель, не проверяется.
func (w *World) Raycast(origin, direction vec.Vec3Float, maxDistance float64) (Hit, bool) {
	dir := direction.Normalized()
	if dir == (vec.Vec3Float{}) || maxDistance <= 0 {
		return Hit{}, false
	}

	cell := origin.Cell()
	o := [3]float64{origin.X, origin.Y, origin.Z}
	d := [3]float64{dir.X, dir.Y, dir.Z}
	c := [3]int{cell.X, cell.Y, cell.Z}

	var step [3]int
	var tMax, tDelta [3]float64
	for axis := 0; axis < 3; axis++ {
		switch {
		case d[axis] > 0:
			step[axis] = 1
			tMax[axis] = (float64(c[axis]) + 0.5 - o[axis]) / d[axis]
			tDelta[axis] = 1 / d[axis]
		case d[axis] < 0:
			step[axis] = -1
			tMax[axis] = (o[axis] - (float64(c[axis]) - 0.5)) / -d[axis]
			tDelta[axis] = -1 / d[axis]
		default:
			tMax[axis] = math.Inf(1)
			tDelta[axis] = math.Inf(1)
		}
	}

	for i := 0; i < maxRaycastSteps; i++ {
		axis := 0
		if tMax[1] < tMax[axis] {
			axis = 1
		}
		if tMax[2] < tMax[axis] {
			axis = 2
		}

		t := tMax[axis]
		if t > maxDistance {
			return Hit{}, false
		}

		c[axis] += step[axis]
		tMax[axis] += tDelta[axis]

		pos := vec.Vec3{X: c[0], Y: c[1], Z: c[2]}
		if v, ok := w.At(pos); ok {
			var normal [3]int
			normal[axis] = -step[axis]
			return Hit{
				Voxel:    v,
				Pos:      pos,
				Normal:   vec.Vec3{X: normal[0], Y: normal[1], Z: normal[2]},
				Distance: t,
			}, true
		}
	}

	return Hit{}, false
}

// RaycastPlace ставит воксель рядом с гранью, в которую попал луч.
// Если в пределах maxDistance ничего нет, мир не меняется.
func (w *World) RaycastPlace(origin, direction vec.Vec3Float, maxDistance float64, material Material) (*Voxel, bool) {
	hit, ok := w.Raycast(origin, direction, maxDistance)
	if !ok {
		return nil, false
	}
	return w.Place(hit.Pos.Add(hit.Normal), material), true
}
