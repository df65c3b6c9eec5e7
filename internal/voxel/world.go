package voxel

import (
	"sort"

	"github.com/annel0/blockcraft/internal/logging"
	"github.com/annel0/blockcraft/internal/vec"
)

// EntityID уникальный идентификатор вокселя
type EntityID uint64

// Voxel отдельная сущность мира
type Voxel struct {
	ID       EntityID
	Pos      vec.Vec3
	Material Material
}

// World хранит воксели.
// Проверки занятости нет: при установке в занятую позицию старая сущность остаётся,
// а поиск по позиции находит последнюю установленную.
type World struct {
	entities     map[EntityID]*Voxel
	byPos        map[vec.Vec3][]EntityID // в порядке установки, последний сверху
	nextEntityID EntityID
}

// NewWorld создаёт пустой мир
func NewWorld() *World {
	return &World{
		entities:     make(map[EntityID]*Voxel),
		byPos:        make(map[vec.Vec3][]EntityID),
		nextEntityID: 1,
	}
}

// Place создаёт новый воксель. Всегда успешно.
func (w *World) Place(pos vec.Vec3, material Material) *Voxel {
	v := &Voxel{ID: w.nextEntityID, Pos: pos, Material: material}
	w.nextEntityID++

	w.entities[v.ID] = v
	w.byPos[pos] = append(w.byPos[pos], v.ID)
	return v
}

// Remove удаляет воксель. Бедрок и неизвестные ID молча игнорируются.
func (w *World) Remove(id EntityID) bool {
	v, ok := w.Get(id)
	if !ok {
		return false
	}
	if !v.Material.Removable() {
		logging.Debug("Voxel %d (%s) at %v is not removable", v.ID, v.Material, v.Pos)
		return false
	}

	delete(w.entities, id)

	stack := w.byPos[v.Pos]
	for i, other := range stack {
		if other == id {
			stack = append(stack[:i], stack[i+1:]...)
			break
		}
	}
	if len(stack) == 0 {
		delete(w.byPos, v.Pos)
	} else {
		w.byPos[v.Pos] = stack
	}

	return true
}

// Get возвращает воксель по ID
func (w *World) Get(id EntityID) (*Voxel, bool) {
	v, ok := w.entities[id]
	return v, ok
}

// At возвращает последний установленный воксель в позиции
func (w *World) At(pos vec.Vec3) (*Voxel, bool) {
	stack := w.byPos[pos]
	if len(stack) == 0 {
		return nil, false
	}
	return w.entities[stack[len(stack)-1]], true
}

// Occupied проверяет, есть ли в позиции хотя бы один воксель
func (w *World) Occupied(pos vec.Vec3) bool {
	return len(w.byPos[pos]) > 0
}

// Count возвращает количество вокселей в мире
func (w *World) Count() int {
	return len(w.entities)
}

// CountByMaterial возвращает количество вокселей каждого материала
func (w *World) CountByMaterial() map[Material]int {
	counts := make(map[Material]int)
	for _, v := range w.entities {
		counts[v.Material]++
	}
	return counts
}

// Column возвращает воксели колонки (x, z) сверху вниз
func (w *World) Column(x, z int) []*Voxel {
	var column []*Voxel
	for _, v := range w.entities {
		if v.Pos.X == x && v.Pos.Z == z {
			column = append(column, v)
		}
	}
	sort.Slice(column, func(i, j int) bool {
		if column[i].Pos.Y != column[j].Pos.Y {
			return column[i].Pos.Y > column[j].Pos.Y
		}
		return column[i].ID < column[j].ID
	})
	return column
}

// Visible возвращает верхние воксели всех занятых позиций в детерминированном порядке
func (w *World) Visible() []*Voxel {
	out := make([]*Voxel, 0, len(w.byPos))
	for pos := range w.byPos {
		if v, ok := w.At(pos); ok {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Pos, out[j].Pos
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})
	return out
}
