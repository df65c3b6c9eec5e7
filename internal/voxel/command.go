package voxel

import (
	"github.com/annel0/blockcraft/internal/logging"
	"github.com/annel0/blockcraft/internal/vec"
)

// Command команда мира вокселей. Реализации: PlaceCmd, RemoveCmd, SelectMaterialCmd.
type Command interface {
	isCommand()
}

// PlaceCmd ставит выбранный материал к грани, на которую смотрит наблюдатель
type PlaceCmd struct {
	Origin    vec.Vec3Float
	Direction vec.Vec3Float
}

// RemoveCmd удаляет воксель под взглядом наблюдателя
type RemoveCmd struct {
	Origin    vec.Vec3Float
	Direction vec.Vec3Float
}

// SelectMaterialCmd меняет выбранный материал
type SelectMaterialCmd struct {
	Material Material
}

func (PlaceCmd) isCommand()          {}
func (RemoveCmd) isCommand()         {}
func (SelectMaterialCmd) isCommand() {}

// Result итог применения команды
type Result struct {
	Placed  *Voxel
	Removed *Voxel
	Ignored bool // попадание в бедрок или промах
}

// Apply применяет команду к миру. Сеанс принадлежит вызывающему.
func Apply(w *World, s *Session, cmd Command, reach float64) Result {
	switch c := cmd.(type) {
	case PlaceCmd:
		v, ok := w.RaycastPlace(c.Origin, c.Direction, reach, s.Material)
		if !ok {
			return Result{Ignored: true}
		}
		logging.Info("Placed %s voxel %d at %v", v.Material, v.ID, v.Pos)
		return Result{Placed: v}

	case RemoveCmd:
		hit, ok := w.Raycast(c.Origin, c.Direction, reach)
		if !ok {
			return Result{Ignored: true}
		}
		if !w.Remove(hit.Voxel.ID) {
			return Result{Ignored: true}
		}
		logging.Info("Removed %s voxel %d at %v", hit.Voxel.Material, hit.Voxel.ID, hit.Voxel.Pos)
		return Result{Removed: hit.Voxel}

	case SelectMaterialCmd:
		if !s.Select(c.Material) {
			return Result{Ignored: true}
		}
		logSelection(s.Material)
		return Result{}
	}

	return Result{Ignored: true}
}

// Кнопки указателя
const (
	ButtonPrimary   = 1
	ButtonSecondary = 3
)

// CommandForPointer переводит нажатие кнопки в команду по текущему взгляду наблюдателя
func CommandForPointer(button int, origin, direction vec.Vec3Float) (Command, bool) {
	switch button {
	case ButtonPrimary:
		return PlaceCmd{Origin: origin, Direction: direction}, true
	case ButtonSecondary:
		return RemoveCmd{Origin: origin, Direction: direction}, true
	default:
		return nil, false
	}
}

// CommandForKey переводит клавишу в команду выбора материала
func CommandForKey(key string) (Command, bool) {
	m, ok := MaterialForKey(key)
	if !ok {
		return nil, false
	}
	return SelectMaterialCmd{Material: m}, true
}
