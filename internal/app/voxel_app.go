package app

import (
	"github.com/annel0/blockcraft/internal/host"
	"github.com/annel0/blockcraft/internal/logging"
	"github.com/annel0/blockcraft/internal/metrics"
	"github.com/annel0/blockcraft/internal/vec"
	"github.com/annel0/blockcraft/internal/voxel"
)

// VoxelApp связывает мир вокселей с циклом кадров
type VoxelApp struct {
	world     *voxel.World
	session   voxel.Session
	origin    vec.Vec3Float
	direction vec.Vec3Float
	reach     float64
	indicator voxel.Material
	metrics   *metrics.Metrics // может быть nil
}

// NewVoxelApp создаёт приложение поверх сгенерированного мира
func NewVoxelApp(world *voxel.World, origin, direction vec.Vec3Float, reach float64, m *metrics.Metrics) *VoxelApp {
	s := voxel.NewSession()
	return &VoxelApp{
		world:     world,
		session:   s,
		origin:    origin,
		direction: direction,
		reach:     reach,
		indicator: s.Indicator(),
		metrics:   m,
	}
}

// PrintControls выводит подсказку по управлению
func (a *VoxelApp) PrintControls() {
	logging.Info("Controls:")
	logging.Info(" Left Click: Place selected block on the face you look at")
	logging.Info(" Right Click: Remove hovered block (bedrock stays)")
	logging.Info(" Keys 1, 2, 3: Select grass, dirt, stone")
	logging.Info("Selected material: %s", a.session.Material)
}

// HandleEvent переводит событие в команду и применяет её к миру
func (a *VoxelApp) HandleEvent(ev host.Event) {
	var (
		cmd voxel.Command
		ok  bool
	)

	switch ev.Kind {
	case host.EventLook:
		if ev.Position != nil {
			a.origin = vec.Vec3Float{X: ev.Position[0], Y: ev.Position[1], Z: ev.Position[2]}
		}
		if ev.Direction != nil {
			a.direction = vec.Vec3Float{X: ev.Direction[0], Y: ev.Direction[1], Z: ev.Direction[2]}
		}
		return
	case host.EventPointerDown:
		cmd, ok = voxel.CommandForPointer(ev.Button, a.origin, a.direction)
	case host.EventKeyDown:
		cmd, ok = voxel.CommandForKey(ev.Key)
	}
	if !ok {
		return
	}

	res := voxel.Apply(a.world, &a.session, cmd, a.reach)

	if a.metrics != nil {
		result := "ok"
		if res.Ignored {
			result = "ignored"
		}
		a.metrics.ObserveCommand("voxel", voxelCommandName(cmd), result)
	}
}

// Redraw обновляет индикатор выбранного материала.
// Сама отрисовка мира выполняется экспортом после завершения цикла.
func (a *VoxelApp) Redraw() error {
	if a.indicator != a.session.Indicator() {
		a.indicator = a.session.Indicator()
		logging.Debug("Held block indicator: %s", a.indicator)
	}

	if a.metrics != nil {
		a.metrics.ObserveFrame()
		a.metrics.SetVoxels(a.world.Count())
	}
	return nil
}

// World возвращает мир
func (a *VoxelApp) World() *voxel.World {
	return a.world
}

// Session возвращает текущий сеанс
func (a *VoxelApp) Session() voxel.Session {
	return a.session
}

func voxelCommandName(cmd voxel.Command) string {
	switch cmd.(type) {
	case voxel.PlaceCmd:
		return "place"
	case voxel.RemoveCmd:
		return "remove"
	case voxel.SelectMaterialCmd:
		return "select"
	default:
		return "unknown"
	}
}
