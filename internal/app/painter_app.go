package app

import (
	"image"

	"github.com/annel0/blockcraft/internal/host"
	"github.com/annel0/blockcraft/internal/logging"
	"github.com/annel0/blockcraft/internal/metrics"
	"github.com/annel0/blockcraft/internal/painter"
)

// PainterApp связывает 2D-редактор с циклом кадров
type PainterApp struct {
	state   painter.State
	surface *image.RGBA
	metrics *metrics.Metrics // может быть nil
}

// NewPainterApp создаёт редактор под поверхность screenWidth x screenHeight
func NewPainterApp(screenWidth, screenHeight, tileSize int, m *metrics.Metrics) (*PainterApp, error) {
	grid, err := painter.NewGrid(screenWidth, screenHeight, tileSize)
	if err != nil {
		return nil, err
	}

	return &PainterApp{
		state:   painter.State{Grid: grid, Session: painter.NewSession()},
		surface: painter.NewSurface(screenWidth, screenHeight),
		metrics: m,
	}, nil
}

// PrintControls выводит подсказку по управлению
func (a *PainterApp) PrintControls() {
	logging.Info("Controls:")
	logging.Info(" Left Click: Place selected block")
	logging.Info(" Right Click: Remove block (set to Air)")
	logging.Info(" Keys 1, 2, 3: Select Grass, Dirt, Water")
	logging.Info(" Key 0: Select Eraser (Air)")
	logging.Info("Selected Block: %s", a.state.Session.Tool)
}

// HandleEvent переводит событие в команду и применяет её
func (a *PainterApp) HandleEvent(ev host.Event) {
	var (
		cmd painter.Command
		ok  bool
	)

	switch ev.Kind {
	case host.EventPointerDown:
		cmd, ok = painter.CommandForPointer(a.state.Grid, ev.Button, ev.X, ev.Y)
	case host.EventKeyDown:
		cmd, ok = painter.CommandForKey(ev.Key)
	}
	if !ok {
		return
	}

	next, outcome := painter.Reduce(a.state, cmd)
	a.state = next

	if a.metrics != nil {
		result := "unchanged"
		if outcome.Changed {
			result = "changed"
		}
		a.metrics.ObserveCommand("painter", commandName(cmd), result)
	}
}

// Redraw перерисовывает поверхность
func (a *PainterApp) Redraw() error {
	painter.Render(a.state.Grid, a.surface)

	if a.metrics != nil {
		a.metrics.ObserveFrame()
		a.metrics.SetPaintedCells(a.state.Grid.Count())
	}
	return nil
}

// State возвращает текущее состояние редактора
func (a *PainterApp) State() painter.State {
	return a.state
}

// Surface возвращает последний отрисованный кадр
func (a *PainterApp) Surface() *image.RGBA {
	return a.surface
}

func commandName(cmd painter.Command) string {
	switch cmd.(type) {
	case painter.PaintCmd:
		return "paint"
	case painter.EraseCmd:
		return "erase"
	case painter.SelectToolCmd:
		return "select"
	default:
		return "unknown"
	}
}
