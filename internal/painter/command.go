package painter

import "github.com/annel0/blockcraft/internal/vec"

// Command команда редактора. Реализации: PaintCmd, EraseCmd, SelectToolCmd.
type Command interface {
	isCommand()
}

// PaintCmd записывает выбранный инструмент в клетку
type PaintCmd struct {
	X, Y int
}

// EraseCmd очищает клетку
type EraseCmd struct {
	X, Y int
}

// SelectToolCmd меняет выбранный инструмент
type SelectToolCmd struct {
	Tool Tool
}

func (PaintCmd) isCommand()      {}
func (EraseCmd) isCommand()      {}
func (SelectToolCmd) isCommand() {}

// State полное состояние редактора: сетка и сеанс
type State struct {
	Grid    *Grid
	Session Session
}

// Outcome описывает результат применения команды
type Outcome struct {
	Changed  bool    // сетка изменилась
	Previous BlockID // значение клетки до команды (для Paint/Erase)
	Placed   BlockID // записанное значение (для Paint)
}

// Reduce применяет команду и возвращает следующее состояние.
// Входное состояние не изменяется: при записи в клетку сетка копируется.
func Reduce(state State, cmd Command) (State, Outcome) {
	switch c := cmd.(type) {
	case PaintCmd:
		if !(vec.Vec2{X: c.X, Y: c.Y}).In(state.Grid.Size()) {
			return state, Outcome{}
		}
		id := state.Session.Tool.Block()
		prev := state.Grid.At(c.X, c.Y)
		next := state.Grid.Clone()
		next.Paint(c.X, c.Y, id)
		return State{Grid: next, Session: state.Session}, Outcome{Changed: prev != id, Previous: prev, Placed: id}

	case EraseCmd:
		if !(vec.Vec2{X: c.X, Y: c.Y}).In(state.Grid.Size()) {
			return state, Outcome{}
		}
		next := state.Grid.Clone()
		prev := next.Erase(c.X, c.Y)
		return State{Grid: next, Session: state.Session}, Outcome{Changed: prev != AirBlockID, Previous: prev}

	case SelectToolCmd:
		return State{Grid: state.Grid, Session: state.Session.Select(c.Tool)}, Outcome{}
	}

	return state, Outcome{}
}
