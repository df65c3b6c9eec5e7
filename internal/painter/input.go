package painter

// Кнопки указателя
const (
	ButtonPrimary   = 1
	ButtonSecondary = 3
)

// CommandForPointer переводит нажатие кнопки указателя в команду.
// Позиция в пикселях ограничивается сеткой через PixelToCell.
func CommandForPointer(g *Grid, button, px, py int) (Command, bool) {
	x, y := g.PixelToCell(px, py)

	switch button {
	case ButtonPrimary:
		return PaintCmd{X: x, Y: y}, true
	case ButtonSecondary:
		return EraseCmd{X: x, Y: y}, true
	default:
		return nil, false
	}
}

// CommandForKey переводит нажатие клавиши в команду выбора инструмента
func CommandForKey(key string) (Command, bool) {
	tool, ok := ToolForKey(key)
	if !ok {
		return nil, false
	}
	return SelectToolCmd{Tool: tool}, true
}
