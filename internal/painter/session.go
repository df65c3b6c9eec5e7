package painter

import "github.com/annel0/blockcraft/internal/logging"

// Tool выбранный инструмент редактора
type Tool uint8

const (
	ToolGrass Tool = iota
	ToolDirt
	ToolWater
	ToolEraser
)

// Block возвращает блок, который инструмент записывает в клетку
func (t Tool) Block() BlockID {
	switch t {
	case ToolGrass:
		return GrassBlockID
	case ToolDirt:
		return DirtBlockID
	case ToolWater:
		return WaterBlockID
	default:
		return AirBlockID
	}
}

// String возвращает имя инструмента
func (t Tool) String() string {
	if t == ToolEraser {
		return "Eraser"
	}
	return t.Block().Name()
}

// ToolForKey сопоставляет клавишу инструменту: "1", "2", "3" и "0" (ластик)
func ToolForKey(key string) (Tool, bool) {
	switch key {
	case "1":
		return ToolGrass, true
	case "2":
		return ToolDirt, true
	case "3":
		return ToolWater, true
	case "0":
		return ToolEraser, true
	default:
		return 0, false
	}
}

// Session состояние сеанса редактирования, принадлежит вызывающему.
// Нулевое значение соответствует начальному состоянию (выбрана трава).
type Session struct {
	Tool Tool
}

// NewSession создаёт сеанс с инструментом по умолчанию
func NewSession() Session {
	return Session{Tool: ToolGrass}
}

// Select возвращает сеанс с новым инструментом
func (s Session) Select(tool Tool) Session {
	logging.Info("Selected Block: %s", tool)
	s.Tool = tool
	return s
}
