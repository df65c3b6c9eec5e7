package voxel

import "github.com/annel0/blockcraft/internal/logging"

// Session выбранный материал наблюдателя. Бедрок выбрать нельзя.
type Session struct {
	Material Material
}

// NewSession создаёт сеанс с травой по умолчанию
func NewSession() Session {
	return Session{Material: Grass}
}

// MaterialForKey сопоставляет клавиши "1", "2", "3" материалам
func MaterialForKey(key string) (Material, bool) {
	switch key {
	case "1":
		return Grass, true
	case "2":
		return Dirt, true
	case "3":
		return Stone, true
	default:
		return 0, false
	}
}

// Select меняет материал. Попытка выбрать бедрок игнорируется.
func (s *Session) Select(m Material) bool {
	switch m {
	case Grass, Dirt, Stone:
		s.Material = m
		return true
	default:
		return false
	}
}

// Indicator материал, показываемый в руке наблюдателя
func (s *Session) Indicator() Material {
	return s.Material
}

func logSelection(m Material) {
	logging.Info("Selected material: %s", m)
}
