package vec

// Vec2 представляет 2D координаты (колонка, строка)
type Vec2 struct {
	X, Y int
}

// Add складывает два вектора
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Clamp ограничивает каждую ось независимо диапазоном [0, size-1].
// Для пустого размера по оси возвращает 0.
func (v Vec2) Clamp(size Vec2) Vec2 {
	return Vec2{X: clampAxis(v.X, size.X), Y: clampAxis(v.Y, size.Y)}
}

// In проверяет, что точка лежит внутри прямоугольника [0,size)
func (v Vec2) In(size Vec2) bool {
	return v.X >= 0 && v.X < size.X && v.Y >= 0 && v.Y < size.Y
}

func clampAxis(value, size int) int {
	if value >= size {
		value = size - 1
	}
	if value < 0 {
		value = 0
	}
	return value
}

// DivideFloor делит с округлением к минус бесконечности
func DivideFloor(a, b int) int {
	temp := a / b

	if ((a ^ b) < 0) && (a%b != 0) {
		return temp - 1
	}

	return temp
}
