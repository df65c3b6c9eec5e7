package heightmap

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeError возвращается, когда источник карты высот нельзя прочитать
// или преобразовать в одноканальную яркость.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("heightmap: не удалось декодировать изображение: %v", e.Err)
	}
	return fmt.Sprintf("heightmap: не удалось декодировать %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Heightmap неизменяемое поле яркостей [0,255].
// Первая ось (x) соответствует строкам изображения, вторая (z) столбцам.
type Heightmap struct {
	rows    int
	cols    int
	samples []uint8
}

// New создаёт карту высот из готовых отсчётов, samples[x*cols+z]
func New(rows, cols int, samples []uint8) (*Heightmap, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("heightmap: пустой размер %dx%d", rows, cols)
	}
	if len(samples) != rows*cols {
		return nil, fmt.Errorf("heightmap: ожидалось %d отсчётов, получено %d", rows*cols, len(samples))
	}
	data := make([]uint8, len(samples))
	copy(data, samples)
	return &Heightmap{rows: rows, cols: cols, samples: data}, nil
}

// Load читает карту высот из файла
func Load(path string) (*Heightmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	hm, err := Decode(f)
	if err != nil {
		if de, ok := err.(*DecodeError); ok {
			de.Path = path
		}
		return nil, err
	}
	return hm, nil
}

// Decode декодирует растровое изображение и переводит его в градации серого
func Decode(r io.Reader) (*Heightmap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return FromImage(img)
}

// FromImage преобразует произвольное изображение в карту высот
func FromImage(img image.Image) (*Heightmap, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, &DecodeError{Err: fmt.Errorf("пустое изображение %v", b)}
	}

	hm := &Heightmap{
		rows:    b.Dy(),
		cols:    b.Dx(),
		samples: make([]uint8, b.Dx()*b.Dy()),
	}

	for row := 0; row < hm.rows; row++ {
		for col := 0; col < hm.cols; col++ {
			gray := color.GrayModel.Convert(img.At(b.Min.X+col, b.Min.Y+row)).(color.Gray)
			hm.samples[row*hm.cols+col] = gray.Y
		}
	}

	return hm, nil
}

// Rows количество значений по оси x
func (h *Heightmap) Rows() int { return h.rows }

// Cols количество значений по оси z
func (h *Heightmap) Cols() int { return h.cols }

// At возвращает яркость в точке (x, z)
func (h *Heightmap) At(x, z int) uint8 {
	return h.samples[x*h.cols+z]
}

// Elevation переводит яркость в высоту: int(sample/255 * scale), с отбрасыванием дробной части
func Elevation(sample uint8, scale float64) int {
	return int(float64(sample) / 255 * scale)
}

// Image возвращает копию карты высот как изображение в градациях серого
func (h *Heightmap) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, h.cols, h.rows))
	for row := 0; row < h.rows; row++ {
		copy(img.Pix[row*img.Stride:row*img.Stride+h.cols], h.samples[row*h.cols:(row+1)*h.cols])
	}
	return img
}
