package matrix

// Driver is the pixel-level contract between the renderer and the panel
// framebuffer. Implementations must silently clip out-of-bounds coordinates;
// the renderer relies on that instead of pre-validating every draw.
type Driver interface {
	// Size returns the panel dimensions in pixels.
	Size() (width, height int)

	DrawPixel(x, y int, c uint16)
	FillRect(x, y, w, h int, c uint16)
	DrawRect(x, y, w, h int, c uint16)

	// Clear blanks the whole panel to black.
	Clear()
}

// Brightener is implemented by drivers whose panel brightness can be set at
// runtime. The renderer forwards SetBrightness to it when available.
type Brightener interface {
	SetBrightness(b uint8)
}

// Frame is an in-memory RGB565 framebuffer implementing Driver. The daemon
// renders into a Frame and hands its pixel slice to the transmission driver;
// tests use it directly.
type Frame struct {
	width  int
	height int
	pix    []uint16
}

// NewFrame returns a black Frame of the given size.
func NewFrame(width, height int) *Frame {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &Frame{
		width:  width,
		height: height,
		pix:    make([]uint16, width*height),
	}
}

func (f *Frame) Size() (int, int) {
	return f.width, f.height
}

// Pix returns the backing pixel slice in row-major order.
func (f *Frame) Pix() []uint16 {
	return f.pix
}

// At returns the color at (x, y), or black when out of bounds.
func (f *Frame) At(x, y int) uint16 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return ColorBlack
	}
	return f.pix[y*f.width+x]
}

func (f *Frame) DrawPixel(x, y int, c uint16) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pix[y*f.width+x] = c
}

func (f *Frame) FillRect(x, y, w, h int, c uint16) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := x, y
	x1, y1 := x+w, y+h
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > f.width {
		x1 = f.width
	}
	if y1 > f.height {
		y1 = f.height
	}
	for yy := y0; yy < y1; yy++ {
		row := yy * f.width
		for xx := x0; xx < x1; xx++ {
			f.pix[row+xx] = c
		}
	}
}

func (f *Frame) DrawRect(x, y, w, h int, c uint16) {
	if w <= 0 || h <= 0 {
		return
	}
	f.FillRect(x, y, w, 1, c)
	f.FillRect(x, y+h-1, w, 1, c)
	f.FillRect(x, y, 1, h, c)
	f.FillRect(x+w-1, y, 1, h, c)
}

func (f *Frame) Clear() {
	for i := range f.pix {
		f.pix[i] = ColorBlack
	}
}
