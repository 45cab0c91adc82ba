package matrix

// Icons are 1-bit bitmaps, row major, 1 = pixel on.

// Status circle icon (8x8).
var statusIcon = [64]uint8{
	0, 0, 1, 1, 1, 1, 0, 0,
	0, 1, 1, 1, 1, 1, 1, 0,
	1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1,
	0, 1, 1, 1, 1, 1, 1, 0,
	0, 0, 1, 1, 1, 1, 0, 0,
}

// Camera icon (8x5).
var cameraIcon = [40]uint8{
	1, 1, 1, 1, 1, 0, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 0,
	1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 0, 1, 1,
}

// Microphone icon (5x5).
var micIcon = [25]uint8{
	0, 1, 1, 1, 0,
	0, 1, 1, 1, 0,
	0, 1, 1, 1, 0,
	1, 0, 1, 0, 1,
	0, 1, 1, 1, 0,
}

// Call/phone icon (8x5).
var callIcon = [40]uint8{
	1, 1, 0, 0, 0, 0, 1, 1,
	1, 1, 1, 0, 0, 1, 1, 1,
	0, 1, 1, 1, 1, 1, 1, 0,
	0, 0, 1, 1, 1, 1, 0, 0,
	0, 0, 0, 1, 1, 0, 0, 0,
}

// WiFi icon (7x5).
var wifiIcon = [35]uint8{
	0, 0, 1, 1, 1, 0, 0,
	0, 1, 0, 0, 0, 1, 0,
	1, 0, 0, 1, 0, 0, 1,
	0, 0, 1, 0, 1, 0, 0,
	0, 0, 0, 1, 0, 0, 0,
}

// Checkmark icon (5x5).
var checkIcon = [25]uint8{
	0, 0, 0, 0, 1,
	0, 0, 0, 1, 0,
	1, 0, 1, 0, 0,
	0, 1, 0, 0, 0,
	0, 0, 0, 0, 0,
}

// X/error icon (5x5).
var errorIcon = [25]uint8{
	1, 0, 0, 0, 1,
	0, 1, 0, 1, 0,
	0, 0, 1, 0, 0,
	0, 1, 0, 1, 0,
	1, 0, 0, 0, 1,
}

// drawBitmap blits a 1-bit bitmap with per-pixel bounds checking.
func (r *Renderer) drawBitmap(x, y int, bitmap []uint8, width, height int, color uint16) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			if bitmap[dy*width+dx] != 0 {
				r.drawPixel(x+dx, y+dy, color)
			}
		}
	}
}

// drawIconStrikethrough draws an X across an icon area to mark it off/muted.
func (r *Renderer) drawIconStrikethrough(x, y, width, height int, color uint16) {
	if width <= 0 || height <= 0 {
		return
	}
	// Bresenham is overkill at these sizes; step the longer axis.
	steps := width
	if height > steps {
		steps = height
	}
	if steps < 2 {
		r.drawPixel(x, y, color)
		return
	}
	for i := 0; i < steps; i++ {
		dx := i * (width - 1) / (steps - 1)
		dy := i * (height - 1) / (steps - 1)
		r.drawPixel(x+dx, y+dy, color)
		r.drawPixel(x+width-1-dx, y+dy, color)
	}
}

func (r *Renderer) drawStatusIcon(x, y int, status string) {
	r.drawBitmap(x, y, statusIcon[:], 8, 8, StatusColor(status))
}

func (r *Renderer) drawCameraIcon(x, y int, on bool) {
	color := ColorGreen
	if !on {
		color = ColorRed
	}
	r.drawBitmap(x, y, cameraIcon[:], 8, 5, color)
	if !on {
		r.drawIconStrikethrough(x, y, 8, 5, ColorRed)
	}
}

func (r *Renderer) drawMicIcon(x, y int, muted bool) {
	color := ColorGreen
	if muted {
		color = ColorRed
	}
	r.drawBitmap(x, y, micIcon[:], 5, 5, color)
	if muted {
		r.drawIconStrikethrough(x, y, 5, 5, ColorRed)
	}
}

func (r *Renderer) drawCallIcon(x, y int) {
	r.drawBitmap(x, y, callIcon[:], 8, 5, ColorGreen)
}

func (r *Renderer) drawWifiIcon(x, y int, connected bool) {
	color := ColorGreen
	if !connected {
		color = ColorRed
	}
	r.drawBitmap(x, y, wifiIcon[:], 7, 5, color)
}

func (r *Renderer) drawCheckIcon(x, y int, color uint16) {
	r.drawBitmap(x, y, checkIcon[:], 5, 5, color)
}

func (r *Renderer) drawErrorIcon(x, y int, color uint16) {
	r.drawBitmap(x, y, errorIcon[:], 5, 5, color)
}
