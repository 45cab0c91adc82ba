package matrix

import "strings"

// Drawing primitives over the Driver. Everything here clips against the panel
// bounds and degrades to a no-op rather than faulting.

func (r *Renderer) fillRect(x, y, w, h int, c uint16) {
	r.drv.FillRect(x, y, w, h, c)
}

func (r *Renderer) drawRect(x, y, w, h int, c uint16) {
	r.drv.DrawRect(x, y, w, h, c)
}

func (r *Renderer) drawPixel(x, y int, c uint16) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	r.drv.DrawPixel(x, y, c)
}

// drawText renders text in the 5x7 font with the top-left corner at (x, y).
// Characters outside the font range are skipped.
func (r *Renderer) drawText(x, y int, text string, color uint16) {
	cursor := x
	safe := sanitizeSingleLine(text)
	for i := 0; i < len(safe); i++ {
		c := safe[i]
		if c < font5x7First || c > font5x7Last {
			cursor += charWidth
			continue
		}
		glyph := &font5x7[c-font5x7First]
		for col := 0; col < 5; col++ {
			bits := glyph[col]
			for row := 0; row < 7; row++ {
				if bits&(1<<row) != 0 {
					r.drawPixel(cursor+col, y+row, color)
				}
			}
		}
		cursor += charWidth
	}
}

func (r *Renderer) drawCenteredText(y int, text string, color uint16) {
	safe := sanitizeSingleLine(text)
	x := (r.width - textWidth(safe)) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, safe, color)
}

func (r *Renderer) drawTinyText(x, y int, text string, color uint16) {
	cursor := x
	for i := 0; i < len(text); i++ {
		r.drawTinyChar(cursor, y, text[i], color)
		cursor += tinyCharWidth
	}
}

func (r *Renderer) drawTinyChar(x, y int, c byte, color uint16) {
	glyph := tinyGlyph(c)
	if glyph == nil {
		return
	}
	for row := 0; row < 5; row++ {
		bits := glyph[row]
		for col := 0; col < 3; col++ {
			if bits&(1<<(2-col)) != 0 {
				r.drawPixel(x+col, y+row, color)
			}
		}
	}
}

// drawStatusBorder draws width concentric rectangles around the panel edge.
func (r *Renderer) drawStatusBorder(color uint16, width int) {
	width = clampBorderWidth(width)
	for i := 0; i < width; i++ {
		r.drawRect(i, i, r.width-2*i, r.height-2*i, color)
	}
}

// drawSeparator draws a 1 px horizontal rule with small side margins.
func (r *Renderer) drawSeparator(y int, color uint16) {
	r.fillRect(4, y, r.width-8, 1, color)
}

// textWidth returns the pixel width of text in the 5x7 font.
func textWidth(text string) int {
	return len(text) * charWidth
}

// lineY returns the clamped Y position of a text line.
func (r *Renderer) lineY(lineIndex, lineHeight, topOffset int) int {
	if lineHeight == 0 {
		lineHeight = lineHeightPx
	}
	y := topOffset + lineHeight*lineIndex
	maxY := r.height - lineHeight
	if y > maxY {
		y = maxY
	}
	if y < 0 {
		y = 0
	}
	return y
}

// sanitizeSingleLine replaces line breaks so a snapshot string can never
// spill onto another row.
func sanitizeSingleLine(text string) string {
	if !strings.ContainsAny(text, "\r\n") {
		return text
	}
	text = strings.ReplaceAll(text, "\r", " ")
	return strings.ReplaceAll(text, "\n", " ")
}

// normalizeIpText collapses doubled dots that show up in partially formatted
// addresses coming from the network layer.
func normalizeIpText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	var last byte
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c == '.' && last == '.' {
			continue
		}
		b.WriteByte(c)
		last = c
	}
	return b.String()
}
