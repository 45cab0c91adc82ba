package matrix

// 3x5 row-encoded tiny font for compact rows (date/time, inline name). Each
// glyph is five rows of 3-bit patterns, bit 2 = leftmost column. Characters
// advance 4 pixels.
const (
	tinyCharWidth  = 4 // 3 px glyph + 1 px spacing
	tinyCharHeight = 6 // 5 px glyph + 1 px breathing room
)

var tinyFontDigits = [10][5]uint8{
	{0b111, 0b101, 0b101, 0b101, 0b111}, // 0
	{0b010, 0b110, 0b010, 0b010, 0b111}, // 1
	{0b111, 0b001, 0b111, 0b100, 0b111}, // 2
	{0b111, 0b001, 0b111, 0b001, 0b111}, // 3
	{0b101, 0b101, 0b111, 0b001, 0b001}, // 4
	{0b111, 0b100, 0b111, 0b001, 0b111}, // 5
	{0b111, 0b100, 0b111, 0b101, 0b111}, // 6
	{0b111, 0b001, 0b001, 0b001, 0b001}, // 7
	{0b111, 0b101, 0b111, 0b101, 0b111}, // 8
	{0b111, 0b101, 0b111, 0b001, 0b111}, // 9
}

var tinyFontAlpha = [26][5]uint8{
	{0b111, 0b101, 0b111, 0b101, 0b101}, // A
	{0b110, 0b101, 0b110, 0b101, 0b110}, // B
	{0b111, 0b100, 0b100, 0b100, 0b111}, // C
	{0b110, 0b101, 0b101, 0b101, 0b110}, // D
	{0b111, 0b100, 0b110, 0b100, 0b111}, // E
	{0b111, 0b100, 0b110, 0b100, 0b100}, // F
	{0b111, 0b100, 0b101, 0b101, 0b111}, // G
	{0b101, 0b101, 0b111, 0b101, 0b101}, // H
	{0b111, 0b010, 0b010, 0b010, 0b111}, // I
	{0b001, 0b001, 0b001, 0b101, 0b111}, // J
	{0b101, 0b110, 0b100, 0b110, 0b101}, // K
	{0b100, 0b100, 0b100, 0b100, 0b111}, // L
	{0b101, 0b111, 0b111, 0b101, 0b101}, // M
	{0b101, 0b111, 0b111, 0b111, 0b101}, // N
	{0b111, 0b101, 0b101, 0b101, 0b111}, // O
	{0b111, 0b101, 0b111, 0b100, 0b100}, // P
	{0b111, 0b101, 0b101, 0b111, 0b001}, // Q
	{0b111, 0b101, 0b111, 0b110, 0b101}, // R
	{0b111, 0b100, 0b111, 0b001, 0b111}, // S
	{0b111, 0b010, 0b010, 0b010, 0b010}, // T
	{0b101, 0b101, 0b101, 0b101, 0b111}, // U
	{0b101, 0b101, 0b101, 0b101, 0b010}, // V
	{0b101, 0b101, 0b111, 0b111, 0b101}, // W
	{0b101, 0b101, 0b010, 0b101, 0b101}, // X
	{0b101, 0b101, 0b010, 0b010, 0b010}, // Y
	{0b111, 0b001, 0b010, 0b100, 0b111}, // Z
}

var (
	tinyFontSlash = [5]uint8{0b001, 0b001, 0b010, 0b100, 0b100}
	tinyFontColon = [5]uint8{0b000, 0b010, 0b000, 0b010, 0b000}
	tinyFontSpace = [5]uint8{0b000, 0b000, 0b000, 0b000, 0b000}
	tinyFontDot   = [5]uint8{0b000, 0b000, 0b000, 0b000, 0b010}
	tinyFontDash  = [5]uint8{0b000, 0b000, 0b111, 0b000, 0b000}
)

// tinyGlyph returns the 5-row glyph for c, or nil when the tiny font cannot
// render it.
func tinyGlyph(c byte) *[5]uint8 {
	switch {
	case c >= '0' && c <= '9':
		return &tinyFontDigits[c-'0']
	case c >= 'a' && c <= 'z':
		return &tinyFontAlpha[c-'a']
	case c >= 'A' && c <= 'Z':
		return &tinyFontAlpha[c-'A']
	case c == '/':
		return &tinyFontSlash
	case c == ':':
		return &tinyFontColon
	case c == ' ':
		return &tinyFontSpace
	case c == '.':
		return &tinyFontDot
	case c == '-':
		return &tinyFontDash
	}
	return nil
}

// isTinyRenderable reports whether every character of text has a tiny glyph.
func isTinyRenderable(text string) bool {
	for i := 0; i < len(text); i++ {
		if tinyGlyph(text[i]) == nil {
			return false
		}
	}
	return true
}

// tinyTextWidth returns the pixel width of text in the tiny font.
func tinyTextWidth(text string) int {
	if len(text) == 0 {
		return 0
	}
	return len(text)*tinyCharWidth - 1
}
