package matrix

import "strings"

// Colors in RGB565 format.
const (
	ColorBlack  uint16 = 0x0000
	ColorWhite  uint16 = 0xFFFF
	ColorRed    uint16 = 0xF800
	ColorGreen  uint16 = 0x07E0
	ColorBlue   uint16 = 0x001F
	ColorYellow uint16 = 0xFFE0
	ColorOrange uint16 = 0xFD20
	ColorPurple uint16 = 0x8010
	ColorCyan   uint16 = 0x07FF
	ColorGray   uint16 = 0x8410
)

// Status colors.
const (
	ColorActive  = ColorGreen
	ColorAway    = ColorYellow
	ColorDND     = ColorRed
	ColorBusy    = ColorRed
	ColorOffline = ColorGray
	ColorOOO     = ColorPurple
)

// StatusColor maps a presence status string to its display color.
func StatusColor(status string) uint16 {
	switch strings.ToLower(status) {
	case "active", "available":
		return ColorActive
	case "inactive", "away", "brb":
		return ColorAway
	case "donotdisturb", "dnd":
		return ColorDND
	case "busy", "meeting", "call":
		return ColorBusy
	case "outofoffice", "ooo":
		return ColorOOO
	}
	return ColorOffline
}

// StatusText maps a presence status string to the text shown on the status
// page. Unrecognized statuses read as OFFLINE rather than erroring.
func StatusText(status string) string {
	switch strings.ToLower(status) {
	case "active", "available":
		return "AVAILABLE"
	case "inactive", "away", "brb":
		return "AWAY"
	case "donotdisturb", "dnd":
		return "DND"
	case "busy":
		return "BUSY"
	case "meeting", "call":
		return "IN A CALL"
	case "outofoffice", "ooo":
		return "OOO"
	case "pending":
		return "PENDING"
	}
	return "OFFLINE"
}

// RGBTo565 packs 8-bit RGB components into RGB565.
func RGBTo565(r, g, b uint8) uint16 {
	return (uint16(r&0xF8) << 8) | (uint16(g&0xFC) << 3) | uint16(b>>3)
}

// RGBFrom565 expands an RGB565 color back to 8-bit components.
func RGBFrom565(c uint16) (r, g, b uint8) {
	r = uint8((c >> 11) << 3)
	g = uint8(((c >> 5) & 0x3F) << 2)
	b = uint8((c & 0x1F) << 3)
	return
}
