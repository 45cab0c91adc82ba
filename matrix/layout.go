package matrix

// Layout calculation. Pure functions of the border width and panel size; safe
// to call every tick.

const lineHeightPx = 8

// clampBorderWidth limits the configured border to 1-3 pixels.
func clampBorderWidth(width int) int {
	if width < 1 {
		return 1
	}
	if width > 3 {
		return 3
	}
	return width
}

// contentArea returns the X origin and width of the area inside the border.
func contentArea(border, panelWidth int) (contentX, contentWidth int) {
	return border, panelWidth - 2*border
}

// availableHeight returns the content height inside the border and the number
// of 8 px lines that fit in it.
func availableHeight(border, panelHeight int) (height, maxLines int) {
	height = panelHeight - 2*border
	return height, height / lineHeightPx
}

// extraSpacing returns the breathing room inserted after the first line.
// Four lines plus 2 px spacing need 34 px; anything tighter gets none.
func extraSpacing(available int) int {
	if available < 34 {
		return 0
	}
	return 2
}

// linePositions returns the Y position of the four content lines, with the
// extra spacing applied after line 0.
func linePositions(border, spacing int) (y0, y1, y2, y3 int) {
	y0 = border
	y1 = border + lineHeightPx + spacing
	y2 = border + 2*lineHeightPx + spacing
	y3 = border + 3*lineHeightPx + spacing
	return
}
