package matrix

// Scrolling text engine. Each animated field is identified by a stable key
// and owns a slot in a fixed-capacity pool; nothing here allocates once the
// pool slots are warm.

const maxScrollStates = 16

// scrollGap is appended to the text so the tail clears the window before the
// head re-enters.
const scrollGap = "   "

type scrollState struct {
	text   string
	color  uint16
	offset int
	lastMs int64
}

type scrollEntry struct {
	key    string
	state  scrollState
	active bool
}

// getScrollState returns the state slot for key, creating it on first use.
// When every slot is taken the first one is recycled; with 16 slots and at
// most a handful of animated fields per page that is a soft limit, not an
// error.
func (r *Renderer) getScrollState(key string) *scrollState {
	for i := range r.scrollStates {
		if r.scrollStates[i].active && r.scrollStates[i].key == key {
			return &r.scrollStates[i].state
		}
	}
	for i := range r.scrollStates {
		if !r.scrollStates[i].active {
			r.scrollStates[i].key = key
			r.scrollStates[i].active = true
			r.scrollStates[i].state = scrollState{}
			return &r.scrollStates[i].state
		}
	}
	r.scrollStates[0].key = key
	r.scrollStates[0].state = scrollState{}
	return &r.scrollStates[0].state
}

// drawScrollingText renders text within [startX, startX+maxWidth) at line y.
// Text that fits is drawn centered and static; overflowing text scrolls one
// pixel per tick interval.
func (r *Renderer) drawScrollingText(y int, text string, color uint16, startX, maxWidth int, key string) {
	r.drawScrollingTextGeneric(y, text, color, startX, maxWidth, r.getScrollState(key), false)
}

// drawTinyScrollingText is drawScrollingText in the 3x5 font.
func (r *Renderer) drawTinyScrollingText(y int, text string, color uint16, startX, maxWidth int, key string) {
	r.drawScrollingTextGeneric(y, text, color, startX, maxWidth, r.getScrollState(key), true)
}

// drawScrollingTextGeneric is the one scrolling implementation, parameterized
// by glyph metrics. The invariants the rest of the engine depends on:
//
//   - nothing is drawn when neither the text, the color nor the offset
//     changed since the previous call;
//   - a text or color change forces an immediate redraw and restarts the
//     offset at the just-off-screen position, so the new text slides in
//     instead of jumping;
//   - while scrolling, x = startX + maxWidth - offset, and the offset wraps
//     to zero once it exceeds textWidth + maxWidth.
func (r *Renderer) drawScrollingTextGeneric(y int, text string, color uint16, startX, maxWidth int, state *scrollState, tiny bool) {
	if maxWidth <= 0 {
		return
	}
	if startX < 0 {
		maxWidth += startX
		startX = 0
	}
	if startX >= r.width {
		return
	}
	if startX+maxWidth > r.width {
		maxWidth = r.width - startX
		if maxWidth <= 0 {
			return
		}
	}

	safe := sanitizeSingleLine(text)
	pitch, textHeight := charWidth, charHeight
	if tiny {
		pitch, textHeight = tinyCharWidth, tinyCharHeight
	}
	maxChars := maxWidth / pitch

	forceRedraw := false
	if state.text != safe {
		state.text = safe
		state.offset = maxWidth
		state.lastMs = 0
		forceRedraw = true
	}
	if state.color != color {
		state.color = color
		forceRedraw = true
	}

	// Fits: draw centered, no animation.
	if len(safe) <= maxChars {
		if state.offset != 0 {
			state.offset = 0
			forceRedraw = true
		}
		if !forceRedraw {
			return
		}
		r.fillRect(startX, y, maxWidth, textHeight, ColorBlack)
		var w int
		if tiny {
			w = tinyTextWidth(safe)
		} else {
			w = textWidth(safe)
		}
		x := startX + (maxWidth-w)/2
		if x < startX {
			x = startX
		}
		if tiny {
			r.drawTinyText(x, y, safe, color)
		} else {
			r.drawText(x, y, safe, color)
		}
		return
	}

	// Too long: scroll.
	now := r.millis()
	if !forceRedraw {
		if now-state.lastMs <= int64(r.scrollSpeedMs) {
			return
		}
		state.offset++
	}
	state.lastMs = now

	scrollText := safe + scrollGap
	var w int
	if tiny {
		w = tinyTextWidth(scrollText)
	} else {
		w = textWidth(scrollText)
	}
	wrapWidth := w + maxWidth
	if state.offset > wrapWidth {
		state.offset = 0
	}

	r.fillRect(startX, y, maxWidth, textHeight, ColorBlack)
	x := startX + maxWidth - state.offset
	if tiny {
		r.drawTinyText(x, y, scrollText, color)
	} else {
		r.drawText(x, y, scrollText, color)
	}
}
