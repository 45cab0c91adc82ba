package matrix

import "testing"

func TestScrollFittingTextDrawsOnce(t *testing.T) {
	f := newCountingFrame(64, 32)
	r := New(f, Config{})
	r.millis = func() int64 { return 0 }

	r.drawScrollingText(10, "HI", ColorWhite, 1, 62, "k")
	if f.writes == 0 {
		t.Fatal("first call drew nothing")
	}
	before := f.writes
	r.drawScrollingText(10, "HI", ColorWhite, 1, 62, "k")
	if f.writes != before {
		t.Errorf("unchanged fitting text redrew: %d extra writes", f.writes-before)
	}
}

func TestScrollFittingTextCentered(t *testing.T) {
	f := newCountingFrame(64, 32)
	r := New(f, Config{})
	r.drawScrollingText(10, "AB", ColorWhite, 1, 62, "k")
	// "AB" is 12 px wide, centered in [1, 63): x = 1 + (62-12)/2 = 26.
	lit := -1
	for x := 0; x < 64; x++ {
		if f.At(x, 10) != ColorBlack || f.At(x, 12) != ColorBlack {
			lit = x
			break
		}
	}
	if lit < 24 || lit > 28 {
		t.Errorf("first lit column %d, want near 26", lit)
	}
}

func TestScrollOffsetStartsAtWindowWidth(t *testing.T) {
	f := newCountingFrame(64, 32)
	r := New(f, Config{})
	now := int64(0)
	r.millis = func() int64 { return now }

	long := "A VERY LONG STATUS LINE"
	r.drawScrollingText(10, long, ColorWhite, 1, 62, "k")
	st := r.getScrollState("k")
	if st.offset != 62 {
		t.Fatalf("offset after text change = %d, want 62", st.offset)
	}

	// Within the speed interval nothing moves or draws.
	before := f.writes
	now = 50
	r.drawScrollingText(10, long, ColorWhite, 1, 62, "k")
	if st.offset != 62 {
		t.Errorf("offset advanced early: %d", st.offset)
	}
	if f.writes != before {
		t.Errorf("redrew within speed interval")
	}

	// Past the interval it advances one pixel.
	now = 120
	r.drawScrollingText(10, long, ColorWhite, 1, 62, "k")
	if st.offset != 63 {
		t.Errorf("offset after due tick = %d, want 63", st.offset)
	}
}

func TestScrollWrapsPastTextWidth(t *testing.T) {
	f := newCountingFrame(64, 32)
	r := New(f, Config{})
	now := int64(0)
	r.millis = func() int64 { return now }

	long := "A VERY LONG STATUS LINE"
	r.drawScrollingText(10, long, ColorWhite, 1, 62, "k")
	st := r.getScrollState("k")

	// wrap boundary: textWidth(text+gap) + maxWidth.
	wrap := textWidth(long+scrollGap) + 62
	st.offset = wrap + 1
	now = 1000
	r.drawScrollingText(10, long, ColorWhite, 1, 62, "k")
	if st.offset != 0 {
		t.Errorf("offset after wrap = %d, want 0", st.offset)
	}
}

func TestScrollTextChangeRestartsOffset(t *testing.T) {
	f := newCountingFrame(64, 32)
	r := New(f, Config{})
	now := int64(0)
	r.millis = func() int64 { return now }

	r.drawScrollingText(10, "FIRST LONG SCROLLING TEXT", ColorWhite, 1, 62, "k")
	st := r.getScrollState("k")
	st.offset = 40

	before := f.writes
	r.drawScrollingText(10, "SECOND LONG SCROLLING TEXT", ColorWhite, 1, 62, "k")
	if st.offset != 62 {
		t.Errorf("offset after text change = %d, want 62", st.offset)
	}
	if f.writes == before {
		t.Error("text change did not force a redraw")
	}
}

func TestScrollColorChangeForcesRedraw(t *testing.T) {
	f := newCountingFrame(64, 32)
	r := New(f, Config{})
	r.drawScrollingText(10, "HI", ColorWhite, 1, 62, "k")
	before := f.writes
	r.drawScrollingText(10, "HI", ColorRed, 1, 62, "k")
	if f.writes == before {
		t.Error("color change did not force a redraw")
	}
}

func TestScrollStatePoolReusesSlotZero(t *testing.T) {
	f := newCountingFrame(64, 32)
	r := New(f, Config{})

	first := r.getScrollState("key0")
	first.text = "zero"
	for i := 1; i < maxScrollStates; i++ {
		r.getScrollState(string(rune('a' + i)))
	}
	// Pool is full; one more key evicts slot 0.
	extra := r.getScrollState("overflow")
	if extra != &r.scrollStates[0].state {
		t.Fatal("pool overflow did not recycle slot 0")
	}
	if extra.text != "" {
		t.Errorf("recycled slot kept stale text %q", extra.text)
	}
	if r.scrollStates[0].key != "overflow" {
		t.Errorf("slot 0 key = %q, want overflow", r.scrollStates[0].key)
	}
}
