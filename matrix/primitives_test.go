package matrix

import "testing"

func TestSanitizeSingleLine(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a\nb", "a b"},
		{"a\r\nb", "a  b"},
		{"\n", " "},
		{"", ""},
	}
	for _, c := range cases {
		if got := sanitizeSingleLine(c.in); got != c.want {
			t.Errorf("sanitizeSingleLine(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeIpText(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"192.168.4.1", "192.168.4.1"},
		{"192..168.4.1", "192.168.4.1"},
		{"10...0.0.1", "10.0.0.1"},
		{"", ""},
	}
	for _, c := range cases {
		if got := normalizeIpText(c.in); got != c.want {
			t.Errorf("normalizeIpText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTextWidths(t *testing.T) {
	if got := textWidth("ABC"); got != 18 {
		t.Errorf("textWidth(ABC) = %d, want 18", got)
	}
	if got := tinyTextWidth("ABC"); got != 11 {
		t.Errorf("tinyTextWidth(ABC) = %d, want 11", got)
	}
	if got := tinyTextWidth(""); got != 0 {
		t.Errorf("tinyTextWidth(empty) = %d, want 0", got)
	}
}

func TestIsTinyRenderable(t *testing.T) {
	if !isTinyRenderable("ABC 0:9/x.y-z") {
		t.Error("covered characters reported unrenderable")
	}
	if isTinyRenderable("abc_def") {
		t.Error("underscore reported renderable")
	}
}

func TestLineYClamps(t *testing.T) {
	f := NewFrame(64, 32)
	r := New(f, Config{})

	if got := r.lineY(0, 0, 1); got != 1 {
		t.Errorf("lineY(0) = %d, want 1", got)
	}
	if got := r.lineY(3, 0, 1); got != 24 {
		t.Errorf("lineY(3) = %d, want clamped to 24", got)
	}
	if got := r.lineY(10, 0, 1); got != 24 {
		t.Errorf("lineY(10) = %d, want clamped to 24", got)
	}
}

func TestDrawTextSkipsUnknownCharacters(t *testing.T) {
	f := NewFrame(64, 32)
	r := New(f, Config{})
	// 0x7F has no glyph; the cursor still advances one cell.
	r.drawText(0, 0, "A\x7fB", ColorWhite)
	found := false
	for x := 12; x < 18; x++ {
		for y := 0; y < 7; y++ {
			if f.At(x, y) == ColorWhite {
				found = true
			}
		}
	}
	if !found {
		t.Error("character after unknown glyph not drawn at advanced cell")
	}
	for x := 6; x < 12; x++ {
		for y := 0; y < 7; y++ {
			if f.At(x, y) != ColorBlack {
				t.Fatal("unknown glyph drew pixels")
			}
		}
	}
}

func TestDrawStatusBorderClamped(t *testing.T) {
	f := NewFrame(64, 32)
	r := New(f, Config{})
	r.drawStatusBorder(ColorGreen, 5)
	if f.At(2, 2) != ColorGreen {
		t.Error("third border ring missing")
	}
	if f.At(3, 3) == ColorGreen {
		t.Error("border exceeded the 3 px clamp")
	}
}
