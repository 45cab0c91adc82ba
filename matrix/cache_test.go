package matrix

import "testing"

func TestShouldRedraw(t *testing.T) {
	f := newCountingFrame(64, 32)
	r := New(f, Config{})

	if !r.shouldRedraw(0, "a") {
		t.Error("first key should redraw")
	}
	if r.shouldRedraw(0, "a") {
		t.Error("same key should not redraw")
	}
	if !r.shouldRedraw(0, "b") {
		t.Error("changed key should redraw")
	}
	// Out of range line slots always redraw rather than panic.
	if !r.shouldRedraw(-1, "x") || !r.shouldRedraw(4, "x") {
		t.Error("out of range slot should always redraw")
	}
}

func TestDateTimeKeyChanges(t *testing.T) {
	data := testData()
	base := dateTimeKey(data, ColorOrange, ColorWhite)

	data.Minute = 42
	if dateTimeKey(data, ColorOrange, ColorWhite) == base {
		t.Error("minute change not reflected in key")
	}
	data.Minute = 41

	data.Use24h = false
	if dateTimeKey(data, ColorOrange, ColorWhite) == base {
		t.Error("clock mode change not reflected in key")
	}
	data.Use24h = true

	data.DateFormat = DateFormatNumeric
	if dateTimeKey(data, ColorOrange, ColorWhite) == base {
		t.Error("date format change not reflected in key")
	}
	data.DateFormat = DateFormatMonthDay

	if dateTimeKey(data, ColorRed, ColorWhite) == base {
		t.Error("color change not reflected in key")
	}

	data.TimeValid = false
	if dateTimeKey(data, ColorOrange, ColorWhite) == base {
		t.Error("invalid time not reflected in key")
	}
}

func TestSensorKeyIgnoresSubDegreeChanges(t *testing.T) {
	data := testData()
	data.ShowSensors = true
	data.Temperature = 21.2
	base := sensorKey(data, "p")

	// Display precision is whole units; a 0.3 degree drift must not force a
	// redraw.
	data.Temperature = 21.5
	if sensorKey(data, "p") != base {
		t.Error("sub-degree change altered the key")
	}

	data.Temperature = 22.1
	if sensorKey(data, "p") == base {
		t.Error("whole-degree change did not alter the key")
	}
}

func TestSensorKeyCoversMetricSelection(t *testing.T) {
	data := testData()
	data.ShowSensors = true
	data.RightMetric = "co2"
	base := sensorKey(data, "p")

	data.RightMetric = "tvoc"
	if sensorKey(data, "p") == base {
		t.Error("metric selection not reflected in key")
	}

	data.ShowSensors = false
	if sensorKey(data, "p") == base {
		t.Error("sensors off not reflected in key")
	}
}

func TestUpdateBorderCacheCascade(t *testing.T) {
	f := newCountingFrame(64, 32)
	r := New(f, Config{})
	r.millis = func() int64 { return 0 }

	r.lineKeys[0] = "stale"
	r.lastStaticKey = "stale"
	st := r.getScrollState("k")
	st.text = "stale"

	if !r.updateBorderCache(ColorGreen, 1, "active") {
		t.Fatal("first border draw reported cached")
	}
	if f.clears != 1 {
		t.Errorf("border draw cleared %d times, want 1", f.clears)
	}
	if r.lineKeys[0] != "" {
		t.Error("line cache survived border change")
	}
	if r.lastStaticKey != "" {
		t.Error("static screen key survived border change")
	}
	if st.text != "" {
		t.Error("scroll state text survived border change")
	}

	// Same signature again is a no-op.
	if r.updateBorderCache(ColorGreen, 1, "active") {
		t.Error("identical border redrew")
	}
	if f.clears != 1 {
		t.Error("identical border cleared the screen")
	}

	// Width change invalidates even with the same color.
	if !r.updateBorderCache(ColorGreen, 2, "active") {
		t.Error("border width change reported cached")
	}
}
