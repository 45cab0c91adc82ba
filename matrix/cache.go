package matrix

import (
	"fmt"
	"strings"
)

// Region caching. A line is redrawn only when its newly built signature
// differs from the stored one; signatures encode exactly the inputs that
// reach the pixels of that line, at display precision.

// shouldRedraw compares the new key for a line slot against the cached one and
// stores it when they differ.
func (r *Renderer) shouldRedraw(line int, key string) bool {
	if line < 0 || line >= len(r.lineKeys) {
		return true
	}
	if r.lineKeys[line] == key {
		return false
	}
	r.lineKeys[line] = key
	return true
}

// dateTimeKey builds the signature of a date/time line. Minute granularity:
// anything finer would redraw without changing pixels.
func dateTimeKey(data *DisplayData, dateColor, timeColor uint16) string {
	if !data.TimeValid {
		return fmt.Sprintf("time|none|%d|%d", dateColor, timeColor)
	}
	clock := "12"
	if data.Use24h {
		clock = "24"
	}
	return fmt.Sprintf("time|%d/%d|%d:%d|%s|%d|%d|%d",
		data.Month, data.Day, data.Hour, data.Minute,
		clock, data.DateFormat, dateColor, timeColor)
}

// sensorKey builds the signature of a sensor line. Readings are truncated to
// the integer precision they are displayed at.
func sensorKey(data *DisplayData, prefix string) string {
	if !data.ShowSensors {
		return fmt.Sprintf("%s|none|%d", prefix, data.MetricColor)
	}
	return fmt.Sprintf("%s|%d/%d/%d/%d/%d/%d/%d|%s|%d",
		prefix,
		int(data.Temperature), int(data.Humidity), data.AirQualityIndex,
		int(data.TVOC), int(data.CO2PPM), int(data.PM25), int(data.AmbientNoise),
		strings.ToLower(data.RightMetric), data.MetricColor)
}

// updateBorderCache redraws the border when its signature changed. A border
// change shifts every content region, so it clears the whole screen and
// cascades the invalidation into the line caches and scroll states. Returns
// true when the border was redrawn.
func (r *Renderer) updateBorderCache(statusColor uint16, border int, status string) bool {
	key := fmt.Sprintf("border|%s|%d|%d", status, border, statusColor)
	if key == r.borderKey {
		return false
	}
	r.borderKey = key
	r.drv.Clear()
	r.drawStatusBorder(statusColor, border)
	r.clearPageCache()
	r.clearScrollStates()
	return true
}

func (r *Renderer) clearBorderCache() {
	r.borderKey = ""
}

func (r *Renderer) clearPageCache() {
	for i := range r.lineKeys {
		r.lineKeys[i] = ""
	}
	r.lastStaticKey = ""
}

func (r *Renderer) clearScrollStates() {
	for i := range r.scrollStates {
		if r.scrollStates[i].active {
			r.scrollStates[i].state.text = ""
		}
	}
}

func (r *Renderer) clearAllCaches() {
	r.clearPageCache()
	r.clearScrollStates()
	r.clearBorderCache()
}
