package matrix

import "fmt"

// Page renderers. Each draws one full page incrementally: the border and
// static lines go through the signature caches, animated lines go through the
// scroll engine every tick.

func (r *Renderer) drawStatusPage(data *DisplayData) {
	border := clampBorderWidth(data.BorderWidth)
	statusColor := StatusColor(data.Status)
	r.updateBorderCache(statusColor, border, data.Status)

	contentX, contentW := contentArea(border, r.width)
	availH, maxLines := availableHeight(border, r.height)
	spacing := extraSpacing(availH)
	y0, y1, y2, y3 := linePositions(border, spacing)

	r.drawScrollingText(y0, StatusText(data.Status), statusColor, contentX, contentW, "status.text")

	if maxLines >= 2 {
		key := dateTimeKey(data, data.DateColor, data.TimeColor)
		if r.shouldRedraw(1, key) {
			r.fillRect(contentX, y1, contentW, charHeight, ColorBlack)
			r.drawDateTimeLine(y1, data, contentX, contentW)
		}
	}

	// Lines 2 and 3 swap occupants with the layout. The slot key tracks the
	// occupant, so a change wipes the full line band before the newcomer
	// draws; a scroll element gets its state reset so it repaints into the
	// blanked band instead of skipping an "unchanged" frame.
	inlineSensors := data.StatusLayout == StatusLayoutSensors && data.ShowSensors
	if maxLines >= 3 {
		if inlineSensors {
			key := sensorKey(data, "status.sensors")
			if r.shouldRedraw(2, key) {
				r.fillRect(contentX, y2, contentW, charHeight, ColorBlack)
				r.drawSensorBar(y2, data, contentX, contentW)
			}
		} else {
			if r.shouldRedraw(2, "status.name") {
				r.fillRect(contentX, y2, contentW, charHeight, ColorBlack)
				r.getScrollState("status.name").text = ""
			}
			r.drawScrollingText(y2, data.DisplayName, data.NameColor, contentX, contentW, "status.name")
		}
	}

	if maxLines >= 4 {
		if inlineSensors {
			if r.shouldRedraw(3, "status.tinyname") {
				r.fillRect(contentX, y3, contentW, charHeight, ColorBlack)
				r.getScrollState("status.tinyname").text = ""
			}
			r.drawTinyScrollingText(y3, data.DisplayName, data.NameColor, contentX, contentW, "status.tinyname")
		} else {
			// The key has a no-data form, so sensors going away re-keys
			// the slot and blanks the old bar.
			key := sensorKey(data, "status.sensors")
			if r.shouldRedraw(3, key) {
				r.fillRect(contentX, y3, contentW, charHeight, ColorBlack)
				if data.ShowSensors {
					r.drawSensorBar(y3, data, contentX, contentW)
				}
			}
		}
	}
}

func (r *Renderer) drawInCallPage(data *DisplayData) {
	border := clampBorderWidth(data.BorderWidth)
	r.updateBorderCache(ColorBusy, border, "call")

	contentX, contentW := contentArea(border, r.width)
	availH, maxLines := availableHeight(border, r.height)
	spacing := extraSpacing(availH)
	y0, y1, y2, y3 := linePositions(border, spacing)

	r.drawScrollingText(y0, "IN A CALL", ColorBusy, contentX, contentW, "call.title")

	if maxLines >= 2 {
		key := dateTimeKey(data, data.DateColor, data.TimeColor)
		if r.shouldRedraw(1, key) {
			r.fillRect(contentX, y1, contentW, charHeight, ColorBlack)
			r.drawDateTimeLine(y1, data, contentX, contentW)
		}
	}

	if maxLines >= 3 {
		key := fmt.Sprintf("call.av|%t|%t", data.CameraOn, data.MicMuted)
		if r.shouldRedraw(2, key) {
			r.fillRect(contentX, y2, contentW, charHeight, ColorBlack)
			r.drawCameraMicRow(y2, data, contentX, contentW)
		}
	}

	if maxLines >= 4 {
		r.drawTinyScrollingText(y3, data.DisplayName, data.NameColor, contentX, contentW, "call.tinyname")
	}
}

// drawCameraMicRow draws the camera icon and its state text on the left and
// the mic icon on the right, pulling the mic left rather than letting it
// overlap the camera text on narrow content widths.
func (r *Renderer) drawCameraMicRow(y int, data *DisplayData, contentX, contentW int) {
	const iconTextGap = 2
	camX := contentX + 2
	r.drawCameraIcon(camX, y, data.CameraOn)

	camText := "OFF"
	camColor := ColorRed
	if data.CameraOn {
		camText = "ON"
		camColor = ColorGreen
	}
	textX := camX + 8 + iconTextGap
	r.drawText(textX, y, camText, camColor)

	micX := contentX + contentW - 5 - 2
	minMicX := textX + textWidth(camText) + iconTextGap
	if micX < minMicX {
		micX = minMicX
	}
	r.drawMicIcon(micX, y, data.MicMuted)

	// Phone glyph in whatever gap remains between the two.
	callX := contentX + (contentW-8)/2
	if callX >= textX+textWidth(camText)+iconTextGap && callX+8+iconTextGap <= micX {
		r.drawCallIcon(callX, y)
	}
}

func (r *Renderer) drawSensorPage(data *DisplayData) {
	border := clampBorderWidth(data.BorderWidth)
	statusColor := StatusColor(data.Status)
	r.updateBorderCache(statusColor, border, data.Status)

	contentX, contentW := contentArea(border, r.width)
	availH, maxLines := availableHeight(border, r.height)
	spacing := extraSpacing(availH)
	y0, y1, y2, y3 := linePositions(border, spacing)

	if r.shouldRedraw(0, "sensors.title") {
		r.fillRect(contentX, y0, contentW, charHeight, ColorBlack)
		r.drawCenteredText(y0, "SENSORS", ColorCyan)
	}

	if maxLines >= 2 {
		key := fmt.Sprintf("sensors.th|%d|%d", int(data.Temperature), int(data.Humidity))
		if r.shouldRedraw(1, key) {
			r.fillRect(contentX, y1, contentW, charHeight, ColorBlack)
			temp := formatTempF(data.Temperature)
			hum := formatHumidity(data.Humidity)
			r.drawText(contentX, y1, temp, ColorCyan)
			humX := contentX + contentW - textWidth(hum)
			if humX < contentX {
				humX = contentX
			}
			r.drawText(humX, y1, hum, ColorBlue)
		}
	}

	if maxLines >= 3 {
		key := fmt.Sprintf("sensors.iaq|%d", data.AirQualityIndex)
		if r.shouldRedraw(2, key) {
			r.fillRect(contentX, y2, contentW, charHeight, ColorBlack)
			r.drawCenteredText(y2, fmt.Sprintf("IAQ %d", data.AirQualityIndex), iaqColor(data.AirQualityIndex))
		}
	}

	if maxLines >= 4 {
		key := fmt.Sprintf("sensors.pn|%d|%d", int(data.PM25), int(data.AmbientNoise))
		if r.shouldRedraw(3, key) {
			r.fillRect(contentX, y3, contentW, charHeight, ColorBlack)
			pm := fmt.Sprintf("P%d", int(data.PM25))
			noise := fmt.Sprintf("N%d", int(data.AmbientNoise))
			r.drawText(contentX, y3, pm, ColorYellow)
			noiseX := contentX + contentW - textWidth(noise)
			if noiseX < contentX {
				noiseX = contentX
			}
			r.drawText(noiseX, y3, noise, ColorGray)
		}
	}
}
