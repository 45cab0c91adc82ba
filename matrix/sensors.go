package matrix

import "fmt"

// Sensor bar formatting. Every reading is compacted to fit a 64 px line with
// three fields on it.

func formatTempF(celsius float32) string {
	return fmt.Sprintf("%dF", int(celsius*9/5+32))
}

func formatHumidity(humidity float32) string {
	return fmt.Sprintf("%d%%", int(humidity))
}

// formatRightMetric renders the configurable third field. TVOC readings of a
// thousand ppb or more collapse to a rounded "k" form so the field never
// exceeds four characters.
func formatRightMetric(data *DisplayData) string {
	switch data.RightMetric {
	case "co2":
		return fmt.Sprintf("C%d", int(data.CO2PPM))
	case "pm2_5":
		return fmt.Sprintf("P%d", int(data.PM25))
	case "noise":
		return fmt.Sprintf("N%d", int(data.AmbientNoise))
	case "iaq":
		return fmt.Sprintf("Q%d", data.AirQualityIndex)
	default:
		v := int(data.TVOC)
		if v >= 1000 {
			return fmt.Sprintf("T%dk", (v+500)/1000)
		}
		return fmt.Sprintf("T%d", v)
	}
}

// drawSensorBar draws temperature, humidity and the selected metric on one
// line: temperature left, humidity centered, metric right aligned.
func (r *Renderer) drawSensorBar(y int, data *DisplayData, startX, maxWidth int) {
	temp := formatTempF(data.Temperature)
	hum := formatHumidity(data.Humidity)
	metric := formatRightMetric(data)

	r.drawText(startX, y, temp, ColorCyan)

	humX := startX + (maxWidth-textWidth(hum))/2
	if humX < startX+textWidth(temp)+charWidth {
		humX = startX + textWidth(temp) + charWidth
	}
	r.drawText(humX, y, hum, ColorBlue)

	metricX := startX + maxWidth - textWidth(metric)
	if metricX < startX {
		metricX = startX
	}
	r.drawText(metricX, y, metric, data.MetricColor)
}

// iaqColor maps an air quality index to its severity color.
func iaqColor(index int) uint16 {
	switch {
	case index <= 50:
		return ColorGreen
	case index <= 100:
		return ColorYellow
	case index <= 200:
		return ColorOrange
	default:
		return ColorRed
	}
}
