package matrix

import "fmt"

var monthAbbrevs = [12]string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

func monthAbbrev(month int) string {
	if month < 1 || month > 12 {
		return "---"
	}
	return monthAbbrevs[month-1]
}

func formatTime24(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

func formatTime12(hour, minute int) string {
	suffix := "AM"
	h := hour
	if h >= 12 {
		suffix = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d%s", h, minute, suffix)
}

func formatClock(data *DisplayData) string {
	if data.Use24h {
		return formatTime24(data.Hour, data.Minute)
	}
	return formatTime12(data.Hour, data.Minute)
}

// formatDate renders the day and month in the configured style.
func formatDate(format DateFormat, month, day int) string {
	switch format {
	case DateFormatDayMonth:
		return fmt.Sprintf("%d%s", day, monthAbbrev(month))
	case DateFormatNumeric:
		return fmt.Sprintf("%02d/%02d", month, day)
	default:
		return fmt.Sprintf("%s%d", monthAbbrev(month), day)
	}
}

// formatDateNumeric is the compact fallback used when the styled date plus
// the clock will not fit on one line.
func formatDateNumeric(month, day int) string {
	return fmt.Sprintf("%d/%d", month, day)
}

// dateTimeMinGap is the smallest space kept between the date and the clock.
const dateTimeMinGap = 4

// fitDate picks the widest date form that still leaves room for the clock.
// Degradation order: styled date, numeric date, nothing. The clock itself is
// never dropped.
func fitDate(format DateFormat, month, day, clockW, maxWidth int) string {
	date := formatDate(format, month, day)
	if textWidth(date)+dateTimeMinGap+clockW <= maxWidth {
		return date
	}
	date = formatDateNumeric(month, day)
	if textWidth(date)+dateTimeMinGap+clockW <= maxWidth {
		return date
	}
	return ""
}

// drawDateTimeLine draws the date on the left and the clock on the right of
// one text line.
func (r *Renderer) drawDateTimeLine(y int, data *DisplayData, startX, maxWidth int) {
	if !data.TimeValid {
		return
	}
	clock := formatClock(data)
	clockW := textWidth(clock)
	clockX := startX + maxWidth - clockW
	if clockX < startX {
		clockX = startX
	}

	if date := fitDate(data.DateFormat, data.Month, data.Day, clockW, maxWidth); date != "" {
		r.drawText(startX, y, date, data.DateColor)
	}
	r.drawText(clockX, y, clock, data.TimeColor)
}
