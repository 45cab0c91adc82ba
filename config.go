package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/presencedeck/presence_matrix_display/matrix"
)

// Config represents the overall config JSON.
type Config struct {
	DisplayName    string `json:"display_name"`
	Hostname       string `json:"hostname"`
	ShowCallStatus bool   `json:"show_call_status"`
	ShowSensors    bool   `json:"show_sensors"`
	PageMode       string `json:"page_mode"`     // "status", "sensors", "rotate"
	StatusLayout   string `json:"status_layout"` // "name", "sensors"
	RightMetric    string `json:"right_metric"`  // "tvoc", "co2", "pm2_5", "noise", "iaq"

	BorderWidth    int `json:"border_width"`
	ScrollSpeedMs  int `json:"scroll_speed_ms"`
	PageIntervalMs int `json:"page_interval_ms"`
	Brightness     int `json:"brightness"` // 0-255

	Use24h     bool   `json:"use_24h"`
	DateFormat string `json:"date_format"` // "month_day", "day_month", "numeric"

	DateColor   string `json:"date_color"`
	TimeColor   string `json:"time_color"`
	NameColor   string `json:"name_color"`
	MetricColor string `json:"metric_color"`

	SPIPort     string `json:"spi_port"`
	HTTPPort    string `json:"http_port"`
	ProbeTarget string `json:"probe_target"` // host pinged for connectivity; default gateway when empty
}

func defaultConfig() Config {
	return Config{
		DisplayName:    "Presence Deck",
		Hostname:       "presence-deck",
		ShowCallStatus: true,
		ShowSensors:    false,
		PageMode:       "status",
		StatusLayout:   "name",
		RightMetric:    "tvoc",
		BorderWidth:    2,
		ScrollSpeedMs:  60,
		PageIntervalMs: 5000,
		Brightness:     160,
		DateFormat:     "month_day",
		DateColor:      "#FFA500",
		TimeColor:      "#FFFFFF",
		NameColor:      "#FFFFFF",
		MetricColor:    "#00FF7F",
		SPIPort:        "SPI1.0",
		HTTPPort:       ":8081",
	}
}

// loadConfig reads and unmarshals the config file on top of the defaults, so
// a partial file is fine.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = json.Unmarshal(data, &cfg)
	return cfg, err
}

// parseColor565 parses "#RGB" or "#RRGGBB" into RGB565, falling back when the
// string does not parse.
func parseColor565(s string, fallback uint16) uint16 {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		// Expand each nibble: "F80" -> "FF8800".
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return fallback
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		hi := hexNibble(s[2*i])
		lo := hexNibble(s[2*i+1])
		if hi < 0 || lo < 0 {
			return fallback
		}
		rgb[i] = uint8(hi<<4 | lo)
	}
	return matrix.RGBTo565(rgb[0], rgb[1], rgb[2])
}

func hexNibble(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// extractFirstName returns the first word of a full name; the panel rarely
// has room for more.
func extractFirstName(full string) string {
	full = strings.TrimSpace(full)
	if i := strings.IndexAny(full, " \t"); i >= 0 {
		return full[:i]
	}
	return full
}

func parsePageMode(s string) matrix.PageMode {
	switch strings.ToLower(s) {
	case "sensors":
		return matrix.PageModeSensorsOnly
	case "rotate":
		return matrix.PageModeRotate
	}
	return matrix.PageModeStatusOnly
}

func parseStatusLayout(s string) matrix.StatusLayout {
	if strings.ToLower(s) == "sensors" {
		return matrix.StatusLayoutSensors
	}
	return matrix.StatusLayoutName
}

func parseDateFormat(s string) matrix.DateFormat {
	switch strings.ToLower(s) {
	case "day_month":
		return matrix.DateFormatDayMonth
	case "numeric":
		return matrix.DateFormatNumeric
	}
	return matrix.DateFormatMonthDay
}
