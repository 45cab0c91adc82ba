package matrix

// Page identifies one of the mutually exclusive top level layouts.
type Page uint8

const (
	PageStatus Page = iota
	PageSensors
	PageInCall
)

// PageMode controls how the engine rotates between pages.
type PageMode uint8

const (
	PageModeStatusOnly PageMode = iota
	PageModeSensorsOnly
	PageModeRotate
)

// StatusLayout selects how line 2 of the status page is used.
type StatusLayout uint8

const (
	// StatusLayoutName gives the display name a full line; sensors get their
	// own rotation page.
	StatusLayoutName StatusLayout = iota
	// StatusLayoutSensors puts the sensor bar inline on the status page and
	// shows the name in tiny text when a fourth line fits.
	StatusLayoutSensors
)

// DateFormat selects how the date half of the date/time line is written.
type DateFormat uint8

const (
	DateFormatMonthDay DateFormat = iota // JAN28
	DateFormatDayMonth                   // 28JAN
	DateFormatNumeric                    // 01/28
)

// DisplayData is the per-tick input snapshot. It is owned by the caller and
// read only for the duration of Update.
type DisplayData struct {
	Status         string // presence status, e.g. "active", "dnd", "meeting"
	DisplayName    string
	CameraOn       bool
	MicMuted       bool
	InCall         bool
	ShowCallStatus bool

	Temperature     float32 // Celsius; rendered as Fahrenheit
	Humidity        float32 // percent
	AirQualityIndex int     // 0-500
	TVOC            float32 // ppb
	CO2PPM          float32
	PM25            float32
	AmbientNoise    float32 // dB
	RightMetric     string  // "tvoc", "co2", "pm2_5", "noise" or "iaq"
	ShowSensors     bool

	PageMode      PageMode
	StatusLayout  StatusLayout
	WifiConnected bool
	BorderWidth   int // clamped to 1-3 by the renderer

	DateColor   uint16
	TimeColor   uint16
	NameColor   uint16
	MetricColor uint16

	Hour       int // 0-23
	Minute     int // 0-59
	Day        int // 1-31
	Month      int // 1-12
	TimeValid  bool
	Use24h     bool
	DateFormat DateFormat
}
