package main

import (
	"bytes"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/go-ping/ping"

	"github.com/presencedeck/presence_matrix_display/matrix"
)

// presencePayload is the body accepted on POST /data. Sensor fields are
// pointers so an update can carry presence only.
type presencePayload struct {
	Status      string `json:"status"`
	DisplayName string `json:"display_name,omitempty"`
	InCall      *bool  `json:"in_call,omitempty"`
	CameraOn    *bool  `json:"camera_on,omitempty"`
	MicMuted    *bool  `json:"mic_muted,omitempty"`

	Temperature     *float32 `json:"temperature,omitempty"` // Celsius
	Humidity        *float32 `json:"humidity,omitempty"`
	AirQualityIndex *int     `json:"iaq,omitempty"`
	TVOC            *float32 `json:"tvoc,omitempty"`
	CO2PPM          *float32 `json:"co2,omitempty"`
	PM25            *float32 `json:"pm2_5,omitempty"`
	AmbientNoise    *float32 `json:"noise,omitempty"`
}

// appState is everything the render loop reads each tick. HTTP handlers and
// the connectivity prober write it; snapshot copies it out under the lock.
type appState struct {
	mu  sync.RWMutex
	cfg Config

	status      string
	displayName string
	inCall      bool
	cameraOn    bool
	micMuted    bool

	temperature float32
	humidity    float32
	iaq         int
	tvoc        float32
	co2         float32
	pm25        float32
	noise       float32
	haveSensors bool

	havePresence bool
	lastPresence time.Time
	wifiOK       bool

	pageMode matrix.PageMode
}

func newAppState(cfg Config) *appState {
	return &appState{
		cfg:         cfg,
		status:      "offline",
		displayName: cfg.DisplayName,
		wifiOK:      true,
		pageMode:    parsePageMode(cfg.PageMode),
	}
}

func (s *appState) applyPresence(p *presencePayload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Status != "" {
		s.status = p.Status
	}
	if p.DisplayName != "" {
		s.displayName = p.DisplayName
	}
	if p.InCall != nil {
		s.inCall = *p.InCall
	}
	if p.CameraOn != nil {
		s.cameraOn = *p.CameraOn
	}
	if p.MicMuted != nil {
		s.micMuted = *p.MicMuted
	}
	gotSensor := false
	if p.Temperature != nil {
		s.temperature = *p.Temperature
		gotSensor = true
	}
	if p.Humidity != nil {
		s.humidity = *p.Humidity
		gotSensor = true
	}
	if p.AirQualityIndex != nil {
		s.iaq = *p.AirQualityIndex
		gotSensor = true
	}
	if p.TVOC != nil {
		s.tvoc = *p.TVOC
		gotSensor = true
	}
	if p.CO2PPM != nil {
		s.co2 = *p.CO2PPM
		gotSensor = true
	}
	if p.PM25 != nil {
		s.pm25 = *p.PM25
		gotSensor = true
	}
	if p.AmbientNoise != nil {
		s.noise = *p.AmbientNoise
		gotSensor = true
	}
	if gotSensor {
		s.haveSensors = true
	}
	s.havePresence = true
	s.lastPresence = time.Now()
}

func (s *appState) setWifi(ok bool) {
	s.mu.Lock()
	s.wifiOK = ok
	s.mu.Unlock()
}

// cyclePageMode steps status-only -> rotate -> sensors-only and around.
func (s *appState) cyclePageMode() {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.pageMode {
	case matrix.PageModeStatusOnly:
		s.pageMode = matrix.PageModeRotate
	case matrix.PageModeRotate:
		s.pageMode = matrix.PageModeSensorsOnly
	default:
		s.pageMode = matrix.PageModeStatusOnly
	}
	log.Printf("page mode -> %d", s.pageMode)
}

// snapshot builds the render input for this tick. Time fields come from the
// wall clock at call time.
func (s *appState) snapshot() matrix.DisplayData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg := s.cfg
	now := time.Now()
	data := matrix.DisplayData{
		Status:         s.status,
		DisplayName:    extractFirstName(s.displayName),
		CameraOn:       s.cameraOn,
		MicMuted:       s.micMuted,
		InCall:         s.inCall,
		ShowCallStatus: cfg.ShowCallStatus,

		Temperature:     s.temperature,
		Humidity:        s.humidity,
		AirQualityIndex: s.iaq,
		TVOC:            s.tvoc,
		CO2PPM:          s.co2,
		PM25:            s.pm25,
		AmbientNoise:    s.noise,
		RightMetric:     cfg.RightMetric,
		ShowSensors:     cfg.ShowSensors && s.haveSensors,

		PageMode:      s.pageMode,
		StatusLayout:  parseStatusLayout(cfg.StatusLayout),
		WifiConnected: s.wifiOK,
		BorderWidth:   cfg.BorderWidth,

		DateColor:   parseColor565(cfg.DateColor, matrix.ColorOrange),
		TimeColor:   parseColor565(cfg.TimeColor, matrix.ColorWhite),
		NameColor:   parseColor565(cfg.NameColor, matrix.ColorWhite),
		MetricColor: parseColor565(cfg.MetricColor, matrix.ColorGreen),

		Hour:       now.Hour(),
		Minute:     now.Minute(),
		Day:        now.Day(),
		Month:      int(now.Month()),
		TimeValid:  true,
		Use24h:     cfg.Use24h,
		DateFormat: parseDateFormat(cfg.DateFormat),
	}
	return data
}

// getDefaultGateway asks the routing table for the default gateway address.
func getDefaultGateway() (string, error) {
	cmd := exec.Command("ip", "route", "show", "default")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", err
	}
	fields := strings.Fields(out.String())
	for i, field := range fields {
		if field == "via" && i+1 < len(fields) {
			return fields[i+1], nil
		}
	}
	return "", fmt.Errorf("default gateway not found")
}

// pingICMP sends a single ICMP echo. Raw ICMP usually requires root.
func pingICMP(host string) (time.Duration, error) {
	pinger, err := ping.NewPinger(host)
	if err != nil {
		return 0, err
	}
	pinger.SetPrivileged(true)
	pinger.Count = 1
	pinger.Timeout = 2 * time.Second
	if err := pinger.Run(); err != nil {
		return 0, err
	}
	stats := pinger.Statistics()
	if stats.PacketsRecv == 0 {
		return 0, fmt.Errorf("no reply from %s", host)
	}
	return stats.AvgRtt, nil
}

// monitorConnectivity probes the gateway (or the configured target) and flips
// the wifi flag on the state. One lost probe does not blank the display; two
// in a row do.
func monitorConnectivity(state *appState, target string) {
	misses := 0
	for {
		host := target
		if host == "" {
			gw, err := getDefaultGateway()
			if err != nil {
				log.Printf("gateway lookup: %v", err)
				state.setWifi(false)
				time.Sleep(10 * time.Second)
				continue
			}
			host = gw
		}
		if _, err := pingICMP(host); err != nil {
			misses++
			if misses >= 2 {
				state.setWifi(false)
			}
		} else {
			misses = 0
			state.setWifi(true)
		}
		time.Sleep(10 * time.Second)
	}
}
