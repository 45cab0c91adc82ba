package main

import (
	"flag"
	"log"
	"sync"
	"time"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/presencedeck/presence_matrix_display/hub75"
	"github.com/presencedeck/presence_matrix_display/matrix"
)

const VERSION = "1.2.0"

const (
	PANEL_WIDTH  = 64
	PANEL_HEIGHT = 32
	LAT_PIN      = "GPIO25"
	OE_PIN       = "GPIO24"

	FRAME_INTERVAL   = 33 * time.Millisecond
	STARTUP_SPLASH   = 2 * time.Second
	PRESENCE_TIMEOUT = 5 * time.Minute
)

var (
	frameMutex sync.RWMutex
	frame      *matrix.Frame
)

func (s *appState) renderSettings() (scrollMs, intervalMs, brightness int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.ScrollSpeedMs, s.cfg.PageIntervalMs, s.cfg.Brightness
}

// presenceFresh reports whether an update arrived recently enough to trust.
func (s *appState) presenceFresh() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.havePresence && time.Since(s.lastPresence) < PRESENCE_TIMEOUT
}

func main() {
	configPath := flag.String("config", "config.json", "path to config file")
	headless := flag.Bool("headless", false, "run without a panel, preview over HTTP only")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Printf("config: %v, using defaults", err)
	}

	// Open the panel. A missing panel degrades to headless so the HTTP
	// preview still works on a dev machine.
	var panel *hub75.Dev
	if !*headless {
		if _, err := host.Init(); err != nil {
			log.Fatal(err)
		}
		spiPort, err := spireg.Open(cfg.SPIPort)
		if err != nil {
			log.Printf("spi %s: %v, running headless", cfg.SPIPort, err)
		} else {
			defer spiPort.Close()
			opts := hub75.DefaultOpts
			opts.Width = PANEL_WIDTH
			opts.Height = PANEL_HEIGHT
			opts.Brightness = uint8(cfg.Brightness)
			panel, err = hub75.New(spiPort,
				gpioreg.ByName(LAT_PIN),
				gpioreg.ByName(OE_PIN),
				&opts)
			if err != nil {
				log.Fatalf("panel init: %v", err)
			}
			log.Println("panel:", panel)
		}
	}

	frame = matrix.NewFrame(PANEL_WIDTH, PANEL_HEIGHT)
	renderer := matrix.New(frame, matrix.Config{
		ScrollSpeedMs:  cfg.ScrollSpeedMs,
		PageIntervalMs: cfg.PageIntervalMs,
	})

	state := newAppState(cfg)

	go monitorConnectivity(state, cfg.ProbeTarget)
	go monitorPowerKey(state)
	go httpServer(state, cfg.HTTPPort)

	flush := func() {
		if panel == nil {
			return
		}
		frameMutex.RLock()
		err := panel.Flush(frame.Pix())
		frameMutex.RUnlock()
		if err != nil {
			log.Printf("flush: %v", err)
		}
	}

	frameMutex.Lock()
	renderer.ShowStartupScreen(VERSION)
	frameMutex.Unlock()
	flush()
	time.Sleep(STARTUP_SPLASH)

	lastBrightness := cfg.Brightness
	ticker := time.NewTicker(FRAME_INTERVAL)
	defer ticker.Stop()
	for range ticker.C {
		scrollMs, intervalMs, brightness := state.renderSettings()
		renderer.SetScrollSpeedMs(scrollMs)
		renderer.SetPageIntervalMs(intervalMs)
		if panel != nil && brightness != lastBrightness {
			if err := panel.SetBrightness(uint8(brightness)); err != nil {
				log.Printf("brightness: %v", err)
			}
			lastBrightness = brightness
		}

		data := state.snapshot()

		frameMutex.Lock()
		switch {
		case !data.WifiConnected:
			renderer.ShowWifiDisconnected()
		case !state.presenceFresh():
			renderer.ShowWaitingForWebex()
		default:
			renderer.Update(&data)
		}
		frameMutex.Unlock()

		flush()
	}
}
