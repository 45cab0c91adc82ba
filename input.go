package main

import (
	"log"
	"strings"
	"time"

	evdev "github.com/holoplot/go-evdev"
)

const keyDebounceTime = 500 * time.Millisecond

// findPowerKeyDevice locates an input device that looks like a power button.
func findPowerKeyDevice() string {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		log.Printf("ListDevicePaths error: %v", err)
		return ""
	}
	for _, ip := range paths {
		name := strings.ToLower(ip.Name)
		if strings.Contains(name, "pwrkey") || strings.Contains(name, "power button") {
			return ip.Path
		}
	}
	return ""
}

// monitorPowerKey cycles the page mode on each power key press. Best effort:
// boards without a button just run without it.
func monitorPowerKey(state *appState) {
	devPath := findPowerKeyDevice()
	if devPath == "" {
		log.Println("no power key device found, page cycling disabled")
		return
	}

	keyboard, err := evdev.Open(devPath)
	if err != nil {
		log.Printf("Open(%s) error: %v", devPath, err)
		return
	}
	defer keyboard.Ungrab()

	if err := keyboard.Grab(); err != nil {
		log.Printf("warning: failed to grab device: %v", err)
	}

	name, _ := keyboard.Name()
	log.Printf("using input device: %s (%s)", devPath, name)

	var lastPress time.Time
	for {
		ev, err := keyboard.ReadOne()
		if err != nil {
			log.Printf("read error: %v", err)
			time.Sleep(100 * time.Millisecond)
			continue
		}
		if ev.Type != evdev.EV_KEY || ev.Code != evdev.KEY_POWER || ev.Value != 1 {
			continue
		}
		now := time.Now()
		if now.Sub(lastPress) < keyDebounceTime {
			continue
		}
		lastPress = now
		state.cyclePageMode()
	}
}
