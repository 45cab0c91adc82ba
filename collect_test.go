package main

import (
	"testing"

	"github.com/presencedeck/presence_matrix_display/matrix"
)

func boolPtr(b bool) *bool      { return &b }
func f32Ptr(f float32) *float32 { return &f }
func intPtr(i int) *int         { return &i }

func TestApplyPresencePartialUpdate(t *testing.T) {
	state := newAppState(defaultConfig())

	state.applyPresence(&presencePayload{
		Status:      "active",
		DisplayName: "Ana Souza",
		InCall:      boolPtr(true),
	})
	// A sensors-only update must not clobber presence.
	state.applyPresence(&presencePayload{
		Temperature: f32Ptr(21.5),
		Humidity:    f32Ptr(44),
	})

	state.mu.RLock()
	defer state.mu.RUnlock()
	if state.status != "active" {
		t.Errorf("status = %q", state.status)
	}
	if !state.inCall {
		t.Error("inCall lost on sensor update")
	}
	if state.temperature != 21.5 {
		t.Errorf("temperature = %v", state.temperature)
	}
	if !state.haveSensors {
		t.Error("haveSensors not set")
	}
}

func TestSnapshotMapsConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.ShowSensors = true
	cfg.PageMode = "rotate"
	cfg.BorderWidth = 3
	cfg.Use24h = true
	state := newAppState(cfg)
	state.applyPresence(&presencePayload{
		Status:      "dnd",
		DisplayName: "Ana Souza",
		Temperature: f32Ptr(20),
	})

	data := state.snapshot()
	if data.Status != "dnd" {
		t.Errorf("Status = %q", data.Status)
	}
	if data.DisplayName != "Ana" {
		t.Errorf("DisplayName = %q, want first name only", data.DisplayName)
	}
	if data.PageMode != matrix.PageModeRotate {
		t.Errorf("PageMode = %v", data.PageMode)
	}
	if data.BorderWidth != 3 {
		t.Errorf("BorderWidth = %d", data.BorderWidth)
	}
	if !data.ShowSensors {
		t.Error("ShowSensors false with sensor data present")
	}
	if !data.TimeValid || !data.Use24h {
		t.Error("clock fields not populated")
	}
	if data.Month < 1 || data.Month > 12 || data.Hour < 0 || data.Hour > 23 {
		t.Errorf("implausible time %d/%d %d:%d", data.Month, data.Day, data.Hour, data.Minute)
	}
}

func TestAnySensorFieldMarksDataPresent(t *testing.T) {
	payloads := []presencePayload{
		{Humidity: f32Ptr(40)},
		{AirQualityIndex: intPtr(80)},
		{TVOC: f32Ptr(120)},
		{CO2PPM: f32Ptr(600)},
		{PM25: f32Ptr(8)},
		{AmbientNoise: f32Ptr(35)},
	}
	for i := range payloads {
		state := newAppState(defaultConfig())
		state.applyPresence(&payloads[i])
		state.mu.RLock()
		have := state.haveSensors
		state.mu.RUnlock()
		if !have {
			t.Errorf("payload %d did not mark sensor data present", i)
		}
	}
}

func TestSnapshotHidesSensorsWithoutData(t *testing.T) {
	cfg := defaultConfig()
	cfg.ShowSensors = true
	state := newAppState(cfg)
	state.applyPresence(&presencePayload{Status: "active"})

	if data := state.snapshot(); data.ShowSensors {
		t.Error("ShowSensors true before any sensor reading arrived")
	}
}

func TestCyclePageMode(t *testing.T) {
	state := newAppState(defaultConfig())
	if state.pageMode != matrix.PageModeStatusOnly {
		t.Fatalf("initial mode = %v", state.pageMode)
	}
	state.cyclePageMode()
	if state.pageMode != matrix.PageModeRotate {
		t.Errorf("after one press = %v, want rotate", state.pageMode)
	}
	state.cyclePageMode()
	if state.pageMode != matrix.PageModeSensorsOnly {
		t.Errorf("after two presses = %v, want sensors", state.pageMode)
	}
	state.cyclePageMode()
	if state.pageMode != matrix.PageModeStatusOnly {
		t.Errorf("after three presses = %v, want status", state.pageMode)
	}
}
