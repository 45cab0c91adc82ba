package main

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/presencedeck/presence_matrix_display/matrix"
)

func newTestState() *appState {
	frameMutex.Lock()
	frame = matrix.NewFrame(PANEL_WIDTH, PANEL_HEIGHT)
	frameMutex.Unlock()
	return newAppState(defaultConfig())
}

func TestUpdateDataEndpoint(t *testing.T) {
	state := newTestState()
	app := newHTTPApp(state)

	body := `{"status":"dnd","display_name":"Ana Souza","in_call":true}`
	req := httptest.NewRequest("POST", "/data", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	data := state.snapshot()
	if data.Status != "dnd" || !data.InCall {
		t.Errorf("state not updated: %+v", data)
	}
}

func TestUpdateDataRejectsBadJSON(t *testing.T) {
	state := newTestState()
	app := newHTTPApp(state)

	req := httptest.NewRequest("POST", "/data", strings.NewReader("{nope"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	state := newTestState()
	app := newHTTPApp(state)

	body := `{"page_mode":"rotate","scroll_speed_ms":40}`
	req := httptest.NewRequest("POST", "/config", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("post config: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("post config status = %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/config", nil))
	if err != nil {
		t.Fatalf("get config: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cfg.PageMode != "rotate" || cfg.ScrollSpeedMs != 40 {
		t.Errorf("config = %+v", cfg)
	}
	// Untouched fields keep their values.
	if cfg.SPIPort != "SPI1.0" {
		t.Errorf("SPIPort clobbered: %q", cfg.SPIPort)
	}
	if state.pageMode != matrix.PageModeRotate {
		t.Errorf("page mode not applied: %v", state.pageMode)
	}
}

func TestFrameEndpointServesPNG(t *testing.T) {
	state := newTestState()
	app := newHTTPApp(state)

	resp, err := app.Test(httptest.NewRequest("GET", "/frame?scale=2", nil), 5000)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q", ct)
	}
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) < 8 || raw[1] != 'P' || raw[2] != 'N' || raw[3] != 'G' {
		t.Error("body is not a PNG")
	}
}

func TestPreviewSVGEndpoint(t *testing.T) {
	state := newTestState()
	app := newHTTPApp(state)

	resp, err := app.Test(httptest.NewRequest("GET", "/preview.svg", nil), 5000)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(raw), "<svg") {
		t.Error("body is not an SVG")
	}
}
