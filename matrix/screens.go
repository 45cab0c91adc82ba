package matrix

import (
	"fmt"
	"strings"
)

// Static screens shown outside the normal page cycle (boot, provisioning,
// updates, pairing). Each screen paints its fixed parts once, keyed on
// lastStaticKey, and re-runs only its scrolling parts on later calls. Any
// static screen invalidates the page caches, so the next Update repaints from
// scratch.

// beginStaticScreen clears the panel and caches when the screen identified by
// key was not already up. Returns true when the fixed parts must be drawn.
func (r *Renderer) beginStaticScreen(key string) bool {
	if r.lastStaticKey == key {
		return false
	}
	r.drv.Clear()
	r.clearAllCaches()
	r.lastStaticKey = key
	r.initialized = false
	return true
}

// ShowStartupScreen paints the boot splash. version may be empty.
func (r *Renderer) ShowStartupScreen(version string) {
	if !r.beginStaticScreen("startup|" + version) {
		return
	}
	r.drawStatusBorder(ColorGray, 1)
	r.drawCenteredText(5, "PRESENCE", ColorCyan)
	r.drawCenteredText(14, "DECK", ColorCyan)
	if version != "" && isTinyRenderable(version) {
		r.drawTinyText((r.width-tinyTextWidth(version))/2, 24, version, ColorGray)
	} else {
		r.drawCenteredText(23, "BOOTING", ColorGray)
	}
}

// ShowAPMode advertises the setup access point and its address.
func (r *Renderer) ShowAPMode(ssid, ip string) {
	key := fmt.Sprintf("apmode|%s|%s", ssid, ip)
	if r.beginStaticScreen(key) {
		r.drawStatusBorder(ColorYellow, 1)
		r.drawCenteredText(2, "SETUP WIFI", ColorYellow)
	}
	r.drawScrollingText(12, ssid+" Setup", ColorWhite, 1, r.width-2, "apmode.ssid")
	r.drawScrollingText(22, normalizeIpText(ip), ColorCyan, 1, r.width-2, "apmode.ip")
}

// ShowUnconfigured points at the local web setup page.
func (r *Renderer) ShowUnconfigured(ip, hostname string) {
	key := fmt.Sprintf("unconfigured|%s|%s", ip, hostname)
	if r.beginStaticScreen(key) {
		r.drawStatusBorder(ColorYellow, 1)
		r.drawCenteredText(2, "SETUP", ColorYellow)
	}
	r.drawScrollingText(12, normalizeIpText(ip), ColorCyan, 1, r.width-2, "unconfigured.ip")
	r.drawScrollingText(22, hostname+".local", ColorWhite, 1, r.width-2, "unconfigured.host")
}

// ShowWifiDisconnected flags a lost network connection.
func (r *Renderer) ShowWifiDisconnected() {
	if !r.beginStaticScreen("wifidown") {
		return
	}
	r.drawStatusBorder(ColorRed, 1)
	r.drawWifiIcon(r.width/2-3, 5, false)
	r.drawCenteredText(14, "NO WIFI", ColorRed)
	r.drawCenteredText(23, "RETRYING", ColorGray)
}

// ShowImprovProvisioning is shown while credentials arrive over BLE.
func (r *Renderer) ShowImprovProvisioning() {
	if !r.beginStaticScreen("improv") {
		return
	}
	r.drawStatusBorder(ColorBlue, 1)
	r.drawCenteredText(5, "BLE SETUP", ColorBlue)
	r.drawCenteredText(16, "WAITING", ColorWhite)
}

// ShowConnecting is shown while joining ssid.
func (r *Renderer) ShowConnecting(ssid string) {
	key := "connecting|" + ssid
	if r.beginStaticScreen(key) {
		r.drawStatusBorder(ColorYellow, 1)
		r.drawCenteredText(4, "WIFI", ColorYellow)
	}
	r.drawScrollingText(14, ssid, ColorWhite, 1, r.width-2, "connecting.ssid")
}

// ShowConnected confirms the join and shows where the device can be reached.
func (r *Renderer) ShowConnected(ip, hostname string) {
	key := fmt.Sprintf("connected|%s|%s", ip, hostname)
	if r.beginStaticScreen(key) {
		r.drawStatusBorder(ColorGreen, 1)
		r.drawCheckIcon(r.width/2-2, 3, ColorGreen)
		r.drawCenteredText(11, "ONLINE", ColorGreen)
	}
	r.drawScrollingText(21, normalizeIpText(ip), ColorCyan, 1, r.width-2, "connected.ip")
}

// ShowUpdating is the pre-download update notice.
func (r *Renderer) ShowUpdating(version string) {
	key := "updating|" + version
	if r.beginStaticScreen(key) {
		r.drawStatusBorder(ColorBlue, 1)
		r.drawCenteredText(4, "UPDATE", ColorBlue)
	}
	r.drawScrollingText(14, version, ColorWhite, 1, r.width-2, "updating.version")
}

// ShowUpdatingProgress draws the firmware update screen with a progress bar.
// Progress is 0-100; out of range values are clamped.
func (r *Renderer) ShowUpdatingProgress(version string, progress int, status string) {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	key := fmt.Sprintf("updateprog|%s|%d", version, progress)
	if r.beginStaticScreen(key) {
		r.drawStatusBorder(ColorBlue, 1)
		r.drawCenteredText(3, "UPDATING", ColorBlue)

		barX, barY := 4, 13
		barW, barH := r.width-8, 6
		r.drawRect(barX, barY, barW, barH, ColorWhite)
		fill := (barW - 2) * progress / 100
		if fill > 0 {
			r.fillRect(barX+1, barY+1, fill, barH-2, ColorGreen)
		}
	}
	r.drawScrollingText(22, status, ColorGray, 1, r.width-2, "updateprog.status")
}

// ShowError flags a fatal condition with a scrolling detail line.
func (r *Renderer) ShowError(message string) {
	key := "error|" + message
	if r.beginStaticScreen(key) {
		r.drawStatusBorder(ColorRed, 1)
		r.drawErrorIcon(r.width/2-2, 3, ColorRed)
		r.drawCenteredText(11, "ERROR", ColorRed)
		r.drawSeparator(19, ColorGray)
	}
	r.drawScrollingText(21, message, ColorWhite, 1, r.width-2, "error.detail")
}

// ShowSetupHostname points at the embedded settings page once mDNS is up.
func (r *Renderer) ShowSetupHostname(hostname string) {
	key := "setuphost|" + hostname
	if r.beginStaticScreen(key) {
		r.drawStatusBorder(ColorYellow, 1)
		r.drawCenteredText(2, "SETUP", ColorYellow)
		r.drawCenteredText(22, "/embedded", ColorGray)
	}
	r.drawScrollingText(12, hostname+".local", ColorWhite, 1, r.width-2, "setuphost.host")
}

// ShowWaitingForWebex is shown after setup until presence data arrives. The
// gray status dot marks presence as unknown rather than offline.
func (r *Renderer) ShowWaitingForWebex() {
	if !r.beginStaticScreen("waiting") {
		return
	}
	r.drawStatusBorder(ColorGray, 1)
	r.drawStatusIcon(r.width/2-4, 3, "unknown")
	r.drawCenteredText(13, "WAITING", ColorWhite)
	r.drawCenteredText(22, "FOR HUB", ColorGray)
}

// ShowPairingCode draws each code character in its own box and scrolls the
// hub address underneath. A ws:// or wss:// scheme on the address is noise at
// this size and is stripped.
func (r *Renderer) ShowPairingCode(code, hubURL string) {
	addr := strings.TrimPrefix(strings.TrimPrefix(hubURL, "wss://"), "ws://")
	key := fmt.Sprintf("pairing|%s|%s", code, addr)
	if r.beginStaticScreen(key) {
		r.drawStatusBorder(ColorCyan, 1)
		r.drawCenteredText(2, "PAIR", ColorCyan)
		r.drawPairingBoxes(12, code)
	}
	r.drawTinyScrollingText(24, addr, ColorGray, 1, r.width-2, "pairing.addr")
}

// drawPairingBoxes centers the code characters, each inside a 9x11 box.
func (r *Renderer) drawPairingBoxes(y int, code string) {
	const boxW, boxH, gap = 9, 11, 1
	n := len(code)
	if n == 0 {
		return
	}
	total := n*boxW + (n-1)*gap
	x := (r.width - total) / 2
	if x < 0 {
		x = 0
	}
	for i := 0; i < n; i++ {
		bx := x + i*(boxW+gap)
		r.drawRect(bx, y, boxW, boxH, ColorWhite)
		r.drawText(bx+2, y+2, string(code[i]), ColorCyan)
	}
}
