package matrix

import "time"

// Config holds the tunables of a Renderer. Zero values fall back to the
// defaults below.
type Config struct {
	ScrollSpeedMs  int // ms between 1 px scroll steps
	PageIntervalMs int // ms each page stays up in rotate mode
}

const (
	defaultScrollSpeedMs  = 60
	defaultPageIntervalMs = 5000
)

// Renderer is the incremental display engine. It owns all animation and cache
// state and draws through a Driver; callers feed it DisplayData snapshots via
// Update at whatever tick rate they run.
//
// A Renderer is not safe for concurrent use. Drive it from one goroutine.
type Renderer struct {
	drv    Driver
	width  int
	height int

	scrollSpeedMs  int
	pageIntervalMs int

	initialized bool

	currentPage      Page
	lastPageChangeMs int64

	scrollStates  [maxScrollStates]scrollEntry
	lineKeys      [4]string
	borderKey     string
	lastStaticKey string

	// millis is the monotonic clock, swappable in tests.
	millis func() int64
}

// New returns a Renderer drawing to drv.
func New(drv Driver, cfg Config) *Renderer {
	if cfg.ScrollSpeedMs <= 0 {
		cfg.ScrollSpeedMs = defaultScrollSpeedMs
	}
	if cfg.PageIntervalMs <= 0 {
		cfg.PageIntervalMs = defaultPageIntervalMs
	}
	w, h := drv.Size()
	start := time.Now()
	return &Renderer{
		drv:            drv,
		width:          w,
		height:         h,
		scrollSpeedMs:  cfg.ScrollSpeedMs,
		pageIntervalMs: cfg.PageIntervalMs,
		currentPage:    PageStatus,
		millis: func() int64 {
			return time.Since(start).Milliseconds()
		},
	}
}

// Clear blanks the panel and drops every cache so the next Update repaints
// from scratch.
func (r *Renderer) Clear() {
	r.drv.Clear()
	r.clearAllCaches()
	r.initialized = false
}

// SetBrightness forwards to the driver when it supports it. Level is 0-255.
func (r *Renderer) SetBrightness(level uint8) {
	if b, ok := r.drv.(Brightener); ok {
		b.SetBrightness(level)
	}
}

// SetScrollSpeedMs changes the scroll step interval at runtime.
func (r *Renderer) SetScrollSpeedMs(ms int) {
	if ms > 0 {
		r.scrollSpeedMs = ms
	}
}

// SetPageIntervalMs changes the rotation dwell time at runtime.
func (r *Renderer) SetPageIntervalMs(ms int) {
	if ms > 0 {
		r.pageIntervalMs = ms
	}
}

// Update renders one tick of the presence display. Calling it again with
// unchanged data draws nothing except due scroll steps.
func (r *Renderer) Update(data *DisplayData) {
	if data == nil {
		return
	}
	if !r.initialized {
		r.drv.Clear()
		r.clearAllCaches()
		r.currentPage = PageStatus
		r.lastPageChangeMs = r.millis()
		r.initialized = true
	}

	page := r.selectPage(data)
	if page != r.currentPage {
		// A page swap invalidates every region, border included.
		r.currentPage = page
		r.drv.Clear()
		r.clearAllCaches()
		// Entering the call page keeps the rotation timer, so the
		// rotation cadence survives short calls. Everything else resets
		// the dwell.
		if page != PageInCall {
			r.lastPageChangeMs = r.millis()
		}
	}

	switch r.currentPage {
	case PageInCall:
		r.drawInCallPage(data)
	case PageSensors:
		r.drawSensorPage(data)
	default:
		r.drawStatusPage(data)
	}
}

// selectPage picks the page for this tick. An active call overrides
// everything; otherwise the configured mode decides, with rotation flipping
// between status and sensors on the dwell interval. Entering the call page
// does not touch the rotation timer, so rotation resumes where it left off.
func (r *Renderer) selectPage(data *DisplayData) Page {
	if data.ShowCallStatus && data.InCall {
		return PageInCall
	}
	switch data.PageMode {
	case PageModeSensorsOnly:
		if data.ShowSensors {
			return PageSensors
		}
		return PageStatus
	case PageModeRotate:
		if !data.ShowSensors {
			return PageStatus
		}
		if r.currentPage == PageInCall {
			// Coming out of a call always lands on status first.
			return PageStatus
		}
		now := r.millis()
		rotated := r.currentPage
		if now-r.lastPageChangeMs >= int64(r.pageIntervalMs) {
			if rotated == PageStatus {
				rotated = PageSensors
			} else {
				rotated = PageStatus
			}
		}
		return rotated
	default:
		return PageStatus
	}
}
