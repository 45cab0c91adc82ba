package main

import (
	"bytes"
	"image/png"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const defaultPreviewScale = 8

func previewScale(c *fiber.Ctx) int {
	scale, err := strconv.Atoi(c.Query("scale", strconv.Itoa(defaultPreviewScale)))
	if err != nil || scale < 1 || scale > 32 {
		return defaultPreviewScale
	}
	return scale
}

// copyFramePixels snapshots the framebuffer under the lock so the encoders
// work on a stable copy while the render loop keeps going.
func copyFramePixels() ([]uint16, int, int) {
	frameMutex.RLock()
	defer frameMutex.RUnlock()
	w, h := frame.Size()
	pix := make([]uint16, len(frame.Pix()))
	copy(pix, frame.Pix())
	return pix, w, h
}

func serveFrame(c *fiber.Ctx) error {
	pix, w, h := copyFramePixels()
	img := upscaleFrame(pix, w, h, previewScale(c))

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to encode image")
	}
	c.Set("Content-Type", "image/png")
	c.Set("Content-Length", strconv.Itoa(buf.Len()))
	return c.Send(buf.Bytes())
}

func servePreviewSVG(c *fiber.Ctx) error {
	pix, w, h := copyFramePixels()
	var buf bytes.Buffer
	renderPreviewSVG(&buf, pix, w, h, previewScale(c))
	c.Set("Content-Type", "image/svg+xml")
	return c.Send(buf.Bytes())
}

func servePreviewPNG(c *fiber.Ctx) error {
	pix, w, h := copyFramePixels()
	img, err := renderPreviewPNG(pix, w, h, previewScale(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to rasterize preview")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to encode image")
	}
	c.Set("Content-Type", "image/png")
	return c.Send(buf.Bytes())
}

func serveDotsPNG(c *fiber.Ctx) error {
	pix, w, h := copyFramePixels()
	img := renderDotsPNG(pix, w, h, previewScale(c))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to encode image")
	}
	c.Set("Content-Type", "image/png")
	return c.Send(buf.Bytes())
}

func updateData(state *appState) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p presencePayload
		if err := c.BodyParser(&p); err != nil {
			return c.Status(fiber.StatusBadRequest).SendString("Invalid JSON")
		}
		state.applyPresence(&p)
		return c.SendString("Data updated")
	}
}

func getConfig(state *appState) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state.mu.RLock()
		cfg := state.cfg
		state.mu.RUnlock()
		return c.JSON(cfg)
	}
}

func updateConfig(state *appState) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state.mu.Lock()
		cfg := state.cfg
		if err := c.BodyParser(&cfg); err != nil {
			state.mu.Unlock()
			return c.Status(fiber.StatusBadRequest).SendString("Invalid JSON")
		}
		state.cfg = cfg
		state.pageMode = parsePageMode(cfg.PageMode)
		state.mu.Unlock()
		return c.SendString("Config updated")
	}
}

func newHTTPApp(state *appState) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("presence matrix display\n" +
			"GET /frame /preview.svg /preview.png /dots.png\n" +
			"POST /data /config\n")
	})
	app.Get("/frame", serveFrame)
	app.Get("/preview.svg", servePreviewSVG)
	app.Get("/preview.png", servePreviewPNG)
	app.Get("/dots.png", serveDotsPNG)
	app.Post("/data", updateData(state))
	app.Get("/config", getConfig(state))
	app.Post("/config", updateConfig(state))
	return app
}

func httpServer(state *appState, port string) {
	app := newHTTPApp(state)
	log.Println("Starting Fiber server on", port)
	log.Fatal(app.Listen(port))
}
