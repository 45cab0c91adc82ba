package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"

	"github.com/presencedeck/presence_matrix_display/matrix"
)

// Preview rendering for the admin endpoints. The panel is 64x32; everything
// here blows it up so a browser shows more than a thumbnail.

// frameToImage converts an RGB565 pixel slice to an RGBA image at 1:1.
func frameToImage(pix []uint16, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b := matrix.RGBFrom565(pix[y*width+x])
			img.SetRGBA(x, y, color.RGBA{r, g, b, 255})
		}
	}
	return img
}

// upscaleFrame scales the frame by an integer factor with hard pixel edges.
func upscaleFrame(pix []uint16, width, height, scale int) *image.RGBA {
	src := frameToImage(pix, width, height)
	dst := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// renderPreviewSVG writes the frame as a grid of LED dots on black.
func renderPreviewSVG(w io.Writer, pix []uint16, width, height, scale int) {
	canvas := svg.New(w)
	canvas.Start(width*scale, height*scale)
	canvas.Rect(0, 0, width*scale, height*scale, "fill:black")
	radius := scale * 2 / 5
	if radius < 1 {
		radius = 1
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := pix[y*width+x]
			if c == matrix.ColorBlack {
				continue
			}
			r, g, b := matrix.RGBFrom565(c)
			canvas.Circle(x*scale+scale/2, y*scale+scale/2, radius,
				fmt.Sprintf("fill:rgb(%d,%d,%d)", r, g, b))
		}
	}
	canvas.End()
}

// renderPreviewPNG rasterizes the SVG preview to an image.
func renderPreviewPNG(pix []uint16, width, height, scale int) (image.Image, error) {
	var buf bytes.Buffer
	renderPreviewSVG(&buf, pix, width, height, scale)

	icon, err := oksvg.ReadIconStream(&buf)
	if err != nil {
		return nil, fmt.Errorf("preview svg parse: %w", err)
	}
	w, h := width*scale, height*scale
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.SetTarget(0, 0, float64(w), float64(h))
	icon.Draw(raster, 1.0)
	return img, nil
}

// renderDotsPNG draws the frame as anti-aliased LED dots directly, without
// the SVG round trip.
func renderDotsPNG(pix []uint16, width, height, scale int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetFillColor(color.Black)
	draw2dkit.Rectangle(gc, 0, 0, float64(width*scale), float64(height*scale))
	gc.Fill()

	radius := float64(scale) * 0.4
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := pix[y*width+x]
			if c == matrix.ColorBlack {
				continue
			}
			r, g, b := matrix.RGBFrom565(c)
			gc.SetFillColor(color.RGBA{r, g, b, 255})
			cx := float64(x*scale) + float64(scale)/2
			cy := float64(y*scale) + float64(scale)/2
			draw2dkit.Circle(gc, cx, cy, radius)
			gc.Fill()
		}
	}
	return img
}
