package render

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
)

// Raster is a rendered overlay chart: the pixel grid plus the retained
// axis boxes of the four logical axes (two panels, each with a disorder
// axis and a coiled-coil axis). The two axes of a panel share one pixel
// box but remain distinct objects with their own data limits.
type Raster struct {
	Img            *image.RGBA
	TopDisorder    AxisBox
	TopCC          AxisBox
	BottomDisorder AxisBox
	BottomCC       AxisBox
}

// EncodePNG writes the raster as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.Img)
}

// SavePNG writes the raster as a PNG file.
func (r *Raster) SavePNG(path string) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, r.Img); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// toRGBA returns the image as *image.RGBA, copying only when the decoder
// produced another pixel format.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	return rgba
}
