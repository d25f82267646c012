package fractal

import (
	"image"
	"image/png"
	"io"
)

// Buffer is the Width x Height pixel raster a frame is rendered into.
// Pixels are packed RGB, 3 bytes each, row-major. It is allocated once and
// fully overwritten on every render; there is no partial-update path.
type Buffer struct {
	pix []uint8
}

// NewBuffer allocates a zeroed (all-black) buffer.
func NewBuffer() *Buffer {
	return &Buffer{pix: make([]uint8, Width*Height*3)}
}

// Set writes the color of a single pixel. (x, y) must be on the canvas.
func (b *Buffer) Set(x, y int, c RGB) {
	i := (y*Width + x) * 3
	b.pix[i+0] = c.R()
	b.pix[i+1] = c.G()
	b.pix[i+2] = c.B()
}

// At returns the color of a single pixel. (x, y) must be on the canvas.
func (b *Buffer) At(x, y int) RGB {
	i := (y*Width + x) * 3
	return RGB(b.pix[i+0])<<16 | RGB(b.pix[i+1])<<8 | RGB(b.pix[i+2])
}

// ToImage copies the buffer into a fresh opaque image.RGBA.
func (b *Buffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	for i := 0; i < Width*Height; i++ {
		img.Pix[i*4+0] = b.pix[i*3+0]
		img.Pix[i*4+1] = b.pix[i*3+1]
		img.Pix[i*4+2] = b.pix[i*3+2]
		img.Pix[i*4+3] = 0xFF
	}
	return img
}

// EncodePNG writes the buffer to w as a PNG.
func (b *Buffer) EncodePNG(w io.Writer) error {
	return png.Encode(w, b.ToImage())
}
