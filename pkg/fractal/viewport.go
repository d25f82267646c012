package fractal

// Canvas dimensions in pixels. The pixel buffer and the viewer window are
// both fixed to this size.
const (
	Width  = 600
	Height = 600
)

const (
	defaultZoom       = 100.0
	defaultOriginReal = -3.0
	defaultOriginImag = 3.0
)

// Direction selects a pan axis for Viewport.Pan.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Viewport maps the pixel canvas onto a region of the complex plane.
// Zoom is in pixels per plane unit and stays strictly positive.
// (OriginReal, OriginImag) is the plane point under pixel (0,0); the
// imaginary coordinate carries a flipped sign relative to pixel rows,
// matching the canvas having y grow downward.
type Viewport struct {
	Zoom       float64
	OriginReal float64
	OriginImag float64
}

// NewViewport returns a viewport framing the whole set on the canvas.
func NewViewport() *Viewport {
	return &Viewport{
		Zoom:       defaultZoom,
		OriginReal: defaultOriginReal,
		OriginImag: defaultOriginImag,
	}
}

// Reset restores the default home view.
func (v *Viewport) Reset() {
	*v = *NewViewport()
}

// PixelToComplex returns the plane point under pixel (px, py). Defined for
// any integers; pixels outside the canvas map past its edges.
func (v *Viewport) PixelToComplex(px, py int) (re, im float64) {
	re = float64(px)/v.Zoom + v.OriginReal
	im = float64(py)/v.Zoom - v.OriginImag
	return re, im
}

// Pan shifts the origin by a sixth of the currently visible span, so a key
// press moves the view by the same on-screen distance at any zoom.
func (v *Viewport) Pan(d Direction) {
	switch d {
	case Up:
		v.OriginImag += float64(Height) / v.Zoom / 6
	case Down:
		v.OriginImag -= float64(Height) / v.Zoom / 6
	case Left:
		v.OriginReal -= float64(Width) / v.Zoom / 6
	case Right:
		v.OriginReal += float64(Width) / v.Zoom / 6
	}
}

// ZoomAt re-centers the view on the plane point under (px, py) and applies
// newZoom. The translation happens at the old zoom and the re-centering at
// the new one; swapping the two steps lands the clicked point off-center.
// newZoom must be positive; violating that is a caller bug and panics.
func (v *Viewport) ZoomAt(px, py int, newZoom float64) {
	if newZoom <= 0 {
		panic("fractal: ZoomAt requires a positive zoom")
	}
	v.OriginReal += float64(px) / v.Zoom
	v.OriginImag -= float64(py) / v.Zoom
	v.Zoom = newZoom
	v.OriginReal -= (Width / 2.0) / v.Zoom
	v.OriginImag += (Height / 2.0) / v.Zoom
}
