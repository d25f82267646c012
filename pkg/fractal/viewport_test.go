package fractal

import (
	"math"
	"testing"
)

const epsilon = 1e-12

func TestPixelToComplex(t *testing.T) {
	tests := []struct {
		name           string
		px, py         int
		wantRe, wantIm float64
	}{
		{"top-left corner", 0, 0, -3.0, -3.0},
		{"canvas center", Width / 2, Height / 2, 0.0, 0.0},
		{"bottom-right corner", Width, Height, 3.0, 3.0},
		{"off-canvas pixel", -100, 700, -4.0, 4.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport()
			re, im := v.PixelToComplex(tt.px, tt.py)
			if re != tt.wantRe || im != tt.wantIm {
				t.Errorf("PixelToComplex(%d, %d) = (%v, %v), want (%v, %v)",
					tt.px, tt.py, re, im, tt.wantRe, tt.wantIm)
			}
		})
	}
}

func TestPanStep(t *testing.T) {
	// at the default zoom the visible span is 6 units, so one pan moves 1
	v := NewViewport()
	v.Pan(Right)
	if got := v.OriginReal; got != -2.0 {
		t.Errorf("OriginReal after Pan(Right) = %v, want -2.0", got)
	}
	v = NewViewport()
	v.Pan(Up)
	if got := v.OriginImag; got != 4.0 {
		t.Errorf("OriginImag after Pan(Up) = %v, want 4.0", got)
	}
}

func TestPanReversible(t *testing.T) {
	pairs := []struct {
		name     string
		fwd, rev Direction
	}{
		{"up down", Up, Down},
		{"left right", Left, Right},
	}
	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport()
			v.ZoomAt(123, 456, 800) // some arbitrary non-default state
			before := *v
			v.Pan(tt.fwd)
			v.Pan(tt.rev)
			if math.Abs(v.OriginReal-before.OriginReal) > epsilon ||
				math.Abs(v.OriginImag-before.OriginImag) > epsilon {
				t.Errorf("pan %v then %v moved origin from (%v, %v) to (%v, %v)",
					tt.fwd, tt.rev, before.OriginReal, before.OriginImag, v.OriginReal, v.OriginImag)
			}
		})
	}
}

func TestZoomAtCenterIdentity(t *testing.T) {
	// clicking dead-center without changing the zoom must not move the view
	v := NewViewport()
	before := *v
	v.ZoomAt(Width/2, Height/2, v.Zoom)
	if math.Abs(v.OriginReal-before.OriginReal) > epsilon ||
		math.Abs(v.OriginImag-before.OriginImag) > epsilon {
		t.Errorf("origin moved from (%v, %v) to (%v, %v)",
			before.OriginReal, before.OriginImag, v.OriginReal, v.OriginImag)
	}
}

func TestZoomAtRecenters(t *testing.T) {
	// after zooming, the clicked plane point sits under the canvas center
	v := NewViewport()
	clickRe, clickIm := v.PixelToComplex(450, 150)
	v.ZoomAt(450, 150, v.Zoom*2)
	re, im := v.PixelToComplex(Width/2, Height/2)
	if math.Abs(re-clickRe) > epsilon || math.Abs(im-clickIm) > epsilon {
		t.Errorf("center now maps to (%v, %v), want clicked point (%v, %v)", re, im, clickRe, clickIm)
	}
	if v.Zoom != 200 {
		t.Errorf("Zoom = %v, want 200", v.Zoom)
	}
}

func TestZoomAtRejectsNonPositiveZoom(t *testing.T) {
	for _, z := range []float64{0, -1, -100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("ZoomAt with zoom %v did not panic", z)
				}
			}()
			NewViewport().ZoomAt(10, 10, z)
		}()
	}
}

func TestReset(t *testing.T) {
	v := NewViewport()
	v.ZoomAt(17, 530, 12800)
	v.Pan(Left)
	v.Reset()
	if *v != *NewViewport() {
		t.Errorf("Reset left viewport at %+v", *v)
	}
}

func TestLookAt(t *testing.T) {
	v := NewViewport()
	v.LookAt(SeahorseValley)

	// pixel (0,0) must map to the region's near corner
	re, im := v.PixelToComplex(0, 0)
	if math.Abs(re-SeahorseValley.Xmin) > epsilon || math.Abs(im-SeahorseValley.Ymin) > epsilon {
		t.Errorf("top-left maps to (%v, %v), want (%v, %v)", re, im, SeahorseValley.Xmin, SeahorseValley.Ymin)
	}

	// the far corner must not land short of the region
	re, im = v.PixelToComplex(Width, Height)
	if re < SeahorseValley.Xmax-epsilon || im < SeahorseValley.Ymax-epsilon {
		t.Errorf("bottom-right maps to (%v, %v), region extends to (%v, %v)",
			re, im, SeahorseValley.Xmax, SeahorseValley.Ymax)
	}

	if v.Zoom <= 0 {
		t.Errorf("Zoom = %v after LookAt, want positive", v.Zoom)
	}
}
