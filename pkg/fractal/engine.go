// Package fractal renders the Mandelbrot set into a fixed-size pixel buffer
// and tracks the viewport being panned and zoomed over it. It knows nothing
// about windows or input devices; a presentation layer feeds it events and
// blits the buffer however it likes.
package fractal

// EventKind discriminates viewer intents.
type EventKind int

const (
	PanUp EventKind = iota
	PanDown
	PanLeft
	PanRight
	ZoomIn
	ZoomOut
)

// Event is a single pan/zoom intent. X and Y carry the click position for
// ZoomIn and ZoomOut and are ignored otherwise.
type Event struct {
	Kind EventKind
	X, Y int
}

// Engine owns the viewport and the pixel buffer and recomputes a full frame
// after every state change. Not safe for concurrent use; drive it from one
// goroutine, the way an event loop does.
type Engine struct {
	view *Viewport
	buf  *Buffer
}

func NewEngine() *Engine {
	return &Engine{
		view: NewViewport(),
		buf:  NewBuffer(),
	}
}

// Viewport exposes the current viewport state.
func (e *Engine) Viewport() *Viewport { return e.view }

// Buffer exposes the pixel buffer the last frame was rendered into.
func (e *Engine) Buffer() *Buffer { return e.buf }

// Start resets the viewport to the home view and renders the first frame.
func (e *Engine) Start() {
	e.view.Reset()
	RenderFrame(e.view, e.buf)
}

// Handle applies a pan/zoom event and renders the next frame. Zoom events
// double or halve the zoom around the clicked pixel.
func (e *Engine) Handle(ev Event) {
	switch ev.Kind {
	case PanUp:
		e.view.Pan(Up)
	case PanDown:
		e.view.Pan(Down)
	case PanLeft:
		e.view.Pan(Left)
	case PanRight:
		e.view.Pan(Right)
	case ZoomIn:
		e.view.ZoomAt(ev.X, ev.Y, e.view.Zoom*2)
	case ZoomOut:
		e.view.ZoomAt(ev.X, ev.Y, e.view.Zoom/2)
	}
	RenderFrame(e.view, e.buf)
}

// LookAt jumps the viewport to a named region and renders it.
func (e *Engine) LookAt(r Region) {
	e.view.LookAt(r)
	RenderFrame(e.view, e.buf)
}
