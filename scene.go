package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/harrisoncollazo/FractalVisualizer/pkg/fractal"
	"github.com/veandco/go-sdl2/sdl"
	xdraw "golang.org/x/image/draw"
)

// minimap edge length as a fraction of the canvas
const minimapRatio = 0.15

var landmarks = map[sdl.Keycode]fractal.Region{
	sdl.K_1: fractal.SeahorseValley,
	sdl.K_2: fractal.ElephantValley,
	sdl.K_3: fractal.SpiralMinibrot,
	sdl.K_4: fractal.TripleSpiral,
	sdl.K_5: fractal.ValleyOfTheDragon,
	sdl.K_6: fractal.MinibrotInMiniSpiral,
}

type scene struct {
	renderer      *sdl.Renderer
	texture       *sdl.Texture
	minimap       *sdl.Texture
	engine        *fractal.Engine
	showMinimap   bool
	screenshotDir string
}

func newScene(r *sdl.Renderer, screenshotDir string) (*scene, error) {
	t, err := r.CreateTexture(
		sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING, // only textures with TEXTUREACCESS_STREAMING can be locked
		fractal.Width, fractal.Height,
	)
	if err != nil {
		return nil, fmt.Errorf("create frame texture: %w", err)
	}

	mm, err := r.CreateTexture(
		sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING,
		minimapW(), minimapH(),
	)
	if err != nil {
		t.Destroy()
		return nil, fmt.Errorf("create minimap texture: %w", err)
	}

	e := fractal.NewEngine()
	e.Start()

	return &scene{
		renderer:      r,
		texture:       t,
		minimap:       mm,
		engine:        e,
		screenshotDir: screenshotDir,
	}, nil
}

func (s *scene) close() {
	s.minimap.Destroy()
	s.texture.Destroy()
}

// handleKey dispatches a key press; it returns false when the viewer
// should quit.
func (s *scene) handleKey(key sdl.Keycode) bool {
	switch key {
	case sdl.K_ESCAPE:
		return false
	case sdl.K_w, sdl.K_UP:
		s.engine.Handle(fractal.Event{Kind: fractal.PanUp})
	case sdl.K_s, sdl.K_DOWN:
		s.engine.Handle(fractal.Event{Kind: fractal.PanDown})
	case sdl.K_a, sdl.K_LEFT:
		s.engine.Handle(fractal.Event{Kind: fractal.PanLeft})
	case sdl.K_d, sdl.K_RIGHT:
		s.engine.Handle(fractal.Event{Kind: fractal.PanRight})
	case sdl.K_0:
		s.engine.Start()
	case sdl.K_m:
		s.showMinimap = !s.showMinimap
	case sdl.K_p:
		if err := s.screenshot(); err != nil {
			slog.Error("screenshot", "err", err)
		}
	default:
		if region, ok := landmarks[key]; ok {
			s.engine.LookAt(region)
		}
	}
	return true
}

// draw blits the engine's pixel buffer into the streaming texture and copies
// it over the whole window, plus the minimap overlay when enabled.
func (s *scene) draw() error {
	data, pitch, err := s.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("lock frame texture: %w", err)
	}
	buf := s.engine.Buffer()
	for y := 0; y < fractal.Height; y++ {
		for x := 0; x < fractal.Width; x++ {
			c := buf.At(x, y)
			i := y*pitch + x*4
			data[i+0] = c.R()
			data[i+1] = c.G()
			data[i+2] = c.B()
			data[i+3] = 0xFF
		}
	}
	s.texture.Unlock()

	if err := s.renderer.Copy(s.texture, nil, nil); err != nil {
		return fmt.Errorf("copy frame texture: %w", err)
	}
	if s.showMinimap {
		return s.drawMinimap()
	}
	return nil
}

// drawMinimap downscales the current frame and draws it in the top-left
// corner with an outline.
func (s *scene) drawMinimap() error {
	mw, mh := minimapW(), minimapH()

	small := image.NewRGBA(image.Rect(0, 0, int(mw), int(mh)))
	full := s.engine.Buffer().ToImage()
	xdraw.ApproxBiLinear.Scale(small, small.Bounds(), full, full.Bounds(), xdraw.Src, nil)

	data, pitch, err := s.minimap.Lock(nil)
	if err != nil {
		return fmt.Errorf("lock minimap texture: %w", err)
	}
	for y := 0; y < int(mh); y++ {
		copy(data[y*pitch:y*pitch+int(mw)*4], small.Pix[y*small.Stride:y*small.Stride+int(mw)*4])
	}
	s.minimap.Unlock()

	dst := sdl.Rect{X: 8, Y: 8, W: mw, H: mh}
	if err := s.renderer.Copy(s.minimap, nil, &dst); err != nil {
		return fmt.Errorf("copy minimap texture: %w", err)
	}
	s.renderer.SetDrawColor(255, 255, 255, 255)
	return s.renderer.DrawRect(&dst)
}

func (s *scene) screenshot() error {
	name := fmt.Sprintf("fractal-%s.png", time.Now().Format("20060102-150405"))
	path := filepath.Join(s.screenshotDir, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create screenshot: %w", err)
	}
	defer f.Close()

	if err := s.engine.Buffer().EncodePNG(f); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	slog.Info("screenshot saved", "path", path)
	return nil
}

func minimapW() int32 { return int32(float64(fractal.Width) * minimapRatio) }
func minimapH() int32 { return int32(float64(fractal.Height) * minimapRatio) }
