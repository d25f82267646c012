package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/harrisoncollazo/FractalVisualizer/pkg/fractal"
	"github.com/veandco/go-sdl2/sdl"
)

func sdlInit(windowTitle string) (*sdl.Window, *sdl.Renderer, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_TIMER); err != nil {
		return nil, nil, err
	}
	sdl.StopTextInput()

	window, err := sdl.CreateWindow(
		windowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		fractal.Width, fractal.Height, sdl.WINDOW_OPENGL,
	)
	if err != nil {
		return nil, nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, nil, err
	}

	return window, renderer, nil
}

func sdlClose(window *sdl.Window, renderer *sdl.Renderer) {
	renderer.Destroy()
	window.Destroy()
	sdl.Quit()
}

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	screenshotDir := flag.String("screenshot-dir", ".", "directory screenshots are written to")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	fractal.SetLogger(logger)

	window, renderer, err := sdlInit("Fractal Visualizer")
	if err != nil {
		slog.Error("sdl init", "err", err)
		os.Exit(1)
	}
	defer sdlClose(window, renderer)

	s, err := newScene(renderer, *screenshotDir)
	if err != nil {
		slog.Error("scene init", "err", err)
		os.Exit(1)
	}
	defer s.close()

	run := true
	for run {
		// WaitEvent must be on the same thread that did INIT_VIDEO
		e := sdl.WaitEvent()

		// WaitEvent returns nil on some error
		if e == nil {
			slog.Error("event is nil")
			break
		}

		switch t := e.(type) {
		case *sdl.QuitEvent:
			run = false
		case *sdl.MouseButtonEvent:
			if t.Type != sdl.MOUSEBUTTONDOWN {
				break
			}
			switch t.Button {
			case sdl.BUTTON_LEFT:
				s.engine.Handle(fractal.Event{Kind: fractal.ZoomIn, X: int(t.X), Y: int(t.Y)})
			case sdl.BUTTON_RIGHT:
				s.engine.Handle(fractal.Event{Kind: fractal.ZoomOut, X: int(t.X), Y: int(t.Y)})
			}
		case *sdl.KeyboardEvent:
			if t.Type == sdl.KEYDOWN {
				run = s.handleKey(t.Keysym.Sym)
			}
		}

		// draw
		if err := s.draw(); err != nil {
			slog.Error("draw", "err", err)
		}
		renderer.Present()
	}
}
