package fractal

import (
	"runtime"
	"sync"
	"time"
)

// RenderFrame rasterizes the viewport into buf, overwriting every pixel.
// Rows are spread across one worker per CPU; workers write disjoint rows,
// and the call blocks until the whole frame is done, so the caller sees a
// plain synchronous recompute.
func RenderFrame(v *Viewport, buf *Buffer) {
	start := time.Now()

	workers := runtime.GOMAXPROCS(0)
	rows := make(chan int)
	wg := new(sync.WaitGroup)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for y := range rows {
				renderRow(v, buf, y)
			}
		}()
	}
	for y := 0; y < Height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	Logger().Debug("frame rendered",
		"zoom", v.Zoom,
		"originReal", v.OriginReal,
		"originImag", v.OriginImag,
		"elapsed", time.Since(start),
	)
}

func renderRow(v *Viewport, buf *Buffer, y int) {
	for x := 0; x < Width; x++ {
		re, im := v.PixelToComplex(x, y)
		buf.Set(x, y, ColorFor(Iterate(re, im)))
	}
}
