package export

import (
	"image"
	"image/gif"
	"runtime"
	"sync"
)

// parallelFor splits [0, n) into contiguous chunks and runs fn over them
// concurrently, one goroutine per chunk.
func parallelFor(n, minChunk int, fn func(start, end int)) {
	workers := runtime.NumCPU()
	if minChunk < 1 {
		minChunk = 1
	}
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}
	if n/minChunk < workers {
		workers = n / minChunk
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// quantizeAll converts frames to paletted images, preserving order.
func quantizeAll(frames []image.Image) []*image.Paletted {
	out := make([]*image.Paletted, len(frames))
	parallelFor(len(frames), 1, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = Quantize(frames[i])
		}
	})
	return out
}

// encoder buffers rendered frames and quantizes them a batch at a time so
// dithering runs on every core without holding the whole run in RGBA.
type encoder struct {
	anim    *gif.GIF
	delay   int
	batch   int
	pending []image.Image
}

func newEncoder(delay int) *encoder {
	return &encoder{anim: &gif.GIF{}, delay: delay, batch: max(1, runtime.NumCPU())}
}

func (e *encoder) add(img image.Image) {
	e.pending = append(e.pending, img)
	if len(e.pending) >= e.batch {
		e.flush()
	}
}

func (e *encoder) flush() {
	for _, p := range quantizeAll(e.pending) {
		e.anim.Image = append(e.anim.Image, p)
		e.anim.Delay = append(e.anim.Delay, e.delay)
	}
	e.pending = e.pending[:0]
}

func (e *encoder) count() int { return len(e.anim.Image) + len(e.pending) }

func (e *encoder) finish() *gif.GIF {
	e.flush()
	return e.anim
}
