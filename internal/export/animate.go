package export

import (
	"image/gif"
	"log"

	"github.com/san-kum/routeviz/internal/scene"
)

type AnimateOptions struct {
	Options
	// FramesPerStop is how many backdrop frames separate playback ticks.
	FramesPerStop int
	// Delay per frame in hundredths of a second.
	Delay int
	// MaxFrames caps the animation; 0 means no cap.
	MaxFrames int
}

func (o AnimateOptions) normalized() AnimateOptions {
	if o.FramesPerStop <= 0 {
		o.FramesPerStop = 30
	}
	if o.Delay <= 0 {
		o.Delay = DefaultDelay
	}
	return o
}

// Backdrop renders n consecutive frames of the scene.
func Backdrop(sc *scene.Scene, n int, opts AnimateOptions) *gif.GIF {
	opts = opts.normalized()
	enc := newEncoder(opts.Delay)
	for i := 0; i < n; i++ {
		sc.Step()
		enc.add(Frame(sc, opts.Options).Image())
	}
	return enc.finish()
}

// Animate plays the scene's route from the first stop to the last,
// ticking the controller every FramesPerStop frames, then holds the final
// stop for one more interval.
func Animate(sc *scene.Scene, opts AnimateOptions) (*gif.GIF, error) {
	opts = opts.normalized()
	ctrl := sc.Playback()
	enc := newEncoder(opts.Delay)

	id, ok := ctrl.Play()
	if !ok {
		return nil, ErrNoFrames
	}
	live := true
	hold := opts.FramesPerStop
	for frame := 1; live || hold > 0; frame++ {
		if opts.MaxFrames > 0 && enc.count() >= opts.MaxFrames {
			log.Printf("animation capped at %d frames", opts.MaxFrames)
			break
		}
		sc.Step()
		enc.add(Frame(sc, opts.Options).Image())
		if !live {
			hold--
			continue
		}
		if frame%opts.FramesPerStop == 0 {
			live = ctrl.Tick(id)
		}
	}
	return enc.finish(), nil
}
