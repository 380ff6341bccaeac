package sound

import (
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

// note is a single square-wave tone inside a jingle.
type note struct {
	freq    float64
	samples int
}

// Chiptune is an infinite stereo square-wave stream. It stays silent until
// a jingle is queued. The mutex guards the queue: jingles are triggered
// from the update loop while the audio goroutine reads the stream.
type Chiptune struct {
	mu    sync.Mutex
	queue []note
	tick  float64
}

// NewChiptune starts the stream on ctx and returns it ready to trigger.
func NewChiptune(ctx *audio.Context) (*Chiptune, error) {
	c := &Chiptune{}
	player, err := ctx.NewPlayer(c)
	if err != nil {
		return nil, err
	}
	player.SetVolume(0.4)
	player.Play()
	return c, nil
}

func (c *Chiptune) Read(buf []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := 0; i+3 < len(buf); i += 4 {
		var v int16
		if len(c.queue) > 0 {
			n := &c.queue[0]
			c.tick++

			val := 0.12
			if math.Mod(c.tick*n.freq/SampleRate, 1) >= 0.5 {
				val = -0.12
			}
			v = int16(val * 32767)

			n.samples--
			if n.samples <= 0 {
				c.queue = c.queue[1:]
				c.tick = 0
			}
		}
		buf[i] = byte(v)
		buf[i+1] = byte(v >> 8)
		buf[i+2] = byte(v)
		buf[i+3] = byte(v >> 8)
	}
	return len(buf), nil
}

// Win plays a short rising arpeggio.
func (c *Chiptune) Win() {
	c.enqueue([]float64{523, 659, 784, 1046}, 0.09)
}

// Thud plays a low buzz for a collision.
func (c *Chiptune) Thud() {
	c.enqueue([]float64{110, 82}, 0.08)
}

// enqueue replaces any jingle still playing; the latest event wins.
func (c *Chiptune) enqueue(freqs []float64, secs float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.queue = c.queue[:0]
	c.tick = 0
	for _, f := range freqs {
		c.queue = append(c.queue, note{freq: f, samples: int(secs * SampleRate)})
	}
}
