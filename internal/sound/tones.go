// Package sound plays short synthesized cues for game events.
package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/racer-arcade/internal/core"
)

// SampleRate is the output rate for every cue.
const SampleRate = beep.SampleRate(44100)

// note is one envelope-shaped tone of a cue.
type note struct {
	freq     float64 // 0 means noise
	duration time.Duration
	volume   float64 // Linear gain in (0, 1]
}

// cues maps event types to note sequences.
var cues = map[core.EventType][]note{
	core.EventHazardDodged:  {{freq: 1320, duration: 25 * time.Millisecond, volume: 0.15}},
	core.EventShieldBlocked: {{freq: 220, duration: 90 * time.Millisecond, volume: 0.4}},
	core.EventCrash: {
		{freq: 0, duration: 350 * time.Millisecond, volume: 0.6},
		{freq: 110, duration: 200 * time.Millisecond, volume: 0.5},
	},
	core.EventHighScore: {
		{freq: 523.25, duration: 90 * time.Millisecond, volume: 0.4},
		{freq: 659.25, duration: 90 * time.Millisecond, volume: 0.4},
		{freq: 783.99, duration: 90 * time.Millisecond, volume: 0.4},
		{freq: 1046.5, duration: 180 * time.Millisecond, volume: 0.4},
	},
	core.EventRestart: {{freq: 440, duration: 60 * time.Millisecond, volume: 0.3}},
}

// bonusCues has one two-note chime per bonus kind.
var bonusCues = map[string][]note{
	"shield": {
		{freq: 392, duration: 70 * time.Millisecond, volume: 0.4},
		{freq: 587.33, duration: 110 * time.Millisecond, volume: 0.4},
	},
	"speed": {
		{freq: 659.25, duration: 50 * time.Millisecond, volume: 0.4},
		{freq: 1318.5, duration: 80 * time.Millisecond, volume: 0.4},
	},
	"points": {
		{freq: 987.77, duration: 70 * time.Millisecond, volume: 0.4},
		{freq: 1318.5, duration: 140 * time.Millisecond, volume: 0.4},
	},
}

// notesFor returns the notes for an event, or nil if it is silent.
func notesFor(e core.Event) []note {
	if e.Type == core.EventBonusCollected {
		if n, ok := bonusCues[e.Detail]; ok {
			return n
		}
		return bonusCues["points"]
	}
	return cues[e.Type]
}

// Cue builds the streamer for an event. Silent events return nil.
func Cue(e core.Event, rng *rand.Rand) beep.Streamer {
	notes := notesFor(e)
	if len(notes) == 0 {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, n.streamer(rng))
	}
	return beep.Seq(parts...)
}

func (n note) streamer(rng *rand.Rand) beep.Streamer {
	samples := SampleRate.N(n.duration)

	var src beep.Streamer
	if n.freq <= 0 {
		src = &noise{rng: rng}
	} else if tone, err := generators.SineTone(SampleRate, n.freq); err == nil {
		src = tone
	} else {
		src = beep.Silence(-1)
	}

	shaped := &envelope{
		streamer: beep.Take(samples, src),
		total:    samples,
		attack:   SampleRate.N(5 * time.Millisecond),
		release:  samples / 2,
	}
	return &effects.Volume{Streamer: shaped, Base: 2, Volume: math.Log2(n.volume)}
}

// noise is an endless white-noise source.
type noise struct {
	rng *rand.Rand
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := n.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }

// envelope fades a finite stream in over attack samples and out over the
// final release samples.
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	attack   int
	release  int
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			gain = math.Min(gain, float64(left)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
