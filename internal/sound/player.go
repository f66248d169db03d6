package sound

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/racer-arcade/internal/core"
)

// Player turns step events into audio cues.
// A disabled or uninitialized Player ignores every call.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	rng     *rand.Rand
	logger  *log.Logger
	enabled bool

	// sink receives finished cues; defaults to the speaker mixer.
	sink func(beep.Streamer)
}

// NewPlayer creates a player that is silent until Init succeeds.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	p := &Player{
		mixer:  &beep.Mixer{},
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger,
	}
	p.sink = p.addToMixer
	return p
}

// Init opens the audio device. On failure the game runs without sound.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("sound: cannot open audio device: %w", err)
	}
	speaker.Play(p.mixer)
	p.enabled = true
	p.logger.Debug("audio initialized", "rate", int(SampleRate))
	return nil
}

// Enabled reports whether cues are audible.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play queues a cue for every audible event.
// Repeated events of the same type within one tick play once.
func (p *Player) Play(events []core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || len(events) == 0 {
		return
	}

	type key struct {
		t      core.EventType
		detail string
	}
	seen := make(map[key]bool, len(events))
	for _, e := range events {
		k := key{e.Type, e.Detail}
		if seen[k] {
			continue
		}
		seen[k] = true
		if cue := Cue(e, p.rng); cue != nil {
			p.sink(cue)
		}
	}
}

func (p *Player) addToMixer(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences pending cues.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.enabled = false
}
