package racer

import (
	"time"

	"github.com/vovakirdan/racer-arcade/internal/config"
	"github.com/vovakirdan/racer-arcade/internal/core"
)

// ExitPolicy decides what happens when an entity passes the lane bottom.
type ExitPolicy int

const (
	ExitRemove ExitPolicy = iota // Report the exit so the owner drops the entity
	ExitWrap                     // Reposition above the lane and keep going
)

// BonusKind is the effect a bonus applies when collected.
type BonusKind int

const (
	BonusShield BonusKind = iota
	BonusSpeed
	BonusPoints
	bonusKindCount
)

// String returns the kind name used in events and storage.
func (k BonusKind) String() string {
	switch k {
	case BonusShield:
		return "shield"
	case BonusSpeed:
		return "speed"
	case BonusPoints:
		return "points"
	default:
		return "unknown"
	}
}

// Color returns the fill color for the kind.
func (k BonusKind) Color() core.Color {
	switch k {
	case BonusShield:
		return core.ColorBlue
	case BonusSpeed:
		return core.ColorYellow
	default:
		return core.ColorGreen
	}
}

// Body is a falling rectangle. Y grows downward.
type Body struct {
	X, Y  float64
	W, H  float64
	Speed float64 // Descent per tick
	Exit  ExitPolicy
	floor float64 // Lane height; y beyond this is off the playfield
}

// Bounds returns the collision box.
func (b *Body) Bounds() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// Advance moves the body down one tick and reports whether it left the lane.
// Wrapping bodies never report an exit.
func (b *Body) Advance() bool {
	b.Y += b.Speed
	if b.Y <= b.floor {
		return false
	}
	if b.Exit == ExitWrap {
		b.Y = -b.H
		return false
	}
	return true
}

// Hazard is an enemy car.
type Hazard struct {
	Body
	blocked bool // A shield has already absorbed this hazard
}

// Bonus is a power-up.
type Bonus struct {
	Body
	Kind BonusKind
}

// LaneMark is a decorative stripe of the center line.
type LaneMark struct {
	Body
}

func newHazard(x, speed float64, cfg config.RacerConfig) *Hazard {
	return &Hazard{Body: Body{
		X:     x,
		Y:     -cfg.Hazards.Height,
		W:     cfg.Hazards.Width,
		H:     cfg.Hazards.Height,
		Speed: speed,
		Exit:  ExitRemove,
		floor: cfg.Lane.Height,
	}}
}

func newBonus(x float64, kind BonusKind, cfg config.RacerConfig) *Bonus {
	return &Bonus{
		Body: Body{
			X:     x,
			Y:     -cfg.Bonuses.Height,
			W:     cfg.Bonuses.Width,
			H:     cfg.Bonuses.Height,
			Speed: cfg.Bonuses.Speed,
			Exit:  ExitRemove,
			floor: cfg.Lane.Height,
		},
		Kind: kind,
	}
}

// newLaneMarks creates the center line, one mark per spacing step from the top.
func newLaneMarks(cfg config.RacerConfig) []*LaneMark {
	m := cfg.LaneMarks
	if m.Spacing <= 0 {
		return nil
	}
	x := cfg.Lane.Width/2 - m.Width/2
	var marks []*LaneMark
	for y := 0.0; y < cfg.Lane.Height; y += m.Spacing {
		marks = append(marks, &LaneMark{Body: Body{
			X:     x,
			Y:     y,
			W:     m.Width,
			H:     m.Height,
			Speed: m.Speed,
			Exit:  ExitWrap,
			floor: cfg.Lane.Height,
		}})
	}
	return marks
}

// Player is the car under user control.
type Player struct {
	X, Y float64
	W, H float64

	speed     float64
	boostMult float64
	laneW     float64

	Shield           bool
	ShieldExpiry     time.Duration
	SpeedBoost       bool
	SpeedBoostExpiry time.Duration
}

// NewPlayer places the player at the bottom center of the lane.
func NewPlayer(cfg config.RacerConfig) *Player {
	p := cfg.Player
	return &Player{
		X:         cfg.Lane.Width/2 - p.Width/2,
		Y:         cfg.Lane.Height - p.Height - p.BottomMargin,
		W:         p.Width,
		H:         p.Height,
		speed:     p.Speed,
		boostMult: p.BoostMultiplier,
		laneW:     cfg.Lane.Width,
	}
}

// Bounds returns the collision box.
func (p *Player) Bounds() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// CurrentSpeed returns the horizontal speed, boosted if active.
func (p *Player) CurrentSpeed() float64 {
	if p.SpeedBoost {
		return p.speed * p.boostMult
	}
	return p.speed
}

// Steer applies left and right independently, then clamps to the lane.
func (p *Player) Steer(left, right bool) {
	v := p.CurrentSpeed()
	if left {
		p.X -= v
	}
	if right {
		p.X += v
	}
	p.X = core.ClampF(p.X, 0, p.laneW-p.W)
}

// Expire turns off effects whose expiry instant has passed.
func (p *Player) Expire(now time.Duration) {
	if p.Shield && now > p.ShieldExpiry {
		p.Shield = false
	}
	if p.SpeedBoost && now > p.SpeedBoostExpiry {
		p.SpeedBoost = false
	}
}

// GrantShield activates the shield until now+d, replacing any earlier expiry.
func (p *Player) GrantShield(now, d time.Duration) {
	p.Shield = true
	p.ShieldExpiry = now + d
}

// GrantSpeedBoost activates the boost until now+d, replacing any earlier expiry.
func (p *Player) GrantSpeedBoost(now, d time.Duration) {
	p.SpeedBoost = true
	p.SpeedBoostExpiry = now + d
}
