package pong

import (
	"math"
	"strconv"

	"github.com/flavioheleno/pong/render"
)

// Court geometry, in pixels.
const (
	DisplayWidth    = render.Width
	DisplayHeight   = render.Height
	PlayfieldW      = 64
	LeftEdge        = (DisplayWidth - PlayfieldW) / 2 // Ball left of this: player 2 scores
	RightEdge       = DisplayWidth - PlayfieldW/2     // Ball right of this: player 1 scores
	PlayfieldMiddle = DisplayWidth/2 - 1

	// MaxAxis is the largest value an analog channel reports.
	MaxAxis = 1023

	paddleW      = 3
	paddleH      = 9
	paddleOffset = 34 // Distance from the screen edge
	ballSize     = 2
	ballStartY   = DisplayHeight/2 - 1

	dotHeight = 3
)

// Indicator bits returned by Engine.Indicators.
const (
	IndicatorRunning  uint8 = 1 << 0
	IndicatorMaxSpeed uint8 = 1 << 7
)

// Config holds the tunable game parameters.
type Config struct {
	MatchScore      int     // Points needed to win a match
	MatchBeginTicks int     // Dwell in MatchBegin
	RoundBeginTicks int     // Dwell in RoundBegin
	MatchEndTicks   int     // Dwell in MatchEnd
	SpeedUp         float64 // Ball |DX| multiplier on every paddle hit
	MaxSpeed        float64 // Ball |DX| ceiling
}

// DefaultConfig returns the parameters of the classic board game: first to 5,
// 1.5 s intro, 0.5 s serve pause and 2 s winner screen at 30 ticks per second.
func DefaultConfig() Config {
	return Config{
		MatchScore:      5,
		MatchBeginTicks: 45,
		RoundBeginTicks: 15,
		MatchEndTicks:   60,
		SpeedUp:         1.25,
		MaxSpeed:        3,
	}
}

// withDefaults replaces unusable values with the defaults.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MatchScore <= 0 {
		c.MatchScore = d.MatchScore
	}
	if c.MatchBeginTicks <= 0 {
		c.MatchBeginTicks = d.MatchBeginTicks
	}
	if c.RoundBeginTicks <= 0 {
		c.RoundBeginTicks = d.RoundBeginTicks
	}
	if c.MatchEndTicks <= 0 {
		c.MatchEndTicks = d.MatchEndTicks
	}
	if c.SpeedUp < 1 {
		c.SpeedUp = d.SpeedUp
	}
	if c.MaxSpeed <= 0 {
		c.MaxSpeed = d.MaxSpeed
	}
	return c
}

// Input is what the engine reads every tick.
type Input struct {
	Axes  [2]uint16 // Raw potentiometer readings, 0..1023, player 1 first
	Pause bool      // Pause button level
}

// Engine owns the actors, the scores and the match state machine.
type Engine struct {
	cfg Config

	state State
	dwell int // Ticks spent in the current state

	ball  Actor
	left  Actor
	right Actor

	score  [2]int
	winner Player

	paused    bool
	pauseHeld bool
	maxSpeed  bool
}

// NewEngine returns an engine at the start of a match.
func NewEngine(cfg Config) *Engine {
	e := &Engine{cfg: cfg.withDefaults()}
	e.left = NewActor(paddleOffset, DisplayHeight/2-1-paddleH/2, paddleW, paddleH)
	e.right = NewActor(DisplayWidth-1-paddleW-paddleOffset, DisplayHeight/2-1-paddleH/2, paddleW, paddleH)
	e.ball = NewActor(PlayfieldMiddle, ballStartY, ballSize, ballSize)
	e.ball.DX, e.ball.DY = 1, -1
	e.enter(MatchBegin)
	return e
}

// SetMatchScore changes the points needed to win. Non-positive values are
// ignored.
func (e *Engine) SetMatchScore(n int) {
	if n > 0 {
		e.cfg.MatchScore = n
	}
}

// Config returns the engine parameters in use.
func (e *Engine) Config() Config { return e.cfg }

// State returns the current match state.
func (e *Engine) State() State { return e.state }

// Score returns the points of player 1 and player 2.
func (e *Engine) Score() (int, int) { return e.score[0], e.score[1] }

// Winner returns the player that won the last match, if any.
func (e *Engine) Winner() Player { return e.winner }

// Ball returns a copy of the ball.
func (e *Engine) Ball() Actor { return e.ball }

// Paddles returns copies of the left and right paddles.
func (e *Engine) Paddles() (Actor, Actor) { return e.left, e.right }

// Paused reports whether play is paused.
func (e *Engine) Paused() bool { return e.paused }

// Indicators returns the LED mask for the current tick.
func (e *Engine) Indicators() uint8 {
	m := IndicatorRunning
	if e.maxSpeed {
		m |= IndicatorMaxSpeed
	}
	return m
}

// PaddleY maps an analog reading to a paddle row so that 0 puts the paddle
// at the top and MaxAxis puts it against the bottom edge.
func PaddleY(reading uint16, h int) int {
	v := min(int(reading), MaxAxis)
	return v * (DisplayHeight - h) / MaxAxis
}

// Update advances the game by one tick.
func (e *Engine) Update(in Input) {
	// Readings grow as the knob turns down; invert so turning up moves up.
	e.left.Y = float64(PaddleY(MaxAxis-min(in.Axes[0], MaxAxis), e.left.H))
	e.right.Y = float64(PaddleY(MaxAxis-min(in.Axes[1], MaxAxis), e.right.H))

	e.togglePause(in.Pause)
	if e.paused {
		return
	}

	if next := transition(e.state, e.step()); next != e.state {
		e.enter(next)
	}
}

// togglePause flips the pause flag on a rising edge of the button, while a
// round is on.
func (e *Engine) togglePause(pressed bool) {
	edge := pressed && !e.pauseHeld
	e.pauseHeld = pressed
	if !edge {
		return
	}
	if e.state == RoundBegin || e.state == RoundPlaying {
		e.paused = !e.paused
	}
}

// step does the work of the current state and reports what happened.
func (e *Engine) step() event {
	switch e.state {
	case MatchBegin, RoundBegin, MatchEnd:
		e.dwell++
		if e.dwell >= e.dwellTicks(e.state) {
			return evDwellDone
		}
	case RoundPlaying:
		switch e.updateBall() {
		case Player1:
			return e.point(0)
		case Player2:
			return e.point(1)
		}
	}
	return evNone
}

func (e *Engine) dwellTicks(s State) int {
	switch s {
	case MatchBegin:
		return e.cfg.MatchBeginTicks
	case RoundBegin:
		return e.cfg.RoundBeginTicks
	case MatchEnd:
		return e.cfg.MatchEndTicks
	}
	return 0
}

// point credits player i and reports whether that decided the match.
func (e *Engine) point(i int) event {
	e.score[i]++
	if e.score[i] < e.cfg.MatchScore {
		return evScored
	}
	e.winner = Player(i + 1)
	e.score = [2]int{}
	return evMatchPoint
}

// enter switches to s and runs its entry action.
func (e *Engine) enter(s State) {
	e.state = s
	e.dwell = 0
	switch s {
	case MatchBegin:
		e.score = [2]int{}
	case RoundBegin:
		e.serve()
	}
}

// serve puts the ball back in the middle at unit speed, keeping its direction.
func (e *Engine) serve() {
	e.ball.X = PlayfieldMiddle
	e.ball.Y = ballStartY
	e.ball.DX = unit(e.ball.DX)
	e.ball.DY = unit(e.ball.DY)
	e.maxSpeed = false
}

func unit(v float64) float64 {
	if v > 0 {
		return 1
	}
	return -1
}

// updateBall bounces, moves and checks the ball for a score. It returns the
// player that scored, if any.
func (e *Engine) updateBall() Player {
	b := &e.ball
	w, h := float64(b.W), float64(b.H)

	// Display walls. Only bounce when moving into the wall so a ball resting
	// on it cannot flip back and forth.
	if (b.X+w >= DisplayWidth-1 && b.DX > 0) || (b.X <= 1 && b.DX < 0) {
		b.DX = -b.DX
	}
	if (b.Y+h >= DisplayHeight-1 && b.DY > 0) || (b.Y <= 0 && b.DY < 0) {
		b.DY = -b.DY
	}

	if (b.DX < 0 && Collides(*b, e.left)) || (b.DX > 0 && Collides(*b, e.right)) {
		b.DX = -b.DX * e.cfg.SpeedUp
		if math.Abs(b.DX) >= e.cfg.MaxSpeed {
			b.DX = math.Copysign(e.cfg.MaxSpeed, b.DX)
			e.maxSpeed = true
		}
	}

	b.Move()

	switch {
	case b.X > RightEdge:
		b.X = PlayfieldMiddle
		b.DX = -b.DX
		return Player1
	case b.X < LeftEdge:
		b.X = PlayfieldMiddle
		b.DX = -b.DX
		return Player2
	}
	return NoPlayer
}

// Draw renders the current state. The caller clears the framebuffer first.
func (e *Engine) Draw(r *render.Renderer) {
	switch e.state {
	case MatchBegin:
		if e.dwell < e.cfg.MatchBeginTicks/2 {
			r.DrawText("Get ready", 32, 12)
		} else {
			r.DrawText("Playing to "+strconv.Itoa(e.cfg.MatchScore), 16, 12)
		}
	case MatchEnd:
		switch e.winner {
		case Player1:
			r.DrawText("Player 1", 32, 8)
		case Player2:
			r.DrawText("Player 2", 32, 8)
		}
		r.DrawText("wins!", 48, 16)
	default:
		e.drawCourt(r)
	}
}

func (e *Engine) drawCourt(r *render.Renderer) {
	r.DrawActor(e.left)
	r.DrawActor(e.right)
	r.DrawDotline(LeftEdge-1, dotHeight)
	r.DrawDotline(RightEdge-1, dotHeight)
	r.DrawText("pl1", 0, 0)
	r.DrawText(strconv.Itoa(e.score[0]), 8, 10)
	r.DrawText("pl2", DisplayWidth-24, 0)
	r.DrawText(strconv.Itoa(e.score[1]), DisplayWidth-16, 10)

	if e.paused {
		// The dialog sits between the paddles; the ball is hidden behind it.
		r.DrawRectOutline(39, 8, 88, 23)
		r.DrawText("paused", 40, 12)
		return
	}
	r.DrawActor(e.ball)
}
