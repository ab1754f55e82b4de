// Package pong is a two player Pong game for a 128×32 monochrome OLED.
//
// The game is a state machine stepped once per tick by a Loop:
//
//	match_begin ──dwell──▶ round_begin ──dwell──▶ round_playing
//	     ▲                      ▲                     │   │
//	     │                      └─────── point ───────┘   │
//	     └──dwell── match_end ◀──── winning point ────────┘
//
// Each tick the Loop samples both potentiometers and the buttons, updates
// the Engine (or the match length Menu before the first match), redraws the
// whole frame through a render.Renderer and flushes it to the display.
//
// # Court
//
// The playfield is the middle 64 columns of the display, between two dotted
// lines. The paddles sit just inside it and the ball bounces off the top and
// bottom of the display. A ball crossing a dotted line scores a point for the
// opposite player and play resumes from the middle after a short pause. Every
// paddle hit speeds the ball up, up to a maximum speed.
//
// # Hardware
//
// The hardware bindings live in sibling packages: board for the ADC knobs,
// buttons and LEDs, ssd1306 for the display and tick for the periodic timer.
// See examples/pong for a Raspberry Pi wiring and examples/pongsim for a
// desktop simulator.
package pong
