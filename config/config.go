// Package config loads the game tuning and the board wiring from a toml
// file. Keys missing from the file keep their default value.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/flavioheleno/pong"
	"github.com/flavioheleno/pong/tick"
)

// Config is the whole file.
type Config struct {
	Game Game `toml:"game"`
	Pins Pins `toml:"pins"`
}

// Game holds the gameplay parameters.
type Game struct {
	MatchScore      int     `toml:"match_score"`
	MatchBeginTicks int     `toml:"match_begin_ticks"`
	RoundBeginTicks int     `toml:"round_begin_ticks"`
	MatchEndTicks   int     `toml:"match_end_ticks"`
	SpeedUp         float64 `toml:"speed_up"`
	MaxSpeed        float64 `toml:"max_speed"`
	TickRate        int     `toml:"tick_rate"` // Ticks per second

	Menu         bool  `toml:"menu"`          // Pick the match length before playing
	MatchLengths []int `toml:"match_lengths"` // Menu options
}

// Pins names the board wiring, as known to periph.io registries.
type Pins struct {
	SPI  string `toml:"spi"` // Empty for the first bus
	DC   string `toml:"dc"`
	RST  string `toml:"rst"`  // Optional
	VDD  string `toml:"vdd"`  // Optional
	VBAT string `toml:"vbat"` // Optional

	I2C     string `toml:"i2c"`      // Bus of the ADC, empty for the first bus
	ADCAddr uint16 `toml:"adc_addr"` // I²C address of the ADS1115
	Axes    [2]int `toml:"axes"`     // ADC channel of each player's knob

	Pause   string   `toml:"pause"`
	Confirm string   `toml:"confirm"`
	LEDs    []string `toml:"leds"` // LED 0 first, at most 8
}

// Default returns the configuration of the reference board.
func Default() Config {
	e := pong.DefaultConfig()
	return Config{
		Game: Game{
			MatchScore:      e.MatchScore,
			MatchBeginTicks: e.MatchBeginTicks,
			RoundBeginTicks: e.RoundBeginTicks,
			MatchEndTicks:   e.MatchEndTicks,
			SpeedUp:         e.SpeedUp,
			MaxSpeed:        e.MaxSpeed,
			TickRate:        tick.DefaultRate,
			MatchLengths:    []int{3, 5, 9},
		},
		Pins: Pins{
			DC:      "GPIO25",
			RST:     "GPIO24",
			VDD:     "GPIO23",
			VBAT:    "GPIO22",
			ADCAddr: 0x48,
			Axes:    [2]int{0, 1},
			Pause:   "GPIO17",
			Confirm: "GPIO27",
			LEDs:    []string{"GPIO5", "GPIO6", "GPIO13", "GPIO19", "GPIO26", "GPIO16", "GPIO20", "GPIO21"},
		},
	}
}

// Load reads the file at path over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := checkKeys(md); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Parse is Load for a document already in memory.
func Parse(doc string) (Config, error) {
	c := Default()
	md, err := toml.Decode(doc, &c)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := checkKeys(md); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// checkKeys rejects keys that do not map to a field, which are most likely
// typos.
func checkKeys(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("config: unknown keys: %s", strings.Join(names, ", "))
}

// Validate reports the first unusable value.
func (c Config) Validate() error {
	g := c.Game
	switch {
	case g.MatchScore <= 0:
		return errors.New("config: match_score must be positive")
	case g.MatchBeginTicks <= 0, g.RoundBeginTicks <= 0, g.MatchEndTicks <= 0:
		return errors.New("config: dwell ticks must be positive")
	case g.SpeedUp < 1:
		return errors.New("config: speed_up must be at least 1")
	case g.MaxSpeed <= 0:
		return errors.New("config: max_speed must be positive")
	case g.TickRate <= 0:
		return errors.New("config: tick_rate must be positive")
	}
	for _, n := range g.MatchLengths {
		if n <= 0 {
			return fmt.Errorf("config: match length %d must be positive", n)
		}
	}
	if g.Menu && len(g.MatchLengths) == 0 {
		return errors.New("config: menu needs match_lengths")
	}

	p := c.Pins
	if p.DC == "" {
		return errors.New("config: dc pin is required")
	}
	for i, ch := range p.Axes {
		if ch < 0 || ch > 3 {
			return fmt.Errorf("config: axis %d: channel %d out of range 0..3", i, ch)
		}
	}
	if len(p.LEDs) > 8 {
		return fmt.Errorf("config: %d leds, at most 8", len(p.LEDs))
	}
	return nil
}

// Engine returns the engine parameters.
func (g Game) Engine() pong.Config {
	return pong.Config{
		MatchScore:      g.MatchScore,
		MatchBeginTicks: g.MatchBeginTicks,
		RoundBeginTicks: g.RoundBeginTicks,
		MatchEndTicks:   g.MatchEndTicks,
		SpeedUp:         g.SpeedUp,
		MaxSpeed:        g.MaxSpeed,
	}
}

// TickPeriod returns the time between ticks.
func (g Game) TickPeriod() time.Duration {
	return tick.Period(g.TickRate)
}

// Write encodes c as toml.
func (c Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
