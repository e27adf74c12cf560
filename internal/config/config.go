package config

import (
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/iburimskiy/spirograph/internal/errors"
	"github.com/iburimskiy/spirograph/internal/spiro"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Spirographs!"
	TPS          = 60

	// Animation parameters
	CurveCount   = 20
	StepDeg      = 5
	TickInterval = 10 * time.Millisecond
	LineWidth    = 1.5

	// Cursor dot diameter in pixels
	CursorSize = 8

	Background = "#ffffff"

	ChimeFrequency = 440
	ChimeDuration  = 150 * time.Millisecond
	ChimeVolume    = -1.0
)

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	TPS    int    `toml:"tps"`
}

type Animation struct {
	Count     int           `toml:"count"`
	StepDeg   int           `toml:"step_deg"`
	Interval  time.Duration `toml:"interval"`
	Seed      uint64        `toml:"seed"` // 0 picks a random seed
	LineWidth float64       `toml:"line_width"`
}

type Draw struct {
	Background string `toml:"background"` // hex colour, "#rgb" or "#rrggbb"
	CursorSize int    `toml:"cursor_size"`
}

type Export struct {
	Dir    string `toml:"dir"`
	Dialog bool   `toml:"dialog"` // ask for the path with a native save dialog
	Notify bool   `toml:"notify"` // desktop notification after saving
}

type Chime struct {
	Enabled   bool          `toml:"enabled"`
	File      string        `toml:"file"` // wav, mp3 or flac; empty synthesizes a tone
	Frequency int           `toml:"frequency"`
	Duration  time.Duration `toml:"duration"`
	Volume    float64       `toml:"volume"` // log2 gain, 0 is unchanged
}

// Config is the full application configuration.
type Config struct {
	Window    Window    `toml:"window"`
	Animation Animation `toml:"animation"`
	Draw      Draw      `toml:"draw"`
	Export    Export    `toml:"export"`
	Chime     Chime     `toml:"chime"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
			TPS:    TPS,
		},
		Animation: Animation{
			Count:     CurveCount,
			StepDeg:   StepDeg,
			Interval:  TickInterval,
			LineWidth: LineWidth,
		},
		Draw: Draw{
			Background: Background,
			CursorSize: CursorSize,
		},
		Export: Export{Dir: "."},
		Chime: Chime{
			Frequency: ChimeFrequency,
			Duration:  ChimeDuration,
			Volume:    ChimeVolume,
		},
	}
}

// Load reads a TOML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Validate checks every setting the animation depends on.
func (c Config) Validate() error {
	bad := func(format string, args ...any) error {
		return errors.New(errors.ErrCodeInvalidConfig, format, args...)
	}
	switch {
	case c.Window.Width < spiro.MinCanvasSide || c.Window.Height < spiro.MinCanvasSide:
		return bad("window %dx%d is too small, both sides must be at least %d", c.Window.Width, c.Window.Height, spiro.MinCanvasSide)
	case c.Window.TPS < 1:
		return bad("window.tps %d must be positive", c.Window.TPS)
	case c.Animation.Count < 1:
		return bad("animation.count %d must be at least 1", c.Animation.Count)
	case c.Animation.StepDeg < 1 || c.Animation.StepDeg > 360:
		return bad("animation.step_deg %d must lie in [1, 360]", c.Animation.StepDeg)
	case c.Animation.Interval <= 0:
		return bad("animation.interval %v must be positive", c.Animation.Interval)
	case c.Animation.LineWidth <= 0:
		return bad("animation.line_width %g must be positive", c.Animation.LineWidth)
	case !isHexColor(c.Draw.Background):
		return bad("draw.background %q is not a hex colour", c.Draw.Background)
	case c.Draw.CursorSize < 0:
		return bad("draw.cursor_size %d must not be negative", c.Draw.CursorSize)
	case c.Chime.Enabled && c.Chime.File == "" && c.Chime.Frequency <= 0:
		return bad("chime.frequency %d must be positive", c.Chime.Frequency)
	case c.Chime.Enabled && c.Chime.File == "" && c.Chime.Duration <= 0:
		return bad("chime.duration %v must be positive", c.Chime.Duration)
	}
	return nil
}

func isHexColor(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
