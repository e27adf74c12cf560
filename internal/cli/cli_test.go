package cli

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/spirograph/internal/config"
	"github.com/iburimskiy/spirograph/internal/errors"
	"github.com/iburimskiy/spirograph/internal/spiro"
)

func TestParseCurveArgs(t *testing.T) {
	p, err := parseCurveArgs([]string{"150", "60.0", "0.3"})
	if err != nil {
		t.Fatalf("parseCurveArgs: %v", err)
	}
	if p.OuterRadius() != 150 || p.InnerRadius() != 60 || p.HoleRatio() != 0.3 || p.RotationCount() != 2 {
		t.Errorf("got R=%d r=%d l=%g rotations=%d", p.OuterRadius(), p.InnerRadius(), p.HoleRatio(), p.RotationCount())
	}
	if p.Center() != (spiro.Point{}) || p.Color() != spiro.Black {
		t.Errorf("got centre %v colour %v, want origin and black", p.Center(), p.Color())
	}
}

func TestParseCurveArgsRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"two args", []string{"100", "40"}, errors.ErrCodeInvalidInput},
		{"fractional R", []string{"100.5", "40", "0.5"}, errors.ErrCodeInvalidInput},
		{"word r", []string{"100", "forty", "0.5"}, errors.ErrCodeInvalidInput},
		{"word l", []string{"100", "40", "half"}, errors.ErrCodeInvalidInput},
		{"nan R", []string{"NaN", "40", "0.5"}, errors.ErrCodeInvalidInput},
		{"r above R", []string{"40", "100", "0.5"}, errors.ErrCodeInvalidParams},
		{"l too big", []string{"100", "40", "1.5"}, errors.ErrCodeInvalidParams},
		{"zero R", []string{"0", "40", "0.5"}, errors.ErrCodeInvalidParams},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCurveArgs(tt.args)
			if !errors.Is(err, tt.code) {
				t.Errorf("parseCurveArgs(%v) error = %v, want %s", tt.args, err, tt.code)
			}
		})
	}
}

func runCmd(t *testing.T, args ...string) error {
	t.Helper()
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root.Execute()
}

func TestRenderSingleCurve(t *testing.T) {
	out := filepath.Join(t.TempDir(), "curve.png")
	if err := runCmd(t, "render", "100", "40", "0.5", "--out", out); err != nil {
		t.Fatalf("render: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != config.WindowWidth || b.Dy() != config.WindowHeight {
		t.Errorf("bounds = %v, want %dx%d", b, config.WindowWidth, config.WindowHeight)
	}
}

func TestRenderUsesConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "spirograph.toml")
	body := "[window]\nwidth = 300\nheight = 200\n\n[animation]\ncount = 3\nseed = 5\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "random.png")
	if err := runCmd(t, "render", "--config", cfgPath, "--out", out); err != nil {
		t.Fatalf("render: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 300 || cfg.Height != 200 {
		t.Errorf("size = %dx%d, want 300x200", cfg.Width, cfg.Height)
	}
}

func TestDrawHeadlessDeterministic(t *testing.T) {
	cfg := config.Default()
	cfg.Animation.Count = 4
	a, err := drawHeadless(cfg, nil, spiro.NewSeededSampler(9))
	if err != nil {
		t.Fatal(err)
	}
	b, err := drawHeadless(cfg, nil, spiro.NewSeededSampler(9))
	if err != nil {
		t.Fatal(err)
	}
	if a.Segments() == 0 || a.Segments() != b.Segments() {
		t.Errorf("segments %d and %d, want equal and non-zero", a.Segments(), b.Segments())
	}
}

func TestRootRejectsArgCount(t *testing.T) {
	if err := runCmd(t, "render", "100", "40"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("render with two args error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestInvalidFlagOverride(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.png")
	err := runCmd(t, "render", "--step", "0", "--out", out)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("render --step 0 error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}
