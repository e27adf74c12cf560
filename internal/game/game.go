// Package game hosts the spirograph animation in an ebiten window.
package game

import (
	stderrors "errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/spirograph/internal/config"
	"github.com/iburimskiy/spirograph/internal/errors"
	"github.com/iburimskiy/spirograph/internal/export"
	"github.com/iburimskiy/spirograph/internal/spiro"
	"github.com/iburimskiy/spirograph/internal/timer"
)

// Cue is something played when the curves start over.
type Cue interface {
	Play()
}

// Options selects what the window shows.
type Options struct {
	Logger *log.Logger

	// Single draws one curve in full instead of animating random ones.
	Single *spiro.Params
	// Sampler feeds the animation; required unless Single is set.
	Sampler *spiro.Sampler
	// Cue is optional.
	Cue Cue
}

type game struct {
	cfg        config.Config
	log        *log.Logger
	canvas     *canvas
	background color.RGBA
	timers     *timer.Queue
	exporter   *export.Exporter
	cue        Cue

	// exactly one of these is set
	animator *spiro.Animator
	single   *spiro.Curve
	drawn    bool

	started   time.Time
	lastSaved string

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

func newGame(cfg config.Config, opts Options) (*game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	g := &game{
		cfg:        cfg,
		log:        logger,
		canvas:     newCanvas(cfg.Window.Width, cfg.Window.Height, cfg.Animation.LineWidth),
		background: parseBackground(cfg.Draw.Background),
		timers:     timer.NewQueue(nil),
		exporter:   export.New(cfg.Export, logger),
		cue:        opts.Cue,
		started:    time.Now(),
		prevKey:    map[ebiten.Key]bool{},
	}

	if opts.Single != nil {
		g.single = spiro.NewCurve(g.canvas.Pen(0), *opts.Single)
		return g, nil
	}
	if opts.Sampler == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "animated mode needs a parameter sampler")
	}

	a, err := spiro.NewAnimator(g.canvas, opts.Sampler, spiro.AnimatorOptions{
		Count:     cfg.Animation.Count,
		StepDeg:   cfg.Animation.StepDeg,
		Interval:  cfg.Animation.Interval,
		Logger:    logger,
		OnRestart: g.restarted,
		OnError:   func(err error) { g.lastErr = err },
	})
	if err != nil {
		return nil, err
	}
	g.animator = a
	a.Run(g.timers)
	return g, nil
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.Config, opts Options) error {
	g, err := newGame(cfg, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	if err := ebiten.RunGame(g); err != nil && !stderrors.Is(err, ebiten.Termination) {
		return err
	}
	if g.animator != nil {
		g.animator.Stop()
	}
	return nil
}

func (g *game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyS) {
		g.save()
	}
	if justPressed(ebiten.KeyT) {
		g.toggleCursors()
	}
	if justPressed(ebiten.KeySpace) && g.animator != nil {
		if err := g.animator.RestartAll(); err != nil {
			g.lastErr = err
		}
	}

	// The layers only exist once the loop runs, so the one-shot curve is
	// drawn on the first update.
	if g.single != nil && !g.drawn {
		g.single.DrawFull(g.cfg.Animation.StepDeg)
		g.drawn = true
		p := g.single.Params()
		g.log.Info("curve drawn", "R", p.OuterRadius(), "r", p.InnerRadius(), "l", p.HoleRatio(), "rotations", p.RotationCount())
	}

	g.timers.Run()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.canvas.drawLayers(screen)
	g.canvas.drawCursors(screen, g.cfg.Draw.CursorSize)
	g.drawStatus(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func (g *game) restarted(cycle int) {
	g.log.Info("all curves closed, starting over", "cycle", cycle, "elapsed", formatDuration(time.Since(g.started)))
	if g.cue != nil {
		g.cue.Play()
	}
}

func (g *game) toggleCursors() {
	if g.animator != nil {
		g.animator.ToggleCursors()
		return
	}
	for _, p := range g.canvas.pens {
		p.SetCursorVisible(!p.CursorVisible())
	}
}

func (g *game) save() {
	img := g.canvas.snapshot(g.background)
	path, err := g.exporter.Save(img)
	if err != nil {
		g.log.Error("save failed", "err", err)
		g.lastErr = err
		return
	}
	if path != "" {
		g.lastSaved = path
		g.lastErr = nil
	}
}

func (g *game) drawStatus(screen *ebiten.Image) {
	var status string
	if g.animator != nil {
		status = fmt.Sprintf("%d curves, cycle %d, %s - T: cursors, Space: restart, S: save, Esc/Q: quit",
			len(g.animator.Curves()), g.animator.Cycle()+1, formatDuration(time.Since(g.started)))
	} else {
		p := g.single.Params()
		status = fmt.Sprintf("R=%d r=%d l=%g - T: cursor, S: save, Esc/Q: quit", p.OuterRadius(), p.InnerRadius(), p.HoleRatio())
	}
	if g.lastSaved != "" {
		status += " | saved " + g.lastSaved
	}
	if g.lastErr != nil {
		status += " | Error: " + errors.UserMessage(g.lastErr)
	}

	width := len(status)*6 + 12
	vector.DrawFilledRect(screen, 6, 6, float32(width), 20, statusInk(g.background), false)
	ebitenutil.DebugPrintAt(screen, status, 12, 8)
}
