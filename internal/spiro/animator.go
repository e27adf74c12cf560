package spiro

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/iburimskiy/spirograph/internal/errors"
)

// AnimatorOptions configures an Animator.
type AnimatorOptions struct {
	Count    int           // number of curves, fixed for the animator's lifetime
	StepDeg  int           // degrees added to every curve per tick
	Interval time.Duration // delay between ticks when driven by Run
	Logger   *log.Logger   // optional; defaults to log.Default()

	// OnRestart runs after every group restart with the 1-based cycle number.
	OnRestart func(cycle int)
	// OnError receives tick failures while driven by Run.
	OnError func(error)
}

// Animator steps a fixed group of curves together and restarts the whole
// group with fresh random parameters once every curve has closed.
//
// An Animator is not safe for concurrent use; the host loop owns it.
type Animator struct {
	opts    AnimatorOptions
	canvas  Canvas
	sampler *Sampler
	curves  []*Curve
	log     *log.Logger

	cycle int
	run   int // bumped by Run and Stop so stale ticks drop out
}

// NewAnimator creates opts.Count curves, curve i drawing with canvas.Pen(i).
func NewAnimator(canvas Canvas, sampler *Sampler, opts AnimatorOptions) (*Animator, error) {
	if opts.Count < 1 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "curve count %d must be at least 1", opts.Count)
	}
	if opts.StepDeg < 1 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "step %d must be at least 1 degree", opts.StepDeg)
	}

	a := &Animator{
		opts:    opts,
		canvas:  canvas,
		sampler: sampler,
		curves:  make([]*Curve, 0, opts.Count),
		log:     opts.Logger,
	}
	if a.log == nil {
		a.log = log.Default()
	}

	w, h := canvas.Size()
	for i := range opts.Count {
		params, err := sampler.Sample(w, h)
		if err != nil {
			return nil, err
		}
		a.curves = append(a.curves, NewCurve(canvas.Pen(i), params))
	}
	a.log.Debug("animator ready", "curves", opts.Count, "step", opts.StepDeg, "canvas", [2]int{w, h})
	return a, nil
}

// Tick advances every curve by one step, in construction order. When all of
// them are complete afterwards the group is restarted.
func (a *Animator) Tick() (restarted bool, err error) {
	done := 0
	for _, c := range a.curves {
		if c.Step(a.opts.StepDeg) {
			done++
		}
	}
	if done < len(a.curves) {
		return false, nil
	}
	if err := a.RestartAll(); err != nil {
		return false, err
	}
	return true, nil
}

// RestartAll clears every curve and starts it again with freshly sampled
// parameters for the current canvas size.
func (a *Animator) RestartAll() error {
	w, h := a.canvas.Size()
	for i, c := range a.curves {
		params, err := a.sampler.Sample(w, h)
		if err != nil {
			return errors.Wrap(errors.GetCode(err), err, "restart curve %d", i)
		}
		c.Clear()
		c.Reset(params)
	}

	a.cycle++
	a.log.Debug("curves restarted", "cycle", a.cycle)
	if a.opts.OnRestart != nil {
		a.opts.OnRestart(a.cycle)
	}
	return nil
}

// ToggleCursors flips the cursor visibility of every curve.
func (a *Animator) ToggleCursors() {
	for _, c := range a.curves {
		c.pen.SetCursorVisible(!c.pen.CursorVisible())
	}
}

// Run asks s for the first tick. Each tick requests the next one until Stop
// is called.
func (a *Animator) Run(s Scheduler) {
	a.run++
	run := a.run
	s.After(a.opts.Interval, func() { a.scheduledTick(s, run) })
}

func (a *Animator) scheduledTick(s Scheduler, run int) {
	if run != a.run {
		return
	}
	if _, err := a.Tick(); err != nil {
		a.log.Error("tick failed", "err", err)
		if a.opts.OnError != nil {
			a.opts.OnError(err)
		}
	}
	s.After(a.opts.Interval, func() { a.scheduledTick(s, run) })
}

// Stop ends a Run loop. Nothing is in flight, so the next scheduled tick
// simply does not happen.
func (a *Animator) Stop() {
	a.run++
}

// Curves returns the animated curves in construction order.
func (a *Animator) Curves() []*Curve {
	return a.curves
}

// Cycle is the number of completed group restarts.
func (a *Animator) Cycle() int {
	return a.cycle
}
