package cli

import (
	"path/filepath"
	"time"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/spirograph/internal/config"
	"github.com/iburimskiy/spirograph/internal/export"
	"github.com/iburimskiy/spirograph/internal/render"
	"github.com/iburimskiy/spirograph/internal/spiro"
)

func newRenderCmd(cfg *config.Config) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render [R r l]",
		Short: "Draw curves without a window and save them as PNG",
		Long: `Draws the curve R r l, or one full set of random curves when no arguments are
given, and writes the result as a PNG. The file defaults to
spiro-<timestamp>.png in the configured export directory.`,
		Args: curveArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			if out == "" {
				out = filepath.Join(cfg.Export.Dir, export.Filename(time.Now()))
			}

			start := time.Now()
			canvas, err := drawHeadless(*cfg, args, newSampler(*cfg, logger))
			if err != nil {
				return err
			}
			img, err := canvas.Image(gg.Hex(cfg.Draw.Background))
			if err != nil {
				return err
			}
			if err := export.WritePNG(img, out); err != nil {
				return err
			}
			logger.Info("rendered", "path", out, "segments", canvas.Segments(),
				"took", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output PNG path")
	return cmd
}

// drawHeadless draws either the requested curve or cfg.Animation.Count random
// ones to completion on an offscreen canvas.
func drawHeadless(cfg config.Config, args []string, sampler *spiro.Sampler) (*render.Canvas, error) {
	canvas := render.NewCanvas(cfg.Window.Width, cfg.Window.Height, cfg.Animation.LineWidth)

	if len(args) == 3 {
		params, err := parseCurveArgs(args)
		if err != nil {
			return nil, err
		}
		spiro.NewCurve(canvas.Pen(0), params).DrawFull(cfg.Animation.StepDeg)
		return canvas, nil
	}

	w, h := canvas.Size()
	for i := range cfg.Animation.Count {
		params, err := sampler.Sample(w, h)
		if err != nil {
			return nil, err
		}
		spiro.NewCurve(canvas.Pen(i), params).DrawFull(cfg.Animation.StepDeg)
	}
	return canvas, nil
}
