// Package export writes canvas snapshots to PNG files.
package export

import (
	stderrors "errors"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/spirograph/internal/config"
	"github.com/iburimskiy/spirograph/internal/errors"
)

// timestampLayout renders as e.g. 05Jan2024-153045.
const timestampLayout = "02Jan2006-150405"

// Filename returns the snapshot name for t, e.g. spiro-05Jan2024-153045.png.
func Filename(t time.Time) string {
	return "spiro-" + t.Format(timestampLayout) + ".png"
}

// Exporter saves snapshots according to the export settings.
type Exporter struct {
	cfg config.Export
	log *log.Logger
	now func() time.Time
}

// New returns an Exporter. A nil logger falls back to log.Default().
func New(cfg config.Export, logger *log.Logger) *Exporter {
	if logger == nil {
		logger = log.Default()
	}
	return &Exporter{cfg: cfg, log: logger, now: time.Now}
}

// Save writes img as a PNG and returns its path. With the dialog enabled the
// user picks the path; cancelling returns "" and no error.
func (e *Exporter) Save(img image.Image) (string, error) {
	path := filepath.Join(e.cfg.Dir, Filename(e.now()))

	if e.cfg.Dialog {
		picked, err := zenity.SelectFileSave(
			zenity.Title("Save spirograph"),
			zenity.Filename(path),
			zenity.ConfirmOverwrite(),
			zenity.FileFilters{{
				Name:     "PNG image",
				Patterns: []string{"*.png"},
			}},
		)
		if err != nil {
			if stderrors.Is(err, zenity.ErrCanceled) {
				e.log.Debug("save cancelled")
				return "", nil
			}
			return "", errors.Wrap(errors.ErrCodeExport, err, "save dialog")
		}
		path = picked
	}

	if err := WritePNG(img, path); err != nil {
		return "", err
	}
	e.log.Info("saved drawing", "path", path)

	if e.cfg.Notify {
		if err := zenity.Notify("Saved "+filepath.Base(path), zenity.Title(config.WindowTitle)); err != nil {
			e.log.Warn("notification failed", "err", err)
		}
	}
	return path, nil
}

// WritePNG encodes img to path, creating missing parent directories.
func WritePNG(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeExport, err, "create %s", dir)
		}
	}
	dc := gg.NewContextForImage(img)
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return errors.Wrap(errors.ErrCodeExport, err, "write %s", path)
	}
	return nil
}
