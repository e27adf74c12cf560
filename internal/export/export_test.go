package export

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/iburimskiy/spirograph/internal/config"
	"github.com/iburimskiy/spirograph/internal/errors"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		t    time.Time
		want string
	}{
		{time.Date(2024, time.January, 5, 15, 30, 45, 0, time.UTC), "spiro-05Jan2024-153045.png"},
		{time.Date(2026, time.October, 16, 9, 4, 5, 0, time.UTC), "spiro-16Oct2026-090405.png"},
	}
	for _, tt := range tests {
		if got := Filename(tt.t); got != tt.want {
			t.Errorf("Filename(%v) = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	return img
}

func TestSaveWritesPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	e := New(config.Export{Dir: dir}, log.New(io.Discard))
	e.now = func() time.Time { return time.Date(2024, time.January, 5, 15, 30, 45, 0, time.UTC) }

	path, err := e.Save(testImage())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if want := filepath.Join(dir, "spiro-05Jan2024-153045.png"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := got.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds = %v, want 4x3", b)
	}
	r, g, b, a := got.At(1, 1).RGBA()
	if r>>8 < 254 || g>>8 > 1 || b>>8 > 1 || a>>8 != 255 {
		t.Errorf("pixel = %d,%d,%d,%d, want opaque red", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestWritePNGFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	err := WritePNG(testImage(), filepath.Join(blocker, "spiro.png"))
	if !errors.Is(err, errors.ErrCodeExport) {
		t.Errorf("WritePNG() error = %v, want %s", err, errors.ErrCodeExport)
	}
}
