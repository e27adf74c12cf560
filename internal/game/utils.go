package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/gogpu/gg"
)

// parseBackground converts a hex colour ("#rgb" or "#rrggbb") to an opaque RGBA.
func parseBackground(hex string) color.RGBA {
	c := gg.Hex(hex)
	return color.RGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: 0xff,
	}
}

// statusInk picks a text panel colour readable on top of bg.
func statusInk(bg color.RGBA) color.RGBA {
	luma := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if luma > 128 {
		return color.RGBA{R: 20, G: 25, B: 35, A: 200}
	}
	return color.RGBA{R: 60, G: 70, B: 90, A: 200}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
