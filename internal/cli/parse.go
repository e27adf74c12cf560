package cli

import (
	"math"
	"strconv"

	"github.com/iburimskiy/spirograph/internal/errors"
	"github.com/iburimskiy/spirograph/internal/spiro"
)

// parseCurveArgs turns the three positional arguments R, r and l into a
// black curve centred on the canvas.
func parseCurveArgs(args []string) (spiro.Params, error) {
	if len(args) != 3 {
		return spiro.Params{}, errors.New(errors.ErrCodeInvalidInput, "expected R r l, got %d arguments", len(args))
	}
	R, err := parseRadius("R", args[0])
	if err != nil {
		return spiro.Params{}, err
	}
	r, err := parseRadius("r", args[1])
	if err != nil {
		return spiro.Params{}, err
	}
	l, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return spiro.Params{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "l must be a number")
	}
	return spiro.NewParams(R, r, l, spiro.Point{}, spiro.Black)
}

// parseRadius accepts integral values written either way, "150" or "150.0".
func parseRadius(name, s string) (int, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s must be a number", name)
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s=%s must be a whole number", name, s)
	}
	return int(f), nil
}
