package debugs

import (
	"fmt"

	"github.com/reusee/bfi/bands"
	"github.com/reusee/bfi/bfcode"
	"go.starlark.net/starlark"
)

// BandGlobals exposes a band and the program that ran on it to a tap.
// cells is the non-zero window of the band, as [index, value] pairs.
func BandGlobals(band bands.Band, program bfcode.Program) map[string]any {
	cells := band.Cells()
	var nonZero [][2]int
	for i, c := range cells {
		if c != 0 {
			nonZero = append(nonZero, [2]int{i, int(c)})
		}
	}
	return map[string]any{
		"head":    band.Head(),
		"size":    len(cells),
		"current": int(band.Read()),
		"cells":   nonZero,
		"program": program.String(),
		"cell": starlark.NewBuiltin("cell", func(
			thread *starlark.Thread,
			fn *starlark.Builtin,
			args starlark.Tuple,
			kwargs []starlark.Tuple,
		) (starlark.Value, error) {
			var i int
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &i); err != nil {
				return nil, err
			}
			if i < 0 || i >= len(cells) {
				return nil, fmt.Errorf("cell %d outside band of %d", i, len(cells))
			}
			return starlark.MakeInt(int(cells[i])), nil
		}),
	}
}
