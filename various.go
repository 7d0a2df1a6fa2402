package genrealmvoronoi

import (
	"image/color"

	"github.com/Flokey82/go_gens/utils"
)

var minMax = utils.MinMax[float64]

// initCellSlice returns a cell-indexed slice with all entries unset (-1).
func initCellSlice(size int) []int {
	res := make([]int, size)
	for i := range res {
		res[i] = -1
	}
	return res
}

// isInIntList returns true if the given int is in the given slice.
func isInIntList(list []int, i int) bool {
	for _, v := range list {
		if v == i {
			return true
		}
	}
	return false
}

// genColor converts any color to an opaque NRGBA scaled by intensity.
func genColor(col color.Color, intensity float64) color.NRGBA {
	cr, cg, cb, _ := col.RGBA()
	return color.NRGBA{
		R: uint8(float64(cr) / 0xffff * 255 * intensity),
		G: uint8(float64(cg) / 0xffff * 255 * intensity),
		B: uint8(float64(cb) / 0xffff * 255 * intensity),
		A: 255,
	}
}
