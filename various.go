package genislandvoronoi

import (
	"image/color"

	"github.com/Flokey82/go_gens/utils"
)

var minMax = utils.MinMax[float64]

// genColor converts any color to an opaque NRGBA, the format the drawing
// context is fastest with.
func genColor(col color.Color) color.NRGBA {
	r, g, b, _ := col.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: 255,
	}
}
