// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/transform"
)

// Mode selects which shapes a frame contains.
type Mode int

const (
	ModeOriginal      Mode = iota // cube only
	ModeReflectX                  // cube and its mirror across x = 0
	ModeReflectY                  // cube and its mirror across y = 0
	ModeReflectZ                  // cube and its mirror across z = 0
	ModeReflectOrigin             // cube and its point reflection
	ModeAll                       // cube and every reflection
)

var modeNames = [...]string{"original", "reflect-x", "reflect-y", "reflect-z", "reflect-origin", "all"}

// String returns the mode's display name.
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool { return m >= ModeOriginal && m <= ModeAll }

// Color is an RGB triple in [0,1].
type Color struct{ R, G, B float64 }

// Colors used per shape.
var (
	ColorOriginal = Color{1, 1, 1}
	ColorX        = Color{1, 0.2, 0.2}
	ColorY        = Color{0.2, 1, 0.2}
	ColorZ        = Color{0.2, 0.4, 1}
	ColorOrigin   = Color{1, 1, 0.2}
)

// layer is one shape of a mode: a model transform and how to draw it.
type layer struct {
	name  string
	color Color
	model func() *matrix.Dense[float64]
}

var (
	layerOriginal = layer{"original", ColorOriginal, transform.Identity[float64]}
	layerX        = layer{"reflect-x", ColorX, transform.ReflectX[float64]}
	layerY        = layer{"reflect-y", ColorY, transform.ReflectY[float64]}
	layerZ        = layer{"reflect-z", ColorZ, transform.ReflectZ[float64]}
	layerOrigin   = layer{"reflect-origin", ColorOrigin, transform.ReflectOrigin[float64]}
)

// layers lists the shapes drawn in mode m, original first.
func (m Mode) layers() []layer {
	switch m {
	case ModeReflectX:
		return []layer{layerOriginal, layerX}
	case ModeReflectY:
		return []layer{layerOriginal, layerY}
	case ModeReflectZ:
		return []layer{layerOriginal, layerZ}
	case ModeReflectOrigin:
		return []layer{layerOriginal, layerOrigin}
	case ModeAll:
		return []layer{layerOriginal, layerX, layerY, layerZ, layerOrigin}
	default:
		return []layer{layerOriginal}
	}
}
