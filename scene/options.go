// SPDX-License-Identifier: MIT

package scene

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultZoom is the initial camera distance from the origin.
	DefaultZoom = 150.0

	// DefaultSensitivity is degrees of rotation per pixel of mouse drag.
	DefaultSensitivity = 0.5

	// DefaultHalfSize is half the edge length of the cube.
	DefaultHalfSize = 10.0

	// DefaultWidth and DefaultHeight are the initial viewport size.
	DefaultWidth  = 800
	DefaultHeight = 600

	// ZoomStep is the distance change per wheel click.
	ZoomStep = 5.0

	// MinZoom keeps the camera in front of the origin.
	MinZoom = 10.0

	// MaxPitch bounds the camera's vertical rotation, in degrees.
	MaxPitch = 89.0
)

// DefaultCenter places the cube so that its reflections do not overlap it.
var DefaultCenter = [3]float64{40, 30, 0}

const (
	panicZoomInvalid        = "scene: WithZoom: zoom must be >= MinZoom"
	panicSensitivityInvalid = "scene: WithSensitivity: sensitivity must be > 0"
	panicHalfSizeInvalid    = "scene: WithCube: half size must be > 0"
	panicViewportInvalid    = "scene: WithViewport: width and height must be > 0"
)

// Option configures a State at construction. Constructors panic on
// nonsensical values (programmer error).
type Option func(*State)

// WithZoom sets the initial camera distance.
func WithZoom(zoom float64) Option {
	if !(zoom >= MinZoom) {
		panic(panicZoomInvalid)
	}

	return func(s *State) { s.zoom = zoom }
}

// WithSensitivity sets degrees of rotation per dragged pixel.
func WithSensitivity(deg float64) Option {
	if !(deg > 0) {
		panic(panicSensitivityInvalid)
	}

	return func(s *State) { s.sensitivity = deg }
}

// WithCube sets the cube's center and half edge length.
func WithCube(center [3]float64, half float64) Option {
	if !(half > 0) {
		panic(panicHalfSizeInvalid)
	}

	return func(s *State) {
		s.center = center
		s.half = half
	}
}

// WithViewport sets the initial viewport size.
func WithViewport(width, height int) Option {
	if width <= 0 || height <= 0 {
		panic(panicViewportInvalid)
	}

	return func(s *State) { s.width, s.height = width, height }
}
