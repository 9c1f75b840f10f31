// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/transform"
)

// KeyEscape is the ASCII escape key.
const KeyEscape byte = 27

// Button identifies a mouse button. Wheel clicks arrive as buttons, as in GLUT.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
)

// State is the complete viewer state. It is owned by a single event loop and
// is not safe for concurrent use.
type State struct {
	mode        Mode
	yaw, pitch  float64 // degrees
	zoom        float64
	sensitivity float64

	dragging     bool
	lastX, lastY int

	width, height int
	quit          bool

	center [3]float64
	half   float64
}

// NewState returns a State with the documented defaults and opts applied in order.
func NewState(opts ...Option) *State {
	s := &State{
		mode:        ModeOriginal,
		zoom:        DefaultZoom,
		sensitivity: DefaultSensitivity,
		width:       DefaultWidth,
		height:      DefaultHeight,
		center:      DefaultCenter,
		half:        DefaultHalfSize,
	}
	for _, set := range opts {
		set(s)
	}

	return s
}

// Mode returns the active mode.
func (s *State) Mode() Mode { return s.mode }

// Angles returns the camera yaw and pitch in degrees.
func (s *State) Angles() (yaw, pitch float64) { return s.yaw, s.pitch }

// Zoom returns the camera distance.
func (s *State) Zoom() float64 { return s.zoom }

// Quit reports whether ESC was pressed.
func (s *State) Quit() bool { return s.quit }

// Viewport returns the current width and height.
func (s *State) Viewport() (width, height int) { return s.width, s.height }

// Aspect returns width/height of the viewport.
func (s *State) Aspect() float64 { return float64(s.width) / float64(s.height) }

// Key handles a key press and reports whether the key was recognized.
// '0'..'5' select the matching Mode; ESC sets the quit flag.
func (s *State) Key(k byte) bool {
	switch {
	case k == KeyEscape:
		s.quit = true
		return true
	case k >= '0' && k <= '9':
		if m := Mode(k - '0'); m.Valid() {
			s.mode = m
			return true
		}
	}

	return false
}

// MouseButton handles a button press or release at (x, y).
// The left button starts and stops a drag; wheel clicks zoom on press.
func (s *State) MouseButton(b Button, pressed bool, x, y int) {
	switch b {
	case ButtonLeft:
		s.dragging = pressed
		s.lastX, s.lastY = x, y
	case ButtonWheelUp:
		if pressed {
			s.zoom = math.Max(MinZoom, s.zoom-ZoomStep)
		}
	case ButtonWheelDown:
		if pressed {
			s.zoom += ZoomStep
		}
	}
}

// Motion handles pointer movement. While dragging, horizontal motion turns
// yaw and vertical motion turns pitch (clamped to ±MaxPitch).
func (s *State) Motion(x, y int) {
	if !s.dragging {
		return
	}
	s.yaw += float64(x-s.lastX) * s.sensitivity
	s.pitch += float64(y-s.lastY) * s.sensitivity
	s.pitch = math.Max(-MaxPitch, math.Min(MaxPitch, s.pitch))
	s.lastX, s.lastY = x, y
}

// Reshape records a new viewport size. A zero height is treated as 1.
func (s *State) Reshape(width, height int) {
	if height <= 0 {
		height = 1
	}
	if width <= 0 {
		width = 1
	}
	s.width, s.height = width, height
}

// View returns the camera transform: yaw about y, then pitch about x, then a
// push of zoom units down the -z axis.
func (s *State) View() (*matrix.Dense[float64], error) {
	v, err := transform.Compose(
		transform.RotateY(deg2rad(s.yaw)),
		transform.RotateX(deg2rad(s.pitch)),
		transform.Translation(0, 0, -s.zoom),
	)
	if err != nil {
		return nil, fmt.Errorf("scene: View: %w", err)
	}

	return v, nil
}

// Shape is one drawable set of cube vertices in view space.
type Shape struct {
	Name     string
	Color    Color
	Vertices [][3]float64 // indexed like Cube; connect with CubeEdges
}

// Frame returns the shapes for the active mode, each vertex transformed by
// its model transform and then by View.
func (s *State) Frame() ([]Shape, error) {
	view, err := s.View()
	if err != nil {
		return nil, err
	}
	cube := Cube(s.center, s.half)

	layers := s.mode.layers()
	out := make([]Shape, 0, len(layers))
	for _, l := range layers {
		mv, err := matrix.Mul(view, l.model())
		if err != nil {
			return nil, fmt.Errorf("scene: Frame %s: %w", l.name, err)
		}
		pts, err := transform.ApplyAll(mv, cube)
		if err != nil {
			return nil, fmt.Errorf("scene: Frame %s: %w", l.name, err)
		}
		sh := Shape{Name: l.name, Color: l.color, Vertices: make([][3]float64, len(pts))}
		for i, p := range pts {
			x, y, z, _, err := transform.Coords(p)
			if err != nil {
				return nil, fmt.Errorf("scene: Frame %s: %w", l.name, err)
			}
			sh.Vertices[i] = [3]float64{x, y, z}
		}
		out = append(out, sh)
	}

	return out, nil
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
