package scene_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmatrix/scene"
)

// StateSuite drives a State through keyboard and mouse events.
type StateSuite struct {
	suite.Suite
	st *scene.State
}

func (s *StateSuite) SetupTest() {
	s.st = scene.NewState()
}

// TestDefaults verifies the documented initial state.
func (s *StateSuite) TestDefaults() {
	require.Equal(s.T(), scene.ModeOriginal, s.st.Mode())
	require.Equal(s.T(), scene.DefaultZoom, s.st.Zoom())
	yaw, pitch := s.st.Angles()
	require.Zero(s.T(), yaw)
	require.Zero(s.T(), pitch)
	require.False(s.T(), s.st.Quit())
	w, h := s.st.Viewport()
	require.Equal(s.T(), [2]int{scene.DefaultWidth, scene.DefaultHeight}, [2]int{w, h})
}

// TestDigitKeysSelectModes verifies '0'..'5' map onto the six modes.
func (s *StateSuite) TestDigitKeysSelectModes() {
	for k, want := range map[byte]scene.Mode{
		'0': scene.ModeOriginal,
		'1': scene.ModeReflectX,
		'2': scene.ModeReflectY,
		'3': scene.ModeReflectZ,
		'4': scene.ModeReflectOrigin,
		'5': scene.ModeAll,
	} {
		require.True(s.T(), s.st.Key(k))
		require.Equal(s.T(), want, s.st.Mode())
	}
}

// TestUnknownKeysIgnored verifies other keys leave the state untouched.
func (s *StateSuite) TestUnknownKeysIgnored() {
	s.st.Key('3')
	for _, k := range []byte{'6', '9', 'a', ' ', 0} {
		require.False(s.T(), s.st.Key(k))
	}
	require.Equal(s.T(), scene.ModeReflectZ, s.st.Mode())
	require.False(s.T(), s.st.Quit())
}

// TestEscapeQuits verifies ESC sets the quit flag.
func (s *StateSuite) TestEscapeQuits() {
	require.True(s.T(), s.st.Key(scene.KeyEscape))
	require.True(s.T(), s.st.Quit())
}

// TestDragRotates verifies only a left-button drag turns the camera.
func (s *StateSuite) TestDragRotates() {
	s.st.Motion(50, 50) // not dragging
	yaw, pitch := s.st.Angles()
	require.Zero(s.T(), yaw)
	require.Zero(s.T(), pitch)

	s.st.MouseButton(scene.ButtonLeft, true, 100, 100)
	s.st.Motion(120, 90)
	yaw, pitch = s.st.Angles()
	require.InDelta(s.T(), 20*scene.DefaultSensitivity, yaw, 1e-12)
	require.InDelta(s.T(), -10*scene.DefaultSensitivity, pitch, 1e-12)

	s.st.MouseButton(scene.ButtonLeft, false, 120, 90)
	s.st.Motion(500, 500)
	yaw2, pitch2 := s.st.Angles()
	require.Equal(s.T(), yaw, yaw2)
	require.Equal(s.T(), pitch, pitch2)
}

// TestPitchClamped verifies pitch never exceeds MaxPitch.
func (s *StateSuite) TestPitchClamped() {
	s.st.MouseButton(scene.ButtonLeft, true, 0, 0)
	s.st.Motion(0, 10000)
	_, pitch := s.st.Angles()
	require.Equal(s.T(), scene.MaxPitch, pitch)
	s.st.Motion(0, -10000)
	_, pitch = s.st.Angles()
	require.Equal(s.T(), -scene.MaxPitch, pitch)
}

// TestWheelZooms verifies wheel clicks step the zoom and respect MinZoom.
func (s *StateSuite) TestWheelZooms() {
	s.st.MouseButton(scene.ButtonWheelDown, true, 0, 0)
	require.Equal(s.T(), scene.DefaultZoom+scene.ZoomStep, s.st.Zoom())
	s.st.MouseButton(scene.ButtonWheelDown, false, 0, 0) // release is ignored
	require.Equal(s.T(), scene.DefaultZoom+scene.ZoomStep, s.st.Zoom())

	for i := 0; i < 1000; i++ {
		s.st.MouseButton(scene.ButtonWheelUp, true, 0, 0)
	}
	require.Equal(s.T(), scene.MinZoom, s.st.Zoom())
}

// TestReshape verifies a zero height is treated as one.
func (s *StateSuite) TestReshape() {
	s.st.Reshape(640, 0)
	w, h := s.st.Viewport()
	require.Equal(s.T(), [2]int{640, 1}, [2]int{w, h})
	require.Equal(s.T(), 640.0, s.st.Aspect())

	s.st.Reshape(400, 200)
	require.Equal(s.T(), 2.0, s.st.Aspect())
}

func TestStateSuite(t *testing.T) {
	suite.Run(t, new(StateSuite))
}

func TestOptions(t *testing.T) {
	st := scene.NewState(scene.WithZoom(40), scene.WithSensitivity(1), scene.WithViewport(10, 5))
	require.Equal(t, 40.0, st.Zoom())
	require.Equal(t, 2.0, st.Aspect())

	st.MouseButton(scene.ButtonLeft, true, 0, 0)
	st.Motion(3, 0)
	yaw, _ := st.Angles()
	require.Equal(t, 3.0, yaw)

	require.Panics(t, func() { scene.WithZoom(scene.MinZoom - 1) })
	require.Panics(t, func() { scene.WithZoom(math.NaN()) })
	require.Panics(t, func() { scene.WithSensitivity(0) })
	require.Panics(t, func() { scene.WithCube([3]float64{}, 0) })
	require.Panics(t, func() { scene.WithViewport(0, 1) })
}

func TestModeString(t *testing.T) {
	require.Equal(t, "reflect-origin", scene.ModeReflectOrigin.String())
	require.Equal(t, "Mode(9)", scene.Mode(9).String())
	require.False(t, scene.Mode(-1).Valid())
}
