// Package scene is the headless model behind the reflection viewer: a cube,
// its reflections, and a camera driven by keyboard and mouse events.
//
// All viewer state lives in a State value threaded through the event handlers
// (Key, MouseButton, Motion, Reshape); Frame turns the current state into
// view-space vertex sets for any renderer. Nothing here touches a window or a
// graphics API.
//
// Keys '0'..'5' select a Mode; ESC asks the event loop to exit. Dragging with
// the left button rotates the camera; the wheel zooms.
package scene
