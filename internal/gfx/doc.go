// Package gfx hosts the swipe animation in a desktop window with
// Ebitengine.
//
// Geometry is computed by Compose from the current swipe.Visuals in the
// same layout units the component was designed in (a 96px icon travelling
// 420px), then scaled to fit the window. Drawing uses the vector package
// for shapes and text/v2 with the Go Bold face for the label.
//
// Phase changes arrive on timer goroutines; the Game queues them and
// applies them at the start of the next Update, so all transition state is
// owned by the game loop.
package gfx
