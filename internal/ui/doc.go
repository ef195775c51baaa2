// Package ui renders the swipe animation in a terminal and provides the
// styled output used by the CLI.
//
// # Scene
//
// RenderFrame draws one frame of the scene for a set of swipe.Visuals:
//
//	background gradient, glow, shimmer trail, label, overlay, icon block
//
// painted back to front onto a cell canvas. Colors are blended in Lab
// space with go-colorful, so opacity and overlay fades stay even across
// terminals with true color. Blur has no terminal equivalent; the label's
// letters are swapped for shade blocks (▓ ▒ ░) as the blur radius grows.
//
// # Bubble Tea host
//
// Model hosts a swipe.Animation in a Bubble Tea program. Phase changes
// happen on timer goroutines and reach the model through Bridge, which
// calls program.Send. The model only schedules frame ticks while a
// transition is running, so a resting scene costs nothing.
//
//	err := ui.Run(ctx, ui.RunOptions{Config: cfg, AltScreen: true})
//
// Quit with q, esc or ctrl+c; the animation is unmounted before exit.
//
// # Colors
//
// Status colors are ANSI codes for broad terminal compatibility. The scene
// itself uses the hex theme from config. Use DisableColors() for
// --no-color and NO_COLOR.
package ui
