// Package viz is the terminal frontend.
//
// It runs a Bubble Tea program that steps a [sim.Simulator] on every tick
// and draws the world on a colored Braille [Canvas]:
//
//   - explosions as red rings
//   - dots as blue blocks
//   - the center of mass as a green cross
//
// # Input
//
//	Drag        - Spawn dots, at most one per spawn interval
//	Shift+Click - Explode at the pointer
//	X           - Toggle explode mode (plain clicks explode)
//	B           - Spawn a dot at a random position
//	Space       - Pause/Resume simulation
//	R           - Reset to the initial dots
//	C           - Clear the world
//	T           - Cycle color themes
//	?           - Show help overlay
package viz
