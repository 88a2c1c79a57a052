// Package control turns pointer input into spawn requests.
//
// It sits between a frontend and the simulation world:
//
//   - [Manual]: click to explode, drag to drop bodies
//   - [Throttle]: limits drag spawning to one body per interval
//   - [Viewport]: maps screen coordinates onto world coordinates
//
// # Usage
//
//	m := control.NewManual(world, 100*time.Millisecond, time.Now)
//	m.Press(x, y, spaceHeld)
//	m.Drag(x, y)
//	m.Release()
//
// Requests are queued on the world and take effect on the next tick.
package control
