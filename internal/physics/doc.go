// Package physics provides the entities and per-tick rules of the dots
// simulation.
//
// Two independent kinds of entity live here:
//
//   - [Body]: a point mass that integrates its velocity and bounces off the
//     walls of a [Bounds] rectangle
//   - [Explosion]: an expanding circle that ages and expires
//
// and the passes that act on slices of them:
//
//   - [Accumulate]: O(n²) pairwise gravity over massive bodies, returning the
//     [Centroid]
//   - [Resolve]: explosion-vs-body intersection, destroying bodies and
//     spawning new explosions in their place
//   - [TickAll]: ages explosions and drops the expired ones
//
// # Gravity
//
// Force between two bodies is Gravity*m1*m2/dist, falling off linearly
// rather than with the square of the distance. Pairs closer than one pixel
// are ignored.
//
// None of these types draw themselves; renderers read the public fields.
package physics
