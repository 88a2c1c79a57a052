// Package gui is the windowed frontend, drawn with raylib.
//
// Dots are blue circles, explosions red circles and the center of mass a
// small green dot. Dragging with the left button spawns dots; clicking while
// space is held sets off an explosion.
package gui
