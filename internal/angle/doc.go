// Package angle implements the angle estimation game: the figure geometry
// in scene units, unit formatting, circular scoring and the round state.
//
// Angles are held in radians. The scene is the 300×300 user space the figure
// is drawn in, with Y growing downward, so conversions from scene points
// invert the vertical offset.
//
// The package has no terminal or rendering dependencies; internal/tui and
// internal/svgexport project a Game into their own output.
package angle
