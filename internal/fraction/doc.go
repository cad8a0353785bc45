// Package fraction implements the fraction estimation game: coprime target
// generation, best-fit rational display, scoring and the round state.
package fraction
