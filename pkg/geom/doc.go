// Package geom provides the 2D geometry primitives the rest of platsat is
// built on: signed points, unsigned dimensions with a partial order, and a
// bounds-checked dense grid.
package geom
