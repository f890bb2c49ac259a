// Package geom holds the exact-decimal primitives used to classify and
// triangulate orthogonal profiles: points, axes, triangles, and the
// extremal and ordering helpers that work on point sets.
//
// All comparisons are made on decimal values. Floats only appear in
// Distance and Angle, where the result is a measurement rather than an
// identity check.
package geom
