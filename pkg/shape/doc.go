// Package shape turns an orthogonal staircase outline into triangles.
//
// Create classifies a flat point set into a Polygon: it infers the plane the
// points lie in, the main and secondary axes of the outline, the two base
// points and the orientation used to pick triangulation pivots. A Polygon is
// immutable. Extrude sweeps it along its plane axis into a closed
// Polyhedron, and both types flatten into triangles on demand.
package shape
