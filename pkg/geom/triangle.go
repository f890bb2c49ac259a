package geom

// Triangle is three vertices in emission order. The order carries the
// winding chosen by the triangulation and is never normalized.
type Triangle [3]Point

// NewTriangle returns the triangle (a, b, c).
func NewTriangle(a, b, c Point) Triangle {
	return Triangle{a, b, c}
}

// String renders the triangle as its three points separated by spaces.
func (t Triangle) String() string {
	return t[0].String() + " " + t[1].String() + " " + t[2].String()
}

// Equal reports whether t and u have the same vertices in the same order.
func (t Triangle) Equal(u Triangle) bool {
	return t[0].Equal(u[0]) && t[1].Equal(u[1]) && t[2].Equal(u[2])
}

// Has reports whether p is one of the vertices of t.
func (t Triangle) Has(p Point) bool {
	return t[0].Equal(p) || t[1].Equal(p) || t[2].Equal(p)
}
