package geom

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Coordinate range, inclusive. Every Point component lies within it.
var (
	MinValue = decimal.NewFromInt(-1000000)
	MaxValue = decimal.NewFromInt(1000000)
)

// InRange reports whether v lies within [MinValue, MaxValue].
func InRange(v decimal.Decimal) bool {
	return v.GreaterThanOrEqual(MinValue) && v.LessThanOrEqual(MaxValue)
}

// Point is an exact 3-D coordinate addressed by axis ordinal. Points are
// values: methods never modify the receiver.
type Point struct {
	c [3]decimal.Decimal
}

// NewPoint returns the point (x, y, z) or a range error if any component
// lies outside [MinValue, MaxValue].
func NewPoint(x, y, z decimal.Decimal) (Point, error) {
	p := Point{c: [3]decimal.Decimal{x, y, z}}
	if err := p.check(); err != nil {
		return Point{}, err
	}
	return p, nil
}

// NewPointInt is NewPoint for integral components.
func NewPointInt(x, y, z int64) (Point, error) {
	return NewPoint(decimal.NewFromInt(x), decimal.NewFromInt(y), decimal.NewFromInt(z))
}

func (p Point) check() error {
	for _, a := range Axes {
		if !InRange(p.c[a]) {
			return rangeError(a, p.c[a])
		}
	}
	return nil
}

// Get returns the component on axis a.
func (p Point) Get(a Axis) decimal.Decimal {
	return p.c[a]
}

func (p Point) X() decimal.Decimal { return p.c[AxisX] }
func (p Point) Y() decimal.Decimal { return p.c[AxisY] }
func (p Point) Z() decimal.Decimal { return p.c[AxisZ] }

// With returns a copy of p whose component on axis a is v.
func (p Point) With(a Axis, v decimal.Decimal) (Point, error) {
	if !InRange(v) {
		return Point{}, rangeError(a, v)
	}
	p.c[a] = v
	return p, nil
}

// Add returns p + q. The sum must stay within range.
func (p Point) Add(q Point) (Point, error) {
	var r Point
	for _, a := range Axes {
		r.c[a] = p.c[a].Add(q.c[a])
	}
	if err := r.check(); err != nil {
		return Point{}, err
	}
	return r, nil
}

// Sub returns the offset p - q. The result is a displacement, not a
// coordinate, so it is not range checked.
func (p Point) Sub(q Point) Point {
	var r Point
	for _, a := range Axes {
		r.c[a] = p.c[a].Sub(q.c[a])
	}
	return r
}

// Equal reports exact per-component equality.
func (p Point) Equal(q Point) bool {
	return p.c[0].Equal(q.c[0]) && p.c[1].Equal(q.c[1]) && p.c[2].Equal(q.c[2])
}

// String renders the point as "x;y;z". Components use the canonical decimal
// form, so equal points always render identically.
func (p Point) String() string {
	var b strings.Builder
	for i, v := range p.c {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(v.String())
	}
	return b.String()
}

// Float64 returns the components as floats for measurement and rendering.
func (p Point) Float64() [3]float64 {
	return [3]float64{
		p.c[0].InexactFloat64(),
		p.c[1].InexactFloat64(),
		p.c[2].InexactFloat64(),
	}
}

// Index returns the position of the first point in points equal to p, or -1.
func Index(points []Point, p Point) int {
	for i, q := range points {
		if q.Equal(p) {
			return i
		}
	}
	return -1
}

// Distinct returns points with exact duplicates removed, keeping the first
// occurrence of each.
func Distinct(points []Point) []Point {
	seen := make(map[string]struct{}, len(points))
	out := make([]Point, 0, len(points))
	for _, p := range points {
		k := p.String()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}
	return out
}

// DistinctValues counts the distinct component values on axis a.
func DistinctValues(points []Point, a Axis) int {
	seen := make(map[string]struct{}, len(points))
	for _, p := range points {
		seen[p.c[a].String()] = struct{}{}
	}
	return len(seen)
}
