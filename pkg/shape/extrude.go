package shape

import (
	"github.com/chazu/extrude/pkg/geom"
	"github.com/shopspring/decimal"
)

// Extrude sweeps the polygon by length along its plane axis and returns the
// closed solid. Translated points must stay within the coordinate range.
//
// Face order is: this polygon, the three rectangles touching the base, the
// translated copy, then one rectangle per pair of consecutive interior
// points.
func (p *Polygon) Extrude(length decimal.Decimal) (*Polyhedron, error) {
	offset, err := geom.Point{}.With(p.plane, length)
	if err != nil {
		return nil, err
	}

	moved, err := translate(p.interior, offset)
	if err != nil {
		return nil, err
	}
	movedBase, err := translate(p.base[:], offset)
	if err != nil {
		return nil, err
	}

	opposite := &Polygon{
		interior:    moved,
		base:        [2]geom.Point{movedBase[0], movedBase[1]},
		plane:       p.plane,
		main:        p.main,
		secondary:   p.secondary,
		orientation: p.orientation,
	}

	last := len(p.interior) - 1
	rects := [][]geom.Point{
		{p.interior[0], moved[0], p.base[0], movedBase[0]},
		{p.base[0], movedBase[0], p.base[1], movedBase[1]},
		{p.interior[last], moved[last], p.base[1], movedBase[1]},
	}
	for i := 0; i < last; i++ {
		rects = append(rects, []geom.Point{p.interior[i], moved[i], p.interior[i+1], moved[i+1]})
	}

	sides := make([]*Polygon, len(rects))
	for i, r := range rects {
		if sides[i], err = Create(r); err != nil {
			return nil, err
		}
	}

	faces := make([]Face, 0, len(sides)+2)
	faces = append(faces, Face{Polygon: p, Role: FaceFront})
	for _, s := range sides[:3] {
		faces = append(faces, Face{Polygon: s, Role: FaceSide})
	}
	faces = append(faces, Face{Polygon: opposite, Role: FaceBack})
	for _, s := range sides[3:] {
		faces = append(faces, Face{Polygon: s, Role: FaceSide})
	}

	return &Polyhedron{faces: faces, length: length}, nil
}

func translate(points []geom.Point, offset geom.Point) ([]geom.Point, error) {
	out := make([]geom.Point, len(points))
	for i, pt := range points {
		moved, err := pt.Add(offset)
		if err != nil {
			return nil, err
		}
		out[i] = moved
	}
	return out, nil
}
