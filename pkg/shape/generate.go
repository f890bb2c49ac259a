package shape

import (
	"math/rand/v2"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/chazu/extrude/pkg/geom"
	"github.com/shopspring/decimal"
)

// Generate builds a random staircase profile of count points lying in the
// plane orthogonal to main and secondary. The base runs along main at
// secondary 0 from 0 to count-2; step heights are drawn from [1, 99] and
// consecutive steps always differ.
func Generate(count int, main, secondary geom.Axis, rnd *rand.Rand) ([]geom.Point, error) {
	if count < 4 || count%2 != 0 {
		return nil, errors.New("a generated profile needs an even number of at least 4 points").
			WithType(geom.ErrTypeArgument).
			WithTag("count", count)
	}
	if !main.Valid() || !secondary.Valid() || main == secondary {
		return nil, errors.New("main and secondary must be two different axes").
			WithType(geom.ErrTypeArgument).
			WithTag("main", main.String()).
			WithTag("secondary", secondary.String())
	}

	at := func(m, s int64) geom.Point {
		p, _ := geom.Point{}.With(main, decimal.NewFromInt(m))
		p, _ = p.With(secondary, decimal.NewFromInt(s))
		return p
	}

	points := make([]geom.Point, count)
	points[0] = at(0, 0)
	points[count-1] = at(int64(count-2), 0)

	for i := 0; i < count-2; i++ {
		prev := points[i]
		m := prev.Get(main).IntPart()
		s := prev.Get(secondary).IntPart()
		if i%2 == 0 {
			h := s
			for h == s {
				h = int64(rnd.IntN(99) + 1)
			}
			points[i+1] = at(m, h)
		} else {
			points[i+1] = at(int64(i+1), s)
		}
	}
	return points, nil
}

// Shuffle returns a random permutation of points.
func Shuffle(points []geom.Point, rnd *rand.Rand) []geom.Point {
	out := make([]geom.Point, len(points))
	copy(out, points)
	rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
