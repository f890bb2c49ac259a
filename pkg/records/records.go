// Package records reads point records and writes triangle records.
//
// A point record is one line of three decimal literals separated by ';',
// for example "3;5.5;0". A triangle record is one line holding its three
// points separated by single spaces.
package records

import (
	"bufio"
	"io"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/chazu/extrude/pkg/geom"
	"github.com/shopspring/decimal"
)

// Separator splits the components of a point record.
const Separator = ";"

var componentNames = [3]string{"X", "Y", "Z"}

// ParsePoint parses one point record. A record that does not hold exactly
// three valid decimals is a format error; a component outside the
// coordinate range is a range error.
func ParsePoint(line string) (geom.Point, error) {
	if line == "" {
		return geom.Point{}, errors.New("empty point record").
			WithType(geom.ErrTypeFormat)
	}

	fields := strings.Split(line, Separator)
	if len(fields) != 3 {
		return geom.Point{}, errors.New("invalid format, a point needs 3 coordinates").
			WithType(geom.ErrTypeFormat).
			WithTag("record", line).
			WithTag("fields", len(fields))
	}

	var c [3]decimal.Decimal
	for i, f := range fields {
		v, err := decimal.NewFromString(strings.TrimSpace(f))
		if err != nil {
			return geom.Point{}, errors.Newf("invalid format of %s coordinate", componentNames[i]).
				WithType(geom.ErrTypeFormat).
				WithTag("record", line).
				WithTag("field", f)
		}
		c[i] = v
	}
	return geom.NewPoint(c[0], c[1], c[2])
}

// ReadPoints parses point records from r, one per line, until the end of
// input or the first empty line. Errors carry the 1-based line number.
func ReadPoints(r io.Reader) ([]geom.Point, error) {
	var points []geom.Point

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if text == "" {
			break
		}

		p, err := ParsePoint(text)
		if err != nil {
			return nil, errors.New("reading point record failed").
				WithType(errors.Type(err)).
				WithTag("line", line).
				Wrap(err)
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.New("reading point records failed").Wrap(err)
	}
	return points, nil
}

// FormatPoint renders p as a point record.
func FormatPoint(p geom.Point) string {
	return p.String()
}

// WriteTriangles writes one triangle record per line.
func WriteTriangles(w io.Writer, triangles []geom.Triangle) error {
	bw := bufio.NewWriter(w)
	for _, t := range triangles {
		if _, err := bw.WriteString(t.String()); err != nil {
			return errors.New("writing triangle record failed").Wrap(err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.New("writing triangle record failed").Wrap(err)
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.New("flushing triangle records failed").Wrap(err)
	}
	return nil
}
