package geom

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/shopspring/decimal"
)

// Error kinds. Every validation error returned by geom, shape and records
// carries one of them and can be classified with errors.IsType.
const (
	// ErrTypeRange is a coordinate component outside [MinValue, MaxValue].
	ErrTypeRange = "range-error"

	// ErrTypeFormat is a malformed point record.
	ErrTypeFormat = "format-error"

	// ErrTypeArgument is a structurally invalid call, such as too few points
	// handed to a helper.
	ErrTypeArgument = "argument-error"

	// ErrTypeGeometry is a point set that does not describe a valid
	// orthogonal profile.
	ErrTypeGeometry = "geometry-error"
)

func rangeError(a Axis, v decimal.Decimal) error {
	return errors.New("coordinate out of range").
		WithType(ErrTypeRange).
		WithTag("axis", a.String()).
		WithTag("value", v.String()).
		WithTag("min", MinValue.String()).
		WithTag("max", MaxValue.String())
}

func argumentError(msg string, want, got int) error {
	return errors.New(msg).
		WithType(ErrTypeArgument).
		WithTag("want_at_least", want).
		WithTag("got", got)
}
