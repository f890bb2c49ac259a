package shape

// Orientation selects how triangulation pivots are picked on the secondary
// axis.
type Orientation int

const (
	// Normal picks the point with the smallest secondary value.
	Normal Orientation = iota
	// Reversed picks the point with the largest secondary value.
	Reversed
)

func (o Orientation) String() string {
	switch o {
	case Normal:
		return "normal"
	case Reversed:
		return "reversed"
	default:
		return "unknown"
	}
}
