package polestock

import (
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Rating is the electrical rating of a pole, in amps.
// Ratings compare by decimal value: 20 and 20.0 are the same rating.
type Rating struct {
	value decimal.Decimal
}

// R returns the rating of value amps.
func R[T float64 | int | int64 | decimal.Decimal](value T) Rating {
	return Rating{value: newDecimal(value)}
}

// Bounds of an acceptable rating, inclusive.
var (
	MinRating = R(0.5)
	MaxRating = R(80)
)

// ParseRating parses a rating in amps, like "20" or "0.5".
func ParseRating(s string) (Rating, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Rating{}, err
	}
	return Rating{value: v}, nil
}

func (r Rating) Equal(o Rating) bool          { return r.value.Equal(o.value) }
func (r Rating) Cmp(o Rating) int             { return r.value.Cmp(o.value) }
func (r Rating) IsZero() bool                 { return r.value.IsZero() }
func (r Rating) String() string               { return r.value.String() }
func (r Rating) Decimal() decimal.Decimal     { return r.value }
func (r Rating) MarshalJSON() ([]byte, error) { return r.value.MarshalJSON() }

func (r *Rating) UnmarshalJSON(b []byte) error { return r.value.UnmarshalJSON(b) }

// InRange reports whether r is within [MinRating, MaxRating].
func (r Rating) InRange() bool {
	return !r.value.LessThan(MinRating.value) && !r.value.GreaterThan(MaxRating.value)
}
