package invoicer

import (
	"bytes"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Numeric is a decimal number read leniently from user input or stored JSON.
// Decoding never fails: JSON numbers, numeric strings, and anything
// unparseable (which becomes zero) are all accepted. This is the single
// place where the coercion rule for quantities, prices and tax rates lives.
type Numeric struct {
	value decimal.Decimal
}

func N[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Numeric {
	return Numeric{value: newDecimal(value)}
}

// ParseNumeric coerces a string into a Numeric, zero if unparseable.
func ParseNumeric(s string) Numeric {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Numeric{}
	}
	return Numeric{value: d}
}

func (n Numeric) Decimal() decimal.Decimal { return n.value }
func (n Numeric) Equal(m Numeric) bool     { return n.value.Equal(m.value) }
func (n Numeric) IsZero() bool             { return n.value.IsZero() }
func (n Numeric) Mul(m Numeric) Numeric    { return Numeric{value: n.value.Mul(m.value)} }
func (n Numeric) String() string           { return n.value.String() }

func (n Numeric) MarshalJSON() ([]byte, error) {
	return n.value.MarshalJSON()
}

// UnmarshalJSON accepts numbers, quoted numbers, and silently coerces
// everything else (malformed strings, null, objects) to zero.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		n.value = decimal.Decimal{}
		return nil
	}
	n.value = d
	return nil
}
