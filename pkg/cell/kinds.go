package cell

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// Integer cells regenerate to the sum of their neighbors' states.
var Integer = &Kind{
	Name: "integer",
	Zero: 0,
	Validate: func(v Value) error {
		if _, ok := v.(int); !ok {
			return errors.Wrapf(ErrStateType, "integer cell wants int, got %T", v)
		}
		return nil
	},
	Rule: func(_ Value, neighbors []Value) Value {
		sum := 0
		for _, n := range neighbors {
			sum += n.(int)
		}
		return sum
	},
	Glyph:  func(v Value) string { return strconv.Itoa(v.(int)) },
	Format: func(v Value) string { return strconv.Itoa(v.(int)) },
}

// Boolean cells toggle on each regeneration, regardless of neighbors.
var Boolean = &Kind{
	Name: "boolean",
	Zero: false,
	Validate: func(v Value) error {
		if _, ok := v.(bool); !ok {
			return errors.Wrapf(ErrStateType, "boolean cell wants bool, got %T", v)
		}
		return nil
	},
	Rule: func(self Value, _ []Value) Value { return !self.(bool) },
	Glyph: func(v Value) string {
		if v.(bool) {
			return "*"
		}
		return "-"
	},
	Format: func(v Value) string { return strconv.FormatBool(v.(bool)) },
}

func init() {
	Register(Integer)
	Register(Boolean)
}
