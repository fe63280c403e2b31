package decimalx

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatNull(t *testing.T) {
	testCases := []struct {
		name string
		d    decimal.NullDecimal
		want string
	}{
		{name: "empty", d: decimal.NullDecimal{}, want: "-"},
		{name: "value", d: decimal.NewNullDecimal(MustFromString("1.39520")), want: "1.3952"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatNull(tc.d, "-"))
		})
	}
}

func TestMustFromString_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustFromString("abc")
	})
}
