package decimalx

import "github.com/shopspring/decimal"

func MustFromString(s string) decimal.Decimal {
	res, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return res
}

// FormatNull 没有值时返回 fallback
func FormatNull(d decimal.NullDecimal, fallback string) string {
	if !d.Valid {
		return fallback
	}
	return d.Decimal.String()
}
