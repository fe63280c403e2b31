package convert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Int 解析整数
type Int struct{}

func (Int) Convert(raw any) (any, error) {
	s, skip, err := text(raw)
	if err != nil || skip {
		return nil, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrFormat, s)
	}
	return n, nil
}

// Decimal 解析十进制数, 会去掉千分位逗号
type Decimal struct{}

func (Decimal) Convert(raw any) (any, error) {
	s, skip, err := text(raw)
	if err != nil || skip {
		return nil, err
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrFormat, s)
	}
	return d, nil
}
