package convert

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Cipher 还原页面中被混淆的价格.
// 第 i 个字符的码点减去 offset 和 i 得到 key 中的下标.
type Cipher struct {
	key    []rune
	offset int
}

func NewCipher(key string, offset int) *Cipher {
	return &Cipher{
		key:    []rune(key),
		offset: offset,
	}
}

func (c *Cipher) Configured() bool {
	return c != nil && len(c.key) > 0
}

func (c *Cipher) Convert(raw any) (any, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	s, skip, err := text(raw)
	if err != nil || skip {
		return nil, err
	}

	decoded, err := c.Decode(s)
	if err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(decoded)
	if err != nil {
		return nil, fmt.Errorf("%w: decoded %q", ErrFormat, decoded)
	}
	return d, nil
}

// Decode 返回解码后的原始文本
func (c *Cipher) Decode(s string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}
	var sb strings.Builder
	for i, r := range []rune(s) {
		idx := int(r) - c.offset - i
		if idx < 0 || idx >= len(c.key) {
			return "", fmt.Errorf("%w: char %q at %d maps to %d, key length %d", ErrKeyIndex, r, i, idx, len(c.key))
		}
		sb.WriteRune(c.key[idx])
	}
	return sb.String(), nil
}
