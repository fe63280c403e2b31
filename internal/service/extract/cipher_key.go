package extract

import (
	"errors"
	"fmt"

	"github.com/KNICEX/fxsignal/internal/service/convert"
)

var ErrNotFound = errors.New("cipher parameters not found in page")

// CipherParams 每次轮询从页面内联脚本中解析, 源站可能随时更换
type CipherParams struct {
	Key    string
	Offset int
}

func (p CipherParams) Converter() *convert.Cipher {
	return convert.NewCipher(p.Key, p.Offset)
}

const cipherScriptExpr = `var z='(?P<key>.+)';function f\(s\)\{var i=0;for \(i=0;i<s.length;i\+\+\)\{document.write\(z.charAt\(s.charCodeAt\(i\)-(?P<offset>\d+)-i\)\);\}\}`

type CipherKeyExtractor struct {
	rule Rule
}

func NewCipherKeyExtractor() *CipherKeyExtractor {
	return &CipherKeyExtractor{
		rule: NewRule("cipher", cipherScriptExpr, convert.Mapper{"offset": convert.Int{}}),
	}
}

func (e *CipherKeyExtractor) Extract(page string) (CipherParams, error) {
	fields, err := e.rule.Extract(page)
	if err != nil {
		return CipherParams{}, err
	}
	if fields == nil {
		return CipherParams{}, ErrNotFound
	}

	key, _ := fields["key"].(string)
	offset, ok := fields["offset"].(int)
	if key == "" || !ok {
		return CipherParams{}, fmt.Errorf("%w: incomplete script", ErrNotFound)
	}
	return CipherParams{Key: key, Offset: offset}, nil
}
