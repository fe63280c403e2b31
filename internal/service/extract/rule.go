package extract

import (
	"regexp"

	"github.com/KNICEX/fxsignal/internal/service/convert"
)

// Rule 带命名分组的正则, 以及分组对应的转换器
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Mapper  convert.Mapper
}

func NewRule(name, expr string, mapper convert.Mapper) Rule {
	return Rule{
		Name:    name,
		Pattern: regexp.MustCompile(expr),
		Mapper:  mapper,
	}
}

// Extract 不匹配时返回 nil, nil; 转换错误直接返回给调用方
func (r Rule) Extract(text string) (convert.Fields, error) {
	loc := r.Pattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, nil
	}

	raw := make(convert.Fields)
	for i, name := range r.Pattern.SubexpNames() {
		if name == "" {
			continue
		}
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 {
			// 可选分组没有参与匹配
			raw[name] = nil
			continue
		}
		raw[name] = text[start:end]
	}
	return r.Mapper.Apply(raw)
}
