package extract

import (
	"strings"

	"github.com/KNICEX/fxsignal/internal/service/convert"
	"github.com/samber/lo"
)

// LineFilter 返回 false 的行会被丢弃
type LineFilter func(line string) bool

// Extractor 按顺序应用多条规则, 把结果合并到一条记录里
type Extractor struct {
	rules   []Rule
	filters []LineFilter
}

type Option func(e *Extractor)

func WithLineFilter(filter LineFilter) Option {
	return func(e *Extractor) {
		e.filters = append(e.filters, filter)
	}
}

func NewExtractor(rules []Rule, opts ...Option) *Extractor {
	e := &Extractor{
		rules: rules,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Extractor) Rules() []Rule {
	return e.rules
}

// Lines 按行切分并应用所有行过滤器
func (e *Extractor) Lines(content string) []string {
	return lo.Filter(strings.Split(content, "\n"), func(line string, _ int) bool {
		for _, f := range e.filters {
			if !f(line) {
				return false
			}
		}
		return true
	})
}

// Extract 合并所有匹配规则的字段, 后面的规则覆盖前面的同名字段.
// 没有任何规则匹配时返回 nil.
func (e *Extractor) Extract(text string) (convert.Fields, error) {
	var merged convert.Fields
	for _, rule := range e.rules {
		fields, err := rule.Extract(text)
		if err != nil {
			return nil, err
		}
		if fields == nil {
			continue
		}
		if merged == nil {
			merged = make(convert.Fields, len(fields))
		}
		for k, v := range fields {
			merged[k] = v
		}
	}
	return merged, nil
}

// ExtractAll 对过滤后的每一行提取字段; 出错的行交给 onError 处理后跳过
func (e *Extractor) ExtractAll(content string, onError func(line string, err error)) []convert.Fields {
	var res []convert.Fields
	for _, line := range e.Lines(content) {
		fields, err := e.Extract(line)
		if err != nil {
			if onError != nil {
				onError(line, err)
			}
			continue
		}
		if fields != nil {
			res = append(res, fields)
		}
	}
	return res
}
