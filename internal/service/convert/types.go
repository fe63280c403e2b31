package convert

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrWrongType 输入不是字符串
	ErrWrongType = errors.New("value not a string")
	// ErrBlank 输入只包含空白字符
	ErrBlank = errors.New("value is blank")
	// ErrFormat 输入不符合转换器期望的格式
	ErrFormat = errors.New("value has unexpected format")
	// ErrNotConfigured 转换器参数未设置
	ErrNotConfigured = errors.New("parameters are not set correctly")
	// ErrKeyIndex 解码下标超出密钥范围
	ErrKeyIndex = errors.New("cipher index out of key bounds")
)

// Fields 一次提取得到的字段, 值在转换前为 string 或 nil
type Fields map[string]any

// Converter 把单个提取出的字段转换为目标类型
type Converter interface {
	Convert(raw any) (any, error)
}

// FieldError 记录转换失败的字段名
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("convert field %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Mapper 按字段名对整条记录应用转换器, 未配置的字段原样保留
type Mapper map[string]Converter

func (m Mapper) Apply(fields Fields) (Fields, error) {
	res := make(Fields, len(fields))
	for name, raw := range fields {
		c, ok := m[name]
		if !ok {
			c = Identity{}
		}
		v, err := c.Convert(raw)
		if err != nil {
			return nil, &FieldError{Field: name, Err: err}
		}
		res[name] = v
	}
	return res, nil
}

// text 非 identity 转换器的公共校验. skip 为 true 时表示输入为空, 结果应为 nil
func text(raw any) (s string, skip bool, err error) {
	if raw == nil {
		return "", true, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", false, fmt.Errorf("%w: got %T", ErrWrongType, raw)
	}
	if s == "" {
		return "", true, nil
	}
	if strings.TrimSpace(s) == "" {
		return "", false, ErrBlank
	}
	return s, false, nil
}
