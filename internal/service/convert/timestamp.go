package convert

import (
	"fmt"
	"strings"
	"time"
)

const timestampLayout = "Jan, 2 15:04"

// Timestamp 解析 "Oct, 22 14:41 GMT" 这类不带年份的时间.
// 年份取当前年份, 跨年时可能得到错误的年份.
type Timestamp struct {
	now func() time.Time
	loc *time.Location
}

type TimestampOption func(t *Timestamp)

func WithClock(now func() time.Time) TimestampOption {
	return func(t *Timestamp) {
		t.now = now
	}
}

// WithLocation 指定结果所在时区, 默认 time.Local
func WithLocation(loc *time.Location) TimestampOption {
	return func(t *Timestamp) {
		t.loc = loc
	}
}

func NewTimestamp(opts ...TimestampOption) *Timestamp {
	t := &Timestamp{
		now: time.Now,
		loc: time.Local,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Timestamp) Convert(raw any) (any, error) {
	s, skip, err := text(raw)
	if err != nil || skip {
		return nil, err
	}

	s = strings.TrimSpace(s)
	idx := strings.LastIndexByte(s, ' ')
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	zone, err := t.zone(s[idx+1:])
	if err != nil {
		return nil, err
	}

	parsed, err := time.Parse(timestampLayout, s[:idx])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrFormat, s)
	}

	// 在源时区补上当前年份, 再换算到本地时区
	moment := time.Date(t.now().Year(), parsed.Month(), parsed.Day(), parsed.Hour(), parsed.Minute(), 0, 0, zone)
	return moment.In(t.loc), nil
}

func (t *Timestamp) zone(label string) (*time.Location, error) {
	switch strings.ToUpper(label) {
	case "GMT", "UTC", "Z":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(label)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown zone %q", ErrFormat, label)
	}
	return loc, nil
}
