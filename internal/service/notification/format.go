package notification

import (
	"fmt"
	"strings"
	"time"

	"github.com/KNICEX/fxsignal/internal/service/signal"
	"github.com/KNICEX/fxsignal/pkg/decimalx"
)

const timeLayout = "2006-01-02 15:04:05"

func title(kind signal.EventKind) string {
	switch kind {
	case signal.EventNew:
		return "-- NEW --"
	case signal.EventUpdate:
		return "-- UPDATE --"
	case signal.EventFinish:
		return "-- FINISH --"
	case signal.EventCancel:
		return "-- CANCEL --"
	default:
		return "-- SIGNAL --"
	}
}

// body 结束和取消只显示货币对
func body(ev signal.Event) string {
	s := ev.Signal
	if ev.Kind == signal.EventFinish || ev.Kind == signal.EventCancel {
		return s.CurrencyPair
	}
	return fmt.Sprintf("%s\n%s -> %s\n current price\n  mid: %s\n  valid\n  from: %s\n  to:   %s",
		s.CurrencyPair,
		s.Action,
		decimalx.FormatNull(s.Price, "-"),
		decimalx.FormatNull(ev.ReferencePrice, ""),
		formatTime(s.From),
		formatTime(s.To),
	)
}

func tag(s signal.Signal) string {
	switch strings.ToLower(string(s.Action)) {
	case "buy":
		return "buy"
	case "sell":
		return "sell"
	default:
		return "default"
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(timeLayout)
}

func message(ev signal.Event) Message {
	return Message{
		Title: title(ev.Kind),
		Body:  body(ev),
		Tag:   tag(ev.Signal),
	}
}
