package notification

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/KNICEX/fxsignal/internal/service/signal"
)

// ConsolePrinter 把事件打印到终端
type ConsolePrinter struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsolePrinter(out io.Writer) *ConsolePrinter {
	return &ConsolePrinter{out: out}
}

func (p *ConsolePrinter) print(ev signal.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := fmt.Fprintf(p.out, "%s\n%s\n", title(ev.Kind), body(ev))
	return err
}

func (p *ConsolePrinter) OnNewSignal(ctx context.Context, ev signal.Event) error {
	return p.print(ev)
}

func (p *ConsolePrinter) OnUpdateSignal(ctx context.Context, ev signal.Event) error {
	return p.print(ev)
}

func (p *ConsolePrinter) OnFinishSignal(ctx context.Context, ev signal.Event) error {
	return p.print(ev)
}

func (p *ConsolePrinter) OnCancelSignal(ctx context.Context, ev signal.Event) error {
	return p.print(ev)
}
