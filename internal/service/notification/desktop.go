package notification

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DesktopSender 通过 notify-send 发送桌面通知
type DesktopSender struct {
	command string
	run     func(ctx context.Context, name string, args ...string) ([]byte, error)
}

func NewDesktopSender() *DesktopSender {
	return &DesktopSender{
		command: "notify-send",
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).CombinedOutput()
		},
	}
}

// Available 系统中是否有 notify-send
func (d *DesktopSender) Available() bool {
	_, err := exec.LookPath(d.command)
	return err == nil
}

func (d *DesktopSender) Name() string {
	return "desktop"
}

func (d *DesktopSender) Send(ctx context.Context, msg Message) error {
	args := []string{"--urgency=low", "--expire-time=10000", "--app-name=fxsignal"}
	if msg.Tag != "default" && msg.Tag != "" {
		args = append(args, "--category="+msg.Tag)
	}
	args = append(args, msg.Title, msg.Body)

	out, err := d.run(ctx, d.command, args...)
	if err != nil {
		return fmt.Errorf("%s: %w: %s", d.command, err, strings.TrimSpace(string(out)))
	}
	return nil
}
