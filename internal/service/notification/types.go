package notification

import "context"

// Message 一条待推送的通知
type Message struct {
	Title string
	Body  string
	// Tag buy / sell / default, 桌面通知据此选择样式
	Tag string
}

// Sender 把通知推送到具体渠道
type Sender interface {
	Send(ctx context.Context, msg Message) error
	Name() string
}
