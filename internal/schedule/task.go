package schedule

import "context"

// Task 一次轮询周期
type Task interface {
	Run(ctx context.Context) error
	Name() string
}
