// Package srp 演示单一职责原则：Counter 只负责计数。
package srp

import (
	"context"
	"fmt"
	"io"

	"gosolid/logging"
)

// Title 演示标题（保留原有拼写，作为输出契约的一部分）
const Title = "Single Responsability Principle"

// RocketRefusal LaunchRockets 输出的拒绝语
const RocketRefusal = "Hey man, it's not my responsability. I'm just a counter trying to live my life."

// Counter 只维护一个可增减的计数值
type Counter struct {
	Count int
}

// NewCounter 以初始值创建计数器
func NewCounter(init int) *Counter {
	return &Counter{Count: init}
}

func (c *Counter) Increment() { c.Count++ }

func (c *Counter) Decrement() { c.Count-- }

// LaunchRockets 不属于计数器的职责：只输出拒绝语并返回 false
func (c *Counter) LaunchRockets(w io.Writer) bool {
	fmt.Fprintln(w, RocketRefusal)
	return false
}

// Run 输出单一职责原则的固定演示
func Run(ctx context.Context, w io.Writer) error {
	logger := logging.ComponentLogger("srp")

	fmt.Fprintln(w, Title)

	counter := NewCounter(10)
	fmt.Fprintf(w, "Counter init : %d\n", counter.Count)

	counter.Increment()
	fmt.Fprintf(w, "Counter incremented : %d\n", counter.Count)

	counter.Decrement()
	fmt.Fprintf(w, "Counter decremented : %d\n", counter.Count)

	fmt.Fprintln(w, "Counter launch rockets!!!!!")
	launched := counter.LaunchRockets(w)
	logger.Debug(ctx, "counter demo finished", logging.Int("count", counter.Count), logging.Bool("launched", launched))
	return nil
}
