package isp

import (
	"context"
	"fmt"
	"io"

	"gosolid/logging"
	"gosolid/messaging"
)

// Title 演示标题
const Title = "Interface Segregation Principle"

type runOptions struct {
	fax     bool
	line    messaging.IPublisher
	faxOpts []FaxOption
}

// Option 调整演示行为
type Option func(*runOptions)

// WithFax 演示结束时额外发送一次传真，line 可为 nil
func WithFax(line messaging.IPublisher, opts ...FaxOption) Option {
	return func(o *runOptions) {
		o.fax = true
		o.line = line
		o.faxOpts = opts
	}
}

// Run 输出接口隔离原则的演示；默认只打印与扫描
func Run(ctx context.Context, w io.Writer, opts ...Option) error {
	var o runOptions
	for _, opt := range opts {
		opt(&o)
	}
	logger := logging.ComponentLogger("isp")

	fmt.Fprintln(w, Title)

	doc := NewDocument("")
	mf := NewMultiFunctionPrinter(NewPrinter(w), NewScanner(w))
	if err := mf.Print(ctx, doc); err != nil {
		return err
	}
	if err := mf.Scan(ctx, doc); err != nil {
		return err
	}

	if o.fax {
		if err := NewFax(w, o.line, o.faxOpts...).Fax(ctx, doc); err != nil {
			return err
		}
	}
	logger.Debug(ctx, "device demo finished", logging.String("document", doc.Title), logging.Bool("fax", o.fax))
	return nil
}
