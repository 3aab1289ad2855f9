package isp

import (
	"context"
	"fmt"
	"io"

	"gosolid/errors"
)

// IMachine 反例：一个接口囊括所有能力，实现方被迫提供用不到的方法
type IMachine interface {
	Print(ctx context.Context, doc Document) error
	Scan(ctx context.Context, doc Document) error
	Fax(ctx context.Context, doc Document) error
}

// OldFashionedPrinter 只会打印，却必须实现整个 IMachine
type OldFashionedPrinter struct {
	out io.Writer
}

func NewOldFashionedPrinter(out io.Writer) *OldFashionedPrinter {
	return &OldFashionedPrinter{out: out}
}

func (p *OldFashionedPrinter) Print(ctx context.Context, doc Document) error {
	_, err := fmt.Fprintln(p.out, "Printing...")
	return err
}

func (p *OldFashionedPrinter) Scan(ctx context.Context, doc Document) error {
	return errors.ErrNotSupported.WithContext("operation", "scan")
}

func (p *OldFashionedPrinter) Fax(ctx context.Context, doc Document) error {
	return errors.ErrNotSupported.WithContext("operation", "fax")
}

var _ IMachine = (*OldFashionedPrinter)(nil)
