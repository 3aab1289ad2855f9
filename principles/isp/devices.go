package isp

import (
	"context"
	"fmt"
	"io"

	"gosolid/errors"
	"gosolid/logging"
	"gosolid/messaging"
	"gosolid/patterns/retry"
)

// FaxMessageType 传真发送到传输层时使用的消息类型
const FaxMessageType = "fax.document"

type IPrinter interface {
	Print(ctx context.Context, doc Document) error
}

type IScanner interface {
	Scan(ctx context.Context, doc Document) error
}

type IFax interface {
	Fax(ctx context.Context, doc Document) error
}

// IMultiFunctionDevice 按需组合小接口
type IMultiFunctionDevice interface {
	IPrinter
	IScanner
}

// Printer 打印机
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer { return &Printer{out: out} }

func (p *Printer) Print(ctx context.Context, doc Document) error {
	_, err := fmt.Fprintln(p.out, "Printing...")
	return err
}

// Scanner 扫描仪
type Scanner struct {
	out io.Writer
}

func NewScanner(out io.Writer) *Scanner { return &Scanner{out: out} }

func (s *Scanner) Scan(ctx context.Context, doc Document) error {
	_, err := fmt.Fprintln(s.out, "Scanning...")
	return err
}

// Fax 传真机：输出提示后把文档交给线路（任意 messaging.IPublisher），线路忙时按 redial 重拨
type Fax struct {
	out    io.Writer
	line   messaging.IPublisher
	redial retry.Config
	logger logging.Logger
}

// FaxOption 调整传真机行为
type FaxOption func(*Fax)

// WithRedial 替换默认的重拨策略
func WithRedial(cfg retry.Config) FaxOption {
	return func(f *Fax) { f.redial = cfg }
}

// NewFax 创建传真机，line 为 nil 时只输出提示
func NewFax(out io.Writer, line messaging.IPublisher, opts ...FaxOption) *Fax {
	f := &Fax{
		out:    out,
		line:   line,
		redial: retry.DefaultConfig(),
		logger: logging.ComponentLogger("isp.fax"),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Fax) Fax(ctx context.Context, doc Document) error {
	if _, err := fmt.Fprintln(f.out, "Faxing..."); err != nil {
		return err
	}
	if f.line == nil {
		return nil
	}

	msg := messaging.NewMessage(FaxMessageType, doc)
	msg.SetMetadata("title", doc.Title)
	err := retry.Do(ctx, func(ctx context.Context, attempt int) error {
		if attempt > 1 {
			f.logger.Debug(ctx, "redialing", logging.Int("attempt", attempt))
		}
		return f.line.Publish(ctx, msg)
	}, f.redial)
	if err != nil {
		return errors.WrapError(err, errors.ErrCodeQueue, "send fax")
	}
	f.logger.Debug(ctx, "fax sent", logging.String("document_id", doc.ID.String()), logging.String("message_id", msg.ID))
	return nil
}

// MultiFunctionPrinter 由独立的打印机与扫描仪组合而成，只转发调用
type MultiFunctionPrinter struct {
	printer IPrinter
	scanner IScanner
}

func NewMultiFunctionPrinter(printer IPrinter, scanner IScanner) *MultiFunctionPrinter {
	return &MultiFunctionPrinter{printer: printer, scanner: scanner}
}

func (m *MultiFunctionPrinter) Print(ctx context.Context, doc Document) error {
	return m.printer.Print(ctx, doc)
}

func (m *MultiFunctionPrinter) Scan(ctx context.Context, doc Document) error {
	return m.scanner.Scan(ctx, doc)
}

var (
	_ IPrinter             = (*Printer)(nil)
	_ IScanner             = (*Scanner)(nil)
	_ IFax                 = (*Fax)(nil)
	_ IMultiFunctionDevice = (*MultiFunctionPrinter)(nil)
)
