package lsp

import (
	"context"
	"fmt"
	"io"

	"gosolid/logging"
)

// Title 演示标题
const Title = "Liskov Substitution Principle"

const (
	probeWidth  = 5
	probeHeight = 4

	// ExpectedArea 调用方对 5x4 的面积预期
	ExpectedArea = probeWidth * probeHeight
)

// Area 以矩形的约定使用 r：先设宽再设高，期望面积为 ExpectedArea
func Area(r IResizable, w io.Writer) bool {
	r.SetWidth(probeWidth)
	r.SetHeight(probeHeight)
	if r.Width()*r.Height() == ExpectedArea {
		fmt.Fprintln(w, "Area function worked! ")
		return true
	}
	fmt.Fprintln(w, "Not the expected behavior! ")
	return false
}

// Run 输出里氏替换原则的固定演示
func Run(ctx context.Context, w io.Writer) error {
	logger := logging.ComponentLogger("lsp")
	fmt.Fprintln(w, Title)

	rect, err := NewRectangle(10, 5)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Running Area for a Rectangle")
	rectOK := Area(rect, w)

	sq, err := NewSquare(4)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Running Area for a Square")
	squareOK := Area(sq, w)

	logger.Debug(ctx, "area checks finished",
		logging.Bool("rectangle", rectOK),
		logging.Bool("square", squareOK),
		logging.Int("square_area", sq.Area()))
	return nil
}
