// Package lsp 演示里氏替换原则被破坏的经典案例：正方形替换矩形后面积约定失效。
package lsp

import (
	"gosolid/validation"
)

// IResizable 可分别设置宽高的形状
type IResizable interface {
	SetWidth(w int)
	SetHeight(h int)
	Width() int
	Height() int
}

// Rectangle 宽高独立的矩形
type Rectangle struct {
	width, height int
}

// NewRectangle 创建矩形，宽高必须为正
func NewRectangle(w, h int) (*Rectangle, error) {
	if err := validation.ValidateAll(
		func() error { return validation.ValidatePositive(w, "width") },
		func() error { return validation.ValidatePositive(h, "height") },
	); err != nil {
		return nil, err
	}
	return &Rectangle{width: w, height: h}, nil
}

func (r *Rectangle) SetWidth(w int)  { r.width = w }
func (r *Rectangle) SetHeight(h int) { r.height = h }
func (r *Rectangle) Width() int      { return r.width }
func (r *Rectangle) Height() int     { return r.height }

// Area 当前面积
func (r *Rectangle) Area() int { return r.width * r.height }

// Square 复用 Rectangle，但任一边的修改都会同步另一边
type Square struct {
	Rectangle
}

// NewSquare 创建正方形，边长必须为正
func NewSquare(side int) (*Square, error) {
	if err := validation.ValidatePositive(side, "side"); err != nil {
		return nil, err
	}
	return &Square{Rectangle{width: side, height: side}}, nil
}

func (s *Square) SetWidth(w int) {
	s.width = w
	s.height = w
}

func (s *Square) SetHeight(h int) {
	s.width = h
	s.height = h
}

var (
	_ IResizable = (*Rectangle)(nil)
	_ IResizable = (*Square)(nil)
)
