// Package ocp 演示开闭原则：新增筛选条件时扩展 Specification，而不修改 Filter。
package ocp

import (
	"strings"

	"github.com/google/uuid"

	"gosolid/errors"
	"gosolid/validation"
)

// Color 产品颜色
type Color int

const (
	Red Color = iota
	Green
	Blue
)

var colorNames = []string{"red", "green", "blue"}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "unknown"
	}
	return colorNames[c]
}

// ParseColor 解析颜色名（大小写不敏感）
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, cn := range colorNames {
		if cn == n {
			return Color(i), nil
		}
	}
	return 0, validation.ValidateEnum(n, "color", colorNames)
}

// Size 产品尺寸
type Size int

const (
	Small Size = iota
	Medium
	Large
)

var sizeNames = []string{"small", "medium", "large"}

func (s Size) String() string {
	if s < 0 || int(s) >= len(sizeNames) {
		return "unknown"
	}
	return sizeNames[s]
}

// ParseSize 解析尺寸名（大小写不敏感）
func ParseSize(name string) (Size, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, sn := range sizeNames {
		if sn == n {
			return Size(i), nil
		}
	}
	return 0, validation.ValidateEnum(n, "size", sizeNames)
}

// Product 可被筛选的产品
type Product struct {
	ID    uuid.UUID
	Name  string
	Color Color
	Size  Size
}

// NewProduct 创建产品，名称必填
func NewProduct(name string, color Color, size Size) (*Product, error) {
	if err := validation.ValidateRequired(name, "name"); err != nil {
		return nil, err
	}
	if color.String() == "unknown" || size.String() == "unknown" {
		return nil, errors.Newf(errors.ErrCodeValidation, "product %s has an unknown color or size", name)
	}
	return &Product{ID: uuid.New(), Name: name, Color: color, Size: size}, nil
}

// Key 由会影响筛选结果的全部字段组成
func (p *Product) Key() string {
	return p.ID.String() + ":" + p.Name + ":" + p.Color.String() + ":" + p.Size.String()
}

// MustNewProduct NewProduct 的 panic 版本，仅用于固定数据
func MustNewProduct(name string, color Color, size Size) *Product {
	p, err := NewProduct(name, color, size)
	if err != nil {
		panic(err)
	}
	return p
}

// Catalogue 演示使用的固定产品目录，顺序即输出顺序
func Catalogue() []*Product {
	return []*Product{
		MustNewProduct("Apple", Green, Small),
		MustNewProduct("Tree", Green, Large),
		MustNewProduct("House", Blue, Large),
		MustNewProduct("Hulk", Green, Large),
	}
}
