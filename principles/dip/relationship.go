// Package dip 演示依赖倒置原则：高层的 Research 只依赖 IRelationshipBrowser，
// 内存与 SQL 两种底层存储都实现该抽象。
package dip

import (
	"context"
	"fmt"
	"strings"

	"gosolid/validation"
)

// Relationship 两人之间的关系
type Relationship int

const (
	Parent Relationship = iota
	Child
	Sibling
)

func (r Relationship) String() string {
	switch r {
	case Parent:
		return "parent"
	case Child:
		return "child"
	case Sibling:
		return "sibling"
	default:
		return fmt.Sprintf("Relationship(%d)", int(r))
	}
}

// ParseRelationship 解析关系名称（大小写不敏感）
func ParseRelationship(name string) (Relationship, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if err := validation.ValidateEnum(name, "relationship", []string{"parent", "child", "sibling"}); err != nil {
		return 0, err
	}
	switch name {
	case "parent":
		return Parent, nil
	case "child":
		return Child, nil
	default:
		return Sibling, nil
	}
}

type Person struct {
	Name string
}

// Relation 一条关系记录：From 是 To 的 Kind
type Relation struct {
	From Person
	Kind Relationship
	To   Person
}

// IRelationshipBrowser 高层模块依赖的抽象
type IRelationshipBrowser interface {
	// FindAllChildrenOf 按登记顺序返回 name 的所有子女
	FindAllChildrenOf(ctx context.Context, name string) ([]Person, error)
}

func validatePair(parent, child Person) error {
	return validation.ValidateAll(
		func() error { return validation.ValidateRequired(parent.Name, "parent") },
		func() error { return validation.ValidateRequired(child.Name, "child") },
	)
}
