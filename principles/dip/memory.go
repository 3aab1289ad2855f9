package dip

import (
	"context"
	"sync"
)

// Relationships 内存中的关系表（底层模块）
type Relationships struct {
	mu        sync.RWMutex
	relations []Relation
}

func NewRelationships() *Relationships {
	return &Relationships{}
}

// AddParentAndChild 同时登记 parent->child 与 child->parent 两条记录
func (r *Relationships) AddParentAndChild(ctx context.Context, parent, child Person) error {
	if err := validatePair(parent, child); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.relations = append(r.relations,
		Relation{From: parent, Kind: Parent, To: child},
		Relation{From: child, Kind: Child, To: parent},
	)
	return nil
}

// Reset 清空全部记录
func (r *Relationships) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.relations = nil
	return nil
}

// Relations 返回全部记录的副本
func (r *Relationships) Relations() []Relation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Relation, len(r.relations))
	copy(out, r.relations)
	return out
}

func (r *Relationships) FindAllChildrenOf(ctx context.Context, name string) ([]Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []Person
	for _, rel := range r.relations {
		if rel.From.Name == name && rel.Kind == Parent {
			result = append(result, rel.To)
		}
	}
	return result, nil
}

var _ IRelationshipBrowser = (*Relationships)(nil)
