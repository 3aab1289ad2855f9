package dip

import (
	"context"
	"fmt"
	"io"
)

// Research 高层模块，只认识 IRelationshipBrowser
type Research struct {
	browser IRelationshipBrowser
}

func NewResearch(browser IRelationshipBrowser) *Research {
	return &Research{browser: browser}
}

// Investigate 输出 name 的每个子女
func (r *Research) Investigate(ctx context.Context, name string, w io.Writer) error {
	children, err := r.browser.FindAllChildrenOf(ctx, name)
	if err != nil {
		return err
	}
	for _, child := range children {
		if _, err := fmt.Fprintf(w, "%s has a child called %s\n", name, child.Name); err != nil {
			return err
		}
	}
	return nil
}
