package dip

import (
	"context"
	"fmt"
	"io"

	"gosolid/data/db"
	"gosolid/di"
	"gosolid/logging"
)

// Title 演示标题
const Title = "Dependency Inversion Principle"

type runOptions struct {
	database db.IDatabase
}

// Option 调整演示行为
type Option func(*runOptions)

// WithDatabase 使用 SQL 存储替代内存存储，database 由调用方负责关闭
func WithDatabase(database db.IDatabase) Option {
	return func(o *runOptions) { o.database = database }
}

type relationStore interface {
	IRelationshipBrowser
	AddParentAndChild(ctx context.Context, parent, child Person) error
	Reset(ctx context.Context) error
}

// Run 输出依赖倒置原则的演示
func Run(ctx context.Context, w io.Writer, opts ...Option) error {
	var o runOptions
	for _, opt := range opts {
		opt(&o)
	}
	logger := logging.ComponentLogger("dip")

	fmt.Fprintln(w, Title)

	store, err := newStore(ctx, o)
	if err != nil {
		return err
	}

	john := Person{Name: "John"}
	for _, child := range []Person{{Name: "Chris"}, {Name: "Matt"}} {
		if err := store.AddParentAndChild(ctx, john, child); err != nil {
			return err
		}
	}

	container := di.New()
	if err := container.RegisterAs((*IRelationshipBrowser)(nil), store); err != nil {
		return err
	}
	browser, err := di.ResolveAs[IRelationshipBrowser](container)
	if err != nil {
		return err
	}

	logger.Debug(ctx, "browser resolved",
		logging.String("impl", fmt.Sprintf("%T", browser)),
		logging.Any("registered", container.Names()))
	return NewResearch(browser).Investigate(ctx, john.Name, w)
}

func newStore(ctx context.Context, o runOptions) (relationStore, error) {
	if o.database == nil {
		return NewRelationships(), nil
	}
	store := NewSQLRelationships(o.database, "")
	if err := store.EnsureTable(ctx); err != nil {
		return nil, err
	}
	// 演示数据固定，每次运行都从空表开始
	if err := store.Reset(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
