package dip

import (
	"context"
	"fmt"

	"gosolid/data/db"
	"gosolid/errors"
	"gosolid/logging"
)

// DefaultTable 关系表默认表名
const DefaultTable = "relationships"

// SQLRelationships 基于 db.IDatabase 的关系存储（底层模块）
type SQLRelationships struct {
	db     db.IDatabase
	table  string
	logger logging.Logger
}

// NewSQLRelationships 创建 SQL 关系存储，table 为空时使用 DefaultTable
func NewSQLRelationships(database db.IDatabase, table string) *SQLRelationships {
	if table == "" {
		table = DefaultTable
	}
	return &SQLRelationships{
		db:     database,
		table:  table,
		logger: logging.ComponentLogger("dip.sql"),
	}
}

// EnsureTable 建表（幂等）
func (s *SQLRelationships) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		from_name TEXT NOT NULL,
		kind TEXT NOT NULL,
		to_name TEXT NOT NULL
	)`, s.table)
	if _, err := s.db.Exec(ctx, query); err != nil {
		return errors.WrapDatabaseError(ctx, err, "create relationships table")
	}
	return nil
}

// Reset 删除表中全部记录，文件库上重复运行时从空表开始
func (s *SQLRelationships) Reset(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, fmt.Sprintf("DELETE FROM %s", s.table)); err != nil {
		return errors.WrapDatabaseError(ctx, err, "reset relationships")
	}
	return nil
}

// AddParentAndChild 在一个事务里写入两条方向相反的记录
func (s *SQLRelationships) AddParentAndChild(ctx context.Context, parent, child Person) error {
	if err := validatePair(parent, child); err != nil {
		return err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return errors.WrapDatabaseError(ctx, err, "begin transaction")
	}
	defer tx.Rollback()

	insert := fmt.Sprintf("INSERT INTO %s (from_name, kind, to_name) VALUES (?, ?, ?)", s.table)
	for _, rel := range []Relation{
		{From: parent, Kind: Parent, To: child},
		{From: child, Kind: Child, To: parent},
	} {
		if _, err := tx.Exec(ctx, insert, rel.From.Name, rel.Kind.String(), rel.To.Name); err != nil {
			return errors.WrapDatabaseError(ctx, err, "insert relation")
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.WrapDatabaseError(ctx, err, "commit transaction")
	}
	s.logger.Debug(ctx, "relation stored", logging.String("parent", parent.Name), logging.String("child", child.Name))
	return nil
}

func (s *SQLRelationships) FindAllChildrenOf(ctx context.Context, name string) ([]Person, error) {
	query := fmt.Sprintf("SELECT to_name FROM %s WHERE from_name = ? AND kind = ? ORDER BY id", s.table)
	rows, err := s.db.Query(ctx, query, name, Parent.String())
	if err != nil {
		return nil, errors.WrapDatabaseError(ctx, err, "query children")
	}
	defer rows.Close()

	var result []Person
	for rows.Next() {
		var p Person
		if err := rows.Scan(&p.Name); err != nil {
			return nil, errors.WrapDatabaseError(ctx, err, "scan child")
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapDatabaseError(ctx, err, "iterate children")
	}
	return result, nil
}

var _ IRelationshipBrowser = (*SQLRelationships)(nil)
