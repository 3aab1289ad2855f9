// Package isp 演示接口隔离原则：打印、扫描、传真各自是独立的小接口。
package isp

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultTitle 未指定标题时的文档标题
const DefaultTitle = "Document"

// Document 被各类设备处理的文档
type Document struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// NewDocument 创建文档，空标题使用 DefaultTitle
func NewDocument(title string) Document {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	return Document{ID: uuid.New(), Title: title}
}
