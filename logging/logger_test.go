package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// TestFieldConstructors 测试字段构造函数
func TestFieldConstructors(t *testing.T) {
	tests := []struct {
		name    string
		field   Field
		wantKey string
	}{
		{name: "String字段", field: String("name", "test"), wantKey: "name"},
		{name: "Int字段", field: Int("count", 123), wantKey: "count"},
		{name: "Bool字段", field: Bool("active", true), wantKey: "active"},
		{name: "Any字段", field: Any("data", map[string]int{"a": 1}), wantKey: "data"},
		{name: "Error字段", field: Error(errors.New("test error")), wantKey: "error"},
		{name: "Duration字段", field: Duration("elapsed", time.Second), wantKey: "elapsed"},
		{name: "Component字段", field: Component("ocp"), wantKey: "component"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.wantKey {
				t.Errorf("Key = %s, 期望 %s", tt.field.Key, tt.wantKey)
			}
			if tt.field.Value == nil {
				t.Error("Value为nil")
			}
		})
	}
}

// TestFormatValue 测试值格式化
func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "字符串", value: "test", want: "test"},
		{name: "错误", value: errors.New("error message"), want: "error message"},
		{name: "整数", value: 123, want: "123"},
		{name: "布尔值", value: true, want: "true"},
		{name: "Stringer", value: WarnLevel, want: "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatValue(tt.value); got != tt.want {
				t.Errorf("formatValue() = %s, 期望 %s", got, tt.want)
			}
		})
	}
}

// TestParseLevel 测试级别解析
func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", DebugLevel, true},
		{"INFO", InfoLevel, true},
		{"", InfoLevel, true},
		{"warning", WarnLevel, true},
		{"error", ErrorLevel, true},
		{"loud", InfoLevel, false},
	}
	for _, c := range cases {
		got, ok := ParseLevel(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseLevel(%q) = (%v, %v), 期望 (%v, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

// TestStdLogger_Levels 测试各级别输出格式
func TestStdLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStdLoggerTo(&buf, "test", DebugLevel)
	ctx := context.Background()

	logger.Debug(ctx, "debug message", String("key", "value"))
	logger.Info(ctx, "info message", Int("count", 123))
	logger.Warn(ctx, "warn message", Bool("critical", true))
	logger.Error(ctx, "error message", Error(errors.New("boom")))

	output := buf.String()
	for _, want := range []string{
		"[DEBUG] test debug message key=value",
		"[INFO] test info message count=123",
		"[WARN] test warn message critical=true",
		"[ERROR] test error message error=boom",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("输出不包含 %q:\n%s", want, output)
		}
	}
}

// TestStdLogger_LevelFilter 测试低于阈值的日志被丢弃
func TestStdLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStdLoggerTo(&buf, "", WarnLevel)
	ctx := context.Background()

	logger.Debug(ctx, "hidden debug")
	logger.Info(ctx, "hidden info")
	logger.Warn(ctx, "shown warn")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("低级别日志不应输出: %s", output)
	}
	if !strings.Contains(output, "shown warn") {
		t.Errorf("Warn 日志应输出: %s", output)
	}
}

// TestStdLogger_WithFields 测试字段继承且不影响原 Logger
func TestStdLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	base := NewStdLoggerTo(&buf, "", InfoLevel)
	child := base.WithFields(Component("dip"))

	child.Info(context.Background(), "child")
	base.Info(context.Background(), "base")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("期望 2 行日志, 实际 %d", len(lines))
	}
	if !strings.Contains(lines[0], "component=dip") {
		t.Errorf("子 Logger 缺少字段: %s", lines[0])
	}
	if strings.Contains(lines[1], "component=dip") {
		t.Errorf("原 Logger 不应被修改: %s", lines[1])
	}
}

// TestGlobalLogger 测试全局 Logger 的设置与获取
func TestGlobalLogger(t *testing.T) {
	original := GetLogger()
	defer SetLogger(original)

	noop := NewNoopLogger()
	SetLogger(noop)
	if GetLogger() != Logger(noop) {
		t.Error("SetLogger 未生效")
	}

	SetLogger(nil)
	if GetLogger() != Logger(noop) {
		t.Error("SetLogger(nil) 不应覆盖现有 Logger")
	}

	var buf bytes.Buffer
	SetLogger(NewStdLoggerTo(&buf, "", InfoLevel))
	ComponentLogger("srp").Info(context.Background(), "hello")
	if !strings.Contains(buf.String(), "component=srp") {
		t.Errorf("ComponentLogger 缺少 component 字段: %s", buf.String())
	}
}
