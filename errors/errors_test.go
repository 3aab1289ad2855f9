package errors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosolid/logging"
)

func TestAppError_Format(t *testing.T) {
	assert.Equal(t, "[NOT_FOUND] 人员未找到", NewError(ErrCodeNotFound, "人员未找到").Error())
	assert.Equal(t, `[INVALID_INPUT] unknown color "purple"`, Newf(ErrCodeInvalidInput, "unknown color %q", "purple").Error())

	err := WrapError(errors.New("disk full"), ErrCodeDatabase, "insert relation")
	assert.Equal(t, "[DATABASE_ERROR] insert relation: disk full", err.Error())
}

func TestWrapError_KeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := WrapError(cause, ErrCodeDatabase, "insert relation")

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, NewError(ErrCodeDatabase, "any message"))
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Nil(t, WrapError(nil, ErrCodeDatabase, "noop"))
}

func TestIs_ThroughFmtWrapping(t *testing.T) {
	err := fmt.Errorf("isp: %w", ErrNotSupported.WithContext("operation", "fax"))
	assert.ErrorIs(t, err, ErrNotSupported)
	assert.True(t, IsNotSupported(err))
}

func TestWithContext_CopiesAndRenders(t *testing.T) {
	base := NewError(ErrCodeValidation, "bad size")
	withCtx := base.WithContext("field", "size").WithContext("value", 0)

	assert.Equal(t, "[VALIDATION_ERROR] bad size (field=size, value=0)", withCtx.Error())
	assert.Equal(t, "[VALIDATION_ERROR] bad size", base.Error())
	assert.Equal(t, ErrCodeValidation, withCtx.Code())
}

func TestIsErrorCode(t *testing.T) {
	assert.True(t, IsNotFound(NewError(ErrCodeNotFound, "x")))
	assert.True(t, IsValidation(NewError(ErrCodeValidation, "x")))
	assert.True(t, IsNotSupported(ErrNotSupported))
	assert.False(t, IsErrorCode(errors.New("plain"), ErrCodeInternal))
	assert.False(t, IsErrorCode(nil, ErrCodeInternal))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrorCode(""), GetErrorCode(nil))
	assert.Equal(t, ErrCodeInternal, GetErrorCode(errors.New("plain")))
	assert.Equal(t, ErrCodeQueue, GetErrorCode(fmt.Errorf("isp: %w", WrapError(errors.New("x"), ErrCodeQueue, "publish"))))
}

func TestWrapDatabaseError(t *testing.T) {
	var buf bytes.Buffer
	original := logging.GetLogger()
	logging.SetLogger(logging.NewStdLoggerTo(&buf, "", logging.DebugLevel))
	defer logging.SetLogger(original)

	ctx := context.Background()
	assert.Nil(t, WrapDatabaseError(ctx, nil, "query"))

	err := WrapDatabaseError(ctx, errors.New("locked"), "query children")
	assert.True(t, IsErrorCode(err, ErrCodeDatabase))
	assert.Contains(t, buf.String(), "[WARN]")
	assert.Contains(t, buf.String(), "operation=query children")

	buf.Reset()
	assert.True(t, IsNotFound(WrapDatabaseError(ctx, ErrNotFound, "query")))
	assert.Empty(t, buf.String())
}
