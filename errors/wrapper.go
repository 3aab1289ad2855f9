package errors

import (
	"context"

	"gosolid/logging"
)

// WrapDatabaseError 包装数据库错误并记录警告；NOT_FOUND 保持原错误码且不记录
func WrapDatabaseError(ctx context.Context, err error, operation string) error {
	if err == nil {
		return nil
	}
	if IsNotFound(err) {
		return WrapError(err, ErrCodeNotFound, operation)
	}

	logging.ComponentLogger("db").Warn(ctx, "database operation failed",
		logging.String("operation", operation),
		logging.Error(err))
	return WrapError(err, ErrCodeDatabase, operation)
}
