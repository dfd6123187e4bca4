package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// 错误类别，配合 errors.Is 判断失败发生在哪个环节
var (
	ErrInputNotFound = errors.New("input not found")
	ErrScoring       = errors.New("scoring failure")
	ErrWrite         = errors.New("write failure")
	ErrRender        = errors.New("render failure")
	ErrConfig        = errors.New("invalid config")
)

// KindError 携带错误类别与底层原因
type KindError struct {
	kind  error
	msg   string
	cause error
}

// NewKindError 构造带类别的错误，errors.Is 对 kind 与 cause 均成立
func NewKindError(kind, cause error, format string, args ...interface{}) error {
	return &KindError{
		kind:  kind,
		msg:   fmt.Sprintf(format, args...),
		cause: cause,
	}
}

func (e *KindError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%s: %s", e.kind, e.msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.kind, e.msg, e.cause)
}

// Kind 返回错误类别
func (e *KindError) Kind() error {
	return e.kind
}

func (e *KindError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}
