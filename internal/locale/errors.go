package locale

import (
	"errors"
	"fmt"
)

// ErrLocaleNotFound 语言包不存在或无法加载
var ErrLocaleNotFound = errors.New("locale not found")

// NotFoundError 指明加载失败的语言，Cause 为加载器返回的原始错误
type NotFoundError struct {
	Locale Locale
	Cause  error
}

func (e *NotFoundError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("locale %q not found", string(e.Locale))
	}
	return fmt.Sprintf("locale %q not found: %v", string(e.Locale), e.Cause)
}

func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrLocaleNotFound
}

func notFound(l Locale, cause error) error {
	var nf *NotFoundError
	if errors.As(cause, &nf) && nf.Locale == l {
		return nf
	}
	return &NotFoundError{Locale: l, Cause: cause}
}
