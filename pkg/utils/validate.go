package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// 语言标识：2-3 位语言代码，后接若干 2-8 位子标签，例如 en-nz、zh-hant-tw
var localeTagPattern = regexp.MustCompile(`(?i)^[a-z]{2,3}(-[a-z0-9]{2,8})*$`)

// ValidateLocaleTag 校验语言标识格式，只检查格式，不检查是否受支持
func ValidateLocaleTag(tag string) error {
	if tag == "" {
		return fmt.Errorf("error.locale_required")
	}
	if ContainsWhitespace(tag) {
		return fmt.Errorf("error.locale_cannot_contain_spaces")
	}
	if !localeTagPattern.MatchString(tag) {
		return fmt.Errorf("error.locale_invalid")
	}
	return nil
}

func ContainsWhitespace(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// RegisterValidators 向 gin 的 validator 注册自定义标签，可重复调用
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return v.RegisterValidation("localetag", func(fl validator.FieldLevel) bool {
		return ValidateLocaleTag(fl.Field().String()) == nil
	})
}

// BindingMessageID 从校验失败字段的 msg 标签取提示信息 ID，没有时返回空串
func BindingMessageID(req any, err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return ""
	}
	t := reflect.TypeOf(req)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for _, e := range validationErrs {
		field, ok := t.FieldByName(e.StructField())
		if !ok {
			continue
		}
		if msg := field.Tag.Get("msg"); msg != "" {
			return msg
		}
	}
	return ""
}
