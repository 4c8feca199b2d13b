package rest

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// requestValidator echo.Validatorの実装
type requestValidator struct {
	validate *validator.Validate
}

// newRequestValidator フィールド名にJSONタグ名を使うバリデーターを作成
func newRequestValidator() *requestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return &requestValidator{validate: v}
}

// Validate 構造体のvalidateタグを検証
func (rv *requestValidator) Validate(i interface{}) error {
	return rv.validate.Struct(i)
}
