package util

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO 校验 DTO 上的 validate 标签。
// 返回的 validator.ValidationErrors 由 response.Error 统一转为字段级 400。
func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}
