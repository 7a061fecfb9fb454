package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Кастомные теги для географических координат
	_ = validate.RegisterValidation("lat", func(fl validator.FieldLevel) bool {
		v := fl.Field().Float()
		return v >= -90 && v <= 90
	})
	_ = validate.RegisterValidation("lng", func(fl validator.FieldLevel) bool {
		v := fl.Field().Float()
		return v >= -180 && v <= 180
	})
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
