package handlers

import (
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerCustomValidators wires domain validations into gin's binding layer.
// "placa" rejects plates that are empty once whitespace is stripped.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("placa", func(fl validator.FieldLevel) bool {
			return domain.NormalizarPlaca(fl.Field().String()) != ""
		})
	}
}
