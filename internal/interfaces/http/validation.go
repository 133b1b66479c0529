package http

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate instancia compartida; los tags viven en los DTOs.
var validate = validator.New()

// validateStruct ejecuta los tags de validación y devuelve un mensaje legible
// con el primer campo que falla.
func validateStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}
	e := errs[0]
	return fmt.Errorf("campo '%s' no cumple la regla '%s'", e.Field(), e.Tag())
}
