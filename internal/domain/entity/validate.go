package entity

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/blackwoods-compta/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// decimal.Decimal se valida como número (gt, gte, ...).
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("inventorycategory", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == CategoryRawMaterial || s == CategoryPreparedDish
	})
	return v
}

// Validate comprueba las reglas declaradas en las etiquetas `validate` de la entidad.
// Devuelve un error que envuelve domain.ErrValidation con el primer campo inválido.
func Validate(e interface{}) error {
	err := validate.Struct(e)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%s (%s%s): %w", fe.Namespace(), fe.Tag(), paramSuffix(fe.Param()), domain.ErrValidation)
	}
	return fmt.Errorf("%v: %w", err, domain.ErrValidation)
}

func paramSuffix(p string) string {
	if p == "" {
		return ""
	}
	return "=" + p
}
