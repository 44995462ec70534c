package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"uberdirect/pkg/uberdirect/uberr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// в ошибках хотим видеть имена полей как на проводе
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate проверяет теги validate у запроса. Ошибка всегда KindBadInput.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return uberr.Wrap(uberr.KindBadInput, "validate request", err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fieldPath(fe)+" ("+fe.Tag()+")")
	}
	return uberr.Wrap(uberr.KindBadInput, "invalid fields: "+strings.Join(fields, ", "), err)
}

// fieldPath отрезает имя корневой структуры: CreateDeliveryRequest.manifest_items[0].name -> manifest_items[0].name
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
