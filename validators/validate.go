package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates v by its `validate` tags and returns field errors keyed by
// json path (e.g. "list[1].id"). A nil map means v is valid.
func Struct(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"body": "Invalid request body!"}
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		key := fe.Namespace()
		if i := strings.Index(key, "."); i >= 0 {
			key = key[i+1:]
		}
		out[key] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	name := fe.Field()
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required!", name)
	case "min":
		switch fe.Kind() {
		case reflect.Slice:
			return fmt.Sprintf("%s must contain at least %s item(s)!", name, fe.Param())
		case reflect.String:
			return fmt.Sprintf("%s must be at least %s character(s) long!", name, fe.Param())
		default:
			return fmt.Sprintf("%s must be at least %s!", name, fe.Param())
		}
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s character(s) long!", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s!", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s!", name, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s!", name, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL!", name)
	default:
		return fmt.Sprintf("%s is invalid!", name)
	}
}
