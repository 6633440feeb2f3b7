package services

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

var oneofParams = regexp.MustCompile(`'[^']*'|\S+`)

// validateStruct runs the struct's validate tags and converts failures into a *ValidationError.
// Fields named in except are skipped.
func validateStruct(s interface{}, except ...string) error {
	var err error
	if len(except) > 0 {
		err = validate.StructExcept(s, except...)
	} else {
		err = validate.Struct(s)
	}
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Fields: []FieldError{{Field: "", Message: err.Error()}}}
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: getErrorMessage(fe)})
	}
	return out
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " is required"
	case "oneof":
		vals := oneofParams.FindAllString(err.Param(), -1)
		for i, v := range vals {
			vals[i] = strings.Trim(v, "'")
		}
		return err.Field() + " must be one of: " + strings.Join(vals, ", ")
	case "datetime":
		return err.Field() + " must be a date in the format YYYY-MM-DD"
	case "min":
		return err.Field() + " must be at least " + err.Param() + " characters"
	case "max":
		return err.Field() + " must be at most " + err.Param() + " characters"
	case "gt":
		return err.Field() + " must be greater than " + err.Param()
	case "gte":
		return err.Field() + " must be greater than or equal to " + err.Param()
	case "lte":
		return err.Field() + " must be less than or equal to " + err.Param()
	case "gtefield":
		return err.Field() + " must not be before " + err.Param()
	default:
		return err.Field() + " is invalid"
	}
}
