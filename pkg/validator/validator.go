package validator

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"amigos-con-cola/pkg/date"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		d, ok := field.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}
		f, _ := d.Float64()
		return f
	}, decimal.Decimal{})

	// A zero date.Date counts as missing for "required".
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		d, ok := field.Interface().(date.Date)
		if !ok || d.IsZero() {
			return ""
		}
		return d.String()
	}, date.Date{})

	_ = v.RegisterValidation("max_decimals", maxDecimals)

	return &CustomValidator{
		validator: v,
	}
}

// maxDecimals limits the number of decimal places of a numeric field.
// decimal.Decimal fields arrive here already converted to float64.
func maxDecimals(fl validator.FieldLevel) bool {
	places, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		return decimal.NewFromFloat(field.Float()).Exponent() >= -int32(places)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	messages := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				messages[field] = field + " is required"
			case "url":
				messages[field] = field + " must be a valid URL"
			case "gt":
				messages[field] = field + " must be greater than " + e.Param()
			case "min":
				messages[field] = field + " must be at least " + e.Param()
			case "max":
				messages[field] = field + " must be at most " + e.Param()
			case "gte":
				messages[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				messages[field] = field + " must be less than or equal to " + e.Param()
			default:
				messages[field] = field + " is invalid"
			}
		}
	}

	return messages
}
