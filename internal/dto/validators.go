package dto

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var companyCodePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// RegisterValidators installs the custom binding rules on gin's validator engine.
// It is safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return RegisterOn(v)
}

// RegisterOn installs the custom rules on v.
func RegisterOn(v *validator.Validate) error {
	// Report JSON field names in validation errors.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Validate decimals through their canonical string form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	if err := v.RegisterValidation("company_code", validateCompanyCode); err != nil {
		return err
	}
	if err := v.RegisterValidation("decimal_gt0", validateDecimalGreaterThanZero); err != nil {
		return err
	}
	return v.RegisterValidation("decimal_lte", validateDecimalAtMost)
}

func validateCompanyCode(fl validator.FieldLevel) bool {
	return companyCodePattern.MatchString(fl.Field().String())
}

func validateDecimalGreaterThanZero(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.IsPositive()
}

// validateDecimalAtMost checks the field against the decimal given as the tag param.
func validateDecimalAtMost(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	limit, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.LessThanOrEqual(limit)
}

// ValidationMessage turns a binding error into a single client-facing message.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		msgs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			msgs = append(msgs, fieldMessage(e))
		}
		return strings.Join(msgs, "; ")
	}
	return "invalid request body: " + err.Error()
}

func fieldMessage(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return field + " must be at most " + e.Param() + " characters"
	case "company_code":
		return field + " may contain only lowercase letters, digits, '-' and '_'"
	case "decimal_gt0":
		return field + " must be greater than 0"
	case "decimal_lte":
		return field + " must be at most " + e.Param()
	default:
		return field + " is invalid"
	}
}
