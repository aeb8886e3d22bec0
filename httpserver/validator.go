package httpserver

import (
	"reflect"
	"strings"
	"time"

	"filmstore/errs"

	"github.com/go-playground/validator/v10"
)

const earliestReleaseYear = 1888 // year of the first surviving film

type CustomValidator struct {
	validate *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("releaseyear", validateReleaseYear)
	return &CustomValidator{validate: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validate.Struct(i); err != nil {
		return errs.Errorf(errs.EVALIDATION, "%s", formatValidationError(err))
	}
	return nil
}

// validateReleaseYear bounds a year between 1888 and five years past the
// current year. The upper bound moves with the clock, which a plain max tag
// cannot express.
func validateReleaseYear(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.Int {
		return false
	}
	year := int(fl.Field().Int())
	return year >= earliestReleaseYear && year <= time.Now().Year()+5
}

func formatValidationError(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		parts := make([]string, 0, len(errs))
		for _, fe := range errs {
			field := fe.Field()
			if field == "" {
				field = fe.StructField()
			}
			parts = append(parts, field+" failed on "+fe.Tag())
		}
		return "validation error: " + strings.Join(parts, "; ")
	}
	return "validation error"
}
