// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var peselWeights = [10]int{1, 3, 7, 9, 1, 3, 7, 9, 1, 3}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator with the project's custom tags registered.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("pesel", validatePesel)

	return &CustomValidator{validate: v}
}

// Validate runs struct validation and flattens field errors into one message.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fe.Field()+": "+fe.Tag())
	}

	return errors.New(strings.Join(messages, ", "))
}

func validatePesel(fl validator.FieldLevel) bool {
	return IsValidPesel(fl.Field().String())
}

// IsValidPesel checks the length, digits and control digit of a PESEL number.
func IsValidPesel(pesel string) bool {
	if len(pesel) != 11 {
		return false
	}

	sum := 0
	for i := range 11 {
		c := pesel[i]
		if c < '0' || c > '9' {
			return false
		}
		if i < 10 {
			sum += int(c-'0') * peselWeights[i]
		}
	}

	control := (10 - sum%10) % 10

	return control == int(pesel[10]-'0')
}
