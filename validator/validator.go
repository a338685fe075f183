package validator

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"hotel-booking/constants"
	apperrors "hotel-booking/errors"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidate()

func newValidate() *playground.Validate {
	v := playground.New()
	v.SetTagName("binding")
	configure(v)
	return v
}

func configure(v *playground.Validate) {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	_ = v.RegisterValidation("date", func(fl playground.FieldLevel) bool {
		_, err := time.Parse(constants.DateLayout, fl.Field().String())
		return err == nil
	})
}

// RegisterGinValidations installs the custom tags on gin's binding engine.
func RegisterGinValidations() {
	if v, ok := binding.Validator.Engine().(*playground.Validate); ok {
		configure(v)
	}
}

// Struct validates s against its binding tags.
func Struct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return Translate(err)
	}
	return nil
}

// Translate converts binding and validation failures into a ValidationError.
func Translate(err error) error {
	ves, ok := err.(playground.ValidationErrors)
	if !ok {
		appErr := apperrors.Validation("Invalid request body")
		appErr.Err = err
		return appErr
	}
	fields := make(map[string]string, len(ves))
	var first string
	for _, fe := range ves {
		msg := fieldMessage(fe)
		if first == "" {
			first = msg
		}
		fields[fe.Field()] = msg
	}
	return apperrors.Validation(first).WithData("errors", fields)
}

func fieldMessage(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", fe.Field())
	case "date":
		return fmt.Sprintf("The %s field must be a date in YYYY-MM-DD format", fe.Field())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of [%s]", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("The %s field must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("The %s field may not be greater than %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address", fe.Field())
	default:
		return fmt.Sprintf("The %s field is invalid", fe.Field())
	}
}

// ValidateStay checks a check-in / check-out pair. today is the current
// calendar date; a zero today skips the not-in-the-past rule.
func ValidateStay(checkIn, checkOut, today time.Time) error {
	if !today.IsZero() && checkIn.Before(today) {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidDates, "The check in date must be today or a later date", nil)
	}
	if !checkOut.After(checkIn) {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidDates, "The check out date must be after the check in date", nil)
	}
	return nil
}

// ValidateAmount rejects negative money values.
func ValidateAmount(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidAmount, fmt.Sprintf("The %s must be at least 0", field), nil)
	}
	return nil
}

// UniqueIDs drops duplicates, keeping first-seen order.
func UniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
