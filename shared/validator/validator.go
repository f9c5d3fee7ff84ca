package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"salon/shared/constant"
	"salon/shared/failure"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

var (
	validate *val.Validate

	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ]{7,18}[0-9]$`)
)

func registerPhoneValidation(field val.FieldLevel) bool {
	return phonePattern.MatchString(strings.TrimSpace(field.Field().String()))
}

func registerDayValidation(field val.FieldLevel) bool {
	_, err := time.Parse(constant.DayFormat, field.Field().String())

	return err == nil
}

func registerClockValidation(field val.FieldLevel) bool {
	value := field.Field().String()
	if len(value) != len(constant.ClockFormat) {
		return false
	}

	_, err := time.Parse(constant.ClockFormat, value)

	return err == nil
}

func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0] //nolint:mnd
	if name == "-" || name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})

	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("phone", registerPhoneValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("day", registerDayValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("clock", registerClockValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

// FieldErrors validates data and returns one message per invalid field, keyed by json name.
// A nil map means the struct is valid.
func FieldErrors[T any](data *T) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return map[string]string{constant.Empty: err.Error()}
	}

	fields := make(map[string]string, len(valErrors))
	for _, valErr := range valErrors {
		if _, ok := fields[valErr.Field()]; ok {
			continue
		}

		fields[valErr.Field()] = fieldMessage(valErr)
	}

	return fields
}
