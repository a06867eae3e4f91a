package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	appErrors "github.com/noah-isme/student-control/pkg/errors"
)

var (
	sharedValidator *validator.Validate
	translator      ut.Translator
	validatorErr    error
	validatorOnce   sync.Once
)

// NewValidator returns the process-wide validator that reports fields by their
// JSON names with English messages. The translations live on a single translator,
// so they are registered only once.
func NewValidator() (*validator.Validate, error) {
	validatorOnce.Do(func() {
		sharedValidator, translator, validatorErr = buildValidator()
	})
	return sharedValidator, validatorErr
}

func defaultValidator() *validator.Validate {
	v, err := NewValidator()
	if err != nil {
		panic(fmt.Sprintf("service: validator setup: %v", err))
	}
	return v
}

func buildValidator() (*validator.Validate, ut.Translator, error) {
	english := en.New()
	trans, found := ut.New(english, english).GetTranslator("en")
	if !found {
		return nil, nil, errors.New("english translator not available")
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := enTranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, nil, fmt.Errorf("register default translations: %w", err)
	}

	// defaults are registered already, so the register func only has to be non-nil
	noop := func(ut.Translator) error { return nil }
	for _, tag := range []string{"required", "email", "datetime", "oneof"} {
		if err := v.RegisterTranslation(tag, trans, noop, translateFieldError); err != nil {
			return nil, nil, fmt.Errorf("register %s translation: %w", tag, err)
		}
	}
	return v, trans, nil
}

func validationError(err error, subject string) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, fmt.Sprintf("invalid %s payload", subject))
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Translate(translator))
	}
	message := fmt.Sprintf("invalid %s payload: %s", subject, strings.Join(msgs, "; "))
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
}

func translateFieldError(_ ut.Translator, fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "datetime":
		return field + " must be a date in YYYY-MM-DD format"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return field + " is invalid"
	}
}
