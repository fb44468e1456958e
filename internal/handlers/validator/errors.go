package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ErrInvalidField struct {
	error
}

func NewErrInvalidField(format string, args ...any) *ErrInvalidField {
	return &ErrInvalidField{fmt.Errorf(format, args...)}
}

// toErrInvalidField turns the failed rules of a validation into one message naming every field.
func toErrInvalidField(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed on %q (%s)", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s: failed on %q", fe.Field(), fe.Tag()))
	}

	return NewErrInvalidField("invalid fields: %s", strings.Join(msgs, "; "))
}
