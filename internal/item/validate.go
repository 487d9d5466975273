package item

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/NumeneraItems_Go/internal/domain"
	"github.com/osse101/NumeneraItems_Go/internal/tables"
)

var payloadValidator = newPayloadValidator()

func newPayloadValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("enum", validateEnum)
	return v
}

// validateEnum checks a string field against the table named by the tag
// parameter, e.g. `validate:"enum=weightClasses"`.
func validateEnum(fl validator.FieldLevel) bool {
	table, ok := tables.All()[fl.Param()]
	if !ok {
		return false
	}
	return table.Has(fl.Field().String())
}

// Validate checks the typed payload of a prepared variant: enum fields must
// hold a table id and counters must be in range. Normalization keeps unknown
// enum values, so this is the strict check used on import.
func Validate(v Variant) error {
	holder, ok := v.(interface{ typed() any })
	if !ok {
		return &UnsupportedVariantError{Tag: v.Type()}
	}

	err := payloadValidator.Struct(holder.typed())
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidRecord, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s=%s)", fe.Namespace(), fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("%w: %s %q: %s", domain.ErrInvalidRecord, v.Type(), v.Name(), strings.Join(fields, ", "))
}
