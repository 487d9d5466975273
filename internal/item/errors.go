package item

import (
	"fmt"

	"github.com/osse101/NumeneraItems_Go/internal/domain"
)

// UnsupportedVariantError reports a record whose type tag has no variant.
// It unwraps to domain.ErrUnsupportedVariant.
type UnsupportedVariantError struct {
	Tag domain.TypeTag
}

func (e *UnsupportedVariantError) Error() string {
	return fmt.Sprintf("%s for create(): %q", domain.ErrMsgUnsupportedVariant, string(e.Tag))
}

func (e *UnsupportedVariantError) Unwrap() error {
	return domain.ErrUnsupportedVariant
}
