package impl

import (
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/util"

	"github.com/pkg/errors"
)

//nolint:gochecknoglobals
var validate = util.NewValidator()

// validateInput checks input before any request is issued. Field failures
// become a validation error without an HTTP status.
func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	if fields, ok := util.FieldErrors(err); ok {
		return domainerrors.NewValidationError(0, "", fields)
	}

	return errors.Wrap(err, "failed to validate input")
}
