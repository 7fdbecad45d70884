package common

import (
	"errors"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/youta-t/flarc"
)

// AsUsage marks validation errors of api types as usage errors.
//
// Other errors are returned as is.
func AsUsage(err error) error {
	if err != nil && errors.Is(err, apierr.ErrInvalid) {
		return errors.Join(flarc.ErrUsage, err)
	}
	return err
}
