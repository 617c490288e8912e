package taxonomy

import (
	perr "taller/internal/platform/errors"
)

// Unavailable wraps a source failure as a taxonomy unavailable error
// It maps to 503 at the HTTP edge and must never be replaced by an empty result
func Unavailable(kind Kind, err error) error {
	return perr.WithOp(perr.Wrapf(err, perr.ErrorCodeUnavailable, "taxonomy unavailable: %s", kind), "taxonomy.load")
}

// IsUnavailable reports whether err came from a failed taxonomy load
func IsUnavailable(err error) bool {
	e, ok := perr.As(err)
	return ok && e.Code() == perr.ErrorCodeUnavailable && e.Op() == "taxonomy.load"
}
