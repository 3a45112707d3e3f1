package matrix

import (
	"errors"
	"fmt"
)

// ErrCodeSingularMatrix identifies the singular-matrix error category.
const ErrCodeSingularMatrix = "SINGULAR_MATRIX"

// SingularMatrixError reports an inverse requested on a combined matrix
// with no inverse, e.g. one containing scale(0).
type SingularMatrixError struct {
	// Det is the (near-zero) determinant of the offending matrix.
	Det float64
}

// Error implements the error interface.
func (e *SingularMatrixError) Error() string {
	return fmt.Sprintf("%s: combined transformation matrix is not invertible (det=%g)", ErrCodeSingularMatrix, e.Det)
}

// IsSingularError returns true if the error reports a non-invertible
// matrix. Uses errors.As to handle wrapped errors.
func IsSingularError(err error) bool {
	var se *SingularMatrixError
	return errors.As(err, &se)
}

// NewSingularMatrixError creates a SingularMatrixError for the given
// determinant.
func NewSingularMatrixError(det float64) *SingularMatrixError {
	return &SingularMatrixError{Det: det}
}
