package httperr

import (
	"errors"
	"strings"
)

// BusinessError is a rule violation the client can act on. Code is sent as
// error_code.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// CodeOf returns the business code carried anywhere in err's chain.
func CodeOf(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

func IsBusiness(err error, code string) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}

// IsNotFound is true for business codes ending in _not_found.
func IsNotFound(err error) bool {
	c, ok := CodeOf(err)
	return ok && isNotFoundCode(c)
}

func isNotFoundCode(code string) bool {
	return strings.HasSuffix(code, "_not_found")
}
