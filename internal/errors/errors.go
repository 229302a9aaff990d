package errors

import (
	"encoding/json"
	stderrors "errors"
)

func New(code InvoiceErrorType, err error) InvoiceError {
	return InvoiceError{Err: err, Message: err.Error(), Code: code}
}

// Create returns the predefined error for code.
func Create(code InvoiceErrorType) InvoiceError {
	e, ok := errMap[code]
	if !ok {
		e = unknown
	}
	e.Code = code
	e.Message = e.Err.Error()
	return e
}

type InvoiceError struct {
	Message string           `json:"message"`
	Err     error            `json:"-"`
	Code    InvoiceErrorType `json:"code"`
}

func (e InvoiceError) Error() string {
	j, err := json.Marshal(&e)
	if err != nil {
		return e.Message
	}
	return string(j)
}

func (e InvoiceError) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain is an InvoiceError with the given code.
func Is(err error, code InvoiceErrorType) bool {
	var e InvoiceError
	if !stderrors.As(err, &e) {
		return false
	}
	return e.Code == code
}
