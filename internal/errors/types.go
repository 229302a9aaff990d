package errors

import "fmt"

type InvoiceErrorType int

const (
	UnknownError InvoiceErrorType = iota
	NoInvoiceError
	ReadInvoiceError
	DecodeInvoiceError
	NoPaymentRequestError
)

var errMap = map[InvoiceErrorType]InvoiceError{
	UnknownError:          unknown,
	NoInvoiceError:        noInvoice,
	ReadInvoiceError:      readInvoice,
	DecodeInvoiceError:    decodeInvoice,
	NoPaymentRequestError: noPaymentRequest,
}

var (
	unknown          = InvoiceError{Err: fmt.Errorf("unknown error")}
	noInvoice        = InvoiceError{Err: fmt.Errorf("no invoice generated yet")}
	readInvoice      = InvoiceError{Err: fmt.Errorf("could not read invoice text")}
	decodeInvoice    = InvoiceError{Err: fmt.Errorf("could not decode payment request")}
	noPaymentRequest = InvoiceError{Err: fmt.Errorf("no payment request in invoice text")}
)
