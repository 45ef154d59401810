package internal

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoRecords          = errors.New("no records")

	ErrTooManyRequests = errors.New("too many requests")
	ErrUnavailable     = errors.New("online payment unavailable")
	ErrNoServerID      = errors.New("order has no server id")

	ErrInvalidLineAmount = errors.New("online payment line with non-positive amount")
	ErrAmountMismatch    = errors.New("remaining online payments exceed unpaid amount")

	ErrOrderLocked = errors.New("order is being validated")
)

// Fault codes the authority uses for invoicing failures on draft push.
const (
	InvoicingFaultCode        = 700
	InvoicingFaultCodeAccount = 701
)

// TransportError is a failure reaching the authority or an unusable reply from it.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// InvoicingError is a draft push rejected with one of the invoicing fault codes.
type InvoicingError struct {
	Code    int
	Message string
}

func (e *InvoicingError) Error() string {
	return fmt.Sprintf("invoicing error %d: %s", e.Code, e.Message)
}

func isInvoicingCode(code int) bool {
	return code == InvoicingFaultCode || code == InvoicingFaultCodeAccount
}
