package internal

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/DrGermanius/posqr/internal/model"
)

// amountPrecision is the currency rounding used when comparing totals.
const amountPrecision = 2

// HasOnlineMethodConfigured reports whether the session offers any online-capable method.
func HasOnlineMethodConfigured(s *model.Session) bool {
	if s == nil {
		return false
	}
	for _, pm := range s.PaymentMethods {
		if pm.IsOnline() {
			return true
		}
	}
	return false
}

// RemainingOnlineLines returns the online lines not yet done, in creation order.
func RemainingOnlineLines(o *model.Order) []*model.PaymentLine {
	var lines []*model.PaymentLine
	for _, l := range o.Lines {
		if l.Method.IsOnline() && l.Status != model.PaymentStatusDone {
			lines = append(lines, l)
		}
	}
	// Lines are appended in creation order, but an order decoded from a client may not be.
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })
	return lines
}

// CheckRemainingOnlineLines verifies the remaining online lines against the unpaid amount
// reported by the authority.
func CheckRemainingOnlineLines(o *model.Order, amountUnpaid decimal.Decimal) (decimal.Decimal, error) {
	remaining := decimal.Zero
	for _, l := range RemainingOnlineLines(o) {
		if !l.Amount.IsPositive() {
			return decimal.Zero, ErrInvalidLineAmount
		}
		remaining = remaining.Add(l.Amount)
	}

	diff := amountUnpaid.Sub(remaining).Round(amountPrecision)
	if !diff.IsZero() && amountUnpaid.LessThan(remaining) {
		return remaining, ErrAmountMismatch
	}
	return remaining, nil
}

// ResetWaitingLines puts every waiting line back to none.
func ResetWaitingLines(o *model.Order) {
	for _, l := range o.Lines {
		if l.Status == model.PaymentStatusWaiting {
			l.Status = model.PaymentStatusNone
		}
	}
}
