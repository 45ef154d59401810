package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type MethodKind string

const (
	MethodCash   MethodKind = "cash"
	MethodCard   MethodKind = "card"
	MethodOnline MethodKind = "online"
	MethodOther  MethodKind = "other"
)

type PaymentStatus string

const (
	PaymentStatusNone    PaymentStatus = ""
	PaymentStatusWaiting PaymentStatus = "waiting"
	PaymentStatusDone    PaymentStatus = "done"
)

type PaymentMethod struct {
	ID   int        `json:"id"`
	Name string     `json:"name"`
	Kind MethodKind `json:"kind"`
}

func (m PaymentMethod) IsOnline() bool {
	return m.Kind == MethodOnline
}

type PaymentLine struct {
	ID     int             `json:"id"`
	Method PaymentMethod   `json:"method"`
	Amount decimal.Decimal `json:"amount"`
	Status PaymentStatus   `json:"status,omitempty"`
}

// Snapshot is a point-in-time read of the authority's view of an order.
// It is never cached beyond the call that produced it.
type Snapshot struct {
	OrderID              int             `json:"id"`
	IsPaid               bool            `json:"is_paid"`
	AmountUnpaid         decimal.Decimal `json:"amount_unpaid"`
	ModifiedPaymentLines bool            `json:"modified_payment_lines"`
	PaidOrder            *PaidOrder      `json:"paid_order,omitempty"`
}

// Instrument is the QR payload issued for one amount of one server order.
type Instrument struct {
	OrderID   int             `json:"orderID"`
	Amount    decimal.Decimal `json:"amount"`
	Data      string          `json:"data"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

func (i Instrument) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}
