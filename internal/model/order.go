package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	UID            string          `json:"uid"`
	Number         int64           `json:"number"`
	ServerID       *int            `json:"serverID,omitempty"`
	Finalized      bool            `json:"finalized"`
	Error          bool            `json:"error"`
	AmountTotal    decimal.Decimal `json:"amountTotal"`
	Lines          []*PaymentLine  `json:"lines"`
	SelectedLineID int             `json:"selectedLineID,omitempty"`
	DateOrder      time.Time       `json:"dateOrder"`
}

func (o *Order) HasServerID() bool {
	return o.ServerID != nil
}

func (o *Order) SelectLine(l *PaymentLine) {
	o.SelectedLineID = l.ID
}

// PaidTotal sums every line regardless of method or status.
func (o *Order) PaidTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.Lines {
		total = total.Add(l.Amount)
	}
	return total
}

// PaidOrder is the order as materialized by the authority once it is fully paid.
type PaidOrder struct {
	ID          int             `json:"id"`
	Reference   string          `json:"reference"`
	State       string          `json:"state"`
	AmountTotal decimal.Decimal `json:"amountTotal"`
	AmountPaid  decimal.Decimal `json:"amountPaid"`
}
