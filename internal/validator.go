package internal

import (
	"context"

	"github.com/DrGermanius/posqr/internal/model"
)

//go:generate mockgen -source=validator.go -destination=mock/validator.go

// OrderValidator decides whether an order may go on to local finalization.
type OrderValidator interface {
	Validate(ctx context.Context, s *model.Session, o *model.Order) model.Decision
}

// BaseValidator holds the local consistency rules every order must pass.
type BaseValidator struct{}

func (BaseValidator) Validate(_ context.Context, _ *model.Session, o *model.Order) model.Decision {
	if o == nil || len(o.Lines) == 0 {
		return model.Reject(model.ReasonInvalidOrder)
	}

	for _, l := range o.Lines {
		if l.Amount.IsNegative() {
			return model.Reject(model.ReasonInvalidOrder)
		}
	}

	if o.PaidTotal().LessThan(o.AmountTotal) {
		return model.Reject(model.ReasonInvalidOrder)
	}

	return model.Accept()
}
