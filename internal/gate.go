package internal

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DrGermanius/posqr/internal/model"
)

type GateDeps struct {
	Authority IAuthority
	Store     OrderStore
	Presenter Presenter
	Notifier  Notifier
	Completer Completer
	Logger    *zap.SugaredLogger
	Now       func() time.Time
}

// OnlinePaymentGate wraps an OrderValidator and holds local finalization back until the
// authority has settled, or has no claim on, every online payment line.
// A gate runs one validation at a time per order; callers serialize per order.
type OnlinePaymentGate struct {
	next OrderValidator
	deps GateDeps
}

func NewOnlinePaymentGate(next OrderValidator, deps GateDeps) *OnlinePaymentGate {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &OnlinePaymentGate{next: next, deps: deps}
}

// Valid reports whether the caller should continue with local finalization. A false result
// also covers orders the authority already finalized; see Validate for the reason.
func (g *OnlinePaymentGate) Valid(ctx context.Context, s *model.Session, o *model.Order) bool {
	return g.Validate(ctx, s, o).Accepted
}

func (g *OnlinePaymentGate) Validate(ctx context.Context, s *model.Session, o *model.Order) model.Decision {
	if d := g.next.Validate(ctx, s, o); !d.Accepted {
		return d
	}

	if !HasOnlineMethodConfigured(s) {
		return model.Accept()
	}

	if o.Finalized {
		if err := g.deps.Completer.AfterOrderValidation(ctx, o); err != nil {
			g.deps.Logger.Errorf("AfterOrderValidation error: %s", err.Error())
		}
		return model.Reject(model.ReasonAlreadyFinalized)
	}

	lines := RemainingOnlineLines(o)
	if len(lines) > 0 {
		return g.collect(ctx, o, lines)
	}

	if o.HasServerID() {
		return g.reconcile(ctx, o)
	}

	return model.Accept()
}

// collect pushes the draft then walks the unpaid online lines one instrument at a time.
func (g *OnlinePaymentGate) collect(ctx context.Context, o *model.Order, lines []*model.PaymentLine) model.Decision {
	if d, ok := g.pushDraft(ctx, o); !ok {
		return d
	}

	var (
		prev *model.PaymentLine
		last *model.Snapshot
	)
	for _, line := range lines {
		if ctx.Err() != nil {
			return g.cancel(o)
		}

		snap, err := g.refresh(ctx, *o.ServerID, line.Amount)
		if err != nil {
			return g.unavailable(ctx, o, "RefreshSnapshot", err)
		}
		last = snap

		if snap.IsPaid {
			// Another channel settled the order first.
			break
		}

		// Requested before the modified-lines check; the authority expects this call order.
		inst, err := g.deps.Authority.RequestInstrument(ctx, snap.OrderID, line.Amount)
		if err == nil && inst == nil {
			err = ErrUnavailable
		}
		if err != nil {
			return g.unavailable(ctx, o, "RequestInstrument", err)
		}

		if snap.ModifiedPaymentLines {
			return g.modified(ctx, o)
		}

		if prev != nil && prev.Status != model.PaymentStatusDone {
			ResetWaitingLines(o)
			g.deps.Notifier.NotifyUnavailable(ctx, "The previous online payment was not completed.")
			return model.Reject(model.ReasonStopped)
		}

		if remaining, err := CheckRemainingOnlineLines(o, snap.AmountUnpaid); err != nil {
			g.deps.Logger.Warnf("Order %s: %s (remaining %s, unpaid %s)", o.UID, err.Error(), remaining, snap.AmountUnpaid)
			ResetWaitingLines(o)
			g.deps.Notifier.NotifyAmountMismatch(ctx, remaining, snap.AmountUnpaid)
			return model.Reject(model.ReasonStopped)
		}

		res, err := g.await(ctx, o, line, inst, snap)
		if err != nil {
			return g.unavailable(ctx, o, "DisplayInstrumentAndAwait", err)
		}
		if ctx.Err() != nil {
			return g.cancel(o)
		}
		prev = line

		if res == nil {
			continue
		}
		last = res
		if res.IsPaid {
			break
		}
		if res.ModifiedPaymentLines {
			return g.modified(ctx, o)
		}
	}

	if last == nil || !last.IsPaid {
		snap, err := g.refresh(ctx, *o.ServerID, decimal.Zero)
		if err != nil {
			if ctx.Err() != nil {
				return g.cancel(o)
			}
			g.deps.Logger.Warnf("Order %s final refresh error: %s", o.UID, err.Error())
			return model.Reject(model.ReasonNotYetPaid)
		}
		last = snap
	}

	if !last.IsPaid {
		return model.Reject(model.ReasonNotYetPaid)
	}

	return g.complete(ctx, o, last)
}

// await shows the instrument for one line and settles the line's local status from the result.
func (g *OnlinePaymentGate) await(ctx context.Context, o *model.Order, line *model.PaymentLine, inst *model.Instrument, before *model.Snapshot) (*model.Snapshot, error) {
	line.Status = model.PaymentStatusWaiting
	o.SelectLine(line)

	res, err := g.deps.Presenter.DisplayInstrumentAndAwait(ctx, o, inst, line.Amount)
	if err == nil && settled(before, res, line.Amount) {
		line.Status = model.PaymentStatusDone
	}
	if line.Status == model.PaymentStatusWaiting {
		line.Status = model.PaymentStatusNone
	}
	return res, err
}

// settled reports whether the authority collected at least amount between before and after.
func settled(before, after *model.Snapshot, amount decimal.Decimal) bool {
	if after == nil {
		return false
	}
	if after.IsPaid {
		return true
	}
	return after.AmountUnpaid.LessThanOrEqual(before.AmountUnpaid.Sub(amount))
}

// reconcile handles an order with no unpaid online lines that was pushed before.
func (g *OnlinePaymentGate) reconcile(ctx context.Context, o *model.Order) model.Decision {
	snap, err := g.refresh(ctx, *o.ServerID, decimal.Zero)
	if err != nil {
		if ctx.Err() != nil {
			return g.cancel(o)
		}
		g.deps.Logger.Errorf("RefreshSnapshot error: %s", err.Error())
		if g.deps.Notifier.ConfirmNoOnlinePayment(ctx) {
			return model.Accept()
		}
		return model.Reject(model.ReasonNotConfirmed)
	}

	if snap.IsPaid {
		return g.complete(ctx, o, snap)
	}

	if snap.ModifiedPaymentLines {
		g.deps.Notifier.NotifyModifiedLines(ctx)
		return model.Reject(model.ReasonModifiedLines)
	}

	return model.Accept()
}

// refresh reads a fresh snapshot; an absent snapshot is reported as ErrUnavailable.
func (g *OnlinePaymentGate) refresh(ctx context.Context, serverOrderID int, amount decimal.Decimal) (*model.Snapshot, error) {
	snap, err := g.deps.Authority.RefreshSnapshot(ctx, serverOrderID, amount)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, ErrUnavailable
	}
	return snap, nil
}

func (g *OnlinePaymentGate) pushDraft(ctx context.Context, o *model.Order) (model.Decision, bool) {
	o.DateOrder = g.deps.Now()

	err := g.deps.Store.SaveOrder(ctx, o)
	if err == nil {
		err = g.deps.Store.MarkDirty(ctx, o.UID)
	}
	if err != nil {
		g.deps.Logger.Errorf("SaveOrder error: %s", err.Error())
		g.deps.Notifier.NotifySaveFailed(ctx)
		return model.Reject(model.ReasonSaveFailed), false
	}

	id, err := g.deps.Authority.PushDraftOrder(ctx, o)
	if err != nil {
		if ctx.Err() != nil {
			return g.cancel(o), false
		}
		g.deps.Logger.Errorf("PushDraftOrder error: %s", err.Error())

		var invErr *InvoicingError
		if errors.As(err, &invErr) {
			o.Error = true
			g.deps.Notifier.NotifyInvoicingError(ctx, invErr)
		}
		g.deps.Notifier.NotifySaveFailed(ctx)
		return model.Reject(model.ReasonSaveFailed), false
	}

	if id > 0 {
		o.ServerID = &id
	}
	if !o.HasServerID() {
		g.deps.Logger.Errorf("PushDraftOrder error: %s", ErrNoServerID.Error())
		g.deps.Notifier.NotifySaveFailed(ctx)
		return model.Reject(model.ReasonSaveFailed), false
	}

	return model.Accept(), true
}

func (g *OnlinePaymentGate) complete(ctx context.Context, o *model.Order, snap *model.Snapshot) model.Decision {
	if err := g.deps.Completer.CompleteOrderFromServer(ctx, o, snap.PaidOrder); err != nil {
		g.deps.Logger.Errorf("CompleteOrderFromServer error: %s", err.Error())
	}
	return model.Reject(model.ReasonHandledByServer)
}

func (g *OnlinePaymentGate) unavailable(ctx context.Context, o *model.Order, op string, err error) model.Decision {
	ResetWaitingLines(o)
	if ctx.Err() != nil {
		return g.cancel(o)
	}
	g.deps.Logger.Errorf("%s error: %s", op, err.Error())
	g.deps.Notifier.NotifyUnavailable(ctx, "There is a problem with the server. The order online payment status cannot be retrieved.")
	return model.Reject(model.ReasonUnavailable)
}

func (g *OnlinePaymentGate) modified(ctx context.Context, o *model.Order) model.Decision {
	ResetWaitingLines(o)
	g.deps.Notifier.NotifyModifiedLines(ctx)
	return model.Reject(model.ReasonModifiedLines)
}

// cancel drops local waiting state. The pushed draft stays on the authority.
func (g *OnlinePaymentGate) cancel(o *model.Order) model.Decision {
	ResetWaitingLines(o)
	g.deps.Logger.Infof("Online payment for order %s cancelled", o.UID)
	return model.Reject(model.ReasonCancelled)
}
