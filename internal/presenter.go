package internal

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DrGermanius/posqr/internal/model"
)

//go:generate mockgen -source=presenter.go -destination=mock/presenter.go

// Presenter shows an instrument to the customer and blocks until the operator cancels, the
// authority reports settlement, or the display times out. Transport failures are returned.
type Presenter interface {
	DisplayInstrumentAndAwait(ctx context.Context, o *model.Order, inst *model.Instrument, amount decimal.Decimal) (*model.Snapshot, error)
}

type InstrumentStore interface {
	SaveInstrument(ctx context.Context, orderUID string, inst *model.Instrument) error
}

// DisplayRegistry tracks the instrument currently shown for each order.
type DisplayRegistry struct {
	mu     sync.Mutex
	active map[string]*display
}

type display struct {
	instrument model.Instrument
	cancel     chan struct{}
	once       sync.Once
}

func NewDisplayRegistry() *DisplayRegistry {
	return &DisplayRegistry{active: make(map[string]*display)}
}

func (r *DisplayRegistry) Active(orderUID string) (model.Instrument, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.active[orderUID]
	if !ok {
		return model.Instrument{}, false
	}
	return d.instrument, true
}

// Cancel ends the display for an order. It reports whether one was active.
func (r *DisplayRegistry) Cancel(orderUID string) bool {
	r.mu.Lock()
	d, ok := r.active[orderUID]
	r.mu.Unlock()

	if !ok {
		return false
	}
	d.once.Do(func() { close(d.cancel) })
	return true
}

func (r *DisplayRegistry) open(orderUID string, inst model.Instrument) (<-chan struct{}, func()) {
	d := &display{instrument: inst, cancel: make(chan struct{})}

	r.mu.Lock()
	r.active[orderUID] = d
	r.mu.Unlock()

	return d.cancel, func() {
		r.mu.Lock()
		if r.active[orderUID] == d {
			delete(r.active, orderUID)
		}
		r.mu.Unlock()
	}
}

// PollingPresenter publishes the instrument through a DisplayRegistry and polls the authority
// until the instrument's amount is collected.
type PollingPresenter struct {
	authority IAuthority
	store     InstrumentStore
	registry  *DisplayRegistry
	logger    *zap.SugaredLogger
	interval  time.Duration
	timeout   time.Duration
}

func NewPollingPresenter(authority IAuthority, store InstrumentStore, registry *DisplayRegistry, logger *zap.SugaredLogger, interval, timeout time.Duration) *PollingPresenter {
	return &PollingPresenter{
		authority: authority,
		store:     store,
		registry:  registry,
		logger:    logger,
		interval:  interval,
		timeout:   timeout,
	}
}

func (p *PollingPresenter) DisplayInstrumentAndAwait(ctx context.Context, o *model.Order, inst *model.Instrument, amount decimal.Decimal) (*model.Snapshot, error) {
	if err := p.store.SaveInstrument(ctx, o.UID, inst); err != nil {
		p.logger.Warnf("SaveInstrument error: %s", err.Error())
	}

	cancelled, closeDisplay := p.registry.open(o.UID, *inst)
	defer closeDisplay()

	baseline, err := p.poll(ctx, inst.OrderID, amount)
	if err != nil {
		return nil, err
	}
	if baseline.IsPaid || baseline.ModifiedPaymentLines {
		return baseline, nil
	}
	target := baseline.AmountUnpaid.Sub(amount)

	deadline := time.Now().Add(p.timeout)
	if !inst.ExpiresAt.IsZero() && inst.ExpiresAt.Before(deadline) {
		deadline = inst.ExpiresAt
	}
	timer := time.NewTimer(time.Until(deadline))
	defer timer.Stop()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	last := baseline
	for {
		select {
		case <-ctx.Done():
			return last, ctx.Err()
		case <-cancelled:
			p.logger.Infof("Display of order %s cancelled by operator", o.UID)
			return last, nil
		case <-timer.C:
			p.logger.Infof("Display of order %s timed out", o.UID)
			return last, nil
		case <-ticker.C:
			snap, err := p.poll(ctx, inst.OrderID, amount)
			if err != nil {
				return last, err
			}
			last = snap
			if snap.IsPaid || snap.ModifiedPaymentLines || snap.AmountUnpaid.LessThanOrEqual(target) {
				return snap, nil
			}
		}
	}
}

// poll refreshes with the displayed amount; the authority takes the refreshed amount as the
// next online payment it expects.
func (p *PollingPresenter) poll(ctx context.Context, serverOrderID int, amount decimal.Decimal) (*model.Snapshot, error) {
	snap, err := p.authority.RefreshSnapshot(ctx, serverOrderID, amount)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, ErrUnavailable
	}
	return snap, nil
}
