package test

import (
	"context"
	"errors"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/posqr/internal"
	mock_internal "github.com/DrGermanius/posqr/internal/mock"
	"github.com/DrGermanius/posqr/internal/model"
)

var _ = Describe("OnlinePaymentGate", func() {
	var (
		ctrl      *gomock.Controller
		auth      *mock_internal.MockIAuthority
		store     *mock_internal.MockOrderStore
		presenter *mock_internal.MockPresenter
		notifier  *mock_internal.MockNotifier
		completer *mock_internal.MockCompleter
		gate      *internal.OnlinePaymentGate
		ctx       context.Context
		now       time.Time
		inst      *model.Instrument
	)
	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		auth = mock_internal.NewMockIAuthority(ctrl)
		store = mock_internal.NewMockOrderStore(ctrl)
		presenter = mock_internal.NewMockPresenter(ctrl)
		notifier = mock_internal.NewMockNotifier(ctrl)
		completer = mock_internal.NewMockCompleter(ctrl)

		now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		gate = internal.NewOnlinePaymentGate(internal.BaseValidator{}, internal.GateDeps{
			Authority: auth,
			Store:     store,
			Presenter: presenter,
			Notifier:  notifier,
			Completer: completer,
			Logger:    logger.Sugar(),
			Now:       func() time.Time { return now },
		})
		ctx = context.Background()
		inst = &model.Instrument{OrderID: 42, Amount: decimal.NewFromInt(100), Data: "000201010212"}
	})
	AfterEach(func() {
		ctrl.Finish()
	})

	expectPush := func(o *model.Order, id int) {
		store.EXPECT().SaveOrder(ctx, o).Return(nil)
		store.EXPECT().MarkDirty(ctx, o.UID).Return(nil)
		auth.EXPECT().PushDraftOrder(ctx, o).Return(id, nil)
	}

	Context("Fast paths", func() {
		It("Accepts without remote calls when no online method is configured", func() {
			o := newOrder(paymentLine(1, cashMethod, 100))

			d := gate.Validate(ctx, cashSession(), o)
			Expect(d).Should(Equal(model.Accept()))
			Expect(gate.Valid(ctx, cashSession(), o)).Should(BeTrue())
		})
		It("Returns the inner rejection before any online logic", func() {
			o := newOrder()

			d := gate.Validate(ctx, onlineSession(), o)
			Expect(d).Should(Equal(model.Reject(model.ReasonInvalidOrder)))
		})
		It("Passes through the decorated validator's decision", func() {
			inner := mock_internal.NewMockOrderValidator(ctrl)
			decorated := internal.NewOnlinePaymentGate(inner, internal.GateDeps{
				Authority: auth,
				Store:     store,
				Presenter: presenter,
				Notifier:  notifier,
				Completer: completer,
				Logger:    zap.NewNop().Sugar(),
			})
			o := newOrder(paymentLine(1, qrMethod, 100))
			s := onlineSession()

			gomock.InOrder(
				inner.EXPECT().Validate(ctx, s, o).Return(model.Reject(model.ReasonInvalidOrder)),
				inner.EXPECT().Validate(ctx, s, o).Return(model.Accept()),
			)
			store.EXPECT().SaveOrder(ctx, o).Return(errors.New("disk full"))
			notifier.EXPECT().NotifySaveFailed(ctx)

			Expect(decorated.Validate(ctx, s, o)).Should(Equal(model.Reject(model.ReasonInvalidOrder)))
			Expect(decorated.Validate(ctx, s, o)).Should(Equal(model.Reject(model.ReasonSaveFailed)))
		})
		It("Rejects an already finalized order", func() {
			o := newOrder(paymentLine(1, qrMethod, 100))
			o.Finalized = true

			completer.EXPECT().AfterOrderValidation(ctx, o).Return(nil)

			d := gate.Validate(ctx, onlineSession(), o)
			Expect(d).Should(Equal(model.Reject(model.ReasonAlreadyFinalized)))
		})
		It("Accepts when there are no online lines and the order was never pushed", func() {
			o := newOrder(paymentLine(1, cashMethod, 100))

			Expect(gate.Valid(ctx, onlineSession(), o)).Should(BeTrue())
		})
	})

	Context("Draft push", func() {
		It("Rejects with save-failed on a transport error", func() {
			o := newOrder(paymentLine(1, qrMethod, 100))

			store.EXPECT().SaveOrder(ctx, o).Return(nil)
			store.EXPECT().MarkDirty(ctx, o.UID).Return(nil)
			auth.EXPECT().PushDraftOrder(ctx, o).Return(0, &internal.TransportError{Op: "push draft order", Err: errors.New("connection refused")})
			notifier.EXPECT().NotifySaveFailed(ctx).Times(1)

			d := gate.Validate(ctx, onlineSession(), o)
			Expect(d).Should(Equal(model.Reject(model.ReasonSaveFailed)))
			Expect(o.Error).Should(BeFalse())
			Expect(o.DateOrder).Should(Equal(now))
		})
		It("Runs the invoicing handler for invoicing fault codes", func() {
			o := newOrder(paymentLine(1, qrMethod, 100))
			invErr := &internal.InvoicingError{Code: internal.InvoicingFaultCode, Message: "missing fiscal position"}

			store.EXPECT().SaveOrder(ctx, o).Return(nil)
			store.EXPECT().MarkDirty(ctx, o.UID).Return(nil)
			auth.EXPECT().PushDraftOrder(ctx, o).Return(0, invErr)
			gomock.InOrder(
				notifier.EXPECT().NotifyInvoicingError(ctx, invErr),
				notifier.EXPECT().NotifySaveFailed(ctx),
			)

			d := gate.Validate(ctx, onlineSession(), o)
			Expect(d).Should(Equal(model.Reject(model.ReasonSaveFailed)))
			Expect(o.Error).Should(BeTrue())
		})
		It("Rejects with save-failed when the authority assigns no server id", func() {
			o := newOrder(paymentLine(1, qrMethod, 100))

			expectPush(o, 0)
			notifier.EXPECT().NotifySaveFailed(ctx).Times(1)

			d := gate.Validate(ctx, onlineSession(), o)
			Expect(d).Should(Equal(model.Reject(model.ReasonSaveFailed)))
			Expect(o.HasServerID()).Should(BeFalse())
		})
		It("Rejects with save-failed when the local save fails", func() {
			o := newOrder(paymentLine(1, qrMethod, 100))

			store.EXPECT().SaveOrder(ctx, o).Return(errors.New("disk full"))
			notifier.EXPECT().NotifySaveFailed(ctx).Times(1)

			d := gate.Validate(ctx, onlineSession(), o)
			Expect(d).Should(Equal(model.Reject(model.ReasonSaveFailed)))
		})
	})

	Context("Online lines", func() {
		It("Completes from the server when the displayed instrument is paid", func() {
			l := paymentLine(1, qrMethod, 100)
			o := newOrder(l)
			settled := paid(42)

			expectPush(o, 42)
			auth.EXPECT().RefreshSnapshot(ctx, 42, amountEq(100)).Return(unpaid(42, 100), nil)
			auth.EXPECT().RequestInstrument(ctx, 42, amountEq(100)).Return(inst, nil)
			presenter.EXPECT().DisplayInstrumentAndAwait(ctx, o, inst, amountEq(100)).
				DoAndReturn(func(_ context.Context, o *model.Order, _ *model.Instrument, _ decimal.Decimal) (*model.Snapshot, error) {
					Expect(o.Lines[0].Status).Should(Equal(model.PaymentStatusWaiting))
					Expect(o.SelectedLineID).Should(Equal(1))
					return settled, nil
				})
			completer.EXPECT().CompleteOrderFromServer(ctx, o, settled.PaidOrder).Return(nil).Times(1)

			d := gate.Validate(ctx, onlineSession(), o)
			Expect(d).Should(Equal(model.Reject(model.ReasonHandledByServer)))
			Expect(l.Status).Should(Equal(model.PaymentStatusDone))
			Expect(*o.ServerID).Should(Equal(42))
		})
		It("Collects several lines in creation order", func() {
			first := paymentLine(1, qrMethod, 100)
			second := paymentLine(2, qrMethod, 50)
			o := newOrder(second, first)
			settled := paid(42)

			expectPush(o, 42)
			gomock.InOrder(
				auth.EXPECT().RefreshSnapshot(ctx, 42, amountEq(100)).Return(unpaid(42, 150), nil),
				auth.EXPECT().RequestInstrument(ctx, 42, amountEq(100)).Return(inst, nil),
				presenter.EXPECT().DisplayInstrumentAndAwait(ctx, o, inst, amountEq(100)).Return(unpaid(42, 50), nil),
				auth.EXPECT().RefreshSnapshot(ctx, 42, amountEq(50)).Return(unpaid(42, 50), nil),
				auth.EXPECT().RequestInstrument(ctx, 42, amountEq(50)).Return(inst, nil),
				presenter.EXPECT().DisplayInstrumentAndAwait(ctx, o, inst, amountEq(50)).Return(settled, nil),
				completer.EXPECT().CompleteOrderFromServer(ctx, o, settled.PaidOrder).Return(nil),
			)

			d := gate.Validate(ctx, onlineSession(), o)
			Expect(d).Should(Equal(model.Reject(model.ReasonHandledByServer)))
			Expect(first.Status).Should(Equal(model.PaymentStatusDone))
			Expect(second.Status).Should(Equal(model.PaymentStatusDone))
		})
		It("Skips display when another channel already paid the order", func() {
			o := newOrder(paymentLine(1, qrMethod, 100), paymentLine(2, qrMethod, 50))
			settled := paid(42)

			expectPush(o, 42)
			auth.EXPECT().RefreshSnapshot(ctx, 42, amountEq(100)).Return(settled, nil).Times(1)
			completer.EXPECT().CompleteOrderFromServer(ctx, o, settled.PaidOrder).Return(nil).Times(1)

			d := gate.Validate(ctx, onlineSession(), o)
			Expect(d).Should(Equal(model.Reject(model.ReasonHandledByServer)))
		})
		It("Rejects with not-yet-paid when the operator cancels the display", func() {
			l := paymentLine(1, qrMethod, 100)
			o := newOrder(l)

			expectPush(o, 42)
			auth.EXPECT().RefreshSnapshot(ctx, 42, amountEq(100)).Return(unpaid(42, 100), nil)
			auth.EXPECT().RequestInstrument(ctx, 42, amountEq(100)).Return(inst, nil)
			presenter.EXPECT().DisplayInstrumentAndAwait(ctx, o, inst, amountEq(100)).Return(unpaid(42, 100), nil)
			auth.EXPECT().RefreshSnapshot(ctx, 42, amountEq(0)).Return(unpaid(42, 100), nil)

			d := gate.Validate(ctx, onlineSession(), o)
			Expect(d).Should(Equal(model.Reject(model.ReasonNotYetPaid)))
			Expect(l.Status).Should(Equal(model.PaymentStatusNone))
		})
		It("Completes when the final refresh reports the order paid", func() {
			l := paymentLine(1, qrMethod, 100)
			o := newOrder(l)
			settled := paid(42)

			expectPush(o, 42)
			auth.EXPECT().RefreshSnapshot(ctx, 42, amountEq(100)).Return(unpaid(42, 100), nil)
			auth.EXPECT().RequestInstrument(ctx, 42, amountEq(100)).Return(inst, nil)
			presenter.EXPECT().DisplayInstrumentAndAwait(ctx, o, inst, amountEq(100)).Return(nil, nil)
			auth.EXPECT().RefreshSnapshot(ctx, 42, amountEq(0)).Return(settled, nil)
			completer.EXPECT().CompleteOrderFromServer(ctx, o, settled.PaidOrder).Return(nil)

			d := gate.Validate(ctx, onlineSession(), o)
			Expect(d).Should(Equal(model.Reject(model.ReasonHandledByServer)))
			Expect(l.Status).Should(Equal(model.PaymentStatusNone))
		})
		It("Rejects with unavailable when the snapshot cannot be retrieved", func() {
			l := paymentLine(1, qrMethod, 100)
			o := newOrder(l)

			expectPush(o, 42)
			auth.EXPECT().RefreshSnapshot(ctx, 42, amountEq(100)).Return(nil, internal.ErrUnavailable)
			notifier.EXPECT().NotifyUnavailable(ctx, gomock.Any()).Times(1)

			d := gate.Validate(ctx, onlineSession(), o)
			Expect(d).Should(Equal(model.Reject(model.ReasonUnavailable)))
		})
		It("Stops at the line whose instrument request fails", func() {
			first := paymentLine(1, qrMethod, 100)
			second := paymentLine(2, qrMethod, 50)
			o := newOrder(first, second)

			expectPush(o, 42)
			auth.EXPECT().RefreshSnapshot(ctx, 42, amountEq(100)).Return(unpaid(42, 150), nil).Times(1)
			auth.EXPECT().RequestInstrument(ctx, 42, amountEq(100)).Return(nil, &internal.TransportError{Op: "request instrument", Err: errors.New("timeout")})
			notifier.EXPECT().NotifyUnavailable(ctx, gomock.Any()).Times(1)

			d := gate.Validate(ctx, onlineSession(), o)
			Expect(d).Should(Equal(model.Reject(model.ReasonUnavailable)))
			Expect(first.Status).Should(Equal(model.PaymentStatusNone))
			Expect(second.Status).Should(Equal(model.PaymentStatusNone))
		})
		It("Rejects with modified-lines and requests nothing further", func() {
			o := newOrder(paymentLine(1, qrMethod, 100), paymentLine(2, qrMethod, 50))
			snap := unpaid(42, 150)
			snap.ModifiedPaymentLines = true

			expectPush(o, 42)
			auth.EXPECT().RefreshSnapshot(ctx, 42, amountEq(100)).Return(snap, nil)
			auth.EXPECT().RequestInstrument(ctx, 42, amountEq(100)).Return(inst, nil).Times(1)
			notifier.EXPECT().NotifyModifiedLines(ctx).Times(1)

			d := gate.Validate(ctx, onlineSession(), o)
			Expect(d).Should(Equal(model.Reject(model.ReasonModifiedLines)))
			for _, l := range o.Lines {
				Expect(l.Status).ShouldNot(Equal(model.PaymentStatusWaiting))
			}
		})
		It("Resets waiting lines when modification is reported during display", func() {
			l := paymentLine(1, qrMethod, 100)
			o := newOrder(l)
			snap := unpaid(42, 100)
			snap.ModifiedPaymentLines = true

			expectPush(o, 42)
			auth.EXPECT().RefreshSnapshot(ctx, 42, amountEq(100)).Return(unpaid(42, 100), nil)
			auth.EXPECT().RequestInstrument(ctx, 42, amountEq(100)).Return(inst, nil)
			presenter.EXPECT().DisplayInstrumentAndAwait(ctx, o, inst, amountEq(100)).Return(snap, nil)
			notifier.EXPECT().NotifyModifiedLines(ctx).Times(1)

			d := gate.Validate(ctx, onlineSession(), o)
			Expect(d).Should(Equal(model.Reject(model.ReasonModifiedLines)))
			Expect(l.Status).Should(Equal(model.PaymentStatusNone))
		})
		It("Stops when the authority reports less unpaid than the terminal expects", func() {
			o := newOrder(paymentLine(1, qrMethod, 100))

			expectPush(o, 42)
			auth.EXPECT().RefreshSnapshot(ctx, 42, amountEq(100)).Return(unpaid(42, 40), nil)
			auth.EXPECT().RequestInstrument(ctx, 42, amountEq(100)).Return(inst, nil)
			notifier.EXPECT().NotifyAmountMismatch(ctx, amountEq(100), amountEq(40)).Times(1)

			d := gate.Validate(ctx, onlineSession(), o)
			Expect(d).Should(Equal(model.Reject(model.ReasonStopped)))
		})
		It("Stops when the previous line was not settled", func() {
			first := paymentLine(1, qrMethod, 100)
			second := paymentLine(2, qrMethod, 50)
			o := newOrder(first, second)

			expectPush(o, 42)
			auth.EXPECT().RefreshSnapshot(ctx, 42, amountEq(100)).Return(unpaid(42, 150), nil)
			auth.EXPECT().RequestInstrument(ctx, 42, amountEq(100)).Return(inst, nil)
			presenter.EXPECT().DisplayInstrumentAndAwait(ctx, o, inst, amountEq(100)).Return(unpaid(42, 150), nil)
			auth.EXPECT().RefreshSnapshot(ctx, 42, amountEq(50)).Return(unpaid(42, 150), nil)
			auth.EXPECT().RequestInstrument(ctx, 42, amountEq(50)).Return(inst, nil)
			notifier.EXPECT().NotifyUnavailable(ctx, gomock.Any()).Times(1)

			d := gate.Validate(ctx, onlineSession(), o)
			Expect(d).Should(Equal(model.Reject(model.ReasonStopped)))
			Expect(first.Status).Should(Equal(model.PaymentStatusNone))
			Expect(second.Status).Should(Equal(model.PaymentStatusNone))
		})
		It("Rejects with unavailable when the display fails on transport", func() {
			l := paymentLine(1, qrMethod, 100)
			o := newOrder(l)

			expectPush(o, 42)
			auth.EXPECT().RefreshSnapshot(ctx, 42, amountEq(100)).Return(unpaid(42, 100), nil)
			auth.EXPECT().RequestInstrument(ctx, 42, amountEq(100)).Return(inst, nil)
			presenter.EXPECT().DisplayInstrumentAndAwait(ctx, o, inst, amountEq(100)).
				Return(nil, &internal.TransportError{Op: "refresh snapshot", Err: errors.New("connection reset")})
			notifier.EXPECT().NotifyUnavailable(ctx, gomock.Any()).Times(1)

			d := gate.Validate(ctx, onlineSession(), o)
			Expect(d).Should(Equal(model.Reject(model.ReasonUnavailable)))
			Expect(l.Status).Should(Equal(model.PaymentStatusNone))
		})
		It("Resets waiting lines and keeps the order open when cancelled", func() {
			l := paymentLine(1, qrMethod, 100)
			o := newOrder(l)
			cctx, cancel := context.WithCancel(ctx)
			defer cancel()

			store.EXPECT().SaveOrder(cctx, o).Return(nil)
			store.EXPECT().MarkDirty(cctx, o.UID).Return(nil)
			auth.EXPECT().PushDraftOrder(cctx, o).Return(42, nil)
			auth.EXPECT().RefreshSnapshot(cctx, 42, amountEq(100)).Return(unpaid(42, 100), nil)
			auth.EXPECT().RequestInstrument(cctx, 42, amountEq(100)).Return(inst, nil)
			presenter.EXPECT().DisplayInstrumentAndAwait(cctx, o, inst, amountEq(100)).
				DoAndReturn(func(context.Context, *model.Order, *model.Instrument, decimal.Decimal) (*model.Snapshot, error) {
					cancel()
					return nil, context.Canceled
				})

			d := gate.Validate(cctx, onlineSession(), o)
			Expect(d).Should(Equal(model.Reject(model.ReasonCancelled)))
			Expect(l.Status).Should(Equal(model.PaymentStatusNone))
			Expect(o.Finalized).Should(BeFalse())
			Expect(*o.ServerID).Should(Equal(42))
		})
	})

	Context("Previously pushed order", func() {
		var o *model.Order
		BeforeEach(func() {
			done := paymentLine(1, qrMethod, 100)
			done.Status = model.PaymentStatusDone
			o = newOrder(done)
			o.ServerID = intPtr(42)
		})

		It("Accepts when the authority has nothing pending", func() {
			auth.EXPECT().RefreshSnapshot(ctx, 42, amountEq(0)).Return(unpaid(42, 0), nil)

			d := gate.Validate(ctx, onlineSession(), o)
			Expect(d).Should(Equal(model.Accept()))
		})
		It("Completes from the server when already paid", func() {
			settled := paid(42)

			auth.EXPECT().RefreshSnapshot(ctx, 42, amountEq(0)).Return(settled, nil)
			completer.EXPECT().CompleteOrderFromServer(ctx, o, settled.PaidOrder).Return(nil).Times(1)

			d := gate.Validate(ctx, onlineSession(), o)
			Expect(d).Should(Equal(model.Reject(model.ReasonHandledByServer)))
		})
		It("Rejects with modified-lines", func() {
			snap := unpaid(42, 0)
			snap.ModifiedPaymentLines = true

			auth.EXPECT().RefreshSnapshot(ctx, 42, amountEq(0)).Return(snap, nil)
			notifier.EXPECT().NotifyModifiedLines(ctx).Times(1)

			d := gate.Validate(ctx, onlineSession(), o)
			Expect(d).Should(Equal(model.Reject(model.ReasonModifiedLines)))
		})
		It("Accepts when the operator confirms after a failed refresh", func() {
			auth.EXPECT().RefreshSnapshot(ctx, 42, amountEq(0)).Return(nil, internal.ErrUnavailable)
			notifier.EXPECT().ConfirmNoOnlinePayment(ctx).Return(true)

			Expect(gate.Valid(ctx, onlineSession(), o)).Should(BeTrue())
		})
		It("Rejects when the operator does not confirm after a failed refresh", func() {
			auth.EXPECT().RefreshSnapshot(ctx, 42, amountEq(0)).Return(nil, internal.ErrUnavailable)
			notifier.EXPECT().ConfirmNoOnlinePayment(ctx).Return(false)

			d := gate.Validate(ctx, onlineSession(), o)
			Expect(d).Should(Equal(model.Reject(model.ReasonNotConfirmed)))
		})
	})
})
