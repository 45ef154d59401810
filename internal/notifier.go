package internal

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=notifier.go -destination=mock/notifier.go

// Notifier is the operator-facing side of the gate. Every call except the confirmation is
// fire-and-forget.
type Notifier interface {
	NotifyInvoicingError(ctx context.Context, err *InvoicingError)
	NotifySaveFailed(ctx context.Context)
	NotifyUnavailable(ctx context.Context, message string)
	NotifyModifiedLines(ctx context.Context)
	NotifyAmountMismatch(ctx context.Context, remaining, unpaid decimal.Decimal)
	ConfirmNoOnlinePayment(ctx context.Context) bool
}

const (
	NotificationInvoicingError = "invoicing-error"
	NotificationSaveFailed     = "save-failed"
	NotificationUnavailable    = "unavailable"
	NotificationModifiedLines  = "modified-lines"
	NotificationAmountMismatch = "amount-mismatch"
	NotificationConfirm        = "confirm"
)

type Notification struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}

// RecordingNotifier collects notifications so they can be returned to a remote UI.
// The confirmation is answered from a value the operator chose up front.
type RecordingNotifier struct {
	logger        *zap.SugaredLogger
	confirm       bool
	Notifications []Notification
}

func NewRecordingNotifier(logger *zap.SugaredLogger, confirm bool) *RecordingNotifier {
	return &RecordingNotifier{logger: logger, confirm: confirm}
}

func (n *RecordingNotifier) NotifyInvoicingError(_ context.Context, err *InvoicingError) {
	n.add(Notification{
		Kind:    NotificationInvoicingError,
		Title:   "Invoicing error",
		Message: err.Message,
		Code:    err.Code,
	})
}

func (n *RecordingNotifier) NotifySaveFailed(context.Context) {
	n.add(Notification{
		Kind:    NotificationSaveFailed,
		Title:   "Failed to save order",
		Message: "The order could not be sent to the server. Please try again.",
	})
}

func (n *RecordingNotifier) NotifyUnavailable(_ context.Context, message string) {
	n.add(Notification{
		Kind:    NotificationUnavailable,
		Title:   "Online payment unavailable",
		Message: message,
	})
}

func (n *RecordingNotifier) NotifyModifiedLines(context.Context) {
	n.add(Notification{
		Kind:    NotificationModifiedLines,
		Title:   "Updated online payments",
		Message: "There are online payments that were missing in your view.",
	})
}

func (n *RecordingNotifier) NotifyAmountMismatch(_ context.Context, remaining, unpaid decimal.Decimal) {
	msg := "There is at least one online payment with an invalid amount."
	if remaining.IsPositive() {
		msg = fmt.Sprintf("The total amount of remaining online payments to execute (%s) doesn't correspond to the updated total amount to pay (%s).",
			remaining.StringFixed(amountPrecision), unpaid.StringFixed(amountPrecision))
	}
	n.add(Notification{
		Kind:    NotificationAmountMismatch,
		Title:   "Invalid online payment",
		Message: msg,
	})
}

func (n *RecordingNotifier) ConfirmNoOnlinePayment(context.Context) bool {
	n.add(Notification{
		Kind:    NotificationConfirm,
		Title:   "Online payment unavailable",
		Message: "The order online payment status cannot be retrieved. Are you sure there is no online payment for this order?",
	})
	return n.confirm
}

func (n *RecordingNotifier) add(nt Notification) {
	n.logger.Infof("Notification %s: %s", nt.Kind, nt.Message)
	n.Notifications = append(n.Notifications, nt)
}
