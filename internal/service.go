package internal

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/theplant/luhn"
	"go.uber.org/zap"

	"github.com/DrGermanius/posqr/internal/model"
)

//go:generate mockgen -source=service.go -destination=mock/service.go

type IService interface {
	Login(context.Context, string, string) (string, error)
	ValidateOrder(context.Context, ValidationRequest) (ValidationResult, error)
	ActiveInstrument(string) (model.Instrument, bool)
	CancelDisplay(string) bool
}

// Completer receives orders the gate will not let through to local finalization.
type Completer interface {
	AfterOrderValidation(ctx context.Context, o *model.Order) error
	CompleteOrderFromServer(ctx context.Context, o *model.Order, paid *model.PaidOrder) error
}

type ValidationRequest struct {
	Session               model.Session `json:"session"`
	Order                 model.Order   `json:"order"`
	AssumeNoOnlinePayment bool          `json:"assumeNoOnlinePayment"`
}

type ValidationResult struct {
	Decision      model.Decision   `json:"decision"`
	Notifications []Notification   `json:"notifications"`
	Order         model.Order      `json:"order"`
	PaidOrder     *model.PaidOrder `json:"paidOrder,omitempty"`
}

type Service struct {
	repo        IRepository
	authority   IAuthority
	presenter   Presenter
	registry    *DisplayRegistry
	locker      Locker
	publisher   Publisher
	secret      string
	terminalKey string
	logger      *zap.SugaredLogger
}

func NewService(repo IRepository, authority IAuthority, presenter Presenter, registry *DisplayRegistry, locker Locker, publisher Publisher,
	secret, terminalKey string, logger *zap.SugaredLogger) *Service {
	return &Service{
		repo:        repo,
		authority:   authority,
		presenter:   presenter,
		registry:    registry,
		locker:      locker,
		publisher:   publisher,
		secret:      secret,
		terminalKey: terminalKey,
		logger:      logger,
	}
}

func (s Service) Login(_ context.Context, terminalID, key string) (string, error) {
	if terminalID == "" || subtle.ConstantTimeCompare([]byte(key), []byte(s.terminalKey)) != 1 {
		return "", ErrInvalidCredentials
	}

	return s.GetJWTToken(terminalID)
}

func (s Service) GetJWTToken(terminalID string) (string, error) {
	claims := jwt.MapClaims{
		"terminal": terminalID,
		"exp":      time.Now().Add(time.Hour * 12).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", err
	}

	return t, nil
}

func (s Service) ValidateOrder(ctx context.Context, req ValidationRequest) (ValidationResult, error) {
	if !luhn.Valid(int(req.Order.Number)) {
		s.logger.Debugf("Order %s number %d carries no check digit", req.Order.UID, req.Order.Number)
	}

	unlock, err := s.locker.Lock(ctx, req.Order.UID)
	if err != nil {
		return ValidationResult{}, err
	}
	defer unlock()

	o := req.Order
	s.restoreServerID(ctx, &o)

	notifier := NewRecordingNotifier(s.logger, req.AssumeNoOnlinePayment)
	completer := &orderCompleter{repo: s.repo, logger: s.logger}

	gate := NewOnlinePaymentGate(BaseValidator{}, GateDeps{
		Authority: s.authority,
		Store:     s.repo,
		Presenter: s.presenter,
		Notifier:  notifier,
		Completer: completer,
		Logger:    s.logger,
	})

	d := gate.Validate(ctx, &req.Session, &o)
	s.logger.Infof("Order %s validated: accepted=%t reason=%q", o.UID, d.Accepted, d.Reason)

	if o.HasServerID() && !o.Finalized {
		if err = s.repo.SaveOrder(ctx, &o); err != nil {
			s.logger.Errorf("SaveOrder error: %s", err.Error())
		}
	}

	if err = s.publisher.Publish(ctx, NewDecisionEvent(req.Session.TerminalID, &o, d)); err != nil {
		s.logger.Errorf("Publish error: %s", err.Error())
	}

	return ValidationResult{
		Decision:      d,
		Notifications: notifier.Notifications,
		Order:         o,
		PaidOrder:     completer.paid,
	}, nil
}

func (s Service) ActiveInstrument(orderUID string) (model.Instrument, bool) {
	return s.registry.Active(orderUID)
}

func (s Service) CancelDisplay(orderUID string) bool {
	return s.registry.Cancel(orderUID)
}

// restoreServerID keeps a server id from an earlier push when the terminal lost it.
func (s Service) restoreServerID(ctx context.Context, o *model.Order) {
	if o.HasServerID() {
		return
	}

	stored, err := s.repo.GetOrderByUID(ctx, o.UID)
	if err != nil {
		if !errors.Is(err, ErrNoRecords) {
			s.logger.Errorf("GetOrderByUID error: %s", err.Error())
		}
		return
	}
	o.ServerID = stored.ServerID
}

type orderCompleter struct {
	repo   IRepository
	logger *zap.SugaredLogger
	paid   *model.PaidOrder
}

func (c *orderCompleter) AfterOrderValidation(_ context.Context, o *model.Order) error {
	c.logger.Infof("Order %s is already finalized", o.UID)
	return nil
}

func (c *orderCompleter) CompleteOrderFromServer(ctx context.Context, o *model.Order, paid *model.PaidOrder) error {
	o.Finalized = true
	c.paid = paid

	if err := c.repo.SaveOrder(ctx, o); err != nil {
		return err
	}
	if paid == nil {
		return nil
	}
	return c.repo.SavePaidOrder(ctx, o.UID, paid)
}
