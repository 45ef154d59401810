package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DrGermanius/posqr/internal/model"
)

//go:generate mockgen -source=authority.go -destination=mock/authority.go

// IAuthority is the remote reconciliation system that owns online payment state.
type IAuthority interface {
	PushDraftOrder(ctx context.Context, o *model.Order) (int, error)
	RefreshSnapshot(ctx context.Context, serverOrderID int, amount decimal.Decimal) (*model.Snapshot, error)
	RequestInstrument(ctx context.Context, serverOrderID int, amount decimal.Decimal) (*model.Instrument, error)
}

const defaultInstrumentTTL = 5 * time.Minute

// AuthorityClient talks JSON over HTTP to the authority. It is safe for concurrent use.
type AuthorityClient struct {
	client *http.Client
	logger *zap.SugaredLogger
	url    string
}

func NewAuthorityClient(logger *zap.SugaredLogger, url string, timeout time.Duration) *AuthorityClient {
	return &AuthorityClient{client: &http.Client{Timeout: timeout}, logger: logger, url: url}
}

func (a *AuthorityClient) PushDraftOrder(ctx context.Context, o *model.Order) (int, error) {
	status, body, err := a.post(ctx, "/pos/orders/draft", o)
	if err != nil {
		return 0, &TransportError{Op: "push draft order", Err: err}
	}

	if status != http.StatusOK {
		var f faultResponse
		if err = json.Unmarshal(body, &f); err == nil && isInvoicingCode(f.Code) {
			return 0, &InvoicingError{Code: f.Code, Message: f.Message}
		}
		return 0, &TransportError{Op: "push draft order", Err: fmt.Errorf("unexpected status %d", status)}
	}

	res := draftResponse{}
	if err = json.Unmarshal(body, &res); err != nil {
		return 0, &TransportError{Op: "push draft order", Err: err}
	}

	a.logger.Debugf("Order %s pushed as server order %d", o.UID, res.ID)
	return res.ID, nil
}

func (a *AuthorityClient) RefreshSnapshot(ctx context.Context, serverOrderID int, amount decimal.Decimal) (*model.Snapshot, error) {
	path := "/pos/orders/" + strconv.Itoa(serverOrderID) + "/online_payments"
	status, body, err := a.post(ctx, path, amountRequest{Amount: amount})
	if err != nil {
		return nil, &TransportError{Op: "refresh snapshot", Err: err}
	}
	if status != http.StatusOK {
		return nil, &TransportError{Op: "refresh snapshot", Err: fmt.Errorf("unexpected status %d", status)}
	}
	if isEmptyReply(body) {
		return nil, ErrUnavailable
	}

	var s model.Snapshot
	if err = json.Unmarshal(body, &s); err != nil {
		return nil, &TransportError{Op: "refresh snapshot", Err: err}
	}
	return &s, nil
}

func (a *AuthorityClient) RequestInstrument(ctx context.Context, serverOrderID int, amount decimal.Decimal) (*model.Instrument, error) {
	status, body, err := a.post(ctx, "/pos/vnpay/get_payment_qr", qrRequest{OrderID: serverOrderID, Amount: amount})
	if err != nil {
		return nil, &TransportError{Op: "request instrument", Err: err}
	}
	if status != http.StatusOK {
		return nil, &TransportError{Op: "request instrument", Err: fmt.Errorf("unexpected status %d", status)}
	}
	if isEmptyReply(body) {
		return nil, ErrUnavailable
	}

	res := qrResponse{}
	if err = json.Unmarshal(body, &res); err != nil {
		return nil, &TransportError{Op: "request instrument", Err: err}
	}
	if res.QR == "" {
		return nil, ErrUnavailable
	}

	expiresAt := res.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(defaultInstrumentTTL)
	}

	return &model.Instrument{
		OrderID:   serverOrderID,
		Amount:    amount,
		Data:      res.QR,
		ExpiresAt: expiresAt,
	}, nil
}

func (a *AuthorityClient) post(ctx context.Context, path string, payload interface{}) (int, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url+path, bytes.NewReader(data))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := a.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusTooManyRequests {
		return 0, nil, ErrTooManyRequests
	}

	var buf bytes.Buffer
	_, err = io.Copy(&buf, res.Body)
	if err != nil {
		return 0, nil, err
	}

	return res.StatusCode, buf.Bytes(), nil
}

// isEmptyReply matches the authority's "nothing usable" answers.
func isEmptyReply(body []byte) bool {
	b := bytes.TrimSpace(body)
	return len(b) == 0 || bytes.Equal(b, []byte("null")) || bytes.Equal(b, []byte("false"))
}

type faultResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type draftResponse struct {
	ID int `json:"id"`
}

type amountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type qrRequest struct {
	OrderID int             `json:"orderId"`
	Amount  decimal.Decimal `json:"amount"`
}

type qrResponse struct {
	QR        string    `json:"qr"`
	ExpiresAt time.Time `json:"expires_at"`
}
