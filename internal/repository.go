package internal

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib"
	"go.uber.org/zap"

	"github.com/DrGermanius/posqr/internal/model"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go

const orderFields = "uid, number, server_id, finalized, error, amount_total, lines, date_order"

// OrderStore is the terminal-side persistence the gate needs before a draft push.
type OrderStore interface {
	SaveOrder(context.Context, *model.Order) error
	MarkDirty(context.Context, string) error
}

type IRepository interface {
	OrderStore
	InstrumentStore
	GetOrderByUID(context.Context, string) (model.Order, error)
	SavePaidOrder(context.Context, string, *model.PaidOrder) error
}

type Repository struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

func NewRepository(connString string, logger *zap.SugaredLogger) (*Repository, error) {
	conn, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}

	err = conn.PingContext(context.Background())
	if err != nil {
		return nil, err
	}

	err = Migrate(conn)
	if err != nil {
		return nil, err
	}

	return &Repository{Conn: conn, Logger: logger}, nil
}

func (r Repository) SaveOrder(ctx context.Context, o *model.Order) error {
	lines, err := json.Marshal(o.Lines)
	if err != nil {
		return err
	}

	_, err = r.Conn.ExecContext(ctx, `INSERT INTO pos_orders (`+orderFields+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (uid) DO UPDATE SET
			number = EXCLUDED.number,
			server_id = COALESCE(EXCLUDED.server_id, pos_orders.server_id),
			finalized = EXCLUDED.finalized,
			error = EXCLUDED.error,
			amount_total = EXCLUDED.amount_total,
			lines = EXCLUDED.lines,
			date_order = EXCLUDED.date_order`,
		o.UID, o.Number, nullableInt(o.ServerID), o.Finalized, o.Error, o.AmountTotal, lines, o.DateOrder)
	return err
}

func (r Repository) MarkDirty(ctx context.Context, uid string) error {
	_, err := r.Conn.ExecContext(ctx, `INSERT INTO sync_queue (order_uid, queued_at) VALUES ($1, $2)
		ON CONFLICT (order_uid) DO UPDATE SET queued_at = EXCLUDED.queued_at`, uid, time.Now())
	return err
}

func (r Repository) GetOrderByUID(ctx context.Context, uid string) (model.Order, error) {
	var (
		o        model.Order
		serverID sql.NullInt64
		lines    []byte
	)

	row := r.Conn.QueryRowContext(ctx, "SELECT "+orderFields+" FROM pos_orders WHERE uid = $1", uid)
	err := row.Scan(&o.UID, &o.Number, &serverID, &o.Finalized, &o.Error, &o.AmountTotal, &lines, &o.DateOrder)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Order{}, ErrNoRecords
		}
		return model.Order{}, err
	}

	if serverID.Valid {
		id := int(serverID.Int64)
		o.ServerID = &id
	}

	if len(lines) > 0 {
		if err = json.Unmarshal(lines, &o.Lines); err != nil {
			return model.Order{}, err
		}
	}

	return o, nil
}

func (r Repository) SaveInstrument(ctx context.Context, orderUID string, inst *model.Instrument) error {
	_, err := r.Conn.ExecContext(ctx, "INSERT INTO payment_qr (order_uid, server_order_id, amount, qr_data, exp_date) VALUES ($1, $2, $3, $4, $5)",
		orderUID, inst.OrderID, inst.Amount, inst.Data, inst.ExpiresAt)
	return err
}

func (r Repository) SavePaidOrder(ctx context.Context, orderUID string, p *model.PaidOrder) error {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `INSERT INTO paid_orders (order_uid, server_order_id, reference, state, amount_total, amount_paid, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT (order_uid) DO NOTHING`,
		orderUID, p.ID, p.Reference, p.State, p.AmountTotal, p.AmountPaid, time.Now())
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, "UPDATE pos_orders SET finalized = TRUE WHERE uid = $1", orderUID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, "DELETE FROM sync_queue WHERE order_uid = $1", orderUID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func nullableInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}
