package postgres

import (
	"context"
	"database/sql"
	"errors"

	"kirana/internal/core/domain/model/order"
	"kirana/internal/core/ports"
	"kirana/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormOrderViews implements the read-side ports.OrderViews over the same
// database. Reads run outside the writer transaction and use raw SQL.
type GormOrderViews struct {
	db *gorm.DB
}

// NewGormOrderViews creates the read model over a GORM connection.
func NewGormOrderViews(db *gorm.DB) GormOrderViews {
	return GormOrderViews{db: db}
}

// Find returns one order with its items, ObjectNotFoundError when absent.
func (v GormOrderViews) Find(ctx context.Context, orderID string) (ports.OrderView, []ports.ItemView, error) {
	row := v.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			name,
			phone,
			email,
			address,
			raw_order_text,
			total_price,
			status,
			created_at
		FROM orders
		WHERE order_id = ?
	`, orderID).Row()

	var view ports.OrderView
	var status int
	err := row.Scan(
		&view.OrderID,
		&view.Name,
		&view.Phone,
		&view.Email,
		&view.Address,
		&view.RawText,
		&view.TotalPrice,
		&status,
		&view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.OrderView{}, nil, errs.NewObjectNotFoundError("orderID", orderID)
		}
		return ports.OrderView{}, nil, err
	}
	view.Status = order.Status(status).String()

	items, err := v.findItems(ctx, orderID)
	if err != nil {
		return ports.OrderView{}, nil, err
	}

	return view, items, nil
}

// List returns all orders, most recent first.
func (v GormOrderViews) List(ctx context.Context) ([]ports.OrderView, error) {
	rows, err := v.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			name,
			phone,
			email,
			address,
			raw_order_text,
			total_price,
			status,
			created_at
		FROM orders
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]ports.OrderView, 0)
	for rows.Next() {
		var view ports.OrderView
		var status int

		if err = rows.Scan(
			&view.OrderID,
			&view.Name,
			&view.Phone,
			&view.Email,
			&view.Address,
			&view.RawText,
			&view.TotalPrice,
			&status,
			&view.CreatedAt,
		); err != nil {
			return nil, err
		}

		view.Status = order.Status(status).String()
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

func (v GormOrderViews) findItems(ctx context.Context, orderID string) ([]ports.ItemView, error) {
	rows, err := v.db.WithContext(ctx).Raw(`
		SELECT
			item,
			qty,
			unit_price,
			item_total
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ports.ItemView, 0)
	for rows.Next() {
		var item ports.ItemView
		var qty, unitPrice, total decimal.Decimal

		if err = rows.Scan(&item.Name, &qty, &unitPrice, &total); err != nil {
			return nil, err
		}

		item.Qty = qty
		item.UnitPrice = unitPrice
		item.Total = total
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
