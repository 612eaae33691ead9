// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and their
// database representation across the orders and order_items tables.
package orderrepo

import (
	"time"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database row for one order.
type OrderDTO struct {
	OrderID    string `gorm:"primaryKey;size:8"`
	Name       string
	Phone      string `gorm:"size:10"`
	Email      string
	Address    string
	RawText    string          `gorm:"column:raw_order_text"`
	TotalPrice decimal.Decimal `gorm:"type:numeric"`
	Status     int             `gorm:"index"`
	CreatedAt  time.Time       `gorm:"index"`
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line-item row. Rows carry a surrogate key
// because OrderID is many-to-one, and a position so the display order of the
// customer's free text survives the round trip.
type OrderItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   string          `gorm:"size:8;index"`
	Item      string          `gorm:"column:item"`
	Qty       decimal.Decimal `gorm:"type:numeric"`
	UnitPrice decimal.Decimal `gorm:"type:numeric"`
	ItemTotal decimal.Decimal `gorm:"type:numeric"`
	Position  int
}

// TableName specifies the database table name for line-item rows.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, []OrderItemDTO) {
	customer := aggregate.Customer()
	dto := OrderDTO{
		OrderID:    aggregate.ID().String(),
		Name:       customer.Name(),
		Phone:      customer.Phone(),
		Email:      customer.Email(),
		Address:    customer.Address(),
		RawText:    aggregate.RawText(),
		TotalPrice: aggregate.TotalPrice(),
		Status:     int(aggregate.Status()),
		CreatedAt:  aggregate.CreatedAt(),
	}

	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			ID:        uuid.New(),
			OrderID:   aggregate.ID().String(),
			Item:      item.Name(),
			Qty:       item.Qty(),
			UnitPrice: item.UnitPrice(),
			ItemTotal: item.Total(),
			Position:  i,
		})
	}

	return dto, itemDTOs
}

// toDomain converts database rows back to an order aggregate using
// RestoreOrder. Item rows must already be ordered by position.
func toDomain(dto OrderDTO, itemDTOs []OrderItemDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	customer, err := kernel.NewCustomer(dto.Name, dto.Phone, dto.Email, dto.Address)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := order.NewItem(itemDTO.Item, itemDTO.Qty, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customer,
		dto.RawText,
		items,
		dto.TotalPrice,
		order.Status(dto.Status),
		dto.CreatedAt,
	)
}
