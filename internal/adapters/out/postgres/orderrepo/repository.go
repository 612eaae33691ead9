package orderrepo

import (
	"context"
	"errors"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// Bound to a transaction by the unit of work, an order row and its item rows
// commit or roll back together.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.OrderID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, itemDTOs := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceFailedErrorWithCause("create order", err)
	}

	if len(itemDTOs) > 0 {
		if err := r.db.WithContext(ctx).Create(&itemDTOs).Error; err != nil {
			return errs.NewPersistenceFailedErrorWithCause("create order items", err)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order's status and total.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, _ := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("order_id = ?", dto.OrderID).
		Updates(map[string]any{
			"status":      dto.Status,
			"total_price": dto.TotalPrice,
		})
	if result.Error != nil {
		return errs.NewPersistenceFailedErrorWithCause("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderID", dto.OrderID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ReplaceItems removes all stored line items for the aggregate's identifier
// and inserts the aggregate's current item set.
func (r *GormOrderRepository) ReplaceItems(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	_, itemDTOs := fromDomain(aggregate)

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", aggregate.ID().String()).
		Delete(&OrderItemDTO{}).Error; err != nil {
		return errs.NewPersistenceFailedErrorWithCause("delete order items", err)
	}

	if len(itemDTOs) > 0 {
		if err := r.db.WithContext(ctx).Create(&itemDTOs).Error; err != nil {
			return errs.NewPersistenceFailedErrorWithCause("insert order items", err)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its line items by identifier.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id.String())
		}
		return nil, err
	}

	var itemDTOs []OrderItemDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", id.String()).
		Order("position").
		Find(&itemDTOs).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, itemDTOs)
}

// Exists reports whether an order with the given identifier is stored.
func (r *GormOrderRepository) Exists(ctx context.Context, id kernel.OrderID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("order_id = ?", id.String()).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
