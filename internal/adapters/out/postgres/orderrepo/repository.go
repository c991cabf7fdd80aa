package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its lines and containers to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
// Container rows dropped from the aggregate are pruned, as Save only
// upserts associations and never deletes them.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.pruneRemovedContainers(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) pruneRemovedContainers(ctx context.Context, dto OrderDTO) error {
	itemIDs := make([]uuid.UUID, 0, len(dto.Items))
	keep := make([]uuid.UUID, 0)
	for _, item := range dto.Items {
		itemIDs = append(itemIDs, item.ID)
		for _, container := range item.Containers {
			keep = append(keep, container.ID)
		}
	}

	query := r.db.WithContext(ctx).Where("order_item_id IN ?", itemIDs)
	if len(keep) > 0 {
		query = query.Where("id NOT IN ?", keep)
	}

	return query.Delete(&ContainerDTO{}).Error
}

// Get retrieves an order by ID with all lines and containers.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves an order by ID holding a row-level lock on the
// order until the transaction ends. Every mutation of one order locks the
// same row, so concurrent check-then-write sequences serialize.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, true)
}

func (r *GormOrderRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := query.Preload("Items.Containers").Preload("Items").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderItemIDForUpdate resolves the owning order of a line and
// retrieves it with GetForUpdate locking semantics.
func (r *GormOrderRepository) GetByOrderItemIDForUpdate(ctx context.Context, orderItemID kernel.UUID) (*order.Order, error) {
	if err := orderItemID.Validate(); err != nil {
		return nil, err
	}

	var orderID uuid.UUID
	result := r.db.WithContext(ctx).
		Model(&OrderItemDTO{}).
		Select("order_id").
		Where("id = ?", orderItemID.Bytes()).
		Scan(&orderID)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("order_item", orderItemID.String())
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return nil, err
	}

	return r.GetForUpdate(ctx, id)
}

// GetByContainerIDForUpdate resolves the owning order of a container and
// retrieves it with GetForUpdate locking semantics.
func (r *GormOrderRepository) GetByContainerIDForUpdate(ctx context.Context, containerID kernel.UUID) (*order.Order, error) {
	if err := containerID.Validate(); err != nil {
		return nil, err
	}

	var orderID uuid.UUID
	result := r.db.WithContext(ctx).Raw(`
		SELECT i.order_id
		FROM containers c
		JOIN order_items i ON i.id = c.order_item_id
		WHERE c.id = ?
	`, containerID.Bytes()).Scan(&orderID)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("container", containerID.String())
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return nil, err
	}

	return r.GetForUpdate(ctx, id)
}
