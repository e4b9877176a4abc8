package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketbay/backend/internal/domain/order"
	"github.com/marketbay/backend/internal/domain/shared"
	"github.com/marketbay/backend/internal/infrastructure/persistence/models"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order with its items by ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByTransactionRef finds an order by its payment transaction reference
func (r *GormOrderRepository) FindByTransactionRef(ctx context.Context, ref string) (*order.Order, error) {
	if ref == "" {
		return nil, shared.NewDomainError("INVALID_TRANSACTION_REF", "Transaction reference cannot be empty")
	}
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("transaction_ref = ?", ref).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists orders across all customers
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]order.Order, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.OrderModel{}), filter)
	return r.findOrders(query)
}

// Count counts orders across all customers matching the filter
func (r *GormOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.OrderModel{}), filter)
	return r.countOrders(query)
}

// FindByCustomer lists a customer's own orders
func (r *GormOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]order.Order, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.OrderModel{}).Where("customer_id = ?", customerID),
		filter,
	)
	return r.findOrders(query)
}

// CountByCustomer counts the customer's orders matching the filter.
// The count is restricted to the same customer and filter set as
// FindByCustomer so pagination metadata reflects the visible rows.
func (r *GormOrderRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) (int64, error) {
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.OrderModel{}).Where("customer_id = ?", customerID),
		filter,
	)
	return r.countOrders(query)
}

// vendorScope restricts orders to those containing at least one item
// from a shop owned by the vendor.
func vendorScope(vendorID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"EXISTS (SELECT 1 FROM order_items oi JOIN shops s ON s.id = oi.shop_id WHERE oi.order_id = orders.id AND s.vendor_id = ?)",
			vendorID,
		)
	}
}

// FindByVendor lists orders containing items from the vendor's shops
func (r *GormOrderRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]order.Order, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.OrderModel{}).Scopes(vendorScope(vendorID)),
		filter,
	)
	return r.findOrders(query)
}

// CountByVendor counts orders containing items from the vendor's shops
func (r *GormOrderRepository) CountByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) (int64, error) {
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.OrderModel{}).Scopes(vendorScope(vendorID)),
		filter,
	)
	return r.countOrders(query)
}

// Create persists a new order and its items. The blacklist re-check and
// the insert share a transaction, so a shop blacklisted between the
// caller's validation and the insert still rejects the order.
func (r *GormOrderRepository) Create(ctx context.Context, o *order.Order) error {
	model := models.OrderModelFromDomain(o)
	shopIDs := o.ShopIDs()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(shopIDs) > 0 {
			var blacklisted int64
			if err := tx.Model(&models.ShopModel{}).
				Where("id IN ? AND blacklisted = ?", shopIDs, true).
				Count(&blacklisted).Error; err != nil {
				return err
			}
			if blacklisted > 0 {
				return shared.ErrShopBlacklisted
			}
		}

		items := model.Items
		model.Items = nil

		if err := tx.Create(model).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Save persists the order and its items in a single transaction.
// Items are replaced wholesale so the stored rows always match the aggregate.
func (r *GormOrderRepository) Save(ctx context.Context, o *order.Order) error {
	model := models.OrderModelFromDomain(o)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := model.Items
		model.Items = nil

		if err := tx.Save(model).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.OrderItemModel{}, "order_id = ?", model.ID).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// SaveWithLock persists the order with an optimistic version check.
// Returns a conflict error if another transaction modified the order.
func (r *GormOrderRepository) SaveWithLock(ctx context.Context, o *order.Order) error {
	model := models.OrderModelFromDomain(o)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := model.Items
		model.Items = nil

		result := tx.Model(&models.OrderModel{}).
			Where("id = ? AND version = ?", o.ID, o.Version-1).
			Updates(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrConcurrencyConflict
		}

		if err := tx.Delete(&models.OrderItemModel{}, "order_id = ?", model.ID).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete deletes an order and its items
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.OrderItemModel{}, "order_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.OrderModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// GenerateOrderNumber produces the next order number, e.g. "MB-2026-00042".
// Sequence gaps can occur under concurrent creation; the unique index on
// order_number rejects duplicates.
func (r *GormOrderRepository) GenerateOrderNumber(ctx context.Context) (string, error) {
	year := time.Now().Year()
	yearStart := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("created_at >= ?", yearStart).
		Count(&count).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("MB-%d-%05d", year, count+1), nil
}

// findOrders runs the query and converts the models to domain orders
func (r *GormOrderRepository) findOrders(query *gorm.DB) ([]order.Order, error) {
	var orderModels []models.OrderModel
	if err := query.Preload("Items").Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]order.Order, len(orderModels))
	for i, model := range orderModels {
		orders[i] = *model.ToDomain()
	}
	return orders, nil
}

func (r *GormOrderRepository) countOrders(query *gorm.DB) (int64, error) {
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, OrderSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormOrderRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("order_number LIKE ? OR transaction_ref LIKE ?", searchPattern, searchPattern)
	}

	// Unknown filter keys are ignored
	for key, value := range filter.Filters {
		switch key {
		case "pending":
			// "Pending" means not yet delivered, regardless of intermediate status
			if value == true || value == "true" {
				query = query.Where("status <> ?", order.StatusDelivered)
			}
		case "status":
			query = query.Where("status = ?", value)
		case "payment_status":
			query = query.Where("payment_status = ?", value)
		case "customer_id":
			query = query.Where("customer_id = ?", value)
		case "order_number":
			query = query.Where("order_number = ?", value)
		}
	}

	return query
}

// Ensure GormOrderRepository implements OrderRepository
var _ order.OrderRepository = (*GormOrderRepository)(nil)
