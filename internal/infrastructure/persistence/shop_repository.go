package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketbay/backend/internal/domain/shared"
	"github.com/marketbay/backend/internal/domain/shop"
	"github.com/marketbay/backend/internal/infrastructure/persistence/models"
)

// GormShopRepository implements ShopRepository using GORM
type GormShopRepository struct {
	db *gorm.DB
}

// NewGormShopRepository creates a new GormShopRepository
func NewGormShopRepository(db *gorm.DB) *GormShopRepository {
	return &GormShopRepository{db: db}
}

// FindByID finds a shop by its ID
func (r *GormShopRepository) FindByID(ctx context.Context, id uuid.UUID) (*shop.Shop, error) {
	var model models.ShopModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDs loads multiple shops by their IDs in one query
func (r *GormShopRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]shop.Shop, error) {
	if len(ids) == 0 {
		return []shop.Shop{}, nil
	}

	var shopModels []models.ShopModel
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&shopModels).Error; err != nil {
		return nil, err
	}

	shops := make([]shop.Shop, len(shopModels))
	for i, model := range shopModels {
		shops[i] = *model.ToDomain()
	}
	return shops, nil
}

// FindByVendor finds shops owned by the given vendor
func (r *GormShopRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]shop.Shop, error) {
	var shopModels []models.ShopModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.ShopModel{}).Where("vendor_id = ?", vendorID),
		filter,
	)

	if err := query.Find(&shopModels).Error; err != nil {
		return nil, err
	}

	shops := make([]shop.Shop, len(shopModels))
	for i, model := range shopModels {
		shops[i] = *model.ToDomain()
	}
	return shops, nil
}

// FindAll finds all shops matching the filter
func (r *GormShopRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shop.Shop, error) {
	var shopModels []models.ShopModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ShopModel{}), filter)

	if err := query.Find(&shopModels).Error; err != nil {
		return nil, err
	}

	shops := make([]shop.Shop, len(shopModels))
	for i, model := range shopModels {
		shops[i] = *model.ToDomain()
	}
	return shops, nil
}

// Count counts shops matching the filter
func (r *GormShopRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.ShopModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a shop
func (r *GormShopRepository) Save(ctx context.Context, s *shop.Shop) error {
	model := models.ShopModelFromDomain(s)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a shop
func (r *GormShopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ShopModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormShopRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, ShopSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormShopRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "vendor_id":
			query = query.Where("vendor_id = ?", value)
		case "blacklisted":
			query = query.Where("blacklisted = ?", value)
		case "name":
			query = query.Where("name = ?", value)
		}
	}

	return query
}

// Ensure GormShopRepository implements ShopRepository
var _ shop.ShopRepository = (*GormShopRepository)(nil)
