package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketbay/backend/internal/domain/partner"
	"github.com/marketbay/backend/internal/domain/shared"
	"github.com/marketbay/backend/internal/infrastructure/persistence/models"
)

// GormVendorRepository implements VendorRepository using GORM
type GormVendorRepository struct {
	db *gorm.DB
}

// NewGormVendorRepository creates a new GormVendorRepository
func NewGormVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{db: db}
}

// FindByID finds a vendor by its ID
func (r *GormVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Vendor, error) {
	var model models.VendorModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUserID finds a vendor profile by its identity user ID
func (r *GormVendorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*partner.Vendor, error) {
	var model models.VendorModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmail finds a vendor by email
func (r *GormVendorRepository) FindByEmail(ctx context.Context, email string) (*partner.Vendor, error) {
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	var model models.VendorModel
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all vendors matching the filter
func (r *GormVendorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Vendor, error) {
	var vendorModels []models.VendorModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.VendorModel{}), filter)

	if err := query.Find(&vendorModels).Error; err != nil {
		return nil, err
	}

	vendors := make([]partner.Vendor, len(vendorModels))
	for i, model := range vendorModels {
		vendors[i] = *model.ToDomain()
	}
	return vendors, nil
}

// Count counts vendors matching the filter
func (r *GormVendorRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.VendorModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a vendor
func (r *GormVendorRepository) Save(ctx context.Context, v *partner.Vendor) error {
	model := models.VendorModelFromDomain(v)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a vendor
func (r *GormVendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.VendorModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormVendorRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, VendorSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormVendorRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR phone LIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "email":
			query = query.Where("email = ?", value)
		case "name":
			query = query.Where("name = ?", value)
		}
	}

	return query
}

// Ensure GormVendorRepository implements VendorRepository
var _ partner.VendorRepository = (*GormVendorRepository)(nil)
