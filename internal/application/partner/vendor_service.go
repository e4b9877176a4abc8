package partner

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marketbay/backend/internal/domain/partner"
	"github.com/marketbay/backend/internal/domain/shared"
)

// VendorService handles vendor profile management
type VendorService struct {
	vendorRepo partner.VendorRepository
	logger     *zap.Logger
}

// NewVendorService creates a new vendor service
func NewVendorService(vendorRepo partner.VendorRepository, logger *zap.Logger) *VendorService {
	return &VendorService{
		vendorRepo: vendorRepo,
		logger:     logger,
	}
}

// GetProfile returns the vendor profile of the given user
func (s *VendorService) GetProfile(ctx context.Context, userID uuid.UUID) (*VendorInfo, error) {
	vendor, err := s.vendorRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	info := NewVendorInfo(vendor)
	return &info, nil
}

// UpdateProfile applies partial updates to the caller's profile
func (s *VendorService) UpdateProfile(ctx context.Context, input UpdateVendorInput) (*VendorInfo, error) {
	vendor, err := s.vendorRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := vendor.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Phone != nil {
		if err := vendor.SetPhone(*input.Phone); err != nil {
			return nil, err
		}
	}

	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}

	info := NewVendorInfo(vendor)
	return &info, nil
}

// GetVendor returns a vendor profile by its ID (admin scope)
func (s *VendorService) GetVendor(ctx context.Context, id uuid.UUID) (*VendorInfo, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	info := NewVendorInfo(vendor)
	return &info, nil
}

// ListVendors returns a paginated list of vendors (admin scope)
func (s *VendorService) ListVendors(ctx context.Context, filter shared.Filter) (*shared.Paginated[VendorInfo], error) {
	vendors, err := s.vendorRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.vendorRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	infos := make([]VendorInfo, len(vendors))
	for i := range vendors {
		infos[i] = NewVendorInfo(&vendors[i])
	}

	result := shared.NewPaginated(infos, total, filter.Page, filter.PageSize)
	return &result, nil
}
