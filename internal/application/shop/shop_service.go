package shop

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marketbay/backend/internal/domain/partner"
	"github.com/marketbay/backend/internal/domain/shared"
	"github.com/marketbay/backend/internal/domain/shop"
)

// ShopService handles shop management. Vendors manage their own shops;
// blacklisting is an admin operation.
type ShopService struct {
	shopRepo   shop.ShopRepository
	vendorRepo partner.VendorRepository
	logger     *zap.Logger
}

// NewShopService creates a new shop service
func NewShopService(shopRepo shop.ShopRepository, vendorRepo partner.VendorRepository, logger *zap.Logger) *ShopService {
	return &ShopService{
		shopRepo:   shopRepo,
		vendorRepo: vendorRepo,
		logger:     logger,
	}
}

// CreateShop creates a new shop owned by the calling vendor
func (s *ShopService) CreateShop(ctx context.Context, input CreateShopInput) (*ShopInfo, error) {
	vendor, err := s.vendorRepo.FindByUserID(ctx, input.VendorUserID)
	if err != nil {
		return nil, err
	}

	newShop, err := shop.NewShop(input.Name, vendor.ID)
	if err != nil {
		return nil, err
	}
	if err := newShop.SetDescription(input.Description); err != nil {
		return nil, err
	}

	if err := s.shopRepo.Save(ctx, newShop); err != nil {
		return nil, err
	}

	s.logger.Info("shop created",
		zap.String("shop_id", newShop.ID.String()),
		zap.String("vendor_id", vendor.ID.String()))

	info := NewShopInfo(newShop)
	return &info, nil
}

// UpdateShop applies partial updates to a shop the caller owns
func (s *ShopService) UpdateShop(ctx context.Context, input UpdateShopInput) (*ShopInfo, error) {
	vendor, err := s.vendorRepo.FindByUserID(ctx, input.VendorUserID)
	if err != nil {
		return nil, err
	}

	found, err := s.shopRepo.FindByID(ctx, input.ShopID)
	if err != nil {
		return nil, err
	}
	if !found.IsOwnedBy(vendor.ID) {
		return nil, shared.ErrForbidden
	}

	if input.Name != nil {
		if err := found.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		if err := found.SetDescription(*input.Description); err != nil {
			return nil, err
		}
	}

	if err := s.shopRepo.Save(ctx, found); err != nil {
		return nil, err
	}

	info := NewShopInfo(found)
	return &info, nil
}

// GetShop returns a shop by ID
func (s *ShopService) GetShop(ctx context.Context, id uuid.UUID) (*ShopInfo, error) {
	found, err := s.shopRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	info := NewShopInfo(found)
	return &info, nil
}

// ListMyShops returns the calling vendor's shops
func (s *ShopService) ListMyShops(ctx context.Context, vendorUserID uuid.UUID, filter shared.Filter) (*shared.Paginated[ShopInfo], error) {
	vendor, err := s.vendorRepo.FindByUserID(ctx, vendorUserID)
	if err != nil {
		return nil, err
	}

	shops, err := s.shopRepo.FindByVendor(ctx, vendor.ID, filter)
	if err != nil {
		return nil, err
	}

	scoped := filter
	scoped.Filters = map[string]interface{}{"vendor_id": vendor.ID.String()}
	total, err := s.shopRepo.Count(ctx, scoped)
	if err != nil {
		return nil, err
	}

	infos := make([]ShopInfo, len(shops))
	for i := range shops {
		infos[i] = NewShopInfo(&shops[i])
	}

	result := shared.NewPaginated(infos, total, filter.Page, filter.PageSize)
	return &result, nil
}

// ListShops returns a paginated list of all shops (admin scope)
func (s *ShopService) ListShops(ctx context.Context, filter shared.Filter) (*shared.Paginated[ShopInfo], error) {
	shops, err := s.shopRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.shopRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	infos := make([]ShopInfo, len(shops))
	for i := range shops {
		infos[i] = NewShopInfo(&shops[i])
	}

	result := shared.NewPaginated(infos, total, filter.Page, filter.PageSize)
	return &result, nil
}

// BlacklistShop marks a shop as blacklisted (admin scope).
// Orders in flight are unaffected; new orders reject the shop's items.
func (s *ShopService) BlacklistShop(ctx context.Context, input BlacklistShopInput) (*ShopInfo, error) {
	found, err := s.shopRepo.FindByID(ctx, input.ShopID)
	if err != nil {
		return nil, err
	}

	if err := found.Blacklist(input.Reason); err != nil {
		return nil, err
	}

	if err := s.shopRepo.Save(ctx, found); err != nil {
		return nil, err
	}

	s.logger.Warn("shop blacklisted",
		zap.String("shop_id", found.ID.String()),
		zap.String("reason", input.Reason))

	info := NewShopInfo(found)
	return &info, nil
}

// UnblacklistShop clears a shop's blacklist flag (admin scope)
func (s *ShopService) UnblacklistShop(ctx context.Context, shopID uuid.UUID) (*ShopInfo, error) {
	found, err := s.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return nil, err
	}

	if err := found.Unblacklist(); err != nil {
		return nil, err
	}

	if err := s.shopRepo.Save(ctx, found); err != nil {
		return nil, err
	}

	s.logger.Info("shop unblacklisted", zap.String("shop_id", found.ID.String()))

	info := NewShopInfo(found)
	return &info, nil
}
