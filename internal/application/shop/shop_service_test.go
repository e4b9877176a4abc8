package shop

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marketbay/backend/internal/domain/partner"
	"github.com/marketbay/backend/internal/domain/shared"
	"github.com/marketbay/backend/internal/domain/shop"
)

// MockShopRepository is a mock implementation of shop.ShopRepository
type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) FindByID(ctx context.Context, id uuid.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

func (m *MockShopRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]shop.Shop, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]shop.Shop), args.Error(1)
}

func (m *MockShopRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]shop.Shop, error) {
	args := m.Called(ctx, vendorID, filter)
	return args.Get(0).([]shop.Shop), args.Error(1)
}

func (m *MockShopRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shop.Shop, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]shop.Shop), args.Error(1)
}

func (m *MockShopRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShopRepository) Save(ctx context.Context, s *shop.Shop) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVendorRepository is a mock implementation of partner.VendorRepository
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*partner.Vendor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindByEmail(ctx context.Context, email string) (*partner.Vendor, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Vendor, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVendorRepository) Save(ctx context.Context, v *partner.Vendor) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestVendor(t *testing.T) *partner.Vendor {
	t.Helper()
	vendor, err := partner.NewVendor(uuid.New(), "seller@example.com", "Seller One")
	require.NoError(t, err)
	return vendor
}

func TestCreateShop(t *testing.T) {
	shopRepo := new(MockShopRepository)
	vendorRepo := new(MockVendorRepository)
	svc := NewShopService(shopRepo, vendorRepo, zap.NewNop())

	vendor := newTestVendor(t)
	vendorRepo.On("FindByUserID", mock.Anything, vendor.UserID).Return(vendor, nil)
	shopRepo.On("Save", mock.Anything, mock.AnythingOfType("*shop.Shop")).Return(nil)

	info, err := svc.CreateShop(context.Background(), CreateShopInput{
		VendorUserID: vendor.UserID,
		Name:         "Trendy Threads",
		Description:  "Clothing for every season",
	})
	require.NoError(t, err)

	assert.Equal(t, "Trendy Threads", info.Name)
	assert.Equal(t, vendor.ID, info.VendorID)
	assert.False(t, info.Blacklisted)
}

func TestCreateShopVendorMissing(t *testing.T) {
	shopRepo := new(MockShopRepository)
	vendorRepo := new(MockVendorRepository)
	svc := NewShopService(shopRepo, vendorRepo, zap.NewNop())

	userID := uuid.New()
	vendorRepo.On("FindByUserID", mock.Anything, userID).Return(nil, shared.ErrNotFound)

	_, err := svc.CreateShop(context.Background(), CreateShopInput{
		VendorUserID: userID,
		Name:         "Orphan Shop",
	})
	assert.ErrorIs(t, err, shared.ErrNotFound)
	shopRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdateShopOwnershipEnforced(t *testing.T) {
	shopRepo := new(MockShopRepository)
	vendorRepo := new(MockVendorRepository)
	svc := NewShopService(shopRepo, vendorRepo, zap.NewNop())

	owner := newTestVendor(t)
	intruder := newTestVendor(t)

	owned, err := shop.NewShop("Trendy Threads", owner.ID)
	require.NoError(t, err)

	vendorRepo.On("FindByUserID", mock.Anything, intruder.UserID).Return(intruder, nil)
	shopRepo.On("FindByID", mock.Anything, owned.ID).Return(owned, nil)

	newName := "Hijacked"
	_, err = svc.UpdateShop(context.Background(), UpdateShopInput{
		VendorUserID: intruder.UserID,
		ShopID:       owned.ID,
		Name:         &newName,
	})
	assert.ErrorIs(t, err, shared.ErrForbidden)
	shopRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestBlacklistShop(t *testing.T) {
	shopRepo := new(MockShopRepository)
	svc := NewShopService(shopRepo, new(MockVendorRepository), zap.NewNop())

	target, err := shop.NewShop("Shady Shop", uuid.New())
	require.NoError(t, err)
	shopRepo.On("FindByID", mock.Anything, target.ID).Return(target, nil)
	shopRepo.On("Save", mock.Anything, target).Return(nil)

	info, err := svc.BlacklistShop(context.Background(), BlacklistShopInput{
		ShopID: target.ID,
		Reason: "counterfeit goods",
	})
	require.NoError(t, err)
	assert.True(t, info.Blacklisted)
	assert.Equal(t, "counterfeit goods", info.BlacklistReason)

	// Blacklisting twice is rejected by the aggregate
	_, err = svc.BlacklistShop(context.Background(), BlacklistShopInput{
		ShopID: target.ID,
		Reason: "again",
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_BLACKLISTED", domainErr.Code)
}

func TestUnblacklistShop(t *testing.T) {
	shopRepo := new(MockShopRepository)
	svc := NewShopService(shopRepo, new(MockVendorRepository), zap.NewNop())

	target, err := shop.NewShop("Shady Shop", uuid.New())
	require.NoError(t, err)
	require.NoError(t, target.Blacklist("counterfeit goods"))

	shopRepo.On("FindByID", mock.Anything, target.ID).Return(target, nil)
	shopRepo.On("Save", mock.Anything, target).Return(nil)

	info, err := svc.UnblacklistShop(context.Background(), target.ID)
	require.NoError(t, err)
	assert.False(t, info.Blacklisted)
	assert.Empty(t, info.BlacklistReason)
}

func TestListMyShops(t *testing.T) {
	shopRepo := new(MockShopRepository)
	vendorRepo := new(MockVendorRepository)
	svc := NewShopService(shopRepo, vendorRepo, zap.NewNop())

	vendor := newTestVendor(t)
	s1, err := shop.NewShop("Shop One", vendor.ID)
	require.NoError(t, err)

	vendorRepo.On("FindByUserID", mock.Anything, vendor.UserID).Return(vendor, nil)
	shopRepo.On("FindByVendor", mock.Anything, vendor.ID, mock.Anything).Return([]shop.Shop{*s1}, nil)
	shopRepo.On("Count", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["vendor_id"] == vendor.ID.String()
	})).Return(int64(1), nil)

	result, err := svc.ListMyShops(context.Background(), vendor.UserID, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Items, 1)
	assert.Equal(t, s1.ID, result.Items[0].ID)
}
