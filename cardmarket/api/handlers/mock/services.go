package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/footycards/card-market/cardmarket/database/models"
	repositories "github.com/footycards/card-market/cardmarket/database/repositories"
	inventory "github.com/footycards/card-market/internal/domain/inventory"
	market "github.com/footycards/card-market/cardmarket/economy/market"
	packs "github.com/footycards/card-market/cardmarket/economy/packs"
	pricing "github.com/footycards/card-market/cardmarket/economy/pricing"
	gomock "go.uber.org/mock/gomock"
)

// MockPackService is a mock of PackService interface.
type MockPackService struct {
	ctrl     *gomock.Controller
	recorder *MockPackServiceMockRecorder
	isgomock struct{}
}

// MockPackServiceMockRecorder is the mock recorder for MockPackService.
type MockPackServiceMockRecorder struct {
	mock *MockPackService
}

// NewMockPackService creates a new mock instance.
func NewMockPackService(ctrl *gomock.Controller) *MockPackService {
	mock := &MockPackService{ctrl: ctrl}
	mock.recorder = &MockPackServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPackService) EXPECT() *MockPackServiceMockRecorder {
	return m.recorder
}

// FreePackStatus mocks base method.
func (m *MockPackService) FreePackStatus(ctx context.Context, userID int64) (*packs.FreePackStatus, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FreePackStatus", ctx, userID)
	ret0, _ := ret[0].(*packs.FreePackStatus)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FreePackStatus indicates an expected call of FreePackStatus.
func (mr *MockPackServiceMockRecorder) FreePackStatus(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FreePackStatus", reflect.TypeOf((*MockPackService)(nil).FreePackStatus), ctx, userID)
}

// ListAvailablePacks mocks base method.
func (m *MockPackService) ListAvailablePacks(ctx context.Context) ([]*models.Pack, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListAvailablePacks", ctx)
	ret0, _ := ret[0].([]*models.Pack)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListAvailablePacks indicates an expected call of ListAvailablePacks.
func (mr *MockPackServiceMockRecorder) ListAvailablePacks(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListAvailablePacks", reflect.TypeOf((*MockPackService)(nil).ListAvailablePacks), ctx)
}

// OpenPack mocks base method.
func (m *MockPackService) OpenPack(ctx context.Context, packID string, userID int64) (*packs.OpenResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OpenPack", ctx, packID, userID)
	ret0, _ := ret[0].(*packs.OpenResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// OpenPack indicates an expected call of OpenPack.
func (mr *MockPackServiceMockRecorder) OpenPack(ctx, packID, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OpenPack", reflect.TypeOf((*MockPackService)(nil).OpenPack), ctx, packID, userID)
}

// Openings mocks base method.
func (m *MockPackService) Openings(ctx context.Context, userID int64, limit int) ([]*models.PackOpening, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Openings", ctx, userID, limit)
	ret0, _ := ret[0].([]*models.PackOpening)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Openings indicates an expected call of Openings.
func (mr *MockPackServiceMockRecorder) Openings(ctx, userID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Openings", reflect.TypeOf((*MockPackService)(nil).Openings), ctx, userID, limit)
}

// MockMarketService is a mock of MarketService interface.
type MockMarketService struct {
	ctrl     *gomock.Controller
	recorder *MockMarketServiceMockRecorder
	isgomock struct{}
}

// MockMarketServiceMockRecorder is the mock recorder for MockMarketService.
type MockMarketServiceMockRecorder struct {
	mock *MockMarketService
}

// NewMockMarketService creates a new mock instance.
func NewMockMarketService(ctrl *gomock.Controller) *MockMarketService {
	mock := &MockMarketService{ctrl: ctrl}
	mock.recorder = &MockMarketServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMarketService) EXPECT() *MockMarketServiceMockRecorder {
	return m.recorder
}

// Browse mocks base method.
func (m *MockMarketService) Browse(ctx context.Context, filter repositories.ListingFilter) ([]*models.ListingView, int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Browse", ctx, filter)
	ret0, _ := ret[0].([]*models.ListingView)
	ret1, _ := ret[1].(int)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Browse indicates an expected call of Browse.
func (mr *MockMarketServiceMockRecorder) Browse(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Browse", reflect.TypeOf((*MockMarketService)(nil).Browse), ctx, filter)
}

// BuyListing mocks base method.
func (m *MockMarketService) BuyListing(ctx context.Context, listingID int64, buyerID int64) (*models.TradeRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BuyListing", ctx, listingID, buyerID)
	ret0, _ := ret[0].(*models.TradeRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// BuyListing indicates an expected call of BuyListing.
func (mr *MockMarketServiceMockRecorder) BuyListing(ctx, listingID, buyerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BuyListing", reflect.TypeOf((*MockMarketService)(nil).BuyListing), ctx, listingID, buyerID)
}

// CopyHistory mocks base method.
func (m *MockMarketService) CopyHistory(ctx context.Context, userCardID int64) ([]*models.TradeRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CopyHistory", ctx, userCardID)
	ret0, _ := ret[0].([]*models.TradeRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CopyHistory indicates an expected call of CopyHistory.
func (mr *MockMarketServiceMockRecorder) CopyHistory(ctx, userCardID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CopyHistory", reflect.TypeOf((*MockMarketService)(nil).CopyHistory), ctx, userCardID)
}

// CreateListing mocks base method.
func (m *MockMarketService) CreateListing(ctx context.Context, sellerID int64, userCardID int64, price int64) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateListing", ctx, sellerID, userCardID, price)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateListing indicates an expected call of CreateListing.
func (mr *MockMarketServiceMockRecorder) CreateListing(ctx, sellerID, userCardID, price any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateListing", reflect.TypeOf((*MockMarketService)(nil).CreateListing), ctx, sellerID, userCardID, price)
}

// GetListing mocks base method.
func (m *MockMarketService) GetListing(ctx context.Context, listingID int64) (*models.ListingView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetListing", ctx, listingID)
	ret0, _ := ret[0].(*models.ListingView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetListing indicates an expected call of GetListing.
func (mr *MockMarketServiceMockRecorder) GetListing(ctx, listingID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetListing", reflect.TypeOf((*MockMarketService)(nil).GetListing), ctx, listingID)
}

// MyListings mocks base method.
func (m *MockMarketService) MyListings(ctx context.Context, sellerID int64) ([]*models.ListingView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MyListings", ctx, sellerID)
	ret0, _ := ret[0].([]*models.ListingView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MyListings indicates an expected call of MyListings.
func (mr *MockMarketServiceMockRecorder) MyListings(ctx, sellerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MyListings", reflect.TypeOf((*MockMarketService)(nil).MyListings), ctx, sellerID)
}

// RemoveListing mocks base method.
func (m *MockMarketService) RemoveListing(ctx context.Context, listingID int64, sellerID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveListing", ctx, listingID, sellerID)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemoveListing indicates an expected call of RemoveListing.
func (mr *MockMarketServiceMockRecorder) RemoveListing(ctx, listingID, sellerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveListing", reflect.TypeOf((*MockMarketService)(nil).RemoveListing), ctx, listingID, sellerID)
}

// UpdateListingPrice mocks base method.
func (m *MockMarketService) UpdateListingPrice(ctx context.Context, listingID int64, sellerID int64, price int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateListingPrice", ctx, listingID, sellerID, price)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateListingPrice indicates an expected call of UpdateListingPrice.
func (mr *MockMarketServiceMockRecorder) UpdateListingPrice(ctx, listingID, sellerID, price any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateListingPrice", reflect.TypeOf((*MockMarketService)(nil).UpdateListingPrice), ctx, listingID, sellerID, price)
}

// UserHistory mocks base method.
func (m *MockMarketService) UserHistory(ctx context.Context, userID int64) (*market.History, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UserHistory", ctx, userID)
	ret0, _ := ret[0].(*market.History)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UserHistory indicates an expected call of UserHistory.
func (mr *MockMarketServiceMockRecorder) UserHistory(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UserHistory", reflect.TypeOf((*MockMarketService)(nil).UserHistory), ctx, userID)
}

// MockStatsService is a mock of StatsService interface.
type MockStatsService struct {
	ctrl     *gomock.Controller
	recorder *MockStatsServiceMockRecorder
	isgomock struct{}
}

// MockStatsServiceMockRecorder is the mock recorder for MockStatsService.
type MockStatsServiceMockRecorder struct {
	mock *MockStatsService
}

// NewMockStatsService creates a new mock instance.
func NewMockStatsService(ctrl *gomock.Controller) *MockStatsService {
	mock := &MockStatsService{ctrl: ctrl}
	mock.recorder = &MockStatsServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStatsService) EXPECT() *MockStatsServiceMockRecorder {
	return m.recorder
}

// GetMany mocks base method.
func (m *MockStatsService) GetMany(ctx context.Context, cardIDs []int64) (map[int64]pricing.CardStats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMany", ctx, cardIDs)
	ret0, _ := ret[0].(map[int64]pricing.CardStats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMany indicates an expected call of GetMany.
func (mr *MockStatsServiceMockRecorder) GetMany(ctx, cardIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMany", reflect.TypeOf((*MockStatsService)(nil).GetMany), ctx, cardIDs)
}

// Invalidate mocks base method.
func (m *MockStatsService) Invalidate(cardID int64) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Invalidate", cardID)
}

// Invalidate indicates an expected call of Invalidate.
func (mr *MockStatsServiceMockRecorder) Invalidate(cardID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Invalidate", reflect.TypeOf((*MockStatsService)(nil).Invalidate), cardID)
}

// MockAccountService is a mock of AccountService interface.
type MockAccountService struct {
	ctrl     *gomock.Controller
	recorder *MockAccountServiceMockRecorder
	isgomock struct{}
}

// MockAccountServiceMockRecorder is the mock recorder for MockAccountService.
type MockAccountServiceMockRecorder struct {
	mock *MockAccountService
}

// NewMockAccountService creates a new mock instance.
func NewMockAccountService(ctrl *gomock.Controller) *MockAccountService {
	mock := &MockAccountService{ctrl: ctrl}
	mock.recorder = &MockAccountServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAccountService) EXPECT() *MockAccountServiceMockRecorder {
	return m.recorder
}

// CreateAccount mocks base method.
func (m *MockAccountService) CreateAccount(ctx context.Context, userID int64, username string) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateAccount", ctx, userID, username)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateAccount indicates an expected call of CreateAccount.
func (mr *MockAccountServiceMockRecorder) CreateAccount(ctx, userID, username any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateAccount", reflect.TypeOf((*MockAccountService)(nil).CreateAccount), ctx, userID, username)
}

// GetAccount mocks base method.
func (m *MockAccountService) GetAccount(ctx context.Context, userID int64) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAccount", ctx, userID)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAccount indicates an expected call of GetAccount.
func (mr *MockAccountServiceMockRecorder) GetAccount(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAccount", reflect.TypeOf((*MockAccountService)(nil).GetAccount), ctx, userID)
}

// Leaderboard mocks base method.
func (m *MockAccountService) Leaderboard(ctx context.Context, limit int) ([]*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Leaderboard", ctx, limit)
	ret0, _ := ret[0].([]*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Leaderboard indicates an expected call of Leaderboard.
func (mr *MockAccountServiceMockRecorder) Leaderboard(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Leaderboard", reflect.TypeOf((*MockAccountService)(nil).Leaderboard), ctx, limit)
}

// MockInventoryService is a mock of InventoryService interface.
type MockInventoryService struct {
	ctrl     *gomock.Controller
	recorder *MockInventoryServiceMockRecorder
	isgomock struct{}
}

// MockInventoryServiceMockRecorder is the mock recorder for MockInventoryService.
type MockInventoryServiceMockRecorder struct {
	mock *MockInventoryService
}

// NewMockInventoryService creates a new mock instance.
func NewMockInventoryService(ctrl *gomock.Controller) *MockInventoryService {
	mock := &MockInventoryService{ctrl: ctrl}
	mock.recorder = &MockInventoryServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockInventoryService) EXPECT() *MockInventoryServiceMockRecorder {
	return m.recorder
}

// GetCardDetail mocks base method.
func (m *MockInventoryService) GetCardDetail(ctx context.Context, userID int64, cardID int64) (*inventory.CardDetail, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCardDetail", ctx, userID, cardID)
	ret0, _ := ret[0].(*inventory.CardDetail)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCardDetail indicates an expected call of GetCardDetail.
func (mr *MockInventoryServiceMockRecorder) GetCardDetail(ctx, userID, cardID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCardDetail", reflect.TypeOf((*MockInventoryService)(nil).GetCardDetail), ctx, userID, cardID)
}

// GetInventory mocks base method.
func (m *MockInventoryService) GetInventory(ctx context.Context, userID int64, filter inventory.Filter) (*inventory.Inventory, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetInventory", ctx, userID, filter)
	ret0, _ := ret[0].(*inventory.Inventory)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetInventory indicates an expected call of GetInventory.
func (mr *MockInventoryServiceMockRecorder) GetInventory(ctx, userID, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetInventory", reflect.TypeOf((*MockInventoryService)(nil).GetInventory), ctx, userID, filter)
}

// Search mocks base method.
func (m *MockInventoryService) Search(ctx context.Context, query string) ([]inventory.Stack, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Search", ctx, query)
	ret0, _ := ret[0].([]inventory.Stack)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Search indicates an expected call of Search.
func (mr *MockInventoryServiceMockRecorder) Search(ctx, query any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Search", reflect.TypeOf((*MockInventoryService)(nil).Search), ctx, query)
}

// SetFavorite mocks base method.
func (m *MockInventoryService) SetFavorite(ctx context.Context, userID int64, userCardID int64, favorite bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetFavorite", ctx, userID, userCardID, favorite)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetFavorite indicates an expected call of SetFavorite.
func (mr *MockInventoryServiceMockRecorder) SetFavorite(ctx, userID, userCardID, favorite any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetFavorite", reflect.TypeOf((*MockInventoryService)(nil).SetFavorite), ctx, userID, userCardID, favorite)
}

// SetLocked mocks base method.
func (m *MockInventoryService) SetLocked(ctx context.Context, userID int64, userCardID int64, locked bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetLocked", ctx, userID, userCardID, locked)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetLocked indicates an expected call of SetLocked.
func (mr *MockInventoryServiceMockRecorder) SetLocked(ctx, userID, userCardID, locked any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetLocked", reflect.TypeOf((*MockInventoryService)(nil).SetLocked), ctx, userID, userCardID, locked)
}
