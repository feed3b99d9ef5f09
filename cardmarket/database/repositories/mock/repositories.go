package mock

import (
	context "context"
	reflect "reflect"
	time "time"

	models "github.com/footycards/card-market/cardmarket/database/models"
	repositories "github.com/footycards/card-market/cardmarket/database/repositories"
	rarity "github.com/footycards/card-market/cardmarket/economy/rarity"
	bun "github.com/uptrace/bun"
	gomock "go.uber.org/mock/gomock"
)

// MockUserRepository is a mock of UserRepository interface.
type MockUserRepository struct {
	ctrl     *gomock.Controller
	recorder *MockUserRepositoryMockRecorder
	isgomock struct{}
}

// MockUserRepositoryMockRecorder is the mock recorder for MockUserRepository.
type MockUserRepositoryMockRecorder struct {
	mock *MockUserRepository
}

// NewMockUserRepository creates a new mock instance.
func NewMockUserRepository(ctrl *gomock.Controller) *MockUserRepository {
	mock := &MockUserRepository{ctrl: ctrl}
	mock.recorder = &MockUserRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserRepository) EXPECT() *MockUserRepositoryMockRecorder {
	return m.recorder
}

// AddScore mocks base method.
func (m *MockUserRepository) AddScore(ctx context.Context, idb bun.IDB, userID int64, score int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddScore", ctx, idb, userID, score)
	ret0, _ := ret[0].(error)
	return ret0
}

// AddScore indicates an expected call of AddScore.
func (mr *MockUserRepositoryMockRecorder) AddScore(ctx, idb, userID, score any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddScore", reflect.TypeOf((*MockUserRepository)(nil).AddScore), ctx, idb, userID, score)
}

// CheckFreePackEligible mocks base method.
func (m *MockUserRepository) CheckFreePackEligible(ctx context.Context, userID int64, now time.Time, cooldown time.Duration, loc *time.Location) (bool, time.Duration, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CheckFreePackEligible", ctx, userID, now, cooldown, loc)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(time.Duration)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// CheckFreePackEligible indicates an expected call of CheckFreePackEligible.
func (mr *MockUserRepositoryMockRecorder) CheckFreePackEligible(ctx, userID, now, cooldown, loc any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CheckFreePackEligible", reflect.TypeOf((*MockUserRepository)(nil).CheckFreePackEligible), ctx, userID, now, cooldown, loc)
}

// ClaimFreePack mocks base method.
func (m *MockUserRepository) ClaimFreePack(ctx context.Context, idb bun.IDB, userID int64, now time.Time, cooldown time.Duration) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClaimFreePack", ctx, idb, userID, now, cooldown)
	ret0, _ := ret[0].(error)
	return ret0
}

// ClaimFreePack indicates an expected call of ClaimFreePack.
func (mr *MockUserRepositoryMockRecorder) ClaimFreePack(ctx, idb, userID, now, cooldown any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClaimFreePack", reflect.TypeOf((*MockUserRepository)(nil).ClaimFreePack), ctx, idb, userID, now, cooldown)
}

// Create mocks base method.
func (m *MockUserRepository) Create(ctx context.Context, user *models.User, now time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, user, now)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockUserRepositoryMockRecorder) Create(ctx, user, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockUserRepository)(nil).Create), ctx, user, now)
}

// Credit mocks base method.
func (m *MockUserRepository) Credit(ctx context.Context, idb bun.IDB, userID int64, amount int64, now time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Credit", ctx, idb, userID, amount, now)
	ret0, _ := ret[0].(error)
	return ret0
}

// Credit indicates an expected call of Credit.
func (mr *MockUserRepositoryMockRecorder) Credit(ctx, idb, userID, amount, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Credit", reflect.TypeOf((*MockUserRepository)(nil).Credit), ctx, idb, userID, amount, now)
}

// Debit mocks base method.
func (m *MockUserRepository) Debit(ctx context.Context, idb bun.IDB, userID int64, amount int64, now time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Debit", ctx, idb, userID, amount, now)
	ret0, _ := ret[0].(error)
	return ret0
}

// Debit indicates an expected call of Debit.
func (mr *MockUserRepositoryMockRecorder) Debit(ctx, idb, userID, amount, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Debit", reflect.TypeOf((*MockUserRepository)(nil).Debit), ctx, idb, userID, amount, now)
}

// GetBalance mocks base method.
func (m *MockUserRepository) GetBalance(ctx context.Context, userID int64) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBalance", ctx, userID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBalance indicates an expected call of GetBalance.
func (mr *MockUserRepositoryMockRecorder) GetBalance(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBalance", reflect.TypeOf((*MockUserRepository)(nil).GetBalance), ctx, userID)
}

// GetByID mocks base method.
func (m *MockUserRepository) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, userID)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockUserRepositoryMockRecorder) GetByID(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockUserRepository)(nil).GetByID), ctx, userID)
}

// GetTopByScore mocks base method.
func (m *MockUserRepository) GetTopByScore(ctx context.Context, limit int) ([]*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTopByScore", ctx, limit)
	ret0, _ := ret[0].([]*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTopByScore indicates an expected call of GetTopByScore.
func (mr *MockUserRepositoryMockRecorder) GetTopByScore(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTopByScore", reflect.TypeOf((*MockUserRepository)(nil).GetTopByScore), ctx, limit)
}

// LockPair mocks base method.
func (m *MockUserRepository) LockPair(ctx context.Context, tx bun.Tx, a int64, b int64) (*models.User, *models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LockPair", ctx, tx, a, b)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(*models.User)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// LockPair indicates an expected call of LockPair.
func (mr *MockUserRepositoryMockRecorder) LockPair(ctx, tx, a, b any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LockPair", reflect.TypeOf((*MockUserRepository)(nil).LockPair), ctx, tx, a, b)
}

// MockCardRepository is a mock of CardRepository interface.
type MockCardRepository struct {
	ctrl     *gomock.Controller
	recorder *MockCardRepositoryMockRecorder
	isgomock struct{}
}

// MockCardRepositoryMockRecorder is the mock recorder for MockCardRepository.
type MockCardRepositoryMockRecorder struct {
	mock *MockCardRepository
}

// NewMockCardRepository creates a new mock instance.
func NewMockCardRepository(ctrl *gomock.Controller) *MockCardRepository {
	mock := &MockCardRepository{ctrl: ctrl}
	mock.recorder = &MockCardRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCardRepository) EXPECT() *MockCardRepositoryMockRecorder {
	return m.recorder
}

// BulkCreate mocks base method.
func (m *MockCardRepository) BulkCreate(ctx context.Context, cards []*models.Card) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BulkCreate", ctx, cards)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// BulkCreate indicates an expected call of BulkCreate.
func (mr *MockCardRepositoryMockRecorder) BulkCreate(ctx, cards any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BulkCreate", reflect.TypeOf((*MockCardRepository)(nil).BulkCreate), ctx, cards)
}

// Count mocks base method.
func (m *MockCardRepository) Count(ctx context.Context) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Count", ctx)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Count indicates an expected call of Count.
func (mr *MockCardRepositoryMockRecorder) Count(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Count", reflect.TypeOf((*MockCardRepository)(nil).Count), ctx)
}

// CountByRarity mocks base method.
func (m *MockCardRepository) CountByRarity(ctx context.Context) (map[rarity.Rarity]int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountByRarity", ctx)
	ret0, _ := ret[0].(map[rarity.Rarity]int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountByRarity indicates an expected call of CountByRarity.
func (mr *MockCardRepositoryMockRecorder) CountByRarity(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountByRarity", reflect.TypeOf((*MockCardRepository)(nil).CountByRarity), ctx)
}

// Create mocks base method.
func (m *MockCardRepository) Create(ctx context.Context, card *models.Card) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, card)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockCardRepositoryMockRecorder) Create(ctx, card any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockCardRepository)(nil).Create), ctx, card)
}

// GetByID mocks base method.
func (m *MockCardRepository) GetByID(ctx context.Context, id int64) (*models.Card, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.Card)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockCardRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockCardRepository)(nil).GetByID), ctx, id)
}

// GetByIDs mocks base method.
func (m *MockCardRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Card, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByIDs", ctx, ids)
	ret0, _ := ret[0].([]*models.Card)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByIDs indicates an expected call of GetByIDs.
func (mr *MockCardRepositoryMockRecorder) GetByIDs(ctx, ids any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByIDs", reflect.TypeOf((*MockCardRepository)(nil).GetByIDs), ctx, ids)
}

// GetByUniqName mocks base method.
func (m *MockCardRepository) GetByUniqName(ctx context.Context, uniqName string) (*models.Card, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUniqName", ctx, uniqName)
	ret0, _ := ret[0].(*models.Card)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUniqName indicates an expected call of GetByUniqName.
func (mr *MockCardRepositoryMockRecorder) GetByUniqName(ctx, uniqName any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUniqName", reflect.TypeOf((*MockCardRepository)(nil).GetByUniqName), ctx, uniqName)
}

// Pools mocks base method.
func (m *MockCardRepository) Pools(ctx context.Context, idb bun.IDB, tiers []rarity.Rarity, collectionID *int64) ([]*models.Card, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Pools", ctx, idb, tiers, collectionID)
	ret0, _ := ret[0].([]*models.Card)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Pools indicates an expected call of Pools.
func (mr *MockCardRepositoryMockRecorder) Pools(ctx, idb, tiers, collectionID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Pools", reflect.TypeOf((*MockCardRepository)(nil).Pools), ctx, idb, tiers, collectionID)
}

// Sample mocks base method.
func (m *MockCardRepository) Sample(ctx context.Context, idb bun.IDB, tier rarity.Rarity, collectionID *int64, src rarity.Source) (*models.Card, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Sample", ctx, idb, tier, collectionID, src)
	ret0, _ := ret[0].(*models.Card)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Sample indicates an expected call of Sample.
func (mr *MockCardRepositoryMockRecorder) Sample(ctx, idb, tier, collectionID, src any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Sample", reflect.TypeOf((*MockCardRepository)(nil).Sample), ctx, idb, tier, collectionID, src)
}

// SearchByName mocks base method.
func (m *MockCardRepository) SearchByName(ctx context.Context, query string, limit int) ([]*models.Card, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchByName", ctx, query, limit)
	ret0, _ := ret[0].([]*models.Card)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SearchByName indicates an expected call of SearchByName.
func (mr *MockCardRepositoryMockRecorder) SearchByName(ctx, query, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchByName", reflect.TypeOf((*MockCardRepository)(nil).SearchByName), ctx, query, limit)
}

// MockCollectionRepository is a mock of CollectionRepository interface.
type MockCollectionRepository struct {
	ctrl     *gomock.Controller
	recorder *MockCollectionRepositoryMockRecorder
	isgomock struct{}
}

// MockCollectionRepositoryMockRecorder is the mock recorder for MockCollectionRepository.
type MockCollectionRepositoryMockRecorder struct {
	mock *MockCollectionRepository
}

// NewMockCollectionRepository creates a new mock instance.
func NewMockCollectionRepository(ctrl *gomock.Controller) *MockCollectionRepository {
	mock := &MockCollectionRepository{ctrl: ctrl}
	mock.recorder = &MockCollectionRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCollectionRepository) EXPECT() *MockCollectionRepositoryMockRecorder {
	return m.recorder
}

// Advance mocks base method.
func (m *MockCollectionRepository) Advance(ctx context.Context, idb bun.IDB, id int64, delta int) (int, int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Advance", ctx, idb, id, delta)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(int)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Advance indicates an expected call of Advance.
func (mr *MockCollectionRepositoryMockRecorder) Advance(ctx, idb, id, delta any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Advance", reflect.TypeOf((*MockCollectionRepository)(nil).Advance), ctx, idb, id, delta)
}

// Create mocks base method.
func (m *MockCollectionRepository) Create(ctx context.Context, collection *models.Collection) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, collection)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockCollectionRepositoryMockRecorder) Create(ctx, collection any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockCollectionRepository)(nil).Create), ctx, collection)
}

// GetAll mocks base method.
func (m *MockCollectionRepository) GetAll(ctx context.Context) ([]*models.Collection, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAll", ctx)
	ret0, _ := ret[0].([]*models.Collection)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAll indicates an expected call of GetAll.
func (mr *MockCollectionRepositoryMockRecorder) GetAll(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAll", reflect.TypeOf((*MockCollectionRepository)(nil).GetAll), ctx)
}

// GetByID mocks base method.
func (m *MockCollectionRepository) GetByID(ctx context.Context, id int64) (*models.Collection, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.Collection)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockCollectionRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockCollectionRepository)(nil).GetByID), ctx, id)
}

// GetForUpdate mocks base method.
func (m *MockCollectionRepository) GetForUpdate(ctx context.Context, tx bun.Tx, id int64) (*models.Collection, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetForUpdate", ctx, tx, id)
	ret0, _ := ret[0].(*models.Collection)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetForUpdate indicates an expected call of GetForUpdate.
func (mr *MockCollectionRepositoryMockRecorder) GetForUpdate(ctx, tx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetForUpdate", reflect.TypeOf((*MockCollectionRepository)(nil).GetForUpdate), ctx, tx, id)
}

// GetOpen mocks base method.
func (m *MockCollectionRepository) GetOpen(ctx context.Context, now time.Time) ([]*models.Collection, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOpen", ctx, now)
	ret0, _ := ret[0].([]*models.Collection)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOpen indicates an expected call of GetOpen.
func (mr *MockCollectionRepositoryMockRecorder) GetOpen(ctx, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOpen", reflect.TypeOf((*MockCollectionRepository)(nil).GetOpen), ctx, now)
}

// MockPackRepository is a mock of PackRepository interface.
type MockPackRepository struct {
	ctrl     *gomock.Controller
	recorder *MockPackRepositoryMockRecorder
	isgomock struct{}
}

// MockPackRepositoryMockRecorder is the mock recorder for MockPackRepository.
type MockPackRepositoryMockRecorder struct {
	mock *MockPackRepository
}

// NewMockPackRepository creates a new mock instance.
func NewMockPackRepository(ctrl *gomock.Controller) *MockPackRepository {
	mock := &MockPackRepository{ctrl: ctrl}
	mock.recorder = &MockPackRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPackRepository) EXPECT() *MockPackRepositoryMockRecorder {
	return m.recorder
}

// GetAlwaysAvailable mocks base method.
func (m *MockPackRepository) GetAlwaysAvailable(ctx context.Context) ([]*models.Pack, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAlwaysAvailable", ctx)
	ret0, _ := ret[0].([]*models.Pack)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAlwaysAvailable indicates an expected call of GetAlwaysAvailable.
func (mr *MockPackRepositoryMockRecorder) GetAlwaysAvailable(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAlwaysAvailable", reflect.TypeOf((*MockPackRepository)(nil).GetAlwaysAvailable), ctx)
}

// GetByID mocks base method.
func (m *MockPackRepository) GetByID(ctx context.Context, id string) (*models.Pack, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.Pack)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockPackRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockPackRepository)(nil).GetByID), ctx, id)
}

// GetOpenings mocks base method.
func (m *MockPackRepository) GetOpenings(ctx context.Context, userID int64, limit int) ([]*models.PackOpening, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOpenings", ctx, userID, limit)
	ret0, _ := ret[0].([]*models.PackOpening)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOpenings indicates an expected call of GetOpenings.
func (mr *MockPackRepositoryMockRecorder) GetOpenings(ctx, userID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOpenings", reflect.TypeOf((*MockPackRepository)(nil).GetOpenings), ctx, userID, limit)
}

// LogOpening mocks base method.
func (m *MockPackRepository) LogOpening(ctx context.Context, idb bun.IDB, opening *models.PackOpening) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LogOpening", ctx, idb, opening)
	ret0, _ := ret[0].(error)
	return ret0
}

// LogOpening indicates an expected call of LogOpening.
func (mr *MockPackRepositoryMockRecorder) LogOpening(ctx, idb, opening any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogOpening", reflect.TypeOf((*MockPackRepository)(nil).LogOpening), ctx, idb, opening)
}

// Upsert mocks base method.
func (m *MockPackRepository) Upsert(ctx context.Context, pack *models.Pack) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Upsert", ctx, pack)
	ret0, _ := ret[0].(error)
	return ret0
}

// Upsert indicates an expected call of Upsert.
func (mr *MockPackRepositoryMockRecorder) Upsert(ctx, pack any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Upsert", reflect.TypeOf((*MockPackRepository)(nil).Upsert), ctx, pack)
}

// MockUserCardRepository is a mock of UserCardRepository interface.
type MockUserCardRepository struct {
	ctrl     *gomock.Controller
	recorder *MockUserCardRepositoryMockRecorder
	isgomock struct{}
}

// MockUserCardRepositoryMockRecorder is the mock recorder for MockUserCardRepository.
type MockUserCardRepositoryMockRecorder struct {
	mock *MockUserCardRepository
}

// NewMockUserCardRepository creates a new mock instance.
func NewMockUserCardRepository(ctrl *gomock.Controller) *MockUserCardRepository {
	mock := &MockUserCardRepository{ctrl: ctrl}
	mock.recorder = &MockUserCardRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserCardRepository) EXPECT() *MockUserCardRepositoryMockRecorder {
	return m.recorder
}

// CountByRarity mocks base method.
func (m *MockUserCardRepository) CountByRarity(ctx context.Context, userID int64) (map[rarity.Rarity]int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountByRarity", ctx, userID)
	ret0, _ := ret[0].(map[rarity.Rarity]int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountByRarity indicates an expected call of CountByRarity.
func (mr *MockUserCardRepositoryMockRecorder) CountByRarity(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountByRarity", reflect.TypeOf((*MockUserCardRepository)(nil).CountByRarity), ctx, userID)
}

// GetAllByUserID mocks base method.
func (m *MockUserCardRepository) GetAllByUserID(ctx context.Context, userID int64) ([]*models.UserCard, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAllByUserID", ctx, userID)
	ret0, _ := ret[0].([]*models.UserCard)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAllByUserID indicates an expected call of GetAllByUserID.
func (mr *MockUserCardRepositoryMockRecorder) GetAllByUserID(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAllByUserID", reflect.TypeOf((*MockUserCardRepository)(nil).GetAllByUserID), ctx, userID)
}

// GetByID mocks base method.
func (m *MockUserCardRepository) GetByID(ctx context.Context, id int64) (*models.UserCard, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.UserCard)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockUserCardRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockUserCardRepository)(nil).GetByID), ctx, id)
}

// GetCopies mocks base method.
func (m *MockUserCardRepository) GetCopies(ctx context.Context, userID int64, cardID int64) ([]*models.UserCard, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCopies", ctx, userID, cardID)
	ret0, _ := ret[0].([]*models.UserCard)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCopies indicates an expected call of GetCopies.
func (mr *MockUserCardRepositoryMockRecorder) GetCopies(ctx, userID, cardID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCopies", reflect.TypeOf((*MockUserCardRepository)(nil).GetCopies), ctx, userID, cardID)
}

// GetForUpdate mocks base method.
func (m *MockUserCardRepository) GetForUpdate(ctx context.Context, tx bun.Tx, id int64) (*models.UserCard, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetForUpdate", ctx, tx, id)
	ret0, _ := ret[0].(*models.UserCard)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetForUpdate indicates an expected call of GetForUpdate.
func (mr *MockUserCardRepositoryMockRecorder) GetForUpdate(ctx, tx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetForUpdate", reflect.TypeOf((*MockUserCardRepository)(nil).GetForUpdate), ctx, tx, id)
}

// GetStacks mocks base method.
func (m *MockUserCardRepository) GetStacks(ctx context.Context, userID int64, tier *rarity.Rarity) ([]*repositories.CardStack, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetStacks", ctx, userID, tier)
	ret0, _ := ret[0].([]*repositories.CardStack)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetStacks indicates an expected call of GetStacks.
func (mr *MockUserCardRepositoryMockRecorder) GetStacks(ctx, userID, tier any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStacks", reflect.TypeOf((*MockUserCardRepository)(nil).GetStacks), ctx, userID, tier)
}

// IssueCopy mocks base method.
func (m *MockUserCardRepository) IssueCopy(ctx context.Context, idb bun.IDB, cardID int64, ownerID int64, obtainedAt time.Time) (*models.UserCard, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IssueCopy", ctx, idb, cardID, ownerID, obtainedAt)
	ret0, _ := ret[0].(*models.UserCard)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IssueCopy indicates an expected call of IssueCopy.
func (mr *MockUserCardRepositoryMockRecorder) IssueCopy(ctx, idb, cardID, ownerID, obtainedAt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IssueCopy", reflect.TypeOf((*MockUserCardRepository)(nil).IssueCopy), ctx, idb, cardID, ownerID, obtainedAt)
}

// Serials mocks base method.
func (m *MockUserCardRepository) Serials(ctx context.Context, cardID int64) ([]int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Serials", ctx, cardID)
	ret0, _ := ret[0].([]int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Serials indicates an expected call of Serials.
func (mr *MockUserCardRepositoryMockRecorder) Serials(ctx, cardID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Serials", reflect.TypeOf((*MockUserCardRepository)(nil).Serials), ctx, cardID)
}

// SetFavorite mocks base method.
func (m *MockUserCardRepository) SetFavorite(ctx context.Context, id int64, userID int64, favorite bool, now time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetFavorite", ctx, id, userID, favorite, now)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetFavorite indicates an expected call of SetFavorite.
func (mr *MockUserCardRepositoryMockRecorder) SetFavorite(ctx, id, userID, favorite, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetFavorite", reflect.TypeOf((*MockUserCardRepository)(nil).SetFavorite), ctx, id, userID, favorite, now)
}

// SetLocked mocks base method.
func (m *MockUserCardRepository) SetLocked(ctx context.Context, id int64, userID int64, locked bool, now time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetLocked", ctx, id, userID, locked, now)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetLocked indicates an expected call of SetLocked.
func (mr *MockUserCardRepositoryMockRecorder) SetLocked(ctx, id, userID, locked, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetLocked", reflect.TypeOf((*MockUserCardRepository)(nil).SetLocked), ctx, id, userID, locked, now)
}

// TransferOwner mocks base method.
func (m *MockUserCardRepository) TransferOwner(ctx context.Context, tx bun.Tx, id int64, fromUserID int64, toUserID int64, now time.Time) (*models.UserCard, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TransferOwner", ctx, tx, id, fromUserID, toUserID, now)
	ret0, _ := ret[0].(*models.UserCard)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// TransferOwner indicates an expected call of TransferOwner.
func (mr *MockUserCardRepositoryMockRecorder) TransferOwner(ctx, tx, id, fromUserID, toUserID, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TransferOwner", reflect.TypeOf((*MockUserCardRepository)(nil).TransferOwner), ctx, tx, id, fromUserID, toUserID, now)
}

// MockListingRepository is a mock of ListingRepository interface.
type MockListingRepository struct {
	ctrl     *gomock.Controller
	recorder *MockListingRepositoryMockRecorder
	isgomock struct{}
}

// MockListingRepositoryMockRecorder is the mock recorder for MockListingRepository.
type MockListingRepositoryMockRecorder struct {
	mock *MockListingRepository
}

// NewMockListingRepository creates a new mock instance.
func NewMockListingRepository(ctrl *gomock.Controller) *MockListingRepository {
	mock := &MockListingRepository{ctrl: ctrl}
	mock.recorder = &MockListingRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockListingRepository) EXPECT() *MockListingRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockListingRepository) Create(ctx context.Context, sellerID int64, userCardID int64, price int64, now time.Time) (*models.MarketListing, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, sellerID, userCardID, price, now)
	ret0, _ := ret[0].(*models.MarketListing)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockListingRepositoryMockRecorder) Create(ctx, sellerID, userCardID, price, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockListingRepository)(nil).Create), ctx, sellerID, userCardID, price, now)
}

// GetByID mocks base method.
func (m *MockListingRepository) GetByID(ctx context.Context, id int64) (*models.MarketListing, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.MarketListing)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockListingRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockListingRepository)(nil).GetByID), ctx, id)
}

// GetView mocks base method.
func (m *MockListingRepository) GetView(ctx context.Context, id int64) (*models.ListingView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetView", ctx, id)
	ret0, _ := ret[0].(*models.ListingView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetView indicates an expected call of GetView.
func (mr *MockListingRepositoryMockRecorder) GetView(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetView", reflect.TypeOf((*MockListingRepository)(nil).GetView), ctx, id)
}

// ListActive mocks base method.
func (m *MockListingRepository) ListActive(ctx context.Context, filter repositories.ListingFilter) ([]*models.ListingView, int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListActive", ctx, filter)
	ret0, _ := ret[0].([]*models.ListingView)
	ret1, _ := ret[1].(int)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListActive indicates an expected call of ListActive.
func (mr *MockListingRepositoryMockRecorder) ListActive(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListActive", reflect.TypeOf((*MockListingRepository)(nil).ListActive), ctx, filter)
}

// ListBySeller mocks base method.
func (m *MockListingRepository) ListBySeller(ctx context.Context, sellerID int64, status models.ListingStatus) ([]*models.ListingView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListBySeller", ctx, sellerID, status)
	ret0, _ := ret[0].([]*models.ListingView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListBySeller indicates an expected call of ListBySeller.
func (mr *MockListingRepositoryMockRecorder) ListBySeller(ctx, sellerID, status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListBySeller", reflect.TypeOf((*MockListingRepository)(nil).ListBySeller), ctx, sellerID, status)
}

// Remove mocks base method.
func (m *MockListingRepository) Remove(ctx context.Context, id int64, sellerID int64, now time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Remove", ctx, id, sellerID, now)
	ret0, _ := ret[0].(error)
	return ret0
}

// Remove indicates an expected call of Remove.
func (mr *MockListingRepositoryMockRecorder) Remove(ctx, id, sellerID, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Remove", reflect.TypeOf((*MockListingRepository)(nil).Remove), ctx, id, sellerID, now)
}

// UpdatePrice mocks base method.
func (m *MockListingRepository) UpdatePrice(ctx context.Context, id int64, sellerID int64, price int64, now time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdatePrice", ctx, id, sellerID, price, now)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdatePrice indicates an expected call of UpdatePrice.
func (mr *MockListingRepositoryMockRecorder) UpdatePrice(ctx, id, sellerID, price, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdatePrice", reflect.TypeOf((*MockListingRepository)(nil).UpdatePrice), ctx, id, sellerID, price, now)
}

// MockTradeRepository is a mock of TradeRepository interface.
type MockTradeRepository struct {
	ctrl     *gomock.Controller
	recorder *MockTradeRepositoryMockRecorder
	isgomock struct{}
}

// MockTradeRepositoryMockRecorder is the mock recorder for MockTradeRepository.
type MockTradeRepositoryMockRecorder struct {
	mock *MockTradeRepository
}

// NewMockTradeRepository creates a new mock instance.
func NewMockTradeRepository(ctrl *gomock.Controller) *MockTradeRepository {
	mock := &MockTradeRepository{ctrl: ctrl}
	mock.recorder = &MockTradeRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTradeRepository) EXPECT() *MockTradeRepositoryMockRecorder {
	return m.recorder
}

// ExecuteBuy mocks base method.
func (m *MockTradeRepository) ExecuteBuy(ctx context.Context, tx bun.Tx, listingID int64, buyerID int64, now time.Time) (*models.TradeRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExecuteBuy", ctx, tx, listingID, buyerID, now)
	ret0, _ := ret[0].(*models.TradeRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExecuteBuy indicates an expected call of ExecuteBuy.
func (mr *MockTradeRepositoryMockRecorder) ExecuteBuy(ctx, tx, listingID, buyerID, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExecuteBuy", reflect.TypeOf((*MockTradeRepository)(nil).ExecuteBuy), ctx, tx, listingID, buyerID, now)
}

// GetByUserCard mocks base method.
func (m *MockTradeRepository) GetByUserCard(ctx context.Context, userCardID int64, limit int) ([]*models.TradeRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserCard", ctx, userCardID, limit)
	ret0, _ := ret[0].([]*models.TradeRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserCard indicates an expected call of GetByUserCard.
func (mr *MockTradeRepositoryMockRecorder) GetByUserCard(ctx, userCardID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserCard", reflect.TypeOf((*MockTradeRepository)(nil).GetByUserCard), ctx, userCardID, limit)
}

// GetPurchases mocks base method.
func (m *MockTradeRepository) GetPurchases(ctx context.Context, buyerID int64, limit int) ([]*models.TradeRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPurchases", ctx, buyerID, limit)
	ret0, _ := ret[0].([]*models.TradeRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetPurchases indicates an expected call of GetPurchases.
func (mr *MockTradeRepositoryMockRecorder) GetPurchases(ctx, buyerID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPurchases", reflect.TypeOf((*MockTradeRepository)(nil).GetPurchases), ctx, buyerID, limit)
}

// GetSales mocks base method.
func (m *MockTradeRepository) GetSales(ctx context.Context, sellerID int64, limit int) ([]*models.TradeRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSales", ctx, sellerID, limit)
	ret0, _ := ret[0].([]*models.TradeRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSales indicates an expected call of GetSales.
func (mr *MockTradeRepositoryMockRecorder) GetSales(ctx, sellerID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSales", reflect.TypeOf((*MockTradeRepository)(nil).GetSales), ctx, sellerID, limit)
}

// GetStats mocks base method.
func (m *MockTradeRepository) GetStats(ctx context.Context, cardIDs []int64, since time.Time) ([]*repositories.SaleStats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetStats", ctx, cardIDs, since)
	ret0, _ := ret[0].([]*repositories.SaleStats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetStats indicates an expected call of GetStats.
func (mr *MockTradeRepositoryMockRecorder) GetStats(ctx, cardIDs, since any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStats", reflect.TypeOf((*MockTradeRepository)(nil).GetStats), ctx, cardIDs, since)
}
