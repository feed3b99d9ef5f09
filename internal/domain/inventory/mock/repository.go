package mock

import (
	context "context"
	reflect "reflect"
	time "time"

	models "github.com/footycards/card-market/cardmarket/database/models"
	repositories "github.com/footycards/card-market/cardmarket/database/repositories"
	rarity "github.com/footycards/card-market/cardmarket/economy/rarity"
	gomock "go.uber.org/mock/gomock"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
	isgomock struct{}
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// CountCatalog mocks base method.
func (m *MockRepository) CountCatalog(ctx context.Context) (map[rarity.Rarity]int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountCatalog", ctx)
	ret0, _ := ret[0].(map[rarity.Rarity]int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountCatalog indicates an expected call of CountCatalog.
func (mr *MockRepositoryMockRecorder) CountCatalog(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountCatalog", reflect.TypeOf((*MockRepository)(nil).CountCatalog), ctx)
}

// CountOwned mocks base method.
func (m *MockRepository) CountOwned(ctx context.Context, userID int64) (map[rarity.Rarity]int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountOwned", ctx, userID)
	ret0, _ := ret[0].(map[rarity.Rarity]int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountOwned indicates an expected call of CountOwned.
func (mr *MockRepositoryMockRecorder) CountOwned(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountOwned", reflect.TypeOf((*MockRepository)(nil).CountOwned), ctx, userID)
}

// GetCard mocks base method.
func (m *MockRepository) GetCard(ctx context.Context, cardID int64) (*models.Card, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCard", ctx, cardID)
	ret0, _ := ret[0].(*models.Card)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCard indicates an expected call of GetCard.
func (mr *MockRepositoryMockRecorder) GetCard(ctx, cardID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCard", reflect.TypeOf((*MockRepository)(nil).GetCard), ctx, cardID)
}

// GetCopies mocks base method.
func (m *MockRepository) GetCopies(ctx context.Context, userID int64, cardID int64) ([]*models.UserCard, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCopies", ctx, userID, cardID)
	ret0, _ := ret[0].([]*models.UserCard)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCopies indicates an expected call of GetCopies.
func (mr *MockRepositoryMockRecorder) GetCopies(ctx, userID, cardID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCopies", reflect.TypeOf((*MockRepository)(nil).GetCopies), ctx, userID, cardID)
}

// GetStacks mocks base method.
func (m *MockRepository) GetStacks(ctx context.Context, userID int64, tier *rarity.Rarity) ([]*repositories.CardStack, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetStacks", ctx, userID, tier)
	ret0, _ := ret[0].([]*repositories.CardStack)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetStacks indicates an expected call of GetStacks.
func (mr *MockRepositoryMockRecorder) GetStacks(ctx, userID, tier any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStacks", reflect.TypeOf((*MockRepository)(nil).GetStacks), ctx, userID, tier)
}

// SearchCards mocks base method.
func (m *MockRepository) SearchCards(ctx context.Context, query string, limit int) ([]*models.Card, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchCards", ctx, query, limit)
	ret0, _ := ret[0].([]*models.Card)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SearchCards indicates an expected call of SearchCards.
func (mr *MockRepositoryMockRecorder) SearchCards(ctx, query, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchCards", reflect.TypeOf((*MockRepository)(nil).SearchCards), ctx, query, limit)
}

// SetFavorite mocks base method.
func (m *MockRepository) SetFavorite(ctx context.Context, userCardID int64, userID int64, favorite bool, now time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetFavorite", ctx, userCardID, userID, favorite, now)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetFavorite indicates an expected call of SetFavorite.
func (mr *MockRepositoryMockRecorder) SetFavorite(ctx, userCardID, userID, favorite, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetFavorite", reflect.TypeOf((*MockRepository)(nil).SetFavorite), ctx, userCardID, userID, favorite, now)
}

// SetLocked mocks base method.
func (m *MockRepository) SetLocked(ctx context.Context, userCardID int64, userID int64, locked bool, now time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetLocked", ctx, userCardID, userID, locked, now)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetLocked indicates an expected call of SetLocked.
func (mr *MockRepositoryMockRecorder) SetLocked(ctx, userCardID, userID, locked, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetLocked", reflect.TypeOf((*MockRepository)(nil).SetLocked), ctx, userCardID, userID, locked, now)
}
