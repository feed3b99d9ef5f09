package inventory

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/footycards/card-market/cardmarket/database/models"
	"github.com/footycards/card-market/cardmarket/economy"
	"github.com/footycards/card-market/cardmarket/economy/rarity"
	"github.com/footycards/card-market/internal/domain/inventory/mock"
	"go.uber.org/mock/gomock"
)

var obtained = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func repoMock(t *testing.T) *mock.MockRepository {
	repo := mock.NewMockRepository(gomock.NewController(t))
	repo.EXPECT().
		GetStacks(gomock.Any(), int64(123), gomock.Nil()).
		Return(mock.Stacks, nil).
		AnyTimes()

	repo.EXPECT().
		GetCard(gomock.Any(), int64(2)).
		Return(mock.Cards[1], nil).
		AnyTimes()

	repo.EXPECT().
		GetCopies(gomock.Any(), int64(123), int64(2)).
		Return(mock.UserCards, nil).
		AnyTimes()

	repo.EXPECT().
		GetCopies(gomock.Any(), int64(456), int64(2)).
		Return([]*models.UserCard{}, nil).
		AnyTimes()

	repo.EXPECT().
		CountOwned(gomock.Any(), int64(123)).
		Return(mock.OwnedCounts, nil).
		AnyTimes()

	repo.EXPECT().
		CountCatalog(gomock.Any()).
		Return(mock.CatalogCounts, nil).
		AnyTimes()

	return repo
}

func Test_service_GetInventory(t *testing.T) {
	type args struct {
		userID int64
		filter Filter
	}
	tests := []struct {
		name       string
		args       args
		wantGroups []rarity.Rarity
		wantTotal  int
		wantErr    bool
	}{
		{
			name:       "Grouped rarest first",
			args:       args{userID: 123},
			wantGroups: []rarity.Rarity{rarity.Legendary, rarity.Epic, rarity.Common},
			wantTotal:  7,
		},
		{
			name:       "Name filter",
			args:       args{userID: 123, filter: Filter{Name: "luka"}},
			wantGroups: []rarity.Rarity{rarity.Epic},
			wantTotal:  2,
		},
		{
			name:      "No match",
			args:      args{userID: 123, filter: Filter{Name: "pele"}},
			wantTotal: 0,
		},
	}

	s := &service{
		repository: repoMock(t),
		clock:      economy.FixedClock{T: obtained},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.GetInventory(context.Background(), tt.args.userID, tt.args.filter)
			if (err != nil) != tt.wantErr {
				t.Errorf("service.GetInventory() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			var groups []rarity.Rarity
			for _, g := range got.Groups {
				groups = append(groups, g.Rarity)
			}
			if !reflect.DeepEqual(groups, tt.wantGroups) {
				t.Errorf("service.GetInventory() groups = %v, want %v", groups, tt.wantGroups)
			}
			if got.Total != tt.wantTotal {
				t.Errorf("service.GetInventory() total = %v, want %v", got.Total, tt.wantTotal)
			}
		})
	}
}

func Test_service_GetCardDetail(t *testing.T) {
	s := &service{
		repository: repoMock(t),
		clock:      economy.FixedClock{T: obtained},
	}

	got, err := s.GetCardDetail(context.Background(), 123, 2)
	if err != nil {
		t.Fatalf("service.GetCardDetail() error = %v", err)
	}
	want := []Copy{
		{UserCardID: 21, SerialNumber: 1, ObtainedAt: obtained},
		{UserCardID: 22, SerialNumber: 7, IsLocked: true, ObtainedAt: obtained},
	}
	if !reflect.DeepEqual(got.Copies, want) {
		t.Errorf("service.GetCardDetail() copies = %v, want %v", got.Copies, want)
	}

	_, err = s.GetCardDetail(context.Background(), 456, 2)
	if !errors.Is(err, economy.ErrNotFound) {
		t.Errorf("service.GetCardDetail() error = %v, want ErrNotFound", err)
	}
}

func Test_service_GetInventory_Completion(t *testing.T) {
	s := &service{
		repository: repoMock(t),
		clock:      economy.FixedClock{T: obtained},
	}

	// completion ignores the name filter
	got, err := s.GetInventory(context.Background(), 123, Filter{Name: "reus"})
	if err != nil {
		t.Fatalf("service.GetInventory() error = %v", err)
	}
	want := []Completion{
		{Rarity: rarity.Legendary, Owned: 1, Catalog: 2},
		{Rarity: rarity.Epic, Owned: 2, Catalog: 8},
		{Rarity: rarity.Rare, Owned: 0, Catalog: 20},
		{Rarity: rarity.Common, Owned: 4, Catalog: 40},
	}
	if !reflect.DeepEqual(got.Completion, want) {
		t.Errorf("service.GetInventory() completion = %v, want %v", got.Completion, want)
	}
}

func Test_service_SetLocked(t *testing.T) {
	repo := mock.NewMockRepository(gomock.NewController(t))
	s := NewService(repo, economy.FixedClock{T: obtained})

	repo.EXPECT().SetLocked(gomock.Any(), int64(21), int64(123), true, obtained).Return(nil)
	repo.EXPECT().SetFavorite(gomock.Any(), int64(22), int64(123), false, obtained).Return(economy.ErrNotOwner)

	if err := s.SetLocked(context.Background(), 123, 21, true); err != nil {
		t.Errorf("service.SetLocked() error = %v", err)
	}
	if err := s.SetFavorite(context.Background(), 123, 22, false); !errors.Is(err, economy.ErrNotOwner) {
		t.Errorf("service.SetFavorite() error = %v, want ErrNotOwner", err)
	}
}
