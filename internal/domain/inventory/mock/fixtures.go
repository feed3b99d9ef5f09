package mock

import (
	"time"

	models "github.com/footycards/card-market/cardmarket/database/models"
	repositories "github.com/footycards/card-market/cardmarket/database/repositories"
	rarity "github.com/footycards/card-market/cardmarket/economy/rarity"
)

var obtained = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

var Cards = []*models.Card{
	{ID: 1, PlayerName: "Lionel Messi", Rarity: rarity.Legendary, UniqName: "messi"},
	{ID: 2, PlayerName: "Luka Modric", Rarity: rarity.Epic, UniqName: "modric"},
	{ID: 3, PlayerName: "Marco Reus", Rarity: rarity.Common, UniqName: "reus"},
}

var Stacks = []*repositories.CardStack{
	{CardID: 1, PlayerName: "Lionel Messi", Rarity: rarity.Legendary, UniqName: "messi", Copies: 1, BestSerial: 3, FirstObtain: obtained},
	{CardID: 2, PlayerName: "Luka Modric", Rarity: rarity.Epic, UniqName: "modric", Copies: 2, BestSerial: 1, FirstObtain: obtained},
	{CardID: 3, PlayerName: "Marco Reus", Rarity: rarity.Common, UniqName: "reus", Copies: 4, BestSerial: 10, FirstObtain: obtained},
}

var UserCards = []*models.UserCard{
	{ID: 21, UserID: 123, CardID: 2, SerialNumber: 1, ObtainedAt: obtained},
	{ID: 22, UserID: 123, CardID: 2, SerialNumber: 7, IsLocked: true, ObtainedAt: obtained},
}

var OwnedCounts = map[rarity.Rarity]int{
	rarity.Common:    4,
	rarity.Rare:      0,
	rarity.Epic:      2,
	rarity.Legendary: 1,
}

var CatalogCounts = map[rarity.Rarity]int{
	rarity.Common:    40,
	rarity.Rare:      20,
	rarity.Epic:      8,
	rarity.Legendary: 2,
}
