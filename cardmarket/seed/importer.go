package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/footycards/card-market/cardmarket/database/models"
	"github.com/footycards/card-market/cardmarket/database/repositories"
	"github.com/footycards/card-market/cardmarket/economy/rarity"
	"github.com/pelletier/go-toml/v2"
)

// File is the TOML catalog format loaded by the admin CLI.
type File struct {
	Collections []Collection `toml:"collections"`
	Cards       []Card       `toml:"cards"`
	Packs       []Pack       `toml:"packs"`
}

type Collection struct {
	Name        string     `toml:"name"`
	Description string     `toml:"description"`
	TotalCards  int        `toml:"total_cards"`
	StartDate   *time.Time `toml:"start_date"`
	EndDate     *time.Time `toml:"end_date"`
}

type Card struct {
	PlayerName string        `toml:"player_name"`
	Rarity     rarity.Rarity `toml:"rarity"`
	UniqName   string        `toml:"uniq_name"`
	Weight     float64       `toml:"weight"`
	Collection string        `toml:"collection"`
}

type Pack struct {
	ID                string         `toml:"id"`
	Name              string         `toml:"name"`
	Description       string         `toml:"description"`
	Type              string         `toml:"type"`
	Cost              int64          `toml:"cost"`
	CardsAmount       int            `toml:"cards_amount"`
	Table             rarity.Table   `toml:"table"`
	GuaranteedRarity  *rarity.Rarity `toml:"guaranteed_rarity"`
	UniqueItems       bool           `toml:"unique_items"`
	IsAlwaysAvailable *bool          `toml:"is_always_available"`
	Collection        string         `toml:"collection"`
}

// Summary reports what an import created.
type Summary struct {
	Collections int
	Cards       int
	Packs       int
}

var uniqNameInvalid = regexp.MustCompile(`[^a-z0-9_]+`)

// UniqName derives a stable catalog key from a player name and rarity.
func UniqName(playerName string, r rarity.Rarity) string {
	name := strings.ToLower(strings.Join(strings.Fields(playerName), "_"))
	name = uniqNameInvalid.ReplaceAllString(name, "")
	return fmt.Sprintf("%s_%s", r, name)
}

func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var f File
	if err = toml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}
	if err = f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) Validate() error {
	var errs []error

	collections := make(map[string]bool, len(f.Collections))
	for i, c := range f.Collections {
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("collections[%d]: name is required", i))
		}
		if c.TotalCards < 0 {
			errs = append(errs, fmt.Errorf("collections[%d]: total_cards must not be negative", i))
		}
		if collections[c.Name] {
			errs = append(errs, fmt.Errorf("collections[%d]: duplicate name %q", i, c.Name))
		}
		collections[c.Name] = true
	}

	for i, c := range f.Cards {
		if strings.TrimSpace(c.PlayerName) == "" {
			errs = append(errs, fmt.Errorf("cards[%d]: player_name is required", i))
		}
		if !c.Rarity.Valid() {
			errs = append(errs, fmt.Errorf("cards[%d]: unknown rarity %q", i, c.Rarity))
		}
		if c.Collection != "" && !collections[c.Collection] {
			errs = append(errs, fmt.Errorf("cards[%d]: unknown collection %q", i, c.Collection))
		}
	}

	for i, p := range f.Packs {
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("packs[%d]: id is required", i))
		}
		if p.CardsAmount <= 0 {
			errs = append(errs, fmt.Errorf("packs[%d]: cards_amount must be positive", i))
		}
		if p.Cost < 0 {
			errs = append(errs, fmt.Errorf("packs[%d]: cost must not be negative", i))
		}
		if err := p.Table.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("packs[%d]: %w", i, err))
		}
		if p.GuaranteedRarity != nil && !p.GuaranteedRarity.Valid() {
			errs = append(errs, fmt.Errorf("packs[%d]: unknown guaranteed_rarity %q", i, *p.GuaranteedRarity))
		}
		if !models.PackType(p.Type).Valid() {
			errs = append(errs, fmt.Errorf("packs[%d]: unknown type %q", i, p.Type))
		}
		if models.PackType(p.Type) == models.PackFree && p.Cost != 0 {
			errs = append(errs, fmt.Errorf("packs[%d]: free packs must cost 0", i))
		}
		if p.Collection != "" && !collections[p.Collection] {
			errs = append(errs, fmt.Errorf("packs[%d]: unknown collection %q", i, p.Collection))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid seed file: %w", errors.Join(errs...))
	}
	return nil
}

type Importer struct {
	cards       repositories.CardRepository
	collections repositories.CollectionRepository
	packs       repositories.PackRepository
}

func NewImporter(cards repositories.CardRepository, collections repositories.CollectionRepository, packs repositories.PackRepository) *Importer {
	return &Importer{
		cards:       cards,
		collections: collections,
		packs:       packs,
	}
}

// Import creates missing collections, inserts new cards and upserts packs.
// Existing collections are matched by name and existing cards by uniq name,
// so importing the same file twice is a no-op apart from pack updates.
func (im *Importer) Import(ctx context.Context, f *File) (*Summary, error) {
	summary := &Summary{}

	existing, err := im.collections.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	ids := make(map[string]int64, len(existing))
	for _, c := range existing {
		ids[c.Name] = c.ID
	}

	for _, c := range f.Collections {
		if _, ok := ids[c.Name]; ok {
			continue
		}
		col := &models.Collection{
			Name:        c.Name,
			Description: c.Description,
			TotalCards:  c.TotalCards,
			IsActive:    true,
			StartDate:   time.Now(),
			EndDate:     c.EndDate,
		}
		if c.StartDate != nil {
			col.StartDate = *c.StartDate
		}
		if err := im.collections.Create(ctx, col); err != nil {
			return nil, fmt.Errorf("failed to create collection %q: %w", c.Name, err)
		}
		ids[c.Name] = col.ID
		summary.Collections++
	}

	cards := make([]*models.Card, 0, len(f.Cards))
	for _, c := range f.Cards {
		card := &models.Card{
			PlayerName: strings.TrimSpace(c.PlayerName),
			Rarity:     c.Rarity,
			UniqName:   c.UniqName,
			Weight:     c.Weight,
		}
		if card.UniqName == "" {
			card.UniqName = UniqName(c.PlayerName, c.Rarity)
		}
		if card.Weight <= 0 {
			card.Weight = 1
		}
		if c.Collection != "" {
			id := ids[c.Collection]
			card.CollectionID = &id
		}
		cards = append(cards, card)
	}
	if summary.Cards, err = im.cards.BulkCreate(ctx, cards); err != nil {
		return nil, err
	}

	for _, p := range f.Packs {
		pack := &models.Pack{
			ID:                p.ID,
			Name:              p.Name,
			Description:       p.Description,
			PackType:          models.PackType(p.Type),
			Cost:              p.Cost,
			CardsAmount:       p.CardsAmount,
			GuaranteedRarity:  p.GuaranteedRarity,
			UniqueItems:       p.UniqueItems,
			IsAlwaysAvailable: p.IsAlwaysAvailable == nil || *p.IsAlwaysAvailable,
		}
		pack.SetTable(p.Table)
		if p.Collection != "" {
			id := ids[p.Collection]
			pack.CollectionID = &id
		}
		if err := im.packs.Upsert(ctx, pack); err != nil {
			return nil, fmt.Errorf("failed to upsert pack %q: %w", p.ID, err)
		}
		summary.Packs++
	}

	slog.Info("Catalog imported",
		slog.String("type", "system"),
		slog.Int("collections", summary.Collections),
		slog.Int("cards", summary.Cards),
		slog.Int("packs", summary.Packs))
	return summary, nil
}
