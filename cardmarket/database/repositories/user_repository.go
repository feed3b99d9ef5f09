package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/footycards/card-market/cardmarket/database"
	"github.com/footycards/card-market/cardmarket/database/models"
	"github.com/footycards/card-market/cardmarket/economy"
	"github.com/uptrace/bun"
)

// UserRepository is the balance ledger and free pack bookkeeping.
type UserRepository interface {
	Create(ctx context.Context, user *models.User, now time.Time) error
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	GetBalance(ctx context.Context, userID int64) (int64, error)
	// LockPair locks both accounts in user_id order and returns them in argument order.
	LockPair(ctx context.Context, tx bun.Tx, a, b int64) (*models.User, *models.User, error)
	// Debit subtracts amount only when the balance covers it.
	Debit(ctx context.Context, idb bun.IDB, userID, amount int64, now time.Time) error
	Credit(ctx context.Context, idb bun.IDB, userID, amount int64, now time.Time) error
	AddScore(ctx context.Context, idb bun.IDB, userID, score int64) error
	// CheckFreePackEligible is a read-only cooldown check evaluated in loc.
	CheckFreePackEligible(ctx context.Context, userID int64, now time.Time, cooldown time.Duration, loc *time.Location) (bool, time.Duration, error)
	// ClaimFreePack records a free pack claim if the cooldown has elapsed at now.
	ClaimFreePack(ctx context.Context, idb bun.IDB, userID int64, now time.Time, cooldown time.Duration) error
	GetTopByScore(ctx context.Context, limit int) ([]*models.User, error)
}

type userRepository struct {
	*BaseRepository
}

func NewUserRepository(db *bun.DB) UserRepository {
	return &userRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *userRepository) Create(ctx context.Context, user *models.User, now time.Time) error {
	if user.Balance < 0 {
		return fmt.Errorf("failed to create user: %w", economy.ErrInsufficientFunds)
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.db.NewInsert().Model(user).Exec(ctx)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return &ConflictError{Entity: "user", Field: "user_id", Value: user.UserID, Err: economy.ErrAccountExists}
		}
		return r.HandleError("create", "user", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		slog.Debug("User lookup failed",
			slog.String("type", "db"),
			slog.Int64("user_id", userID),
			slog.Any("error", err))
		return nil, r.HandleErrorWithID("get", "user", userID, err)
	}
	return user, nil
}

func (r *userRepository) GetBalance(ctx context.Context, userID int64) (int64, error) {
	var balance int64
	err := r.db.NewSelect().
		Model((*models.User)(nil)).
		Column("balance").
		Where("user_id = ?", userID).
		Scan(ctx, &balance)
	if err != nil {
		return 0, r.HandleErrorWithID("get_balance", "user", userID, err)
	}
	return balance, nil
}

func (r *userRepository) LockPair(ctx context.Context, tx bun.Tx, a, b int64) (*models.User, *models.User, error) {
	var users []*models.User
	err := tx.NewSelect().
		Model(&users).
		Where("user_id IN (?)", bun.In([]int64{a, b})).
		Order("user_id ASC").
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return nil, nil, r.HandleError("lock_pair", "user", err)
	}

	var ua, ub *models.User
	for _, u := range users {
		if u.UserID == a {
			ua = u
		}
		if u.UserID == b {
			ub = u
		}
	}
	if ua == nil {
		return nil, nil, &NotFoundError{Entity: "user", ID: a}
	}
	if ub == nil {
		return nil, nil, &NotFoundError{Entity: "user", ID: b}
	}
	return ua, ub, nil
}

func (r *userRepository) Debit(ctx context.Context, idb bun.IDB, userID, amount int64, now time.Time) error {
	if amount < 0 {
		return fmt.Errorf("failed to debit user %d: negative amount %d", userID, amount)
	}
	if amount == 0 {
		return r.exists(ctx, idb, userID)
	}

	res, err := r.idbOr(idb).NewUpdate().
		Model((*models.User)(nil)).
		Set("balance = balance - ?", amount).
		Set("updated_at = ?", now).
		Where("user_id = ? AND balance >= ?", userID, amount).
		Exec(ctx)
	if err != nil {
		return r.HandleErrorWithID("debit", "user", userID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if err := r.exists(ctx, idb, userID); err != nil {
			return err
		}
		return economy.ErrInsufficientFunds
	}
	return nil
}

func (r *userRepository) Credit(ctx context.Context, idb bun.IDB, userID, amount int64, now time.Time) error {
	if amount < 0 {
		return fmt.Errorf("failed to credit user %d: negative amount %d", userID, amount)
	}

	res, err := r.idbOr(idb).NewUpdate().
		Model((*models.User)(nil)).
		Set("balance = balance + ?", amount).
		Set("updated_at = ?", now).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return r.HandleErrorWithID("credit", "user", userID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &NotFoundError{Entity: "user", ID: userID}
	}
	return nil
}

func (r *userRepository) AddScore(ctx context.Context, idb bun.IDB, userID, score int64) error {
	if score == 0 {
		return nil
	}
	_, err := r.idbOr(idb).NewUpdate().
		Model((*models.User)(nil)).
		Set("score = score + ?", score).
		Where("user_id = ?", userID).
		Exec(ctx)
	return r.HandleErrorWithID("add_score", "user", userID, err)
}

func (r *userRepository) CheckFreePackEligible(ctx context.Context, userID int64, now time.Time, cooldown time.Duration, loc *time.Location) (bool, time.Duration, error) {
	user, err := r.GetByID(ctx, userID)
	if err != nil {
		return false, 0, err
	}
	remaining := economy.FreePackRemaining(user.LastFreePack, now, cooldown, loc)
	return remaining == 0, remaining, nil
}

func (r *userRepository) ClaimFreePack(ctx context.Context, idb bun.IDB, userID int64, now time.Time, cooldown time.Duration) error {
	res, err := r.idbOr(idb).NewUpdate().
		Model((*models.User)(nil)).
		Set("last_free_pack = ?", now).
		Where("user_id = ?", userID).
		Where("(last_free_pack IS NULL OR last_free_pack <= ?)", now.Add(-cooldown)).
		Exec(ctx)
	if err != nil {
		return r.HandleErrorWithID("claim_free_pack", "user", userID, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}

	user := new(models.User)
	err = r.idbOr(idb).NewSelect().
		Model(user).
		Column("last_free_pack").
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return r.HandleErrorWithID("claim_free_pack", "user", userID, err)
	}
	return &economy.CooldownError{
		Remaining: economy.FreePackRemaining(user.LastFreePack, now, cooldown, time.UTC),
	}
}

func (r *userRepository) GetTopByScore(ctx context.Context, limit int) ([]*models.User, error) {
	var users []*models.User
	err := r.db.NewSelect().
		Model(&users).
		Order("score DESC", "user_id ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("top_by_score", "user", err)
	}
	return users, nil
}

func (r *userRepository) exists(ctx context.Context, idb bun.IDB, userID int64) error {
	ok, err := r.idbOr(idb).NewSelect().
		Model((*models.User)(nil)).
		Where("user_id = ?", userID).
		Exists(ctx)
	if err != nil {
		return r.HandleErrorWithID("exists", "user", userID, err)
	}
	if !ok {
		return &NotFoundError{Entity: "user", ID: userID}
	}
	return nil
}
