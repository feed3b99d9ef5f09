package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun/driver/pgdriver"
)

// SQLSTATE codes the economy reacts to.
const (
	CodeUniqueViolation      = "23505"
	CodeCheckViolation       = "23514"
	CodeSerializationFailure = "40001"
	CodeDeadlockDetected     = "40P01"
)

// Constraints the repositories translate into domain errors.
const (
	ActiveListingIndex = "idx_market_listings_active_card"
	ListingPriceCheck  = "market_listings_price_positive"
)

// SQLState extracts the SQLSTATE from bun (pgdriver) or pgx errors.
func SQLState(err error) string {
	var bunErr pgdriver.Error
	if errors.As(err, &bunErr) {
		return bunErr.Field('C')
	}
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	return ""
}

// ConstraintName returns the violated constraint, when the server reported one.
func ConstraintName(err error) string {
	var bunErr pgdriver.Error
	if errors.As(err, &bunErr) {
		return bunErr.Field('n')
	}
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.ConstraintName
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	return SQLState(err) == CodeUniqueViolation
}

func IsCheckViolation(err error) bool {
	return SQLState(err) == CodeCheckViolation
}

// IsRetryable reports serialization failures and deadlocks, which succeed on replay.
func IsRetryable(err error) bool {
	switch SQLState(err) {
	case CodeSerializationFailure, CodeDeadlockDetected:
		return true
	}
	return false
}
