package models

import (
	"time"

	dbmodels "github.com/footycards/card-market/cardmarket/database/models"
	"github.com/footycards/card-market/cardmarket/economy/pricing"
)

// APIResponse represents a standard API response structure
type APIResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message,omitempty"`
	Data      any       `json:"data,omitempty"`
	Error     *APIError `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// APIError represents an API error response
type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// PaginatedResponse represents a paginated API response
type PaginatedResponse struct {
	APIResponse
	Pagination *PaginationInfo `json:"pagination,omitempty"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// NewSuccessResponse creates a successful API response
func NewSuccessResponse(data any, message string) *APIResponse {
	return &APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewErrorResponse creates an error API response
func NewErrorResponse(code, message string, details map[string]string) *APIResponse {
	return &APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
		Timestamp: time.Now(),
	}
}

// NewPaginatedResponse creates a paginated API response
func NewPaginatedResponse(data any, pagination *PaginationInfo, message string) *PaginatedResponse {
	return &PaginatedResponse{
		APIResponse: APIResponse{
			Success:   true,
			Message:   message,
			Data:      data,
			Timestamp: time.Now(),
		},
		Pagination: pagination,
	}
}

// NewPaginationInfo creates pagination info
func NewPaginationInfo(page, limit int, total int64) *PaginationInfo {
	if limit <= 0 {
		limit = 1
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &PaginationInfo{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// CreateListingRequest is the body of POST /market/listings.
type CreateListingRequest struct {
	UserCardID int64 `json:"user_card_id"`
	Price      int64 `json:"price"`
}

// UpdatePriceRequest is the body of PATCH /market/listings/:id.
type UpdatePriceRequest struct {
	Price int64 `json:"price"`
}

type CreateAccountRequest struct {
	Username string `json:"username"`
}

// ToggleRequest sets a boolean flag on an owned copy.
type ToggleRequest struct {
	Value bool `json:"value"`
}

// ListingResponse is a market listing with the card's recent sale stats.
type ListingResponse struct {
	*dbmodels.ListingView
	Stats *pricing.CardStats `json:"stats,omitempty"`
}
