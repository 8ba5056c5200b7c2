package dto

import (
	"time"

	"github.com/amirhossein-jamali/budget-tracker/internal/domain/entity"
	"github.com/amirhossein-jamali/budget-tracker/internal/domain/port/usecase"
)

// CreateTransactionRequest represents the API request for creating a
// transaction. Amount travels as a string and is parsed by the domain so
// the error taxonomy owns the "numeric" rule.
type CreateTransactionRequest struct {
	Venue      string     `json:"venue"`
	Amount     string     `json:"amount"`
	Comments   string     `json:"comments"`
	CategoryID *uint64    `json:"category_id"`
	Date       *time.Time `json:"date"`
}

// Input converts the request to the use case input shape
func (r CreateTransactionRequest) Input() usecase.CreateTransactionInput {
	return usecase.CreateTransactionInput{
		Venue:      r.Venue,
		Amount:     r.Amount,
		Comments:   r.Comments,
		CategoryID: r.CategoryID,
		Date:       r.Date,
	}
}

// UpdateTransactionRequest represents a partial transaction update
type UpdateTransactionRequest struct {
	Venue      *string `json:"venue"`
	Amount     *string `json:"amount"`
	Comments   *string `json:"comments"`
	CategoryID *uint64 `json:"category_id"`
}

// Patch converts the request to the domain patch shape
func (r UpdateTransactionRequest) Patch() entity.TransactionPatch {
	return entity.TransactionPatch{
		Venue:      r.Venue,
		Amount:     r.Amount,
		Comments:   r.Comments,
		CategoryID: r.CategoryID,
	}
}

// TransactionResponse represents the API response for a transaction
type TransactionResponse struct {
	ID         uint64    `json:"id"`
	Venue      string    `json:"venue"`
	Amount     string    `json:"amount"`
	Comments   string    `json:"comments,omitempty"`
	CategoryID *uint64   `json:"category_id"`
	UserID     uint64    `json:"user_id"`
	Date       time.Time `json:"date"`
}

// NewTransactionResponse converts a transaction entity to its API shape
func NewTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:         transaction.ID,
		Venue:      transaction.Venue,
		Amount:     transaction.Amount.StringFixed(2),
		Comments:   transaction.Comments,
		CategoryID: transaction.CategoryID,
		UserID:     transaction.UserID,
		Date:       transaction.Date,
	}
}

// NewTransactionListResponse converts a slice of transaction entities
func NewTransactionListResponse(transactions []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		out = append(out, NewTransactionResponse(transaction))
	}
	return out
}
