package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/budget-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/budget-tracker/internal/domain/port/core"
)

// Transaction records a single dated expense or income line owned by a user.
// The category reference is optional and survives category deletion as NULL.
type Transaction struct {
	ID         uint64          // Unique identifier for the transaction
	Venue      string          // Where the money moved, required
	Amount     decimal.Decimal // Fixed-point amount, two decimal places
	Comments   string          // Optional free-form note
	CategoryID *uint64         // Optional category reference, nil when uncategorized
	UserID     uint64          // ID of the owning user
	Date       time.Time       // When the transaction happened
	CreatedAt  time.Time       // When the row was recorded
}

// NewTransaction creates a new transaction owned by userID. The amount must
// parse as a decimal number; the date defaults to now when omitted.
func NewTransaction(
	userID uint64,
	venue string,
	amount string,
	comments string,
	categoryID *uint64,
	date *time.Time,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if strings.TrimSpace(venue) == "" {
		return nil, errs.NewMissingFieldError("venue")
	}
	if strings.TrimSpace(amount) == "" {
		return nil, errs.NewMissingFieldError("amount")
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, errs.ErrInvalidAmount
	}

	now := timeProvider.Now()
	txDate := now
	if date != nil {
		txDate = *date
	}

	return &Transaction{
		Venue:      venue,
		Amount:     parsed.Round(2),
		Comments:   comments,
		CategoryID: categoryID,
		UserID:     userID,
		Date:       txDate,
		CreatedAt:  now,
	}, nil
}

// OwnerID returns the ID of the owning user
func (t *Transaction) OwnerID() uint64 {
	return t.UserID
}

// TransactionPatch carries the mutable fields of a partial transaction update.
// Nil pointers leave the corresponding column untouched.
type TransactionPatch struct {
	Venue      *string
	Amount     *string
	Comments   *string
	CategoryID *uint64
}

// IsEmpty reports whether the patch carries no recognized fields
func (p TransactionPatch) IsEmpty() bool {
	return p.Venue == nil && p.Amount == nil && p.Comments == nil && p.CategoryID == nil
}

// Validate checks that every supplied field is usable and returns the parsed
// amount when one was given.
func (p TransactionPatch) Validate() (*decimal.Decimal, error) {
	if p.IsEmpty() {
		return nil, errs.ErrEmptyUpdate
	}
	if p.Venue != nil && strings.TrimSpace(*p.Venue) == "" {
		return nil, errs.NewMissingFieldError("venue")
	}
	if p.Amount != nil {
		parsed, err := decimal.NewFromString(*p.Amount)
		if err != nil {
			return nil, errs.ErrInvalidAmount
		}
		rounded := parsed.Round(2)
		return &rounded, nil
	}
	return nil, nil
}
