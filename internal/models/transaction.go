package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartfinance/backend/internal/types"
	"gorm.io/gorm"
)

// Transaction represents a single income or expense record.
type Transaction struct {
	DefaultModel
	User     User      `json:"-"`
	UserID   uuid.UUID `gorm:"index"`
	Title    string
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Category types.Category
	Type     types.TransactionType
	Date     time.Time
}

// BeforeSave validates the transaction and normalizes its fields.
//
// The date is stored as UTC midnight since only the calendar day matters.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Title = strings.TrimSpace(t.Title)

	if !decimal.Decimal.IsPositive(t.Amount) {
		return ErrAmountNotPositive
	}

	if !t.Category.Valid() {
		return ErrCategoryInvalid
	}

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	}
	year, month, day := t.Date.Date()
	t.Date = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	return nil
}

// AfterFind normalizes the date to UTC, see DefaultModel.AfterFind.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	_ = t.DefaultModel.AfterFind(tx)

	t.Date = t.Date.In(time.UTC)
	return nil
}
