package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType distinguishes inflows, outflows and transfers
// between accounts.
type TransactionType string

const (
	TransactionIncome   TransactionType = "income"
	TransactionExpense  TransactionType = "expense"
	TransactionTransfer TransactionType = "transfer"
)

// Valid reports whether the transaction type is one of the known types.
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense || t == TransactionTransfer
}

var ErrTransactionTypeInvalid = errors.New("the specified transaction type is invalid")

// Transaction represents a booking on exactly one account.
//
// Amounts are signed: income is positive, expenses are negative,
// transfers carry either sign depending on direction. A split parent
// carries IsSplit=true and no category; its monetary detail lives in
// child transactions referencing it via ParentTransactionID.
type Transaction struct {
	DefaultModel
	Account             Account         `json:"-"`
	AccountID           uuid.UUID       `json:"accountId"`
	CategoryID          *uuid.UUID      `json:"categoryId"`
	PayeeID             *uuid.UUID      `json:"payeeId"`
	Amount              decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Type                TransactionType `json:"type"`
	Date                time.Time       `json:"date"`
	Memo                string          `json:"memo"`
	Cleared             bool            `json:"cleared"`
	IsSplit             bool            `json:"isSplit"`
	ParentTransactionID *uuid.UUID      `json:"parentTransactionId"`
}

// IsSplitChild reports whether the transaction is part of a split.
func (t Transaction) IsSplitChild() bool {
	return t.ParentTransactionID != nil
}

// BeforeSave sets the timezone for the date to UTC and validates the type.
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) (err error) {
	t.Date = t.Date.In(time.UTC)
	return nil
}
