package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountType groups accounts by what they represent.
type AccountType string

const (
	AccountTypeChecking     AccountType = "checking"
	AccountTypeSavings      AccountType = "savings"
	AccountTypeCash         AccountType = "cash"
	AccountTypeCreditCard   AccountType = "credit_card"
	AccountTypeLineOfCredit AccountType = "line_of_credit"
	AccountTypeLoan         AccountType = "loan"
	AccountTypeInvestment   AccountType = "investment"
)

// Valid reports whether the account type is one of the known types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCash,
		AccountTypeCreditCard, AccountTypeLineOfCredit,
		AccountTypeLoan, AccountTypeInvestment:
		return true
	}
	return false
}

var ErrAccountTypeInvalid = errors.New("the specified account type is invalid")

// Liability reports whether accounts of this type represent debt.
func (t AccountType) Liability() bool {
	return t == AccountTypeCreditCard || t == AccountTypeLineOfCredit || t == AccountTypeLoan
}

// DefaultOnBudget is the on-budget setting inherited by accounts
// that do not set it explicitly.
func (t AccountType) DefaultOnBudget() bool {
	switch t {
	case AccountTypeInvestment, AccountTypeLoan:
		return false
	}
	return true
}

// Account represents a financial account, e.g. a bank account or a credit card.
type Account struct {
	DefaultModel
	User              User        `json:"-"`
	UserID            uuid.UUID   `json:"userId" gorm:"uniqueIndex:account_name_user_id"`
	Name              string      `json:"name" gorm:"uniqueIndex:account_name_user_id"`
	Type              AccountType `json:"type"`
	Note              string      `json:"note"`
	OnBudget          *bool       `json:"onBudget"` // nil inherits the default for the account type
	IsLiability       bool        `json:"isLiability"`
	PaymentCategoryID *uuid.UUID  `json:"paymentCategoryId"` // set for credit-type accounts whose debt is tracked through a category
	Archived          bool        `json:"archived"`
}

// BeforeSave ensures consistency for the account.
//
// Accounts of a liability type are always liabilities, everything
// else keeps the stored flag. It trims whitespace from all strings.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	if !a.Type.Valid() {
		return ErrAccountTypeInvalid
	}

	if a.Type.Liability() {
		a.IsLiability = true
	}

	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)

	return nil
}

// IsOnBudget resolves the tri-state on-budget setting.
func (a Account) IsOnBudget() bool {
	if a.OnBudget != nil {
		return *a.OnBudget
	}

	return a.Type.DefaultOnBudget()
}

// IsCredit reports whether the account is a credit-type account whose
// debt is tracked through a designated payment category.
func (a Account) IsCredit() bool {
	return a.PaymentCategoryID != nil
}
