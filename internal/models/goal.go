package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GoalType is the kind of target a goal tracks.
type GoalType string

const (
	GoalTargetBalance       GoalType = "target_balance"
	GoalTargetBalanceByDate GoalType = "target_balance_by_date"
	GoalMonthlySavings      GoalType = "monthly_savings"
	GoalMonthlySpending     GoalType = "monthly_spending"
	GoalDebtPayoff          GoalType = "debt_payoff"
)

// Valid reports whether the goal type is one of the known types.
func (t GoalType) Valid() bool {
	switch t {
	case GoalTargetBalance, GoalTargetBalanceByDate, GoalMonthlySavings,
		GoalMonthlySpending, GoalDebtPayoff:
		return true
	}
	return false
}

// CategoryGoal is a savings or spending target for a category.
// A category has at most one goal.
type CategoryGoal struct {
	DefaultModel
	CategoryID    uuid.UUID           `json:"categoryId" gorm:"uniqueIndex"`
	GoalType      GoalType            `json:"goalType"`
	TargetAmount  decimal.NullDecimal `json:"targetAmount" gorm:"type:DECIMAL(20,8)"`
	TargetDate    *time.Time          `json:"targetDate"`
	MonthlyAmount decimal.NullDecimal `json:"monthlyAmount" gorm:"type:DECIMAL(20,8)"`
}

// BeforeCreate verifies that the referenced category exists.
func (g *CategoryGoal) BeforeCreate(tx *gorm.DB) error {
	_ = g.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*CategoryGoal)
	return tx.First(&Category{}, toSave.CategoryID).Error
}
