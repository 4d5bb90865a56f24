package budgeting

import (
	"context"
	"strings"
	"time"

	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Summary computes the budget summary for the user and month.
//
// It returns ErrMonthInvalid for months outside [1, 12] and
// ErrNoBudget when the user has no budget for the month. The summary
// is complete or not returned at all; there are no partial results.
func (s Service) Summary(ctx context.Context, userID uuid.UUID, month int, year int) (Summary, error) {
	if month < 1 || month > 12 {
		return Summary{}, ErrMonthInvalid
	}

	target := types.NewMonth(year, time.Month(month))

	ds, err := s.load(ctx, userID, target)
	if err != nil {
		return Summary{}, err
	}

	l := newLedger(ds)

	rows := make([]CategoryRow, 0, len(ds.currentAllocations))
	for _, allocation := range ds.currentAllocations {
		category := allocation.Category

		var opts walkOptions
		var exclude *uuid.UUID
		if credit, ok := l.creditAccounts[category.ID]; ok {
			opts = walkOptions{carryNegative: true, creditAccount: &credit}
			exclude = &credit.ID
		}

		row := CategoryRow{
			ID:        category.ID,
			Name:      category.Name,
			GroupName: category.Group.Name,
			IsSystem:  category.IsSystem,
			Budgeted:  allocation.Amount,
			Activity:  l.activitySum(category.ID, target, exclude),
			Available: l.available(category.ID, opts),

			groupSortOrder: category.Group.SortOrder,
		}

		if category.Goal != nil {
			row.Goal = &Goal{
				ID:            category.Goal.ID,
				GoalType:      category.Goal.GoalType,
				TargetAmount:  category.Goal.TargetAmount,
				TargetDate:    category.Goal.TargetDate,
				MonthlyAmount: category.Goal.MonthlyAmount,
			}
		}

		rows = append(rows, row)
	}

	slices.SortStableFunc(rows, func(a, b CategoryRow) int {
		if a.groupSortOrder != b.groupSortOrder {
			return a.groupSortOrder - b.groupSortOrder
		}
		return strings.Compare(a.GroupName, b.GroupName)
	})

	return Summary{
		ID:           ds.budget.ID,
		Month:        month,
		Year:         year,
		ToBeBudgeted: l.toBeBudgeted(),
		Categories:   rows,
	}, nil
}

// toBeBudgeted is all-time income up to the end of the target month
// minus everything budgeted in any month up to and including the
// target. It is independent of the per-category walk.
func (l *ledger) toBeBudgeted() decimal.Decimal {
	endExclusive := time.Time(l.targetMonth.AddDate(0, 1))

	income := decimal.Zero
	for _, t := range l.income {
		if t.Date.Before(endExclusive) {
			income = income.Add(t.Amount)
		}
	}

	budgeted := decimal.Zero
	for _, byBudget := range l.allocations {
		for budgetID, amount := range byBudget {
			if !l.monthByBudgetID[budgetID].After(l.targetMonth) {
				budgeted = budgeted.Add(amount)
			}
		}
	}

	return income.Sub(budgeted)
}
