package budgeting

import (
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// monthKey identifies a calendar month for map lookups.
type monthKey struct {
	year  int
	month time.Month
}

func keyOf(m types.Month) monthKey {
	year, month := m.YearMonth()
	return monthKey{year: year, month: month}
}

// activityKey buckets transaction activity per category and month.
type activityKey struct {
	category uuid.UUID
	month    monthKey
}

// ledger holds the lookup structures for one summary request. It is
// built in a single pass over the loaded rows; all later per-category
// computation reads only these maps.
type ledger struct {
	targetMonth types.Month

	// payment category ID to the credit account it funds
	creditAccounts map[uuid.UUID]models.Account

	// category to budget to allocated amount
	allocations map[uuid.UUID]map[uuid.UUID]decimal.Decimal

	// activity sums are kept per account so that one account's
	// contribution can be excluded without rescanning transactions
	activity map[activityKey]map[uuid.UUID]decimal.Decimal

	// transactions of the window, per account, for the credit-card
	// sub-ledger
	accountTransactions map[uuid.UUID][]models.Transaction

	budgetIDByMonth map[monthKey]uuid.UUID
	monthByBudgetID map[uuid.UUID]types.Month

	income []models.Transaction
}

// newLedger indexes the dataset.
func newLedger(ds *dataset) *ledger {
	l := &ledger{
		targetMonth:         ds.budget.Month,
		creditAccounts:      make(map[uuid.UUID]models.Account, len(ds.accounts)),
		allocations:         make(map[uuid.UUID]map[uuid.UUID]decimal.Decimal),
		activity:            make(map[activityKey]map[uuid.UUID]decimal.Decimal),
		accountTransactions: make(map[uuid.UUID][]models.Transaction, len(ds.accounts)),
		budgetIDByMonth:     make(map[monthKey]uuid.UUID, len(ds.budgets)),
		monthByBudgetID:     make(map[uuid.UUID]types.Month, len(ds.budgets)),
		income:              ds.income,
	}

	for _, account := range ds.accounts {
		if account.IsCredit() {
			l.creditAccounts[*account.PaymentCategoryID] = account
		}
	}

	for _, ref := range ds.budgets {
		l.budgetIDByMonth[keyOf(ref.Month)] = ref.ID
		l.monthByBudgetID[ref.ID] = ref.Month
	}

	for _, allocation := range ds.allAllocations {
		byBudget, ok := l.allocations[allocation.CategoryID]
		if !ok {
			byBudget = make(map[uuid.UUID]decimal.Decimal)
			l.allocations[allocation.CategoryID] = byBudget
		}
		byBudget[allocation.BudgetID] = allocation.Amount
	}

	for _, t := range ds.transactions {
		l.accountTransactions[t.AccountID] = append(l.accountTransactions[t.AccountID], t)

		// Split parents and uncategorized transactions carry no
		// category activity; split children count for their own
		// category.
		if t.IsSplit || t.CategoryID == nil {
			continue
		}

		key := activityKey{category: *t.CategoryID, month: keyOf(types.MonthOf(t.Date))}
		byAccount, ok := l.activity[key]
		if !ok {
			byAccount = make(map[uuid.UUID]decimal.Decimal)
			l.activity[key] = byAccount
		}
		byAccount[t.AccountID] = byAccount[t.AccountID].Add(t.Amount)
	}

	return l
}

// budgeted returns the allocation for the category in the given budget,
// zero if the category has no allocation row there.
func (l *ledger) budgeted(categoryID, budgetID uuid.UUID) decimal.Decimal {
	return l.allocations[categoryID][budgetID]
}

// activitySum returns the transaction activity for the category in the
// given month. When exclude is set, that account's contribution is left
// out; this is used for payment categories whose credit account is
// accounted for through the credit-card sub-ledger instead.
func (l *ledger) activitySum(categoryID uuid.UUID, month types.Month, exclude *uuid.UUID) decimal.Decimal {
	sum := decimal.Zero
	for accountID, amount := range l.activity[activityKey{category: categoryID, month: keyOf(month)}] {
		if exclude != nil && accountID == *exclude {
			continue
		}
		sum = sum.Add(amount)
	}

	return sum
}
