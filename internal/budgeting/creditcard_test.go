package budgeting_test

import (
	"context"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// creditSetup is everything a credit card test needs: a checking
// account, a credit account and its payment category, and a groceries
// category for charged purchases.
type creditSetup struct {
	user      models.User
	checking  models.Account
	credit    models.Account
	payment   models.Category
	groceries models.Category
}

func (suite *TestSuiteStandard) createCreditSetup() creditSetup {
	user := suite.createUser()
	checking := suite.createAccount(models.Account{UserID: user.ID})

	everyday := suite.createGroup(models.CategoryGroup{UserID: user.ID, Name: "Everyday", SortOrder: 1})
	groceries := suite.createCategory(models.Category{GroupID: everyday.ID, Name: "Groceries"})

	payments := suite.createGroup(models.CategoryGroup{UserID: user.ID, Name: "Credit Card Payments", SortOrder: 100, IsSystem: true})
	payment := suite.createCategory(models.Category{GroupID: payments.ID, Name: "Visa", IsSystem: true})

	credit := suite.createAccount(models.Account{
		UserID:            user.ID,
		Name:              "Visa",
		Type:              models.AccountTypeCreditCard,
		PaymentCategoryID: &payment.ID,
	})

	return creditSetup{
		user:      user,
		checking:  checking,
		credit:    credit,
		payment:   payment,
		groceries: groceries,
	}
}

// A charged purchase moves its funding from the spending category into
// the payment category; paying the card moves it back out.
func (suite *TestSuiteStandard) TestSummaryCreditCard() {
	s := suite.createCreditSetup()

	budget := suite.createBudget(models.Budget{UserID: s.user.ID, Month: types.NewMonth(2024, 3)})
	suite.allocate(budget, s.groceries, 100)
	suite.allocate(budget, s.payment, 0)

	// Groceries bought on the card
	suite.transact(models.Transaction{
		AccountID:  s.credit.ID,
		CategoryID: &s.groceries.ID,
		Amount:     decimal.NewFromInt(-100),
		Type:       models.TransactionExpense,
		Date:       date(2024, 3, 5),
	})

	// Partial payment towards the card
	suite.transact(models.Transaction{
		AccountID: s.credit.ID,
		Amount:    decimal.NewFromInt(25),
		Type:      models.TransactionTransfer,
		Date:      date(2024, 3, 20),
	})
	suite.transact(models.Transaction{
		AccountID: s.checking.ID,
		Amount:    decimal.NewFromInt(-25),
		Type:      models.TransactionTransfer,
		Date:      date(2024, 3, 20),
	})

	summary, err := suite.service.Summary(context.Background(), s.user.ID, 3, 2024)
	assert.Nil(suite.T(), err)

	// The purchase empties the groceries envelope
	groceriesRow := row(suite, summary, s.groceries.ID)
	assert.True(suite.T(), groceriesRow.Activity.Equal(decimal.NewFromInt(-100)), "activity is %s", groceriesRow.Activity)
	assert.True(suite.T(), groceriesRow.Available.IsZero(), "available is %s", groceriesRow.Available)

	// 100 charged minus 25 paid is still set aside for the card
	paymentRow := row(suite, summary, s.payment.ID)
	assert.True(suite.T(), paymentRow.Available.Equal(decimal.NewFromInt(75)), "available is %s", paymentRow.Available)
}

// Transactions on the credit account itself do not show up as payment
// category activity, the sub-ledger accounts for them instead.
func (suite *TestSuiteStandard) TestSummaryCreditCardActivityExcluded() {
	s := suite.createCreditSetup()

	budget := suite.createBudget(models.Budget{UserID: s.user.ID, Month: types.NewMonth(2024, 3)})
	suite.allocate(budget, s.payment, 0)

	// An expense on the card filed under the payment category itself
	suite.transact(models.Transaction{
		AccountID:  s.credit.ID,
		CategoryID: &s.payment.ID,
		Amount:     decimal.NewFromInt(-10),
		Type:       models.TransactionExpense,
		Date:       date(2024, 3, 5),
	})

	summary, err := suite.service.Summary(context.Background(), s.user.ID, 3, 2024)
	assert.Nil(suite.T(), err)

	paymentRow := row(suite, summary, s.payment.ID)
	assert.True(suite.T(), paymentRow.Activity.IsZero(), "activity is %s", paymentRow.Activity)
}

// Uncategorized bookings on the card are starting balances: an inflow
// is money the card owes the user, an outflow is debt no category ever
// funded.
func (suite *TestSuiteStandard) TestSummaryCreditCardUncategorized() {
	s := suite.createCreditSetup()

	budget := suite.createBudget(models.Budget{UserID: s.user.ID, Month: types.NewMonth(2024, 3)})
	suite.allocate(budget, s.payment, 0)

	suite.transact(models.Transaction{
		AccountID: s.credit.ID,
		Amount:    decimal.NewFromInt(30),
		Type:      models.TransactionIncome,
		Date:      date(2024, 3, 3),
	})

	suite.transact(models.Transaction{
		AccountID: s.credit.ID,
		Amount:    decimal.NewFromInt(-20),
		Type:      models.TransactionExpense,
		Date:      date(2024, 3, 4),
	})

	summary, err := suite.service.Summary(context.Background(), s.user.ID, 3, 2024)
	assert.Nil(suite.T(), err)

	// 30 owed to the user minus 20 of unfunded debt
	paymentRow := row(suite, summary, s.payment.ID)
	assert.True(suite.T(), paymentRow.Available.Equal(decimal.NewFromInt(10)), "available is %s", paymentRow.Available)
}

// Split parents carry no money of their own, the children count for
// their own categories.
func (suite *TestSuiteStandard) TestSummaryCreditCardSplit() {
	s := suite.createCreditSetup()

	budget := suite.createBudget(models.Budget{UserID: s.user.ID, Month: types.NewMonth(2024, 3)})
	suite.allocate(budget, s.groceries, 60)
	suite.allocate(budget, s.payment, 0)

	parent := suite.transact(models.Transaction{
		AccountID: s.credit.ID,
		Amount:    decimal.NewFromInt(-60),
		Type:      models.TransactionExpense,
		IsSplit:   true,
		Date:      date(2024, 3, 5),
	})

	suite.transact(models.Transaction{
		AccountID:           s.credit.ID,
		CategoryID:          &s.groceries.ID,
		Amount:              decimal.NewFromInt(-60),
		Type:                models.TransactionExpense,
		ParentTransactionID: &parent.ID,
		Date:                date(2024, 3, 5),
	})

	summary, err := suite.service.Summary(context.Background(), s.user.ID, 3, 2024)
	assert.Nil(suite.T(), err)

	groceriesRow := row(suite, summary, s.groceries.ID)
	assert.True(suite.T(), groceriesRow.Activity.Equal(decimal.NewFromInt(-60)), "activity is %s", groceriesRow.Activity)

	// Counted once, not once for the parent and once for the child
	paymentRow := row(suite, summary, s.payment.ID)
	assert.True(suite.T(), paymentRow.Available.Equal(decimal.NewFromInt(60)), "available is %s", paymentRow.Available)
}

// Debt in the payment category survives months without a budget, other
// categories reset to zero there.
func (suite *TestSuiteStandard) TestSummaryCreditCardDebtSurvivesGap() {
	s := suite.createCreditSetup()

	// February and April have budgets, March does not
	february := suite.createBudget(models.Budget{UserID: s.user.ID, Month: types.NewMonth(2024, 2)})
	april := suite.createBudget(models.Budget{UserID: s.user.ID, Month: types.NewMonth(2024, 4)})

	suite.allocate(february, s.payment, 0)
	suite.allocate(april, s.payment, 0)

	// Paying the card without ever funding the payment category drives
	// it negative
	suite.transact(models.Transaction{
		AccountID: s.credit.ID,
		Amount:    decimal.NewFromInt(50),
		Type:      models.TransactionTransfer,
		Date:      date(2024, 2, 15),
	})

	summary, err := suite.service.Summary(context.Background(), s.user.ID, 4, 2024)
	assert.Nil(suite.T(), err)

	paymentRow := row(suite, summary, s.payment.ID)
	assert.True(suite.T(), paymentRow.Available.Equal(decimal.NewFromInt(-50)), "available is %s", paymentRow.Available)
}
