package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMonthOptions() {
	recorder := suite.request(http.MethodOptions, "/v1/months", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	assert.Equal(suite.T(), "GET, POST, PATCH", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestMonthUserRequired() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/months?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, "/v1/months?month=2024-03", "", map[string]string{
		"X-User-ID": "not-a-uuid",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestMonthQueryRequired() {
	recorder := suite.request(http.MethodGet, "/v1/months", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	recorder = suite.request(http.MethodGet, "/v1/months?month=spring", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestMonthNotBudgeted() {
	recorder := suite.request(http.MethodGet, "/v1/months?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

// createTestCategory creates a category group with one category via
// the API and returns the category ID.
func (suite *TestSuiteStandard) createTestCategory(groupName, name string) string {
	recorder := suite.request(http.MethodPost, "/v1/category-groups", fmt.Sprintf(`{"name": "%s"}`, groupName))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var group v1.CategoryGroupResponse
	test.DecodeResponse(suite.T(), &recorder, &group)

	recorder = suite.request(http.MethodPost, "/v1/categories", fmt.Sprintf(`{"groupId": "%s", "name": "%s"}`, group.Data.ID, name))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var category v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &category)

	return category.Data.ID.String()
}

func (suite *TestSuiteStandard) TestMonthFlow() {
	categoryID := suite.createTestCategory("Everyday", "Groceries")

	recorder := suite.request(http.MethodPost, "/v1/accounts", `{"name": "Checking", "type": "checking"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var account v1.AccountResponse
	test.DecodeResponse(suite.T(), &recorder, &account)

	// Creating the budget seeds a zero allocation for the category
	recorder = suite.request(http.MethodPost, "/v1/budgets", `{"month": "2024-03"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var month v1.MonthResponse
	test.DecodeResponse(suite.T(), &recorder, &month)
	if assert.Len(suite.T(), month.Data.Categories, 1) {
		assert.True(suite.T(), month.Data.Categories[0].Budgeted.IsZero())
	}

	// Budget 50 for groceries
	recorder = suite.request(http.MethodPatch, "/v1/months?month=2024-03",
		fmt.Sprintf(`{"categoryId": "%s", "amount": "50"}`, categoryID))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	// Get paid and buy groceries
	recorder = suite.request(http.MethodPost, "/v1/transactions",
		fmt.Sprintf(`{"accountId": "%s", "amount": "1000", "type": "income", "date": "2024-03-01T09:00:00Z"}`, account.Data.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	recorder = suite.request(http.MethodPost, "/v1/transactions",
		fmt.Sprintf(`{"accountId": "%s", "categoryId": "%s", "amount": "-20", "type": "expense", "date": "2024-03-10T12:00:00Z"}`, account.Data.ID, categoryID))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	recorder = suite.request(http.MethodGet, "/v1/months?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
	test.DecodeResponse(suite.T(), &recorder, &month)

	assert.Equal(suite.T(), 3, month.Data.Month)
	assert.Equal(suite.T(), 2024, month.Data.Year)
	assert.True(suite.T(), month.Data.ToBeBudgeted.Equal(decimal.NewFromInt(950)), "to be budgeted is %s", month.Data.ToBeBudgeted)

	if assert.Len(suite.T(), month.Data.Categories, 1) {
		row := month.Data.Categories[0]
		assert.Equal(suite.T(), "Groceries", row.Name)
		assert.Equal(suite.T(), "Everyday", row.GroupName)
		assert.True(suite.T(), row.Budgeted.Equal(decimal.NewFromInt(50)), "budgeted is %s", row.Budgeted)
		assert.True(suite.T(), row.Activity.Equal(decimal.NewFromInt(-20)), "activity is %s", row.Activity)
		assert.True(suite.T(), row.Available.Equal(decimal.NewFromInt(30)), "available is %s", row.Available)
	}
}

func (suite *TestSuiteStandard) TestSetAllocationUpserts() {
	categoryID := suite.createTestCategory("Everyday", "Groceries")

	recorder := suite.request(http.MethodPost, "/v1/budgets", `{"month": "2024-03"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	recorder = suite.request(http.MethodPatch, "/v1/months?month=2024-03",
		fmt.Sprintf(`{"categoryId": "%s", "amount": "50"}`, categoryID))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	// Setting again overwrites instead of adding a second allocation
	recorder = suite.request(http.MethodPatch, "/v1/months?month=2024-03",
		fmt.Sprintf(`{"categoryId": "%s", "amount": "80"}`, categoryID))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var month v1.MonthResponse
	test.DecodeResponse(suite.T(), &recorder, &month)
	if assert.Len(suite.T(), month.Data.Categories, 1) {
		assert.True(suite.T(), month.Data.Categories[0].Budgeted.Equal(decimal.NewFromInt(80)), "budgeted is %s", month.Data.Categories[0].Budgeted)
	}
}

func (suite *TestSuiteStandard) TestCopyMonth() {
	categoryID := suite.createTestCategory("Everyday", "Groceries")

	recorder := suite.request(http.MethodPost, "/v1/budgets", `{"month": "2024-03"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	recorder = suite.request(http.MethodPatch, "/v1/months?month=2024-03",
		fmt.Sprintf(`{"categoryId": "%s", "amount": "50"}`, categoryID))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	recorder = suite.request(http.MethodPost, "/v1/budgets", `{"month": "2024-04"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	// An unknown mode is rejected
	recorder = suite.request(http.MethodPost, "/v1/months?month=2024-04", `{"mode": "wipe"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	recorder = suite.request(http.MethodPost, "/v1/months?month=2024-04", `{"mode": "copy"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var month v1.MonthResponse
	test.DecodeResponse(suite.T(), &recorder, &month)
	if assert.Len(suite.T(), month.Data.Categories, 1) {
		assert.True(suite.T(), month.Data.Categories[0].Budgeted.Equal(decimal.NewFromInt(50)), "budgeted is %s", month.Data.Categories[0].Budgeted)
	}
}

func (suite *TestSuiteStandard) TestCreateBudgetTwice() {
	recorder := suite.request(http.MethodPost, "/v1/budgets", `{"month": "2024-03"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	recorder = suite.request(http.MethodPost, "/v1/budgets", `{"month": "2024-03"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}
