package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountCRUD() {
	recorder := suite.request(http.MethodPost, "/v1/accounts", `{"name": "Checking", "type": "checking", "note": "Main account"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var created v1.AccountResponse
	test.DecodeResponse(suite.T(), &recorder, &created)
	assert.Equal(suite.T(), "Checking", created.Data.Name)
	assert.True(suite.T(), created.Data.Computed.OnBudget)
	assert.False(suite.T(), created.Data.Computed.IsLiability)

	id := created.Data.ID.String()

	recorder = suite.request(http.MethodGet, "/v1/accounts/"+id, "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	recorder = suite.request(http.MethodPatch, "/v1/accounts/"+id, `{"note": "Still the main account"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	recorder = suite.request(http.MethodGet, "/v1/accounts/"+id, "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var updated v1.AccountResponse
	test.DecodeResponse(suite.T(), &recorder, &updated)
	assert.Equal(suite.T(), "Still the main account", updated.Data.Note)
	assert.Equal(suite.T(), "Checking", updated.Data.Name, "PATCH must not change fields that were not in the request")

	recorder = suite.request(http.MethodDelete, "/v1/accounts/"+id, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = suite.request(http.MethodGet, "/v1/accounts/"+id, "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestAccountInvalidID() {
	recorder := suite.request(http.MethodGet, "/v1/accounts/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	recorder = suite.request(http.MethodGet, "/v1/accounts/"+uuid.New().String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), models.ErrResourceNotFound.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestAccountTypeInvalid() {
	recorder := suite.request(http.MethodPost, "/v1/accounts", `{"name": "Shoebox", "type": "shoebox"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), models.ErrAccountTypeInvalid.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestAccountListFilter() {
	recorder := suite.request(http.MethodPost, "/v1/accounts", `{"name": "Checking", "type": "checking"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	recorder = suite.request(http.MethodPost, "/v1/accounts", `{"name": "Savings", "type": "savings"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	recorder = suite.request(http.MethodGet, "/v1/accounts", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var list v1.AccountListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	assert.Len(suite.T(), list.Data, 2)

	recorder = suite.request(http.MethodGet, "/v1/accounts?type=savings", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	test.DecodeResponse(suite.T(), &recorder, &list)
	if assert.Len(suite.T(), list.Data, 1) {
		assert.Equal(suite.T(), "Savings", list.Data[0].Name)
	}
}

func (suite *TestSuiteStandard) TestAccountUserIsolation() {
	recorder := suite.request(http.MethodPost, "/v1/accounts", `{"name": "Checking", "type": "checking"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var created v1.AccountResponse
	test.DecodeResponse(suite.T(), &recorder, &created)

	// Another user cannot see the account
	recorder = test.Request(suite.T(), suite.router, http.MethodGet, "/v1/accounts/"+created.Data.ID.String(), "", map[string]string{
		"X-User-ID": uuid.New().String(),
	})
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestAccountCreditCard() {
	groupRecorder := suite.request(http.MethodPost, "/v1/category-groups", `{"name": "Credit Card Payments", "sortOrder": 100, "isSystem": true}`)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &groupRecorder)

	var group v1.CategoryGroupResponse
	test.DecodeResponse(suite.T(), &groupRecorder, &group)

	categoryRecorder := suite.request(http.MethodPost, "/v1/categories", fmt.Sprintf(`{"groupId": "%s", "name": "Visa"}`, group.Data.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &categoryRecorder)

	var category v1.CategoryResponse
	test.DecodeResponse(suite.T(), &categoryRecorder, &category)

	recorder := suite.request(http.MethodPost, "/v1/accounts",
		fmt.Sprintf(`{"name": "Visa", "type": "credit_card", "paymentCategoryId": "%s"}`, category.Data.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var created v1.AccountResponse
	test.DecodeResponse(suite.T(), &recorder, &created)
	assert.True(suite.T(), created.Data.Computed.IsLiability)
	assert.Equal(suite.T(), models.AccountTypeCreditCard, created.Data.Type)
	if assert.NotNil(suite.T(), created.Data.PaymentCategoryID) {
		assert.Equal(suite.T(), category.Data.ID, *created.Data.PaymentCategoryID)
	}
}
