package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	v1 "github.com/smartfinance/backend/internal/controllers/v1"
	"github.com/smartfinance/backend/internal/models"
	"github.com/smartfinance/backend/internal/test"
	"github.com/smartfinance/backend/internal/types"
	"github.com/stretchr/testify/assert"
)

func testBudget() v1.BudgetEditable {
	return v1.BudgetEditable{
		Category: types.CategoryFood,
		Amount:   decimal.NewFromFloat(8000),
		Month:    types.NewMonth(2026, 8),
	}
}

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	budget := suite.createTestBudget(testBudget())

	assert.Equal(suite.T(), types.CategoryFood, budget.Data.Category)
	assert.Equal(suite.T(), types.NewMonth(2026, 8), budget.Data.Month)
}

func (suite *TestSuiteStandard) TestBudgetsCreateDuplicateMonth() {
	_ = suite.createTestBudget(testBudget())

	r := suite.Request(http.MethodPost, "/v1/budgets", []v1.BudgetEditable{testBudget()})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.BudgetCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrBudgetMonthNotUnique.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestBudgetsCreateSameMonthDifferentUser() {
	_ = suite.createTestBudget(testBudget())

	// Another user can budget the same category and month
	r := suite.Request(http.MethodPost, "/v1/budgets", []v1.BudgetEditable{testBudget()}, map[string]string{"x-user-id": "someone-else"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestBudgetsCreateInvalid() {
	tests := []struct {
		name     string
		editable v1.BudgetEditable
		err      string
	}{
		{
			"amount missing",
			v1.BudgetEditable{Category: types.CategoryFood, Month: types.NewMonth(2026, 8)},
			models.ErrAmountNotPositive.Error(),
		},
		{
			"category invalid",
			v1.BudgetEditable{Category: "Gadgets", Amount: decimal.NewFromFloat(100), Month: types.NewMonth(2026, 8)},
			models.ErrCategoryInvalid.Error(),
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.Request(http.MethodPost, "/v1/budgets", []v1.BudgetEditable{tt.editable})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.BudgetCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.err, *response.Data[0].Error)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsListFilter() {
	_ = suite.createTestBudget(testBudget())

	july := testBudget()
	july.Month = types.NewMonth(2026, 7)
	_ = suite.createTestBudget(july)

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"no filter", "", 2},
		{"by month", "month=2026-07", 1},
		{"by month without match", "month=2026-01", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.Request(http.MethodGet, fmt.Sprintf("/v1/budgets?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BudgetListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsGetSingle() {
	budget := suite.createTestBudget(testBudget())

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing budget", budget.Data.ID.String(), http.StatusOK},
		{"No budget with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.Request(http.MethodGet, fmt.Sprintf("/v1/budgets/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsUpdate() {
	budget := suite.createTestBudget(testBudget())

	r := suite.Request(http.MethodPatch, fmt.Sprintf("/v1/budgets/%s", budget.Data.ID), map[string]any{
		"amount": 9500,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(9500)))
	assert.Equal(suite.T(), types.CategoryFood, response.Data.Category)
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	budget := suite.createTestBudget(testBudget())

	r := suite.Request(http.MethodDelete, fmt.Sprintf("/v1/budgets/%s", budget.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.Request(http.MethodGet, fmt.Sprintf("/v1/budgets/%s", budget.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	r := suite.Request(http.MethodOptions, "/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}
