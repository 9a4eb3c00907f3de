package v1_test

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	v1 "github.com/smartfinance/backend/internal/controllers/v1"
	"github.com/smartfinance/backend/internal/test"
	"github.com/smartfinance/backend/internal/types"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestHealthScoreNoData() {
	r := suite.Request(http.MethodGet, "/v1/health-score", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.HealthScoreResponse
	test.DecodeResponse(suite.T(), &r, &response)

	breakdown := response.Data
	assert.Equal(suite.T(), 36, breakdown.TotalScore)
	assert.Equal(suite.T(), "Needs Improvement", breakdown.Rating)
	assert.Equal(suite.T(), 0, breakdown.SavingsRatio.Score)
	assert.Equal(suite.T(), 13, breakdown.BudgetAdherence.Score)
	assert.Equal(suite.T(), 13, breakdown.GoalProgress.Score)
	assert.Equal(suite.T(), 10, breakdown.BillManagement.Score)
}

func (suite *TestSuiteStandard) TestHealthScoreFactorMaxima() {
	r := suite.Request(http.MethodGet, "/v1/health-score", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.HealthScoreResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), 40, response.Data.SavingsRatio.MaxScore)
	assert.Equal(suite.T(), 25, response.Data.BudgetAdherence.MaxScore)
	assert.Equal(suite.T(), 25, response.Data.GoalProgress.MaxScore)
	assert.Equal(suite.T(), 10, response.Data.BillManagement.MaxScore)
}

func (suite *TestSuiteStandard) TestHealthScoreWithData() {
	now := time.Now().UTC()

	// Savings rate of 50% this month maxes out the savings factor
	salary := testTransaction()
	salary.Title = "Salary"
	salary.Type = types.TypeIncome
	salary.Amount = decimal.NewFromFloat(50000)
	salary.Date = now
	_ = suite.createTestTransaction(salary)

	rent := testTransaction()
	rent.Title = "Rent"
	rent.Category = types.CategoryRent
	rent.Amount = decimal.NewFromFloat(25000)
	rent.Date = now
	_ = suite.createTestTransaction(rent)

	goal := testGoal()
	goal.CurrentAmount = goal.TargetAmount
	_ = suite.createTestGoal(goal)

	r := suite.Request(http.MethodGet, "/v1/health-score", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.HealthScoreResponse
	test.DecodeResponse(suite.T(), &r, &response)

	breakdown := response.Data
	assert.Equal(suite.T(), 40, breakdown.SavingsRatio.Score)
	assert.Equal(suite.T(), 25, breakdown.GoalProgress.Score)
	assert.Equal(suite.T(), 10, breakdown.BillManagement.Score)
	assert.Equal(suite.T(), 88, breakdown.TotalScore)
	assert.Equal(suite.T(), "Very Good", breakdown.Rating)
}

func (suite *TestSuiteStandard) TestHealthScoreOverdueBills() {
	overdue := testBill()
	overdue.DueDate = time.Now().UTC().AddDate(0, 0, -10)
	_ = suite.createTestBill(overdue)

	r := suite.Request(http.MethodGet, "/v1/health-score", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.HealthScoreResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), 7, response.Data.BillManagement.Score)
}

func (suite *TestSuiteStandard) TestHealthScoreDBClosed() {
	suite.CloseDB()

	r := suite.Request(http.MethodGet, "/v1/health-score", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestHealthScoreOptions() {
	r := suite.Request(http.MethodOptions, "/v1/health-score", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}
