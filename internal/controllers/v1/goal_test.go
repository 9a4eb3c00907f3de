package v1_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	v1 "github.com/smartfinance/backend/internal/controllers/v1"
	"github.com/smartfinance/backend/internal/models"
	"github.com/smartfinance/backend/internal/test"
	"github.com/stretchr/testify/assert"
)

func testGoal() v1.GoalEditable {
	return v1.GoalEditable{
		Title:         "Emergency Fund",
		TargetAmount:  decimal.NewFromFloat(100000),
		CurrentAmount: decimal.NewFromFloat(25000),
	}
}

func (suite *TestSuiteStandard) TestGoalsCreate() {
	goal := suite.createTestGoal(testGoal())

	assert.Equal(suite.T(), "Emergency Fund", goal.Data.Title)
	assert.True(suite.T(), goal.Data.TargetAmount.Equal(decimal.NewFromFloat(100000)))
	assert.Nil(suite.T(), goal.Data.Deadline)
}

func (suite *TestSuiteStandard) TestGoalsCreateWithDeadline() {
	deadline := time.Date(2027, 3, 31, 0, 0, 0, 0, time.UTC)

	editable := testGoal()
	editable.Deadline = &deadline

	goal := suite.createTestGoal(editable)
	if assert.NotNil(suite.T(), goal.Data.Deadline) {
		assert.True(suite.T(), deadline.Equal(*goal.Data.Deadline))
	}
}

func (suite *TestSuiteStandard) TestGoalsCreateInvalid() {
	editable := testGoal()
	editable.TargetAmount = decimal.Zero

	r := suite.Request(http.MethodPost, "/v1/goals", []v1.GoalEditable{editable})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.GoalCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrGoalTargetNotPositive.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestGoalsList() {
	_ = suite.createTestGoal(testGoal())

	second := testGoal()
	second.Title = "Vacation"
	_ = suite.createTestGoal(second)

	r := suite.Request(http.MethodGet, "/v1/goals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if assert.Len(suite.T(), response.Data, 2) {
		// Oldest first
		assert.Equal(suite.T(), "Emergency Fund", response.Data[0].Title)
		assert.Equal(suite.T(), "Vacation", response.Data[1].Title)
	}
}

func (suite *TestSuiteStandard) TestGoalsUpdateProgress() {
	goal := suite.createTestGoal(testGoal())

	r := suite.Request(http.MethodPatch, fmt.Sprintf("/v1/goals/%s", goal.Data.ID), map[string]any{
		"currentAmount": 60000,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.CurrentAmount.Equal(decimal.NewFromFloat(60000)))
	assert.Equal(suite.T(), "Emergency Fund", response.Data.Title)
}

func (suite *TestSuiteStandard) TestGoalsDelete() {
	goal := suite.createTestGoal(testGoal())

	r := suite.Request(http.MethodDelete, fmt.Sprintf("/v1/goals/%s", goal.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.Request(http.MethodGet, fmt.Sprintf("/v1/goals/%s", goal.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGoalsOptions() {
	r := suite.Request(http.MethodOptions, "/v1/goals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}
