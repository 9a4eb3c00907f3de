package v1_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	v1 "github.com/smartfinance/backend/internal/controllers/v1"
	"github.com/smartfinance/backend/internal/models"
	"github.com/smartfinance/backend/internal/test"
	"github.com/smartfinance/backend/internal/types"
	"github.com/stretchr/testify/assert"
)

func testBill() v1.BillEditable {
	return v1.BillEditable{
		Name:     "Electricity",
		Amount:   decimal.NewFromFloat(1200),
		Category: types.CategoryBills,
		DueDate:  time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *TestSuiteStandard) TestBillsCreate() {
	bill := suite.createTestBill(testBill())

	assert.Equal(suite.T(), "Electricity", bill.Data.Name)
	assert.True(suite.T(), bill.Data.Amount.Equal(decimal.NewFromFloat(1200)))
}

func (suite *TestSuiteStandard) TestBillsCreateInvalid() {
	editable := testBill()
	editable.Amount = decimal.Zero

	r := suite.Request(http.MethodPost, "/v1/bills", []v1.BillEditable{editable})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.BillCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrAmountNotPositive.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestBillsListOrderedByDueDate() {
	_ = suite.createTestBill(testBill())

	earlier := testBill()
	earlier.Name = "Water"
	earlier.Amount = decimal.NewFromFloat(400)
	earlier.DueDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_ = suite.createTestBill(earlier)

	r := suite.Request(http.MethodGet, "/v1/bills", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BillListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if assert.Len(suite.T(), response.Data, 2) {
		assert.Equal(suite.T(), "Water", response.Data[0].Name)
		assert.Equal(suite.T(), "Electricity", response.Data[1].Name)
	}
}

func (suite *TestSuiteStandard) TestBillsUpdate() {
	bill := suite.createTestBill(testBill())

	r := suite.Request(http.MethodPatch, fmt.Sprintf("/v1/bills/%s", bill.Data.ID), map[string]any{
		"dueDate": "2026-10-15T00:00:00Z",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BillResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC).Equal(response.Data.DueDate))
	assert.Equal(suite.T(), "Electricity", response.Data.Name)
}

func (suite *TestSuiteStandard) TestBillsDelete() {
	bill := suite.createTestBill(testBill())

	r := suite.Request(http.MethodDelete, fmt.Sprintf("/v1/bills/%s", bill.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.Request(http.MethodGet, fmt.Sprintf("/v1/bills/%s", bill.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBillsOptions() {
	r := suite.Request(http.MethodOptions, "/v1/bills", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}
