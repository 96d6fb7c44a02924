package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/centavo-app/backend/internal/controllers/v1"
	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestOptionsTotals() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/totals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetTotals() {
	incomeCategory := suite.createTestCategory(v1.CategoryEditable{Kind: models.KindIncome})
	expenseCategory := suite.createTestCategory(v1.CategoryEditable{})

	_ = suite.createTestTransaction(v1.TransactionEditable{
		Date:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(5000),
		Kind:       models.KindIncome,
		CategoryID: incomeCategory.Data.ID,
	})
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Date:       time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(25.90),
		CategoryID: expenseCategory.Data.ID,
	})
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Date:       time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(18.50),
		CategoryID: expenseCategory.Data.ID,
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/totals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TotalsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Income.Equal(decimal.NewFromInt(5000)), "Income is %s, expected 5000", response.Data.Income)
	suite.Assert().True(response.Data.Expense.Equal(decimal.NewFromFloat(44.40)), "Expense is %s, expected 44.40", response.Data.Expense)
	suite.Assert().True(response.Data.Balance.Equal(decimal.NewFromFloat(4955.60)), "Balance is %s, expected 4955.60", response.Data.Balance)
}

func (suite *TestSuiteStandard) TestGetTotalsEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/totals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TotalsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Income.IsZero())
	suite.Assert().True(response.Data.Expense.IsZero())
	suite.Assert().True(response.Data.Balance.IsZero())
}

func (suite *TestSuiteStandard) TestGetTotalsDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/totals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
