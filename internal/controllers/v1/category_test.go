package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/centavo-app/backend/internal/controllers/v1"
	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestOptionsCategoryList() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsCategoryDetail() {
	category := suite.createTestCategory(v1.CategoryEditable{})

	r := test.Request(suite.T(), http.MethodOptions, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsCategoryDetailNonexistent() {
	r := test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/categories/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCreateCategory() {
	category := suite.createTestCategory(v1.CategoryEditable{
		Name: "Groceries",
		Kind: models.KindExpense,
		Note: "Everything bought in supermarkets",
	})

	suite.Require().Nil(category.Error)
	suite.Assert().Equal("Groceries", category.Data.Name)
	suite.Assert().Equal(models.KindExpense, category.Data.Kind)
	suite.Assert().Equal("Everything bought in supermarkets", category.Data.Note)
	suite.Assert().NotEmpty(category.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestCreateCategoryDuplicateName() {
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{
		{Name: "Groceries", Kind: models.KindExpense},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.CategoryCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Require().NotNil(response.Data[0].Error)
	suite.Assert().Equal(models.ErrCategoryNameNotUnique.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestCreateCategoryInvalidKind() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{
		{Name: "Stocks", Kind: "investment"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateCategoryInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", `{ "name": "Broken`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateCategoriesPartialSuccess() {
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{
		{Name: "Rent", Kind: models.KindExpense},
		{Name: "Groceries", Kind: models.KindExpense},
	})

	// The final status is the highest status of the individual creations
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.CategoryCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Nil(response.Data[0].Error)
	suite.Assert().NotNil(response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestGetCategories() {
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Salary", Kind: models.KindIncome})
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)

	// Sorted by name
	suite.Assert().Equal("Groceries", response.Data[0].Name)
	suite.Assert().Equal("Salary", response.Data[1].Name)

	suite.Require().NotNil(response.Pagination)
	suite.Assert().Equal(int64(2), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestGetCategoriesFilter() {
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Salary", Kind: models.KindIncome})
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Transport"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"kind income", "kind=income", 1},
		{"kind expense", "kind=expense", 2},
		{"name match", "name=Groc", 1},
		{"name no match", "name=Petfood", 0},
		{"kind and name", "kind=expense&name=Transport", 1},
		{"limit", "limit=2", 2},
		{"offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.CategoryListResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Assert().Len(response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestGetCategory() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Groceries", response.Data.Name)
}

func (suite *TestSuiteStandard) TestGetCategoryNonexistent() {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/categories/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetCategoryInvalidID() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDeleteCategory() {
	category := suite.createTestCategory(v1.CategoryEditable{})

	r := test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteCategoryNonexistent() {
	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/categories/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteCategoryReferenced() {
	category := suite.createTestCategory(v1.CategoryEditable{})
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Amount:     decimal.NewFromFloat(25.90),
		CategoryID: category.Data.ID,
	})

	r := test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	// The category must still exist
	r = test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestCategoryDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
