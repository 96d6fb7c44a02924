package v1

import (
	"fmt"

	"github.com/centavo-app/backend/internal/httputil"
	"github.com/centavo-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type CategoryEditable struct {
	Name string              `json:"name" example:"Groceries"`                         // Name of the category
	Kind models.CategoryKind `json:"kind" example:"expense" enums:"income,expense"`    // Whether transactions in this category are income or expenses
	Note string              `json:"note" example:"Everything bought in supermarkets"` // A note
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name: editable.Name,
		Kind: editable.Kind,
		Note: editable.Note,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/v1/categories/d430d7c3-d14c-4712-9336-ee56965a6673"`                     // The category itself
	Transactions string `json:"transactions" example:"https://example.com/v1/transactions?category=d430d7c3-d14c-4712-9336-ee56965a6673"` // Transactions referencing the category
}

// Category is the representation of a Category in API v1.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

// newCategory returns the API v1 representation of the resource
func newCategory(c *gin.Context, model models.Category) Category {
	url := httputil.RequestHost(c)

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name: model.Name,
			Kind: model.Kind,
			Note: model.Note,
		},
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryResponse `json:"data"`                                                          // List of created Categories
}

func (t *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this category
	Data  *Category `json:"data"`                                                          // The Category data, if creation was successful
}

type CategoryQueryFilter struct {
	Name   string              `form:"name" filterField:"false"`   // Filter by name
	Kind   models.CategoryKind `form:"kind"`                       // Filter by kind
	Note   string              `form:"note" filterField:"false"`   // Filter by note
	Offset uint                `form:"offset" filterField:"false"` // The offset of the first Category returned. Defaults to 0.
	Limit  int                 `form:"limit" filterField:"false"`  // Maximum number of Categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() models.Category {
	return models.Category{
		Kind: f.Kind,
	}
}
