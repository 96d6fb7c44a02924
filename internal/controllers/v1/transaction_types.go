package v1

import (
	"fmt"
	"time"

	"github.com/centavo-app/backend/internal/httputil"
	"github.com/centavo-app/backend/internal/models"
	ez_uuid "github.com/centavo-app/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable contains the fields of a transaction request.
//
// One request can materialize into multiple transactions, see the
// documentation on CreateTransactions.
type TransactionEditable struct {
	Date time.Time `json:"date" example:"2024-03-12T00:00:00Z"` // Date of the transaction. For recurring and installment requests this is the date of the first occurrence.

	// The amount for the transaction. For installment requests this is the
	// total amount which is split evenly over all installments, for all other
	// requests it is the per-occurrence amount.
	Amount decimal.Decimal `json:"amount" example:"14.03" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"`

	Note       string                `json:"note" example:"Lunch" default:""`                                                   // A note
	Kind       models.CategoryKind   `json:"kind" example:"expense" enums:"income,expense"`                                     // Whether the transaction is income or an expense
	CategoryID uuid.UUID             `json:"categoryId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`                         // ID of the category
	Recurrence models.RecurrenceType `json:"recurrence" example:"single" enums:"single,recurring,installment" default:"single"` // How the request is materialized

	EndDate          *time.Time `json:"endDate" example:"2024-12-31T00:00:00Z"` // Inclusive end date, required for recurring requests
	InstallmentCount uint       `json:"installmentCount" example:"12"`          // Number of installments, required for installment requests and at least 2
}

// model returns the prototype database resource for the editable fields.
func (editable TransactionEditable) model() models.Transaction {
	recurrence := editable.Recurrence
	if recurrence == "" {
		recurrence = models.RecurrenceSingle
	}

	return models.Transaction{
		Date:             editable.Date,
		Amount:           editable.Amount,
		Note:             editable.Note,
		Kind:             editable.Kind,
		CategoryID:       editable.CategoryID,
		Recurrence:       recurrence,
		EndDate:          editable.EndDate,
		InstallmentCount: editable.InstallmentCount,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	InstallmentIndex uint             `json:"installmentIndex" example:"3"` // 1-based index of this installment, 0 for other recurrence types
	Links            TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := httputil.RequestHost(c)

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:             model.Date,
			Amount:           model.Amount,
			Note:             model.Note,
			Kind:             model.Kind,
			CategoryID:       model.CategoryID,
			Recurrence:       model.Recurrence,
			EndDate:          model.EndDate,
			InstallmentCount: model.InstallmentCount,
		},
		InstallmentIndex: model.InstallmentIndex,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

// TransactionRequestResponse contains the result for a single transaction
// request: either all transactions it materialized into or an error.
type TransactionRequestResponse struct {
	Error *string       `json:"error" example:"recurring transactions require an end date"` // The error, if any occurred for this request
	Data  []Transaction `json:"data"`                                                       // The materialized transactions, if the request succeeded
}

type TransactionCreateResponse struct {
	Error *string                      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionRequestResponse `json:"data"`                                                          // Results for the individual requests
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionRequestResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionQueryFilter struct {
	Date       time.Time             `form:"date" filterField:"false"`      // Exact date. Time is ignored.
	FromDate   time.Time             `form:"fromDate" filterField:"false"`  // From this date. Time is ignored.
	UntilDate  time.Time             `form:"untilDate" filterField:"false"` // Until this date. Time is ignored.
	Amount     decimal.Decimal       `form:"amount"`                        // Exact amount
	Note       string                `form:"note" filterField:"false"`      // Note contains this string
	Kind       models.CategoryKind   `form:"kind"`                          // Income or expense
	CategoryID ez_uuid.UUID          `form:"category"`                      // ID of the category
	Recurrence models.RecurrenceType `form:"recurrence"`                    // single, recurring or installment
	Offset     uint                  `form:"offset" filterField:"false"`    // The offset of the first Transaction returned. Defaults to 0.
	Limit      int                   `form:"limit" filterField:"false"`     // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	// The string and date fields are not set here since they are
	// handled in the controller function
	return models.Transaction{
		Amount:     f.Amount,
		Kind:       f.Kind,
		CategoryID: f.CategoryID.UUID,
		Recurrence: f.Recurrence,
	}
}
