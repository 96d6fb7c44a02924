package v1

import (
	"net/http"

	"github.com/centavo-app/backend/internal/httputil"
	"github.com/centavo-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterTotalsRoutes registers the routes for the totals endpoint with
// the RouterGroup that is passed.
func RegisterTotalsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsTotals)
	r.GET("", GetTotals)
}

// Totals is the representation of the ledger totals in API v1.
type Totals struct {
	Income  decimal.Decimal `json:"income" example:"5000"`    // Sum over all income transactions
	Expense decimal.Decimal `json:"expense" example:"44.4"`   // Sum over all expense transactions
	Balance decimal.Decimal `json:"balance" example:"4955.6"` // Income minus expenses
}

type TotalsResponse struct {
	Data  *Totals `json:"data"`                                                                // The totals
	Error *string `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Totals
// @Success		204
// @Router			/v1/totals [options]
func OptionsTotals(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get totals
// @Description	Returns the income and expense sums and the balance over all transactions
// @Tags			Totals
// @Produce		json
// @Success		200	{object}	TotalsResponse
// @Failure		500	{object}	TotalsResponse
// @Router			/v1/totals [get]
func GetTotals(c *gin.Context) {
	totals, err := models.CalculateTotals(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TotalsResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, TotalsResponse{
		Data: &Totals{
			Income:  totals.Income,
			Expense: totals.Expense,
			Balance: totals.Balance,
		},
	})
}
