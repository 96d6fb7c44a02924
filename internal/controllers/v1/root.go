package v1

import (
	"net/http"

	"github.com/centavo-app/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Categories   string `json:"categories" example:"https://example.com/v1/categories"`     // URL of the category endpoints
	Transactions string `json:"transactions" example:"https://example.com/v1/transactions"` // URL of the transaction endpoints
	Totals       string `json:"totals" example:"https://example.com/v1/totals"`             // URL of the totals endpoint
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := httputil.RequestHost(c) + "/v1"

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Categories:   url + "/categories",
			Transactions: url + "/transactions",
			Totals:       url + "/totals",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
