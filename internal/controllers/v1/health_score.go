package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smartfinance/backend/internal/health"
	"github.com/smartfinance/backend/internal/httputil"
)

func RegisterHealthScoreRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsHealthScore)
		r.GET("", GetHealthScore)
	}
}

type HealthScoreResponse struct {
	Error *string           `json:"error" example:"there is no transaction matching your query"` // The error, if any occurred
	Data  *health.Breakdown `json:"data"`                                                        // The score breakdown
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			HealthScore
// @Success		204
// @Router			/v1/health-score [options]
func OptionsHealthScore(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get financial health score
// @Description	Computes the financial health score from the user's transactions, budgets, goals and bills
// @Tags			HealthScore
// @Produce		json
// @Success		200	{object}	HealthScoreResponse
// @Failure		500	{object}	HealthScoreResponse
// @Router			/v1/health-score [get]
func GetHealthScore(c *gin.Context) {
	transactions, budgets, goals, bills, err := financialData(currentUser(c).ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HealthScoreResponse{
			Error: &e,
		})
		return
	}

	breakdown := health.Calculate(transactions, budgets, goals, bills, time.Now())
	c.JSON(http.StatusOK, HealthScoreResponse{Data: &breakdown})
}
