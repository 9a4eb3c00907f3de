package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartfinance/backend/internal/httputil"
	"github.com/smartfinance/backend/internal/models"
)

func RegisterBillRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBills)
		r.GET("", GetBills)
		r.POST("", CreateBills)
	}
	{
		r.OPTIONS("/:id", OptionsBillDetail)
		r.GET("/:id", GetBill)
		r.PATCH("/:id", UpdateBill)
		r.DELETE("/:id", DeleteBill)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bills
// @Success		204
// @Router			/v1/bills [options]
func OptionsBills(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bills
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the bill"
// @Router			/v1/bills/{id} [options]
func OptionsBillDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Where("user_id = ?", currentUser(c).ID).First(&models.Bill{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create bills
// @Description	Creates new bills
// @Tags			Bills
// @Produce		json
// @Success		201		{object}	BillCreateResponse
// @Failure		400		{object}	BillCreateResponse
// @Failure		500		{object}	BillCreateResponse
// @Param			bills	body		[]BillEditable	true	"Bills"
// @Router			/v1/bills [post]
func CreateBills(c *gin.Context) {
	var editables []BillEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillCreateResponse{
			Error: &e,
		})
		return
	}

	user := currentUser(c)

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BillCreateResponse{}

	for _, editable := range editables {
		bill := editable.model(user.ID)
		err = models.DB.Create(&bill).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Transform for the API and append
		apiResource := newBill(bill)
		r.Data = append(r.Data, BillResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get bills
// @Description	Returns a list of bills, earliest due date first
// @Tags			Bills
// @Produce		json
// @Success		200	{object}	BillListResponse
// @Failure		500	{object}	BillListResponse
// @Router			/v1/bills [get]
func GetBills(c *gin.Context) {
	var bills []models.Bill
	err := models.DB.
		Where("user_id = ?", currentUser(c).ID).
		Order("date(bills.due_date) ASC, bills.name ASC").
		Find(&bills).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillListResponse{
			Error: &s,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]Bill, 0, len(bills))
	for _, bill := range bills {
		data = append(data, newBill(bill))
	}

	c.JSON(http.StatusOK, BillListResponse{
		Data: data,
	})
}

// @Summary		Get bill
// @Description	Returns a specific bill
// @Tags			Bills
// @Produce		json
// @Success		200	{object}	BillResponse
// @Failure		400	{object}	BillResponse
// @Failure		404	{object}	BillResponse
// @Failure		500	{object}	BillResponse
// @Param			id	path		URIID	true	"ID of the bill"
// @Router			/v1/bills/{id} [get]
func GetBill(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &e,
		})
		return
	}

	var bill models.Bill
	err = models.DB.Where("user_id = ?", currentUser(c).ID).First(&bill, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBill(bill)
	c.JSON(http.StatusOK, BillResponse{Data: &apiResource})
}

// @Summary		Update bill
// @Description	Updates an existing bill. Only values to be updated need to be specified.
// @Tags			Bills
// @Accept			json
// @Produce		json
// @Success		200		{object}	BillResponse
// @Failure		400		{object}	BillResponse
// @Failure		404		{object}	BillResponse
// @Failure		500		{object}	BillResponse
// @Param			id		path		URIID			true	"ID of the bill"
// @Param			bill	body		BillEditable	true	"Bill"
// @Router			/v1/bills/{id} [patch]
func UpdateBill(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &e,
		})
		return
	}

	user := currentUser(c)

	var bill models.Bill
	err = models.DB.Where("user_id = ?", user.ID).First(&bill, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, BillEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data BillEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&bill).Select("", updateFields...).Updates(data.model(user.ID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBill(bill)
	c.JSON(http.StatusOK, BillResponse{Data: &apiResource})
}

// @Summary		Delete bill
// @Description	Deletes a bill
// @Tags			Bills
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the bill"
// @Router			/v1/bills/{id} [delete]
func DeleteBill(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var bill models.Bill
	err = models.DB.Where("user_id = ?", currentUser(c).ID).First(&bill, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&bill).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
