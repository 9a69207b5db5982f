package controllers

import (
	"net/http"

	"github.com/47farhad/WT-PROJ-HMS-sub000/services"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"
)

func Payment(router *gin.Engine) {
	payment := router.Group("/payment")
	{
		payment.POST("/create", authorization.Authorize("payment", "create"), CreatePayment)
		payment.GET("/fetchAll", authorization.Authorize("payment", "view"), FetchAllPayments)
		payment.PATCH("/status/:paymentId", authorization.Authorize("payment", "update"), UpdatePaymentStatus)
	}
}

func CreatePayment(c *gin.Context) {
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	code, err := services.CreatePayment(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(code))
}

func FetchAllPayments(c *gin.Context) {
	payments, err := services.FetchAllPayments(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(payments))
}

func UpdatePaymentStatus(c *gin.Context) {
	paymentId := c.Param("paymentId")
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	newStatus, _ := data["status"].(string)
	msg, err := services.UpdatePaymentStatus(c, paymentId, newStatus)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
