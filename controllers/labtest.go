package controllers

import (
	"net/http"

	"github.com/47farhad/WT-PROJ-HMS-sub000/services"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"
)

func LabTest(router *gin.Engine) {
	labTest := router.Group("/labtest")
	{
		labTest.POST("/create", authorization.Authorize("labtest", "create"), CreateLabTest)
		labTest.GET("/fetchAll", authorization.Authorize("labtest", "view"), FetchAllLabTests)
		labTest.PATCH("/result/:testId", authorization.Authorize("labtest", "update"), UpdateLabTestResult)
	}
}

func CreateLabTest(c *gin.Context) {
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	code, err := services.CreateLabTest(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(code))
}

func FetchAllLabTests(c *gin.Context) {
	tests, err := services.FetchAllLabTests(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(tests))
}

func UpdateLabTestResult(c *gin.Context) {
	testId := c.Param("testId")
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpdateLabTestResult(c, testId, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
