package controllers

import (
	"net/http"

	"github.com/47farhad/WT-PROJ-HMS-sub000/services"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"
)

func Patient(router *gin.Engine) {
	patient := router.Group("/patient")
	{
		patient.GET("/fetchAll", authorization.Authorize("patient", "view"), GetPatients)
		patient.GET("/fetch/:patientId", authorization.Authorize("patient", "view"), FetchPatientByCode)
		patient.PATCH("/update/:patientId", authorization.Authorize("patient", "update"), UpdatePatientByCode)
	}
}

func GetPatients(c *gin.Context) {
	result, err := services.GetPatients(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(result))
}

func FetchPatientByCode(c *gin.Context) {
	patientId := c.Param("patientId")
	patient, err := services.FetchPatientByCode(c, patientId)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(patient))
}

func UpdatePatientByCode(c *gin.Context) {
	patientId := c.Param("patientId")
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpdatePatientByCode(c, patientId, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
