package controllers

import (
	"net/http"

	"github.com/47farhad/WT-PROJ-HMS-sub000/services"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"
)

func Doctor(router *gin.Engine) {
	doctor := router.Group("/doctor")
	{
		doctor.GET("/fetchAll", authorization.Authorize("doctor", "view"), FetchAllDoctors)
		doctor.GET("/fetch/:doctorId", authorization.Authorize("doctor", "view"), FetchDoctorByCode)
	}
}

func FetchAllDoctors(c *gin.Context) {
	doctors, err := services.FetchAllDoctors(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(doctors))
}

func FetchDoctorByCode(c *gin.Context) {
	doctorId := c.Param("doctorId")
	doctor, err := services.FetchDoctorByCode(c, doctorId)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(doctor))
}
