package controllers

import (
	"net/http"

	"github.com/47farhad/WT-PROJ-HMS-sub000/models"
	"github.com/47farhad/WT-PROJ-HMS-sub000/services"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"
)

func Schedule(router *gin.Engine) {
	schedule := router.Group("/schedule")
	{
		schedule.GET("/fetch/:doctorId", authorization.Authorize("schedule", "view"), FetchDoctorSchedule)
		schedule.PUT("/upsert/:doctorId", authorization.Authorize("schedule", "update"), UpsertDoctorSchedule)
	}
}

func FetchDoctorSchedule(c *gin.Context) {
	doctorId := c.Param("doctorId")
	entries, err := services.FetchDoctorSchedule(c, doctorId)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(entries))
}

func UpsertDoctorSchedule(c *gin.Context) {
	doctorId := c.Param("doctorId")
	var entries []models.WorkScheduleEntry
	if err := c.BindJSON(&entries); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpsertDoctorSchedule(c, doctorId, entries)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
