package controllers

import (
	"net/http"

	"github.com/47farhad/WT-PROJ-HMS-sub000/services"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"
)

func Appointment(router *gin.Engine) {
	appointment := router.Group("/appointment")
	{
		appointment.POST("/create", authorization.Authorize("appointment", "create"), CreateAppointment)
		appointment.GET("/fetch/:appointmentId", authorization.Authorize("appointment", "view"), FetchAppointmentByCode)
		appointment.GET("/fetchAll", authorization.Authorize("appointment", "view"), FetchAllAppointments)
		appointment.PATCH("/status/:appointmentId", authorization.Authorize("appointment", "update"), UpdateAppointmentStatus)
		appointment.PATCH("/update/:appointmentId", authorization.Authorize("appointment", "update"), UpdateAppointmentByCode)
	}
}

func CreateAppointment(c *gin.Context) {
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	code, err := services.CreateAppointment(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(code))
}

func FetchAppointmentByCode(c *gin.Context) {
	appointmentId := c.Param("appointmentId")
	appointment, err := services.FetchAppointmentByCode(c, appointmentId)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(appointment))
}

func FetchAllAppointments(c *gin.Context) {
	appointments, err := services.FetchAllAppointments(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(appointments))
}

func UpdateAppointmentStatus(c *gin.Context) {
	appointmentId := c.Param("appointmentId")
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	newStatus, _ := data["status"].(string)
	msg, err := services.UpdateAppointmentStatus(c, appointmentId, newStatus)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func UpdateAppointmentByCode(c *gin.Context) {
	appointmentId := c.Param("appointmentId")
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpdateAppointmentByCode(c, appointmentId, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
