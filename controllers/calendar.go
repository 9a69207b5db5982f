package controllers

import (
	"net/http"

	"github.com/47farhad/WT-PROJ-HMS-sub000/services"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"
)

func Calendar(router *gin.Engine) {
	calendar := router.Group("/calendar")
	{
		calendar.GET("/events", authorization.Authorize("calendar", "view"), GetCalendarEvents)
	}
}

func GetCalendarEvents(c *gin.Context) {
	events, err := services.GetCalendarEvents(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(events))
}
