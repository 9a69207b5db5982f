package controllers

import (
	"net/http"

	"github.com/47farhad/WT-PROJ-HMS-sub000/services"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"
)

func Note(router *gin.Engine) {
	note := router.Group("/note")
	{
		note.POST("/create", authorization.Authorize("note", "create"), CreateNote)
		note.GET("/fetch/:patientId", authorization.Authorize("note", "view"), FetchNotesForPatient)
		note.DELETE("/delete/:noteId", authorization.Authorize("note", "delete"), DeleteNote)
	}
}

func CreateNote(c *gin.Context) {
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	code, err := services.CreateNote(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(code))
}

func FetchNotesForPatient(c *gin.Context) {
	patientId := c.Param("patientId")
	notes, err := services.FetchNotesForPatient(c, patientId)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(notes))
}

func DeleteNote(c *gin.Context) {
	noteId := c.Param("noteId")
	msg, err := services.DeleteNote(c, noteId)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
