package controllers

import (
	"net/http"

	"github.com/47farhad/WT-PROJ-HMS-sub000/role"
	"github.com/47farhad/WT-PROJ-HMS-sub000/services"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"
)

// Public endpoints, registered before the JWT middleware.
func Auth(router *gin.Engine) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", SignupPatient)
		auth.POST("/login", LoginUser)
	}
}

// Authenticated account endpoints.
func Account(router *gin.Engine) {
	account := router.Group("/account")
	{
		account.POST("/logout", LogoutUser)
		account.POST("/staff/create", authorization.Authorize("user", "create"), CreateStaffUser)
	}
}

func SignupPatient(c *gin.Context) {
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	code, err := services.Signup(c, data, role.Patient)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(code))
}

func LoginUser(c *gin.Context) {
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	result, err := services.Login(c, data)
	if err != nil {
		c.JSON(http.StatusUnauthorized, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(result))
}

func LogoutUser(c *gin.Context) {
	msg, err := services.Logout(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func CreateStaffUser(c *gin.Context) {
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	code, err := services.CreateStaffUser(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(code))
}
