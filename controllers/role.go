package controllers

import (
	"net/http"

	"github.com/47farhad/WT-PROJ-HMS-sub000/services"

	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"
)

/*
* Take the json format
* Move to services with the parameter context and map[string]interface
 */
func CreateRole(c *gin.Context) {
	var roleData map[string]interface{}

	if err := c.BindJSON(&roleData); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}

	insertedRole, err := services.CreateRole(c, roleData)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}

	c.JSON(http.StatusOK, util.SuccessResponse(insertedRole))
}

/*
Here It reads all the roles of the user
*/
func ReadRoles(c *gin.Context) {
	data, err := services.ReadRoles(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(data))
}
