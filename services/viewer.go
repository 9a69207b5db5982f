package services

import (
	"errors"
	"log"
	"strconv"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/47farhad/WT-PROJ-HMS-sub000/models"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

/*
* Get code from the context(set by the JWT middleware)
* Look the user up in USERS and read the userType
* Return role and code
 */
func getViewer(c *gin.Context) (string, string, error) {
	code := c.GetString("code")
	if code == "" {
		log.Println("Unable to get viewer code from context")
		return "", "", errors.New(UNABLE_TO_FETCH_CODE_FROM_CONTEXT)
	}
	collection := db.OpenCollections(models.UserCollection)
	user := make(map[string]interface{})
	err := db.FindOne(c, collection, bson.M{"code": code}, &user)
	if err != nil {
		log.Println("Error from findOne(while fetching viewer): ", err)
		return "", "", err
	}
	userType, ok := user["userType"].(string)
	if !ok {
		log.Println("userType missing on viewer document")
		return "", "", errors.New(UNABLE_TO_FETCH_USER_TYPE)
	}
	return userType, code, nil
}

/*
* Read page and limit query params
* Fall back to defaults when absent or not positive
 */
func parsePagination(c *gin.Context) (int, int) {
	page := defaultPage
	limit := defaultLimit
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v >= 1 {
		page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v >= 1 {
		limit = v
	}
	return page, limit
}

// asDocument unwraps a decoded bson value into a plain map. Nested documents
// come back as bson.M from the driver.
func asDocument(v interface{}) (map[string]interface{}, bool) {
	switch doc := v.(type) {
	case bson.M:
		return doc, true
	case map[string]interface{}:
		return doc, true
	}
	return nil, false
}

// asTime unwraps a decoded bson value into a time.Time. Dates come back as
// primitive.DateTime from the driver.
func asTime(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time(), true
	case time.Time:
		return t, true
	}
	return time.Time{}, false
}
