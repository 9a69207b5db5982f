package services

import (
	"errors"
	"log"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	redis "github.com/KanapuramVaishnavi/Core/config/redis"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/47farhad/WT-PROJ-HMS-sub000/models"
	"github.com/47farhad/WT-PROJ-HMS-sub000/role"
)

/*
* Doctor directory, visible to every authenticated viewer
* Credentials are stripped before returning
 */
func FetchAllDoctors(c *gin.Context) ([]interface{}, error) {
	if _, _, err := getViewer(c); err != nil {
		log.Println("Error from getViewer: ", err)
		return nil, err
	}
	collection := db.OpenCollections(models.UserCollection)
	doctors, err := db.FindAll(c, collection, bson.M{"userType": role.Doctor}, nil)
	if err != nil {
		log.Println("Error from findAll(doctors): ", err)
		return nil, err
	}
	for _, d := range doctors {
		if doctor, ok := asDocument(d); ok {
			delete(doctor, "password")
			delete(doctor, "token")
		}
	}
	return doctors, nil
}

/*
* Cache-aside single doctor fetch
 */
func FetchDoctorByCode(c *gin.Context, doctorId string) (map[string]interface{}, error) {
	if _, _, err := getViewer(c); err != nil {
		log.Println("Error from getViewer: ", err)
		return nil, err
	}

	key := models.UserKey + doctorId
	cached := make(map[string]interface{})
	exists, err := redis.GetCache(c, key, &cached)
	if err == nil && exists {
		return cached, nil
	}

	collection := db.OpenCollections(models.UserCollection)
	result := make(map[string]interface{})
	filter := bson.M{"code": doctorId, "userType": role.Doctor}
	if err := db.FindOne(c, collection, filter, &result); err != nil {
		log.Println("Error from findOne(while fetching doctor): ", err)
		return nil, errors.New(DOCTOR_NOT_FOUND)
	}
	delete(result, "password")
	delete(result, "token")

	if err := redis.SetCache(c, key, result); err != nil {
		log.Println("Failed caching doctor: ", err)
	}
	return result, nil
}
