package services

import (
	"errors"
	"log"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	common "github.com/KanapuramVaishnavi/Core/coreServices"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/47farhad/WT-PROJ-HMS-sub000/models"
	"github.com/47farhad/WT-PROJ-HMS-sub000/role"
)

const (
	LabTestRequested  = "requested"
	LabTestInProgress = "in-progress"
	LabTestCompleted  = "completed"
)

/*
* Doctors request tests for a patient, admins on a doctor's behalf
 */
func CreateLabTest(c *gin.Context, data map[string]interface{}) (string, error) {
	viewerRole, viewerID, err := getViewer(c)
	if err != nil {
		log.Println("Error from getViewer: ", err)
		return "", err
	}
	if viewerRole == role.Patient {
		return "", errors.New(INVALID_USER_TO_ACCESS)
	}

	for _, f := range []string{"patientId", "testType"} {
		if err := common.GetTrimmedString(data, f); err != nil {
			log.Println("Error from getTrimmedString: ", err)
			return "", err
		}
	}

	doctorId := viewerID
	if viewerRole == role.Admin {
		if err := common.GetTrimmedString(data, "doctorId"); err != nil {
			log.Println("Admin request without doctorId: ", err)
			return "", err
		}
		doctorId = data["doctorId"].(string)
	}

	code, err := common.GenerateEmpCode(models.LabTestCollection)
	if err != nil {
		log.Println("Error from generateEmpCode: ", err)
		return "", err
	}

	test := bson.M{
		"code":      code,
		"patientId": data["patientId"],
		"doctorId":  doctorId,
		"testType":  data["testType"],
		"status":    LabTestRequested,
		"createdAt": time.Now(),
		"createdBy": viewerID,
		"updatedAt": time.Now(),
		"updatedBy": viewerID,
	}
	collection := db.OpenCollections(models.LabTestCollection)
	inserted, err := db.CreateOne(c, collection, test)
	if err != nil {
		log.Println("Error from createOne(lab test): ", err)
		return "", err
	}
	log.Println("Inserted lab test: ", inserted.InsertedID)
	return code, nil
}

/*
* Make a filter
* According to the viewer role the filter condition changes
 */
func FetchAllLabTests(c *gin.Context) ([]interface{}, error) {
	viewerRole, viewerID, err := getViewer(c)
	if err != nil {
		log.Println("Error from getViewer: ", err)
		return nil, err
	}

	filter := bson.M{}
	switch viewerRole {
	case role.Patient:
		filter["patientId"] = viewerID
	case role.Doctor:
		filter["doctorId"] = viewerID
	case role.Admin:
	default:
		return nil, errors.New(INVALID_USER_TO_ACCESS)
	}

	collection := db.OpenCollections(models.LabTestCollection)
	tests, err := db.FindAll(c, collection, filter, nil)
	if err != nil {
		log.Println("Error from findAll(lab tests): ", err)
		return nil, err
	}
	return tests, nil
}

/*
* The requesting doctor or an admin records the result
* Recording a result completes the test
 */
func UpdateLabTestResult(c *gin.Context, testId string, data map[string]interface{}) (string, error) {
	viewerRole, viewerID, err := getViewer(c)
	if err != nil {
		log.Println("Error from getViewer: ", err)
		return "", err
	}
	if viewerRole == role.Patient {
		return "", errors.New(INVALID_USER_TO_ACCESS)
	}
	if err := common.GetTrimmedString(data, "result"); err != nil {
		log.Println("Error from getTrimmedString: ", err)
		return "", err
	}

	collection := db.OpenCollections(models.LabTestCollection)
	test := make(map[string]interface{})
	filter := bson.M{"code": testId}
	if err := db.FindOne(c, collection, filter, &test); err != nil {
		log.Println("Error from findOne(while fetching lab test): ", err)
		return "", errors.New(LAB_TEST_NOT_FOUND)
	}
	if viewerRole == role.Doctor && test["doctorId"] != viewerID {
		return "", errors.New(INVALID_USER_TO_ACCESS)
	}

	update := bson.M{"$set": bson.M{
		"result":    data["result"],
		"status":    LabTestCompleted,
		"updatedBy": viewerID,
		"updatedAt": time.Now(),
	}}
	updated, err := db.UpdateOne(c, collection, filter, update)
	if err != nil {
		log.Println("Error from updateOne(lab test): ", err)
		return "", err
	}
	log.Println("Updated lab test: ", updated.ModifiedCount)
	return "Updated Successfully", nil
}
