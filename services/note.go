package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	common "github.com/KanapuramVaishnavi/Core/coreServices"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/47farhad/WT-PROJ-HMS-sub000/models"
	"github.com/47farhad/WT-PROJ-HMS-sub000/role"
)

/*
* Doctors write notes about a patient
 */
func CreateNote(c *gin.Context, data map[string]interface{}) (string, error) {
	viewerRole, viewerID, err := getViewer(c)
	if err != nil {
		log.Println("Error from getViewer: ", err)
		return "", err
	}
	if viewerRole != role.Doctor {
		return "", errors.New(INVALID_USER_TO_ACCESS)
	}

	for _, f := range []string{"patientId", "title", "content"} {
		if err := common.GetTrimmedString(data, f); err != nil {
			log.Println("Error from getTrimmedString: ", err)
			return "", err
		}
	}

	code, err := common.GenerateEmpCode(models.NoteCollection)
	if err != nil {
		log.Println("Error from generateEmpCode: ", err)
		return "", err
	}

	note := bson.M{
		"code":      code,
		"patientId": data["patientId"],
		"doctorId":  viewerID,
		"title":     data["title"],
		"content":   data["content"],
		"createdAt": time.Now(),
		"createdBy": viewerID,
		"updatedAt": time.Now(),
		"updatedBy": viewerID,
	}
	collection := db.OpenCollections(models.NoteCollection)
	inserted, err := db.CreateOne(c, collection, note)
	if err != nil {
		log.Println("Error from createOne(note): ", err)
		return "", err
	}
	log.Println("Inserted note: ", inserted.InsertedID)
	return code, nil
}

/*
* Notes for one patient
* Patients read their own, doctors and admins any patient's
 */
func FetchNotesForPatient(c *gin.Context, patientId string) ([]interface{}, error) {
	viewerRole, viewerID, err := getViewer(c)
	if err != nil {
		log.Println("Error from getViewer: ", err)
		return nil, err
	}
	if viewerRole == role.Patient && viewerID != patientId {
		return nil, errors.New(INVALID_USER_TO_ACCESS)
	}

	collection := db.OpenCollections(models.NoteCollection)
	notes, err := db.FindAll(c, collection, bson.M{"patientId": patientId}, nil)
	if err != nil {
		log.Println("Error from findAll(notes): ", err)
		return nil, err
	}
	return notes, nil
}

/*
* Only the authoring doctor or an admin deletes a note
 */
func DeleteNote(c *gin.Context, noteId string) (string, error) {
	viewerRole, viewerID, err := getViewer(c)
	if err != nil {
		log.Println("Error from getViewer: ", err)
		return "", err
	}
	if viewerRole == role.Patient {
		return "", errors.New(INVALID_USER_TO_ACCESS)
	}

	collection := db.OpenCollections(models.NoteCollection)
	note := make(map[string]interface{})
	filter := bson.M{"code": noteId}
	if err := db.FindOne(c, collection, filter, &note); err != nil {
		log.Println("Error from findOne(while fetching note): ", err)
		return "", errors.New(NOTE_NOT_FOUND)
	}
	if viewerRole == role.Doctor && note["doctorId"] != viewerID {
		return "", errors.New(INVALID_USER_TO_ACCESS)
	}

	deleted, err := db.DeleteOne(c, collection, filter)
	if err != nil {
		log.Println("Error from deleteOne(note): ", err)
		return "", err
	}
	log.Println("Deleted: ", deleted.DeletedCount)
	return fmt.Sprintf("Note %s deleted successfully", noteId), nil
}
