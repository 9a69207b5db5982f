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
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

func validPaymentStatus(status string) bool {
	switch status {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

/*
* Record a payment entry, no real processing behind it
* Patients record for themselves, admins for any patient
 */
func CreatePayment(c *gin.Context, data map[string]interface{}) (string, error) {
	viewerRole, viewerID, err := getViewer(c)
	if err != nil {
		log.Println("Error from getViewer: ", err)
		return "", err
	}
	if viewerRole == role.Doctor {
		return "", errors.New(INVALID_USER_TO_ACCESS)
	}

	amount, ok := data["amount"].(float64)
	if !ok || amount <= 0 {
		return "", errors.New("amount must be a positive number")
	}
	if err := common.GetTrimmedString(data, "method"); err != nil {
		log.Println("Error from getTrimmedString: ", err)
		return "", err
	}

	patientId := viewerID
	if viewerRole == role.Admin {
		if err := common.GetTrimmedString(data, "patientId"); err != nil {
			log.Println("Admin payment without patientId: ", err)
			return "", err
		}
		patientId = data["patientId"].(string)
	}

	code, err := common.GenerateEmpCode(models.PaymentCollection)
	if err != nil {
		log.Println("Error from generateEmpCode: ", err)
		return "", err
	}

	payment := bson.M{
		"code":      code,
		"patientId": patientId,
		"amount":    amount,
		"method":    data["method"],
		"status":    PaymentPending,
		"createdAt": time.Now(),
		"createdBy": viewerID,
		"updatedAt": time.Now(),
		"updatedBy": viewerID,
	}
	if appId, ok := data["appointmentId"].(string); ok && appId != "" {
		payment["appointmentId"] = appId
	}

	collection := db.OpenCollections(models.PaymentCollection)
	inserted, err := db.CreateOne(c, collection, payment)
	if err != nil {
		log.Println("Error from createOne(payment): ", err)
		return "", err
	}
	log.Println("Inserted payment: ", inserted.InsertedID)
	return code, nil
}

/*
* Patients see their own payments, admins all, doctors none
 */
func FetchAllPayments(c *gin.Context) ([]interface{}, error) {
	viewerRole, viewerID, err := getViewer(c)
	if err != nil {
		log.Println("Error from getViewer: ", err)
		return nil, err
	}

	filter := bson.M{}
	switch viewerRole {
	case role.Patient:
		filter["patientId"] = viewerID
	case role.Admin:
	default:
		return nil, errors.New(INVALID_USER_TO_ACCESS)
	}

	collection := db.OpenCollections(models.PaymentCollection)
	payments, err := db.FindAll(c, collection, filter, nil)
	if err != nil {
		log.Println("Error from findAll(payments): ", err)
		return nil, err
	}
	return payments, nil
}

/*
* Admin-only status change between pending, paid and refunded
 */
func UpdatePaymentStatus(c *gin.Context, paymentId, newStatus string) (string, error) {
	if !validPaymentStatus(newStatus) {
		return "", errors.New("Invalid payment status")
	}
	viewerRole, viewerID, err := getViewer(c)
	if err != nil {
		log.Println("Error from getViewer: ", err)
		return "", err
	}
	if viewerRole != role.Admin {
		return "", errors.New(INVALID_USER_TO_ACCESS)
	}

	collection := db.OpenCollections(models.PaymentCollection)
	filter := bson.M{"code": paymentId}
	update := bson.M{"$set": bson.M{
		"status":    newStatus,
		"updatedBy": viewerID,
		"updatedAt": time.Now(),
	}}
	updated, err := db.UpdateOne(c, collection, filter, update)
	if err != nil {
		log.Println("Error from updateOne(payment): ", err)
		return "", err
	}
	if updated.MatchedCount == 0 {
		return "", errors.New(PAYMENT_NOT_FOUND)
	}
	log.Println("Updated payment: ", updated.ModifiedCount)
	return "Updated Successfully", nil
}
