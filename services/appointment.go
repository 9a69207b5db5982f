package services

import (
	"errors"
	"log"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	redis "github.com/KanapuramVaishnavi/Core/config/redis"
	common "github.com/KanapuramVaishnavi/Core/coreServices"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/47farhad/WT-PROJ-HMS-sub000/models"
	"github.com/47farhad/WT-PROJ-HMS-sub000/role"
)

func validAppointmentStatus(status string) bool {
	switch status {
	case models.StatusPending, models.StatusConfirmed, models.StatusCancelled,
		models.StatusCompleted, models.StatusNoShow:
		return true
	}
	return false
}

// terminal statuses admit no further transitions
func isTerminalStatus(status string) bool {
	return status == models.StatusCancelled || status == models.StatusCompleted
}

/*
* Validate the fields that came from the booking request
 */
func validateAppointmentInput(data map[string]interface{}) error {
	fields := []string{"doctorId", "date", "time", "description"}
	for _, f := range fields {
		if err := common.GetTrimmedString(data, f); err != nil {
			log.Println("Error from getTrimmedString: ", err)
			return err
		}
	}
	return nil
}

/*
* Combine the date and HH:mm clock from the request into one timestamp
 */
func appointmentDatetime(data map[string]interface{}) (time.Time, error) {
	date, err := time.Parse("2006-01-02", data["date"].(string))
	if err != nil {
		log.Println("Unparseable appointment date: ", data["date"])
		return time.Time{}, errors.New(INVALID_DATE_WINDOW)
	}
	hour, min, err := parseClock(data["time"].(string))
	if err != nil {
		return time.Time{}, err
	}
	return atClock(date, hour, min), nil
}

/*
* The booked doctor must exist and must be working that weekday
* according to the normalized weekly template
 */
func checkDoctorAvailability(c *gin.Context, doctorId string, at time.Time) error {
	collection := db.OpenCollections(models.UserCollection)
	doctor := make(map[string]interface{})
	err := db.FindOne(c, collection, bson.M{"code": doctorId, "userType": role.Doctor}, &doctor)
	if err != nil {
		log.Println("Error from findOne(while fetching doctor): ", err)
		return errors.New(DOCTOR_NOT_FOUND)
	}

	week, err := FetchDoctorSchedule(c, doctorId)
	if err != nil {
		log.Println("Error from fetchDoctorSchedule: ", err)
		return err
	}
	weekday := at.Weekday().String()
	for _, entry := range week {
		if entry.Day == weekday {
			if !entry.IsWorking {
				return errors.New(DOCTOR_NOT_WORKING_ON_THIS_DAY)
			}
			return nil
		}
	}
	return errors.New(DOCTOR_NOT_WORKING_ON_THIS_DAY)
}

/*
* Patients book for themselves, admins for any patient
* Validate the input, resolve the timestamp, check doctor availability
* Insert a pending appointment and cache it
 */
func CreateAppointment(c *gin.Context, data map[string]interface{}) (string, error) {
	viewerRole, viewerID, err := getViewer(c)
	if err != nil {
		log.Println("Error from getViewer: ", err)
		return "", err
	}
	if viewerRole == role.Doctor {
		return "", errors.New(INVALID_USER_TO_ACCESS)
	}

	if err := validateAppointmentInput(data); err != nil {
		log.Println("Error from validateAppointmentInput: ", err)
		return "", err
	}

	patientId := viewerID
	if viewerRole == role.Admin {
		if err := common.GetTrimmedString(data, "patientId"); err != nil {
			log.Println("Admin booking without patientId: ", err)
			return "", err
		}
		patientId = data["patientId"].(string)
	}

	at, err := appointmentDatetime(data)
	if err != nil {
		return "", err
	}
	doctorId := data["doctorId"].(string)
	if err := checkDoctorAvailability(c, doctorId, at); err != nil {
		log.Println("Error from checkDoctorAvailability: ", err)
		return "", err
	}

	appCode, err := common.GenerateEmpCode(models.AppointmentCollection)
	if err != nil {
		log.Println("Error from generateEmpCode: ", err)
		return "", err
	}

	newApp := bson.M{
		"code":        appCode,
		"patientId":   patientId,
		"doctorId":    doctorId,
		"datetime":    at,
		"startTime":   data["time"],
		"status":      models.StatusPending,
		"description": data["description"],
		"createdAt":   time.Now(),
		"createdBy":   viewerID,
		"updatedAt":   time.Now(),
		"updatedBy":   viewerID,
	}
	if end, ok := data["endTime"].(string); ok && end != "" {
		if _, _, err := parseClock(end); err != nil {
			return "", err
		}
		newApp["endTime"] = end
	}

	collection := db.OpenCollections(models.AppointmentCollection)
	inserted, err := db.CreateOne(c, collection, newApp)
	if err != nil {
		log.Println("Error from createOne(appointment): ", err)
		return "", err
	}
	log.Println("Inserted appointment: ", inserted.InsertedID)

	key := models.AppointmentKey + appCode
	if err := redis.SetCache(c, key, newApp); err != nil {
		log.Println("Failed caching new appointment: ", err)
	}
	return appCode, nil
}

/*
* Cache-aside fetch with role scoping
* Patients see their own appointments, doctors theirs, admins all
 */
func FetchAppointmentByCode(c *gin.Context, appointmentId string) (map[string]interface{}, error) {
	viewerRole, viewerID, err := getViewer(c)
	if err != nil {
		log.Println("Error from getViewer: ", err)
		return nil, err
	}

	key := models.AppointmentKey + appointmentId
	result := make(map[string]interface{})
	exists, err := redis.GetCache(c, key, &result)
	if err != nil || !exists {
		collection := db.OpenCollections(models.AppointmentCollection)
		result = make(map[string]interface{})
		err = db.FindOne(c, collection, bson.M{"code": appointmentId}, &result)
		if err != nil {
			log.Println("Error from findOne(while fetching appointment): ", err)
			return nil, errors.New(APPOINTMENT_NOT_FOUND)
		}
		if err := redis.SetCache(c, key, result); err != nil {
			log.Println("Failed caching appointment: ", err)
		}
	}

	if viewerRole == role.Patient && result["patientId"] != viewerID {
		return nil, errors.New(INVALID_USER_TO_ACCESS)
	}
	if viewerRole == role.Doctor && result["doctorId"] != viewerID {
		return nil, errors.New(INVALID_USER_TO_ACCESS)
	}
	return result, nil
}

/*
* Make a filter
* According to the viewer role the filter condition changes
* Optional doctor and window filters for the admin list
 */
func FetchAllAppointments(c *gin.Context) ([]interface{}, error) {
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
		if doctorId := c.Query("doctorId"); doctorId != "" && doctorId != AllDoctors {
			filter["doctorId"] = doctorId
		}
	default:
		log.Println("This user doesnot have access")
		return nil, errors.New(INVALID_USER_TO_ACCESS)
	}

	if from := c.Query("from"); from != "" {
		start, err := parseWindowDate(from)
		if err != nil {
			return nil, err
		}
		window := bson.M{"$gte": start}
		if to := c.Query("to"); to != "" {
			end, err := parseWindowDate(to)
			if err != nil {
				return nil, err
			}
			window["$lte"] = end
		}
		filter["datetime"] = window
	}

	collection := db.OpenCollections(models.AppointmentCollection)
	appointments, err := db.FindAll(c, collection, filter, nil)
	if err != nil {
		log.Println("Error from findAll(appointments): ", err)
		return nil, err
	}
	return appointments, nil
}

/*
* Who may move an appointment into the requested status
* Patients only cancel their own, doctors run the clinical lifecycle on
* theirs, admins do anything
 */
func checkStatusAccess(viewerRole, viewerID, newStatus string, appointment map[string]interface{}) error {
	switch viewerRole {
	case role.Admin:
		return nil
	case role.Patient:
		if appointment["patientId"] != viewerID || newStatus != models.StatusCancelled {
			return errors.New(INVALID_USER_TO_ACCESS)
		}
		return nil
	case role.Doctor:
		if appointment["doctorId"] != viewerID {
			return errors.New(INVALID_USER_TO_ACCESS)
		}
		return nil
	}
	return errors.New(INVALID_USER_TO_ACCESS)
}

/*
* Appointments are never hard-deleted, the lifecycle only moves forward
* Terminal statuses admit no further transitions
 */
func UpdateAppointmentStatus(c *gin.Context, appointmentId, newStatus string) (string, error) {
	if !validAppointmentStatus(newStatus) {
		return "", errors.New(INVALID_APPOINTMENT_STATUS)
	}
	viewerRole, viewerID, err := getViewer(c)
	if err != nil {
		log.Println("Error from getViewer: ", err)
		return "", err
	}

	collection := db.OpenCollections(models.AppointmentCollection)
	appointment := make(map[string]interface{})
	filter := bson.M{"code": appointmentId}
	if err := db.FindOne(c, collection, filter, &appointment); err != nil {
		log.Println("Error from findOne(while fetching appointment): ", err)
		return "", errors.New(APPOINTMENT_NOT_FOUND)
	}

	current, _ := appointment["status"].(string)
	if isTerminalStatus(current) {
		return "", errors.New(APPOINTMENT_ALREADY_CLOSED)
	}
	if err := checkStatusAccess(viewerRole, viewerID, newStatus, appointment); err != nil {
		return "", err
	}

	update := bson.M{"$set": bson.M{
		"status":    newStatus,
		"updatedBy": viewerID,
		"updatedAt": time.Now(),
	}}
	updated, err := db.UpdateOne(c, collection, filter, update)
	if err != nil {
		log.Println("Error from updateOne(appointment status): ", err)
		return "", err
	}
	log.Println("Updated appointment status: ", updated.ModifiedCount)

	key := models.AppointmentKey + appointmentId
	if err := redis.DeleteCache(c, key); err != nil {
		log.Println("Failed deleting old appointment cache: ", err)
	}
	return "Updated Successfully", nil
}

/*
* Reschedule or re-describe an open appointment
* Owning patient or admin only, closed appointments stay closed
 */
func UpdateAppointmentByCode(c *gin.Context, appointmentId string, data map[string]interface{}) (string, error) {
	viewerRole, viewerID, err := getViewer(c)
	if err != nil {
		log.Println("Error from getViewer: ", err)
		return "", err
	}
	if viewerRole == role.Doctor {
		return "", errors.New(INVALID_USER_TO_ACCESS)
	}

	collection := db.OpenCollections(models.AppointmentCollection)
	appointment := make(map[string]interface{})
	filter := bson.M{"code": appointmentId}
	if err := db.FindOne(c, collection, filter, &appointment); err != nil {
		log.Println("Error from findOne(while fetching appointment): ", err)
		return "", errors.New(APPOINTMENT_NOT_FOUND)
	}
	if viewerRole == role.Patient && appointment["patientId"] != viewerID {
		return "", errors.New(INVALID_USER_TO_ACCESS)
	}
	current, _ := appointment["status"].(string)
	if isTerminalStatus(current) {
		return "", errors.New(APPOINTMENT_ALREADY_CLOSED)
	}

	update := bson.M{}
	if _, ok := data["date"]; ok {
		for _, f := range []string{"date", "time"} {
			if err := common.GetTrimmedString(data, f); err != nil {
				log.Println("Error from getTrimmedString: ", err)
				return "", err
			}
		}
		at, err := appointmentDatetime(data)
		if err != nil {
			return "", err
		}
		doctorId, _ := appointment["doctorId"].(string)
		if err := checkDoctorAvailability(c, doctorId, at); err != nil {
			return "", err
		}
		update["datetime"] = at
		update["startTime"] = data["time"]
	}
	if desc, ok := data["description"].(string); ok && desc != "" {
		update["description"] = desc
	}
	if len(update) == 0 {
		return "", errors.New("No fields provided to update")
	}
	update["updatedBy"] = viewerID
	update["updatedAt"] = time.Now()

	updated, err := db.UpdateOne(c, collection, filter, bson.M{"$set": update})
	if err != nil {
		log.Println("Error from updateOne(appointment): ", err)
		return "", err
	}
	log.Println("Updated appointment: ", updated.ModifiedCount)

	key := models.AppointmentKey + appointmentId
	if err := redis.DeleteCache(c, key); err != nil {
		log.Println("Failed deleting old appointment cache: ", err)
	}
	return "Updated Successfully", nil
}
