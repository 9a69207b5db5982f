package services

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	redis "github.com/KanapuramVaishnavi/Core/config/redis"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/47farhad/WT-PROJ-HMS-sub000/models"
	"github.com/47farhad/WT-PROJ-HMS-sub000/role"
)

// canonical backfill for weekdays with no stored template
const (
	defaultStartTime    = "09:00"
	defaultEndTime      = "17:00"
	defaultSlotDuration = 30
)

var weekDays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

/*
* Guarantee exactly seven entries, Sunday through Saturday
* Missing weekdays are backfilled with the canonical default template,
* working on weekdays only
 */
func NormalizeWeekSchedule(doctorId string, entries []models.WorkScheduleEntry) []models.WorkScheduleEntry {
	byDay := make(map[string]models.WorkScheduleEntry, len(entries))
	for _, e := range entries {
		byDay[e.Day] = e
	}
	week := make([]models.WorkScheduleEntry, 0, len(weekDays))
	for _, day := range weekDays {
		if e, ok := byDay[day]; ok {
			week = append(week, e)
			continue
		}
		week = append(week, models.WorkScheduleEntry{
			DoctorId:     doctorId,
			Day:          day,
			IsWorking:    day != "Sunday" && day != "Saturday",
			StartTime:    defaultStartTime,
			EndTime:      defaultEndTime,
			SlotDuration: defaultSlotDuration,
		})
	}
	return week
}

/*
* The cache holds map documents, so the week travels wrapped in one
* Entries come back generic and decode through a json round trip
 */
func decodeCachedWeek(cached map[string]interface{}) ([]models.WorkScheduleEntry, bool) {
	raw, err := json.Marshal(cached["entries"])
	if err != nil {
		return nil, false
	}
	var week []models.WorkScheduleEntry
	if err := json.Unmarshal(raw, &week); err != nil {
		return nil, false
	}
	if len(week) != len(weekDays) {
		return nil, false
	}
	return week, true
}

/*
* Normalized weekly template for one doctor, cache-aside
 */
func FetchDoctorSchedule(c *gin.Context, doctorId string) ([]models.WorkScheduleEntry, error) {
	key := models.ScheduleKey + doctorId
	cached := make(map[string]interface{})
	exists, err := redis.GetCache(c, key, &cached)
	if err == nil && exists {
		if week, ok := decodeCachedWeek(cached); ok {
			return week, nil
		}
	}

	collection := db.OpenCollections(models.ScheduleCollection)
	cursor, err := collection.Find(c, bson.M{"doctorId": doctorId})
	if err != nil {
		log.Println("Error from find(schedule): ", err)
		return nil, err
	}
	defer cursor.Close(c)
	var entries []models.WorkScheduleEntry
	if err := cursor.All(c, &entries); err != nil {
		log.Println("Error decoding schedule entries: ", err)
		return nil, err
	}

	week := NormalizeWeekSchedule(doctorId, entries)
	if err := redis.SetCache(c, key, map[string]interface{}{"entries": week}); err != nil {
		log.Println("Failed caching schedule: ", err)
	}
	return week, nil
}

/*
* Validate one incoming entry
* Day must be a known weekday, clocks must parse, duration must be positive
 */
func validateScheduleEntry(entry models.WorkScheduleEntry) error {
	if _, ok := weekdayIndex[entry.Day]; !ok {
		return errors.New(INVALID_DAY_NAME)
	}
	if _, _, err := parseClock(entry.StartTime); err != nil {
		return err
	}
	if _, _, err := parseClock(entry.EndTime); err != nil {
		return err
	}
	if entry.SlotDuration <= 0 {
		return errors.New("slotDuration must be positive")
	}
	return nil
}

/*
* Doctors update their own template, admins any doctor's
* One upsert per weekday entry, then the cache is refreshed
 */
func UpsertDoctorSchedule(c *gin.Context, doctorId string, entries []models.WorkScheduleEntry) (string, error) {
	viewerRole, viewerID, err := getViewer(c)
	if err != nil {
		log.Println("Error from getViewer: ", err)
		return "", err
	}
	if viewerRole == role.Patient {
		return "", errors.New(INVALID_USER_TO_ACCESS)
	}
	if viewerRole == role.Doctor && viewerID != doctorId {
		log.Println("Doctor tried to update another doctor's schedule: ", viewerID)
		return "", errors.New(INVALID_USER_TO_ACCESS)
	}

	for _, entry := range entries {
		if err := validateScheduleEntry(entry); err != nil {
			log.Println("Invalid schedule entry: ", err)
			return "", err
		}
	}

	collection := db.OpenCollections(models.ScheduleCollection)
	now := time.Now()
	for _, entry := range entries {
		filter := bson.M{"doctorId": doctorId, "day": entry.Day}
		update := bson.M{
			"$set": bson.M{
				"isWorking":    entry.IsWorking,
				"startTime":    entry.StartTime,
				"endTime":      entry.EndTime,
				"slotDuration": entry.SlotDuration,
				"updatedAt":    now,
			},
			"$setOnInsert": bson.M{
				"doctorId":  doctorId,
				"day":       entry.Day,
				"createdAt": now,
			},
		}
		_, err := collection.UpdateOne(c, filter, update, options.Update().SetUpsert(true))
		if err != nil {
			log.Println("Error upserting schedule entry: ", err)
			return "", err
		}
	}

	key := models.ScheduleKey + doctorId
	if err := redis.DeleteCache(c, key); err != nil {
		log.Println("Failed deleting old schedule cache: ", err)
	}
	return "Updated Successfully", nil
}
