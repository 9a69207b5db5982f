package jobs

import (
	"context"
	"log"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/47farhad/WT-PROJ-HMS-sub000/models"
	"github.com/47farhad/WT-PROJ-HMS-sub000/role"
	"github.com/47farhad/WT-PROJ-HMS-sub000/services"
)

func StartDailyScheduler() {
	c := cron.New()

	// Runs every day at 00:05 AM
	c.AddFunc("5 0 * * *", func() {
		log.Println("Running Daily Schedule Seeder...")
		SeedDefaultSchedules()
	})

	c.Start()
}

func GetAllDoctors() []interface{} {
	coll := db.OpenCollections(models.UserCollection)
	docs, err := db.FindAll(context.Background(), coll, bson.M{"userType": role.Doctor}, nil)
	if err != nil {
		log.Println("Error from the findAll function:", err)
	}
	return docs
}

/*
* Doctors onboarded without a work schedule get the default week
* Existing schedules are left untouched
 */
func SeedDefaultSchedules() {
	doctors := GetAllDoctors()

	for _, d := range doctors {
		doctor, ok := d.(map[string]interface{})
		if !ok {
			log.Println("Invalid doctor record:", d)
			continue
		}
		doctorId, ok := doctor["code"].(string)
		if !ok {
			log.Println("Invalid doctorId:", doctor)
			continue
		}

		if err := EnsureDoctorSchedule(context.Background(), doctorId); err != nil {
			log.Println("Error seeding schedule for doctor:", doctorId, err)
		}
	}
}

// defaultScheduleEntries is the seeded week with audit timestamps stamped.
func defaultScheduleEntries(doctorId string, now time.Time) []models.WorkScheduleEntry {
	week := services.NormalizeWeekSchedule(doctorId, nil)
	for i := range week {
		week[i].CreatedAt = now
		week[i].UpdatedAt = now
	}
	return week
}

func EnsureDoctorSchedule(ctx context.Context, doctorId string) error {
	coll := db.OpenCollections(models.ScheduleCollection)

	count, err := coll.CountDocuments(ctx, bson.M{"doctorId": doctorId})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, entry := range defaultScheduleEntries(doctorId, time.Now()) {
		if _, err := db.CreateOne(ctx, coll, entry); err != nil {
			return err
		}
	}
	log.Println("Seeded default schedule for doctor:", doctorId)
	return nil
}
