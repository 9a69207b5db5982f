package migrations

import (
	"context"
	"log"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/47farhad/WT-PROJ-HMS-sub000/models"
)

/*
* Appointments created before the status lifecycle existed have no status field
 */
func BackfillAppointmentStatus() {
	ctx := context.Background()
	result, err := db.DB.Collection(models.AppointmentCollection).UpdateMany(
		ctx,
		bson.M{"status": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"status": models.StatusPending}},
	)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Printf("Migration applied: %d documents updated\n", result.ModifiedCount)
}
