package migrations

import (
	"context"
	"log"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/47farhad/WT-PROJ-HMS-sub000/models"
	"github.com/47farhad/WT-PROJ-HMS-sub000/role"
)

func privilege(module string, access ...string) map[string]interface{} {
	return map[string]interface{}{"module": module, "access": access}
}

/*
* The roleCode matches the userType claim in the token so the
* authorization middleware resolves privileges without an extra mapping
 */
func SeedDefaultRoles() {
	ctx := context.Background()

	roles := []role.Role{
		{
			RoleName: "ADMIN",
			RoleCode: role.Admin,
			Privileges: []map[string]interface{}{
				privilege("user", "create", "view", "update", "delete"),
				privilege("role", "create", "view", "update", "delete"),
				privilege("patient", "view", "update"),
				privilege("doctor", "view"),
				privilege("appointment", "create", "view", "update"),
				privilege("schedule", "view", "update"),
				privilege("calendar", "view"),
				privilege("labtest", "create", "view", "update"),
				privilege("payment", "create", "view", "update"),
				privilege("note", "view", "delete"),
			},
		},
		{
			RoleName: "DOCTOR",
			RoleCode: role.Doctor,
			Privileges: []map[string]interface{}{
				privilege("patient", "view"),
				privilege("doctor", "view"),
				privilege("appointment", "view", "update"),
				privilege("schedule", "view", "update"),
				privilege("calendar", "view"),
				privilege("labtest", "create", "view", "update"),
				privilege("note", "create", "view", "delete"),
			},
		},
		{
			RoleName: "PATIENT",
			RoleCode: role.Patient,
			Privileges: []map[string]interface{}{
				privilege("patient", "view", "update"),
				privilege("doctor", "view"),
				privilege("appointment", "create", "view", "update"),
				privilege("schedule", "view"),
				privilege("payment", "create", "view"),
				privilege("note", "view"),
			},
		},
	}

	coll := db.DB.Collection(models.RoleCollection)
	for _, r := range roles {
		r.CreatedAt = time.Now()
		r.CreatedBy = "migration"
		r.UpdatedAt = time.Now()
		r.UpdatedBy = "migration"

		filter := bson.M{"roleCode": r.RoleCode}
		update := bson.M{"$set": r}
		if _, err := coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			log.Fatal("Migration failed:", err)
		}
	}
	log.Println("Migration applied: default roles seeded")
}
