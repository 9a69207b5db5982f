package routes

import (
	"github.com/47farhad/WT-PROJ-HMS-sub000/controllers"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {

	//public
	r.POST("/role/create", controllers.CreateRole)
	r.GET("/roles/fetchAll", controllers.ReadRoles)
	controllers.Auth(r)
	//privateroutes
	r.Use(authorization.JWTAuth())
	controllers.Account(r)
	controllers.Patient(r)
	controllers.Doctor(r)
	controllers.Appointment(r)
	controllers.Schedule(r)
	controllers.Calendar(r)
	controllers.LabTest(r)
	controllers.Payment(r)
	controllers.Note(r)
}
