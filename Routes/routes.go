package Routes

import (
	"MediTrack/Controllers"
	"MediTrack/Middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	auth := router.Group("/auth")
	{
		auth.POST("/register", Controllers.Register)
		auth.POST("/login", Controllers.Login)
		auth.GET("/me", Middleware.JwtAuthMiddleware(), Controllers.CurrentUser)
	}

	patients := router.Group("/patients")
	patients.Use(Middleware.JwtAuthMiddleware())
	{
		// admin-or-assigned, checked in the handler
		patients.GET("/:id", Controllers.GetPatient)

		admin := patients.Group("")
		admin.Use(Middleware.RequireAdmin())
		{
			admin.POST("/", Controllers.CreatePatient)
			admin.GET("/", Controllers.FetchPatients)
			admin.GET("/export", Controllers.ExportPatientsExcel)
			admin.PUT("/:id", Controllers.UpdatePatient)
			admin.DELETE("/:id", Controllers.DeletePatient)
			admin.POST("/:id/assign", Controllers.AssignPatient)
			admin.POST("/:id/unassign", Controllers.UnassignPatient)
		}
	}
}
