package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/notehub/notehub/docs" // swagger docs
	"github.com/notehub/notehub/internal/app/controllers"
	"github.com/notehub/notehub/internal/middleware"
)

// SetupRouter configures all application routes. Every API route requires a valid
// access token.
func SetupRouter(
	router *gin.Engine,
	taxonomyController *controllers.TaxonomyController,
	noteController *controllers.NoteController,
	sessionController *controllers.SessionController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.JWTAuth())

	v1.GET("/taxonomy", taxonomyController.GetTaxonomy)

	subjects := v1.Group("/subjects")
	{
		subjects.GET("", taxonomyController.ListSubjects)
		subjects.POST("", taxonomyController.CreateSubject)
	}

	professors := v1.Group("/professors")
	{
		professors.GET("", taxonomyController.ListProfessors)
		professors.POST("", taxonomyController.CreateProfessor)
	}

	notes := v1.Group("/notes")
	{
		notes.GET("", noteController.ListNotes)
		notes.POST("", noteController.CreateNote)
		notes.GET("/:id", noteController.GetNote)
		notes.DELETE("/:id", noteController.DeleteNote)
		notes.GET("/:id/download", noteController.DownloadNote)
		notes.PUT("/:id/rating", noteController.RateNote)
	}

	session := v1.Group("/session")
	{
		session.GET("", sessionController.GetSession)
		session.POST("/logout", sessionController.Logout)
	}
}

// SetupSwagger configures Swagger documentation routes
func SetupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL("/swagger/doc.json"),
		ginSwagger.DefaultModelsExpandDepth(1),
	))
}
