package anuncios

import (
	"colegio-api/app/models"
	"colegio-api/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAnunciosRoutes(app *fiber.App) {
	api := app.Group("/api/anuncios")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RoleMiddleware(models.RolProfesor), CreateAnuncioAPI)
	api.Get("/profesor", auth.RoleMiddleware(models.RolProfesor), GetAnunciosProfesorAPI)
	api.Get("/alumno", auth.RoleMiddleware(models.RolAlumno), GetAnunciosAlumnoAPI)
	api.Put("/:id", auth.RoleMiddleware(models.RolProfesor), UpdateAnuncioAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RolProfesor), DeleteAnuncioAPI)
}
