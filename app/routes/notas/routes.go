package notas

import (
	"colegio-api/app/models"
	"colegio-api/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupNotasRoutes(app *fiber.App) {
	api := app.Group("/api/notas")
	api.Use(auth.AuthMiddleware)

	api.Put("/upsert", auth.RoleMiddleware(models.RolProfesor, models.RolAdmin), UpsertNotasAPI)
	api.Get("/mias", auth.RoleMiddleware(models.RolAlumno), GetMisNotasAPI)
	api.Get("/clase/:claseId/export", auth.RoleMiddleware(models.RolProfesor, models.RolAdmin), ExportNotasClaseAPI)
	api.Get("/", auth.RoleMiddleware(models.RolProfesor, models.RolAdmin), GetNotasAPI)
}
