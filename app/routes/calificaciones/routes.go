package calificaciones

import (
	"colegio-api/app/models"
	"colegio-api/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupCalificacionesRoutes(app *fiber.App) {
	api := app.Group("/api/calificaciones")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RoleMiddleware(models.RolProfesor), CreateCalificacionAPI)
	api.Get("/materia/:materiaId", auth.RoleMiddleware(models.RolProfesor, models.RolAdmin), GetCalificacionesPorMateriaAPI)
	api.Get("/mias", auth.RoleMiddleware(models.RolAlumno), GetMisCalificacionesAPI)
	api.Put("/:id", auth.RoleMiddleware(models.RolProfesor, models.RolAdmin), UpdateCalificacionAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RolProfesor, models.RolAdmin), DeleteCalificacionAPI)
}
