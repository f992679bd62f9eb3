package asistencias

import (
	"colegio-api/app/models"
	"colegio-api/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAsistenciasRoutes(app *fiber.App) {
	api := app.Group("/api/asistencias")
	api.Use(auth.AuthMiddleware)

	api.Post("/tomar", auth.RoleMiddleware(models.RolProfesor, models.RolAdmin), TomarAsistenciaAPI)
	api.Post("/simple", auth.RoleMiddleware(models.RolProfesor, models.RolAdmin), CargarAsistenciaSimpleAPI)
	api.Get("/mias", auth.RoleMiddleware(models.RolAlumno), GetMisAsistenciasAPI)
	api.Get("/", auth.RoleMiddleware(models.RolProfesor, models.RolAdmin), GetAsistenciasAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RolAdmin), DeleteAsistenciaAPI)
}
